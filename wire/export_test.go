package wire

// SetIgnoreHeartbeatsは、受信したハートビートリプライの破棄を切り替えます。テスト用です。
func (c *ClientConn) SetIgnoreHeartbeats(v bool) {
	c.ignoreHeartbeats.Store(v)
}

func (c *ClientConn) Done() <-chan struct{} {
	return c.ctx.Done()
}
