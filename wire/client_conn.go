package wire

import (
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/log"
	"github.com/wfproxy/wfproxy-go/message"
	"github.com/wfproxy/wfproxy-go/transport"
)

var (
	defaultHeartbeatInterval   = 10 * time.Second
	defaultHeartbeatTimeout    = time.Second
	defaultMaxMissedHeartbeats = 1
	defaultRequestQueueSize    = 8
)

// ClientConnは、クライアント側のコネクションです。
//
// トランスポート上のメッセージ送受信、リクエストとリプライの相関付け、
// およびハートビートによる死活監視を受け持ちます。
type ClientConn struct {
	transport *MessageTransport

	idGenerator IDGenerator
	pending     *pendingReplies
	state       *connState

	ctx    context.Context
	cancel context.CancelFunc

	msgRequestCh chan message.Request

	logger log.Logger

	heartbeatInterval   time.Duration
	heartbeatTimeout    time.Duration
	maxMissedHeartbeats int
	disableHeartbeats   bool
	ignoreHeartbeats    atomic.Bool

	closeOnce    sync.Once
	closeCauseMu sync.RWMutex
	closeCause   error
}

// ClientConnConfigは、クライアントコネクションの設定です。
type ClientConnConfig struct {
	// Transportは、メッセージを伝送するトランスポートです。
	Transport *MessageTransport

	// Loggerはロガーです。
	Logger log.Logger

	// HeartbeatIntervalは、ハートビートを送信する間隔です。
	HeartbeatInterval time.Duration

	// HeartbeatTimeoutは、ハートビート送信後リプライが返却されるまでのタイムアウトです。
	HeartbeatTimeout time.Duration

	// MaxMissedHeartbeatsは、コネクションを切断するまでに許容する連続ハートビート失敗回数です。
	// 0に設定された場合は、デフォルト値(1)が使用されます。
	MaxMissedHeartbeats int

	// DisableHeartbeatsは、ハートビートの送信を抑止します。デバッグ用途です。
	DisableHeartbeats bool

	// IgnoreHeartbeatsは、受信したハートビートリプライを相関付けせずに破棄します。
	// タイムアウト経路の障害注入用途です。
	IgnoreHeartbeats bool

	// RequestQueueSizeは、プロキシ起点リクエストのキューの長さです。
	// 0に設定された場合は、デフォルト値(8)が使用されます。
	RequestQueueSize int
}

// NewClientConnは、ClientConnを生成し、送受信ループを開始します。
func NewClientConn(c *ClientConnConfig) *ClientConn {
	if c.Logger == nil {
		c.Logger = log.NewNop()
	}
	if c.HeartbeatInterval == 0 {
		c.HeartbeatInterval = defaultHeartbeatInterval
	}
	if c.HeartbeatTimeout == 0 {
		c.HeartbeatTimeout = defaultHeartbeatTimeout
	}
	if c.MaxMissedHeartbeats == 0 {
		c.MaxMissedHeartbeats = defaultMaxMissedHeartbeats
	}
	if c.RequestQueueSize == 0 {
		c.RequestQueueSize = defaultRequestQueueSize
	}

	ctx, cancel := context.WithCancel(context.Background())
	conn := &ClientConn{
		transport:           c.Transport,
		idGenerator:         newRequestIDGeneratorForClient(),
		pending:             newPendingReplies(),
		state:               newConnState(),
		ctx:                 ctx,
		cancel:              cancel,
		msgRequestCh:        make(chan message.Request, c.RequestQueueSize),
		logger:              c.Logger,
		heartbeatInterval:   c.HeartbeatInterval,
		heartbeatTimeout:    c.HeartbeatTimeout,
		maxMissedHeartbeats: c.MaxMissedHeartbeats,
		disableHeartbeats:   c.DisableHeartbeats,
	}
	conn.ignoreHeartbeats.Store(c.IgnoreHeartbeats)

	conn.state.Swap(connStatusActive)
	go conn.run()
	return conn
}

func (c *ClientConn) run() {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.readLoop()
	}()

	if !c.disableHeartbeats {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.heartbeatLoop()
		}()
	}

	wg.Wait()
}

func (c *ClientConn) readLoop() {
	defer close(c.msgRequestCh)

	for {
		msg, err := c.transport.Read()
		if err != nil {
			select {
			case <-c.ctx.Done():
				return
			default:
			}
			if errors.Is(err, transport.ErrAlreadyClosed) ||
				errors.Is(err, transport.EOF) ||
				errors.Is(err, net.ErrClosed) {
				c.closeWithCause(errors.ErrConnectionClosed)
				return
			}
			c.logger.Errorf(c.ctx, "occurred in transport.Read: %+v", err)
			c.closeWithCause(err)
			return
		}

		switch m := msg.(type) {
		case message.Reply:
			if m.GetType() == message.TypeHeartbeatReply && c.ignoreHeartbeats.Load() {
				c.logger.Debugf(c.ctx, "ignored a heartbeat reply: request_id=%d", m.GetRequestID())
				continue
			}
			if !c.pending.resolve(m) {
				c.logger.Warnf(c.ctx, "discarded an uncorrelated reply: type=%v request_id=%d", m.GetType(), m.GetRequestID())
			}
		case message.Request:
			select {
			case c.msgRequestCh <- m:
			case <-c.ctx.Done():
				return
			}
		default:
			c.logger.Warnf(c.ctx, "discarded an unexpected message: type=%v", msg.GetType())
		}
	}
}

func (c *ClientConn) heartbeatLoop() {
	ticker := time.NewTicker(c.heartbeatInterval)
	defer ticker.Stop()

	missed := 0
	for {
		select {
		case <-ticker.C:
		case <-c.ctx.Done():
			return
		}

		if err := c.sendHeartbeat(); err != nil {
			select {
			case <-c.ctx.Done():
				// already called close method
				return
			default:
			}
			missed++
			if missed < c.maxMissedHeartbeats {
				c.logger.Debugf(c.ctx, "heartbeat missed (%d/%d): %v", missed, c.maxMissedHeartbeats, err)
				continue
			}
			c.logger.Warnf(c.ctx, "heartbeat timeout, disconnect: %v", err)
			c.closeWithCause(errors.ErrHeartbeatTimeout)
			return
		}
		missed = 0
	}
}

func (c *ClientConn) sendHeartbeat() error {
	ctx, cancel := context.WithTimeout(c.ctx, c.heartbeatTimeout)
	defer cancel()
	_, err := c.SendRequest(ctx, message.NewHeartbeatRequest())
	return err
}

// SendRequestは、リクエストを送信し、対応するリプライの到着まで待機します。
//
// リクエストには新しいリクエストIDが発番されます。ctxのキャンセルで待機を
// 打ち切った場合でも、リクエスト自体の送信は取り消されません。
func (c *ClientConn) SendRequest(ctx context.Context, req message.Request) (message.Reply, error) {
	if c.state.Is(connStatusClosed) {
		return nil, c.pending.closeCause()
	}

	req.SetRequestID(c.idGenerator.Next())
	replyCh, err := c.pending.register(req.GetRequestID())
	if err != nil {
		return nil, err
	}

	if err := c.transport.Write(req); err != nil {
		c.pending.deregister(req.GetRequestID())
		return nil, err
	}

	select {
	case <-ctx.Done():
		c.pending.deregister(req.GetRequestID())
		return nil, ctx.Err()
	case reply, ok := <-replyCh:
		if !ok {
			return nil, c.pending.closeCause()
		}
		return reply, nil
	}
}

// SendReplyは、プロキシ起点リクエストに対するリプライを送信します。
func (c *ClientConn) SendReply(ctx context.Context, reply message.Reply) error {
	return c.transport.Write(reply)
}

// Requestsは、プロキシ起点のリクエストを受け取るチャンネルを返却します。
//
// コネクションがクローズされた場合、チャンネルは閉じられます。
func (c *ClientConn) Requests() <-chan message.Request {
	return c.msgRequestCh
}

// Closedは、ClientConnがクローズしているかどうか確認するためのチャンネルを返却します。
//
// ClientConnがクローズしている場合、チャンネルは閉じられています。
func (c *ClientConn) Closed() <-chan struct{} {
	return c.ctx.Done()
}

// CloseCauseは、コネクションの終了原因を返却します。
//
// Closeによる意図的な切断の場合はnilを返却します。
func (c *ClientConn) CloseCause() error {
	c.closeCauseMu.RLock()
	defer c.closeCauseMu.RUnlock()
	return c.closeCause
}

// Closeは、クライアント接続を閉じます。複数回呼び出しても安全です。
//
// 待機中のリクエストはすべてErrConnectionClosedで失敗します。
func (c *ClientConn) Close() error {
	return c.closeWithCause(nil)
}

// UnderlyingTransport は内部で使用しているトランスポートを返します。
func (c *ClientConn) UnderlyingTransport() transport.ReadWriter {
	return c.transport.UnderlyingTransport()
}

func (c *ClientConn) closeWithCause(cause error) error {
	var err error
	c.closeOnce.Do(func() {
		c.state.Swap(connStatusClosing)
		c.closeCauseMu.Lock()
		c.closeCause = cause
		c.closeCauseMu.Unlock()

		c.cancel()
		err = c.transport.Close()
		c.pending.cancelAll(cause)
		c.state.Swap(connStatusClosed)
	})
	return err
}
