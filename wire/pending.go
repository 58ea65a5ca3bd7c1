package wire

import (
	"sync"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/message"
)

// pendingRepliesは、送信済みリクエストとリプライの相関テーブルです。
//
// リクエストIDごとに待機チャンネルを保持し、リプライの到着または接続の
// 終了で待機者を解決します。
type pendingReplies struct {
	mu      sync.Mutex
	waiters map[int64]chan message.Reply
	cause   error
	closed  bool
}

func newPendingReplies() *pendingReplies {
	return &pendingReplies{
		waiters: make(map[int64]chan message.Reply),
	}
}

// registerは、リクエストIDの待機チャンネルを登録します。
//
// 同一のリクエストIDが解決されないまま登録された場合、ErrDuplicateRequestIDを
// 返却します。
func (p *pendingReplies) register(requestID int64) (<-chan message.Reply, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, p.closeError()
	}
	if _, ok := p.waiters[requestID]; ok {
		return nil, errors.Errorf("request id %d: %w", requestID, errors.ErrDuplicateRequestID)
	}
	ch := make(chan message.Reply, 1)
	p.waiters[requestID] = ch
	return ch, nil
}

// deregisterは、リクエストIDの待機チャンネルを破棄します。
//
// 待機者がリプライを受け取らずに離脱する場合に使用します。
func (p *pendingReplies) deregister(requestID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.waiters, requestID)
}

// resolveは、リプライを対応する待機者へ引き渡します。
//
// 対応する待機者がいない場合はfalseを返却します。リプライは破棄されます。
func (p *pendingReplies) resolve(reply message.Reply) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	ch, ok := p.waiters[reply.GetRequestID()]
	if !ok {
		return false
	}
	delete(p.waiters, reply.GetRequestID())
	ch <- reply // non blocking
	return true
}

// cancelAllは、すべての待機者を失敗させます。以降の登録も失敗します。
//
// causeがnilの場合、待機者にはErrConnectionClosedが返されます。
func (p *pendingReplies) cancelAll(cause error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	p.cause = cause
	for id, ch := range p.waiters {
		delete(p.waiters, id)
		close(ch)
	}
}

// closeCauseは、cancelAllに渡された終了原因を返却します。
func (p *pendingReplies) closeCause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closeError()
}

// closeErrorは、cancelAll後に待機者へ返すエラーです。ロックを保持して呼び出します。
func (p *pendingReplies) closeError() error {
	if p.cause != nil {
		return p.cause
	}
	return errors.ErrConnectionClosed
}
