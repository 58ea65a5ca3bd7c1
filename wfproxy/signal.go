package wfproxy

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/message"
)

// ErrSignalQueueClosedは、クローズ済みのシグナルキューを操作した場合のエラーです。
var ErrSignalQueueClosed = errors.New("signal queue closed")

// Noneは、引数または結果を持たないシグナルを表す型です。
type None struct{}

// rawSignalInvocationは、プロキシから届いたシグナル実行依頼のデコード前表現です。
type rawSignalInvocation struct {
	name            string
	args            map[string]any
	signalRequestID int64
	contextID       int64
}

// SignalQueueは、指定ワークフローのコンテキストに届くシグナルを受信するキューです。
//
// NewSignalQueueで生成します。キューが受け付けたシグナルは、Replyで応答するまで
// 送信側をブロックし続けます。
type SignalQueue[T any] struct {
	conn      *Conn
	contextID int64
	ch        chan *SignalInvocation[T]

	mu     sync.Mutex
	closed bool
}

// NewSignalQueueは、contextIDに届くシグナルのキューを登録し返却します。
//
// 同一のcontextIDに対して複数のキューは登録できません。
func NewSignalQueue[T any](conn *Conn, contextID int64, size int) (*SignalQueue[T], error) {
	if size <= 0 {
		size = 8
	}
	q := &SignalQueue[T]{
		conn:      conn,
		contextID: contextID,
		ch:        make(chan *SignalInvocation[T], size),
	}

	conn.signalsMu.Lock()
	defer conn.signalsMu.Unlock()
	if _, ok := conn.signals[contextID]; ok {
		return nil, errors.Errorf("signal queue already registered for context %d", contextID)
	}
	conn.signals[contextID] = q.enqueue
	return q, nil
}

// enqueueは、デコード済みのシグナルをキューへ積みます。受け付けた場合trueを返します。
func (q *SignalQueue[T]) enqueue(raw *rawSignalInvocation) bool {
	var args T
	if raw.args != nil {
		bs, err := json.Marshal(raw.args)
		if err != nil {
			return false
		}
		if err := json.Unmarshal(bs, &args); err != nil {
			return false
		}
	}
	inv := &SignalInvocation[T]{
		conn:            q.conn,
		name:            raw.name,
		args:            args,
		signalRequestID: raw.signalRequestID,
		contextID:       raw.contextID,
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return false
	}
	select {
	case q.ch <- inv:
		return true
	default:
		return false
	}
}

// Dequeueは、次のシグナルの到着まで待機し返却します。
//
// 接続が終了した場合、終了要因のエラーを返却します。
func (q *SignalQueue[T]) Dequeue(ctx context.Context) (*SignalInvocation[T], error) {
	select {
	case inv, ok := <-q.ch:
		if !ok {
			return nil, ErrSignalQueueClosed
		}
		return inv, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-q.conn.Closed():
		if cause := q.conn.cliConn.CloseCause(); cause != nil {
			return nil, cause
		}
		return nil, errors.ErrConnectionClosed
	}
}

// Closeは、キューの登録を解除します。未取得のシグナルは破棄されます。
func (q *SignalQueue[T]) Close() error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	q.conn.signalsMu.Lock()
	delete(q.conn.signals, q.contextID)
	q.conn.signalsMu.Unlock()
	return nil
}

// SignalInvocationは、受信した1件のシグナルです。
//
// 処理後、必ずReplyまたはFailで応答してください。応答するまで送信側は
// ブロックし続けます。
type SignalInvocation[T any] struct {
	conn            *Conn
	name            string
	args            T
	signalRequestID int64
	contextID       int64

	mu      sync.Mutex
	replied bool
}

// Nameは、シグナル名を返却します。
func (s *SignalInvocation[T]) Name() string {
	return s.name
}

// Argsは、デコード済みのシグナル引数を返却します。
func (s *SignalInvocation[T]) Args() T {
	return s.args
}

// Replyは、シグナルの処理結果を送信側へ返します。
//
// resultはJSONエンコードされた文字列です。nilは結果なしを表します。
// 2回目以降の呼び出しはErrSignalProtocolを返却します。
func (s *SignalInvocation[T]) Reply(ctx context.Context, result *string) error {
	return s.done(ctx, result, nil)
}

// Failは、シグナルの処理失敗を送信側へ返します。
func (s *SignalInvocation[T]) Fail(ctx context.Context, cause error) error {
	if cause == nil {
		return s.done(ctx, nil, nil)
	}
	perr, ok := errors.AsProxyError(cause)
	if !ok {
		perr = errors.NewProxyError(errors.ProxyErrorCustom, cause.Error())
	}
	return s.done(ctx, nil, perr)
}

func (s *SignalInvocation[T]) done(ctx context.Context, result *string, perr *errors.ProxyError) error {
	s.mu.Lock()
	if s.replied {
		s.mu.Unlock()
		return errors.Errorf("signal %d already replied: %w", s.signalRequestID, errors.ErrSignalProtocol)
	}
	s.replied = true
	s.mu.Unlock()

	req := message.NewWorkflowSignalDoneRequest()
	req.SetContextID(s.contextID)
	req.SetSignalRequestID(s.signalRequestID)
	req.SetResult(result)
	req.SetSignalError(perr)
	reply, err := s.conn.SendRequest(ctx, req)
	if err != nil {
		return err
	}
	if rerr := reply.GetError(); rerr != nil {
		return rerr
	}
	return nil
}

// handleSignalInvokeは、プロキシからのシグナル実行依頼を登録済みキューへ引き渡します。
func (c *Conn) handleSignalInvoke(ctx context.Context, m *message.WorkflowSignalInvokeRequest) {
	reply := message.NewWorkflowSignalInvokeReply()
	reply.SetRequestID(m.GetRequestID())
	reply.SetContextID(m.GetContextID())

	args, err := m.GetSignalArgs()
	if err != nil {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorBadRequest, "malformed signal args: "+err.Error()))
		c.sendReply(ctx, reply)
		return
	}
	raw := &rawSignalInvocation{
		args:            args,
		signalRequestID: m.GetSignalRequestID(),
		contextID:       m.GetContextID(),
	}
	if v := m.GetSignalName(); v != nil {
		raw.name = *v
	}

	c.signalsMu.Lock()
	sink, ok := c.signals[m.GetContextID()]
	c.signalsMu.Unlock()
	if !ok || !sink(raw) {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorEntityNotFound, "no signal queue for this workflow"))
		c.sendReply(ctx, reply)
		return
	}

	// the actual outcome follows later as a WorkflowSignalDoneRequest
	reply.SetPending(true)
	c.sendReply(ctx, reply)
}
