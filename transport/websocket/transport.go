package websocket

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/transport"
)

var _ transport.ReadWriter = (*Transport)(nil)

// Transportは、WebSocketトランスポートです。
type Transport struct {
	wsconn Conn

	rxBytesCounter *uint64
	txBytesCounter *uint64

	ctx    context.Context
	cancel context.CancelFunc
}

// Newは、WebSocketトランスポートを返却します。
func New(wsconn Conn) *Transport {
	ctx, cancel := context.WithCancel(context.Background())
	return &Transport{
		wsconn:         wsconn,
		rxBytesCounter: func(u uint64) *uint64 { return &u }(0),
		txBytesCounter: func(u uint64) *uint64 { return &u }(0),
		ctx:            ctx,
		cancel:         cancel,
	}
}

// Readは、１メッセージ分のデータを読み込みます。
func (t *Transport) Read() ([]byte, error) {
	_, rd, err := t.wsconn.Reader(t.ctx)
	if err != nil {
		return nil, t.wrapError("get reader", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rd); err != nil {
		return nil, t.wrapError("read message", err)
	}
	atomic.AddUint64(t.rxBytesCounter, uint64(buf.Len()))
	return buf.Bytes(), nil
}

// Writeは、１メッセージ分のデータを書き込みます。
func (t *Transport) Write(bs []byte) error {
	wr, err := t.wsconn.Writer(t.ctx, MessageBinary)
	if err != nil {
		return t.wrapError("get writer", err)
	}

	if _, err := wr.Write(bs); err != nil {
		wr.Close()
		return t.wrapError("write message", err)
	}
	if err := wr.Close(); err != nil {
		return t.wrapError("flush message", err)
	}
	atomic.AddUint64(t.txBytesCounter, uint64(len(bs)))
	return nil
}

// TxBytesCounterValueは、書き込んだ総バイト数を返却します。
func (t *Transport) TxBytesCounterValue() uint64 {
	return atomic.LoadUint64(t.txBytesCounter)
}

// RxBytesCounterValueは、読み込んだ総バイト数を返却します。
func (t *Transport) RxBytesCounterValue() uint64 {
	return atomic.LoadUint64(t.rxBytesCounter)
}

// Closeは、トランスポートを閉じます。
func (t *Transport) Close() error {
	t.cancel()
	if err := t.wsconn.Close(); err != nil {
		return fmt.Errorf("close websocket: %w", err)
	}
	return nil
}

// Nameは、トランスポート名を返却します。
func (t *Transport) Name() transport.Name {
	return transport.NameWebSocket
}

func (t *Transport) wrapError(op string, err error) error {
	if t.ctx.Err() != nil {
		return transport.ErrAlreadyClosed
	}
	return errors.Errorf("%s: %w", op, err)
}
