/*
Package gorilla は、 gorilla/websocket を使用したWebSocketコネクション実装です。
*/
package gorilla

import (
	"context"
	"io"
	"time"

	gwebsocket "github.com/gorilla/websocket"

	"github.com/wfproxy/wfproxy-go/transport/websocket"
)

// Connは、 gorilla/websocketのConnのラッパーです。
type Conn struct {
	wsconn *gwebsocket.Conn
}

// Newは、Connを返却します。
func New(wsconn *gwebsocket.Conn) *Conn {
	return &Conn{
		wsconn: wsconn,
	}
}

// Pingは、WebSocketのPingを送信します。
func (c *Conn) Ping(ctx context.Context) error {
	return wrapError(c.wsconn.WriteControl(gwebsocket.PingMessage, []byte{}, time.Now().Add(time.Second)))
}

// Readerは、WebSocketのReaderを取得します。
func (c *Conn) Reader(ctx context.Context) (websocket.MessageType, io.Reader, error) {
	tp, rd, err := c.wsconn.NextReader()
	if err != nil {
		return 0, nil, wrapError(err)
	}
	switch tp {
	case gwebsocket.BinaryMessage:
		return websocket.MessageBinary, rd, nil
	case gwebsocket.TextMessage:
		return websocket.MessageText, rd, nil
	}
	panic("unreachable")
}

// Writerは、WebSocketのWriterを取得します。
func (c *Conn) Writer(ctx context.Context, tp websocket.MessageType) (io.WriteCloser, error) {
	switch tp {
	case websocket.MessageBinary:
		res, err := c.wsconn.NextWriter(gwebsocket.BinaryMessage)
		if err != nil {
			return nil, wrapError(err)
		}
		return res, nil
	case websocket.MessageText:
		res, err := c.wsconn.NextWriter(gwebsocket.TextMessage)
		if err != nil {
			return nil, wrapError(err)
		}
		return res, nil
	}
	panic("unreachable")
}

// Closeは、WebSocketをクローズします。
func (c *Conn) Close() error {
	c.wsconn.WriteControl(gwebsocket.CloseMessage,
		gwebsocket.FormatCloseMessage(gwebsocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return wrapError(c.wsconn.Close())
}
