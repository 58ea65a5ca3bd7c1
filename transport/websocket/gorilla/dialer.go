package gorilla

import (
	"net/http/httputil"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/transport/websocket"
	gwebsocket "github.com/gorilla/websocket"
)

// Registerは、gorilla/websocketによるDialFuncをWebSocketトランスポートへ登録します。
func Register() {
	websocket.RegisterDialFunc(Dial)
}

// Dialは、WebSocketのコネクションを開きます。
func Dial(c websocket.DialConfig) (websocket.Conn, error) {
	dialer := *gwebsocket.DefaultDialer
	if c.TLSConfig != nil {
		dialer.TLSClientConfig = c.TLSConfig
	}
	if c.DialTimeout > 0 {
		dialer.HandshakeTimeout = c.DialTimeout
	}

	//nolint
	wsconn, resp, err := dialer.Dial(c.URL, c.Header)
	if err != nil {
		if resp == nil {
			return nil, err
		}

		dump, _ := httputil.DumpResponse(resp, true)
		return nil, errors.Errorf("dial failed with error response[%s]: %w", dump, err)
	}
	return New(wsconn), nil
}
