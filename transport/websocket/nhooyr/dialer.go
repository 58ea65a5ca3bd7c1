package nhooyr

import (
	"context"
	"net/http"

	nwebsocket "nhooyr.io/websocket"

	"github.com/wfproxy/wfproxy-go/transport/websocket"
)

// Registerは、nhooyr.io/websocketによるDialFuncをWebSocketトランスポートへ登録します。
func Register() {
	websocket.RegisterDialFunc(Dial)
}

// Dialは、WebSocketのコネクションを開きます。
func Dial(c websocket.DialConfig) (websocket.Conn, error) {
	var cli *http.Client
	if c.TLSConfig != nil {
		tr := http.DefaultTransport.(*http.Transport).Clone()
		tr.TLSClientConfig = c.TLSConfig
		cli = &http.Client{Transport: tr}
	}

	dialOpts := nwebsocket.DialOptions{
		HTTPHeader: c.Header,
		HTTPClient: cli,
	}

	ctx := context.Background()
	if c.DialTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), c.DialTimeout)
		defer cancel()
	}

	//nolint
	wsconn, _, err := nwebsocket.Dial(ctx, c.URL, &dialOpts)
	if err != nil {
		return nil, err
	}
	return New(wsconn), nil
}
