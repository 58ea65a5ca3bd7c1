/*
Package transport は、プロキシとの間でフレームを運ぶトランスポートをまとめたパッケージです。
*/
package transport

import (
	"io"

	"github.com/wfproxy/wfproxy-go/errors"
)

// Nameは、トランスポート名です。
type Name string

const (
	// HTTP PUTによるトランスポート
	NameHTTP Name = "http"
	// WebSocketトランスポート
	NameWebSocket Name = "websocket"
)

/*
トランスポートは以下のエラーを返します。
*/
var (
	// ErrAlreadyClosedは、トランスポート層のコネクションが切れている場合に返されます。
	ErrAlreadyClosed = errors.ErrConnectionClosed

	// EOFは、相手側がトランスポートを閉じた場合に返されます。
	EOF = io.EOF
)
