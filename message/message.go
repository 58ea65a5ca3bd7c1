/*
Package message は、クライアントとワークフロープロキシの間で交換されるメッセージを定義するパッケージです。

全てのメッセージは ProxyMessage をベースとしたエンベロープです。エンベロープは、
タイプコード・順序付きプロパティ・添付バイナリのシーケンスを保持します。
*/
package message

import (
	"github.com/wfproxy/wfproxy-go/errors"
)

// Messageは、プロキシとの間で交換されるメッセージを表すインターフェースです。
type Message interface {
	// Baseは、ベースとなるエンベロープを返却します。
	Base() *ProxyMessage

	// GetTypeは、メッセージのタイプコードを返却します。
	GetType() Type
}

// Requestは、応答を期待するリクエストメッセージを表すインターフェースです。
type Request interface {
	Message

	// GetRequestIDは、リクエストIDを返却します。0は未採番を表します。
	GetRequestID() int64
	// SetRequestIDは、リクエストIDを設定します。
	SetRequestID(int64)
	// GetIsCancellableは、リクエストがキャンセル可能かどうかを返却します。
	GetIsCancellable() bool
	// SetIsCancellableは、リクエストがキャンセル可能かどうかを設定します。
	SetIsCancellable(bool)
	// ReplyTypeは、このリクエストに対応する応答メッセージのタイプコードを返却します。
	ReplyType() Type
}

// Replyは、リクエストに対する応答メッセージを表すインターフェースです。
type Reply interface {
	Message

	// GetRequestIDは、対応するリクエストのリクエストIDを返却します。
	GetRequestID() int64
	// SetRequestIDは、対応するリクエストのリクエストIDを設定します。
	SetRequestID(int64)
	// GetErrorは、応答に含まれるエラーを返却します。エラーがない場合はnilを返却します。
	GetError() *errors.ProxyError
	// SetErrorは、応答にエラーを設定します。
	SetError(*errors.ProxyError)
}
