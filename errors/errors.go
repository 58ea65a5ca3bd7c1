package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrWFProxyはwfproxyライブラリで定義されている基底エラーです。
	ErrWFProxy = errors.New("wfproxy")
	// ErrConnectionClosedは、コネクションが閉じられている状態で読み書きをした場合のエラーです。
	ErrConnectionClosed = fmt.Errorf("closed wfproxy connection: %w", ErrWFProxy)
	// ErrMalformedMessageは、メッセージのエンコードやデコードに失敗した時のエラーです。
	ErrMalformedMessage = fmt.Errorf("malformed message: %w", ErrWFProxy)
	// ErrMessageTooLargeは、メッセージが大きすぎる場合のエラーです。
	ErrMessageTooLarge = fmt.Errorf("message is too large: %w", ErrMalformedMessage)
	// ErrDuplicateRequestIDは、送信中のリクエストとリクエストIDが重複した場合のエラーです。
	ErrDuplicateRequestID = fmt.Errorf("duplicate request id: %w", ErrWFProxy)
	// ErrHeartbeatTimeoutは、プロキシからのハートビート応答が途絶えた場合のエラーです。
	//
	// このエラーはコネクション全体に対して致命的です。
	ErrHeartbeatTimeout = fmt.Errorf("heartbeat timeout: %w", ErrWFProxy)
	// ErrConnectは、接続設定が不正な場合のエラーです。接続処理の前に検証されます。
	ErrConnect = fmt.Errorf("invalid connect settings: %w", ErrWFProxy)
	// ErrSignalProtocolは、シグナルハンドシェイクのプロトコル違反（二重応答など）のエラーです。
	ErrSignalProtocol = fmt.Errorf("signal protocol violation: %w", ErrWFProxy)
)

// ProxyErrorTypeは、プロキシの応答に含まれるエラー種別です。
type ProxyErrorType string

const (
	// ProxyErrorCustomは、種別が特定されないエラーです。
	ProxyErrorCustom ProxyErrorType = "custom"
	// ProxyErrorDomainAlreadyExistsは、登録済みドメインを再登録した場合のエラーです。
	ProxyErrorDomainAlreadyExists ProxyErrorType = "DomainAlreadyExistsError"
	// ProxyErrorEntityNotFoundは、存在しないエンティティを参照した場合のエラーです。
	ProxyErrorEntityNotFound ProxyErrorType = "EntityNotFoundError"
	// ProxyErrorBadRequestは、プロキシがリクエストを不正と判断した場合のエラーです。
	ProxyErrorBadRequest ProxyErrorType = "BadRequestError"
)

// ProxyErrorは、プロキシの応答メッセージに含まれていたエラーです。
//
// この層では解釈せず、そのまま呼び出し元へ返却します。
type ProxyError struct {
	Type    ProxyErrorType `json:"type"`    // エラー種別
	Message string         `json:"message"` // エラーメッセージ
}

func (e *ProxyError) Error() string {
	return fmt.Sprintf("proxy error type: %v message: %v", e.Type, e.Message)
}

func (e *ProxyError) Is(err error) bool {
	return err == ErrWFProxy
}

// NewProxyErrorは、ProxyErrorを返却します。
func NewProxyError(tp ProxyErrorType, msg string) *ProxyError {
	return &ProxyError{Type: tp, Message: msg}
}

// AsProxyErrorは、errがProxyErrorの場合、そのProxyErrorを返却します。
func AsProxyError(err error) (*ProxyError, bool) {
	var res *ProxyError
	ok := As(err, &res)
	return res, ok
}

func New(text string) error {
	return errors.New(text)
}

func Errorf(format string, a ...any) error {
	return fmt.Errorf(format, a...)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
