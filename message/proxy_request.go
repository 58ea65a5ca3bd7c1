package message

// エンベロープ共通のプロパティキーです。
const (
	propRequestID     = "RequestId"
	propIsCancellable = "IsCancellable"
	propError         = "Error"
	propContextID     = "ContextId"
	propReplayStatus  = "ReplayStatus"
)

// ProxyRequestは、応答を期待する全リクエストメッセージのベースです。
//
// エンベロープにリクエストIDとキャンセル可否を追加します。
type ProxyRequest struct {
	*ProxyMessage
}

// NewProxyRequestは、指定タイプのProxyRequestを返却します。
func NewProxyRequest(tp Type) *ProxyRequest {
	req := &ProxyRequest{ProxyMessage: NewProxyMessage()}
	req.SetType(tp)
	return req
}

// GetRequestIDは、リクエストIDを返却します。0は未採番を表します。
func (r *ProxyRequest) GetRequestID() int64 {
	return r.GetInt64Property(propRequestID)
}

// SetRequestIDは、リクエストIDを設定します。
func (r *ProxyRequest) SetRequestID(v int64) {
	r.SetInt64Property(propRequestID, v)
}

// GetIsCancellableは、リクエストがキャンセル可能かどうかを返却します。
func (r *ProxyRequest) GetIsCancellable() bool {
	return r.GetBoolProperty(propIsCancellable)
}

// SetIsCancellableは、リクエストがキャンセル可能かどうかを設定します。
func (r *ProxyRequest) SetIsCancellable(v bool) {
	r.SetBoolProperty(propIsCancellable, v)
}

// ReplyTypeは、このリクエストに対応する応答メッセージのタイプコードを返却します。
func (r *ProxyRequest) ReplyType() Type {
	return ReplyTypeOf(r.GetType())
}
