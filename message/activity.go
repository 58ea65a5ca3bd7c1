package message

// ActivityRequestは、特定のアクティビティ実行コンテキストに紐づくリクエストのベースです。
//
// ProxyRequestにコンテキストIDを追加します。
type ActivityRequest struct {
	*ProxyRequest
}

// NewActivityRequestは、指定タイプのActivityRequestを返却します。
func NewActivityRequest(tp Type) *ActivityRequest {
	return &ActivityRequest{ProxyRequest: NewProxyRequest(tp)}
}

// GetContextIDは、アクティビティ実行コンテキストのIDを返却します。
func (r *ActivityRequest) GetContextID() int64 {
	return r.GetInt64Property(propContextID)
}

// SetContextIDは、アクティビティ実行コンテキストのIDを設定します。
func (r *ActivityRequest) SetContextID(v int64) {
	r.SetInt64Property(propContextID, v)
}

// ActivityReplyは、特定のアクティビティ実行コンテキストに紐づく応答のベースです。
type ActivityReply struct {
	*ProxyReply
}

// NewActivityReplyは、指定タイプのActivityReplyを返却します。
func NewActivityReply(tp Type) *ActivityReply {
	return &ActivityReply{ProxyReply: NewProxyReply(tp)}
}

// GetContextIDは、アクティビティ実行コンテキストのIDを返却します。
func (r *ActivityReply) GetContextID() int64 {
	return r.GetInt64Property(propContextID)
}

// SetContextIDは、アクティビティ実行コンテキストのIDを設定します。
func (r *ActivityReply) SetContextID(v int64) {
	r.SetInt64Property(propContextID, v)
}

// ActivityInvokeRequestは、アクティビティの実行をクライアントへ依頼するリクエストです。
type ActivityInvokeRequest struct {
	*ActivityRequest
}

// NewActivityInvokeRequestは、ActivityInvokeRequestを返却します。
func NewActivityInvokeRequest() *ActivityInvokeRequest {
	return &ActivityInvokeRequest{ActivityRequest: NewActivityRequest(TypeActivityInvokeRequest)}
}

// GetActivityNameは、アクティビティ名を返却します。
func (r *ActivityInvokeRequest) GetActivityName() *string {
	return r.GetStringProperty("ActivityName")
}

// SetActivityNameは、アクティビティ名を設定します。
func (r *ActivityInvokeRequest) SetActivityName(v *string) {
	r.SetStringProperty("ActivityName", v)
}

// GetArgsは、JSONエンコードされた引数を返却します。
func (r *ActivityInvokeRequest) GetArgs() *string {
	return r.GetStringProperty("Args")
}

// SetArgsは、JSONエンコードされた引数を設定します。
func (r *ActivityInvokeRequest) SetArgs(v *string) {
	r.SetStringProperty("Args", v)
}

// ActivityInvokeReplyは、ActivityInvokeRequestに対する応答です。
type ActivityInvokeReply struct {
	*ActivityReply
}

// NewActivityInvokeReplyは、ActivityInvokeReplyを返却します。
func NewActivityInvokeReply() *ActivityInvokeReply {
	return &ActivityInvokeReply{ActivityReply: NewActivityReply(TypeActivityInvokeReply)}
}

// GetResultは、JSONエンコードされた実行結果を返却します。
func (r *ActivityInvokeReply) GetResult() *string {
	return r.GetStringProperty("Result")
}

// SetResultは、JSONエンコードされた実行結果を設定します。
func (r *ActivityInvokeReply) SetResult(v *string) {
	r.SetStringProperty("Result", v)
}
