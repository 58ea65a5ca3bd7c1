package message

// WorkflowRequestは、特定のワークフロー実行コンテキストに紐づくリクエストのベースです。
//
// ProxyRequestにコンテキストIDを追加します。
type WorkflowRequest struct {
	*ProxyRequest
}

// NewWorkflowRequestは、指定タイプのWorkflowRequestを返却します。
func NewWorkflowRequest(tp Type) *WorkflowRequest {
	return &WorkflowRequest{ProxyRequest: NewProxyRequest(tp)}
}

// GetContextIDは、ワークフロー実行コンテキストのIDを返却します。
func (r *WorkflowRequest) GetContextID() int64 {
	return r.GetInt64Property(propContextID)
}

// SetContextIDは、ワークフロー実行コンテキストのIDを設定します。
func (r *WorkflowRequest) SetContextID(v int64) {
	r.SetInt64Property(propContextID, v)
}

// WorkflowReplyは、特定のワークフロー実行コンテキストに紐づく応答のベースです。
//
// ProxyReplyにコンテキストIDとリプレイ状態を追加します。
type WorkflowReply struct {
	*ProxyReply
}

// NewWorkflowReplyは、指定タイプのWorkflowReplyを返却します。
func NewWorkflowReply(tp Type) *WorkflowReply {
	return &WorkflowReply{ProxyReply: NewProxyReply(tp)}
}

// GetContextIDは、ワークフロー実行コンテキストのIDを返却します。
func (r *WorkflowReply) GetContextID() int64 {
	return r.GetInt64Property(propContextID)
}

// SetContextIDは、ワークフロー実行コンテキストのIDを設定します。
func (r *WorkflowReply) SetContextID(v int64) {
	r.SetInt64Property(propContextID, v)
}

// GetReplayStatusは、リプレイ状態を返却します。
func (r *WorkflowReply) GetReplayStatus() ReplayStatus {
	return ReplayStatus(r.GetInt32Property(propReplayStatus))
}

// SetReplayStatusは、リプレイ状態を設定します。
func (r *WorkflowReply) SetReplayStatus(v ReplayStatus) {
	r.SetInt32Property(propReplayStatus, int32(v))
}
