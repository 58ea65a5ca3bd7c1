package message

import (
	"github.com/wfproxy/wfproxy-go/errors"
)

type (
	// WorkflowSignalRequestは、実行中のワークフローへ同期シグナルを送信するリクエストです。
	//
	// 送信側はワークフロー本体がシグナルを処理し応答するまでブロックします。
	WorkflowSignalRequest struct {
		*WorkflowRequest
	}
	// WorkflowSignalReplyは、WorkflowSignalRequestに対する応答です。
	//
	// ワークフロー本体が生成した結果を含みます。
	WorkflowSignalReply struct {
		*WorkflowReply
	}

	// WorkflowSignalInvokeRequestは、プロキシがクライアントのワークフローへシグナルを配送するリクエストです。
	WorkflowSignalInvokeRequest struct {
		*WorkflowRequest
	}
	// WorkflowSignalInvokeReplyは、WorkflowSignalInvokeRequestに対する応答です。
	//
	// Pendingがtrueの場合、シグナルは受理されたがワークフロー本体の処理は未完了であることを
	// 表します。ホストランタイムはこの応答を「まだ完了していない」として扱います。
	WorkflowSignalInvokeReply struct {
		*WorkflowReply
	}

	// WorkflowSignalDoneRequestは、ワークフロー本体がシグナル処理を完了したことをプロキシへ通知するリクエストです。
	//
	// このリクエストの到着により、プロキシは対応するWorkflowSignalRequestの送信元へ結果を返却します。
	WorkflowSignalDoneRequest struct {
		*WorkflowRequest
	}
	// WorkflowSignalDoneReplyは、WorkflowSignalDoneRequestに対する応答です。
	WorkflowSignalDoneReply struct {
		*WorkflowReply
	}
)

// NewWorkflowSignalRequestは、WorkflowSignalRequestを返却します。
func NewWorkflowSignalRequest() *WorkflowSignalRequest {
	return &WorkflowSignalRequest{WorkflowRequest: NewWorkflowRequest(TypeWorkflowSignalRequest)}
}

// GetSignalNameは、シグナル名を返却します。
func (r *WorkflowSignalRequest) GetSignalName() *string {
	return r.GetStringProperty("SignalName")
}

// SetSignalNameは、シグナル名を設定します。
func (r *WorkflowSignalRequest) SetSignalName(v *string) {
	r.SetStringProperty("SignalName", v)
}

// GetSignalArgsは、名前付き引数を返却します。
func (r *WorkflowSignalRequest) GetSignalArgs() (map[string]any, error) {
	var res map[string]any
	if err := r.GetJSONProperty("SignalArgs", &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SetSignalArgsは、名前付き引数を設定します。
func (r *WorkflowSignalRequest) SetSignalArgs(v map[string]any) error {
	return r.SetJSONProperty("SignalArgs", v)
}

// NewWorkflowSignalReplyは、WorkflowSignalReplyを返却します。
func NewWorkflowSignalReply() *WorkflowSignalReply {
	return &WorkflowSignalReply{WorkflowReply: NewWorkflowReply(TypeWorkflowSignalReply)}
}

// GetResultは、JSONエンコードされたシグナル処理結果を返却します。
func (r *WorkflowSignalReply) GetResult() *string {
	return r.GetStringProperty("Result")
}

// SetResultは、JSONエンコードされたシグナル処理結果を設定します。
func (r *WorkflowSignalReply) SetResult(v *string) {
	r.SetStringProperty("Result", v)
}

// NewWorkflowSignalInvokeRequestは、WorkflowSignalInvokeRequestを返却します。
func NewWorkflowSignalInvokeRequest() *WorkflowSignalInvokeRequest {
	return &WorkflowSignalInvokeRequest{WorkflowRequest: NewWorkflowRequest(TypeWorkflowSignalInvokeRequest)}
}

// GetSignalNameは、シグナル名を返却します。
func (r *WorkflowSignalInvokeRequest) GetSignalName() *string {
	return r.GetStringProperty("SignalName")
}

// SetSignalNameは、シグナル名を設定します。
func (r *WorkflowSignalInvokeRequest) SetSignalName(v *string) {
	r.SetStringProperty("SignalName", v)
}

// GetSignalArgsは、名前付き引数を返却します。
func (r *WorkflowSignalInvokeRequest) GetSignalArgs() (map[string]any, error) {
	var res map[string]any
	if err := r.GetJSONProperty("SignalArgs", &res); err != nil {
		return nil, err
	}
	return res, nil
}

// SetSignalArgsは、名前付き引数を設定します。
func (r *WorkflowSignalInvokeRequest) SetSignalArgs(v map[string]any) error {
	return r.SetJSONProperty("SignalArgs", v)
}

// GetSignalRequestIDは、プロキシ側で対応するWorkflowSignalRequestのリクエストIDを返却します。
func (r *WorkflowSignalInvokeRequest) GetSignalRequestID() int64 {
	return r.GetInt64Property("SignalRequestId")
}

// SetSignalRequestIDは、プロキシ側で対応するWorkflowSignalRequestのリクエストIDを設定します。
func (r *WorkflowSignalInvokeRequest) SetSignalRequestID(v int64) {
	r.SetInt64Property("SignalRequestId", v)
}

// NewWorkflowSignalInvokeReplyは、WorkflowSignalInvokeReplyを返却します。
func NewWorkflowSignalInvokeReply() *WorkflowSignalInvokeReply {
	return &WorkflowSignalInvokeReply{WorkflowReply: NewWorkflowReply(TypeWorkflowSignalInvokeReply)}
}

// GetPendingは、シグナル処理が未完了かどうかを返却します。
func (r *WorkflowSignalInvokeReply) GetPending() bool {
	return r.GetBoolProperty("Pending")
}

// SetPendingは、シグナル処理が未完了かどうかを設定します。
func (r *WorkflowSignalInvokeReply) SetPending(v bool) {
	r.SetBoolProperty("Pending", v)
}

// NewWorkflowSignalDoneRequestは、WorkflowSignalDoneRequestを返却します。
func NewWorkflowSignalDoneRequest() *WorkflowSignalDoneRequest {
	return &WorkflowSignalDoneRequest{WorkflowRequest: NewWorkflowRequest(TypeWorkflowSignalDoneRequest)}
}

// GetSignalRequestIDは、完了対象のWorkflowSignalRequestのリクエストIDを返却します。
func (r *WorkflowSignalDoneRequest) GetSignalRequestID() int64 {
	return r.GetInt64Property("SignalRequestId")
}

// SetSignalRequestIDは、完了対象のWorkflowSignalRequestのリクエストIDを設定します。
func (r *WorkflowSignalDoneRequest) SetSignalRequestID(v int64) {
	r.SetInt64Property("SignalRequestId", v)
}

// GetResultは、JSONエンコードされたシグナル処理結果を返却します。
func (r *WorkflowSignalDoneRequest) GetResult() *string {
	return r.GetStringProperty("Result")
}

// SetResultは、JSONエンコードされたシグナル処理結果を設定します。
func (r *WorkflowSignalDoneRequest) SetResult(v *string) {
	r.SetStringProperty("Result", v)
}

// GetSignalErrorは、シグナル処理で発生したエラーを返却します。エラーがない場合はnilを返却します。
func (r *WorkflowSignalDoneRequest) GetSignalError() *errors.ProxyError {
	s := r.GetStringProperty("SignalError")
	if s == nil {
		return nil
	}
	var res errors.ProxyError
	if err := r.GetJSONProperty("SignalError", &res); err != nil {
		return nil
	}
	return &res
}

// SetSignalErrorは、シグナル処理で発生したエラーを設定します。
func (r *WorkflowSignalDoneRequest) SetSignalError(v *errors.ProxyError) {
	if v == nil {
		r.SetProperty("SignalError", nil)
		return
	}
	r.SetJSONProperty("SignalError", v) //nolint:errcheck
}

// NewWorkflowSignalDoneReplyは、WorkflowSignalDoneReplyを返却します。
func NewWorkflowSignalDoneReply() *WorkflowSignalDoneReply {
	return &WorkflowSignalDoneReply{WorkflowReply: NewWorkflowReply(TypeWorkflowSignalDoneReply)}
}
