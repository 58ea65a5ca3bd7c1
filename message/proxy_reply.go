package message

import (
	"encoding/json"

	"github.com/wfproxy/wfproxy-go/errors"
)

// ProxyReplyは、リクエストに対する全応答メッセージのベースです。
//
// エンベロープにリクエストIDとエラーを追加します。
type ProxyReply struct {
	*ProxyMessage
}

// NewProxyReplyは、指定タイプのProxyReplyを返却します。
func NewProxyReply(tp Type) *ProxyReply {
	reply := &ProxyReply{ProxyMessage: NewProxyMessage()}
	reply.SetType(tp)
	return reply
}

// GetRequestIDは、対応するリクエストのリクエストIDを返却します。
func (r *ProxyReply) GetRequestID() int64 {
	return r.GetInt64Property(propRequestID)
}

// SetRequestIDは、対応するリクエストのリクエストIDを設定します。
func (r *ProxyReply) SetRequestID(v int64) {
	r.SetInt64Property(propRequestID, v)
}

// GetErrorは、応答に含まれるエラーを返却します。エラーがない場合はnilを返却します。
func (r *ProxyReply) GetError() *errors.ProxyError {
	s := r.GetStringProperty(propError)
	if s == nil {
		return nil
	}
	var res errors.ProxyError
	if err := json.Unmarshal([]byte(*s), &res); err != nil {
		return nil
	}
	return &res
}

// SetErrorは、応答にエラーを設定します。nilを指定した場合はエラーなしを表します。
func (r *ProxyReply) SetError(v *errors.ProxyError) {
	if v == nil {
		r.SetProperty(propError, nil)
		return
	}
	r.SetJSONProperty(propError, v) //nolint:errcheck
}
