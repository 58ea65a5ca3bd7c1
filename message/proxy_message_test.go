package message_test

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfproxy/wfproxy-go/errors"
	. "github.com/wfproxy/wfproxy-go/message"
)

func TestProxyMessage_properties(t *testing.T) {
	m := NewProxyMessage()

	_, ok := m.GetProperty("missing")
	assert.False(t, ok)
	assert.Nil(t, m.GetStringProperty("missing"))
	assert.Equal(t, int32(0), m.GetInt32Property("missing"))
	assert.Equal(t, int64(0), m.GetInt64Property("missing"))
	assert.False(t, m.GetBoolProperty("missing"))

	m.SetStringProperty("String", pointer.ToString("value"))
	m.SetInt32Property("Int32", 32)
	m.SetInt64Property("Int64", 64)
	m.SetBoolProperty("Bool", true)

	assert.Equal(t, "value", *m.GetStringProperty("String"))
	assert.Equal(t, int32(32), m.GetInt32Property("Int32"))
	assert.Equal(t, int64(64), m.GetInt64Property("Int64"))
	assert.True(t, m.GetBoolProperty("Bool"))

	// 挿入順が保持されます。
	assert.Equal(t, []string{"String", "Int32", "Int64", "Bool"}, m.PropertyKeys())

	// 上書きしても順序は変わりません。
	m.SetStringProperty("String", pointer.ToString("updated"))
	assert.Equal(t, []string{"String", "Int32", "Int64", "Bool"}, m.PropertyKeys())
	assert.Equal(t, "updated", *m.GetStringProperty("String"))
}

func TestProxyMessage_jsonProperty(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	m := NewProxyMessage()
	require.NoError(t, m.SetJSONProperty("Payload", &payload{Name: "n", Count: 3}))

	var got payload
	require.NoError(t, m.GetJSONProperty("Payload", &got))
	assert.Equal(t, payload{Name: "n", Count: 3}, got)

	// 未設定のキーは何もしません。
	var zero payload
	require.NoError(t, m.GetJSONProperty("missing", &zero))
	assert.Equal(t, payload{}, zero)
}

func TestProxyReply_error(t *testing.T) {
	reply := NewDomainDescribeReply()
	assert.Nil(t, reply.GetError())

	reply.SetError(errors.NewProxyError(errors.ProxyErrorEntityNotFound, "domain missing not found"))
	got := reply.GetError()
	require.NotNil(t, got)
	assert.Equal(t, errors.ProxyErrorEntityNotFound, got.Type)
	assert.Equal(t, "domain missing not found", got.Message)

	reply.SetError(nil)
	assert.Nil(t, reply.GetError())
}

func TestReplyTypeOf(t *testing.T) {
	tests := []struct {
		request Type
		want    Type
	}{
		{request: TypeInitializeRequest, want: TypeInitializeReply},
		{request: TypeHeartbeatRequest, want: TypeHeartbeatReply},
		{request: TypeWorkflowSignalRequest, want: TypeWorkflowSignalReply},
		{request: TypeWorkflowSignalInvokeRequest, want: TypeWorkflowSignalInvokeReply},
		{request: TypeWorkflowSignalDoneRequest, want: TypeWorkflowSignalDoneReply},
		{request: TypeActivityInvokeRequest, want: TypeActivityInvokeReply},
		{request: TypeUnspecified, want: TypeUnspecified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ReplyTypeOf(tt.request))
	}
}

func TestRequestInterface(t *testing.T) {
	var _ Request = NewHeartbeatRequest()
	var _ Request = NewWorkflowSignalRequest()
	var _ Request = NewActivityInvokeRequest()
	var _ Reply = NewHeartbeatReply()
	var _ Reply = NewWorkflowSignalReply()
	var _ Reply = NewActivityInvokeReply()

	req := NewWorkflowSignalInvokeRequest()
	req.SetRequestID(11)
	req.SetContextID(22)
	req.SetSignalRequestID(33)
	assert.Equal(t, TypeWorkflowSignalInvokeReply, req.ReplyType())
	assert.Equal(t, int64(11), req.GetRequestID())
	assert.Equal(t, int64(22), req.GetContextID())
	assert.Equal(t, int64(33), req.GetSignalRequestID())
}
