package message

// messageFactoriesは、タイプコードからメッセージを生成するファクトリです。
var messageFactories = map[Type]func() Message{
	TypeInitializeRequest:     func() Message { return NewInitializeRequest() },
	TypeInitializeReply:       func() Message { return NewInitializeReply() },
	TypeConnectRequest:        func() Message { return NewConnectRequest() },
	TypeConnectReply:          func() Message { return NewConnectReply() },
	TypeTerminateRequest:      func() Message { return NewTerminateRequest() },
	TypeTerminateReply:        func() Message { return NewTerminateReply() },
	TypeHeartbeatRequest:      func() Message { return NewHeartbeatRequest() },
	TypeHeartbeatReply:        func() Message { return NewHeartbeatReply() },
	TypeCancelRequest:         func() Message { return NewCancelRequest() },
	TypeCancelReply:           func() Message { return NewCancelReply() },
	TypeEchoRequest:           func() Message { return NewEchoRequest() },
	TypeEchoReply:             func() Message { return NewEchoReply() },
	TypeLogRequest:            func() Message { return NewLogRequest() },
	TypeLogReply:              func() Message { return NewLogReply() },
	TypeDomainRegisterRequest: func() Message { return NewDomainRegisterRequest() },
	TypeDomainRegisterReply:   func() Message { return NewDomainRegisterReply() },
	TypeDomainDescribeRequest: func() Message { return NewDomainDescribeRequest() },
	TypeDomainDescribeReply:   func() Message { return NewDomainDescribeReply() },

	TypeWorkflowSignalRequest:       func() Message { return NewWorkflowSignalRequest() },
	TypeWorkflowSignalReply:         func() Message { return NewWorkflowSignalReply() },
	TypeWorkflowSignalInvokeRequest: func() Message { return NewWorkflowSignalInvokeRequest() },
	TypeWorkflowSignalInvokeReply:   func() Message { return NewWorkflowSignalInvokeReply() },
	TypeWorkflowSignalDoneRequest:   func() Message { return NewWorkflowSignalDoneRequest() },
	TypeWorkflowSignalDoneReply:     func() Message { return NewWorkflowSignalDoneReply() },

	TypeActivityInvokeRequest: func() Message { return NewActivityInvokeRequest() },
	TypeActivityInvokeReply:   func() Message { return NewActivityInvokeReply() },
}

// replyTypesは、リクエストのタイプコードから対応する応答のタイプコードへのマッピングです。
var replyTypes = map[Type]Type{
	TypeInitializeRequest:           TypeInitializeReply,
	TypeConnectRequest:              TypeConnectReply,
	TypeTerminateRequest:            TypeTerminateReply,
	TypeHeartbeatRequest:            TypeHeartbeatReply,
	TypeCancelRequest:               TypeCancelReply,
	TypeEchoRequest:                 TypeEchoReply,
	TypeLogRequest:                  TypeLogReply,
	TypeDomainRegisterRequest:       TypeDomainRegisterReply,
	TypeDomainDescribeRequest:       TypeDomainDescribeReply,
	TypeWorkflowSignalRequest:       TypeWorkflowSignalReply,
	TypeWorkflowSignalInvokeRequest: TypeWorkflowSignalInvokeReply,
	TypeWorkflowSignalDoneRequest:   TypeWorkflowSignalDoneReply,
	TypeActivityInvokeRequest:       TypeActivityInvokeReply,
}

// ReplyTypeOfは、リクエストのタイプコードに対応する応答のタイプコードを返却します。
//
// 対応する応答がない場合は TypeUnspecified を返却します。
func ReplyTypeOf(tp Type) Type {
	res, ok := replyTypes[tp]
	if !ok {
		return TypeUnspecified
	}
	return res
}

// newMessageは、タイプコードに対応するメッセージを生成します。
//
// 未知のタイプコードの場合は、ベースのエンベロープをそのまま返却します。
// 将来のスキーマバージョンのメッセージでも共通プレフィックスは解釈できます。
func newMessage(tp Type) Message {
	f, ok := messageFactories[tp]
	if !ok {
		m := NewProxyMessage()
		m.SetType(tp)
		return m
	}
	return f()
}
