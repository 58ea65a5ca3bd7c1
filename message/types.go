package message

// Typeは、メッセージのタイプコードです。
//
// ワイヤ上ではint32（リトルエンディアン）としてエンコードされます。
type Type int32

const (
	// TypeUnspecifiedは、タイプコードが未指定であることを表します。
	TypeUnspecified Type = 0

	// クライアント全般のメッセージです。

	TypeInitializeRequest     Type = 1
	TypeInitializeReply       Type = 2
	TypeConnectRequest        Type = 3
	TypeConnectReply          Type = 4
	TypeTerminateRequest      Type = 5
	TypeTerminateReply        Type = 6
	TypeHeartbeatRequest      Type = 7
	TypeHeartbeatReply        Type = 8
	TypeCancelRequest         Type = 9
	TypeCancelReply           Type = 10
	TypeEchoRequest           Type = 11
	TypeEchoReply             Type = 12
	TypeLogRequest            Type = 13
	TypeLogReply              Type = 14
	TypeDomainRegisterRequest Type = 15
	TypeDomainRegisterReply   Type = 16
	TypeDomainDescribeRequest Type = 17
	TypeDomainDescribeReply   Type = 18

	// ワークフローコンテキストに紐づくメッセージです。

	TypeWorkflowSignalRequest      Type = 100
	TypeWorkflowSignalReply        Type = 101
	TypeWorkflowSignalInvokeRequest Type = 102
	TypeWorkflowSignalInvokeReply   Type = 103
	TypeWorkflowSignalDoneRequest   Type = 104
	TypeWorkflowSignalDoneReply     Type = 105

	// アクティビティコンテキストに紐づくメッセージです。

	TypeActivityInvokeRequest Type = 200
	TypeActivityInvokeReply   Type = 201
)

// ReplayStatusは、ワークフロー応答に含まれるリプレイ状態です。
type ReplayStatus int32

const (
	// ReplayStatusUnspecifiedは、リプレイ状態が不明であることを表します。
	ReplayStatusUnspecified ReplayStatus = 0
	// ReplayStatusNotReplayingは、ワークフローがリプレイ中でないことを表します。
	ReplayStatusNotReplaying ReplayStatus = 1
	// ReplayStatusReplayingは、ワークフローがヒストリをリプレイ中であることを表します。
	ReplayStatusReplaying ReplayStatus = 2
)
