package message

type (
	// InitializeRequestは、クライアントのコールバック用リスナーをプロキシへ通知するリクエストです。
	//
	// プロキシはここで通知されたアドレスへ、プロキシ発のメッセージをPUTします。
	InitializeRequest struct {
		*ProxyRequest
	}
	// InitializeReplyは、InitializeRequestに対する応答です。
	InitializeReply struct {
		*ProxyReply
	}

	// ConnectRequestは、オーケストレーションサーバーへの接続をプロキシへ依頼するリクエストです。
	ConnectRequest struct {
		*ProxyRequest
	}
	// ConnectReplyは、ConnectRequestに対する応答です。
	ConnectReply struct {
		*ProxyReply
	}

	// TerminateRequestは、プロキシの停止を依頼するリクエストです。
	TerminateRequest struct {
		*ProxyRequest
	}
	// TerminateReplyは、TerminateRequestに対する応答です。
	TerminateReply struct {
		*ProxyReply
	}

	// HeartbeatRequestは、クライアントとプロキシの間で疎通確認のために交換されるリクエストです。
	HeartbeatRequest struct {
		*ProxyRequest
	}
	// HeartbeatReplyは、HeartbeatRequestに対する応答です。
	HeartbeatReply struct {
		*ProxyReply
	}

	// CancelRequestは、送信済みリクエストのキャンセルを依頼するリクエストです。
	CancelRequest struct {
		*ProxyRequest
	}
	// CancelReplyは、CancelRequestに対する応答です。
	CancelReply struct {
		*ProxyReply
	}

	// EchoRequestは、フレーミングの疎通確認のために任意のペイロードを往復させるリクエストです。
	EchoRequest struct {
		*ProxyRequest
	}
	// EchoReplyは、EchoRequestに対する応答です。
	EchoReply struct {
		*ProxyReply
	}

	// LogRequestは、プロキシからクライアントへログエントリを転送するリクエストです。
	LogRequest struct {
		*ProxyRequest
	}
	// LogReplyは、LogRequestに対する応答です。
	LogReply struct {
		*ProxyReply
	}
)

// NewInitializeRequestは、InitializeRequestを返却します。
func NewInitializeRequest() *InitializeRequest {
	return &InitializeRequest{ProxyRequest: NewProxyRequest(TypeInitializeRequest)}
}

// GetLibraryAddressは、クライアントリスナーのアドレスを返却します。
func (r *InitializeRequest) GetLibraryAddress() *string {
	return r.GetStringProperty("LibraryAddress")
}

// SetLibraryAddressは、クライアントリスナーのアドレスを設定します。
func (r *InitializeRequest) SetLibraryAddress(v *string) {
	r.SetStringProperty("LibraryAddress", v)
}

// GetLibraryPortは、クライアントリスナーのポートを返却します。
func (r *InitializeRequest) GetLibraryPort() int32 {
	return r.GetInt32Property("LibraryPort")
}

// SetLibraryPortは、クライアントリスナーのポートを設定します。
func (r *InitializeRequest) SetLibraryPort(v int32) {
	r.SetInt32Property("LibraryPort", v)
}

// NewInitializeReplyは、InitializeReplyを返却します。
func NewInitializeReply() *InitializeReply {
	return &InitializeReply{ProxyReply: NewProxyReply(TypeInitializeReply)}
}

// NewConnectRequestは、ConnectRequestを返却します。
func NewConnectRequest() *ConnectRequest {
	return &ConnectRequest{ProxyRequest: NewProxyRequest(TypeConnectRequest)}
}

// GetIdentityは、クライアントの識別子を返却します。
func (r *ConnectRequest) GetIdentity() *string {
	return r.GetStringProperty("Identity")
}

// SetIdentityは、クライアントの識別子を設定します。
func (r *ConnectRequest) SetIdentity(v *string) {
	r.SetStringProperty("Identity", v)
}

// GetDomainは、接続先のドメインを返却します。
func (r *ConnectRequest) GetDomain() *string {
	return r.GetStringProperty("Domain")
}

// SetDomainは、接続先のドメインを設定します。
func (r *ConnectRequest) SetDomain(v *string) {
	r.SetStringProperty("Domain", v)
}

// GetCreateDomainは、ドメインが存在しない場合に作成するかどうかを返却します。
func (r *ConnectRequest) GetCreateDomain() bool {
	return r.GetBoolProperty("CreateDomain")
}

// SetCreateDomainは、ドメインが存在しない場合に作成するかどうかを設定します。
func (r *ConnectRequest) SetCreateDomain(v bool) {
	r.SetBoolProperty("CreateDomain", v)
}

// NewConnectReplyは、ConnectReplyを返却します。
func NewConnectReply() *ConnectReply {
	return &ConnectReply{ProxyReply: NewProxyReply(TypeConnectReply)}
}

// GetProtocolVersionは、プロキシのプロトコルバージョンを返却します。
func (r *ConnectReply) GetProtocolVersion() *string {
	return r.GetStringProperty("ProtocolVersion")
}

// SetProtocolVersionは、プロキシのプロトコルバージョンを設定します。
func (r *ConnectReply) SetProtocolVersion(v *string) {
	r.SetStringProperty("ProtocolVersion", v)
}

// NewTerminateRequestは、TerminateRequestを返却します。
func NewTerminateRequest() *TerminateRequest {
	return &TerminateRequest{ProxyRequest: NewProxyRequest(TypeTerminateRequest)}
}

// NewTerminateReplyは、TerminateReplyを返却します。
func NewTerminateReply() *TerminateReply {
	return &TerminateReply{ProxyReply: NewProxyReply(TypeTerminateReply)}
}

// NewHeartbeatRequestは、HeartbeatRequestを返却します。
func NewHeartbeatRequest() *HeartbeatRequest {
	return &HeartbeatRequest{ProxyRequest: NewProxyRequest(TypeHeartbeatRequest)}
}

// NewHeartbeatReplyは、HeartbeatReplyを返却します。
func NewHeartbeatReply() *HeartbeatReply {
	return &HeartbeatReply{ProxyReply: NewProxyReply(TypeHeartbeatReply)}
}

// NewCancelRequestは、CancelRequestを返却します。
func NewCancelRequest() *CancelRequest {
	return &CancelRequest{ProxyRequest: NewProxyRequest(TypeCancelRequest)}
}

// GetTargetRequestIDは、キャンセル対象のリクエストIDを返却します。
func (r *CancelRequest) GetTargetRequestID() int64 {
	return r.GetInt64Property("TargetRequestId")
}

// SetTargetRequestIDは、キャンセル対象のリクエストIDを設定します。
func (r *CancelRequest) SetTargetRequestID(v int64) {
	r.SetInt64Property("TargetRequestId", v)
}

// NewCancelReplyは、CancelReplyを返却します。
func NewCancelReply() *CancelReply {
	return &CancelReply{ProxyReply: NewProxyReply(TypeCancelReply)}
}

// GetWasCancelledは、対象リクエストが実際にキャンセルされたかどうかを返却します。
func (r *CancelReply) GetWasCancelled() bool {
	return r.GetBoolProperty("WasCancelled")
}

// SetWasCancelledは、対象リクエストが実際にキャンセルされたかどうかを設定します。
func (r *CancelReply) SetWasCancelled(v bool) {
	r.SetBoolProperty("WasCancelled", v)
}

// NewEchoRequestは、EchoRequestを返却します。
func NewEchoRequest() *EchoRequest {
	return &EchoRequest{ProxyRequest: NewProxyRequest(TypeEchoRequest)}
}

// GetPayloadは、往復させるペイロードを返却します。
func (r *EchoRequest) GetPayload() *string {
	return r.GetStringProperty("Payload")
}

// SetPayloadは、往復させるペイロードを設定します。
func (r *EchoRequest) SetPayload(v *string) {
	r.SetStringProperty("Payload", v)
}

// NewEchoReplyは、EchoReplyを返却します。
func NewEchoReply() *EchoReply {
	return &EchoReply{ProxyReply: NewProxyReply(TypeEchoReply)}
}

// GetPayloadは、往復したペイロードを返却します。
func (r *EchoReply) GetPayload() *string {
	return r.GetStringProperty("Payload")
}

// SetPayloadは、往復したペイロードを設定します。
func (r *EchoReply) SetPayload(v *string) {
	r.SetStringProperty("Payload", v)
}

// NewLogRequestは、LogRequestを返却します。
func NewLogRequest() *LogRequest {
	return &LogRequest{ProxyRequest: NewProxyRequest(TypeLogRequest)}
}

// GetLogLevelは、ログレベルを返却します。
func (r *LogRequest) GetLogLevel() *string {
	return r.GetStringProperty("LogLevel")
}

// SetLogLevelは、ログレベルを設定します。
func (r *LogRequest) SetLogLevel(v *string) {
	r.SetStringProperty("LogLevel", v)
}

// GetLogMessageは、ログメッセージを返却します。
func (r *LogRequest) GetLogMessage() *string {
	return r.GetStringProperty("LogMessage")
}

// SetLogMessageは、ログメッセージを設定します。
func (r *LogRequest) SetLogMessage(v *string) {
	r.SetStringProperty("LogMessage", v)
}

// NewLogReplyは、LogReplyを返却します。
func NewLogReply() *LogReply {
	return &LogReply{ProxyReply: NewProxyReply(TypeLogReply)}
}
