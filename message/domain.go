package message

type (
	// DomainRegisterRequestは、ドメインの登録をプロキシへ依頼するリクエストです。
	DomainRegisterRequest struct {
		*ProxyRequest
	}
	// DomainRegisterReplyは、DomainRegisterRequestに対する応答です。
	//
	// 登録済みドメインを再登録した場合、エラー種別 DomainAlreadyExistsError を含みます。
	DomainRegisterReply struct {
		*ProxyReply
	}

	// DomainDescribeRequestは、ドメイン情報の取得をプロキシへ依頼するリクエストです。
	DomainDescribeRequest struct {
		*ProxyRequest
	}
	// DomainDescribeReplyは、DomainDescribeRequestに対する応答です。
	//
	// 存在しないドメインを指定した場合、エラー種別 EntityNotFoundError を含みます。
	DomainDescribeReply struct {
		*ProxyReply
	}
)

// NewDomainRegisterRequestは、DomainRegisterRequestを返却します。
func NewDomainRegisterRequest() *DomainRegisterRequest {
	return &DomainRegisterRequest{ProxyRequest: NewProxyRequest(TypeDomainRegisterRequest)}
}

// GetNameは、登録するドメイン名を返却します。
func (r *DomainRegisterRequest) GetName() *string {
	return r.GetStringProperty("Name")
}

// SetNameは、登録するドメイン名を設定します。
func (r *DomainRegisterRequest) SetName(v *string) {
	r.SetStringProperty("Name", v)
}

// GetDescriptionは、ドメインの説明を返却します。
func (r *DomainRegisterRequest) GetDescription() *string {
	return r.GetStringProperty("Description")
}

// SetDescriptionは、ドメインの説明を設定します。
func (r *DomainRegisterRequest) SetDescription(v *string) {
	r.SetStringProperty("Description", v)
}

// GetOwnerEmailは、ドメイン所有者のメールアドレスを返却します。
func (r *DomainRegisterRequest) GetOwnerEmail() *string {
	return r.GetStringProperty("OwnerEmail")
}

// SetOwnerEmailは、ドメイン所有者のメールアドレスを設定します。
func (r *DomainRegisterRequest) SetOwnerEmail(v *string) {
	r.SetStringProperty("OwnerEmail", v)
}

// GetRetentionDaysは、ワークフローヒストリの保持日数を返却します。
func (r *DomainRegisterRequest) GetRetentionDays() int32 {
	return r.GetInt32Property("RetentionDays")
}

// SetRetentionDaysは、ワークフローヒストリの保持日数を設定します。
func (r *DomainRegisterRequest) SetRetentionDays(v int32) {
	r.SetInt32Property("RetentionDays", v)
}

// NewDomainRegisterReplyは、DomainRegisterReplyを返却します。
func NewDomainRegisterReply() *DomainRegisterReply {
	return &DomainRegisterReply{ProxyReply: NewProxyReply(TypeDomainRegisterReply)}
}

// NewDomainDescribeRequestは、DomainDescribeRequestを返却します。
func NewDomainDescribeRequest() *DomainDescribeRequest {
	return &DomainDescribeRequest{ProxyRequest: NewProxyRequest(TypeDomainDescribeRequest)}
}

// GetNameは、取得するドメイン名を返却します。
func (r *DomainDescribeRequest) GetName() *string {
	return r.GetStringProperty("Name")
}

// SetNameは、取得するドメイン名を設定します。
func (r *DomainDescribeRequest) SetName(v *string) {
	r.SetStringProperty("Name", v)
}

// NewDomainDescribeReplyは、DomainDescribeReplyを返却します。
func NewDomainDescribeReply() *DomainDescribeReply {
	return &DomainDescribeReply{ProxyReply: NewProxyReply(TypeDomainDescribeReply)}
}

// GetDomainNameは、ドメイン名を返却します。
func (r *DomainDescribeReply) GetDomainName() *string {
	return r.GetStringProperty("DomainName")
}

// SetDomainNameは、ドメイン名を設定します。
func (r *DomainDescribeReply) SetDomainName(v *string) {
	r.SetStringProperty("DomainName", v)
}

// GetDomainDescriptionは、ドメインの説明を返却します。
func (r *DomainDescribeReply) GetDomainDescription() *string {
	return r.GetStringProperty("DomainDescription")
}

// SetDomainDescriptionは、ドメインの説明を設定します。
func (r *DomainDescribeReply) SetDomainDescription(v *string) {
	r.SetStringProperty("DomainDescription", v)
}

// GetDomainOwnerEmailは、ドメイン所有者のメールアドレスを返却します。
func (r *DomainDescribeReply) GetDomainOwnerEmail() *string {
	return r.GetStringProperty("DomainOwnerEmail")
}

// SetDomainOwnerEmailは、ドメイン所有者のメールアドレスを設定します。
func (r *DomainDescribeReply) SetDomainOwnerEmail(v *string) {
	r.SetStringProperty("DomainOwnerEmail", v)
}
