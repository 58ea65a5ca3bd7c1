package message

import (
	"encoding/json"
	"strconv"

	"github.com/wfproxy/wfproxy-go/errors"
)

// ProxyMessageは、全メッセージのベースとなるエンベロープです。
//
// プロパティは挿入順を保持します。プロパティ値は「非空文字列」「空文字列」「null」の
// 3状態を区別します。添付バイナリも「空バッファ」と「null」を区別します。
type ProxyMessage struct {
	messageType Type

	propertyKeys []string
	properties   map[string]*string

	attachments [][]byte
}

// NewProxyMessageは、空のProxyMessageを返却します。
func NewProxyMessage() *ProxyMessage {
	return &ProxyMessage{
		messageType:  TypeUnspecified,
		propertyKeys: []string{},
		properties:   map[string]*string{},
		attachments:  [][]byte{},
	}
}

// Baseは、自分自身を返却します。
func (m *ProxyMessage) Base() *ProxyMessage {
	return m
}

// GetTypeは、メッセージのタイプコードを返却します。
func (m *ProxyMessage) GetType() Type {
	return m.messageType
}

// SetTypeは、メッセージのタイプコードを設定します。
func (m *ProxyMessage) SetType(tp Type) {
	m.messageType = tp
}

// PropertyKeysは、プロパティのキーを挿入順で返却します。
func (m *ProxyMessage) PropertyKeys() []string {
	return m.propertyKeys
}

// PropertyCountは、プロパティの数を返却します。
func (m *ProxyMessage) PropertyCount() int {
	return len(m.propertyKeys)
}

// GetPropertyは、プロパティ値を返却します。
//
// 2番目の返却値は、キーが存在するかどうかを表します。値がnullのプロパティも存在扱いです。
func (m *ProxyMessage) GetProperty(key string) (*string, bool) {
	v, ok := m.properties[key]
	return v, ok
}

// SetPropertyは、プロパティ値を設定します。vがnilの場合はnullを設定します。
func (m *ProxyMessage) SetProperty(key string, v *string) {
	if _, ok := m.properties[key]; !ok {
		m.propertyKeys = append(m.propertyKeys, key)
	}
	m.properties[key] = v
}

// Attachmentsは、添付バイナリのシーケンスを返却します。
func (m *ProxyMessage) Attachments() [][]byte {
	return m.attachments
}

// AttachmentCountは、添付バイナリの数を返却します。
func (m *ProxyMessage) AttachmentCount() int {
	return len(m.attachments)
}

// GetAttachmentは、指定インデックスの添付バイナリを返却します。範囲外の場合はnilを返却します。
func (m *ProxyMessage) GetAttachment(index int) []byte {
	if index < 0 || index >= len(m.attachments) {
		return nil
	}
	return m.attachments[index]
}

// AppendAttachmentは、添付バイナリを末尾に追加します。nilも追加できます。
func (m *ProxyMessage) AppendAttachment(b []byte) {
	m.attachments = append(m.attachments, b)
}

// SetAttachmentsは、添付バイナリのシーケンスを設定します。
func (m *ProxyMessage) SetAttachments(bs [][]byte) {
	if bs == nil {
		bs = [][]byte{}
	}
	m.attachments = bs
}

// GetStringPropertyは、文字列プロパティを返却します。未設定・nullの場合はnilを返却します。
func (m *ProxyMessage) GetStringProperty(key string) *string {
	v, ok := m.properties[key]
	if !ok {
		return nil
	}
	return v
}

// SetStringPropertyは、文字列プロパティを設定します。
func (m *ProxyMessage) SetStringProperty(key string, v *string) {
	m.SetProperty(key, v)
}

// GetInt32Propertyは、int32プロパティを返却します。未設定・不正な場合は0を返却します。
func (m *ProxyMessage) GetInt32Property(key string) int32 {
	v := m.GetStringProperty(key)
	if v == nil {
		return 0
	}
	res, err := strconv.ParseInt(*v, 10, 32)
	if err != nil {
		return 0
	}
	return int32(res)
}

// SetInt32Propertyは、int32プロパティを設定します。
func (m *ProxyMessage) SetInt32Property(key string, v int32) {
	s := strconv.FormatInt(int64(v), 10)
	m.SetProperty(key, &s)
}

// GetInt64Propertyは、int64プロパティを返却します。未設定・不正な場合は0を返却します。
func (m *ProxyMessage) GetInt64Property(key string) int64 {
	v := m.GetStringProperty(key)
	if v == nil {
		return 0
	}
	res, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return 0
	}
	return res
}

// SetInt64Propertyは、int64プロパティを設定します。
func (m *ProxyMessage) SetInt64Property(key string, v int64) {
	s := strconv.FormatInt(v, 10)
	m.SetProperty(key, &s)
}

// GetBoolPropertyは、boolプロパティを返却します。未設定・不正な場合はfalseを返却します。
func (m *ProxyMessage) GetBoolProperty(key string) bool {
	v := m.GetStringProperty(key)
	if v == nil {
		return false
	}
	res, err := strconv.ParseBool(*v)
	if err != nil {
		return false
	}
	return res
}

// SetBoolPropertyは、boolプロパティを設定します。
func (m *ProxyMessage) SetBoolProperty(key string, v bool) {
	s := strconv.FormatBool(v)
	m.SetProperty(key, &s)
}

// GetJSONPropertyは、JSONエンコードされたプロパティをvへデコードします。
//
// プロパティが未設定・nullの場合は何もせずnilを返却します。
func (m *ProxyMessage) GetJSONProperty(key string, v any) error {
	s := m.GetStringProperty(key)
	if s == nil {
		return nil
	}
	if err := json.Unmarshal([]byte(*s), v); err != nil {
		return errors.Errorf("failed to unmarshal property %q: %w", key, err)
	}
	return nil
}

// SetJSONPropertyは、vをJSONエンコードしてプロパティに設定します。vがnilの場合はnullを設定します。
func (m *ProxyMessage) SetJSONProperty(key string, v any) error {
	if v == nil {
		m.SetProperty(key, nil)
		return nil
	}
	bs, err := json.Marshal(v)
	if err != nil {
		return errors.Errorf("failed to marshal property %q: %w", key, err)
	}
	s := string(bs)
	m.SetProperty(key, &s)
	return nil
}
