package wire

import (
	"bytes"
	"sync/atomic"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/message"
	"github.com/wfproxy/wfproxy-go/transport"
)

// MessageTransportConfigは、メッセージを伝送するトランスポートについての設定です。
type MessageTransportConfig struct {
	// Transportは、フレームを運ぶトランスポートです。
	Transport transport.ReadWriter

	// MaxMessageSizeは、許容する最大メッセージサイズです。
	// 0の場合、サイズ制限は行いません。
	MaxMessageSize Size
}

// NewMessageTransportは、メッセージを伝送するトランスポートを生成します。
func NewMessageTransport(c *MessageTransportConfig) *MessageTransport {
	return &MessageTransport{
		t:              c.Transport,
		maxMessageSize: c.MaxMessageSize,
	}
}

// MessageTransportは、メッセージを伝送するトランスポートです。
//
// メッセージをフレームへエンコードしてトランスポートへ書き込み、
// トランスポートから読み込んだフレームをメッセージへデコードします。
type MessageTransport struct {
	t              transport.ReadWriter
	maxMessageSize Size

	rx, tx uint64
}

// Readは、トランスポートからメッセージを読み込みます。
func (c *MessageTransport) Read() (message.Message, error) {
	bs, err := c.t.Read()
	if err != nil {
		return nil, err
	}
	if err := validateMessageSize(c.maxMessageSize, Size(len(bs))); err != nil {
		return nil, err
	}
	m, err := message.Deserialize(bytes.NewReader(bs), false)
	if err != nil {
		return nil, err
	}
	atomic.AddUint64(&c.rx, 1)
	return m, nil
}

// Writeは、トランスポートへメッセージを書き込みます。
func (c *MessageTransport) Write(m message.Message) error {
	bs, err := message.Serialize(m, false)
	if err != nil {
		return err
	}
	if err := validateMessageSize(c.maxMessageSize, Size(len(bs))); err != nil {
		return err
	}
	if err := c.t.Write(bs); err != nil {
		return err
	}
	atomic.AddUint64(&c.tx, 1)
	return nil
}

// RxMessageCounterValueは、トランスポートから読み込んだメッセージの数を返却します。
func (c *MessageTransport) RxMessageCounterValue() uint64 {
	return atomic.LoadUint64(&c.rx)
}

// TxMessageCounterValueは、トランスポートへ書き込んだメッセージの数を返却します。
func (c *MessageTransport) TxMessageCounterValue() uint64 {
	return atomic.LoadUint64(&c.tx)
}

// Closeは、トランスポートを閉じます。
func (c *MessageTransport) Close() error {
	return c.t.Close()
}

// UnderlyingTransportは、内部で使用しているトランスポートを返却します。
func (c *MessageTransport) UnderlyingTransport() transport.ReadWriter {
	return c.t
}

func validateMessageSize(max, actual Size) error {
	if max == 0 {
		return nil
	}
	if actual > max {
		return errors.Errorf("message size %s exceeds the limit %s: %w", actual, max, errors.ErrMessageTooLarge)
	}
	return nil
}
