package websocket

import (
	"crypto/tls"
	"net/http"
	"net/url"
	"time"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/transport"
)

// DialConfigは、DialFuncへ渡される設定です。
type DialConfig struct {
	// URLは、接続先URLです。
	URL string

	// Headerは、接続時に付与するHTTPヘッダーです。nilの可能性があります。
	Header http.Header

	// TLSConfigは、TLS設定です。
	TLSConfig *tls.Config

	// DialTimeoutは、WebSocket接続のタイムアウトです。
	// 0に設定された場合、タイムアウトは設定されません。
	DialTimeout time.Duration
}

// DialFunc はConnを返却する関数です。
//
// 実装したDialFuncは、RegisterDialFuncを使用して登録します。
type DialFunc func(c DialConfig) (Conn, error)

var dialFunc DialFunc

// RegisterDialFuncは、DialFuncを登録します。
//
// DialFuncを登録すると、WebSocketトランスポートはライブラリ内で登録されたDialFuncを使用します。
func RegisterDialFunc(f DialFunc) {
	if dialFunc != nil {
		panic("already registered dialFunc")
	}
	dialFunc = f
}

var defaultDialerConfig = DialerConfig{
	Path:        "/message",
	DialTimeout: 10 * time.Second,
}

// DialerConfigはDialerの設定です。
type DialerConfig struct {
	// Pathは、接続先URLのパスを指定します。
	// 空の場合は `/message` が使用されます。
	Path string

	// TLSConfigは、TLS設定です。
	TLSConfig *tls.Config

	// DialTimeoutは、WebSocket接続のタイムアウトです。
	// 0に設定された場合は、デフォルト値(10秒)が使用されます。
	DialTimeout time.Duration
}

// Dialは、デフォルト設定を使ってトランスポート接続を開始します。
func Dial(c transport.DialConfig) (transport.ReadWriter, error) {
	return DialWithConfig(c, defaultDialerConfig)
}

// DialWithConfigは、トランスポート接続を開始します。
func DialWithConfig(c transport.DialConfig, cc DialerConfig) (transport.ReadWriter, error) {
	d := &Dialer{DialerConfig: cc}
	return d.Dial(c)
}

// Dialerは、トランスポート接続を開始します。
type Dialer struct {
	DialerConfig
}

// NewDefaultDialerは、デフォルト設定のDialerを返却します。
func NewDefaultDialer() *Dialer {
	return NewDialer(defaultDialerConfig)
}

// NewDialerは、Dialerを返却します。
func NewDialer(c DialerConfig) *Dialer {
	return &Dialer{DialerConfig: c}
}

// Dialは、トランスポート接続を開始します。
func (d *Dialer) Dial(cc transport.DialConfig) (transport.ReadWriter, error) {
	if dialFunc == nil {
		return nil, errors.Errorf("no websocket dial func registered: %w", errors.ErrConnect)
	}
	if d.Path == "" {
		d.Path = defaultDialerConfig.Path
	}
	if d.DialTimeout == 0 {
		d.DialTimeout = defaultDialerConfig.DialTimeout
	}

	wsURL, err := url.Parse(cc.Address)
	if err != nil {
		return nil, errors.Errorf("invalid url %q: %w", cc.Address, errors.ErrConnect)
	}
	switch wsURL.Scheme {
	case "http", "ws":
		wsURL.Scheme = "ws"
	case "https", "wss":
		wsURL.Scheme = "wss"
	default:
		return nil, errors.Errorf("unsupported scheme %q: %w", wsURL.Scheme, errors.ErrConnect)
	}
	wsURL.Path = d.Path

	var header http.Header
	if cc.TokenSource != nil {
		tk, err := cc.TokenSource.Token()
		if err != nil {
			return nil, errors.Errorf("failed retrieving token: %w", err)
		}
		header = http.Header{}
		tk.SetAuthHeader(&http.Request{Header: header})
	}

	wsconn, err := dialFunc(DialConfig{
		URL:         wsURL.String(),
		Header:      header,
		TLSConfig:   d.TLSConfig,
		DialTimeout: d.DialTimeout,
	})
	if err != nil {
		return nil, errors.Errorf("websocket dial %q: %w", wsURL.String(), err)
	}
	return New(wsconn), nil
}
