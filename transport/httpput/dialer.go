package httpput

import (
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/transport"
)

var defaultDialerConfig = DialerConfig{
	ListenAddress:  "127.0.0.1:0",
	MessagePath:    DefaultMessagePath,
	EchoPath:       DefaultEchoPath,
	RequestTimeout: 30 * time.Second,
	QueueSize:      32,
}

// DialerConfigはDialerの設定です。
type DialerConfig struct {
	// ListenAddressは、プロキシからのPUTリクエストを受け付けるローカルリスナーの
	// アドレスです。ポートに0を指定した場合、空きポートが割り当てられます。
	// 空の場合は `127.0.0.1:0` が使用されます。
	ListenAddress string

	// MessagePathは、フレームを受け渡すエンドポイントのパスです。
	// 空の場合は `/message` が使用されます。
	MessagePath string

	// EchoPathは、フレーミング確認用エンドポイントのパスです。
	// 空の場合は `/echo` が使用されます。
	EchoPath string

	// RequestTimeoutは、PUTリクエスト１回あたりのタイムアウトです。
	// 0に設定された場合は、デフォルト値(30秒)が使用されます。
	RequestTimeout time.Duration

	// QueueSizeは、受信フレームキューの長さです。
	// 0に設定された場合は、デフォルト値(32)が使用されます。
	QueueSize int
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
//
// プロキシからの返信フレームを受け付けるローカルHTTPリスナーを起動し、
// Readで読み出せるようにします。
func (d *Dialer) Dial(cc transport.DialConfig) (transport.ReadWriter, error) {
	if d.ListenAddress == "" {
		d.ListenAddress = defaultDialerConfig.ListenAddress
	}
	if d.MessagePath == "" {
		d.MessagePath = defaultDialerConfig.MessagePath
	}
	if d.EchoPath == "" {
		d.EchoPath = defaultDialerConfig.EchoPath
	}
	if d.RequestTimeout == 0 {
		d.RequestTimeout = defaultDialerConfig.RequestTimeout
	}
	if d.QueueSize == 0 {
		d.QueueSize = defaultDialerConfig.QueueSize
	}

	base, err := url.Parse(cc.Address)
	if err != nil {
		return nil, errors.Errorf("invalid url %q: %w", cc.Address, errors.ErrConnect)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.Errorf("unsupported scheme %q: %w", base.Scheme, errors.ErrConnect)
	}
	base.Path = strings.TrimSuffix(base.Path, "/")

	listener, err := net.Listen("tcp", d.ListenAddress)
	if err != nil {
		return nil, errors.Errorf("listen %q: %w", d.ListenAddress, err)
	}

	t := &Transport{
		messageURL:     base.String() + d.MessagePath,
		echoURL:        base.String() + d.EchoPath,
		tokenSource:    cc.TokenSource,
		cli:            &http.Client{Timeout: d.RequestTimeout},
		listener:       listener,
		rx:             make(chan []byte, d.QueueSize),
		rxBytesCounter: func(u uint64) *uint64 { return &u }(0),
		txBytesCounter: func(u uint64) *uint64 { return &u }(0),
		closedCh:       make(chan struct{}),
		serveErr:       make(chan error, 1),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(d.MessagePath, t.handleMessage)
	mux.HandleFunc(d.EchoPath, t.handleEcho)
	t.server = &http.Server{Handler: mux}

	go func() {
		err := t.server.Serve(listener)
		if err == http.ErrServerClosed {
			err = nil
		}
		t.serveErr <- err
	}()

	return t, nil
}
