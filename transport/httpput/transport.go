package httpput

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/oauth2"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/transport"
)

var _ transport.ReadWriter = (*Transport)(nil)

// Transportは、HTTP PUTトランスポートです。
//
// Writeはプロキシのメッセージエンドポイントへフレームボディを持つPUTリクエストを
// 送信します。Readはローカルリスナーへプロキシが送信したPUTリクエストのボディを
// 返却します。
type Transport struct {
	messageURL  string
	echoURL     string
	tokenSource oauth2.TokenSource

	cli      *http.Client
	listener net.Listener
	server   *http.Server

	rx chan []byte

	rxBytesCounter *uint64
	txBytesCounter *uint64

	once     sync.Once
	closedCh chan struct{}
	serveErr chan error
}

// Readは、ローカルリスナーへ届いた１フレームを返却します。
func (t *Transport) Read() ([]byte, error) {
	select {
	case <-t.closedCh:
		return nil, transport.ErrAlreadyClosed
	case msg := <-t.rx:
		atomic.AddUint64(t.rxBytesCounter, uint64(len(msg)))
		return msg, nil
	}
}

// Writeは、１フレームをプロキシのメッセージエンドポイントへPUTします。
func (t *Transport) Write(bs []byte) error {
	select {
	case <-t.closedCh:
		return transport.ErrAlreadyClosed
	default:
	}

	if err := t.put(t.messageURL, bs, io.Discard); err != nil {
		return err
	}
	atomic.AddUint64(t.txBytesCounter, uint64(len(bs)))
	return nil
}

// Echoは、フレームをエコーエンドポイントへPUTし、応答ボディを返却します。
//
// トランスポートとフレーミングの疎通確認に使用します。
func (t *Transport) Echo(bs []byte) ([]byte, error) {
	select {
	case <-t.closedCh:
		return nil, transport.ErrAlreadyClosed
	default:
	}

	var buf bytes.Buffer
	if err := t.put(t.echoURL, bs, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TxBytesCounterValueは、書き込んだ総バイト数を返却します。
func (t *Transport) TxBytesCounterValue() uint64 {
	return atomic.LoadUint64(t.txBytesCounter)
}

// RxBytesCounterValueは、読み込んだ総バイト数を返却します。
func (t *Transport) RxBytesCounterValue() uint64 {
	return atomic.LoadUint64(t.rxBytesCounter)
}

// ListenAddressは、ローカルリスナーのアドレスとポートを返却します。
//
// プロキシへの初期化メッセージで返信先として通知します。
func (t *Transport) ListenAddress() (string, int32) {
	addr := t.listener.Addr().(*net.TCPAddr)
	return addr.IP.String(), int32(addr.Port)
}

// Closeは、トランスポートを閉じます。ローカルリスナーも停止します。
func (t *Transport) Close() error {
	var err error
	t.once.Do(func() {
		close(t.closedCh)
		t.cli.CloseIdleConnections()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if serr := t.server.Shutdown(ctx); serr != nil {
			err = fmt.Errorf("shutdown listener: %w", serr)
		}
		<-t.serveErr
	})
	return err
}

// Nameは、トランスポート名を返却します。
func (t *Transport) Name() transport.Name {
	return transport.NameHTTP
}

func (t *Transport) put(url string, body []byte, out io.Writer) error {
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)
	if t.tokenSource != nil {
		tk, err := t.tokenSource.Token()
		if err != nil {
			return errors.Errorf("failed retrieving token: %w", err)
		}
		tk.SetAuthHeader(req)
	}

	resp, err := t.cli.Do(req)
	if err != nil {
		select {
		case <-t.closedCh:
			return transport.ErrAlreadyClosed
		default:
		}
		return errors.Errorf("put %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("put %s: unexpected status %d", url, resp.StatusCode)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		return errors.Errorf("read response body: %w", err)
	}
	return nil
}

// handleMessageは、プロキシからのPUTリクエストを受け付けます。
func (t *Transport) handleMessage(w http.ResponseWriter, r *http.Request) {
	body, ok := t.acceptFrame(w, r)
	if !ok {
		return
	}
	select {
	case t.rx <- body:
		w.WriteHeader(http.StatusOK)
	case <-t.closedCh:
		http.Error(w, "transport closed", http.StatusServiceUnavailable)
	}
}

// handleEchoは、受信したフレームをそのまま応答ボディへ書き戻します。
func (t *Transport) handleEcho(w http.ResponseWriter, r *http.Request) {
	body, ok := t.acceptFrame(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (t *Transport) acceptFrame(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if r.Method != http.MethodPut {
		http.Error(w, fmt.Sprintf("method %s not allowed, use %s", r.Method, http.MethodPut), http.StatusMethodNotAllowed)
		return nil, false
	}
	if ct := r.Header.Get("Content-Type"); ct != ContentType {
		http.Error(w, fmt.Sprintf("content type %q not supported, use %q", ct, ContentType), http.StatusUnsupportedMediaType)
		return nil, false
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "failed reading request body", http.StatusBadRequest)
		return nil, false
	}
	return body, true
}
