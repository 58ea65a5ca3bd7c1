package httpput_test

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wfproxy/wfproxy-go/transport"
	. "github.com/wfproxy/wfproxy-go/transport/httpput"
)

func newFakeProxy(t *testing.T) (*httptest.Server, chan []byte) {
	t.Helper()
	received := make(chan []byte, 8)
	mux := http.NewServeMux()
	mux.HandleFunc(DefaultMessagePath, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			http.Error(w, "use PUT", http.StatusMethodNotAllowed)
			return
		}
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		received <- body
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc(DefaultEchoPath, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", ContentType)
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Cleanup(http.DefaultClient.CloseIdleConnections)
	return srv, received
}

func TestTransport_Write(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	srv, received := newFakeProxy(t)

	tr, err := Dial(transport.DialConfig{Address: srv.URL})
	require.NoError(t, err)
	defer tr.Close()

	msg := []byte{1, 2, 3, 4, 5}
	require.NoError(t, tr.Write(msg))
	select {
	case got := <-received:
		assert.Equal(t, msg, got)
	case <-time.After(time.Second):
		t.Fatal("proxy did not receive the frame")
	}
	assert.Equal(t, uint64(5), tr.TxBytesCounterValue())
}

func TestTransport_Read(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	srv, _ := newFakeProxy(t)

	tr, err := Dial(transport.DialConfig{Address: srv.URL})
	require.NoError(t, err)
	defer tr.Close()

	host, port := tr.(*Transport).ListenAddress()
	require.NotZero(t, port)
	listenURL := fmt.Sprintf("http://%s:%d%s", host, port, DefaultMessagePath)

	msg := []byte{9, 8, 7}
	req, err := http.NewRequest(http.MethodPut, listenURL, bytes.NewReader(msg))
	require.NoError(t, err)
	req.Header.Set("Content-Type", ContentType)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	got, err := tr.Read()
	require.NoError(t, err)
	assert.Equal(t, msg, got)
	assert.Equal(t, uint64(3), tr.RxBytesCounterValue())
}

func TestTransport_Read_rejectsWrongContentType(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	srv, _ := newFakeProxy(t)

	tr, err := Dial(transport.DialConfig{Address: srv.URL})
	require.NoError(t, err)
	defer tr.Close()

	host, port := tr.(*Transport).ListenAddress()
	listenURL := fmt.Sprintf("http://%s:%d%s", host, port, DefaultMessagePath)

	req, err := http.NewRequest(http.MethodPut, listenURL, bytes.NewReader([]byte{1}))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
}

func TestTransport_Echo(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	srv, _ := newFakeProxy(t)

	tr, err := Dial(transport.DialConfig{Address: srv.URL})
	require.NoError(t, err)
	defer tr.Close()

	msg := []byte{0, 1, 2, 3}
	got, err := tr.(*Transport).Echo(msg)
	require.NoError(t, err)
	assert.Equal(t, msg, got)
}

func TestTransport_Close(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	srv, _ := newFakeProxy(t)

	tr, err := Dial(transport.DialConfig{Address: srv.URL})
	require.NoError(t, err)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	assert.ErrorIs(t, tr.Write([]byte{1}), transport.ErrAlreadyClosed)
	_, err = tr.Read()
	assert.ErrorIs(t, err, transport.ErrAlreadyClosed)
}
