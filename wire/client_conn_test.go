package wire_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/message"
	"github.com/wfproxy/wfproxy-go/transport"
	. "github.com/wfproxy/wfproxy-go/wire"
)

// echoServerは、受信したリクエストへ型どおりのリプライを返す対向実装です。
// トランスポートが閉じられると終了します。
func echoServer(t *testing.T, srv *MessageTransport) {
	t.Helper()
	for {
		msg, err := srv.Read()
		if err != nil {
			return
		}
		switch m := msg.(type) {
		case *message.HeartbeatRequest:
			reply := message.NewHeartbeatReply()
			reply.SetRequestID(m.GetRequestID())
			if err := srv.Write(reply); err != nil {
				return
			}
		case *message.EchoRequest:
			reply := message.NewEchoReply()
			reply.SetRequestID(m.GetRequestID())
			reply.SetPayload(m.GetPayload())
			if err := srv.Write(reply); err != nil {
				return
			}
		}
	}
}

// discardServerは、受信したメッセージをすべて読み捨てる対向実装です。
func discardServer(srv *MessageTransport) {
	for {
		if _, err := srv.Read(); err != nil {
			return
		}
	}
}

func TestClientConn_SendRequest(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go echoServer(t, srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		DisableHeartbeats: true,
	})
	defer conn.Close()

	req := message.NewEchoRequest()
	req.SetPayload(pointer.ToString("hello"))
	reply, err := conn.SendRequest(context.Background(), req)
	require.NoError(t, err)
	echoReply, ok := reply.(*message.EchoReply)
	require.True(t, ok)
	assert.Equal(t, "hello", pointer.GetString(echoReply.GetPayload()))

	req2 := message.NewEchoRequest()
	req2.SetPayload(pointer.ToString("world"))
	reply2, err := conn.SendRequest(context.Background(), req2)
	require.NoError(t, err)
	assert.Greater(t, reply2.GetRequestID(), reply.GetRequestID())
}

func TestClientConn_SendRequest_contextCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go discardServer(srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		DisableHeartbeats: true,
	})
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := conn.SendRequest(ctx, message.NewEchoRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClientConn_Close(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go discardServer(srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		DisableHeartbeats: true,
	})

	sendErr := make(chan error, 1)
	go func() {
		_, err := conn.SendRequest(context.Background(), message.NewEchoRequest())
		sendErr <- err
	}()
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, conn.Close())
	require.NoError(t, conn.Close())

	assert.ErrorIs(t, <-sendErr, errors.ErrConnectionClosed)
	assert.NoError(t, conn.CloseCause())

	select {
	case <-conn.Closed():
	default:
		t.Fatal("conn is not closed")
	}

	_, err := conn.SendRequest(context.Background(), message.NewEchoRequest())
	assert.ErrorIs(t, err, errors.ErrConnectionClosed)
}

func TestClientConn_remoteClose(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		DisableHeartbeats: true,
	})
	defer conn.Close()

	require.NoError(t, srv.Close())
	select {
	case <-conn.Closed():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("cannot detect disconnect")
	}
	assert.ErrorIs(t, conn.CloseCause(), errors.ErrConnectionClosed)
}

func TestClientConn_malformedInbound(t *testing.T) {
	defer goleak.VerifyNone(t)
	srvtr, clitr := transport.Pipe()
	defer srvtr.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         NewMessageTransport(&MessageTransportConfig{Transport: clitr}),
		DisableHeartbeats: true,
	})
	defer conn.Close()

	go srvtr.Write([]byte{0xff, 0xff, 0xff})

	select {
	case <-conn.Closed():
	case <-time.After(100 * time.Millisecond):
		t.Fatal("cannot detect malformed inbound frame")
	}
	assert.ErrorIs(t, conn.CloseCause(), errors.ErrMalformedMessage)
}

func TestClientConn_heartbeat(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go echoServer(t, srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		HeartbeatInterval: time.Millisecond,
		HeartbeatTimeout:  100 * time.Millisecond,
	})
	defer conn.Close()

	select {
	case <-conn.Closed():
		t.Fatal("connection closed while heartbeats were answered")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestClientConn_heartbeat_timeout(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go discardServer(srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		HeartbeatInterval: time.Millisecond,
		HeartbeatTimeout:  time.Millisecond,
	})
	defer conn.Close()

	select {
	case <-conn.Closed():
	case <-time.After(time.Second):
		t.Fatal("cannot detect heartbeat timeout")
	}
	assert.ErrorIs(t, conn.CloseCause(), errors.ErrHeartbeatTimeout)
}

func TestClientConn_heartbeat_timeout_failsPending(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go discardServer(srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		HeartbeatInterval: time.Millisecond,
		HeartbeatTimeout:  time.Millisecond,
	})
	defer conn.Close()

	_, err := conn.SendRequest(context.Background(), message.NewEchoRequest())
	assert.ErrorIs(t, err, errors.ErrHeartbeatTimeout)
}

func TestClientConn_heartbeat_ignoreHeartbeats(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go echoServer(t, srv)
	defer srv.Close()

	// replies arrive but are dropped before correlation
	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		HeartbeatInterval: time.Millisecond,
		HeartbeatTimeout:  time.Millisecond,
		IgnoreHeartbeats:  true,
	})
	defer conn.Close()

	select {
	case <-conn.Closed():
	case <-time.After(time.Second):
		t.Fatal("cannot detect heartbeat timeout")
	}
	assert.ErrorIs(t, conn.CloseCause(), errors.ErrHeartbeatTimeout)
}

func TestClientConn_heartbeat_maxMissed(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	go discardServer(srv)
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:           cli,
		HeartbeatInterval:   10 * time.Millisecond,
		HeartbeatTimeout:    time.Millisecond,
		MaxMissedHeartbeats: 3,
	})
	defer conn.Close()

	// a single missed heartbeat must not close the connection
	select {
	case <-conn.Closed():
		t.Fatal("connection closed before the missed heartbeat threshold")
	case <-time.After(15 * time.Millisecond):
	}

	select {
	case <-conn.Closed():
	case <-time.After(time.Second):
		t.Fatal("cannot detect heartbeat timeout")
	}
	assert.ErrorIs(t, conn.CloseCause(), errors.ErrHeartbeatTimeout)
}

func TestClientConn_proxyInitiatedRequest(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		DisableHeartbeats: true,
	})
	defer conn.Close()

	req := message.NewLogRequest()
	req.SetRequestID(99)
	req.SetLogLevel(pointer.ToString("info"))
	req.SetLogMessage(pointer.ToString("proxy says hi"))
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		require.NoError(t, srv.Write(req))
	}()

	got := <-conn.Requests()
	<-writeDone
	logReq, ok := got.(*message.LogRequest)
	require.True(t, ok)
	assert.Equal(t, int64(99), logReq.GetRequestID())
	assert.Equal(t, "proxy says hi", pointer.GetString(logReq.GetLogMessage()))

	reply := message.NewLogReply()
	reply.SetRequestID(logReq.GetRequestID())
	require.NoError(t, conn.SendReply(context.Background(), reply))

	msg, err := srv.Read()
	require.NoError(t, err)
	assert.Equal(t, message.TypeLogReply, msg.GetType())
}

func TestClientConn_uncorrelatedReplyDropped(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	defer srv.Close()

	conn := NewClientConn(&ClientConnConfig{
		Transport:         cli,
		DisableHeartbeats: true,
	})
	defer conn.Close()

	// a reply nobody waits for is dropped without tearing down the connection
	bogus := message.NewEchoReply()
	bogus.SetRequestID(12345)
	writeDone := make(chan struct{})
	go func() {
		defer close(writeDone)
		require.NoError(t, srv.Write(bogus))
	}()
	<-writeDone

	go echoServer(t, srv)
	req := message.NewEchoRequest()
	req.SetPayload(pointer.ToString("still alive"))
	reply, err := conn.SendRequest(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "still alive", pointer.GetString(reply.(*message.EchoReply).GetPayload()))
}
