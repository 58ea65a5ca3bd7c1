package emulator_test

import (
	"context"
	"testing"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/internal/emulator"
	"github.com/wfproxy/wfproxy-go/message"
	"github.com/wfproxy/wfproxy-go/transport"
	"github.com/wfproxy/wfproxy-go/wire"
)

// serve は、エミュレータへ接続済みのClientConnを返します。
func serve(t *testing.T) *wire.ClientConn {
	t.Helper()
	cli, srv := transport.Pipe()
	em := emulator.New(&emulator.Config{})
	go em.ServeTransport(srv) //nolint:errcheck

	conn := wire.NewClientConn(&wire.ClientConnConfig{
		Transport: wire.NewMessageTransport(&wire.MessageTransportConfig{Transport: cli}),
	})
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestEmulator_Handshake(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	conn := serve(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	initReply, err := conn.SendRequest(ctx, message.NewInitializeRequest())
	require.NoError(t, err)
	require.Nil(t, initReply.GetError())

	req := message.NewConnectRequest()
	req.SetIdentity(pointer.ToString("tester"))
	reply, err := conn.SendRequest(ctx, req)
	require.NoError(t, err)

	connReply, ok := reply.(*message.ConnectReply)
	require.True(t, ok)
	require.NotNil(t, connReply.GetProtocolVersion())
	assert.Equal(t, emulator.ProtocolVersion, *connReply.GetProtocolVersion())
}

func TestEmulator_UnexpectedRequest(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	conn := serve(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// アクティビティの実行はエミュレート対象外です。
	req := message.NewActivityInvokeRequest()
	reply, err := conn.SendRequest(ctx, req)
	require.NoError(t, err)

	perr := reply.GetError()
	require.NotNil(t, perr)
	assert.Equal(t, errors.ProxyErrorBadRequest, perr.Type)
}

func TestEmulator_SignalDoneWithoutPending(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })
	conn := serve(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	req := message.NewWorkflowSignalDoneRequest()
	req.SetSignalRequestID(12345)
	reply, err := conn.SendRequest(ctx, req)
	require.NoError(t, err)

	perr := reply.GetError()
	require.NotNil(t, perr)
	assert.Equal(t, errors.ProxyErrorEntityNotFound, perr.Type)
}
