package wire_test

import (
	"testing"

	"github.com/AlekSi/pointer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/message"
	. "github.com/wfproxy/wfproxy-go/wire"
)

func TestMessageTransport_ReadWrite(t *testing.T) {
	defer goleak.VerifyNone(t)
	srv, cli := Pipe()
	defer srv.Close()
	defer cli.Close()

	req := message.NewEchoRequest()
	req.SetRequestID(7)
	req.SetPayload(pointer.ToString("ping"))

	done := make(chan struct{})
	go func() {
		defer close(done)
		require.NoError(t, cli.Write(req))
	}()

	got, err := srv.Read()
	require.NoError(t, err)
	<-done

	echoReq, ok := got.(*message.EchoRequest)
	require.True(t, ok)
	assert.Equal(t, int64(7), echoReq.GetRequestID())
	assert.Equal(t, "ping", pointer.GetString(echoReq.GetPayload()))

	assert.Equal(t, uint64(1), cli.TxMessageCounterValue())
	assert.Equal(t, uint64(1), srv.RxMessageCounterValue())
}

func TestMessageTransport_maxMessageSize(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("write", func(t *testing.T) {
		srv, cli := PipeWithSize(0, 16*B)
		defer srv.Close()
		defer cli.Close()

		req := message.NewEchoRequest()
		req.SetRequestID(1)
		req.SetPayload(pointer.ToString("way too long payload for the limit"))
		assert.ErrorIs(t, cli.Write(req), errors.ErrMessageTooLarge)
	})

	t.Run("read", func(t *testing.T) {
		srv, cli := PipeWithSize(16*B, 0)
		defer srv.Close()
		defer cli.Close()

		req := message.NewEchoRequest()
		req.SetRequestID(1)
		req.SetPayload(pointer.ToString("way too long payload for the limit"))

		done := make(chan struct{})
		go func() {
			defer close(done)
			require.NoError(t, cli.Write(req))
		}()

		_, err := srv.Read()
		assert.ErrorIs(t, err, errors.ErrMessageTooLarge)
		<-done
	})
}
