package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/message"
)

func Test_pendingReplies_resolve(t *testing.T) {
	p := newPendingReplies()

	ch, err := p.register(1)
	require.NoError(t, err)

	reply := message.NewEchoReply()
	reply.SetRequestID(1)
	require.True(t, p.resolve(reply))

	got := <-ch
	assert.Equal(t, int64(1), got.GetRequestID())
}

func Test_pendingReplies_duplicateRequestID(t *testing.T) {
	p := newPendingReplies()

	_, err := p.register(1)
	require.NoError(t, err)

	_, err = p.register(1)
	assert.ErrorIs(t, err, errors.ErrDuplicateRequestID)

	// resolved ids can be reused
	reply := message.NewEchoReply()
	reply.SetRequestID(1)
	require.True(t, p.resolve(reply))
	_, err = p.register(1)
	assert.NoError(t, err)
}

func Test_pendingReplies_resolve_unknownID(t *testing.T) {
	p := newPendingReplies()

	reply := message.NewEchoReply()
	reply.SetRequestID(42)
	assert.False(t, p.resolve(reply))
}

func Test_pendingReplies_deregister(t *testing.T) {
	p := newPendingReplies()

	_, err := p.register(1)
	require.NoError(t, err)
	p.deregister(1)

	reply := message.NewEchoReply()
	reply.SetRequestID(1)
	assert.False(t, p.resolve(reply))
}

func Test_pendingReplies_cancelAll(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		p := newPendingReplies()
		ch, err := p.register(1)
		require.NoError(t, err)

		p.cancelAll(errors.ErrHeartbeatTimeout)

		_, ok := <-ch
		assert.False(t, ok)
		assert.ErrorIs(t, p.closeCause(), errors.ErrHeartbeatTimeout)

		_, err = p.register(2)
		assert.ErrorIs(t, err, errors.ErrHeartbeatTimeout)
	})

	t.Run("without cause", func(t *testing.T) {
		p := newPendingReplies()
		ch, err := p.register(1)
		require.NoError(t, err)

		p.cancelAll(nil)

		_, ok := <-ch
		assert.False(t, ok)
		assert.ErrorIs(t, p.closeCause(), errors.ErrConnectionClosed)
	})
}
