package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestPipe(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Run("single", func(t *testing.T) {
		cli, srv := Pipe()
		defer srv.Close()
		defer cli.Close()
		msg := []byte{1, 2, 3, 4, 5}
		done := make(chan struct{})
		go func() {
			defer close(done)
			require.NoError(t, cli.Write(msg))
		}()
		got, err := srv.Read()
		require.NoError(t, err)
		assert.Equal(t, msg, got)
		<-done
		assert.Equal(t, cli.TxBytesCounterValue(), srv.RxBytesCounterValue())
		assert.Equal(t, uint64(5), srv.RxBytesCounterValue())
	})

	t.Run("multiple", func(t *testing.T) {
		cli, srv := Pipe()
		defer srv.Close()
		defer cli.Close()
		msg1 := []byte{1, 2, 3, 4, 5}
		msg2 := []byte{2, 2, 3, 4, 5}
		done := make(chan struct{})
		go func() {
			defer close(done)
			require.NoError(t, cli.Write(msg1))
			require.NoError(t, cli.Write(msg2))
		}()
		got1, err := srv.Read()
		require.NoError(t, err)
		assert.Equal(t, msg1, got1)
		got2, err := srv.Read()
		require.NoError(t, err)
		assert.Equal(t, msg2, got2)
		<-done
		assert.Equal(t, cli.TxBytesCounterValue(), srv.RxBytesCounterValue())
		assert.Equal(t, uint64(10), srv.RxBytesCounterValue())
	})

	t.Run("write after the local pipe was closed", func(t *testing.T) {
		cli, srv := Pipe()
		require.NoError(t, cli.Close())
		assert.ErrorIs(t, cli.Write([]byte{1, 2, 3, 4, 5}), ErrAlreadyClosed)
		assert.ErrorIs(t, srv.Write([]byte{1, 2, 3, 4, 5}), ErrAlreadyClosed)
	})

	t.Run("read after the remote pipe was closed", func(t *testing.T) {
		cli, srv := Pipe()
		require.NoError(t, cli.Close())
		_, err := srv.Read()
		assert.ErrorIs(t, err, EOF)
	})

	t.Run("close is idempotent", func(t *testing.T) {
		cli, srv := Pipe()
		defer srv.Close()
		require.NoError(t, cli.Close())
		require.NoError(t, cli.Close())
	})
}

func TestCopy(t *testing.T) {
	defer goleak.VerifyNone(t)
	in1, out1 := Pipe()
	in2, out2 := Pipe()

	errCh := make(chan error, 1)
	go func() {
		defer in2.Close()
		errCh <- Copy(in2, out1)
	}()

	msg := []byte{1, 2, 3, 4, 5}
	go func() {
		require.NoError(t, in1.Write(msg))
	}()
	got, err := out2.Read()
	require.NoError(t, err)
	assert.Equal(t, msg, got)

	require.NoError(t, in1.Close())
	assert.NoError(t, <-errCh)
	_, err = out2.Read()
	assert.ErrorIs(t, err, EOF)
}
