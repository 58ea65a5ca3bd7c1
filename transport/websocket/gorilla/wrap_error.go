package gorilla

import (
	"fmt"
	"net"
	"os"
	"syscall"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/transport"

	gwebsocket "github.com/gorilla/websocket"
)

func wrapError(err error) error {
	if err == nil {
		return nil
	}
	if isErrTransportClosed(err) {
		return fmt.Errorf("websocket operation failed %+v: %w", err, transport.ErrAlreadyClosed)
	}
	var closeErr *gwebsocket.CloseError
	if errors.As(err, &closeErr) {
		return fmt.Errorf("websocket closed cause[%+v]: %w", err, transport.EOF)
	}
	return fmt.Errorf("websocket operation failed: %w", err)
}

func isErrTransportClosed(err error) bool {
	if err, ok := err.(*net.OpError); ok {
		if errors.Is(err, syscall.EPIPE) {
			return true
		}
		if err, ok := err.Unwrap().(*os.SyscallError); ok {
			return err.Unwrap().Error() == "connection reset by peer"
		}
		return err.Unwrap().Error() == "use of closed network connection"
	}
	return false
}
