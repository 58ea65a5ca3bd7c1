package wire_test

import (
	"github.com/wfproxy/wfproxy-go/transport"
	"github.com/wfproxy/wfproxy-go/wire"
)

func Pipe() (srv *wire.MessageTransport, cli *wire.MessageTransport) {
	return PipeWithSize(0, 0)
}

func PipeWithSize(srvMaxMessageSize, cliMaxMessageSize wire.Size) (srv *wire.MessageTransport, cli *wire.MessageTransport) {
	srvtr, clitr := transport.Pipe()
	srv = wire.NewMessageTransport(&wire.MessageTransportConfig{
		Transport:      srvtr,
		MaxMessageSize: srvMaxMessageSize,
	})
	cli = wire.NewMessageTransport(&wire.MessageTransportConfig{
		Transport:      clitr,
		MaxMessageSize: cliMaxMessageSize,
	})
	return
}
