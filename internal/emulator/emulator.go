/*
Package emulator は、テストとデバッグのためのインプロセスのプロキシエミュレータです。

外部プロキシと同じメッセージ応答を行い、同期シグナルの中継とドメインレジストリを
エミュレートします。
*/
package emulator

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/log"
	"github.com/wfproxy/wfproxy-go/message"
	"github.com/wfproxy/wfproxy-go/transport"
	"github.com/wfproxy/wfproxy-go/wire"
)

// ProtocolVersionは、エミュレータが応答するプロトコルバージョンです。
const ProtocolVersion = "1.2.0"

// Configは、エミュレータの設定です。
type Config struct {
	// Loggerはロガーです。nilの場合、何も出力しません。
	Logger log.Logger
}

// Emulatorは、プロキシのメッセージ応答をエミュレートします。
type Emulator struct {
	logger log.Logger

	idGenerator *wire.IDGenerator

	mu      sync.Mutex
	domains map[string]domainInfo
	// signalRequestId → 中継中の同期シグナル
	signals map[int64]*pendingSignal
	// 配送リクエストのリクエストID → signalRequestId
	invokes map[int64]int64
}

type domainInfo struct {
	name          string
	description   string
	ownerEmail    string
	retentionDays int32
}

type pendingSignal struct {
	senderRequestID int64
	contextID       int64
}

// Newは、エミュレータを返却します。
func New(c *Config) *Emulator {
	logger := c.Logger
	if logger == nil {
		logger = log.NewNop()
	}
	return &Emulator{
		logger:      logger,
		idGenerator: wire.NewIDGenerator(1),
		domains:     make(map[string]domainInfo),
		signals:     make(map[int64]*pendingSignal),
		invokes:     make(map[int64]int64),
	}
}

// ServeTransportは、トランスポート上でクライアントからのメッセージに応答し続けます。
//
// トランスポートが閉じられると返ります。
func (e *Emulator) ServeTransport(rw transport.ReadWriter) error {
	mt := wire.NewMessageTransport(&wire.MessageTransportConfig{Transport: rw})
	defer mt.Close()

	out := make(chan message.Message, 32)
	eg, ctx := errgroup.WithContext(context.Background())

	eg.Go(func() error {
		defer close(out)
		for {
			msg, err := mt.Read()
			if err != nil {
				if errors.Is(err, transport.ErrAlreadyClosed) || errors.Is(err, transport.EOF) {
					return nil
				}
				e.logger.Errorf(ctx, "emulator read: %+v", err)
				return err
			}
			for _, reply := range e.handle(ctx, msg) {
				select {
				case out <- reply:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}
	})

	eg.Go(func() error {
		for msg := range out {
			if err := mt.Write(msg); err != nil {
				if errors.Is(err, transport.ErrAlreadyClosed) || errors.Is(err, transport.EOF) {
					return nil
				}
				e.logger.Errorf(ctx, "emulator write: %+v", err)
				return err
			}
		}
		return nil
	})

	return eg.Wait()
}

// handleは、受信メッセージに対する応答メッセージ群を返却します。
func (e *Emulator) handle(ctx context.Context, msg message.Message) []message.Message {
	switch m := msg.(type) {
	case *message.InitializeRequest:
		reply := message.NewInitializeReply()
		reply.SetRequestID(m.GetRequestID())
		return []message.Message{reply}

	case *message.ConnectRequest:
		reply := message.NewConnectReply()
		reply.SetRequestID(m.GetRequestID())
		version := ProtocolVersion
		reply.SetProtocolVersion(&version)
		if domain := m.GetDomain(); domain != nil && m.GetCreateDomain() {
			e.mu.Lock()
			if _, ok := e.domains[*domain]; !ok {
				e.domains[*domain] = domainInfo{name: *domain}
			}
			e.mu.Unlock()
		}
		return []message.Message{reply}

	case *message.HeartbeatRequest:
		reply := message.NewHeartbeatReply()
		reply.SetRequestID(m.GetRequestID())
		return []message.Message{reply}

	case *message.EchoRequest:
		reply := message.NewEchoReply()
		reply.SetRequestID(m.GetRequestID())
		reply.SetPayload(m.GetPayload())
		return []message.Message{reply}

	case *message.TerminateRequest:
		reply := message.NewTerminateReply()
		reply.SetRequestID(m.GetRequestID())
		return []message.Message{reply}

	case *message.CancelRequest:
		reply := message.NewCancelReply()
		reply.SetRequestID(m.GetRequestID())
		reply.SetWasCancelled(false)
		return []message.Message{reply}

	case *message.DomainRegisterRequest:
		return []message.Message{e.handleDomainRegister(m)}

	case *message.DomainDescribeRequest:
		return []message.Message{e.handleDomainDescribe(m)}

	case *message.WorkflowSignalRequest:
		return e.handleWorkflowSignal(m)

	case *message.WorkflowSignalInvokeReply:
		return e.handleSignalInvokeReply(m)

	case *message.WorkflowSignalDoneRequest:
		return e.handleSignalDone(m)

	default:
		e.logger.Warnf(ctx, "emulator received an unexpected message: type=%v", msg.GetType())
		if req, ok := msg.(message.Request); ok {
			reply := message.NewProxyReply(req.ReplyType())
			reply.SetRequestID(req.GetRequestID())
			reply.SetError(errors.NewProxyError(errors.ProxyErrorBadRequest, "unexpected message"))
			return []message.Message{reply}
		}
		return nil
	}
}

func (e *Emulator) handleDomainRegister(m *message.DomainRegisterRequest) message.Message {
	reply := message.NewDomainRegisterReply()
	reply.SetRequestID(m.GetRequestID())

	name := m.GetName()
	if name == nil || *name == "" {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorBadRequest, "domain name is required"))
		return reply
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.domains[*name]; ok {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorDomainAlreadyExists, "domain already exists: "+*name))
		return reply
	}
	info := domainInfo{name: *name, retentionDays: m.GetRetentionDays()}
	if v := m.GetDescription(); v != nil {
		info.description = *v
	}
	if v := m.GetOwnerEmail(); v != nil {
		info.ownerEmail = *v
	}
	e.domains[*name] = info
	return reply
}

func (e *Emulator) handleDomainDescribe(m *message.DomainDescribeRequest) message.Message {
	reply := message.NewDomainDescribeReply()
	reply.SetRequestID(m.GetRequestID())

	name := m.GetName()
	if name == nil || *name == "" {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorBadRequest, "domain name is required"))
		return reply
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	info, ok := e.domains[*name]
	if !ok {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorEntityNotFound, "domain not found: "+*name))
		return reply
	}
	reply.SetDomainName(&info.name)
	reply.SetDomainDescription(&info.description)
	reply.SetDomainOwnerEmail(&info.ownerEmail)
	return reply
}

// handleWorkflowSignalは、同期シグナルの中継を開始します。
//
// 送信元への応答は保留され、クライアントへ配送リクエストを送信します。
// 送信元はWorkflowSignalDoneRequestの到着まで応答を受け取りません。
func (e *Emulator) handleWorkflowSignal(m *message.WorkflowSignalRequest) []message.Message {
	signalRequestID := e.idGenerator.Next()
	invokeRequestID := e.idGenerator.Next()

	e.mu.Lock()
	e.signals[signalRequestID] = &pendingSignal{
		senderRequestID: m.GetRequestID(),
		contextID:       m.GetContextID(),
	}
	e.invokes[invokeRequestID] = signalRequestID
	e.mu.Unlock()

	invoke := message.NewWorkflowSignalInvokeRequest()
	invoke.SetRequestID(invokeRequestID)
	invoke.SetContextID(m.GetContextID())
	invoke.SetSignalName(m.GetSignalName())
	invoke.SetSignalRequestID(signalRequestID)
	if args, err := m.GetSignalArgs(); err == nil && args != nil {
		invoke.SetSignalArgs(args) //nolint:errcheck
	}
	return []message.Message{invoke}
}

// handleSignalInvokeReplyは、配送リクエストへの応答を処理します。
//
// Pendingの場合は完了通知を待ちます。Pendingでない、またはエラーの場合は
// 送信元を失敗させます。
func (e *Emulator) handleSignalInvokeReply(m *message.WorkflowSignalInvokeReply) []message.Message {
	e.mu.Lock()
	signalRequestID, ok := e.invokes[m.GetRequestID()]
	if !ok {
		e.mu.Unlock()
		return nil
	}
	delete(e.invokes, m.GetRequestID())

	if perr := m.GetError(); perr == nil && m.GetPending() {
		e.mu.Unlock()
		return nil
	}

	pending, ok := e.signals[signalRequestID]
	if !ok {
		e.mu.Unlock()
		return nil
	}
	delete(e.signals, signalRequestID)
	e.mu.Unlock()

	reply := message.NewWorkflowSignalReply()
	reply.SetRequestID(pending.senderRequestID)
	reply.SetContextID(pending.contextID)
	if perr := m.GetError(); perr != nil {
		reply.SetError(perr)
	} else {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorBadRequest, "signal was not accepted"))
	}
	return []message.Message{reply}
}

// handleSignalDoneは、シグナル処理完了の通知を処理し、送信元へ結果を返却します。
func (e *Emulator) handleSignalDone(m *message.WorkflowSignalDoneRequest) []message.Message {
	done := message.NewWorkflowSignalDoneReply()
	done.SetRequestID(m.GetRequestID())
	done.SetContextID(m.GetContextID())

	e.mu.Lock()
	pending, ok := e.signals[m.GetSignalRequestID()]
	if ok {
		delete(e.signals, m.GetSignalRequestID())
	}
	e.mu.Unlock()

	if !ok {
		done.SetError(errors.NewProxyError(errors.ProxyErrorEntityNotFound, "unknown signal request"))
		return []message.Message{done}
	}

	reply := message.NewWorkflowSignalReply()
	reply.SetRequestID(pending.senderRequestID)
	reply.SetContextID(pending.contextID)
	reply.SetResult(m.GetResult())
	if perr := m.GetSignalError(); perr != nil {
		reply.SetError(perr)
	}
	return []message.Message{done, reply}
}
