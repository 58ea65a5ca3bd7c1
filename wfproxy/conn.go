package wfproxy

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/internal/emulator"
	"github.com/wfproxy/wfproxy-go/internal/retry"
	"github.com/wfproxy/wfproxy-go/log"
	"github.com/wfproxy/wfproxy-go/message"
	"github.com/wfproxy/wfproxy-go/transport"
	"github.com/wfproxy/wfproxy-go/transport/httpput"
	"github.com/wfproxy/wfproxy-go/transport/websocket"
	"github.com/wfproxy/wfproxy-go/wire"
)

var (
	// ErrUnsupportedProtocolVersion は、プロキシが返したプロトコルバージョンがサポートされていない場合のエラーです。
	ErrUnsupportedProtocolVersion = errors.New("unsupported protocol version")

	// minAcceptableVersion は、受け入れ可能な最小プロトコルバージョンです（この値を含む）。
	minAcceptableVersion = "v1.0.0"
	// maxAcceptableVersion は、受け入れ可能な最大プロトコルバージョンです（この値を含まない）。
	maxAcceptableVersion = "v2.0.0"
)

// Connは、プロキシとの接続です。
//
// Connectで生成します。
type Conn struct {
	settings *Settings
	cliConn  *wire.ClientConn
	logger   log.Logger

	protocolVersion string

	signalsMu sync.Mutex
	signals   map[int64]func(*rawSignalInvocation) bool

	activitiesMu sync.RWMutex
	activities   map[string]ActivityHandler

	onClosedMu    sync.Mutex
	onClosed      []func(cause error)
	onClosedFired bool
	closeCause    error

	disposeOnce sync.Once
}

// ActivityHandlerは、プロキシからのアクティビティ実行依頼を処理する関数です。
//
// argsとresultはJSONエンコードされた文字列です。nilは値なしを表します。
type ActivityHandler func(ctx context.Context, args *string) (*string, error)

// Connectは、プロキシへ接続しConnを返却します。
//
// 設定が不正な場合、トランスポートを開く前にErrConnectを返却します。
func Connect(settings *Settings) (*Conn, error) {
	if settings == nil {
		settings = &Settings{}
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	logger := settings.Logger

	rw, err := dialTransport(settings)
	if err != nil {
		return nil, err
	}

	cliConn := wire.NewClientConn(&wire.ClientConnConfig{
		Transport:           wire.NewMessageTransport(&wire.MessageTransportConfig{Transport: rw}),
		Logger:              logger,
		HeartbeatInterval:   settings.HeartbeatInterval,
		HeartbeatTimeout:    settings.HeartbeatTimeout,
		MaxMissedHeartbeats: settings.MaxMissedHeartbeats,
		DisableHeartbeats:   settings.DisableHeartbeats,
		IgnoreHeartbeats:    settings.IgnoreHeartbeats,
	})

	conn := &Conn{
		settings:   settings,
		cliConn:    cliConn,
		logger:     logger,
		signals:    make(map[int64]func(*rawSignalInvocation) bool),
		activities: make(map[string]ActivityHandler),
	}

	if err := conn.handshake(rw); err != nil {
		cliConn.Close()
		return nil, err
	}

	go conn.dispatchLoop()
	return conn, nil
}

// dialTransportは、設定に従いトランスポート接続を開始します。
func dialTransport(settings *Settings) (transport.ReadWriter, error) {
	if settings.EmulateProxy {
		cli, srv := transport.Pipe()
		em := emulator.New(&emulator.Config{Logger: settings.Logger})
		go em.ServeTransport(srv) //nolint:errcheck
		return cli, nil
	}

	var rw transport.ReadWriter
	var lastErr error
	for _, server := range settings.Servers {
		dialer, err := dialerFor(settings, server)
		if err != nil {
			return nil, err
		}
		cfg := transport.DialConfig{Address: server, TokenSource: settings.TokenSource}

		r := retry.Retry{MaxAttempt: 2}
		ctx, cancel := context.WithTimeout(context.Background(), settings.RequestTimeout)
		r.Do(ctx, func() bool { //nolint:errcheck
			rw, lastErr = dialer.Dial(cfg)
			return lastErr == nil
		})
		cancel()
		if lastErr == nil {
			return rw, nil
		}
		settings.Logger.Warnf(context.Background(), "failed dialing %s: %v", server, lastErr)
	}
	return nil, errors.Errorf("all servers unreachable: %w", lastErr)
}

func dialerFor(settings *Settings, server string) (transport.Dialer, error) {
	name := settings.Transport
	if name == "" {
		switch {
		case strings.HasPrefix(server, "ws://"), strings.HasPrefix(server, "wss://"):
			name = transport.NameWebSocket
		default:
			name = transport.NameHTTP
		}
	}
	switch name {
	case transport.NameHTTP:
		return httpput.NewDefaultDialer(), nil
	case transport.NameWebSocket:
		return websocket.NewDefaultDialer(), nil
	default:
		return nil, errors.Errorf("unknown transport %q: %w", name, errors.ErrConnect)
	}
}

// handshakeは、Initialize/Connectの初期シーケンスを実行します。
func (c *Conn) handshake(rw transport.ReadWriter) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.settings.RequestTimeout)
	defer cancel()

	initReq := message.NewInitializeRequest()
	if l, ok := rw.(interface{ ListenAddress() (string, int32) }); ok {
		addr, port := l.ListenAddress()
		initReq.SetLibraryAddress(&addr)
		initReq.SetLibraryPort(port)
	}
	initReply, err := c.cliConn.SendRequest(ctx, initReq)
	if err != nil {
		return errors.Errorf("initialize: %w", err)
	}
	if perr := initReply.GetError(); perr != nil {
		return errors.Errorf("initialize: %w", perr)
	}

	connReq := message.NewConnectRequest()
	connReq.SetIdentity(&c.settings.Identity)
	if c.settings.Domain != "" {
		connReq.SetDomain(&c.settings.Domain)
		connReq.SetCreateDomain(c.settings.CreateDomain)
	}
	reply, err := c.cliConn.SendRequest(ctx, connReq)
	if err != nil {
		return errors.Errorf("connect: %w", err)
	}
	connReply, ok := reply.(*message.ConnectReply)
	if !ok {
		return errors.Errorf("connect: unexpected reply type %v: %w", reply.GetType(), errors.ErrMalformedMessage)
	}
	if perr := connReply.GetError(); perr != nil {
		return errors.Errorf("connect: %w", perr)
	}

	version := connReply.GetProtocolVersion()
	if version == nil || !isAcceptableProtocolVersion(*version) {
		got := "<none>"
		if version != nil {
			got = *version
		}
		return errors.Errorf("%w: proxy returned %s", ErrUnsupportedProtocolVersion, got)
	}
	c.protocolVersion = *version
	return nil
}

func isAcceptableProtocolVersion(version string) bool {
	v := "v" + version
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(v, minAcceptableVersion) >= 0 && semver.Compare(v, maxAcceptableVersion) < 0
}

// ProtocolVersionは、プロキシが返したプロトコルバージョンを返却します。
func (c *Conn) ProtocolVersion() string {
	return c.protocolVersion
}

// Closedは、接続がクローズしているかどうか確認するためのチャンネルを返却します。
func (c *Conn) Closed() <-chan struct{} {
	return c.cliConn.Closed()
}

// OnClosedは、接続の終了時に一度だけ呼ばれるハンドラを登録します。
//
// 意図的な切断の場合、causeはnilです。すでに終了している場合は直ちに呼ばれます。
func (c *Conn) OnClosed(handler func(cause error)) {
	c.onClosedMu.Lock()
	if c.onClosedFired {
		cause := c.closeCause
		c.onClosedMu.Unlock()
		handler(cause)
		return
	}
	c.onClosed = append(c.onClosed, handler)
	c.onClosedMu.Unlock()
}

func (c *Conn) fireOnClosed(cause error) {
	c.onClosedMu.Lock()
	if c.onClosedFired {
		c.onClosedMu.Unlock()
		return
	}
	c.onClosedFired = true
	c.closeCause = cause
	handlers := c.onClosed
	c.onClosed = nil
	c.onClosedMu.Unlock()

	for _, h := range handlers {
		h(cause)
	}
}

// Disposeは、プロキシへ停止を依頼し、接続を閉じます。複数回呼び出しても安全です。
func (c *Conn) Dispose() error {
	c.disposeOnce.Do(func() {
		select {
		case <-c.cliConn.Closed():
		default:
			ctx, cancel := context.WithTimeout(context.Background(), c.settings.RequestTimeout)
			if _, err := c.cliConn.SendRequest(ctx, message.NewTerminateRequest()); err != nil {
				c.logger.Debugf(ctx, "terminate request failed: %v", err)
			}
			cancel()
		}
		c.cliConn.Close()
	})
	return nil
}

// Closeは、Disposeと同じです。
func (c *Conn) Close() error {
	return c.Dispose()
}

// SendRequestは、リクエストを送信し、対応するリプライの到着まで待機します。
//
// ctxに期限がない場合、設定のRequestTimeoutが適用されます。
func (c *Conn) SendRequest(ctx context.Context, req message.Request) (message.Reply, error) {
	if _, ok := ctx.Deadline(); !ok && c.settings.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.settings.RequestTimeout)
		defer cancel()
	}
	return c.cliConn.SendRequest(ctx, req)
}

// Echoは、ペイロードをプロキシと往復させ、フレーミングの疎通を確認します。
func (c *Conn) Echo(ctx context.Context, payload string) (string, error) {
	req := message.NewEchoRequest()
	req.SetPayload(&payload)
	reply, err := c.SendRequest(ctx, req)
	if err != nil {
		return "", err
	}
	echoReply, ok := reply.(*message.EchoReply)
	if !ok {
		return "", errors.Errorf("unexpected reply type %v: %w", reply.GetType(), errors.ErrMalformedMessage)
	}
	if perr := echoReply.GetError(); perr != nil {
		return "", perr
	}
	if p := echoReply.GetPayload(); p != nil {
		return *p, nil
	}
	return "", nil
}

// DomainRegistrationは、ドメイン登録の内容です。
type DomainRegistration struct {
	Name          string
	Description   string
	OwnerEmail    string
	RetentionDays int32
}

// RegisterDomainは、ドメインをプロキシへ登録します。
//
// 登録済みドメインを再登録した場合、種別 DomainAlreadyExistsError のエラーを返却します。
func (c *Conn) RegisterDomain(ctx context.Context, reg DomainRegistration) error {
	req := message.NewDomainRegisterRequest()
	req.SetName(&reg.Name)
	req.SetDescription(&reg.Description)
	req.SetOwnerEmail(&reg.OwnerEmail)
	req.SetRetentionDays(reg.RetentionDays)
	reply, err := c.SendRequest(ctx, req)
	if err != nil {
		return err
	}
	if perr := reply.GetError(); perr != nil {
		return perr
	}
	return nil
}

// DomainDescriptionは、ドメイン情報です。
type DomainDescription struct {
	Name        string
	Description string
	OwnerEmail  string
}

// DescribeDomainは、ドメイン情報を取得します。
//
// 存在しないドメインを指定した場合、種別 EntityNotFoundError のエラーを返却します。
func (c *Conn) DescribeDomain(ctx context.Context, name string) (*DomainDescription, error) {
	req := message.NewDomainDescribeRequest()
	req.SetName(&name)
	reply, err := c.SendRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	descReply, ok := reply.(*message.DomainDescribeReply)
	if !ok {
		return nil, errors.Errorf("unexpected reply type %v: %w", reply.GetType(), errors.ErrMalformedMessage)
	}
	if perr := descReply.GetError(); perr != nil {
		return nil, perr
	}
	res := &DomainDescription{}
	if v := descReply.GetDomainName(); v != nil {
		res.Name = *v
	}
	if v := descReply.GetDomainDescription(); v != nil {
		res.Description = *v
	}
	if v := descReply.GetDomainOwnerEmail(); v != nil {
		res.OwnerEmail = *v
	}
	return res, nil
}

// SyncSignalWorkflowは、指定コンテキストのワークフローへ同期シグナルを送信します。
//
// ワークフロー本体がシグナルを処理し応答するまでブロックします。戻り値は
// ワークフローが返したJSONエンコードされた結果です。
func (c *Conn) SyncSignalWorkflow(ctx context.Context, contextID int64, name string, args map[string]any) (*string, error) {
	req := message.NewWorkflowSignalRequest()
	req.SetContextID(contextID)
	req.SetSignalName(&name)
	if args != nil {
		if err := req.SetSignalArgs(args); err != nil {
			return nil, errors.Errorf("encode signal args: %w", err)
		}
	}
	reply, err := c.cliConn.SendRequest(ctx, req)
	if err != nil {
		return nil, err
	}
	signalReply, ok := reply.(*message.WorkflowSignalReply)
	if !ok {
		return nil, errors.Errorf("unexpected reply type %v: %w", reply.GetType(), errors.ErrMalformedMessage)
	}
	if perr := signalReply.GetError(); perr != nil {
		return nil, perr
	}
	return signalReply.GetResult(), nil
}

// RegisterActivityは、アクティビティ実行依頼のハンドラを登録します。
func (c *Conn) RegisterActivity(name string, handler ActivityHandler) error {
	c.activitiesMu.Lock()
	defer c.activitiesMu.Unlock()
	if _, ok := c.activities[name]; ok {
		return errors.Errorf("activity %q already registered", name)
	}
	c.activities[name] = handler
	return nil
}

// dispatchLoopは、プロキシ起点のリクエストを処理し続けます。
//
// 接続の終了でリクエストチャンネルが閉じられると、終了通知を発火して返ります。
func (c *Conn) dispatchLoop() {
	for req := range c.cliConn.Requests() {
		c.handleRequest(req)
	}
	c.fireOnClosed(c.cliConn.CloseCause())
}

func (c *Conn) handleRequest(req message.Request) {
	ctx := context.Background()
	switch m := req.(type) {
	case *message.HeartbeatRequest:
		reply := message.NewHeartbeatReply()
		reply.SetRequestID(m.GetRequestID())
		c.sendReply(ctx, reply)

	case *message.EchoRequest:
		reply := message.NewEchoReply()
		reply.SetRequestID(m.GetRequestID())
		reply.SetPayload(m.GetPayload())
		c.sendReply(ctx, reply)

	case *message.LogRequest:
		c.routeLog(ctx, m)
		reply := message.NewLogReply()
		reply.SetRequestID(m.GetRequestID())
		c.sendReply(ctx, reply)

	case *message.CancelRequest:
		reply := message.NewCancelReply()
		reply.SetRequestID(m.GetRequestID())
		reply.SetWasCancelled(false)
		c.sendReply(ctx, reply)

	case *message.WorkflowSignalInvokeRequest:
		c.handleSignalInvoke(ctx, m)

	case *message.ActivityInvokeRequest:
		go c.invokeActivity(ctx, m)

	default:
		c.logger.Warnf(ctx, "received an unexpected request: type=%v request_id=%d", req.GetType(), req.GetRequestID())
		reply := message.NewProxyReply(req.ReplyType())
		reply.SetRequestID(req.GetRequestID())
		reply.SetError(errors.NewProxyError(errors.ProxyErrorBadRequest, "unexpected request"))
		c.sendReply(ctx, reply)
	}
}

// routeLogは、プロキシから転送されたログエントリをロガーへ出力します。
func (c *Conn) routeLog(ctx context.Context, m *message.LogRequest) {
	var msg string
	if v := m.GetLogMessage(); v != nil {
		msg = *v
	}
	level := ""
	if v := m.GetLogLevel(); v != nil {
		level = strings.ToLower(*v)
	}
	switch level {
	case "debug":
		c.logger.Debugf(ctx, "proxy: %s", msg)
	case "warn", "warning":
		c.logger.Warnf(ctx, "proxy: %s", msg)
	case "error", "critical", "fatal":
		c.logger.Errorf(ctx, "proxy: %s", msg)
	default:
		c.logger.Infof(ctx, "proxy: %s", msg)
	}
}

func (c *Conn) invokeActivity(ctx context.Context, m *message.ActivityInvokeRequest) {
	reply := message.NewActivityInvokeReply()
	reply.SetRequestID(m.GetRequestID())
	reply.SetContextID(m.GetContextID())

	var name string
	if v := m.GetActivityName(); v != nil {
		name = *v
	}
	c.activitiesMu.RLock()
	handler, ok := c.activities[name]
	c.activitiesMu.RUnlock()
	if !ok {
		reply.SetError(errors.NewProxyError(errors.ProxyErrorEntityNotFound, "activity not registered: "+name))
		c.sendReply(ctx, reply)
		return
	}

	result, err := handler(ctx, m.GetArgs())
	if err != nil {
		if perr, ok := errors.AsProxyError(err); ok {
			reply.SetError(perr)
		} else {
			reply.SetError(errors.NewProxyError(errors.ProxyErrorCustom, err.Error()))
		}
		c.sendReply(ctx, reply)
		return
	}
	reply.SetResult(result)
	c.sendReply(ctx, reply)
}

func (c *Conn) sendReply(ctx context.Context, reply message.Reply) {
	if err := c.cliConn.SendReply(ctx, reply); err != nil {
		if errors.Is(err, errors.ErrConnectionClosed) {
			return
		}
		c.logger.Errorf(ctx, "failed sending reply: %+v", err)
	}
}
