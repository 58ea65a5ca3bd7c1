package wfproxy

import (
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"golang.org/x/oauth2"

	"github.com/wfproxy/wfproxy-go/errors"
	"github.com/wfproxy/wfproxy-go/log"
	"github.com/wfproxy/wfproxy-go/transport"
)

var (
	defaultRequestTimeout    = 30 * time.Second
	defaultHeartbeatInterval = 10 * time.Second
	defaultHeartbeatTimeout  = time.Second
)

// Settingsは、プロキシ接続の設定です。
type Settings struct {
	// Serversは、接続先プロキシのURIのリストです。
	//
	// 少なくとも１つの絶対URIを含む必要があります。先頭から順に接続を試行します。
	Servers []string

	// Identityは、接続時にプロキシへ通知するクライアントの識別子です。
	// 空の場合、UUIDが生成されます。
	Identity string

	// Domainは、接続先のドメインです。空の場合、ドメインを指定せずに接続します。
	Domain string

	// CreateDomainは、Domainが存在しない場合に作成するかどうかです。
	CreateDomain bool

	// Transportは、使用するトランスポート名です。
	// 空の場合、サーバーURIのスキームから決定されます。
	Transport transport.Name

	// RequestTimeoutは、リクエスト１回あたりのタイムアウトです。
	// 0の場合、デフォルト値(30秒)が使用されます。
	RequestTimeout time.Duration

	// HeartbeatIntervalは、ハートビートを送信する間隔です。
	// 0の場合、デフォルト値(10秒)が使用されます。
	HeartbeatInterval time.Duration

	// HeartbeatTimeoutは、ハートビート送信後リプライが返却されるまでのタイムアウトです。
	// 0の場合、デフォルト値(1秒)が使用されます。
	HeartbeatTimeout time.Duration

	// MaxMissedHeartbeatsは、接続を切断するまでに許容する連続ハートビート失敗回数です。
	// 0の場合、デフォルト値(1)が使用されます。
	MaxMissedHeartbeats int

	// DisableHeartbeatsは、ハートビートの送信を抑止します。デバッグ用途です。
	DisableHeartbeats bool

	// IgnoreHeartbeatsは、受信したハートビートリプライを破棄します。
	// タイムアウト経路の障害注入用途です。
	IgnoreHeartbeats bool

	// EmulateProxyは、外部プロキシの代わりにインプロセスのエミュレータへ接続します。
	// テストとデバッグ用途です。
	EmulateProxy bool

	// TokenSourceは、接続時に認証ヘッダーへ設定するトークンを取得します。
	TokenSource oauth2.TokenSource

	// Loggerはロガーです。nilの場合、何も出力しません。
	Logger log.Logger
}

// validateは、設定の妥当性を検証し、デフォルト値を補完します。
func (s *Settings) validate() error {
	if !s.EmulateProxy {
		if len(s.Servers) == 0 {
			return errors.Errorf("no servers specified: %w", errors.ErrConnect)
		}
		for _, server := range s.Servers {
			u, err := url.Parse(server)
			if err != nil {
				return errors.Errorf("invalid server uri %q: %w", server, errors.ErrConnect)
			}
			if !u.IsAbs() || u.Host == "" {
				return errors.Errorf("server uri %q is not absolute: %w", server, errors.ErrConnect)
			}
		}
	}
	if s.Identity == "" {
		s.Identity = uuid.NewString()
	}
	if s.RequestTimeout == 0 {
		s.RequestTimeout = defaultRequestTimeout
	}
	if s.HeartbeatInterval == 0 {
		s.HeartbeatInterval = defaultHeartbeatInterval
	}
	if s.HeartbeatTimeout == 0 {
		s.HeartbeatTimeout = defaultHeartbeatTimeout
	}
	if s.Logger == nil {
		s.Logger = log.NewNop()
	}
	return nil
}

// settingsFileは、TOML設定ファイルの構造です。
type settingsFile struct {
	Servers             []string `toml:"servers"`
	Identity            string   `toml:"identity"`
	Domain              string   `toml:"domain"`
	CreateDomain        bool     `toml:"create_domain"`
	Transport           string   `toml:"transport"`
	RequestTimeout      duration `toml:"request_timeout"`
	HeartbeatInterval   duration `toml:"heartbeat_interval"`
	HeartbeatTimeout    duration `toml:"heartbeat_timeout"`
	MaxMissedHeartbeats int      `toml:"max_missed_heartbeats"`
	DisableHeartbeats   bool     `toml:"disable_heartbeats"`
	IgnoreHeartbeats    bool     `toml:"ignore_heartbeats"`
	EmulateProxy        bool     `toml:"emulate_proxy"`
}

// durationは、TOML上で "10s" 形式の文字列として表現される時間です。
type duration time.Duration

func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = duration(v)
	return nil
}

// LoadSettingsFileは、TOMLファイルから設定を読み込みます。
//
// TokenSourceとLoggerはファイルからは設定できません。読み込み後に設定してください。
func LoadSettingsFile(path string) (*Settings, error) {
	var f settingsFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, errors.Errorf("decode settings file %q: %w", path, err)
	}
	return &Settings{
		Servers:             f.Servers,
		Identity:            f.Identity,
		Domain:              f.Domain,
		CreateDomain:        f.CreateDomain,
		Transport:           transport.Name(f.Transport),
		RequestTimeout:      time.Duration(f.RequestTimeout),
		HeartbeatInterval:   time.Duration(f.HeartbeatInterval),
		HeartbeatTimeout:    time.Duration(f.HeartbeatTimeout),
		MaxMissedHeartbeats: f.MaxMissedHeartbeats,
		DisableHeartbeats:   f.DisableHeartbeats,
		IgnoreHeartbeats:    f.IgnoreHeartbeats,
		EmulateProxy:        f.EmulateProxy,
	}, nil
}
