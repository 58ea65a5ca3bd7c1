package transport

import (
	"golang.org/x/oauth2"
)

// Readerはトランスポートからフレームを読み出すインターフェースです。
type Reader interface {
	// Readは、トランスポートからフレームを読み出します。
	Read() ([]byte, error)
	// Closeは、トランスポートのコネクションを切断します。
	Close() error
	// RxBytesCounterValueは、現在の受信バイトカウンターの値を返します。
	RxBytesCounterValue() uint64
}

// Writerはトランスポートへフレームを書き込むインターフェースです。
type Writer interface {
	// Writeは、トランスポートへフレームを書き込みます。
	Write([]byte) error
	// Closeは、トランスポートのコネクションを切断します。
	Close() error
	// TxBytesCounterValueは、現在の送信バイトカウンターの値を返します。
	TxBytesCounterValue() uint64
}

// ReadWriterはトランスポートのフレーム読み書きのインターフェースです。
type ReadWriter interface {
	Reader
	Writer
}

// DialConfigは、トランスポート接続の共通設定です。
type DialConfig struct {
	// Addressは、接続先プロキシのURLです。
	Address string

	// TokenSourceは、接続時に認証ヘッダーへ設定するトークンを取得します。
	// nilの場合、認証ヘッダーは設定されません。
	TokenSource oauth2.TokenSource
}

// Dialerは、トランスポート接続を開始するインターフェースです。
type Dialer interface {
	Dial(DialConfig) (ReadWriter, error)
}

// DialerFuncは、関数をDialerとして使用するためのアダプタです。
type DialerFunc func(DialConfig) (ReadWriter, error)

func (f DialerFunc) Dial(c DialConfig) (ReadWriter, error) {
	return f(c)
}
