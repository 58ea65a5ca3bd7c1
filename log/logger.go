package log

import (
	"context"
	"fmt"
	"math/rand"
)

// Loggerは、wfproxy-go内で使用するロガーインターフェースです。
type Logger interface {
	Infof(context.Context, string, ...interface{})
	Warnf(context.Context, string, ...interface{})
	Errorf(context.Context, string, ...interface{})
	Debugf(context.Context, string, ...interface{})
}

var (
	trackConnectionIDKey = "trackConnectionIDKey"
	trackMessageIDKey    = "trackMessageIDKey"
)

// WithTrackConnectionIDは、新たにコネクションIDを採番しコンテキストにセットします。
//
// コネクションIDはコネクションが開通されたタイミングでセットします。
// ここで設定されたコネクションIDは常にログ出力します。
func WithTrackConnectionID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackConnectionIDKey, genTrackID())
}

// TrackConnectionIDは、コンテキストにセットされたコネクションIDを取得します。
func TrackConnectionID(ctx context.Context) string {
	v, ok := ctx.Value(&trackConnectionIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

// WithTrackMessageIDは、新たにメッセージIDを採番しコンテキストにセットします。
//
// メッセージIDはメッセージ受信したタイミングでセットします。
func WithTrackMessageID(ctx context.Context) context.Context {
	return context.WithValue(ctx, &trackMessageIDKey, genTrackID())
}

// TrackMessageIDは、コンテキストにセットされたメッセージIDを取得します。
func TrackMessageID(ctx context.Context) string {
	v, ok := ctx.Value(&trackMessageIDKey).(string)
	if !ok {
		return ""
	}
	return v
}

func genTrackID() string {
	return fmt.Sprintf("%04d-%04d-%04d", rand.Int31n(10000), rand.Int31n(10000), rand.Int31n(10000))
}
