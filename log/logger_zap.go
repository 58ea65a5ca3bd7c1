package log

import (
	"context"

	"go.uber.org/zap"
)

type zapLogger struct {
	l *zap.SugaredLogger
}

func (l *zapLogger) Infof(ctx context.Context, format string, args ...any) {
	l.with(ctx).Infof(format, args...)
}

func (l *zapLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Warnf(format, args...)
}

func (l *zapLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Errorf(format, args...)
}

func (l *zapLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.with(ctx).Debugf(format, args...)
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	res := l.l
	if cID := TrackConnectionID(ctx); cID != "" {
		res = res.With("track_connection_id", cID)
	}
	if mID := TrackMessageID(ctx); mID != "" {
		res = res.With("track_message_id", mID)
	}
	return res
}

// NewZapは、zapのロガーを使用するロガーを返却します。
func NewZap(l *zap.Logger) Logger {
	return &zapLogger{
		l: l.WithOptions(zap.AddCallerSkip(1)).Sugar(),
	}
}
