package retry

import (
	"context"
	"math"
	"math/rand"
	"time"
)

var (
	randFloat64         = rand.Float64
	defaultBaseInterval = 100 * time.Millisecond
	defaultMaxInterval  = 5 * time.Second
)

// RetryはExponential Backoff and Jitter方式のリトライを行います。
//
// Jitterは 0.5 ~ 1.5のランダム値です。
type Retry struct {
	// 最大試行回数。0はリトライをし続けます。デフォルトは0です。
	MaxAttempt int

	// 基準リトライ間隔。デフォルトは100ミリ秒です。
	BaseInterval time.Duration

	// 最大基準リトライ間隔。デフォルトは5秒です。
	MaxBaseInterval time.Duration
}

// RetryFuncは、リトライを実施する関数です。trueを返すとリトライを終了します。
type RetryFunc func() (end bool)

// Doは、fがtrueを返すまでリトライします。
//
// ctxがキャンセルされた場合、ctxのエラーを返して終了します。
func (r Retry) Do(ctx context.Context, f RetryFunc) error {
	baseInterval := r.BaseInterval
	if baseInterval == 0 {
		baseInterval = defaultBaseInterval
	}
	maxBaseInterval := r.MaxBaseInterval
	if maxBaseInterval == 0 {
		maxBaseInterval = defaultMaxInterval
	}
	var retryCount int
	for {
		if r.MaxAttempt != 0 && retryCount > r.MaxAttempt {
			return nil
		}
		if f() {
			return nil
		}
		select {
		case <-time.After(nextSleep(retryCount, baseInterval, maxBaseInterval)):
		case <-ctx.Done():
			return ctx.Err()
		}
		retryCount++
	}
}

func nextSleep(count int, base, max time.Duration) time.Duration {
	baseInterval := float64(base) * math.Pow(2, float64(count))
	if baseInterval > float64(max) {
		baseInterval = float64(max)
	}

	jitter := 0.5 + randFloat64()
	return time.Duration(baseInterval * jitter)
}

// Doは、デフォルト設定でリトライします。
func Do(ctx context.Context, f RetryFunc) error {
	retry := Retry{}
	return retry.Do(ctx, f)
}
