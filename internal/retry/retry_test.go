package retry_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/wfproxy/wfproxy-go/internal/retry"
)

func TestRetry_nextSleep(t *testing.T) {
	type args struct {
		count           int
		baseInterval    time.Duration
		maxBaseInterval time.Duration
	}
	tests := []struct {
		name string
		args args
		want time.Duration
	}{
		{
			name: "success:0",
			args: args{count: 0, baseInterval: 1, maxBaseInterval: 1000},
			want: 1,
		},
		{
			name: "success:1",
			args: args{count: 1, baseInterval: 1, maxBaseInterval: 1000},
			want: 2,
		},
		{
			name: "success:5",
			args: args{count: 5, baseInterval: 1, maxBaseInterval: 1000},
			want: 32,
		},
		{
			name: "capped",
			args: args{count: 100000, baseInterval: 1, maxBaseInterval: 1000},
			want: 1000,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetRandFloat64(t, 0.5)
			got := NextSleep(tt.args.count, tt.args.baseInterval, tt.args.maxBaseInterval)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRetry_Do(t *testing.T) {
	var calls int
	r := Retry{MaxAttempt: 5, BaseInterval: time.Microsecond}
	require.NoError(t, r.Do(context.Background(), func() bool {
		calls++
		return calls == 3
	}))
	assert.Equal(t, 3, calls)
}

func TestRetry_Do_contextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := Retry{BaseInterval: time.Hour}
	err := r.Do(ctx, func() bool { return false })
	assert.ErrorIs(t, err, context.Canceled)
}
