package resilience

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoVal_SucceedsFirstTry(t *testing.T) {
	calls := 0
	val, err := DoVal(context.Background(), RetryConfig{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (int, error) {
			calls++
			return 42, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.Equal(t, 1, calls)
}

func TestDoVal_RetriesTransient(t *testing.T) {
	calls := 0
	val, err := DoVal(context.Background(), RetryConfig{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", NewTransientError(eris.New("boom"), 503)
			}
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", val)
	assert.Equal(t, 3, calls)
}

func TestDoVal_StopsOnPermanentError(t *testing.T) {
	calls := 0
	_, err := DoVal(context.Background(), RetryConfig{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (int, error) {
			calls++
			return 0, eris.New("request denied")
		})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoVal_ExhaustsAttempts(t *testing.T) {
	calls := 0
	_, err := DoVal(context.Background(), RetryConfig{MaxAttempts: 3, Delay: time.Millisecond},
		func(context.Context) (int, error) {
			calls++
			return 0, NewTransientError(eris.New("still down"), 503)
		})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestDoVal_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	_, err := DoVal(ctx, RetryConfig{MaxAttempts: 5, Delay: time.Minute},
		func(context.Context) (int, error) {
			calls++
			cancel()
			return 0, NewTransientError(eris.New("boom"), 503)
		})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoVal_OnRetryCallback(t *testing.T) {
	var attempts []int
	_, _ = DoVal(context.Background(), RetryConfig{
		MaxAttempts: 3,
		Delay:       time.Millisecond,
		OnRetry:     func(attempt int, _ error) { attempts = append(attempts, attempt) },
	}, func(context.Context) (int, error) {
		return 0, NewTransientError(eris.New("boom"), 429)
	})

	assert.Equal(t, []int{1, 2}, attempts)
}
