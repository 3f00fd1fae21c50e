package towerbridge

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

// recordSleeps replaces the executor's sleep with one that records each
// requested wait and returns immediately, so retry tests run in
// microseconds and the backoff schedule is observable.
func recordSleeps(exec *RequestExecutor) *[]time.Duration {
	var sleeps []time.Duration
	exec.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps = append(sleeps, d)
		return nil
	}
	return &sleeps
}

func newTestExecutor(t *testing.T, transport Transport, policy RetryPolicy) *RequestExecutor {
	t.Helper()
	exec, err := NewRequestExecutor(transport, StaticToken("test-token"), policy, zerolog.Nop())
	require.NoError(t, err)
	return exec
}

// alwaysStatus serves the same status for every attempt and counts calls.
func alwaysStatus(status int, body string, calls *int32) Transport {
	return TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
		atomic.AddInt32(calls, 1)
		return &APIResponse{
			StatusCode: status,
			Headers:    map[string]string{},
			Body:       []byte(body),
		}, nil
	})
}

// statusSequence serves one scripted response per attempt, in order.
func statusSequence(calls *int32, responses ...*APIResponse) Transport {
	return TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
		n := atomic.AddInt32(calls, 1)
		return responses[n-1], nil
	})
}

type failingTokens struct{ err error }

func (f failingTokens) Token() (*oauth2.Token, error) { return nil, f.err }

// timeoutError satisfies net.Error with Timeout() == true.
type timeoutError struct{}

func (timeoutError) Error() string   { return "dial tcp: i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestNewRequestExecutor(t *testing.T) {
	transport := TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
		return &APIResponse{StatusCode: 200, Body: []byte(`{}`)}, nil
	})

	t.Run("nil transport rejected", func(t *testing.T) {
		_, err := NewRequestExecutor(nil, StaticToken("t"), RetryPolicy{}, zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "transport is required")
	})

	t.Run("nil token source rejected", func(t *testing.T) {
		_, err := NewRequestExecutor(transport, nil, RetryPolicy{}, zerolog.Nop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "token source is required")
	})

	t.Run("zero policy fields get defaults", func(t *testing.T) {
		exec, err := NewRequestExecutor(transport, StaticToken("t"), RetryPolicy{}, zerolog.Nop())
		require.NoError(t, err)
		assert.Equal(t, 5, exec.policy.MaxAttempts)
		assert.Equal(t, 500*time.Millisecond, exec.policy.BaseBackoff)
		assert.Equal(t, 8*time.Second, exec.policy.MaxBackoff)
	})
}

func TestDoInjectsToken(t *testing.T) {
	var seen *APIRequest
	transport := TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
		seen = req
		return &APIResponse{StatusCode: 200, Body: []byte(`[]`)}, nil
	})
	exec := newTestExecutor(t, transport, RetryPolicy{})

	params := Params{"app_ids": "284882215"}
	_, err := exec.Do(context.Background(), "/v1/ios/apps", params)
	require.NoError(t, err)

	require.NotNil(t, seen)
	assert.Equal(t, "/v1/ios/apps", seen.Endpoint)
	assert.Equal(t, "test-token", seen.Query["auth_token"])
	assert.Equal(t, "284882215", seen.Query["app_ids"])

	_, leaked := params["auth_token"]
	assert.False(t, leaked, "the caller's params must stay free of the credential")
}

func TestDoNilParams(t *testing.T) {
	var seen *APIRequest
	transport := TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
		seen = req
		return &APIResponse{StatusCode: 200, Body: []byte(`{}`)}, nil
	})
	exec := newTestExecutor(t, transport, RetryPolicy{})

	_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.NoError(t, err)
	assert.Equal(t, "test-token", seen.Query["auth_token"])
}

func TestDoRetrySchedule(t *testing.T) {
	var calls int32
	exec := newTestExecutor(t, alwaysStatus(503, "upstream down", &calls), RetryPolicy{})
	sleeps := recordSleeps(exec)

	_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.Error(t, err)

	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, Exhausted, rerr.Kind)
	assert.Equal(t, 503, rerr.Status)
	assert.Equal(t, 5, rerr.Attempts)
	assert.EqualError(t, err, "retries exhausted after 5 attempts, last status 503")

	assert.Equal(t, int32(5), calls, "exactly one transport call per attempt")
	assert.Equal(t, []time.Duration{
		500 * time.Millisecond,
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
	}, *sleeps)
}

func TestDoClientErrorNoRetry(t *testing.T) {
	var calls int32
	body := `{"error":"unknown app_ids"}`
	exec := newTestExecutor(t, alwaysStatus(422, body, &calls), RetryPolicy{})
	sleeps := recordSleeps(exec)

	_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.Error(t, err)

	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, HTTPError, rerr.Kind)
	assert.Equal(t, 422, rerr.Status)
	assert.Equal(t, []byte(body), rerr.Body)
	assert.Equal(t, 1, rerr.Attempts)
	assert.Contains(t, err.Error(), "status 422")

	assert.Equal(t, int32(1), calls)
	assert.Empty(t, *sleeps)
}

func TestDoSuccessAfterTransientFailure(t *testing.T) {
	var calls int32
	transport := statusSequence(&calls,
		&APIResponse{StatusCode: 500, Body: []byte("boom")},
		&APIResponse{StatusCode: 200, Body: []byte(`[{"ok":true}]`)},
	)
	exec := newTestExecutor(t, transport, RetryPolicy{})
	sleeps := recordSleeps(exec)

	payload, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.NoError(t, err)
	assert.Equal(t, KindArray, payload.Kind)
	assert.Len(t, payload.Array, 1)

	assert.Equal(t, int32(2), calls)
	assert.Equal(t, []time.Duration{500 * time.Millisecond}, *sleeps)
}

func TestDoMixedRetryableStatuses(t *testing.T) {
	var calls int32
	transport := statusSequence(&calls,
		&APIResponse{StatusCode: 429, Headers: map[string]string{}, Body: []byte("slow down")},
		&APIResponse{StatusCode: 502, Body: []byte("bad gateway")},
		&APIResponse{StatusCode: 200, Body: []byte(`{"ok":true}`)},
	)
	exec := newTestExecutor(t, transport, RetryPolicy{})
	sleeps := recordSleeps(exec)

	payload, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.NoError(t, err)
	assert.Equal(t, KindObject, payload.Kind)
	assert.Equal(t, int32(3), calls)
	assert.Equal(t, []time.Duration{500 * time.Millisecond, 1 * time.Second}, *sleeps)
}

func TestDoDecodeError(t *testing.T) {
	var calls int32
	exec := newTestExecutor(t, alwaysStatus(200, "<html>maintenance</html>", &calls), RetryPolicy{})
	sleeps := recordSleeps(exec)

	_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.Error(t, err)

	var rerr *RequestError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, DecodeError, rerr.Kind)
	assert.Equal(t, 200, rerr.Status)
	assert.Equal(t, 1, rerr.Attempts)

	assert.Equal(t, int32(1), calls, "decode failures are not retried")
	assert.Empty(t, *sleeps)
}

func TestDoCredentialFailures(t *testing.T) {
	var calls int32
	transport := alwaysStatus(200, `{}`, &calls)

	t.Run("empty token", func(t *testing.T) {
		exec, err := NewRequestExecutor(transport, StaticToken(""), RetryPolicy{}, zerolog.Nop())
		require.NoError(t, err)

		_, err = exec.Do(context.Background(), "/v1/ios/apps", nil)
		var cerr *CredentialError
		require.True(t, errors.As(err, &cerr))
		assert.Equal(t, int32(0), calls, "no network I/O without a credential")
	})

	t.Run("token source failure", func(t *testing.T) {
		cause := errors.New("vault sealed")
		exec, err := NewRequestExecutor(transport, failingTokens{err: cause}, RetryPolicy{}, zerolog.Nop())
		require.NoError(t, err)

		_, err = exec.Do(context.Background(), "/v1/ios/apps", nil)
		var cerr *CredentialError
		require.True(t, errors.As(err, &cerr))
		assert.True(t, errors.Is(err, cause))
		assert.Equal(t, int32(0), calls)
	})
}

func TestDoContextCancelledDuringBackoff(t *testing.T) {
	var calls int32
	// A long base backoff so a prompt return can only come from the
	// cancellation, never from the timer.
	policy := RetryPolicy{MaxAttempts: 5, BaseBackoff: time.Minute, MaxBackoff: 2 * time.Minute}
	exec := newTestExecutor(t, alwaysStatus(503, "down", &calls), policy)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(20*time.Millisecond, cancel)

	start := time.Now()
	_, err := exec.Do(ctx, "/v1/ios/apps", nil)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Less(t, elapsed, 5*time.Second, "cancellation must interrupt the sleep")
	assert.Equal(t, int32(1), calls)
}

func TestDoContextCancelledInFlight(t *testing.T) {
	var calls int32
	transport := TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
		atomic.AddInt32(&calls, 1)
		<-ctx.Done()
		return nil, ctx.Err()
	})
	exec := newTestExecutor(t, transport, RetryPolicy{})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := exec.Do(ctx, "/v1/ios/apps", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "caller deadline propagates unchanged")
	assert.Equal(t, int32(1), calls, "caller expiry is not retried as an attempt timeout")
}

func TestDoRetryAfterHeader(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter string
		wantWait   time.Duration
	}{
		{name: "seconds form overrides backoff", retryAfter: "2", wantWait: 2 * time.Second},
		{name: "clamped to the cap", retryAfter: "60", wantWait: 8 * time.Second},
		{name: "malformed falls back to schedule", retryAfter: "soon", wantWait: 500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int32
			transport := statusSequence(&calls,
				&APIResponse{
					StatusCode: 429,
					Headers:    map[string]string{"retry-after": tt.retryAfter},
					Body:       []byte("rate limited"),
				},
				&APIResponse{StatusCode: 200, Body: []byte(`{}`)},
			)
			exec := newTestExecutor(t, transport, RetryPolicy{})
			sleeps := recordSleeps(exec)

			_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
			require.NoError(t, err)
			require.Len(t, *sleeps, 1)
			assert.Equal(t, tt.wantWait, (*sleeps)[0])
		})
	}
}

// A Retry-After on one attempt must not disturb the doubling schedule for
// the attempts that follow it.
func TestDoRetryAfterDoesNotResetBackoff(t *testing.T) {
	var calls int32
	transport := statusSequence(&calls,
		&APIResponse{StatusCode: 429, Headers: map[string]string{"retry-after": "3"}, Body: []byte("limited")},
		&APIResponse{StatusCode: 503, Body: []byte("down")},
		&APIResponse{StatusCode: 200, Body: []byte(`{}`)},
	)
	exec := newTestExecutor(t, transport, RetryPolicy{})
	sleeps := recordSleeps(exec)

	_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second, 1 * time.Second}, *sleeps)
}

func TestDoTransportErrors(t *testing.T) {
	t.Run("non-timeout failure is terminal", func(t *testing.T) {
		var calls int32
		cause := errors.New("connect: connection refused")
		transport := TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
			atomic.AddInt32(&calls, 1)
			return nil, cause
		})
		exec := newTestExecutor(t, transport, RetryPolicy{})
		sleeps := recordSleeps(exec)

		_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
		assert.Contains(t, err.Error(), "/v1/ios/apps")
		var rerr *RequestError
		assert.False(t, errors.As(err, &rerr), "hard transport failures are not RequestErrors")
		assert.Equal(t, int32(1), calls)
		assert.Empty(t, *sleeps)
	})

	t.Run("timeout is retried to exhaustion", func(t *testing.T) {
		var calls int32
		transport := TransportFunc(func(ctx context.Context, req *APIRequest) (*APIResponse, error) {
			atomic.AddInt32(&calls, 1)
			return nil, timeoutError{}
		})
		exec := newTestExecutor(t, transport, RetryPolicy{})
		sleeps := recordSleeps(exec)

		_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
		require.Error(t, err)

		var rerr *RequestError
		require.True(t, errors.As(err, &rerr))
		assert.Equal(t, Exhausted, rerr.Kind)
		assert.Equal(t, 0, rerr.Status)
		assert.Equal(t, 5, rerr.Attempts)
		assert.True(t, errors.Is(err, timeoutError{}))
		assert.Equal(t, int32(5), calls)
		assert.Len(t, *sleeps, 4)
	})
}

func TestDoBackoffCap(t *testing.T) {
	var calls int32
	policy := RetryPolicy{MaxAttempts: 7, BaseBackoff: 500 * time.Millisecond, MaxBackoff: 8 * time.Second}
	exec := newTestExecutor(t, alwaysStatus(503, "down", &calls), policy)
	sleeps := recordSleeps(exec)

	_, err := exec.Do(context.Background(), "/v1/ios/apps", nil)
	require.Error(t, err)
	assert.Equal(t, []time.Duration{
		500 * time.Millisecond,
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		8 * time.Second,
	}, *sleeps, "backoff doubles until the cap and then holds")
}
