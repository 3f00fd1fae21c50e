package towerbridge

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/openappintel/tower-bridge/internal"
)

// authParam is the query key the credential travels under. The executor
// injects it; callers never supply it.
const authParam = "auth_token"

// retryableStatuses are the transient upstream failures worth backing off
// for. Every other status at or above 400 is a caller-fixable rejection
// that retrying would only mask while burning quota.
var retryableStatuses = map[int]bool{
	429: true,
	500: true,
	502: true,
	503: true,
	504: true,
}

// RequestExecutor performs one logical API call with bounded, backing-off
// retries. It holds no mutable state across calls, so any number of calls
// may run concurrently over the same executor without coordination.
type RequestExecutor struct {
	transport Transport
	tokens    oauth2.TokenSource
	policy    RetryPolicy
	log       zerolog.Logger

	// sleep is swapped out in tests to observe the backoff schedule.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewRequestExecutor wires the executor's collaborators. The transport
// and the token source are required; an executor never discovers them
// later. Zero policy fields fall back to the defaults.
func NewRequestExecutor(transport Transport, tokens oauth2.TokenSource, policy RetryPolicy, log zerolog.Logger) (*RequestExecutor, error) {
	if transport == nil {
		return nil, errors.New("towerbridge: transport is required")
	}
	if tokens == nil {
		return nil, errors.New("towerbridge: token source is required")
	}
	def := DefaultConfig().Retry
	if policy.MaxAttempts <= 0 {
		policy.MaxAttempts = def.MaxAttempts
	}
	if policy.BaseBackoff <= 0 {
		policy.BaseBackoff = def.BaseBackoff
	}
	if policy.MaxBackoff <= 0 {
		policy.MaxBackoff = def.MaxBackoff
	}
	return &RequestExecutor{
		transport: transport,
		tokens:    tokens,
		policy:    policy,
		log:       log,
		sleep:     sleepContext,
	}, nil
}

// Do executes one authenticated GET against endpoint and returns the
// decoded body. Transient failures (429, 5xx, attempt-level timeouts) are
// retried with doubling backoff until the attempt budget runs out; all
// other failures surface immediately. Cancelling ctx aborts the in-flight
// attempt as well as any backoff sleep, and the context error propagates
// unchanged.
func (re *RequestExecutor) Do(ctx context.Context, endpoint string, params Params) (Payload, error) {
	tok, err := re.tokens.Token()
	if err != nil {
		return Payload{}, &CredentialError{Reason: "token source failed", Err: err}
	}
	if tok.AccessToken == "" {
		return Payload{}, &CredentialError{Reason: "no API token configured"}
	}

	query := params.clone()
	query.Set(authParam, tok.AccessToken)
	req := &APIRequest{Endpoint: endpoint, Query: query}

	log := re.log.With().
		Str("call_id", uuid.NewString()).
		Str("endpoint", endpoint).
		Logger()

	backoff := re.policy.BaseBackoff
	var lastStatus int
	var lastErr error
	for attempt := 1; ; attempt++ {
		log.Debug().Int("attempt", attempt).Msg("sending request")
		resp, err := re.transport.RoundTrip(ctx, req)

		var retryAfter string
		switch {
		case err != nil && ctx.Err() != nil:
			// Caller cancellation, not an attempt failure.
			return Payload{}, ctx.Err()
		case err != nil && !isTimeout(err):
			return Payload{}, fmt.Errorf("towerbridge: request %s: %w", endpoint, err)
		case err != nil:
			lastStatus, lastErr = 0, err
			log.Debug().Err(err).Int("attempt", attempt).Msg("attempt timed out")
		case retryableStatuses[resp.StatusCode]:
			lastStatus, lastErr = resp.StatusCode, nil
			retryAfter = resp.Headers["retry-after"]
			log.Debug().Int("status", resp.StatusCode).Int("attempt", attempt).Msg("transient upstream failure")
		case resp.StatusCode >= 400:
			log.Debug().Int("status", resp.StatusCode).Msg("client error, not retrying")
			return Payload{}, &RequestError{
				Kind:     HTTPError,
				Status:   resp.StatusCode,
				Body:     resp.Body,
				Attempts: attempt,
			}
		default:
			payload, decErr := DecodePayload(resp.Body)
			if decErr != nil {
				log.Debug().Err(decErr).Int("status", resp.StatusCode).Msg("undecodable response body")
				return Payload{}, &RequestError{
					Kind:     DecodeError,
					Status:   resp.StatusCode,
					Attempts: attempt,
					Err:      decErr,
				}
			}
			if attempt > 1 {
				log.Debug().Int("attempt", attempt).Msg("request succeeded after retry")
			}
			return payload, nil
		}

		if attempt >= re.policy.MaxAttempts {
			log.Debug().Int("attempts", attempt).Int("last_status", lastStatus).Msg("retries exhausted")
			return Payload{}, &RequestError{
				Kind:     Exhausted,
				Status:   lastStatus,
				Attempts: attempt,
				Err:      lastErr,
			}
		}

		wait, source := re.nextWait(backoff, retryAfter)
		log.Debug().Dur("wait", wait).Str("source", source).Msg("backing off")
		if err := re.sleep(ctx, wait); err != nil {
			return Payload{}, err
		}
		backoff *= 2
		if backoff > re.policy.MaxBackoff {
			backoff = re.policy.MaxBackoff
		}
	}
}

// nextWait picks the delay before the next attempt: the server's
// Retry-After when it sent a usable one, otherwise the current backoff.
// Both are clamped to the policy cap so one call's latency stays bounded.
func (re *RequestExecutor) nextWait(backoff time.Duration, retryAfter string) (time.Duration, string) {
	if d, ok := internal.ParseRetryAfter(retryAfter, time.Now()); ok {
		if d > re.policy.MaxBackoff {
			d = re.policy.MaxBackoff
		}
		return d, "retry-after"
	}
	return backoff, "backoff"
}

// isTimeout reports whether err is an attempt-level connect or read
// timeout. Caller-context expiry is handled before this is consulted.
func isTimeout(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
