package towerbridge

import (
	"fmt"
	"strings"
)

// ValidationKind identifies which validator rejected an argument.
type ValidationKind string

const (
	InvalidEnumValue  ValidationKind = "invalid_enum_value"
	InvalidDateFormat ValidationKind = "invalid_date_format"
)

// ValidationError reports a structurally invalid call argument. It is
// produced before any network I/O and is never retried.
type ValidationError struct {
	Kind    ValidationKind
	Param   string
	Value   string
	Allowed []string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case InvalidEnumValue:
		return fmt.Sprintf("invalid %s parameter: %q, must be one of: %s",
			e.Param, e.Value, strings.Join(e.Allowed, ", "))
	case InvalidDateFormat:
		return fmt.Sprintf("invalid date format: %q, must be YYYY-MM-DD", e.Value)
	default:
		return fmt.Sprintf("invalid %s parameter: %q", e.Param, e.Value)
	}
}

// FailureKind classifies how a call failed once the retry policy has run.
type FailureKind string

const (
	// HTTPError is an immediate upstream rejection: a non-retryable status
	// (4xx other than 429) on the first response that carried it.
	HTTPError FailureKind = "http_error"
	// DecodeError is a success status whose body was not valid JSON.
	DecodeError FailureKind = "decode_error"
	// Exhausted means every attempt in the budget hit a retryable failure.
	Exhausted FailureKind = "exhausted"
)

// RequestError is the terminal outcome of a failed API call. Status is the
// last HTTP status observed (0 when the failure never produced one), and
// Attempts counts how many attempts were actually made, so callers can
// tell an immediate rejection from a retried-then-exhausted outage.
type RequestError struct {
	Kind     FailureKind
	Status   int
	Body     []byte
	Attempts int
	Err      error
}

func (e *RequestError) Error() string {
	switch e.Kind {
	case HTTPError:
		return fmt.Sprintf("api request failed with status %d: %s", e.Status, bodySnippet(e.Body))
	case DecodeError:
		return fmt.Sprintf("decode response body: %v", e.Err)
	case Exhausted:
		if e.Status != 0 {
			return fmt.Sprintf("retries exhausted after %d attempts, last status %d", e.Attempts, e.Status)
		}
		return fmt.Sprintf("retries exhausted after %d attempts: %v", e.Attempts, e.Err)
	default:
		return fmt.Sprintf("api request failed after %d attempts", e.Attempts)
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// CredentialError reports a missing or failing credential source. It
// surfaces before any network attempt and is never retried.
type CredentialError struct {
	Reason string
	Err    error
}

func (e *CredentialError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("credential error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("credential error: %s", e.Reason)
}

func (e *CredentialError) Unwrap() error { return e.Err }

// bodySnippet keeps error messages readable when the upstream attaches a
// large HTML or JSON body to a rejection.
func bodySnippet(body []byte) string {
	const max = 256
	s := strings.TrimSpace(string(body))
	if len(s) > max {
		return s[:max] + "..."
	}
	if s == "" {
		return "(empty body)"
	}
	return s
}
