// internal/retryafter.go
// ----------------------
// Helpers for interpreting the Retry-After response header. The upstream
// API sends it in the delta-seconds form on rate-limited responses; the
// HTTP-date form is accepted too since both are valid per RFC 9110.
package internal

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// ParseRetryAfter converts a Retry-After header value into a wait
// duration measured from now. ok is false for absent or malformed values
// and for dates already in the past, in which case the caller should fall
// back to its own backoff schedule.
func ParseRetryAfter(value string, now time.Time) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if t, err := http.ParseTime(value); err == nil {
		d := t.Sub(now)
		if d < 0 {
			return 0, false
		}
		return d, true
	}
	return 0, false
}
