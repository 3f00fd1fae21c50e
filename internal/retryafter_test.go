package internal

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  time.Duration
		ok    bool
	}{
		{name: "delta seconds", value: "2", want: 2 * time.Second, ok: true},
		{name: "zero seconds", value: "0", want: 0, ok: true},
		{name: "large delta", value: "120", want: 2 * time.Minute, ok: true},
		{name: "surrounding whitespace", value: " 5 ", want: 5 * time.Second, ok: true},
		{name: "negative seconds", value: "-1", ok: false},
		{name: "empty", value: "", ok: false},
		{name: "prose", value: "soon", ok: false},
		{name: "fractional seconds", value: "1.5", ok: false},
		{
			name:  "http date in the future",
			value: now.Add(30 * time.Second).Format(http.TimeFormat),
			want:  30 * time.Second,
			ok:    true,
		},
		{
			name:  "http date in the past",
			value: now.Add(-time.Minute).Format(http.TimeFormat),
			ok:    false,
		},
		{name: "unparseable date", value: "Mon, 99 Jan", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRetryAfter(tt.value, now)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
