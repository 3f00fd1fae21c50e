package towerbridge

import (
	"strings"
	"time"
)

// Platforms is the platform token set most endpoints accept.
var Platforms = []string{"ios", "android", "unified"}

// SearchPlatforms is the wider set accepted by entity search, which can
// also query both stores at once without unifying the results.
var SearchPlatforms = []string{"ios", "android", "both_stores", "unified"}

// StorePlatforms is the set for endpoints that address a concrete store
// and therefore reject the unified view.
var StorePlatforms = []string{"ios", "android"}

// ValidateEnum checks value against a fixed token set, ignoring case, and
// returns the canonical lowercase form. param names the argument in the
// error message. Membership is the only check; no defaulting happens here.
func ValidateEnum(param, value string, allowed []string) (string, error) {
	normalized := strings.ToLower(value)
	for _, tok := range allowed {
		if normalized == tok {
			return normalized, nil
		}
	}
	return "", &ValidationError{
		Kind:    InvalidEnumValue,
		Param:   param,
		Value:   value,
		Allowed: allowed,
	}
}

// ValidatePlatform validates the os argument against the default set.
func ValidatePlatform(value string) (string, error) {
	return ValidateEnum("os", value, Platforms)
}

// ValidateDate checks that value encodes a calendar date in strict
// YYYY-MM-DD form and returns it unchanged. Alternate separators,
// two-digit years and out-of-range months or days are all rejected.
func ValidateDate(value string) (string, error) {
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return "", &ValidationError{Kind: InvalidDateFormat, Param: "date", Value: value}
	}
	return value, nil
}
