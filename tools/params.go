package tools

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// readString reads a string argument. Numeric values are rendered to
// their decimal form so fields that accept either shape, like category
// ids, come out the way the API expects.
func readString(args map[string]any, key string, required bool) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		if required {
			return "", fmt.Errorf("parameter %q is required", key)
		}
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case json.Number:
		return t.String(), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case int:
		return strconv.Itoa(t), nil
	}
	if required {
		return "", fmt.Errorf("parameter %q must be a string", key)
	}
	return "", nil
}

// readStringDefault reads a string argument, falling back when it is
// absent or empty.
func readStringDefault(args map[string]any, key, fallback string) string {
	s, err := readString(args, key, false)
	if err != nil || s == "" {
		return fallback
	}
	return s
}

// stringArg reports a string argument and whether it carried a value.
func stringArg(args map[string]any, key string) (string, bool) {
	s, err := readString(args, key, false)
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

// intArg reports a numeric argument and whether one was present.
func intArg(args map[string]any, key string) (int, bool) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return int(t), true
	case int:
		return t, true
	case json.Number:
		n, err := t.Int64()
		if err != nil {
			return 0, false
		}
		return int(n), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// readIntDefault reads an integer argument with a fallback for absent or
// zero values.
func readIntDefault(args map[string]any, key string, fallback int) int {
	if n, ok := intArg(args, key); ok && n != 0 {
		return n
	}
	return fallback
}

// readBool reads a boolean argument with a fallback.
func readBool(args map[string]any, key string, fallback bool) bool {
	v, ok := args[key]
	if !ok || v == nil {
		return fallback
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "1" || s == "yes"
	case float64:
		return t != 0
	}
	return fallback
}
