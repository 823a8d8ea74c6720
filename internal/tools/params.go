package tools

import (
	"fmt"
)

// RequiredString extracts a required string argument. The error message is
// part of the tool contract: clients match on "<name> parameter is required".
func RequiredString(args map[string]interface{}, name string) (string, error) {
	value, ok := args[name].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("%s parameter is required", name)
	}
	return value, nil
}

// RequiredInt extracts a required numeric argument. JSON numbers decode as
// float64, so both float64 and int are accepted.
func RequiredInt(args map[string]interface{}, name string) (int, error) {
	switch v := args[name].(type) {
	case float64:
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("%s parameter is required", name)
	}
}

// OptionalString extracts an optional string argument, returning the
// fallback when absent or empty.
func OptionalString(args map[string]interface{}, name, fallback string) string {
	if value, ok := args[name].(string); ok && value != "" {
		return value
	}
	return fallback
}

// OptionalInt extracts an optional numeric argument, returning the fallback
// when absent.
func OptionalInt(args map[string]interface{}, name string, fallback int) int {
	switch v := args[name].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}
