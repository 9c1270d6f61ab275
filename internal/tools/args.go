package tools

import "fmt"

// stringArg extracts a required string argument.
func stringArg(args map[string]interface{}, name string) (string, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return "", fmt.Errorf("missing required argument %q", name)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("argument %q must be a string, got %T", name, value)
	}
	return str, nil
}

// intArg extracts a required integer argument. JSON numbers arrive as
// float64, so both representations are accepted.
func intArg(args map[string]interface{}, name string) (int, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}
	switch n := value.(type) {
	case float64:
		return int(n), nil
	case int:
		return n, nil
	default:
		return 0, fmt.Errorf("argument %q must be an integer, got %T", name, value)
	}
}

// optStringArg extracts an optional string argument. An absent or null
// argument yields nil, which the client turns into an omitted query
// parameter. An empty-string sentinel is never used to mean "absent".
func optStringArg(args map[string]interface{}, name string) (*string, error) {
	value, ok := args[name]
	if !ok || value == nil {
		return nil, nil
	}
	str, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("argument %q must be a string, got %T", name, value)
	}
	return &str, nil
}
