package filter

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// helperFunctions returns the functions available in every expression.
// Arguments are untyped because decoded JSON fields are. Names must not
// collide with expr builtins or operators such as contains and startsWith.
func helperFunctions() map[string]any {
	return map[string]any{
		"num": toNumber,
		"str": toString,
		"like": func(s, substr any) bool {
			return strings.Contains(strings.ToLower(toString(s)), strings.ToLower(toString(substr)))
		},
		"daysSince": func(v any) int {
			t, err := time.Parse(time.RFC3339, toString(v))
			if err != nil {
				return -1
			}
			return int(time.Since(t).Hours() / 24)
		},
	}
}

// toNumber converts the API's string encoded numbers; anything unparseable is 0
func toNumber(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if val {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func toString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
