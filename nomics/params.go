package nomics

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
)

// Params holds the query parameters of a single call.
//
// Values are encoded as follows: strings verbatim, string slices joined
// with commas (the API's list syntax, e.g. ids=BTC,ETH), times as RFC3339,
// fmt.Stringers via String and everything else via fmt.Sprint.
type Params map[string]any

// Format values accepted by the API's format parameter.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

const (
	keyParam    = "key"
	formatParam = "format"
)

// Values encodes the parameters into a new url.Values.
func (p Params) Values() url.Values {
	values := make(url.Values, len(p)+1)
	for k, v := range p {
		values.Set(k, formatValue(v))
	}
	return values
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ",")
	case time.Time:
		return val.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}

// EncodeOptions converts a struct tagged with `url:"..."` into Params.
// Multi-valued fields are joined with commas.
func EncodeOptions(opts any) (Params, error) {
	values, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode options: %w", err)
	}

	params := make(Params, len(values))
	for k, v := range values {
		params[k] = strings.Join(v, ",")
	}
	return params, nil
}

// withKey returns the encoded parameters with the API key injected,
// replacing any caller supplied key.
func (p Params) withKey(apiKey string) url.Values {
	values := p.Values()
	values.Set(keyParam, apiKey)
	return values
}
