package filter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickerJSON = `[
	{"id":"BTC","name":"Bitcoin","price":"50000.12","rank":"1","status":"active","1d":{"volume":"3200000000.50"}},
	{"id":"ETH","name":"Ethereum","price":"3100.50","rank":"2","status":"active","1d":{"volume":"1500000000.00"}},
	{"id":"DOGE","name":"Dogecoin","price":"0.21","rank":"8","status":"dead"}
]`

func decode(t *testing.T, s string) any {
	t.Helper()

	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func ids(records []any) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.(map[string]any)["id"].(string))
	}
	return out
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "valid expression",
			expression: `num(price) > 100`,
		},
		{
			name:       "empty expression",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "invalid syntax",
			expression: `like(name, "bit"`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `num(price) + 1`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.String())
		})
	}
}

func TestApply(t *testing.T) {
	data := decode(t, tickerJSON)

	tests := []struct {
		name       string
		expression string
		want       []string
	}{
		{
			name:       "numeric strings",
			expression: `num(price) > 1000`,
			want:       []string{"BTC", "ETH"},
		},
		{
			name:       "string helpers",
			expression: `like(name, "COIN")`,
			want:       []string{"BTC", "DOGE"},
		},
		{
			name:       "equality on field",
			expression: `status == "active" and num(rank) <= 1`,
			want:       []string{"BTC"},
		},
		{
			name:       "nested keys through record",
			expression: `num(record["1d"]?.volume) > 2e9`,
			want:       []string{"BTC"},
		},
		{
			name:       "missing field",
			expression: `num(market_cap) > 0`,
			want:       []string{},
		},
		{
			name:       "builtin operators",
			expression: `upper(str(id)) startsWith "E"`,
			want:       []string{"ETH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched, err := Apply(data, f)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(matched))
		})
	}
}

func TestApplyNotArray(t *testing.T) {
	f, err := Compile(`true`)
	require.NoError(t, err)

	_, err = Apply(decode(t, `{"status":"ok"}`), f)
	assert.ErrorIs(t, err, ErrNotArray)
}

func TestApplyScalarRecords(t *testing.T) {
	f, err := Compile(`str(record) != "b"`)
	require.NoError(t, err)

	matched, err := Apply(decode(t, `["a","b","c"]`), f)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "c"}, matched)
}

func TestDaysSince(t *testing.T) {
	f, err := Compile(`daysSince(price_timestamp) >= 2 and daysSince(bogus) == -1`)
	require.NoError(t, err)

	record := map[string]any{
		"price_timestamp": time.Now().Add(-72 * time.Hour).UTC().Format(time.RFC3339),
	}
	ok, err := f.Match(record)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{"42.5", 42.5},
		{" 7 ", 7},
		{"n/a", 0},
		{12.0, 12},
		{3, 3},
		{true, 1},
		{nil, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, toNumber(tt.in), "%v", tt.in)
	}
}

func TestCompileIndependentFilters(t *testing.T) {
	first, err := Compile(`num(price) > 1`)
	require.NoError(t, err)
	again, err := Compile("  num(price) > 1\n")
	require.NoError(t, err)

	assert.Equal(t, first.String(), again.String())
	assert.NotSame(t, first.program, again.program)

	matched, err := again.Match(map[string]any{"price": "2"})
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestErrors(t *testing.T) {
	err := &EvaluationError{Expression: "x > 1", Index: 3, Err: assert.AnError}
	assert.Equal(t, "evaluation error for filter 'x > 1' on record 3: "+assert.AnError.Error(), err.Error())
	assert.ErrorIs(t, err, assert.AnError)
}
