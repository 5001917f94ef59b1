package filter

import (
	"fmt"
	"maps"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Filter is a compiled boolean expression evaluated against decoded records.
//
// Top-level fields of an object record are available as variables, and the
// whole record as `record`, so keys that are not identifiers can still be
// reached: record["1d"].volume.
type Filter struct {
	program    *vm.Program
	expression string
}

// Compile trims and compiles an expression into a Filter
func Compile(expression string) (*Filter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Err: fmt.Errorf("empty expression")}
	}

	program, err := expr.Compile(expression,
		expr.Env(helperFunctions()),
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Err: err}
	}

	return &Filter{program: program, expression: expression}, nil
}

// Match evaluates the filter against a single record
func (f *Filter) Match(record any) (bool, error) {
	env := make(map[string]any)
	if fields, ok := record.(map[string]any); ok {
		maps.Copy(env, fields)
	}
	maps.Copy(env, helperFunctions())
	env["record"] = record

	result, err := expr.Run(f.program, env)
	if err != nil {
		return false, err
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("expression returned %T, not bool", result)
	}
	return matched, nil
}

// String returns the original expression
func (f *Filter) String() string {
	return f.expression
}

// Apply returns the elements of an array document matching f, in order
func Apply(data any, f *Filter) ([]any, error) {
	records, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotArray, data)
	}

	matched := make([]any, 0, len(records))
	for i, record := range records {
		ok, err := f.Match(record)
		if err != nil {
			return nil, &EvaluationError{Expression: f.expression, Index: i, Err: err}
		}
		if ok {
			matched = append(matched, record)
		}
	}

	return matched, nil
}
