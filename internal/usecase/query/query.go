package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

// Evaluate runs a JSONPath expression against a rendered YAML document.
// Policy:
// - doc that is not valid YAML is KindInvalidModel.
// - A malformed expression is KindInvalidConfig.
// - An expression matching nothing (or only empty values) is KindNotFound.
func Evaluate(doc []byte, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, &domain.OpError{
			Op:   "query.evaluate",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("empty jsonpath expression: %w", domain.ErrInvalidConfig),
		}
	}

	var data any
	if err := yaml.Unmarshal(doc, &data); err != nil {
		return nil, &domain.OpError{
			Op:   "query.parse",
			Kind: domain.KindInvalidModel,
			Err:  err,
		}
	}
	data = normalize(data)

	eval, err := jsonpath.New(expr)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "query.compile",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("%s: %w", expr, err),
		}
	}

	val, err := eval(context.Background(), data)
	if err != nil {
		return nil, notFound(expr, err)
	}
	if isEmptyValue(val) {
		return nil, notFound(expr, domain.ErrNotFound)
	}
	return val, nil
}

// Format renders a query result: scalars as plain text, everything else as
// a YAML block.
func Format(v any) (string, error) {
	if arr, ok := v.([]any); ok && len(arr) == 1 {
		v = arr[0]
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case bool, int, int64, uint64, float64:
		return fmt.Sprint(t), nil
	}
	b, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(b), "\n"), nil
}

// normalize rewrites map[any]any (non-string YAML keys) into map[string]any so
// jsonpath can walk the whole document.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprint(k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	default:
		return v
	}
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func notFound(expr string, err error) error {
	return &domain.OpError{
		Op:   "query.evaluate",
		Kind: domain.KindNotFound,
		Err:  fmt.Errorf("no value for %s: %w", expr, err),
	}
}
