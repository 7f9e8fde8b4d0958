package cmd

import (
	"context"
	"strings"
	"sync"

	"github.com/itchyny/gojq"

	"github.com/idstack/idstack-cli/faults"
)

var listJQCodeCache sync.Map

// applyListJQ runs a jq expression over the listed records. A single result
// unwraps; multiple results stay a slice.
func applyListJQ(ctx context.Context, payload any, expression string) (any, error) {
	trimmed := strings.TrimSpace(expression)
	if trimmed == "" {
		return payload, nil
	}

	code, err := cachedListJQCode(trimmed)
	if err != nil {
		return nil, faults.Validation("invalid jq expression", err)
	}

	iterator := code.RunWithContext(ctx, payload)
	results := make([]any, 0, 1)
	for {
		value, ok := iterator.Next()
		if !ok {
			break
		}
		if valueErr, isErr := value.(error); isErr {
			return nil, faults.Validation("failed to evaluate jq expression", valueErr)
		}
		results = append(results, value)
	}

	if len(results) == 0 {
		return []any{}, nil
	}
	if len(results) == 1 {
		return results[0], nil
	}
	return results, nil
}

func cachedListJQCode(expression string) (*gojq.Code, error) {
	if cached, ok := listJQCodeCache.Load(expression); ok {
		if typed, ok := cached.(*gojq.Code); ok && typed != nil {
			return typed, nil
		}
	}

	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, err
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, err
	}

	actual, _ := listJQCodeCache.LoadOrStore(expression, code)
	typed, _ := actual.(*gojq.Code)
	if typed == nil {
		return code, nil
	}
	return typed, nil
}
