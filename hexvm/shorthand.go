package hexvm

import (
	"fmt"
	"math"
)

// Patterns lowers a nested literal tree into the flat pattern
// sequence that rebuilds it on the stack. Items may be patterns,
// nested []any sequences, numbers, booleans, nil, or Vector3s.
//
// escapeCount tracks how many quotation layers an escape-control
// pattern must survive: each Introspection strips one layer of
// Consideration, so a pattern at depth n needs n-1 of them.
func Patterns(items ...any) ([]*Pattern, error) {
	return lowerAll(items, 1)
}

func lowerAll(items []any, escapeCount int) ([]*Pattern, error) {
	var out []*Pattern
	for _, item := range items {
		ps, err := lower(item, escapeCount)
		if err != nil {
			return nil, err
		}
		out = append(out, ps...)
	}
	return out, nil
}

func lower(item any, escapeCount int) ([]*Pattern, error) {
	switch x := item.(type) {

	case nil:
		return []*Pattern{NullaryReflection}, nil

	case bool:
		if x {
			return []*Pattern{TrueReflection}, nil
		}
		return []*Pattern{FalseReflection}, nil

	case int:
		return lowerNumber(float64(x))

	case float64:
		return lowerNumber(x)

	case Vector3:
		return lowerVector(x, escapeCount)

	case *Pattern:
		if x.MustEscape && escapeCount > 1 {
			out := make([]*Pattern, 0, escapeCount)
			for range escapeCount - 1 {
				out = append(out, Consideration)
			}
			return append(out, x), nil
		}
		return []*Pattern{x}, nil

	case []any:
		return lowerSequence(x, escapeCount)
	}

	return nil, fmt.Errorf("cannot lower %T", item)
}

func lowerSequence(items []any, escapeCount int) ([]*Pattern, error) {
	if len(items) == 0 {
		return []*Pattern{VacantReflection}, nil
	}

	if len(items) == 1 {
		// a singleton whose element lowers to a stack value skips
		// the quotation wrapper and wraps afterwards instead
		if inner, ok := items[0].([]any); ok {
			ps, err := lowerSequence(inner, escapeCount)
			if err != nil {
				return nil, err
			}
			return append(ps, SinglesPurification), nil
		}
		if p, ok := items[0].(*Pattern); ok && p.MustEscape {
			ps, err := lower(p, escapeCount*2)
			if err != nil {
				return nil, err
			}
			return append(ps, SinglesPurification), nil
		}
	}

	out := []*Pattern{Introspection}
	ps, err := lowerAll(items, escapeCount*2)
	if err != nil {
		return nil, err
	}
	out = append(out, ps...)
	return append(out, Retrospection), nil
}

func lowerNumber(v float64) ([]*Pattern, error) {
	switch v {
	case 2 * math.Pi:
		return []*Pattern{CirclesReflection}, nil
	case math.Pi:
		return []*Pattern{ArcsReflection}, nil
	case math.E:
		return []*Pattern{EulersReflection}, nil
	}
	p, err := NumericalReflection(v)
	if err != nil {
		return nil, err
	}
	return []*Pattern{p}, nil
}

var vectorConstants = []struct {
	v Vector3
	p **Pattern
}{
	{Vector3{}, &VectorReflectionZero},
	{Vector3{X: 1}, &VectorReflectionPosX},
	{Vector3{X: -1}, &VectorReflectionNegX},
	{Vector3{Y: 1}, &VectorReflectionPosY},
	{Vector3{Y: -1}, &VectorReflectionNegY},
	{Vector3{Z: 1}, &VectorReflectionPosZ},
	{Vector3{Z: -1}, &VectorReflectionNegZ},
}

func lowerVector(v Vector3, escapeCount int) ([]*Pattern, error) {
	for _, c := range vectorConstants {
		if v == c.v {
			return []*Pattern{*c.p}, nil
		}
	}
	return lowerAll([]any{v.X, v.Y, v.Z, VectorExaltation}, escapeCount)
}
