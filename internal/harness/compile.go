package harness

import (
	"cmp"
	"fmt"
	"reflect"

	"golang.org/x/text/unicode/norm"

	"github.com/verity-go/verity/match"
)

// Compile turns a MatcherSpec into a matcher over YAML-decoded values.
// Configuration values are normalized (see normalize); subjects must be
// normalized by the caller before matching.
func Compile(spec MatcherSpec) (match.Matcher[any], error) {
	switch spec.Kind {
	case "equal_to":
		return match.DeepEqualTo(normalize(spec.Value)), nil
	case "less_than", "greater_than", "at_most", "at_least":
		return compileOrdering(spec)
	case "close_to":
		return compileCloseTo(spec)
	case "all_of", "any_of":
		children, err := compileChildren(spec.Of)
		if err != nil {
			return nil, err
		}
		if spec.Kind == "all_of" {
			return match.AllOf(children...), nil
		}
		return match.AnyOf(children...), nil
	case "not":
		if len(spec.Of) != 1 {
			return nil, fmt.Errorf("not takes exactly one child matcher, got %d", len(spec.Of))
		}
		child, err := Compile(spec.Of[0])
		if err != nil {
			return nil, err
		}
		return match.Not(child), nil
	case "always":
		return match.AlwaysMatches[any](), nil
	case "never":
		return match.NeverMatches[any](), nil
	case "contains_in_order", "contains_in_any_order", "contains_subset", "contained_in":
		return compileCollection(spec)
	default:
		return nil, fmt.Errorf("unknown matcher kind %q", spec.Kind)
	}
}

func compileChildren(specs []MatcherSpec) ([]match.Matcher[any], error) {
	children := make([]match.Matcher[any], 0, len(specs))
	for i, child := range specs {
		m, err := Compile(child)
		if err != nil {
			return nil, fmt.Errorf("child[%d]: %w", i, err)
		}
		children = append(children, m)
	}
	return children, nil
}

func compileOrdering(spec MatcherSpec) (match.Matcher[any], error) {
	switch bound := normalize(spec.Value).(type) {
	case float64:
		return typedOrdering(spec.Kind, bound), nil
	case string:
		return typedOrdering(spec.Kind, bound), nil
	default:
		return nil, fmt.Errorf("%s requires a numeric or string value, got %T", spec.Kind, spec.Value)
	}
}

func typedOrdering[T cmp.Ordered](kind string, bound T) match.Matcher[any] {
	var inner match.Matcher[T]
	switch kind {
	case "less_than":
		inner = match.LessThan(bound)
	case "greater_than":
		inner = match.GreaterThan(bound)
	case "at_most":
		inner = match.AtMost(bound)
	case "at_least":
		inner = match.AtLeast(bound)
	}
	return typed(kind, inner)
}

func compileCloseTo(spec MatcherSpec) (match.Matcher[any], error) {
	if spec.Epsilon == nil {
		return nil, fmt.Errorf("close_to requires an explicit epsilon")
	}
	target, ok := normalize(spec.Value).(float64)
	if !ok {
		return nil, fmt.Errorf("close_to requires a numeric value, got %T", spec.Value)
	}
	return typed("close_to", match.CloseTo(target, *spec.Epsilon)), nil
}

func compileCollection(spec MatcherSpec) (match.Matcher[any], error) {
	elems := make([]any, len(spec.Elements))
	for i, e := range spec.Elements {
		elems[i] = normalize(e)
	}

	var inner match.Matcher[[]any]
	switch spec.Kind {
	case "contains_in_order":
		inner = match.ContainsInOrderFunc(elems, looseEqual)
	case "contains_in_any_order":
		inner = match.ContainsInAnyOrderFunc(elems, looseEqual)
	case "contains_subset":
		inner = match.ContainsSubsetFunc(elems, looseEqual)
	case "contained_in":
		inner = match.ContainedInFunc(elems, looseEqual)
	}

	kind := spec.Kind
	return match.MatcherFunc[any](func(actual any) match.Result {
		seq, ok := actual.([]any)
		if !ok {
			return match.ResultFor(kind).FailedBecause(
				fmt.Sprintf("subject %v (%T) is not a sequence", actual, actual))
		}
		return inner.Match(seq)
	}), nil
}

// typed adapts a Matcher[T] to the any-typed subjects the harness deals
// in. A subject of the wrong dynamic type is a failure, not an error.
func typed[T any](name string, inner match.Matcher[T]) match.Matcher[any] {
	return match.MatcherFunc[any](func(actual any) match.Result {
		v, ok := actual.(T)
		if !ok {
			return match.ResultFor(name).FailedBecause(
				fmt.Sprintf("subject %v (%T) has the wrong type", actual, actual))
		}
		return inner.Match(v)
	})
}

// looseEqual compares normalized YAML values, including nested
// sequences and mappings.
func looseEqual(a, b any) bool { return reflect.DeepEqual(a, b) }

// normalize maps YAML-decoded values onto a canonical shape: every
// number decays to float64 and strings are NFC normalized, recursing
// into sequences and mappings. YAML decodes 3 as int and 3.0 as
// float64; scenarios should not have to distinguish the two, and NFC
// keeps golden output byte-stable for equal strings.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float32:
		return float64(x)
	case string:
		return norm.NFC.String(x)
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = normalize(e)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[norm.NFC.String(k)] = normalize(e)
		}
		return out
	}
	return v
}
