package match

import (
	"cmp"
	"fmt"
	"reflect"
)

// EqualTo matches iff the subject equals the expected value under ==.
// Do not use for floating point subjects; use CloseTo instead.
func EqualTo[T comparable](expected T) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor("equal_to")
		if actual == expected {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// Eq is shorthand for EqualTo.
func Eq[T comparable](expected T) Matcher[T] { return EqualTo(expected) }

// DeepEqualTo matches iff the subject deep-equals the expected value.
// Use for slices, maps and other types that == cannot compare.
func DeepEqualTo[T any](expected T) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor("deep_equal_to")
		if reflect.DeepEqual(actual, expected) {
			return b.Matched()
		}
		return b.FailedComparison(actual, expected)
	})
}

// LessThan matches iff subject < bound. For float subjects a NaN on
// either side fails the comparison; it is never an error.
func LessThan[T cmp.Ordered](bound T) Matcher[T] {
	return ordering("less_than", bound, func(a, b T) bool { return a < b })
}

// Lt is shorthand for LessThan.
func Lt[T cmp.Ordered](bound T) Matcher[T] { return LessThan(bound) }

// GreaterThan matches iff subject > bound.
func GreaterThan[T cmp.Ordered](bound T) Matcher[T] {
	return ordering("greater_than", bound, func(a, b T) bool { return a > b })
}

// Gt is shorthand for GreaterThan.
func Gt[T cmp.Ordered](bound T) Matcher[T] { return GreaterThan(bound) }

// AtMost matches iff subject <= bound.
func AtMost[T cmp.Ordered](bound T) Matcher[T] {
	return ordering("at_most", bound, func(a, b T) bool { return a <= b })
}

// Leq is shorthand for AtMost.
func Leq[T cmp.Ordered](bound T) Matcher[T] { return AtMost(bound) }

// AtLeast matches iff subject >= bound.
func AtLeast[T cmp.Ordered](bound T) Matcher[T] {
	return ordering("at_least", bound, func(a, b T) bool { return a >= b })
}

// Geq is shorthand for AtLeast.
func Geq[T cmp.Ordered](bound T) Matcher[T] { return AtLeast(bound) }

func ordering[T cmp.Ordered](name string, bound T, holds func(a, b T) bool) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor(name)
		if holds(actual, bound) {
			return b.Matched()
		}
		return b.FailedComparison(actual, bound)
	})
}

// Float is the constraint for CloseTo subjects.
type Float interface {
	~float32 | ~float64
}

// CloseTo matches iff the subject lies within eps of expected, i.e.
// expected-eps <= subject <= expected+eps. The tolerance is always
// supplied by the caller; a negative eps makes the window empty, so the
// matcher deterministically never matches.
func CloseTo[T Float](expected, eps T) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor("close_to")
		lo, hi := expected-eps, expected+eps
		if lo <= actual && actual <= hi {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf("%v should be between %v and %v", actual, lo, hi))
	})
}

// SameObjectAs matches iff the subject pointer and the expected pointer
// refer to the same object.
func SameObjectAs[T any](expected *T) Matcher[*T] {
	return MatcherFunc[*T](func(actual *T) Result {
		b := ResultFor("same_object_as")
		if actual == expected {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf("%p does not refer to the expected object at %p", actual, expected))
	})
}
