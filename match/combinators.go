package match

import "strings"

// AllOf combines child matchers conjunctively: the subject must satisfy
// every child. Children are evaluated in the given order against the
// same subject; when several fail, the reason carries the first failing
// child's reason. AllOf with no children matches every subject
// vacuously.
//
// AllOf is itself a Matcher, so combinators nest to arbitrary depth.
func AllOf[T any](children ...Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor("all_of")
		var first Result
		failed := false
		for _, child := range children {
			if r := child.Match(actual); !r.Matched() && !failed {
				first, failed = r, true
			}
		}
		if !failed {
			return b.Matched()
		}
		return b.FailedBecause(first.Reason())
	})
}

// AnyOf combines child matchers disjunctively: the subject must satisfy
// at least one child. When every child fails, the reason concatenates
// each child's reason in child order, so the caller sees why every
// alternative was rejected. AnyOf with no children fails every subject
// vacuously.
func AnyOf[T any](children ...Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor("any_of")
		if len(children) == 0 {
			return b.FailedBecause("no alternatives to match")
		}
		reasons := make([]string, 0, len(children))
		for _, child := range children {
			r := child.Match(actual)
			if r.Matched() {
				return b.Matched()
			}
			reasons = append(reasons, r.Reason())
		}
		return b.FailedBecause(strings.Join(reasons, "; "))
	})
}
