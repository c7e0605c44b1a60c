// Package match provides composable predicate matchers for test assertions.
//
// A Matcher evaluates a single subject value and produces a Result: either
// matched, or failed with a human-readable reason that names the matcher
// that produced it. Matchers are pure values - evaluating the same matcher
// twice against the same subject yields the same Result, and a matcher
// never mutates its subject.
//
// # Building blocks
//
// Base matchers compare a subject against a configured value:
//
//	match.EqualTo(42)
//	match.LessThan(5)
//	match.CloseTo(3.14, 0.01)
//
// Combinators compose matchers over the same subject:
//
//	match.AllOf(match.GreaterThan(0), match.LessThan(5))
//	match.AnyOf(match.EqualTo("yes"), match.EqualTo("no"))
//
// Collection matchers compare slices element-wise or as multisets:
//
//	match.ContainsInOrder([]int{1, 2, 3})
//	match.ContainsInAnyOrder([]int{3, 1, 2})
//
// Panics and DoesNotPanic evaluate a func() subject under a recover
// boundary, so an expected panic never escapes the assertion.
//
// # Failure reasons
//
// Every failed Result carries a reason of the form "<name>: <detail>",
// built through a ResultBuilder seeded with the matcher's name. Reasons
// are self-contained: they include the concrete expected and actual
// values, so callers can surface them without further enrichment.
//
// # Non-matches are not errors
//
// There is no error channel. A subject that does not satisfy a predicate
// is a normal failed Result. Misconfigured matchers (a negative tolerance,
// an empty expected collection) are accepted at construction and degrade
// to a documented, deterministic outcome instead of an error.
package match
