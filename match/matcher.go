package match

import "fmt"

// Matcher is the capability every predicate implements: given a subject,
// produce a Result. Implementations must be stateless with respect to
// invocation - the Result is a pure function of the matcher's
// configuration and the subject - and must never mutate the subject.
type Matcher[T any] interface {
	Match(actual T) Result
}

// MatcherFunc adapts a function to the Matcher interface. This is the
// dual closure form: a predicate that builds its own Result can be used
// directly as a matcher with custom messages.
type MatcherFunc[T any] func(actual T) Result

// Match calls f(actual).
func (f MatcherFunc[T]) Match(actual T) Result { return f(actual) }

// Is returns the given matcher unmodified. Syntactic sugar for call
// sites that read better with it: AssertThat(t, x, Is(EqualTo(1))).
func Is[T any](m Matcher[T]) Matcher[T] { return m }

// Not negates the given matcher. A matched child fails with a reason
// naming the satisfied child; a failed child matches.
func Not[T any](m Matcher[T]) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		r := m.Match(actual)
		b := ResultFor("not(" + r.Name() + ")")
		if r.Matched() {
			return b.FailedBecause(r.Name() + " is satisfied")
		}
		return b.Matched()
	})
}

// AlwaysMatches returns a matcher that matches every subject.
func AlwaysMatches[T any]() Matcher[T] {
	return MatcherFunc[T](func(T) Result {
		return ResultFor("always_matches").Matched()
	})
}

// NeverMatches returns a matcher that fails every subject.
func NeverMatches[T any]() Matcher[T] {
	return MatcherFunc[T](func(T) Result {
		return ResultFor("never_matches").FailedBecause("this matcher never matches")
	})
}

// Satisfies adapts a boolean predicate to the Matcher contract. The
// failure message is generic; use MatcherFunc directly when a custom
// message is needed.
func Satisfies[T any](pred func(T) bool) Matcher[T] {
	return MatcherFunc[T](func(actual T) Result {
		b := ResultFor("satisfies")
		if pred(actual) {
			return b.Matched()
		}
		return b.FailedBecause(fmt.Sprintf("predicate not satisfied by %v", actual))
	})
}
