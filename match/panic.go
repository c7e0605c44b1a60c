package match

import "fmt"

// Panics matches iff evaluating the subject function panics. The panic
// is fully contained by the matcher: it never propagates past Match, and
// deferred cleanup inside the subject still runs during the unwind.
func Panics() Matcher[func()] {
	return MatcherFunc[func()](func(body func()) Result {
		b := ResultFor("panics")
		if _, panicked := capture(body); panicked {
			return b.Matched()
		}
		return b.FailedBecause("expected panic but none occurred")
	})
}

// DoesNotPanic matches iff evaluating the subject function completes
// normally. On failure the reason carries the captured panic value.
func DoesNotPanic() Matcher[func()] {
	return MatcherFunc[func()](func(body func()) Result {
		b := ResultFor("does_not_panic")
		if recovered, panicked := capture(body); panicked {
			return b.FailedBecause(fmt.Sprintf("expected no panic but one occurred: %v", recovered))
		}
		return b.Matched()
	})
}

// capture runs body under a recover boundary and reports whether it
// panicked, along with the recovered value.
func capture(body func()) (recovered any, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			recovered, panicked = r, true
		}
	}()
	body()
	return nil, false
}
