// Package verity is the assertion entry point for the match package.
//
// It hands a subject value to a matcher and fails the surrounding test
// when the matcher does not accept it:
//
//	verity.AssertThat(t, got, match.AllOf(match.GreaterThan(0), match.LessThan(5)))
//
// The failure diagnostic is the matcher's own reason, which is
// self-contained: it names the matcher and the concrete expected and
// actual values, so no further enrichment happens here.
package verity

import "github.com/verity-go/verity/match"

// TestingT is the minimal testing seam AssertThat and ExpectThat need.
// *testing.T satisfies it.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	Fatalf(format string, args ...any)
}

// AssertThat evaluates the matcher against the subject and aborts the
// current test on failure. On a match it proceeds silently.
func AssertThat[T any](t TestingT, actual T, m match.Matcher[T]) {
	t.Helper()
	if r := m.Match(actual); !r.Matched() {
		t.Fatalf("assertion failed: %s", r.Reason())
	}
}

// ExpectThat is the non-fatal variant of AssertThat: it records a test
// error on failure and reports whether the matcher accepted the subject,
// letting a test accumulate several failed expectations before ending.
func ExpectThat[T any](t TestingT, actual T, m match.Matcher[T]) bool {
	t.Helper()
	r := m.Match(actual)
	if !r.Matched() {
		t.Errorf("expectation failed: %s", r.Reason())
	}
	return r.Matched()
}
