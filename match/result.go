package match

import "fmt"

// Result is the immutable outcome of a single matcher evaluation.
// It either matched, or failed with a reason traceable to the matcher
// that produced it. The zero value is a failed Result with no reason;
// matchers always construct Results through a ResultBuilder instead.
type Result struct {
	matched bool
	name    string
	reason  string
}

// Matched reports whether the evaluation succeeded.
func (r Result) Matched() bool { return r.matched }

// Name returns the name of the matcher that produced this Result.
func (r Result) Name() string { return r.name }

// Reason returns the failure reason, formatted "<name>: <detail>".
// It is empty if and only if the Result matched.
func (r Result) Reason() string { return r.reason }

// ResultBuilder constructs a Result on behalf of a named matcher.
// A builder is a transient, single-use value: create it with ResultFor
// when an evaluation starts, finalize it with Matched or FailedBecause,
// then discard it.
type ResultBuilder struct {
	name string
}

// ResultFor creates a builder for the matcher with the given name.
// The name becomes the leading term of any failure reason, so every
// failure can be traced back to the matcher that produced it.
func ResultFor(name string) ResultBuilder {
	return ResultBuilder{name: name}
}

// Matched finalizes the builder into a successful Result.
func (b ResultBuilder) Matched() Result {
	return Result{matched: true, name: b.name}
}

// FailedBecause finalizes the builder into a failed Result whose reason
// is "<name>: <detail>". An empty detail is replaced with a generic one
// so a failed Result never carries an empty reason.
func (b ResultBuilder) FailedBecause(detail string) Result {
	if detail == "" {
		detail = "did not match"
	}
	return Result{name: b.name, reason: b.name + ": " + detail}
}

// FailedComparison finalizes the builder into a failed Result rendering
// the expected and actual values.
func (b ResultBuilder) FailedComparison(actual, expected any) Result {
	return b.FailedBecause(fmt.Sprintf("expected %v, got %v", expected, actual))
}
