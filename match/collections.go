package match

import "fmt"

// ContainsInOrder matches iff the subject slice and the expected slice
// have the same length and equal elements at every index. The failure
// reason reports the length mismatch, or the first diverging index.
func ContainsInOrder[E comparable](expected []E) Matcher[[]E] {
	return ContainsInOrderFunc(expected, equal[E])
}

// ContainsInOrderFunc is ContainsInOrder with an explicit element
// equality function, for element types == cannot compare.
func ContainsInOrderFunc[E any](expected []E, eq func(a, b E) bool) Matcher[[]E] {
	return MatcherFunc[[]E](func(actual []E) Result {
		b := ResultFor("contains_in_order")
		if len(actual) != len(expected) {
			return b.FailedBecause(fmt.Sprintf("expected length %d, got %d", len(expected), len(actual)))
		}
		for i := range expected {
			if !eq(actual[i], expected[i]) {
				return b.FailedBecause(fmt.Sprintf("first mismatch at index %d: expected %v, got %v",
					i, expected[i], actual[i]))
			}
		}
		return b.Matched()
	})
}

// ContainsInAnyOrder matches iff the subject and expected slices are
// equal as multisets: every expected element is consumed by exactly one
// equal subject element and vice versa. Duplicates are counted, not
// existence-checked, so [1,1,2] does not match [1,2,2]. The failure
// reason distinguishes a missing expected element, a surplus subject
// element, and a count mismatch on an element present in both.
func ContainsInAnyOrder[E comparable](expected []E) Matcher[[]E] {
	return ContainsInAnyOrderFunc(expected, equal[E])
}

// ContainsInAnyOrderFunc is ContainsInAnyOrder with an explicit element
// equality function.
func ContainsInAnyOrderFunc[E any](expected []E, eq func(a, b E) bool) Matcher[[]E] {
	return MatcherFunc[[]E](func(actual []E) Result {
		b := ResultFor("contains_in_any_order")
		used := make([]bool, len(actual))
		for _, e := range expected {
			if claim(actual, used, e, eq) {
				continue
			}
			have := countEqual(actual, e, eq)
			if have == 0 {
				return b.FailedBecause(fmt.Sprintf("expected element %v not found", e))
			}
			want := countEqual(expected, e, eq)
			return b.FailedBecause(fmt.Sprintf("element %v: expected %d occurrence(s), got %d", e, want, have))
		}
		for i, a := range actual {
			if used[i] {
				continue
			}
			if want := countEqual(expected, a, eq); want > 0 {
				return b.FailedBecause(fmt.Sprintf("element %v: expected %d occurrence(s), got %d",
					a, want, countEqual(actual, a, eq)))
			}
			return b.FailedBecause(fmt.Sprintf("unexpected surplus element %v", a))
		}
		return b.Matched()
	})
}

// ContainsSubset matches iff every expected element has a distinct equal
// counterpart in the subject; the subject may contain extra elements.
// Duplicates in the expected slice require matching multiplicity in the
// subject. An empty expected slice matches every subject.
func ContainsSubset[E comparable](expected []E) Matcher[[]E] {
	return ContainsSubsetFunc(expected, equal[E])
}

// ContainsSubsetFunc is ContainsSubset with an explicit element equality
// function.
func ContainsSubsetFunc[E any](expected []E, eq func(a, b E) bool) Matcher[[]E] {
	return MatcherFunc[[]E](func(actual []E) Result {
		b := ResultFor("contains_subset")
		used := make([]bool, len(actual))
		for _, e := range expected {
			if claim(actual, used, e, eq) {
				continue
			}
			have := countEqual(actual, e, eq)
			if have == 0 {
				return b.FailedBecause(fmt.Sprintf("expected element %v not found", e))
			}
			return b.FailedBecause(fmt.Sprintf("element %v: need %d occurrence(s), subject has %d",
				e, countEqual(expected, e, eq), have))
		}
		return b.Matched()
	})
}

// ContainedIn is the inverse direction of ContainsSubset: it matches iff
// every subject element is consumed by a distinct equal element of
// allowed. An empty allowed slice matches only the empty subject.
func ContainedIn[E comparable](allowed []E) Matcher[[]E] {
	return ContainedInFunc(allowed, equal[E])
}

// ContainedInFunc is ContainedIn with an explicit element equality
// function.
func ContainedInFunc[E any](allowed []E, eq func(a, b E) bool) Matcher[[]E] {
	return MatcherFunc[[]E](func(actual []E) Result {
		b := ResultFor("contained_in")
		used := make([]bool, len(allowed))
		for _, a := range actual {
			if claim(allowed, used, a, eq) {
				continue
			}
			permitted := countEqual(allowed, a, eq)
			if permitted == 0 {
				return b.FailedBecause(fmt.Sprintf("unexpected element %v", a))
			}
			return b.FailedBecause(fmt.Sprintf("element %v: %d occurrence(s), only %d allowed",
				a, countEqual(actual, a, eq), permitted))
		}
		return b.Matched()
	})
}

func equal[E comparable](a, b E) bool { return a == b }

// claim marks the first unused element of xs equal to e as consumed.
// Greedy consumption is exact here: element matching is plain equality,
// so any element equal to e is interchangeable with any other.
func claim[E any](xs []E, used []bool, e E, eq func(a, b E) bool) bool {
	for i, x := range xs {
		if !used[i] && eq(x, e) {
			used[i] = true
			return true
		}
	}
	return false
}

func countEqual[E any](xs []E, e E, eq func(a, b E) bool) int {
	n := 0
	for _, x := range xs {
		if eq(x, e) {
			n++
		}
	}
	return n
}
