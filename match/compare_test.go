package match

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualTo(t *testing.T) {
	tests := []struct {
		name    string
		subject int
		target  int
		want    bool
	}{
		{"equal", 42, 42, true},
		{"not equal", 41, 42, false},
		{"zero values", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := EqualTo(tt.target).Match(tt.subject)
			assert.Equal(t, tt.want, r.Matched())
		})
	}
}

func TestEqualTo_FailureReason(t *testing.T) {
	r := EqualTo("yes").Match("no")

	assert.Equal(t, `equal_to: expected yes, got no`, r.Reason())
}

func TestEq_IsShorthandForEqualTo(t *testing.T) {
	assert.True(t, Eq(1).Match(1).Matched())
	assert.False(t, Eq(1).Match(2).Matched())
}

func TestDeepEqualTo(t *testing.T) {
	assert.True(t, DeepEqualTo([]int{1, 2}).Match([]int{1, 2}).Matched())
	assert.False(t, DeepEqualTo([]int{1, 2}).Match([]int{2, 1}).Matched())

	m := DeepEqualTo(map[string]int{"a": 1})
	assert.True(t, m.Match(map[string]int{"a": 1}).Matched())
	assert.False(t, m.Match(map[string]int{"a": 2}).Matched())
}

func TestOrderingMatchers(t *testing.T) {
	tests := []struct {
		name    string
		matcher Matcher[int]
		subject int
		want    bool
	}{
		{"less_than below", LessThan(5), 3, true},
		{"less_than equal", LessThan(5), 5, false},
		{"less_than above", LessThan(5), 7, false},
		{"greater_than above", GreaterThan(0), 3, true},
		{"greater_than equal", GreaterThan(0), 0, false},
		{"at_most equal", AtMost(5), 5, true},
		{"at_most above", AtMost(5), 6, false},
		{"at_least equal", AtLeast(5), 5, true},
		{"at_least below", AtLeast(5), 4, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.matcher.Match(tt.subject).Matched())
		})
	}
}

func TestOrderingShorthands(t *testing.T) {
	assert.True(t, Lt(5).Match(3).Matched())
	assert.True(t, Gt(0).Match(3).Matched())
	assert.True(t, Leq(3).Match(3).Matched())
	assert.True(t, Geq(3).Match(3).Matched())
}

func TestOrdering_FailureNamesMatcher(t *testing.T) {
	r := LessThan(5).Match(7)

	assert.Equal(t, "less_than", r.Name())
	assert.Equal(t, "less_than: expected 5, got 7", r.Reason())
}

func TestOrdering_IncomparableIsFailureNotError(t *testing.T) {
	// NaN is incomparable with everything; every ordering check fails.
	nan := math.NaN()

	assert.False(t, LessThan(1.0).Match(nan).Matched())
	assert.False(t, GreaterThan(1.0).Match(nan).Matched())
	assert.False(t, AtMost(nan).Match(1.0).Matched())
	assert.False(t, AtLeast(nan).Match(1.0).Matched())
}

func TestCloseTo(t *testing.T) {
	tests := []struct {
		name     string
		subject  float64
		expected float64
		eps      float64
		want     bool
	}{
		{"inside window", 3.14, 3.0, 0.2, true},
		{"on lower edge", 2.8, 3.0, 0.2, true},
		{"on upper edge", 3.2, 3.0, 0.2, true},
		{"outside window", 3.5, 3.0, 0.2, false},
		{"zero eps exact", 3.0, 3.0, 0, true},
		{"zero eps off", 3.0001, 3.0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CloseTo(tt.expected, tt.eps).Match(tt.subject).Matched())
		})
	}
}

func TestCloseTo_NegativeEpsilonNeverMatches(t *testing.T) {
	m := CloseTo(3.0, -0.1)

	for _, subject := range []float64{3.0, 2.9, 3.1, 0} {
		r := m.Match(subject)
		assert.False(t, r.Matched())
		assert.NotEmpty(t, r.Reason())
	}
}

func TestCloseTo_FailureShowsWindow(t *testing.T) {
	r := CloseTo(3.0, 0.2).Match(4.0)

	assert.Equal(t, "close_to: 4 should be between 2.8 and 3.2", r.Reason())
}

func TestSameObjectAs(t *testing.T) {
	a, b := new(int), new(int)

	assert.True(t, SameObjectAs(a).Match(a).Matched())

	r := SameObjectAs(a).Match(b)
	assert.False(t, r.Matched())
	assert.Equal(t, "same_object_as", r.Name())
}
