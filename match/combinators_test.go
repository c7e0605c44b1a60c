package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOf_EmptyMatchesVacuously(t *testing.T) {
	assert.True(t, AllOf[int]().Match(0).Matched())
	assert.True(t, AllOf[string]().Match("anything").Matched())
}

func TestAllOf_MatchesIffAllChildrenMatch(t *testing.T) {
	tests := []struct {
		name    string
		subject int
		want    bool
	}{
		{"both match", 3, true},
		{"first fails", -1, false},
		{"second fails", 7, false},
	}

	m := AllOf(GreaterThan(0), LessThan(5))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.subject).Matched())
		})
	}
}

func TestAllOf_FailureNamesFirstFailingChild(t *testing.T) {
	// Subject 7 satisfies greater_than but not less_than: the reason
	// must carry less_than, the first failing child in list order.
	r := AllOf(GreaterThan(0), LessThan(5)).Match(7)

	assert.False(t, r.Matched())
	assert.Equal(t, "all_of: less_than: expected 5, got 7", r.Reason())
}

func TestAllOf_FirstToFailWinsOverLaterFailures(t *testing.T) {
	r := AllOf(LessThan(0), GreaterThan(10)).Match(5)

	assert.False(t, r.Matched())
	assert.Contains(t, r.Reason(), "less_than")
	assert.NotContains(t, r.Reason(), "greater_than")
}

func TestAnyOf_EmptyFailsVacuously(t *testing.T) {
	r := AnyOf[int]().Match(0)

	assert.False(t, r.Matched())
	assert.Equal(t, "any_of: no alternatives to match", r.Reason())
}

func TestAnyOf_MatchesIffAtLeastOneChildMatches(t *testing.T) {
	tests := []struct {
		name    string
		subject int
		want    bool
	}{
		{"first matches", -1, true},
		{"second matches", 11, true},
		{"none matches", 5, false},
	}

	m := AnyOf(LessThan(0), GreaterThan(10))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Match(tt.subject).Matched())
		})
	}
}

func TestAnyOf_TotalFailureConcatenatesAllReasonsInOrder(t *testing.T) {
	r := AnyOf(LessThan(0), GreaterThan(10)).Match(5)

	assert.False(t, r.Matched())
	assert.Equal(t,
		"any_of: less_than: expected 0, got 5; greater_than: expected 10, got 5",
		r.Reason())
}

func TestCombinators_NestArbitrarily(t *testing.T) {
	// all_of(any_of(all_of(...)), ...) without special-casing depth.
	inner := AllOf(GreaterThan(0), LessThan(10))
	m := AllOf(AnyOf(inner, EqualTo(-5)), Not(EqualTo(3)))

	assert.True(t, m.Match(4).Matched())
	assert.True(t, m.Match(-5).Matched())
	assert.False(t, m.Match(3).Matched())
	assert.False(t, m.Match(42).Matched())
}
