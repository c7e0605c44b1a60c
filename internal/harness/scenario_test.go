package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScenario_FromTestdata(t *testing.T) {
	s, err := LoadScenario("testdata/scenarios/ordering_window.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ordering_window", s.Name)
	require.Len(t, s.Checks, 2)
	assert.Equal(t, "inside_window", s.Checks[0].Name)
	assert.Equal(t, "all_of", s.Checks[0].Matcher.Kind)
	require.Len(t, s.Checks[0].Matcher.Of, 2)
	assert.Equal(t, WantFailed, s.Checks[1].Want)
}

func TestLoadScenario_FileNotFound(t *testing.T) {
	_, err := LoadScenario("testdata/scenarios/does_not_exist.yaml")

	assert.Error(t, err)
}

func TestLoadScenario_MalformedYAML(t *testing.T) {
	path := writeScenario(t, "broken.yaml", "name: [unclosed\n")

	_, err := LoadScenario(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario")
}

func TestLoadScenarioDir_SortedByFileName(t *testing.T) {
	scenarios, err := LoadScenarioDir("testdata/scenarios")
	require.NoError(t, err)

	require.Len(t, scenarios, 3)
	assert.Equal(t, "collection_multisets", scenarios[0].Name)
	assert.Equal(t, "ordering_window", scenarios[1].Name)
	assert.Equal(t, "tolerance_and_negation", scenarios[2].Name)
}

func TestLoadScenarioDir_EmptyDir(t *testing.T) {
	_, err := LoadScenarioDir(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no scenario files")
}

func TestScenarioValidate(t *testing.T) {
	valid := Check{Subject: 1, Matcher: MatcherSpec{Kind: "equal_to", Value: 1}}

	tests := []struct {
		name     string
		scenario Scenario
		wantErr  string
	}{
		{
			"missing name",
			Scenario{Checks: []Check{valid}},
			"scenario name is required",
		},
		{
			"no checks",
			Scenario{Name: "empty"},
			"at least one check",
		},
		{
			"bad want",
			Scenario{Name: "s", Checks: []Check{{Subject: 1, Matcher: MatcherSpec{Kind: "equal_to"}, Want: "maybe"}}},
			`want must be "matched" or "failed"`,
		},
		{
			"missing kind",
			Scenario{Name: "s", Checks: []Check{{Subject: 1}}},
			"matcher kind is required",
		},
		{
			"valid",
			Scenario{Name: "s", Checks: []Check{valid}},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
