package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path"

	"github.com/spf13/cobra"

	"github.com/verity-go/verity/internal/harness"
	"github.com/verity-go/verity/internal/store"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	Filter string // scenario filter (glob pattern on scenario names)
	Record string // path of a run-ledger database to record into
}

// ScenarioResult holds the result of a single scenario execution.
type ScenarioResult struct {
	Name     string   `json:"name"`
	Pass     bool     `json:"pass"`
	Failures []string `json:"failures,omitempty"`
}

// TestResult holds the overall test result.
type TestResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Passed    int              `json:"passed"`
	Failed    int              `json:"failed"`
	Total     int              `json:"total"`
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test <scenarios-dir>",
		Short: "Run matcher scenarios",
		Long: `Run every scenario in the given directory.

Each scenario's checks are compiled into matchers and evaluated; a
scenario passes when every check produces its expected outcome.

Exit codes:
  0 - All scenarios passed
  1 - One or more scenarios failed
  2 - Command error (invalid paths, malformed scenarios, etc.)

Examples:
  verity test ./scenarios
  verity test ./scenarios --filter "ordering_*"
  verity test ./scenarios --record history.db
  verity test ./scenarios --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter scenarios by glob pattern")
	cmd.Flags().StringVar(&opts.Record, "record", "", "record results into the given ledger database")

	return cmd
}

func runTests(opts *TestOptions, scenariosDir string, cmd *cobra.Command) error {
	if _, err := os.Stat(scenariosDir); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("scenarios directory not found: %s", scenariosDir))
	}

	scenarios, err := harness.LoadScenarioDir(scenariosDir)
	if err != nil {
		return WrapExitError(ExitCommandError, "load scenarios", err)
	}

	var ledger *store.Store
	if opts.Record != "" {
		ledger, err = store.Open(opts.Record)
		if err != nil {
			return WrapExitError(ExitCommandError, "open ledger", err)
		}
		defer ledger.Close()
	}

	result := TestResult{}
	var seq int64
	for _, scenario := range scenarios {
		if opts.Filter != "" {
			matched, err := path.Match(opts.Filter, scenario.Name)
			if err != nil {
				return WrapExitError(ExitCommandError, fmt.Sprintf("invalid filter %q", opts.Filter), err)
			}
			if !matched {
				continue
			}
		}

		if opts.Verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "running %s\n", scenario.Name)
		}

		report, err := harness.Run(scenario)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run scenario %q", scenario.Name), err)
		}

		sr := ScenarioResult{Name: scenario.Name, Pass: report.Pass, Failures: report.Failures()}
		result.Scenarios = append(result.Scenarios, sr)
		result.Total++
		if sr.Pass {
			result.Passed++
		} else {
			result.Failed++
		}

		if ledger != nil {
			seq++
			rec := store.RunRecord{
				ID:       report.RunID,
				Scenario: scenario.Name,
				Pass:     report.Pass,
				Seq:      seq,
			}
			if len(sr.Failures) > 0 {
				rec.Detail = sr.Failures[0]
			}
			if err := ledger.RecordRun(cmd.Context(), rec); err != nil {
				return WrapExitError(ExitCommandError, "record run", err)
			}
		}
	}

	if err := printTestResult(opts, &result, cmd); err != nil {
		return WrapExitError(ExitCommandError, "write output", err)
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scenario(s) failed", result.Failed, result.Total))
	}
	return nil
}

func printTestResult(opts *TestOptions, result *TestResult, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	if opts.Format == "json" {
		return json.NewEncoder(out).Encode(result)
	}

	for _, sr := range result.Scenarios {
		status := "PASS"
		if !sr.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%s %s\n", status, sr.Name)
		for _, failure := range sr.Failures {
			fmt.Fprintf(out, "    %s\n", failure)
		}
	}
	fmt.Fprintf(out, "%d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	return nil
}
