package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verity-go/verity/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Scenario string // filter by scenario name
}

// HistoryEntry is one run in history output.
type HistoryEntry struct {
	Seq      int64  `json:"seq"`
	ID       string `json:"id"`
	Scenario string `json:"scenario"`
	Pass     bool   `json:"pass"`
	Detail   string `json:"detail,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history <ledger-db>",
		Short: "List recorded scenario runs",
		Long: `List runs recorded into a ledger database by 'verity test --record'.

Examples:
  verity history history.db
  verity history history.db --scenario ordering_window
  verity history history.db --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Scenario, "scenario", "", "only show runs of this scenario")

	return cmd
}

func runHistory(opts *HistoryOptions, dbPath string, cmd *cobra.Command) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return NewExitError(ExitCommandError, fmt.Sprintf("ledger database not found: %s", dbPath))
	}

	ledger, err := store.Open(dbPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "open ledger", err)
	}
	defer ledger.Close()

	runs, err := ledger.ListRuns(cmd.Context(), opts.Scenario)
	if err != nil {
		return WrapExitError(ExitCommandError, "list runs", err)
	}

	entries := make([]HistoryEntry, 0, len(runs))
	for _, rec := range runs {
		entries = append(entries, HistoryEntry{
			Seq:      rec.Seq,
			ID:       rec.ID,
			Scenario: rec.Scenario,
			Pass:     rec.Pass,
			Detail:   rec.Detail,
		})
	}

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		return json.NewEncoder(out).Encode(entries)
	}

	for _, e := range entries {
		status := "pass"
		if !e.Pass {
			status = "fail"
		}
		fmt.Fprintf(out, "[%d] %s %s %s\n", e.Seq, e.ID, e.Scenario, status)
		if e.Detail != "" {
			fmt.Fprintf(out, "    %s\n", e.Detail)
		}
	}
	fmt.Fprintf(out, "%d run(s)\n", len(entries))
	return nil
}
