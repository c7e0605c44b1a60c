package harness

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CheckResult is the outcome of one check.
type CheckResult struct {
	Name string `json:"name"`

	// Pass is true when the matcher's verdict equals the check's want.
	Pass bool `json:"pass"`

	// Detail carries the matcher's failure reason whenever the matcher
	// rejected the subject, so golden files pin failure texts. When the
	// matcher matched but the check expected a failure, Detail explains
	// that instead.
	Detail string `json:"detail,omitempty"`
}

// Report is the outcome of executing one scenario.
type Report struct {
	// RunID is a fresh UUIDv7 per execution, used for the run ledger.
	// It is excluded from Render so golden files stay deterministic.
	RunID string `json:"run_id"`

	Scenario string        `json:"scenario"`
	Pass     bool          `json:"pass"`
	Checks   []CheckResult `json:"checks"`
}

// Run compiles and evaluates every check in the scenario. It returns an
// error only for malformed matcher specs; a rejected subject is a
// normal check outcome, not an error.
func Run(s *Scenario) (*Report, error) {
	report := &Report{
		RunID:    uuid.Must(uuid.NewV7()).String(),
		Scenario: s.Name,
		Pass:     true,
	}

	for i, check := range s.Checks {
		name := checkName(check, i)

		m, err := Compile(check.Matcher)
		if err != nil {
			return nil, fmt.Errorf("check %q: %w", name, err)
		}

		r := m.Match(normalize(check.Subject))
		wantMatched := check.Want != WantFailed

		cr := CheckResult{Name: name, Pass: r.Matched() == wantMatched}
		if !r.Matched() {
			cr.Detail = r.Reason()
		} else if !cr.Pass {
			cr.Detail = "matched, but the check expected a failure"
		}
		if !cr.Pass {
			report.Pass = false
		}
		report.Checks = append(report.Checks, cr)
	}

	return report, nil
}

func checkName(c Check, i int) string {
	if c.Name != "" {
		return c.Name
	}
	return fmt.Sprintf("check_%d", i+1)
}

// Failures returns one line per failed check, in check order.
func (r *Report) Failures() []string {
	var failures []string
	for _, c := range r.Checks {
		if !c.Pass {
			failures = append(failures, fmt.Sprintf("%s: %s", c.Name, c.Detail))
		}
	}
	return failures
}

// Render produces the deterministic text form of the report used for
// golden comparison and CLI output. The run ID is deliberately absent.
func (r *Report) Render() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "scenario: %s\n", r.Scenario)
	if r.Pass {
		buf.WriteString("result: pass\n")
	} else {
		buf.WriteString("result: fail\n")
	}
	buf.WriteString("checks:\n")
	for i, c := range r.Checks {
		status := "pass"
		if !c.Pass {
			status = "fail"
		}
		fmt.Fprintf(&buf, "  [%d] %s: %s\n", i+1, c.Name, status)
		if c.Detail != "" {
			fmt.Fprintf(&buf, "      %s\n", c.Detail)
		}
	}

	return buf.String()
}
