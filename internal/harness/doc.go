// Package harness runs matcher conformance scenarios.
//
// A scenario is a YAML file pairing subject values with matcher
// specifications and an expected outcome. The harness compiles each
// specification into a match.Matcher, evaluates it, and produces a
// Report suitable for golden snapshot comparison.
//
// # Scenario Format
//
//	name: scenario_name
//	description: "What this scenario validates"
//	checks:
//	  - name: inside_window
//	    subject: 3
//	    matcher:
//	      kind: all_of
//	      of:
//	        - { kind: greater_than, value: 0 }
//	        - { kind: less_than, value: 5 }
//	    want: matched
//
// A check's want is "matched" (the default) or "failed". A check that
// expects a failure passes when the matcher rejects the subject; the
// rejection reason is still captured in the report, so golden files pin
// the failure texts as well as the verdicts.
//
// # Matcher Kinds
//
// Scalar: equal_to, less_than, greater_than, at_most, at_least,
// close_to (value plus explicit epsilon), always, never.
// Combinators: all_of, any_of (children under "of"), not (single child).
// Collections: contains_in_order, contains_in_any_order,
// contains_subset, contained_in (elements under "elements").
//
// # Deterministic Reports
//
// YAML numeric values are normalized to float64 and strings to NFC
// before matching, so 3 and 3.0, or precomposed and decomposed accents,
// compare equal and render identically. Report rendering excludes the
// run ID, keeping golden files stable across runs.
package harness
