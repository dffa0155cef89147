// Package outcome holds the pass/fail record produced by one check and the failure taxonomy
// shared by the comparator and the check runners.
package outcome

import (
	"fmt"
	"strings"
)

// Outcome is the result of one named check.
//
// Passed starts true and only MarkAsFailed can change it, so Passed is false exactly when
// FailureReasons is non-empty.
type Outcome struct {
	Name           string   `json:"name"`
	Passed         bool     `json:"passed"`
	FailureReasons []string `json:"failure_reasons"`
}

// New creates a passing outcome.
func New(name string) *Outcome {
	return &Outcome{
		Name:           name,
		Passed:         true,
		FailureReasons: []string{},
	}
}

// MarkAsFailed records a failure reason and marks the outcome as failed.
func (o *Outcome) MarkAsFailed(reason string) {
	o.Passed = false
	o.FailureReasons = append(o.FailureReasons, reason)
}

// MarkAsFailedf is MarkAsFailed with formatting.
func (o *Outcome) MarkAsFailedf(format string, args ...any) {
	o.MarkAsFailed(fmt.Sprintf(format, args...))
}

// Record appends every mismatch, each prefixed with prefix when it is not empty.
func (o *Outcome) Record(prefix string, mismatches []Mismatch) {
	for _, m := range mismatches {
		if prefix == "" {
			o.MarkAsFailed(m.String())
			continue
		}
		o.MarkAsFailed(prefix + ": " + m.String())
	}
}

// FailureReasonsString joins the reasons on one line.
func (o *Outcome) FailureReasonsString() string {
	return strings.Join(o.FailureReasons, " ")
}

// Report renders the outcome for humans.
func (o *Outcome) Report() string {
	var b strings.Builder

	fmt.Fprintf(&b, "passed: %t", o.Passed)

	if len(o.FailureReasons) != 0 {
		b.WriteString("\nfailure_reasons:\n")
		b.WriteString(strings.Join(o.FailureReasons, "\n"))
	}

	return b.String()
}

// Consistent reports whether the passed flag agrees with the recorded reasons.
func (o *Outcome) Consistent() bool {
	return o.Passed == (len(o.FailureReasons) == 0)
}
