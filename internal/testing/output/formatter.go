// Package output prints run progress and result tables to the terminal.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/ethpandaops/snapcheck/internal/testing/format"
	"github.com/ethpandaops/snapcheck/internal/testing/metrics"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/ethpandaops/snapcheck/internal/testing/table"
	"github.com/fatih/color"
)

// Formatter writes what an operator sees after a run.
type Formatter interface {
	PrintSection(title string)
	PrintRun(checks int, elapsed time.Duration)
	PrintVerdict(outcomes []*outcome.Outcome)
	PrintError(message string, err error)
	PrintFixtures(fixtures []table.FixtureInfo)
	PrintCheckResults()
	PrintSummary()
}

type formatter struct {
	writer  io.Writer
	metrics metrics.Collector

	fixtures table.FixtureFormatter
	results  *table.ResultsFormatter
	summary  *table.SummaryFormatter

	pass    *color.Color
	fail    *color.Color
	section *color.Color
	muted   *color.Color
}

// NewFormatter creates a new output formatter
func NewFormatter(
	writer io.Writer,
	metricsCollector metrics.Collector,
	fixtureFormatter table.FixtureFormatter,
	resultsFormatter *table.ResultsFormatter,
	summaryFormatter *table.SummaryFormatter,
) Formatter {
	return &formatter{
		writer:   writer,
		metrics:  metricsCollector,
		fixtures: fixtureFormatter,
		results:  resultsFormatter,
		summary:  summaryFormatter,
		pass:     color.New(color.FgGreen, color.Bold),
		fail:     color.New(color.FgRed, color.Bold),
		section:  color.New(color.FgBlue),
		muted:    color.New(color.FgHiBlack),
	}
}

func (f *formatter) PrintSection(title string) {
	f.section.Fprintf(f.writer, "\n▸ %s\n", title)
}

// PrintRun reports how many checks ran and how long the run took.
func (f *formatter) PrintRun(checks int, elapsed time.Duration) {
	f.muted.Fprintf(f.writer, "Ran %d checks (%s)\n", checks, format.Duration(elapsed))
}

// PrintVerdict prints one line for the whole run.
func (f *formatter) PrintVerdict(outcomes []*outcome.Outcome) {
	failed := 0

	for _, out := range outcomes {
		if !out.Passed {
			failed++
		}
	}

	if failed == 0 {
		f.pass.Fprintf(f.writer, "All %d checks passed\n", len(outcomes))
		return
	}

	f.fail.Fprintf(f.writer, "%d of %d checks failed\n", failed, len(outcomes))
}

func (f *formatter) PrintError(message string, err error) {
	if err != nil {
		message = fmt.Sprintf("%s: %v", message, err)
	}

	f.fail.Fprintln(f.writer, message)
}

func (f *formatter) PrintFixtures(fixtures []table.FixtureInfo) {
	fmt.Fprintln(f.writer, f.fixtures.Format(fixtures))
}

// PrintCheckResults prints the per-check table from the collected metrics.
func (f *formatter) PrintCheckResults() {
	fmt.Fprintln(f.writer, f.results.Format(f.metrics.GetCheckMetrics()))
}

func (f *formatter) PrintSummary() {
	fmt.Fprintln(f.writer, f.summary.Format(f.metrics.GetSummary()))
}
