package table

import (
	"fmt"
	"strings"

	"github.com/ethpandaops/snapcheck/internal/testing/format"
	"github.com/ethpandaops/snapcheck/internal/testing/metrics"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// maxDetailLen bounds the first-reason preview shown in the results table.
const maxDetailLen = 50

// ResultsFormatter formats check results as a table.
type ResultsFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *Palette
}

// NewResultsFormatter creates a new results table formatter.
func NewResultsFormatter(log logrus.FieldLogger, renderer Renderer) *ResultsFormatter {
	return &ResultsFormatter{
		log:      log.WithField("component", "table.results_formatter"),
		renderer: renderer,
		colors:   NewPalette(),
	}
}

// Format converts check metrics into a formatted table string with failure details.
func (f *ResultsFormatter) Format(checkMetrics []metrics.CheckMetric) string {
	if len(checkMetrics) == 0 {
		return "No checks executed"
	}

	var (
		headers      = []string{"Check", "Status", "Reasons", "Duration", "Details"}
		rows         = make([][]string, 0, len(checkMetrics))
		failedChecks = make([]metrics.CheckMetric, 0)
	)

	for _, metric := range checkMetrics {
		var (
			status  = f.colors.Status(metric.Passed)
			details string
		)

		if !metric.Passed && len(metric.FailureReasons) > 0 {
			failedChecks = append(failedChecks, metric)
			details = f.colors.Muted(truncate(metric.FailureReasons[0], maxDetailLen))
		}

		rows = append(rows, []string{
			metric.Check,
			status,
			f.colors.Reasons(len(metric.FailureReasons)),
			format.Duration(metric.Duration),
			details,
		})
	}

	output := "\n" + f.colors.Header("▸ Check Results") + "\n\n" + f.renderer.Render(headers, rows, WithColumnAlignment(
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	))

	if len(failedChecks) > 0 {
		output += f.formatFailureDetails(failedChecks)
	}

	return output
}

// formatFailureDetails lists every failure reason of every failed check.
func (f *ResultsFormatter) formatFailureDetails(failedChecks []metrics.CheckMetric) string {
	var builder strings.Builder

	builder.WriteString("\n\n" + f.colors.Header("▸ Failed Check Details") + "\n\n")

	for i, check := range failedChecks {
		if i > 0 {
			builder.WriteString("\n")
		}

		builder.WriteString(fmt.Sprintf("%s (%s)\n", f.colors.Bold(check.Check), format.Duration(check.Duration)))

		for _, reason := range check.FailureReasons {
			builder.WriteString(fmt.Sprintf("  %s %s\n", f.colors.Fail("✗"), f.colors.Reason(reason)))
		}
	}

	return builder.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-3] + "..."
}
