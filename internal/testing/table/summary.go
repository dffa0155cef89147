package table

import (
	"fmt"

	"github.com/ethpandaops/snapcheck/internal/testing/format"
	"github.com/ethpandaops/snapcheck/internal/testing/metrics"
	"github.com/sirupsen/logrus"
)

// SummaryFormatter formats summary statistics as a table.
type SummaryFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *Palette
}

// NewSummaryFormatter creates a new summary table formatter.
func NewSummaryFormatter(log logrus.FieldLogger, renderer Renderer) *SummaryFormatter {
	return &SummaryFormatter{
		log:      log.WithField("component", "table.summary_formatter"),
		renderer: renderer,
		colors:   NewPalette(),
	}
}

// Format converts summary metrics into a formatted table string.
func (f *SummaryFormatter) Format(summary metrics.SummaryMetric) string {
	passRate := format.Percent(summary.PassedChecks, summary.TotalChecks)

	passedValue := fmt.Sprintf("%d (%s)", summary.PassedChecks, f.colors.PassRate(passRate))

	failedValue := fmt.Sprintf("%d (%.1f%%)", summary.FailedChecks, format.Percent(summary.FailedChecks, summary.TotalChecks))
	if summary.FailedChecks > 0 {
		failedValue = f.colors.Fail(failedValue)
	} else {
		failedValue = f.colors.Pass(failedValue)
	}

	var (
		headers = []string{"Metric", "Value"}
		rows    = [][]string{
			{"Total Checks", f.colors.Bold(format.Int(summary.TotalChecks))},
			{"Passed", passedValue},
			{"Failed", failedValue},
			{"Failure Reasons", f.colors.Reasons(summary.TotalReasons)},
			{"Total Duration", format.Duration(summary.TotalDuration)},
			{"Report Size", format.Bytes(summary.ReportBytes)},
		}
	)

	return "\n" + f.colors.Header("▸ Summary") + "\n\n" + f.renderer.Render(headers, rows)
}
