// Package table provides table formatting for check results and metrics.
package table

import (
	"fmt"

	"github.com/ethpandaops/snapcheck/internal/testing/format"
	"github.com/olekukonko/tablewriter"
	"github.com/sirupsen/logrus"
)

// FixtureInfo describes the fixture backing one check.
type FixtureInfo struct {
	Order     int
	Check     string
	Path      string
	Present   bool
	SizeBytes int64
}

// FixtureFormatter formats the battery's fixture inventory as a table
type FixtureFormatter interface {
	Format(fixtures []FixtureInfo) string
}

type fixtureFormatter struct {
	log      logrus.FieldLogger
	renderer Renderer
	colors   *Palette
}

// NewFixtureFormatter creates a new fixture table formatter
func NewFixtureFormatter(log logrus.FieldLogger, renderer Renderer) FixtureFormatter {
	return &fixtureFormatter{
		log:      log.WithField("component", "table.fixture_formatter"),
		renderer: renderer,
		colors:   NewPalette(),
	}
}

func (f *fixtureFormatter) Format(fixtures []FixtureInfo) string {
	if len(fixtures) == 0 {
		return "No checks registered"
	}

	headers := []string{"#", "Check", "Fixture", "Size"}
	rows := make([][]string, 0, len(fixtures))
	present := 0

	for _, fx := range fixtures {
		size := f.colors.Fail("missing")
		if fx.Present {
			size = format.Bytes(fx.SizeBytes)
			present++
		}

		rows = append(rows, []string{
			format.Int(fx.Order),
			fx.Check,
			fx.Path,
			size,
		})
	}

	return "\n" + f.colors.Header("▸ Battery") + "\n\n" + f.renderer.Render(headers, rows,
		WithColumnAlignment(tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT),
		WithCaption(fmt.Sprintf("%d of %d fixtures present", present, len(fixtures))),
	)
}

// Compile-time interface compliance check
var _ FixtureFormatter = (*fixtureFormatter)(nil)
