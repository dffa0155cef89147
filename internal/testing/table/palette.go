package table

import (
	"fmt"
	"strings"

	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/fatih/color"
)

// fatalKinds end a check before any field is compared.
var fatalKinds = []outcome.Kind{
	outcome.KindFixtureNotFound,
	outcome.KindFixtureParse,
	outcome.KindStructural,
	outcome.KindInternal,
}

// Palette colors outcome text. It is a no-op when color output is disabled.
type Palette struct {
	enabled bool
}

// NewPalette snapshots color.NoColor, so create it after the terminal is known.
func NewPalette() *Palette {
	return &Palette{enabled: !color.NoColor}
}

func (p *Palette) paint(text string, attrs ...color.Attribute) string {
	if !p.enabled {
		return text
	}

	return color.New(attrs...).Sprint(text)
}

// Pass paints text green.
func (p *Palette) Pass(text string) string {
	return p.paint(text, color.FgGreen)
}

// Fail paints text red.
func (p *Palette) Fail(text string) string {
	return p.paint(text, color.FgRed)
}

// Warn paints text yellow.
func (p *Palette) Warn(text string) string {
	return p.paint(text, color.FgYellow)
}

// Muted paints text gray.
func (p *Palette) Muted(text string) string {
	return p.paint(text, color.FgHiBlack)
}

func (p *Palette) Bold(text string) string {
	return p.paint(text, color.Bold)
}

// Header paints section titles.
func (p *Palette) Header(text string) string {
	return p.paint(text, color.FgCyan, color.Bold)
}

// Status renders an outcome's pass flag.
func (p *Palette) Status(passed bool) string {
	if passed {
		return p.Pass("✓ PASS")
	}

	return p.Fail("✗ FAIL")
}

// Reasons renders a failure reason count, green only when zero.
func (p *Palette) Reasons(count int) string {
	text := fmt.Sprintf("%d", count)
	if count == 0 {
		return p.Pass(text)
	}

	return p.Fail(text)
}

// PassRate renders a percentage: green at 100, yellow from 90, red below.
func (p *Palette) PassRate(value float64) string {
	text := fmt.Sprintf("%.1f%%", value)

	switch {
	case value == 100.0:
		return p.Pass(text)
	case value >= 90.0:
		return p.Warn(text)
	default:
		return p.Fail(text)
	}
}

// Reason highlights a failure reason by class. Check-fatal reasons are bold red, missing
// capabilities and ambiguous lookups yellow, and value mismatches are left plain.
func (p *Palette) Reason(reason string) string {
	for _, kind := range fatalKinds {
		if strings.HasPrefix(reason, string(kind)+":") {
			return p.paint(reason, color.FgRed, color.Bold)
		}
	}

	if strings.Contains(reason, "capability absent") || strings.HasPrefix(reason, "lookup cardinality") {
		return p.Warn(reason)
	}

	return reason
}
