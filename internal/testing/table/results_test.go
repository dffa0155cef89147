package table

import (
	"strings"
	"testing"
	"time"

	"github.com/ethpandaops/snapcheck/internal/testing/metrics"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestResultsFormatter_Format(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	log := logrus.New()
	f := NewResultsFormatter(log, NewRenderer(log))

	assert.Equal(t, "No checks executed", f.Format(nil))

	out := f.Format([]metrics.CheckMetric{
		{Check: "game_window", Passed: true, Duration: 2 * time.Millisecond},
		{Check: "stash", Duration: time.Millisecond, FailureReasons: []string{
			"StructuralPrecondition: stash panel is not visible",
		}},
	})

	assert.Contains(t, out, "▸ Check Results")
	assert.Contains(t, out, "game_window")
	assert.Contains(t, out, "✓ PASS")
	assert.Contains(t, out, "✗ FAIL")
	assert.Contains(t, out, "▸ Failed Check Details")
	assert.Contains(t, out, "  ✗ StructuralPrecondition: stash panel is not visible")
	assert.Equal(t, 1, strings.Count(out, "stash (1ms)"))
}

func TestSummaryFormatter_Format(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	log := logrus.New()
	f := NewSummaryFormatter(log, NewRenderer(log))

	out := f.Format(metrics.SummaryMetric{
		TotalChecks:  4,
		PassedChecks: 3,
		FailedChecks: 1,
		TotalReasons: 2,
		ReportBytes:  2048,
	})

	assert.Contains(t, out, "3 (75.0%)")
	assert.Contains(t, out, "1 (25.0%)")
	assert.Contains(t, out, "2.0 KB")
}

func TestFixtureFormatter_Format(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	log := logrus.New()
	f := NewFixtureFormatter(log, NewRenderer(log))

	out := f.Format([]FixtureInfo{
		{Order: 1, Check: "game_window", Path: "fixtures/game_window.json", Present: true, SizeBytes: 40},
		{Order: 2, Check: "game_states", Path: "fixtures/game_states.json"},
	})

	assert.Contains(t, out, "fixtures/game_window.json")
	assert.Contains(t, out, "40 B")
	assert.Contains(t, out, "missing")
	assert.Contains(t, out, "1 of 2 fixtures present")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
}
