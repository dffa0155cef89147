package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ethpandaops/snapcheck/internal/config"
	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing"
	"github.com/ethpandaops/snapcheck/internal/testing/check"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/metrics"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/ethpandaops/snapcheck/internal/testing/output"
	"github.com/ethpandaops/snapcheck/internal/testing/report"
	"github.com/ethpandaops/snapcheck/internal/testing/table"
	"github.com/ethpandaops/snapcheck/internal/trigger"
	"github.com/sirupsen/logrus"
)

var errChecksFailed = errors.New("one or more checks failed")

// harness wires the battery to a snapshot source, the report sink and terminal output.
type harness struct {
	log          logrus.FieldLogger
	source       snapshot.Source
	fixtures     fixture.Loader
	metrics      metrics.Collector
	orchestrator *testing.Orchestrator
	out          output.Formatter
}

func newHarness(log logrus.FieldLogger, cfg *config.AppConfig, w io.Writer) *harness {
	fixtures := fixture.NewLoader(log, cfg.FixturesDir)
	collector := metrics.NewCollector(log)
	renderer := table.NewRenderer(log)

	return &harness{
		log:      log.WithField("component", "harness"),
		source:   snapshot.NewFileSource(log, cfg.SnapshotPath),
		fixtures: fixtures,
		metrics:  collector,
		orchestrator: testing.NewOrchestrator(&testing.OrchestratorConfig{
			Logger:           log,
			Fixtures:         fixtures,
			Sink:             report.NewFileSink(log, cfg.ResultsDir),
			MetricsCollector: collector,
		}),
		out: output.NewFormatter(
			w,
			collector,
			table.NewFixtureFormatter(log, renderer),
			table.NewResultsFormatter(log, renderer),
			table.NewSummaryFormatter(log, renderer),
		),
	}
}

// runAll reads a fresh snapshot and runs the whole battery.
func (h *harness) runAll(ctx context.Context) ([]*outcome.Outcome, error) {
	acc, err := h.open()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	outcomes, err := h.orchestrator.RunAll(ctx, acc)
	if err != nil {
		return outcomes, err
	}

	h.out.PrintRun(len(outcomes), time.Since(start))

	return outcomes, nil
}

// runChecks reads one snapshot and runs the named checks, each writing its own report.
func (h *harness) runChecks(ctx context.Context, names []string) ([]*outcome.Outcome, error) {
	if _, err := check.Select(names); err != nil {
		return nil, err
	}

	acc, err := h.open()
	if err != nil {
		return nil, err
	}

	if err := h.metrics.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting metrics collector: %w", err)
	}

	defer func() {
		if err := h.metrics.Stop(); err != nil {
			h.log.WithError(err).Warn("failed to stop metrics collector")
		}
	}()

	outcomes := make([]*outcome.Outcome, 0, len(names))

	for _, name := range names {
		out, err := h.orchestrator.RunCheck(ctx, name, acc)
		if out != nil {
			outcomes = append(outcomes, out)
		}

		if err != nil {
			return outcomes, err
		}
	}

	return outcomes, nil
}

func (h *harness) open() (snapshot.Accessor, error) {
	acc, err := h.source.Open()
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}

	return acc, nil
}

// printResults prints the results and summary tables for the last run.
func (h *harness) printResults() {
	h.out.PrintSection("Results")
	h.out.PrintCheckResults()
	h.out.PrintSummary()
}

// fixtureInventory lists the battery with the fixture file behind each check.
func (h *harness) fixtureInventory() []table.FixtureInfo {
	checks := h.orchestrator.Checks()
	infos := make([]table.FixtureInfo, 0, len(checks))

	for i, c := range checks {
		info := table.FixtureInfo{
			Order: i + 1,
			Check: c.Name(),
			Path:  h.fixtures.Path(c.Name()),
		}

		if st, err := os.Stat(info.Path); err == nil {
			info.Present = true
			info.SizeBytes = st.Size()
		}

		infos = append(infos, info)
	}

	return infos
}

// commands registers the battery and every check in a trigger table. A command reports
// only harness faults; failed outcomes are already logged and written by the orchestrator.
func (h *harness) commands() (*trigger.Table, error) {
	tbl := trigger.NewTable()

	if err := tbl.Register(trigger.RunAllCommand, func(ctx context.Context) error {
		_, err := h.runAll(ctx)
		h.printResults()

		return err
	}); err != nil {
		return nil, err
	}

	for _, c := range h.orchestrator.Checks() {
		name := c.Name()

		if err := tbl.Register(name, func(ctx context.Context) error {
			_, err := h.runChecks(ctx, []string{name})
			h.printResults()

			return err
		}); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}
