// Package testing runs the check battery against a snapshot and persists the outcomes.
package testing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethpandaops/snapcheck/internal/snapshot"
	"github.com/ethpandaops/snapcheck/internal/testing/check"
	"github.com/ethpandaops/snapcheck/internal/testing/fixture"
	"github.com/ethpandaops/snapcheck/internal/testing/metrics"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/ethpandaops/snapcheck/internal/testing/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errNoSnapshot = errors.New("snapshot accessor is required")

// OrchestratorConfig contains configuration for battery orchestration.
type OrchestratorConfig struct {
	Logger           logrus.FieldLogger
	Fixtures         fixture.Loader
	Sink             report.Sink
	MetricsCollector metrics.Collector
	// Checks defaults to check.Battery().
	Checks []check.Check
}

// Orchestrator runs checks in a fixed order.
// Checks never share state; the only fallible step is writing the report.
type Orchestrator struct {
	log      logrus.FieldLogger
	fixtures fixture.Loader
	sink     report.Sink
	metrics  metrics.Collector
	checks   []check.Check
}

// NewOrchestrator creates a new battery orchestrator.
func NewOrchestrator(cfg *OrchestratorConfig) *Orchestrator {
	checks := cfg.Checks
	if len(checks) == 0 {
		checks = check.Battery()
	}

	return &Orchestrator{
		log:      cfg.Logger.WithField("component", "battery_orchestrator"),
		fixtures: cfg.Fixtures,
		sink:     cfg.Sink,
		metrics:  cfg.MetricsCollector,
		checks:   checks,
	}
}

// Checks returns the checks in run order.
func (o *Orchestrator) Checks() []check.Check {
	return o.checks
}

// RunAll runs every check, logs each outcome and writes the battery report once at the end.
// The outcomes are returned even when writing the report fails.
func (o *Orchestrator) RunAll(ctx context.Context, acc snapshot.Accessor) ([]*outcome.Outcome, error) {
	if acc == nil {
		return nil, errNoSnapshot
	}

	log := o.log.WithField("run_id", uuid.NewString())

	if err := o.metrics.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting metrics collector: %w", err)
	}

	log.WithField("checks", len(o.checks)).Info("battery start")

	outcomes := make([]*outcome.Outcome, 0, len(o.checks))
	for _, c := range o.checks {
		outcomes = append(outcomes, o.run(log, c, acc))
	}

	if err := o.metrics.Stop(); err != nil {
		log.WithError(err).Warn("failed to stop metrics collector")
	}

	for _, out := range outcomes {
		log.Infof("%s: %s", out.Name, out.Report())
	}

	n, err := o.sink.WriteBattery(outcomes)
	if err != nil {
		return outcomes, fmt.Errorf("writing battery report: %w", err)
	}

	o.metrics.RecordReport(n)

	log.Info("battery end")

	return outcomes, nil
}

// RunCheck runs one named check with debug logging and writes its own report.
func (o *Orchestrator) RunCheck(_ context.Context, name string, acc snapshot.Accessor) (*outcome.Outcome, error) {
	if acc == nil {
		return nil, errNoSnapshot
	}

	c, err := o.lookup(name)
	if err != nil {
		return nil, err
	}

	log := o.log.WithFields(logrus.Fields{
		"run_id": uuid.NewString(),
		"check":  name,
	})

	log.Infof("[%s] start", name)

	out := o.run(log, c, acc)

	log.Infof("[%s] end, %s", name, out.Report())

	n, err := o.sink.WriteCheck(out)
	if err != nil {
		return out, fmt.Errorf("writing report for %s: %w", name, err)
	}

	o.metrics.RecordReport(n)

	return out, nil
}

func (o *Orchestrator) lookup(name string) (check.Check, error) {
	for _, c := range o.checks {
		if c.Name() == name {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", check.ErrUnknownCheck, name)
}

func (o *Orchestrator) run(log logrus.FieldLogger, c check.Check, acc snapshot.Accessor) *outcome.Outcome {
	start := time.Now()

	out := c.Run(check.Env{
		Fixtures: o.fixtures,
		Snapshot: acc,
		Log:      log,
	})

	duration := time.Since(start)

	o.metrics.RecordCheck(&metrics.CheckMetric{
		Check:          out.Name,
		Passed:         out.Passed,
		Duration:       duration,
		FailureReasons: out.FailureReasons,
		Timestamp:      start,
	})

	log.WithFields(logrus.Fields{
		"check":    out.Name,
		"passed":   out.Passed,
		"reasons":  len(out.FailureReasons),
		"duration": duration,
	}).Debug("check complete")

	return out
}

// Failed reports whether any outcome failed.
func Failed(outcomes []*outcome.Outcome) bool {
	for _, out := range outcomes {
		if !out.Passed {
			return true
		}
	}

	return false
}
