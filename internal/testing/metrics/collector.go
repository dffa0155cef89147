// Package metrics provides check execution metrics collection and aggregation.
package metrics

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// CheckMetric captures metrics about one check execution.
type CheckMetric struct {
	Check          string
	Passed         bool
	Duration       time.Duration
	FailureReasons []string
	Timestamp      time.Time
}

// SummaryMetric provides aggregate statistics across a run.
type SummaryMetric struct {
	TotalDuration time.Duration
	TotalChecks   int
	PassedChecks  int
	FailedChecks  int
	TotalReasons  int
	ReportBytes   int64
}

// Collector interface for metrics collection
type Collector interface {
	Start(ctx context.Context) error
	Stop() error
	RecordCheck(metric *CheckMetric)
	RecordReport(sizeBytes int64)
	GetCheckMetrics() []CheckMetric
	GetSummary() SummaryMetric
}

type collector struct {
	log          logrus.FieldLogger
	mu           sync.RWMutex
	checkMetrics []CheckMetric
	reportBytes  int64
	startTime    time.Time
	stopTime     time.Time
}

// NewCollector creates a new metrics collector
func NewCollector(log logrus.FieldLogger) Collector {
	return &collector{
		log:          log.WithField("component", "metrics_collector"),
		checkMetrics: make([]CheckMetric, 0, 16),
	}
}

// Start resets the collector for a new run.
func (c *collector) Start(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.startTime = time.Now()
	c.stopTime = time.Time{}
	c.checkMetrics = c.checkMetrics[:0]
	c.reportBytes = 0

	c.log.Debug("metrics collector started")

	return nil
}

// Stop freezes the run duration reported by GetSummary.
func (c *collector) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTime = time.Now()

	c.log.WithField("duration", c.stopTime.Sub(c.startTime)).Debug("metrics collector stopped")

	return nil
}

func (c *collector) RecordCheck(metric *CheckMetric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m := *metric
	m.FailureReasons = append([]string(nil), metric.FailureReasons...)
	c.checkMetrics = append(c.checkMetrics, m)
}

func (c *collector) RecordReport(sizeBytes int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.reportBytes += sizeBytes
}

func (c *collector) GetCheckMetrics() []CheckMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]CheckMetric, len(c.checkMetrics))
	copy(result, c.checkMetrics)

	return result
}

func (c *collector) GetSummary() SummaryMetric {
	c.mu.RLock()
	defer c.mu.RUnlock()

	summary := SummaryMetric{
		TotalChecks: len(c.checkMetrics),
		ReportBytes: c.reportBytes,
	}

	switch {
	case c.startTime.IsZero():
	case c.stopTime.IsZero():
		summary.TotalDuration = time.Since(c.startTime)
	default:
		summary.TotalDuration = c.stopTime.Sub(c.startTime)
	}

	for _, cm := range c.checkMetrics {
		if cm.Passed {
			summary.PassedChecks++
		} else {
			summary.FailedChecks++
		}

		summary.TotalReasons += len(cm.FailureReasons)
	}

	return summary
}

// Compile-time interface compliance check
var _ Collector = (*collector)(nil)
