// Package report persists check outcomes as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethpandaops/snapcheck/internal/config"
	"github.com/ethpandaops/snapcheck/internal/testing/outcome"
	"github.com/sirupsen/logrus"
)

// Sink writes outcomes somewhere durable. Both methods return the number of bytes written.
type Sink interface {
	// WriteCheck writes a single outcome to {dir}/{name}.json.
	WriteCheck(o *outcome.Outcome) (int64, error)
	// WriteBattery writes every outcome as one array to {dir}/all_tests.json.
	WriteBattery(outcomes []*outcome.Outcome) (int64, error)
}

type fileSink struct {
	dir string
	log logrus.FieldLogger
}

// NewFileSink creates a sink writing under dir, which is created on first write.
func NewFileSink(log logrus.FieldLogger, dir string) Sink {
	return &fileSink{
		dir: dir,
		log: log.WithField("component", "report_sink"),
	}
}

func (s *fileSink) WriteCheck(o *outcome.Outcome) (int64, error) {
	return s.write(o.Name, o)
}

func (s *fileSink) WriteBattery(outcomes []*outcome.Outcome) (int64, error) {
	if outcomes == nil {
		outcomes = []*outcome.Outcome{}
	}

	return s.write(config.BatteryReportName, outcomes)
}

func (s *fileSink) write(name string, v any) (int64, error) {
	data, err := Encode(v)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(s.dir, config.ResultsDirPerm); err != nil {
		return 0, fmt.Errorf("creating results directory %s: %w", s.dir, err)
	}

	path := Path(s.dir, name)
	if err := os.WriteFile(path, data, config.ReportFilePerm); err != nil {
		return 0, fmt.Errorf("writing report %s: %w", path, err)
	}

	s.log.WithFields(logrus.Fields{
		"path":  path,
		"bytes": len(data),
	}).Debug("report written")

	return int64(len(data)), nil
}

// Path returns the report file for name under dir.
func Path(dir, name string) string {
	return filepath.Join(dir, name+config.ReportExt)
}

// Encode renders outcomes as indented JSON with a trailing newline.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding report: %w", err)
	}

	return append(data, '\n'), nil
}

// Decode reads a battery report back.
func Decode(data []byte) ([]*outcome.Outcome, error) {
	var outcomes []*outcome.Outcome
	if err := json.Unmarshal(data, &outcomes); err != nil {
		return nil, fmt.Errorf("decoding report: %w", err)
	}

	return outcomes, nil
}
