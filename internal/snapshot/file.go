package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var errEmptySnapshot = errors.New("snapshot file is empty")

// Source hands out a fresh Accessor each time it is opened.
type Source interface {
	Open() (Accessor, error)
}

type fileSource struct {
	path string
	log  logrus.FieldLogger
}

// NewFileSource returns a Source reading a captured host state dump (YAML or JSON).
// The file is re-read on every Open so a dump refreshed by the host is picked up.
func NewFileSource(log logrus.FieldLogger, path string) Source {
	return &fileSource{
		path: path,
		log:  log.WithField("component", "snapshot_source"),
	}
}

func (f *fileSource) Open() (Accessor, error) {
	f.log.WithField("path", f.path).Debug("reading host snapshot")

	state, err := LoadFile(f.path)
	if err != nil {
		return nil, err
	}

	return state, nil
}

// LoadFile reads and decodes a host state dump.
func LoadFile(path string) (*State, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: snapshot path comes from trusted config
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	state, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding snapshot %s: %w", path, err)
	}

	return state, nil
}

// Decode parses a host state dump. JSON dumps are accepted since they are valid YAML.
func Decode(data []byte) (*State, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errEmptySnapshot
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}

	return &state, nil
}
