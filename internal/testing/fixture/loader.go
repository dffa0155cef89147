// Package fixture loads the JSON expectation documents that drive each check.
//
// A fixture lives at {fixture_root}/{check_name}.json. Every field is optional: a key
// missing from the document is left unset and never asserted.
package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ethpandaops/snapcheck/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	// ErrFixtureNotFound is returned when the fixture file does not exist.
	ErrFixtureNotFound = errors.New("fixture not found")
	// ErrFixtureParse is returned when the fixture is not valid JSON for its schema.
	ErrFixtureParse = errors.New("fixture parse error")

	errCheckNameRequired = errors.New("check name is required")
	errNullDocument      = errors.New("fixture document is null")
)

// Loader reads fixture documents by check name.
type Loader interface {
	// Load decodes the fixture for checkName into target, which must be a pointer.
	Load(checkName string, target any) error
	// Path returns the file a check's fixture is read from.
	Path(checkName string) string
}

type loader struct {
	baseDir string
	log     logrus.FieldLogger
}

// NewLoader creates a fixture loader rooted at baseDir.
func NewLoader(log logrus.FieldLogger, baseDir string) Loader {
	return &loader{
		baseDir: baseDir,
		log:     log.WithField("component", "fixture_loader"),
	}
}

func (l *loader) Path(checkName string) string {
	return filepath.Join(l.baseDir, checkName+config.FixtureExt)
}

func (l *loader) Load(checkName string, target any) error {
	if checkName == "" {
		return errCheckNameRequired
	}

	path := l.Path(checkName)

	l.log.WithFields(logrus.Fields{
		"check": checkName,
		"path":  path,
	}).Debug("loading fixture")

	data, err := os.ReadFile(path) //nolint:gosec // path is built from a registered check name
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrFixtureNotFound, path)
		}

		return fmt.Errorf("reading fixture %s: %w", path, err)
	}

	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return fmt.Errorf("%w: %s: %w", ErrFixtureParse, path, errNullDocument)
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrFixtureParse, path, err) //nolint:errorlint // parse cause is rendered, the sentinel is the class
	}

	return nil
}
