package cmd

import (
	"github.com/sirupsen/logrus"
)

// newLogger creates a new logger with the appropriate log level. The verbose flag forces
// DebugLevel; otherwise the configured level is used, falling back to InfoLevel.
func newLogger(verbose bool, level string) *logrus.Logger {
	log := logrus.New()

	if verbose {
		log.SetLevel(logrus.DebugLevel)
		return log
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("Invalid LOG_LEVEL, defaulting to info")
		parsed = logrus.InfoLevel
	}

	log.SetLevel(parsed)

	return log
}
