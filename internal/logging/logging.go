// Package logging provides the shared logrus logger. The audit core is
// pure and log-free; only the CLI and export layers log.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func init() {
	logger = logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)
}

// Get returns the shared logger.
func Get() *logrus.Logger {
	return logger
}

// SetVerbose lowers the level to Info for --verbose runs.
func SetVerbose() {
	logger.SetLevel(logrus.InfoLevel)
}
