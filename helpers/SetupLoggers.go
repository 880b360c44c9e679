package helpers

import (
	"os"

	l "RelAlgDb/internal/logger"
)

// SetupLoggers registers the named loggers at level. They write to dated
// files under logDir, or to stderr when logDir is empty.
func SetupLoggers(logDir string, level string, names ...string) error {
	logLevel, err := l.ParseLevel(level)
	if err != nil {
		return err
	}

	for _, name := range names {
		if logDir == "" {
			l.NewWithWriter(name, os.Stderr, logLevel)
			continue
		}
		if _, err := l.New(name, logDir, logLevel); err != nil {
			return err
		}
	}
	return nil
}
