package internal

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger creates the process-wide logger. Verbose enables debug-level
// output.
func NewLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}
