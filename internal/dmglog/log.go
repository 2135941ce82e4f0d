// Package dmglog provides the structured logger shared across dmgcore.
package dmglog

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a logrus.Logger configured with the text formatter and level
// used throughout dmgcore. Callers that need component-scoped fields should
// call WithField/WithFields on the result rather than constructing their own
// logger.
func New() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}

// Component returns a logger entry scoped to a named subsystem, e.g.
// Component(log, "bus") or Component(log, "cpu").
func Component(log *logrus.Logger, name string) *logrus.Entry {
	return log.WithField("component", name)
}
