// Package tracelog provides the interpreter's single shared structured
// logger. It is off (warn-level) by default and raised to debug by the
// CLI's -trace flag (§4.11), following dolthub-go-mysql-server's
// logrus.Fields-based logging convention in auth/audit.go.
package tracelog

import "github.com/sirupsen/logrus"

var logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}

// SetDebug raises the shared logger to debug level when enabled is
// true, and back to warn level otherwise.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.WarnLevel)
	}
}

// With returns a logger entry tagged with component, ready for
// structured fields via WithField/WithFields.
func With(component string) *logrus.Entry {
	return logger.WithField("component", component)
}
