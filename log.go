package edf

import "github.com/sirupsen/logrus"

// Logger is the package-level logger used for debug-level scanner
// tracing. It defaults to logrus's standard logger, silent unless the
// caller raises the level, so a caller can capture, filter, or
// silence scanner traces like any other structured log.
var Logger = logrus.StandardLogger()

func traceRecovery(kind ErrorKind, offset int, detail string) {
	Logger.WithFields(logrus.Fields{
		"component": "edf",
		"kind":      kind.String(),
		"offset":    offset,
	}).Debug("recovered parse error: " + detail)
}
