// Package notification implements the notifier port. The back office has no
// push channel of its own, so notifications land in the structured log where
// the operator console tails them.
package notification

import (
	"go.uber.org/zap"

	"github.com/orderdesk/po-backoffice/internal/application/port"
)

// LogNotifier writes notifications to the structured log
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("notify")}
}

// Notify records a user-facing notification. Fire-and-forget: it never fails.
func (n *LogNotifier) Notify(title, message string, severity port.Severity) {
	fields := []zap.Field{
		zap.String("title", title),
		zap.String("severity", string(severity)),
	}

	switch severity {
	case port.SeverityError:
		n.logger.Error(message, fields...)
	case port.SeverityWarning:
		n.logger.Warn(message, fields...)
	default:
		n.logger.Info(message, fields...)
	}
}
