package notify

import (
	"token_verifier/internal/app/port"

	"go.uber.org/zap"
)

// LogNotifier implements port.Notifier by writing notifications to the log.
// It stands in for the toast layer of the browser UI; nothing in the core
// consumes a return value, so delivery is fire-and-forget.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier(logger *zap.Logger) port.Notifier {
	return &LogNotifier{logger: logger.Named("Notifier")}
}

// Notify implements port.Notifier.
func (n *LogNotifier) Notify(message string, kind port.NotifyKind) {
	if kind == port.NotifyError {
		n.logger.Warn(message, zap.String("kind", string(kind)))
		return
	}
	n.logger.Info(message, zap.String("kind", string(kind)))
}
