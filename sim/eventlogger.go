package sim

import (
	"github.com/sirupsen/logrus"
)

// EventLogger is a hook that logs every event resolution.
type EventLogger struct {
	logger *logrus.Logger
}

// NewEventLogger returns a hook that writes one line per resolved event to
// the given logger. Attach it to an EventQueue with AcceptHook.
func NewEventLogger(logger *logrus.Logger) *EventLogger {
	return &EventLogger{logger: logger}
}

// Func writes the event information into the logger.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosAfterEvent {
		return
	}

	result, ok := ctx.Detail.(Result)
	if !ok {
		return
	}

	h.logger.WithFields(logrus.Fields{
		"time":       result.Event.Time(),
		"event_type": result.EventType,
		"successful": result.Successful,
	}).Debug("event resolved")
}
