package sim

import (
	"log"
	"reflect"
)

// An EventLogger is an engine hook that writes one line per event before the
// event is handled. Attach it to an engine to trace what the swarm is doing
// tick by tick.
type EventLogger struct {
	*log.Logger
}

// NewEventLogger creates an EventLogger that writes into the given logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	return &EventLogger{Logger: logger}
}

// Func writes the event time and type, plus the handling component's name
// when the handler is a component.
func (h *EventLogger) Func(ctx HookCtx) {
	if ctx.Pos != HookPosBeforeEvent {
		return
	}

	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	if comp, ok := evt.Handler().(Component); ok {
		h.Printf("%.10f, %s -> %s",
			evt.Time(), reflect.TypeOf(evt), comp.Name())
		return
	}

	h.Printf("%.10f, %s", evt.Time(), reflect.TypeOf(evt))
}
