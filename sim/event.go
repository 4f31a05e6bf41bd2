package sim

// VTimeInSec is time in the simulated world, in seconds.
type VTimeInSec float64

// An Event is something that happens at a point in virtual time.
type Event interface {
	// Time returns when the event happens.
	Time() VTimeInSec

	// Handler returns the handler that processes the event.
	Handler() Handler

	// IsSecondary marks events that are handled only after all same-time
	// primary events.
	IsSecondary() bool
}

// EventBase carries the fields common to all events.
type EventBase struct {
	ID        string
	time      VTimeInSec
	handler   Handler
	secondary bool
}

// Time returns when the event happens.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns the handler that processes the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary returns true if the event is a secondary event.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// A Handler processes events. An event is always handled by the handler that
// scheduled it; the only exception is the kick start of a run, where the
// starter schedules for other components.
type Handler interface {
	Handle(e Event) error
}
