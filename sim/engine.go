package sim

// TimeTeller reports the current virtual time.
type TimeTeller interface {
	CurrentTime() VTimeInSec
}

// EventScheduler registers events to happen at a future virtual time.
type EventScheduler interface {
	Schedule(e Event)
}

// A SimulationEndHandler runs once after the last event of a run has been
// processed.
type SimulationEndHandler interface {
	Handle(now VTimeInSec)
}

// An Engine drives a swarm through virtual time by processing scheduled
// events in time order.
type Engine interface {
	Hookable
	TimeTeller
	EventScheduler

	// Run processes events until none are left. The first handler error
	// aborts the run and is returned; a robot whose behavior process fails
	// surfaces here.
	Run() error

	// Pause holds event processing until Continue is called. The monitor
	// uses the pair to freeze a run for inspection.
	Pause()

	// Continue resumes a paused run.
	Continue()

	// RegisterSimulationEndHandler adds a handler to be invoked by
	// Finished.
	RegisterSimulationEndHandler(handler SimulationEndHandler)

	// Finished invokes all registered SimulationEndHandlers. Call it after
	// Run returns without error.
	Finished()
}
