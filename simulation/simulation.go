// Package simulation assembles the services a kilosim run needs: the event
// engine, the data recorder, the monitor, and the robots themselves.
package simulation

import (
	"fmt"

	"github.com/swarmlab/kilosim/datarecording"
	"github.com/swarmlab/kilosim/kilobot"
	"github.com/swarmlab/kilosim/monitoring"
	"github.com/swarmlab/kilosim/sim"
)

// A Simulation provides the services required to run a swarm of robots whose
// behaviors run as external processes.
type Simulation struct {
	id     string
	engine sim.Engine

	dataRecorder datarecording.DataRecorder
	monitor      *monitoring.Monitor

	swarm          *swarm
	robotNameIndex map[string]int
}

// ID returns the unique identity of this simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil when
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// GetMedium returns the broadcast medium connecting the robots.
func (s *Simulation) GetMedium() *kilobot.BroadcastMedium {
	return s.swarm.medium
}

// AddRobot registers a robot controller with the simulation. Registration
// hooks the controller up for state recording.
func (s *Simulation) AddRobot(c *kilobot.Controller) {
	robotID := c.RobotID()
	if _, exists := s.robotNameIndex[robotID]; exists {
		panic("robot " + robotID + " already registered")
	}

	s.swarm.robots = append(s.swarm.robots, c)
	s.robotNameIndex[robotID] = len(s.swarm.robots) - 1

	c.AcceptHook(&stateRecorder{
		recorder: s.dataRecorder,
		robotID:  robotID,
	})
}

// GetRobotByID returns the controller of the robot with the given identity.
func (s *Simulation) GetRobotByID(robotID string) *kilobot.Controller {
	index, exists := s.robotNameIndex[robotID]
	if !exists {
		return nil
	}
	return s.swarm.robots[index]
}

// Robots returns all registered robot controllers.
func (s *Simulation) Robots() []*kilobot.Controller {
	return s.swarm.robots
}

// Start schedules the first tick of the swarm. Call Run on the engine
// afterwards.
func (s *Simulation) Start() {
	s.swarm.TickNow()
}

// Run starts the swarm and processes events until all robots have finished
// their tick budget or one of them fails.
func (s *Simulation) Run() error {
	s.Start()

	if err := s.engine.Run(); err != nil {
		return err
	}
	s.engine.Finished()

	for _, r := range s.swarm.robots {
		if err := r.Err(); err != nil {
			return fmt.Errorf("simulation %s: %w", s.id, err)
		}
	}

	return nil
}

// Terminate tears the simulation down: every robot's behavior process is
// terminated and its shared memory object removed, then the recorder is
// flushed and closed. Terminate is idempotent.
func (s *Simulation) Terminate() {
	for _, r := range s.swarm.robots {
		r.Destroy()
	}

	if s.dataRecorder != nil {
		s.dataRecorder.Close()
		s.dataRecorder = nil
	}
}

// swarm ticks the robots of a simulation in lockstep: message delivery
// first, then every robot's control step.
type swarm struct {
	*sim.TickingComponent

	medium *kilobot.BroadcastMedium
	robots []*kilobot.Controller
}

func (s *swarm) Tick() bool {
	s.medium.Deliver()

	madeProgress := false
	for _, r := range s.robots {
		madeProgress = r.Tick() || madeProgress
	}

	return madeProgress
}
