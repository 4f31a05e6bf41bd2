package simulation

import (
	"github.com/rs/xid"
	"github.com/swarmlab/kilosim/datarecording"
	"github.com/swarmlab/kilosim/kilobot"
	"github.com/swarmlab/kilosim/monitoring"
	"github.com/swarmlab/kilosim/sim"
	"github.com/tebeka/atexit"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	outputFileName string
	freq           sim.Freq
}

// MakeBuilder creates a new builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		monitorOn: true,
		freq:      sim.FromPeriodMS(100),
	}
}

// WithoutMonitoring sets the simulation to not use monitoring.
func (b Builder) WithoutMonitoring() Builder {
	b.monitorOn = false
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

// WithFreq sets the control step frequency of the swarm.
func (b Builder) WithFreq(f sim.Freq) Builder {
	b.freq = f
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}
}

// Build builds the simulation. Teardown is also registered with atexit so
// that an exiting simulator leaves no stopped behavior process and no shared
// memory object behind.
func (b Builder) Build() *Simulation {
	b.parametersMustBeValid()

	// The monitor generates IDs from its request goroutines.
	sim.UseParallelIDGenerator()

	s := &Simulation{
		robotNameIndex: make(map[string]int),
	}

	s.id = xid.New().String()

	outputPath := b.outputFileName
	if outputPath == "" {
		outputPath = "kilosim_" + s.id
	}
	s.dataRecorder = datarecording.New(outputPath)
	s.dataRecorder.CreateTable(stateTableName, stateRow{})

	s.engine = sim.NewSerialEngine()

	s.swarm = &swarm{medium: kilobot.NewBroadcastMedium()}
	s.swarm.TickingComponent = sim.NewTickingComponent(
		"Swarm", s.engine, b.freq, s.swarm)

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor()
		if b.monitorPort > 0 {
			s.monitor.WithPortNumber(b.monitorPort)
		}
		s.monitor.RegisterEngine(s.engine)
		s.monitor.RegisterComponent(s.swarm)
		s.monitor.StartServer()
	}

	atexit.Register(s.Terminate)

	return s
}
