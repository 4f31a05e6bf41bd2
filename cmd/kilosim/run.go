package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"

	"github.com/spf13/cobra"
	"github.com/swarmlab/kilosim/kilobot"
	"github.com/swarmlab/kilosim/monitoring"
	"github.com/swarmlab/kilosim/sim"
	"github.com/swarmlab/kilosim/simulation"
	"github.com/tebeka/atexit"
)

var runFlags struct {
	behavior    string
	numRobots   int
	numTicks    uint64
	tickMS      uint32
	seed        int64
	monitorPort int
	noMonitor   bool
	openBrowser bool
	logEvents   bool
	output      string
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a swarm simulation",
	RunE:  runSimulation,
}

func init() {
	runCmd.Flags().StringVarP(&runFlags.behavior, "behavior", "b",
		os.Getenv("KILOSIM_BEHAVIOR"),
		"path of the behavior executable (required)")
	runCmd.Flags().IntVarP(&runFlags.numRobots, "robots", "n", 1,
		"number of robots to simulate")
	runCmd.Flags().Uint64VarP(&runFlags.numTicks, "ticks", "t", 100,
		"number of control steps to run per robot")
	runCmd.Flags().Uint32Var(&runFlags.tickMS, "tick-ms", 100,
		"control step duration in milliseconds")
	runCmd.Flags().Int64Var(&runFlags.seed, "seed", 0,
		"random seed of the run (0 picks one)")
	runCmd.Flags().IntVar(&runFlags.monitorPort, "monitor-port", 0,
		"port of the monitoring server (0 picks one)")
	runCmd.Flags().BoolVar(&runFlags.noMonitor, "no-monitor", false,
		"disable the monitoring server")
	runCmd.Flags().BoolVar(&runFlags.openBrowser, "open-browser", false,
		"open the monitoring page in the browser")
	runCmd.Flags().BoolVar(&runFlags.logEvents, "log-events", false,
		"log every engine event to stderr")
	runCmd.Flags().StringVarP(&runFlags.output, "output", "o", "",
		"name of the recording database file")

	rootCmd.AddCommand(runCmd)
}

func runSimulation(_ *cobra.Command, _ []string) error {
	if runFlags.behavior == "" {
		return fmt.Errorf("no behavior executable given, " +
			"use --behavior or KILOSIM_BEHAVIOR")
	}

	seed := runFlags.seed
	if seed == 0 {
		seed = int64(os.Getpid())
	}
	rng := rand.New(rand.NewSource(seed))

	builder := simulation.MakeBuilder().
		WithFreq(sim.FromPeriodMS(runFlags.tickMS)).
		WithOutputFileName(runFlags.output)
	if runFlags.noMonitor {
		builder = builder.WithoutMonitoring()
	} else if runFlags.monitorPort > 0 {
		builder = builder.WithMonitorPort(runFlags.monitorPort)
	}

	s := builder.Build()
	defer s.Terminate()

	if runFlags.logEvents {
		s.GetEngine().AcceptHook(
			sim.NewEventLogger(log.New(os.Stderr, "", 0)))
	}

	var progress *monitoring.ProgressBar
	if s.GetMonitor() != nil {
		progress = s.GetMonitor().CreateProgressBar(
			"Control steps", runFlags.numTicks*uint64(runFlags.numRobots))
	}

	if err := populateSwarm(s, rng, progress); err != nil {
		return err
	}

	if runFlags.openBrowser && s.GetMonitor() != nil {
		s.GetMonitor().OpenInBrowser()
	}

	if err := s.Run(); err != nil {
		return err
	}

	if progress != nil {
		s.GetMonitor().CompleteProgressBar(progress)
	}

	for _, r := range s.Robots() {
		fmt.Printf("robot %s: behavior pid %d, %d ticks completed\n",
			r.RobotID(), r.BehaviorPID(), runFlags.numTicks)
	}

	atexit.Exit(0)
	return nil
}

func populateSwarm(
	s *simulation.Simulation,
	rng *rand.Rand,
	progress *monitoring.ProgressBar,
) error {
	for i := 0; i < runFlags.numRobots; i++ {
		robotID := fmt.Sprintf("kb%d", i)

		// Robots start on a circle around the light source.
		angle := 2 * math.Pi * float64(i) / float64(runFlags.numRobots)
		pose := &robotPose{
			x:     0.5 * math.Cos(angle),
			y:     0.5 * math.Sin(angle),
			theta: angle,
			dt:    float64(runFlags.tickMS) / 1000.0,
		}

		radio := s.GetMedium().AttachRobot(robotID, pose.position())

		c, err := kilobot.MakeControllerBuilder().
			WithBehavior(runFlags.behavior).
			WithFreq(sim.FromPeriodMS(runFlags.tickMS)).
			WithSeed(rng.Uint32()).
			WithTickLimit(runFlags.numTicks).
			WithLightSensor(&pointLight{pose: pose}).
			WithMessageSensor(radio).
			WithMessageActuator(radio).
			WithSteering(pose).
			WithLED(&loggedLED{robotID: robotID}).
			Build(robotID)
		if err != nil {
			return err
		}

		c.AcceptHook(&poseUpdater{pose: pose, radio: radio})
		if progress != nil {
			c.AcceptHook(&tickProgress{bar: progress})
		}

		s.AddRobot(c)
	}

	return nil
}
