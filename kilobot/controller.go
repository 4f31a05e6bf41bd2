package kilobot

import (
	"fmt"
	"os"

	"github.com/swarmlab/kilosim/sim"
)

// stateRegion is the slice of the Region API the controller needs. Tests
// substitute an in-memory implementation.
type stateRegion interface {
	Bytes() []byte
	Zero()
	Destroy()
}

// behaviorHandle is the slice of the BehaviorProcess API the controller
// needs.
type behaviorHandle interface {
	PID() int
	Resume() error
	WaitStopped() error
	Terminate()
}

// HookPosControlStepDone is invoked on the controller after every completed
// control step. The hook item is a TickSnapshot.
var HookPosControlStepDone = &sim.HookPos{Name: "ControlStepDone"}

// A TickSnapshot is the observable outcome of one control step.
type TickSnapshot struct {
	TickIndex uint64
	State     RobotState
}

// A Controller is the simulator-side proxy for one robot whose control logic
// runs in an external behavior process. It owns exactly one shared state
// region and one behavior process; neither outlives the controller.
//
// A Controller is a sim.Ticker; hosts drive it either directly through
// ControlStep or by wrapping it in a ticking component.
type Controller struct {
	*sim.ComponentBase

	robotID string
	freq    sim.Freq

	region stateRegion
	proc   behaviorHandle

	light  LightSensor
	comm   MessageSensor
	commA  MessageActuator
	motors DifferentialSteering
	led    LED

	tickLimit uint64
	ticksRun  uint64
	err       error
}

// RobotID returns the identity of the robot this controller drives.
func (c *Controller) RobotID() string {
	return c.robotID
}

// Freq returns the control step frequency of the robot.
func (c *Controller) Freq() sim.Freq {
	return c.freq
}

// BehaviorPID returns the process identity of the behavior process.
func (c *Controller) BehaviorPID() int {
	return c.proc.PID()
}

// Err returns the first fault that occurred during a control step, if any.
func (c *Controller) Err() error {
	return c.err
}

// Tick runs one control step. It stops the controller from ticking further
// once the tick limit is reached or a control step fails.
func (c *Controller) Tick() bool {
	if c.err != nil {
		return false
	}

	if c.tickLimit > 0 && c.ticksRun >= c.tickLimit {
		return false
	}

	c.err = c.ControlStep()
	if c.err != nil {
		return false
	}

	c.ticksRun++

	if c.NumHooks() > 0 {
		snapshot := TickSnapshot{TickIndex: c.ticksRun}
		snapshot.State.Decode(c.region.Bytes())
		c.InvokeHook(sim.HookCtx{
			Domain: c,
			Pos:    HookPosControlStepDone,
			Item:   snapshot,
		})
	}

	return true
}

// ControlStep executes one full handshake with the behavior process:
// write inputs, resume, wait for the pause, read outputs, drive actuators.
// The two processes never touch the region concurrently; the alternation of
// resume and pause serializes them without locks.
func (c *Controller) ControlStep() error {
	b := c.region.Bytes()

	c.writeInputs(b)

	if err := c.proc.Resume(); err != nil {
		return fmt.Errorf("robot %s: %w", c.robotID, err)
	}

	if err := c.proc.WaitStopped(); err != nil {
		return fmt.Errorf("robot %s: %w", c.robotID, err)
	}

	c.applyOutputs(b)

	return nil
}

func (c *Controller) writeInputs(b []byte) {
	if c.light != nil {
		WriteAmbientLight(b, c.light.Reading())
	}

	if c.comm == nil {
		return
	}

	packets := c.comm.Packets()
	if len(packets) > 0 {
		n := len(packets)
		if n > MaxRx {
			n = MaxRx
		}
		for i := 0; i < n; i++ {
			WriteRxSlot(b, i, packets[i].Message, packets[i].Distance)
		}
		WriteRxCount(b, uint8(n))
	}

	if c.comm.MessageSent() {
		WriteTxState(b, TxSent)
	}
}

func (c *Controller) applyOutputs(b []byte) {
	if c.motors != nil {
		left, right := ReadMotors(b)
		c.motors.SetLinearVelocity(
			3.0*float64(left)/255.0, 3.0*float64(right)/255.0)
	}

	if c.led != nil {
		r, g, bl := ColorChannels(ReadColor(b))
		c.led.SetColor(255*r/3, 255*g/3, 255*bl/3)
	}

	if c.commA != nil && ReadTxState(b) == TxPending {
		c.commA.SetMessage(ReadTxMessage(b))
		WriteTxState(b, TxSent)
	}
}

// Reset zeroes every field of the shared state. The behavior process keeps
// running; it is not respawned.
func (c *Controller) Reset() {
	c.region.Zero()
}

// Destroy tears the robot down: terminate the behavior process, then remove
// the shared memory object. Safe to call more than once.
func (c *Controller) Destroy() {
	c.proc.Terminate()
	c.region.Destroy()
}

// A ControllerBuilder builds robot controllers.
type ControllerBuilder struct {
	freq      sim.Freq
	behavior  string
	seed      uint32
	tickLimit uint64

	light  LightSensor
	comm   MessageSensor
	commA  MessageActuator
	motors DifferentialSteering
	led    LED
}

// MakeControllerBuilder creates a builder with default parameters.
func MakeControllerBuilder() ControllerBuilder {
	return ControllerBuilder{
		freq: sim.FromPeriodMS(100),
	}
}

// WithFreq sets the control step frequency.
func (b ControllerBuilder) WithFreq(f sim.Freq) ControllerBuilder {
	b.freq = f
	return b
}

// WithBehavior sets the path of the behavior executable.
func (b ControllerBuilder) WithBehavior(path string) ControllerBuilder {
	b.behavior = path
	return b
}

// WithSeed sets the random seed passed to the behavior process.
func (b ControllerBuilder) WithSeed(seed uint32) ControllerBuilder {
	b.seed = seed
	return b
}

// WithTickLimit caps the number of control steps the controller runs. Zero
// means no cap.
func (b ControllerBuilder) WithTickLimit(n uint64) ControllerBuilder {
	b.tickLimit = n
	return b
}

// WithLightSensor attaches an ambient light sensor.
func (b ControllerBuilder) WithLightSensor(s LightSensor) ControllerBuilder {
	b.light = s
	return b
}

// WithMessageSensor attaches a message sensor.
func (b ControllerBuilder) WithMessageSensor(s MessageSensor) ControllerBuilder {
	b.comm = s
	return b
}

// WithMessageActuator attaches a message actuator.
func (b ControllerBuilder) WithMessageActuator(
	a MessageActuator,
) ControllerBuilder {
	b.commA = a
	return b
}

// WithSteering attaches a differential steering actuator.
func (b ControllerBuilder) WithSteering(
	s DifferentialSteering,
) ControllerBuilder {
	b.motors = s
	return b
}

// WithLED attaches an LED actuator.
func (b ControllerBuilder) WithLED(l LED) ControllerBuilder {
	b.led = l
	return b
}

// Build creates the controller for the robot named robotID: it validates the
// behavior executable, creates the shared state region, and spawns the
// behavior process. Any fault aborts this robot only and carries the robot's
// identity.
func (b ControllerBuilder) Build(robotID string) (*Controller, error) {
	c, err := b.build(robotID)
	if err != nil {
		return nil, fmt.Errorf(
			"initializing kilobot controller for robot %s: %w", robotID, err)
	}
	return c, nil
}

func (b ControllerBuilder) build(robotID string) (*Controller, error) {
	c := &Controller{
		ComponentBase: sim.NewComponentBase("Robot." + robotID),
		robotID:       robotID,
		freq:          b.freq,
		tickLimit:     b.tickLimit,
		light:         b.light,
		comm:          b.comm,
		commA:         b.commA,
		motors:        b.motors,
		led:           b.led,
	}

	f, err := os.Open(b.behavior)
	if err != nil {
		return nil, fmt.Errorf("opening behavior file %q: %w", b.behavior, err)
	}
	f.Close()

	parentPID := os.Getpid()

	region, err := CreateRegion(RegionKey(parentPID, robotID))
	if err != nil {
		return nil, err
	}
	c.region = region

	proc, err := SpawnBehavior(
		b.behavior, parentPID, robotID, b.freq.PeriodMS(), b.seed)
	if err != nil {
		region.Destroy()
		return nil, err
	}
	c.proc = proc

	return c, nil
}

// newControllerForTest wires a controller around externally supplied region
// and process implementations.
func newControllerForTest(
	robotID string,
	region stateRegion,
	proc behaviorHandle,
) *Controller {
	return &Controller{
		ComponentBase: sim.NewComponentBase("Robot." + robotID),
		robotID:       robotID,
		freq:          sim.FromPeriodMS(100),
		region:        region,
		proc:          proc,
	}
}
