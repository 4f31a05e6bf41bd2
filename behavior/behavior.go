// Package behavior is the client library for kilosim behavior programs
// written in Go. A behavior program runs as a child process of the simulator
// and exchanges a RobotState with it through shared memory, taking turns
// under the stop/continue convention: the program stops itself right after
// initialization and again at the end of every control loop iteration; the
// simulator resumes it once per tick.
package behavior

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/swarmlab/kilosim/kilobot"
	"golang.org/x/sys/unix"
)

// Args are the four positional arguments every behavior process receives.
type Args struct {
	ParentPID int
	RobotID   string
	TickMS    uint32
	Seed      uint32
}

// ParseArgs decodes the fixed argument list: parent process identity, robot
// identity, control step duration in milliseconds, random seed.
func ParseArgs(argv []string) (Args, error) {
	if len(argv) != 4 {
		return Args{}, fmt.Errorf(
			"expected 4 positional arguments, got %d", len(argv))
	}

	ppid, err := strconv.Atoi(argv[0])
	if err != nil {
		return Args{}, fmt.Errorf("parsing parent pid %q: %w", argv[0], err)
	}

	tickMS, err := strconv.ParseUint(argv[2], 10, 32)
	if err != nil {
		return Args{}, fmt.Errorf("parsing tick duration %q: %w", argv[2], err)
	}

	seed, err := strconv.ParseUint(argv[3], 10, 32)
	if err != nil {
		return Args{}, fmt.Errorf("parsing random seed %q: %w", argv[3], err)
	}

	return Args{
		ParentPID: ppid,
		RobotID:   argv[1],
		TickMS:    uint32(tickMS),
		Seed:      uint32(seed),
	}, nil
}

// A Robot is the behavior-process view of one robot. Its fields mirror the
// shared RobotState; Step copies inputs in and outputs out around each
// control function call.
type Robot struct {
	Args
	Rand *rand.Rand

	region *kilobot.Region

	// Inputs, valid during a control step.
	AmbientLight int16
	RxPackets    []kilobot.IncomingPacket

	// Outputs, applied at the end of a control step.
	LeftMotor  uint8
	RightMotor uint8
	Color      uint8
}

// Attach parses os.Args and maps the shared state region created by the
// simulator.
func Attach() (*Robot, error) {
	args, err := ParseArgs(os.Args[1:])
	if err != nil {
		return nil, err
	}

	region, err := kilobot.OpenRegion(
		kilobot.RegionKey(args.ParentPID, args.RobotID))
	if err != nil {
		return nil, err
	}

	return &Robot{
		Args:   args,
		Rand:   rand.New(rand.NewSource(int64(args.Seed))),
		region: region,
	}, nil
}

// SendMessage marks a message pending for transmission. The simulator
// dispatches it once and flips the state to sent.
func (r *Robot) SendMessage(m kilobot.Message) {
	b := r.region.Bytes()
	kilobot.WriteTxMessage(b, m)
	kilobot.WriteTxState(b, kilobot.TxPending)
}

// MessageSent reports whether the last pending message has gone out.
func (r *Robot) MessageSent() bool {
	return kilobot.ReadTxState(r.region.Bytes()) == kilobot.TxSent
}

// pause stops the process until the simulator sends SIGCONT. This is the
// program's half of the handshake.
func (r *Robot) pause() {
	_ = unix.Kill(os.Getpid(), unix.SIGSTOP)
}

func (r *Robot) readInputs() {
	b := r.region.Bytes()

	r.AmbientLight = kilobot.ReadAmbientLight(b)

	n := int(kilobot.ReadRxCount(b))
	if n > kilobot.MaxRx {
		n = kilobot.MaxRx
	}
	r.RxPackets = r.RxPackets[:0]
	for i := 0; i < n; i++ {
		m, d := kilobot.ReadRxSlot(b, i)
		r.RxPackets = append(r.RxPackets,
			kilobot.IncomingPacket{Message: m, Distance: d})
	}
	kilobot.WriteRxCount(b, 0)
}

func (r *Robot) writeOutputs() {
	b := r.region.Bytes()
	kilobot.WriteMotors(b, r.LeftMotor, r.RightMotor)
	kilobot.WriteColor(b, r.Color)
}

// Run drives the control loop forever: pause after setup, then alternate
// one call of the control function with one pause, copying state around each
// call. Run never returns; the process exits when the simulator sends a
// termination request.
func (r *Robot) Run(setup func(*Robot), loop func(*Robot)) {
	if setup != nil {
		setup(r)
	}

	for {
		r.pause()
		r.readInputs()
		loop(r)
		r.writeOutputs()
	}
}
