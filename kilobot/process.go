package kilobot

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// A BehaviorProcess is the handle to the external program that runs one
// robot's control logic. The program is spawned once per controller and
// communicates through the shared region only.
//
// The convention, which the parent cannot enforce, is that the program stops
// itself (SIGSTOP) right after its own initialization and again at the end of
// every control loop iteration. The controller resumes it with SIGCONT once
// per tick and waits for the next stop.
type BehaviorProcess struct {
	pid        int
	proc       *os.Process
	terminated bool
}

// SpawnBehavior starts the behavior executable as a child process. The child
// receives exactly four positional arguments: the parent process identity,
// the robot identity, the control step duration in milliseconds, and an
// unsigned random seed. The executable must exist and be readable; this is
// checked before any process is created.
//
// Process creation and image replacement happen in one primitive
// (os.StartProcess), so a failed replacement surfaces here as an error and
// can never leave a child running the simulator's own code.
func SpawnBehavior(
	path string,
	parentPID int,
	robotID string,
	tickMS uint32,
	seed uint32,
) (*BehaviorProcess, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening behavior file %q: %w", path, err)
	}
	f.Close()

	argv := []string{
		path,
		strconv.Itoa(parentPID),
		robotID,
		strconv.FormatUint(uint64(tickMS), 10),
		strconv.FormatUint(uint64(seed), 10),
	}

	proc, err := os.StartProcess(path, argv, &os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	})
	if err != nil {
		return nil, fmt.Errorf("executing behavior process %q: %w", path, err)
	}

	return &BehaviorProcess{pid: proc.Pid, proc: proc}, nil
}

// PID returns the process identity of the behavior process.
func (p *BehaviorProcess) PID() int {
	return p.pid
}

// Resume delivers SIGCONT so a stopped behavior process runs its next control
// loop iteration.
func (p *BehaviorProcess) Resume() error {
	if err := unix.Kill(p.pid, unix.SIGCONT); err != nil {
		return fmt.Errorf("resuming behavior process %d: %w", p.pid, err)
	}
	return nil
}

// WaitStopped blocks until the behavior process stops itself again. A process
// that exits instead of stopping is an error; the controller relies on
// observing the stop transition specifically.
func (p *BehaviorProcess) WaitStopped() error {
	for {
		var ws unix.WaitStatus
		_, err := unix.Wait4(p.pid, &ws, unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return fmt.Errorf(
				"waiting for behavior process %d to stop: %w", p.pid, err)
		}

		if ws.Stopped() {
			return nil
		}

		if ws.Exited() || ws.Signaled() {
			p.terminated = true
			return fmt.Errorf(
				"behavior process %d exited instead of stopping", p.pid)
		}
	}
}

// Terminate asks the behavior process to exit and reaps it. The SIGCONT after
// SIGTERM matters: a stopped process does not act on a pending termination
// request until it is scheduled again, so without it the child could stay
// stopped forever. No exit status interpretation is needed.
//
// Terminate is idempotent.
func (p *BehaviorProcess) Terminate() {
	if p.terminated {
		return
	}
	p.terminated = true

	_ = unix.Kill(p.pid, unix.SIGTERM)
	_ = unix.Kill(p.pid, unix.SIGCONT)

	for {
		var ws unix.WaitStatus
		_, err := unix.Wait4(p.pid, &ws, 0, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return
		}
		if ws.Exited() || ws.Signaled() {
			return
		}
	}
}
