package simulation

import (
	"github.com/swarmlab/kilosim/datarecording"
	"github.com/swarmlab/kilosim/kilobot"
	"github.com/swarmlab/kilosim/sim"
)

const stateTableName = "robot_state"

// stateRow is one recorded control step outcome.
type stateRow struct {
	Robot        string
	Tick         uint64
	AmbientLight int16
	RxCount      uint8
	TxState      uint8
	LeftMotor    uint8
	RightMotor   uint8
	Color        uint8
}

// stateRecorder hooks a robot controller and records the outcome of every
// control step.
type stateRecorder struct {
	recorder datarecording.DataRecorder
	robotID  string
}

func (r *stateRecorder) Func(ctx sim.HookCtx) {
	if ctx.Pos != kilobot.HookPosControlStepDone {
		return
	}

	snapshot, ok := ctx.Item.(kilobot.TickSnapshot)
	if !ok {
		return
	}

	r.recorder.InsertData(stateTableName, stateRow{
		Robot:        r.robotID,
		Tick:         snapshot.TickIndex,
		AmbientLight: snapshot.State.AmbientLight,
		RxCount:      snapshot.State.RxCount,
		TxState:      snapshot.State.TxState,
		LeftMotor:    snapshot.State.LeftMotor,
		RightMotor:   snapshot.State.RightMotor,
		Color:        snapshot.State.Color,
	})
}
