package main

import (
	"fmt"
	"math"
	"os"

	"github.com/swarmlab/kilosim/kilobot"
	"github.com/swarmlab/kilosim/monitoring"
	"github.com/swarmlab/kilosim/sim"
)

// robotPose is a minimal motion model: a pose integrated from the
// differential drive commands of one robot. It stands in for a real physics
// engine, which is outside the controller's concern.
type robotPose struct {
	x, y, theta float64
	vLeft       float64
	vRight      float64
	dt          float64
}

// axleLength is the wheel separation of a kilobot in meters.
const axleLength = 0.025

func (p *robotPose) SetLinearVelocity(left, right float64) {
	p.vLeft = left
	p.vRight = right
}

func (p *robotPose) advance() {
	v := (p.vLeft + p.vRight) / 2.0
	w := (p.vRight - p.vLeft) / axleLength

	p.theta += w * p.dt
	p.x += v * math.Cos(p.theta) * p.dt
	p.y += v * math.Sin(p.theta) * p.dt
}

func (p *robotPose) position() kilobot.Position {
	return kilobot.Position{X: p.x, Y: p.y}
}

// pointLight models a light source at the origin whose reading falls off
// with the robot's distance from it.
type pointLight struct {
	pose *robotPose
}

func (l *pointLight) Reading() int16 {
	d := math.Hypot(l.pose.x, l.pose.y)

	reading := 1023.0 / (1.0 + d*d)
	return int16(reading)
}

// loggedLED reports color changes on stderr.
type loggedLED struct {
	robotID string
	r, g, b uint8
}

func (l *loggedLED) SetColor(r, g, b uint8) {
	if r == l.r && g == l.g && b == l.b {
		return
	}

	l.r, l.g, l.b = r, g, b
	fmt.Fprintf(os.Stderr, "robot %s: led (%d, %d, %d)\n", l.robotID, r, g, b)
}

// tickProgress advances the monitor's control step budget after every
// completed control step.
type tickProgress struct {
	bar *monitoring.ProgressBar
}

func (p *tickProgress) Func(ctx sim.HookCtx) {
	if ctx.Pos != kilobot.HookPosControlStepDone {
		return
	}

	p.bar.IncrementFinished(1)
}

// poseUpdater advances the motion model after every control step and keeps
// the robot's radio position in sync.
type poseUpdater struct {
	pose  *robotPose
	radio *kilobot.Radio
}

func (u *poseUpdater) Func(ctx sim.HookCtx) {
	if ctx.Pos != kilobot.HookPosControlStepDone {
		return
	}

	u.pose.advance()
	u.radio.SetPosition(u.pose.position())
}
