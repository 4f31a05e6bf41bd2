package kilobot

import "math"

// A Position is the planar location of a robot, used for distance
// measurements on received messages.
type Position struct {
	X, Y float64
}

// A BroadcastMedium connects the message actuators and sensors of sibling
// robots. A message queued in one control step is delivered to every other
// robot in the next one, together with a distance measurement derived from
// the robots' positions.
//
// The medium is a simulator-side model; the behavior processes only ever see
// its effects through the rx fields of their shared state.
type BroadcastMedium struct {
	radios map[string]*Radio
}

// NewBroadcastMedium creates an empty medium.
func NewBroadcastMedium() *BroadcastMedium {
	return &BroadcastMedium{radios: make(map[string]*Radio)}
}

// AttachRobot adds a robot to the medium and returns its radio. The radio
// serves as both the MessageSensor and the MessageActuator of that robot.
func (m *BroadcastMedium) AttachRobot(robotID string, pos Position) *Radio {
	r := &Radio{medium: m, robotID: robotID, pos: pos}
	m.radios[robotID] = r
	return r
}

// Deliver moves every queued message into the inboxes of all other robots.
// Call it once per simulation tick, before the controllers run their control
// steps.
func (m *BroadcastMedium) Deliver() {
	for _, src := range m.radios {
		if !src.txQueued {
			continue
		}
		src.txQueued = false
		src.sent = true

		for _, dst := range m.radios {
			if dst == src {
				continue
			}
			dst.inbox = append(dst.inbox, IncomingPacket{
				Message:  src.txMessage,
				Distance: measureDistance(src.pos, dst.pos),
			})
		}
	}
}

func measureDistance(a, b Position) Distance {
	d := math.Hypot(a.X-b.X, a.Y-b.Y)
	mm := int16(math.Round(d * 1000.0))
	return Distance{LowGain: mm, HighGain: mm}
}

// A Radio is one robot's endpoint on a BroadcastMedium.
type Radio struct {
	medium  *BroadcastMedium
	robotID string
	pos     Position

	inbox     []IncomingPacket
	txMessage Message
	txQueued  bool
	sent      bool
}

// SetPosition updates the robot's location used for distance measurements.
func (r *Radio) SetPosition(pos Position) {
	r.pos = pos
}

// Packets returns and clears the messages delivered since the last call.
func (r *Radio) Packets() []IncomingPacket {
	p := r.inbox
	r.inbox = nil
	return p
}

// MessageSent reports whether the queued message went out since the last
// call.
func (r *Radio) MessageSent() bool {
	s := r.sent
	r.sent = false
	return s
}

// SetMessage queues a message for broadcast on the next delivery.
func (r *Radio) SetMessage(m Message) {
	r.txMessage = m
	r.txQueued = true
}
