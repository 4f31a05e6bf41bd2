package kilobot

// The devices a controller can be attached to. All of them are optional;
// a robot without, say, a light sensor simply never updates the light
// reading. The simulator-side models behind these interfaces are external
// collaborators of the controller.

// An IncomingPacket is one message received by the robot in the current
// control step, together with its raw distance measurement.
type IncomingPacket struct {
	Message  Message
	Distance Distance
}

// A LightSensor reports the ambient light at the robot's position.
type LightSensor interface {
	Reading() int16
}

// A MessageSensor reports the packets received in the current control step
// and whether the previously queued outgoing message has been transmitted.
type MessageSensor interface {
	Packets() []IncomingPacket
	MessageSent() bool
}

// A MessageActuator queues a message for over-the-air transmission.
type MessageActuator interface {
	SetMessage(m Message)
}

// A DifferentialSteering actuator drives the two wheel motors. Velocities are
// in simulated meters per second.
type DifferentialSteering interface {
	SetLinearVelocity(left, right float64)
}

// An LED actuator sets the robot's light color. Channels are full-range,
// 0 to 255.
type LED interface {
	SetColor(r, g, b uint8)
}
