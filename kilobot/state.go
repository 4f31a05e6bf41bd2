// Package kilobot implements the simulator-side control interface for
// kilobot-style robots whose behavior runs in an external OS process. The
// controller and the behavior program exchange a fixed-layout state structure
// through a shared memory region and take turns accessing it, serialized by a
// cooperative stop/continue signaling discipline.
package kilobot

import "encoding/binary"

// MaxRx is the maximum number of messages a robot can receive in one control
// step. Messages beyond this count are dropped for the step, not buffered.
const MaxRx = 10

// MessageDataSize is the number of payload bytes in a message.
const MessageDataSize = 9

// Transmission states of the outgoing message slot. The behavior process
// moves Idle to Pending; the simulator moves Pending to Sent. Sent goes back
// to Idle only on an explicit reset.
const (
	TxIdle    uint8 = 0
	TxPending uint8 = 1
	TxSent    uint8 = 2
)

// A Message is the fixed-size payload robots exchange over the air.
type Message struct {
	Data [MessageDataSize]byte
	Type uint8
	CRC  uint16
}

// A Distance holds the raw distance measurement attached to a received
// message.
type Distance struct {
	LowGain  int16
	HighGain int16
}

// RobotState is the structure exchanged between the controller and the
// behavior process. It is the sole data that crosses the process boundary.
type RobotState struct {
	AmbientLight int16
	RxCount      uint8
	RxMessages   [MaxRx]Message
	RxDistances  [MaxRx]Distance
	TxState      uint8
	TxMessage    Message
	LeftMotor    uint8
	RightMotor   uint8
	Color        uint8
}

// Byte offsets of the RobotState fields in the shared region. The layout is
// little-endian and packed. The behavior program must agree on these offsets
// bit for bit.
const (
	offAmbientLight = 0
	offRxCount      = 2
	offRxMessages   = 3
	offRxDistances  = offRxMessages + MaxRx*messageSize
	offTxState      = offRxDistances + MaxRx*distanceSize
	offTxMessage    = offTxState + 1
	offLeftMotor    = offTxMessage + messageSize
	offRightMotor   = offLeftMotor + 1
	offColor        = offRightMotor + 1

	messageSize  = MessageDataSize + 1 + 2
	distanceSize = 4
)

// StateSize is the size of the encoded RobotState, and therefore the size of
// the shared memory region.
const StateSize = offColor + 1

// RGB packs three channel intensities, each in [0, 3], into the color byte.
func RGB(r, g, b uint8) uint8 {
	return r&0x3 | (g&0x3)<<2 | (b&0x3)<<4
}

// ColorChannels unpacks the color byte into its three channels.
func ColorChannels(c uint8) (r, g, b uint8) {
	return c & 0x3, (c >> 2) & 0x3, (c >> 4) & 0x3
}

func encodeMessage(b []byte, m Message) {
	copy(b[:MessageDataSize], m.Data[:])
	b[MessageDataSize] = m.Type
	binary.LittleEndian.PutUint16(b[MessageDataSize+1:], m.CRC)
}

func decodeMessage(b []byte) Message {
	m := Message{}
	copy(m.Data[:], b[:MessageDataSize])
	m.Type = b[MessageDataSize]
	m.CRC = binary.LittleEndian.Uint16(b[MessageDataSize+1:])
	return m
}

// Encode writes the state into a shared region buffer.
func (s *RobotState) Encode(b []byte) {
	_ = b[StateSize-1]

	binary.LittleEndian.PutUint16(b[offAmbientLight:], uint16(s.AmbientLight))
	b[offRxCount] = s.RxCount
	for i := 0; i < MaxRx; i++ {
		encodeMessage(b[offRxMessages+i*messageSize:], s.RxMessages[i])
		binary.LittleEndian.PutUint16(
			b[offRxDistances+i*distanceSize:], uint16(s.RxDistances[i].LowGain))
		binary.LittleEndian.PutUint16(
			b[offRxDistances+i*distanceSize+2:],
			uint16(s.RxDistances[i].HighGain))
	}
	b[offTxState] = s.TxState
	encodeMessage(b[offTxMessage:], s.TxMessage)
	b[offLeftMotor] = s.LeftMotor
	b[offRightMotor] = s.RightMotor
	b[offColor] = s.Color
}

// Decode reads the state back from a shared region buffer.
func (s *RobotState) Decode(b []byte) {
	_ = b[StateSize-1]

	s.AmbientLight = int16(binary.LittleEndian.Uint16(b[offAmbientLight:]))
	s.RxCount = b[offRxCount]
	for i := 0; i < MaxRx; i++ {
		s.RxMessages[i] = decodeMessage(b[offRxMessages+i*messageSize:])
		s.RxDistances[i].LowGain = int16(binary.LittleEndian.Uint16(
			b[offRxDistances+i*distanceSize:]))
		s.RxDistances[i].HighGain = int16(binary.LittleEndian.Uint16(
			b[offRxDistances+i*distanceSize+2:]))
	}
	s.TxState = b[offTxState]
	s.TxMessage = decodeMessage(b[offTxMessage:])
	s.LeftMotor = b[offLeftMotor]
	s.RightMotor = b[offRightMotor]
	s.Color = b[offColor]
}
