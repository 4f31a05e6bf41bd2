package kilobot

import "encoding/binary"

// Field-level access to an encoded RobotState. The handshake protocol makes
// each field single-writer per tick phase; these accessors let each side
// touch only the fields it owns instead of rewriting the whole structure.

// WriteAmbientLight sets the ambient light reading.
func WriteAmbientLight(b []byte, v int16) {
	binary.LittleEndian.PutUint16(b[offAmbientLight:], uint16(v))
}

// ReadAmbientLight returns the ambient light reading.
func ReadAmbientLight(b []byte) int16 {
	return int16(binary.LittleEndian.Uint16(b[offAmbientLight:]))
}

// WriteRxCount sets the number of valid received message slots.
func WriteRxCount(b []byte, n uint8) {
	b[offRxCount] = n
}

// ReadRxCount returns the number of valid received message slots.
func ReadRxCount(b []byte) uint8 {
	return b[offRxCount]
}

// WriteRxSlot fills received message slot i.
func WriteRxSlot(b []byte, i int, m Message, d Distance) {
	encodeMessage(b[offRxMessages+i*messageSize:], m)
	binary.LittleEndian.PutUint16(
		b[offRxDistances+i*distanceSize:], uint16(d.LowGain))
	binary.LittleEndian.PutUint16(
		b[offRxDistances+i*distanceSize+2:], uint16(d.HighGain))
}

// ReadRxSlot returns received message slot i.
func ReadRxSlot(b []byte, i int) (Message, Distance) {
	m := decodeMessage(b[offRxMessages+i*messageSize:])
	d := Distance{
		LowGain: int16(binary.LittleEndian.Uint16(
			b[offRxDistances+i*distanceSize:])),
		HighGain: int16(binary.LittleEndian.Uint16(
			b[offRxDistances+i*distanceSize+2:])),
	}
	return m, d
}

// WriteTxState sets the transmission state flag.
func WriteTxState(b []byte, s uint8) {
	b[offTxState] = s
}

// ReadTxState returns the transmission state flag.
func ReadTxState(b []byte) uint8 {
	return b[offTxState]
}

// WriteTxMessage sets the outgoing message.
func WriteTxMessage(b []byte, m Message) {
	encodeMessage(b[offTxMessage:], m)
}

// ReadTxMessage returns the outgoing message.
func ReadTxMessage(b []byte) Message {
	return decodeMessage(b[offTxMessage:])
}

// WriteMotors sets the two motor commands.
func WriteMotors(b []byte, left, right uint8) {
	b[offLeftMotor] = left
	b[offRightMotor] = right
}

// ReadMotors returns the two motor commands.
func ReadMotors(b []byte) (left, right uint8) {
	return b[offLeftMotor], b[offRightMotor]
}

// WriteColor sets the packed LED color.
func WriteColor(b []byte, c uint8) {
	b[offColor] = c
}

// ReadColor returns the packed LED color.
func ReadColor(b []byte) uint8 {
	return b[offColor]
}
