package cpu

// Bus is the passive record exchanged between the core and the host once
// per Clock call. The CPU only ever mutates Addr, RW, SYNC, and (on
// writes) Data; the host only ever mutates IRQ, NMI, RES, and (on reads)
// Data. Neither side calls into the other: all communication is through
// this record, which is why Clock can be read as a pure
// (state, bus-in) -> (state', bus-out) transition.
type Bus struct {
	Addr uint16
	Data uint8

	RW   bool // true = CPU is reading, false = CPU is writing
	SYNC bool // true on the opcode-fetch cycle

	IRQ bool // level-sensitive, active high, sampled each cycle
	NMI bool // edge-sensitive, active high, latched on rising edge
	RES bool // level-sensitive; host asserts at startup and for resets
}
