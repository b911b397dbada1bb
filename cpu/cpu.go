// Package cpu implements a cycle-accurate NES-variant MOS 6502: a finite
// state machine advanced one bus cycle at a time by Clock, exchanging
// exactly one bus transaction per call with a caller-owned Bus record. The
// core never calls back into the host; all communication flows through the
// Bus fields the caller reads and writes between calls.
package cpu

type brkKind uint8

const (
	brkNone brkKind = iota
	brkBRK          // the actual BRK opcode (0x00)
	brkIRQ
	brkNMI
	brkRES
)

// CPU is the cycle-level sequencer: register file plus the scratch a
// multi-cycle instruction needs between Clock calls.
type CPU struct {
	core Core

	op   Op
	am   AddressingMode
	info OpInfo
	brk  brkKind

	cycle uint8

	addr        uint16
	data        uint8
	wrap        bool
	correctHigh uint8
	baseHigh    uint8
	branchOffset int8

	irqScheduled bool
	nmiScheduled bool
	lastNMI      bool
}

// Start constructs a CPU in the reset sequence: the first clocks perform
// the seven-cycle reset-vector fetch (cycle begins at 1, skipping the
// dummy PC read a real power-on reset performs before software ever calls
// Clock).
func Start() *CPU {
	return &CPU{cycle: 1, op: OpBRK, am: Implied, brk: brkRES}
}

// New constructs a CPU with an arbitrary register state, as if mid-stream:
// the first Clock call finishes a synthetic NOP and decoding resumes
// normally on the next call. Intended for targeted tests that want to seed
// A/X/Y/S/PC/P directly.
func New(core Core) *CPU {
	return &CPU{core: core, cycle: 1, op: OpNOP, am: Implied, brk: brkNone}
}

// Core returns a snapshot of the register file.
func (c *CPU) Core() Core { return c.core }

// Clock advances the CPU by exactly one bus cycle.
func (c *CPU) Clock(bus *Bus) {
	if c.cycle == 0 {
		c.finishSync(bus)
	}
	c.step(bus)
	c.latchInterrupts(bus)
}

// finishSync consumes the opcode byte presented by the previous cycle's
// SYNC fetch, unless an interrupt is pending, in which case the fetched
// byte is discarded and a BRK sequence of the appropriate kind begins.
func (c *CPU) finishSync(bus *Bus) {
	opcode := bus.Data
	switch {
	case bus.RES:
		c.op, c.am, c.brk = OpBRK, Implied, brkRES
	case c.nmiScheduled:
		c.nmiScheduled = false
		c.op, c.am, c.brk = OpBRK, Implied, brkNMI
	case c.irqScheduled && !c.core.P.I():
		c.op, c.am, c.brk = OpBRK, Implied, brkIRQ
	default:
		c.core.PC++
		info := Decode(opcode)
		c.op, c.am, c.info = info.Op, info.Mode, info
		if c.op == OpBRK {
			c.brk = brkBRK
		} else {
			c.brk = brkNone
		}
	}
}

func (c *CPU) latchInterrupts(bus *Bus) {
	c.irqScheduled = bus.IRQ
	if bus.NMI && !c.lastNMI {
		c.nmiScheduled = true
	}
	c.lastNMI = bus.NMI
}

func (c *CPU) step(bus *Bus) {
	bus.SYNC = false

	if c.brk != brkNone {
		c.execBRKSeq(bus)
		return
	}
	if c.op == OpJAM {
		c.execJAM(bus)
		return
	}

	switch c.am {
	case Implied:
		switch c.op {
		case OpRTI:
			c.execRTI(bus)
		case OpRTS:
			c.execRTS(bus)
		case OpPHA, OpPHP:
			c.execPush(bus)
		case OpPLA, OpPLP:
			c.execPull(bus)
		default:
			c.execImplied(bus)
		}
	case Accumulator:
		c.execAccumulator(bus)
	case Immediate:
		c.execImmediate(bus)
	case Zero:
		c.execZero(bus)
	case ZeroX:
		c.execZeroIndexed(bus, &c.core.X)
	case ZeroY:
		c.execZeroIndexed(bus, &c.core.Y)
	case Absolute:
		switch c.op {
		case OpJMP:
			c.execJMPAbsolute(bus)
		case OpJSR:
			c.execJSR(bus)
		default:
			c.execAbsolute(bus)
		}
	case AbsoluteX:
		c.execAbsoluteIndexed(bus, &c.core.X)
	case AbsoluteY:
		c.execAbsoluteIndexed(bus, &c.core.Y)
	case Indirect:
		c.execIndirect(bus)
	case IndexedIndirect:
		c.execIndexedIndirect(bus)
	case IndirectIndexed:
		c.execIndirectIndexed(bus)
	case Relative:
		c.execRelative(bus)
	}
}

// --- bus helpers ---

func (c *CPU) next() { c.cycle++ }

func (c *CPU) sync(bus *Bus) {
	bus.Addr = c.core.PC
	bus.RW = true
	bus.SYNC = true
	c.cycle = 0
}

func (c *CPU) read(bus *Bus, addr uint16) {
	bus.Addr = addr
	bus.RW = true
}

func (c *CPU) write(bus *Bus, addr uint16, val uint8) {
	bus.Addr = addr
	bus.Data = val
	bus.RW = false
}

func (c *CPU) fetchPC(bus *Bus) {
	c.read(bus, c.core.PC)
	c.core.PC++
}

// pull advances S and issues the read for the byte that lands on the bus
// on the following cycle.
func (c *CPU) pull(bus *Bus) {
	c.core.S++
	c.read(bus, 0x0100|uint16(c.core.S))
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// --- operand application ---

func (c *CPU) applyRead(data uint8) {
	if fn, ok := readOps[c.op]; ok {
		fn(&c.core, data)
	}
}

func (c *CPU) applyRMW(data uint8) uint8 {
	if fn, ok := rmwOps[c.op]; ok {
		return fn(&c.core, data)
	}
	return data
}

// storeValue computes the byte a plain store (STA/STX/STY/SAX) places on
// the bus. SHA/SHX/SHY/TAS go through storeValueIndexed instead since they
// need the addressing mode's high-byte/wrap context.
func (c *CPU) storeValue() uint8 {
	switch c.op {
	case OpSTA:
		return c.core.A
	case OpSTX:
		return c.core.X
	case OpSTY:
		return c.core.Y
	case OpSAX:
		return c.core.ExecSax()
	}
	return 0
}

// storeValueIndexed computes both the stored byte and the address it is
// written to for the indexed-addressing stores, including the unstable
// SHA/SHX/SHY/TAS address-high corruption on a page-cross. baseHigh is the
// pre-carry high byte of the unindexed base address; SHA/SHX/SHY/TAS always
// AND against baseHigh+1, regardless of whether the index crossed a page.
func (c *CPU) storeValueIndexed(baseHigh uint8, finalAddr uint16) (uint8, uint16) {
	var val uint8
	switch c.op {
	case OpSTA:
		return c.core.A, finalAddr
	case OpSAX:
		return c.core.ExecSax(), finalAddr
	case OpSHA:
		val = c.core.ExecSha(baseHigh)
	case OpSHX:
		val = c.core.ExecShx(baseHigh)
	case OpSHY:
		val = c.core.ExecShy(baseHigh)
	case OpTAS:
		val = c.core.ExecTas(baseHigh)
	default:
		return 0, finalAddr
	}
	addr := finalAddr
	if c.wrap {
		addr = uint16(val)<<8 | (finalAddr & 0xFF)
	}
	return val, addr
}

// --- addressing-mode state machines ---

func (c *CPU) execImplied(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		c.next()
	case 1:
		if fn, ok := impliedOps[c.op]; ok {
			fn(&c.core)
		}
		c.sync(bus)
	}
}

func (c *CPU) execAccumulator(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		c.next()
	case 1:
		if fn, ok := accOps[c.op]; ok {
			fn(&c.core)
		}
		c.sync(bus)
	}
}

func (c *CPU) execImmediate(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.applyRead(bus.Data)
		c.sync(bus)
	}
}

func (c *CPU) execZero(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.addr = uint16(bus.Data)
		if c.info.IsRMW || c.info.ReadsOperand {
			c.read(bus, c.addr)
		} else {
			c.write(bus, c.addr, c.storeValue())
		}
		c.next()
	case 2:
		switch {
		case c.info.IsRMW:
			c.data = bus.Data
			c.write(bus, c.addr, c.data)
			c.next()
		case c.info.ReadsOperand:
			c.applyRead(bus.Data)
			c.sync(bus)
		default:
			c.sync(bus)
		}
	case 3:
		result := c.applyRMW(c.data)
		c.write(bus, c.addr, result)
		c.next()
	case 4:
		c.sync(bus)
	}
}

func (c *CPU) execZeroIndexed(bus *Bus, reg *uint8) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		base := bus.Data
		c.addr = uint16(base)
		c.read(bus, uint16(base))
		c.next()
	case 2:
		base := uint8(c.addr)
		effective := base + *reg
		c.addr = uint16(effective)
		if c.info.IsRMW || c.info.ReadsOperand {
			c.read(bus, c.addr)
		} else {
			c.write(bus, c.addr, c.storeValue())
		}
		c.next()
	case 3:
		switch {
		case c.info.IsRMW:
			c.data = bus.Data
			c.write(bus, c.addr, c.data)
			c.next()
		case c.info.ReadsOperand:
			c.applyRead(bus.Data)
			c.sync(bus)
		default:
			c.sync(bus)
		}
	case 4:
		result := c.applyRMW(c.data)
		c.write(bus, c.addr, result)
		c.next()
	case 5:
		c.sync(bus)
	}
}

func (c *CPU) execAbsolute(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.addr = uint16(bus.Data)
		c.fetchPC(bus)
		c.next()
	case 2:
		c.addr |= uint16(bus.Data) << 8
		if c.info.IsRMW || c.info.ReadsOperand {
			c.read(bus, c.addr)
		} else {
			c.write(bus, c.addr, c.storeValue())
		}
		c.next()
	case 3:
		switch {
		case c.info.IsRMW:
			c.data = bus.Data
			c.write(bus, c.addr, c.data)
			c.next()
		case c.info.ReadsOperand:
			c.applyRead(bus.Data)
			c.sync(bus)
		default:
			c.sync(bus)
		}
	case 4:
		result := c.applyRMW(c.data)
		c.write(bus, c.addr, result)
		c.next()
	case 5:
		c.sync(bus)
	}
}

// execJMPAbsolute is JMP's own three-cycle sequence. JMP never reads or
// writes at the target, so it does not share the generic Absolute
// read/write/RMW tail above.
func (c *CPU) execJMPAbsolute(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.addr = uint16(bus.Data)
		c.fetchPC(bus)
		c.next()
	case 2:
		c.addr |= uint16(bus.Data) << 8
		c.core.PC = c.addr
		c.sync(bus)
	}
}

// execIndirect is JMP ($xxxx): reads the target address from the pointer,
// reproducing the page-wrap bug where the pointer's high-byte fetch wraps
// within the same page instead of crossing into the next one.
func (c *CPU) execIndirect(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.addr = uint16(bus.Data)
		c.fetchPC(bus)
		c.next()
	case 2:
		c.addr |= uint16(bus.Data) << 8
		c.read(bus, c.addr)
		c.next()
	case 3:
		c.data = bus.Data
		wrapped := (c.addr & 0xFF00) | ((c.addr + 1) & 0x00FF)
		c.read(bus, wrapped)
		c.next()
	case 4:
		c.core.PC = uint16(bus.Data)<<8 | uint16(c.data)
		c.sync(bus)
	}
}

func (c *CPU) execJSR(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.addr = uint16(bus.Data)
		c.read(bus, 0x0100|uint16(c.core.S))
		c.next()
	case 2:
		c.write(bus, 0x0100|uint16(c.core.S), uint8(c.core.PC>>8))
		c.core.S--
		c.next()
	case 3:
		c.write(bus, 0x0100|uint16(c.core.S), uint8(c.core.PC))
		c.core.S--
		c.next()
	case 4:
		c.fetchPC(bus)
		c.next()
	case 5:
		c.addr |= uint16(bus.Data) << 8
		c.core.PC = c.addr
		c.sync(bus)
	}
}

func (c *CPU) execRTS(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		c.next()
	case 1:
		c.read(bus, 0x0100|uint16(c.core.S))
		c.next()
	case 2:
		c.pull(bus)
		c.next()
	case 3:
		c.addr = uint16(bus.Data)
		c.pull(bus)
		c.next()
	case 4:
		c.core.PC = uint16(bus.Data)<<8 | (c.addr & 0xFF)
		c.read(bus, c.core.PC)
		c.next()
	case 5:
		c.core.PC++
		c.sync(bus)
	}
}

func (c *CPU) execRTI(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		c.next()
	case 1:
		c.read(bus, 0x0100|uint16(c.core.S))
		c.next()
	case 2:
		c.pull(bus)
		c.next()
	case 3:
		c.core.P = FromPullByte(bus.Data)
		c.pull(bus)
		c.next()
	case 4:
		c.addr = uint16(bus.Data)
		c.pull(bus)
		c.next()
	case 5:
		c.core.PC = uint16(bus.Data)<<8 | (c.addr & 0xFF)
		c.sync(bus)
	}
}

func (c *CPU) execPush(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		c.next()
	case 1:
		var val uint8
		if c.op == OpPHA {
			val = c.core.A
		} else {
			val = c.core.P.PushByte(true)
		}
		c.write(bus, 0x0100|uint16(c.core.S), val)
		c.core.S--
		c.next()
	case 2:
		c.sync(bus)
	}
}

func (c *CPU) execPull(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		c.next()
	case 1:
		c.read(bus, 0x0100|uint16(c.core.S))
		c.next()
	case 2:
		c.pull(bus)
		c.next()
	case 3:
		data := bus.Data
		if c.op == OpPLA {
			c.core.A = data
			c.core.P = c.core.P.WithNZ(data)
		} else {
			c.core.P = FromPullByte(data)
		}
		c.sync(bus)
	}
}

func (c *CPU) execRelative(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.branchOffset = int8(bus.Data)
		taken := false
		if fn, ok := branchOps[c.op]; ok {
			taken = fn(c.core.P)
		}
		if !taken {
			c.sync(bus)
			return
		}
		c.read(bus, c.core.PC)
		c.next()
	case 2:
		newPC := uint16(int32(c.core.PC) + int32(c.branchOffset))
		c.addr = newPC
		if (newPC & 0xFF00) == (c.core.PC & 0xFF00) {
			c.core.PC = newPC
			c.sync(bus)
			return
		}
		stall := (c.core.PC & 0xFF00) | (newPC & 0x00FF)
		c.read(bus, stall)
		c.next()
	case 3:
		c.core.PC = c.addr
		c.sync(bus)
	}
}

func (c *CPU) execIndexedIndirect(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		zp := bus.Data
		c.addr = uint16(zp)
		c.read(bus, uint16(zp))
		c.next()
	case 2:
		zpx := uint8(c.addr) + c.core.X
		c.addr = uint16(zpx)
		c.read(bus, uint16(zpx))
		c.next()
	case 3:
		c.data = bus.Data
		zpx1 := uint8(c.addr) + 1
		c.read(bus, uint16(zpx1))
		c.next()
	case 4:
		c.addr = uint16(bus.Data)<<8 | uint16(c.data)
		if c.info.IsRMW || c.info.ReadsOperand {
			c.read(bus, c.addr)
		} else {
			c.write(bus, c.addr, c.storeValue())
		}
		c.next()
	case 5:
		switch {
		case c.info.IsRMW:
			c.data = bus.Data
			c.write(bus, c.addr, c.data)
			c.next()
		case c.info.ReadsOperand:
			c.applyRead(bus.Data)
			c.sync(bus)
		default:
			c.sync(bus)
		}
	case 6:
		result := c.applyRMW(c.data)
		c.write(bus, c.addr, result)
		c.next()
	case 7:
		c.sync(bus)
	}
}

func (c *CPU) execIndirectIndexed(bus *Bus) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		zp := bus.Data
		c.addr = uint16(zp)
		c.read(bus, uint16(zp))
		c.next()
	case 2:
		c.data = bus.Data // pointer low byte
		zp1 := uint8(c.addr) + 1
		c.read(bus, uint16(zp1))
		c.next()
	case 3:
		baseHigh := bus.Data
		sum := uint16(c.data) + uint16(c.core.Y)
		effLo := uint8(sum)
		c.wrap = sum > 0xFF
		c.baseHigh = baseHigh
		c.correctHigh = baseHigh + boolToU8(c.wrap)
		c.addr = uint16(effLo) // low byte of the effective address, preserved across cycles
		stall := uint16(baseHigh)<<8 | uint16(effLo)
		c.read(bus, stall)
		c.next()
	case 4:
		finalAddr := uint16(c.correctHigh)<<8 | (c.addr & 0xFF)
		switch {
		case c.info.IsRMW:
			c.read(bus, finalAddr)
			c.addr = finalAddr
			c.next()
		case c.info.WritesOperand:
			val, writeAddr := c.storeValueIndexed(c.baseHigh, finalAddr)
			c.write(bus, writeAddr, val)
			c.next()
		default:
			if c.wrap {
				c.read(bus, finalAddr)
				c.addr = finalAddr
				c.next()
			} else {
				c.applyRead(bus.Data)
				c.sync(bus)
			}
		}
	case 5:
		switch {
		case c.info.IsRMW:
			c.data = bus.Data
			c.write(bus, c.addr, c.data)
			c.next()
		case c.info.WritesOperand:
			c.sync(bus)
		default:
			c.applyRead(bus.Data)
			c.sync(bus)
		}
	case 6:
		result := c.applyRMW(c.data)
		c.write(bus, c.addr, result)
		c.next()
	case 7:
		c.sync(bus)
	}
}

func (c *CPU) execAbsoluteIndexed(bus *Bus, reg *uint8) {
	switch c.cycle {
	case 0:
		c.fetchPC(bus)
		c.next()
	case 1:
		c.addr = uint16(bus.Data) // low byte of the unindexed base
		c.fetchPC(bus)
		c.next()
	case 2:
		baseHigh := bus.Data
		sum := c.addr + uint16(*reg)
		effLo := uint8(sum)
		c.wrap = sum > 0xFF
		c.baseHigh = baseHigh
		c.correctHigh = baseHigh + boolToU8(c.wrap)
		c.addr = uint16(effLo)
		stall := uint16(baseHigh)<<8 | uint16(effLo)
		c.read(bus, stall)
		c.next()
	case 3:
		finalAddr := uint16(c.correctHigh)<<8 | (c.addr & 0xFF)
		switch {
		case c.info.IsRMW:
			c.read(bus, finalAddr)
			c.addr = finalAddr
			c.next()
		case c.info.WritesOperand:
			val, writeAddr := c.storeValueIndexed(c.baseHigh, finalAddr)
			c.write(bus, writeAddr, val)
			c.next()
		default:
			if c.wrap {
				c.read(bus, finalAddr)
				c.addr = finalAddr
				c.next()
			} else {
				c.applyRead(bus.Data)
				c.sync(bus)
			}
		}
	case 4:
		switch {
		case c.info.IsRMW:
			c.data = bus.Data
			c.write(bus, c.addr, c.data)
			c.next()
		case c.info.WritesOperand:
			c.sync(bus)
		default:
			c.applyRead(bus.Data)
			c.sync(bus)
		}
	case 5:
		result := c.applyRMW(c.data)
		c.write(bus, c.addr, result)
		c.next()
	case 6:
		c.sync(bus)
	}
}

// vectorAddr returns the interrupt vector for the current BRK sequence.
func (c *CPU) vectorAddr() uint16 {
	switch c.brk {
	case brkNMI:
		return 0xFFFA
	case brkRES:
		return 0xFFFC
	default:
		return 0xFFFE
	}
}

// execBRKSeq is the unified seven-cycle BRK/IRQ/NMI/RES sequence. The
// three columns differ only in whether sub 0 advances PC past a signature
// byte (BRK opcode only), whether the three stack-area accesses in subs
// 1-3 are writes or reads-with-decrement (RES only), and what B value is
// pushed.
func (c *CPU) execBRKSeq(bus *Bus) {
	switch c.cycle {
	case 0:
		c.read(bus, c.core.PC)
		if c.brk == brkBRK {
			c.core.PC++
		}
		c.next()
	case 1:
		if c.brk == brkRES {
			c.read(bus, 0x0100|uint16(c.core.S))
		} else {
			c.write(bus, 0x0100|uint16(c.core.S), uint8(c.core.PC>>8))
		}
		c.core.S--
		c.next()
	case 2:
		if c.brk == brkRES {
			c.read(bus, 0x0100|uint16(c.core.S))
		} else {
			c.write(bus, 0x0100|uint16(c.core.S), uint8(c.core.PC))
		}
		c.core.S--
		c.next()
	case 3:
		if c.brk == brkRES {
			c.read(bus, 0x0100|uint16(c.core.S))
		} else {
			c.write(bus, 0x0100|uint16(c.core.S), c.core.P.PushByte(c.brk == brkBRK))
		}
		c.core.S--
		c.next()
	case 4:
		c.read(bus, c.vectorAddr())
		c.next()
	case 5:
		c.data = bus.Data // vector low byte
		c.read(bus, c.vectorAddr()+1)
		c.next()
	case 6:
		c.core.PC = uint16(bus.Data)<<8 | uint16(c.data)
		c.core.P = c.core.P.WithI(true)
		c.brk = brkNone
		c.sync(bus)
	}
}

// execJAM is a permanent-hang state: no SYNC is ever reissued, so decoding
// never resumes. Only reconstructing the CPU via Start recovers.
func (c *CPU) execJAM(bus *Bus) {
	switch {
	case c.cycle == 0:
		c.read(bus, c.core.PC)
	case c.cycle == 1:
		c.read(bus, 0xFFFF)
	case c.cycle == 2, c.cycle == 3:
		c.read(bus, 0xFFFE)
	default:
		c.read(bus, 0xFFFF)
	}
	if c.cycle < 4 {
		c.next()
	} else {
		c.cycle = 4
	}
}
