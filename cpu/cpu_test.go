package cpu

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// harness is a flat 64K byte map standing in for a memory.Bank, used only
// by these package tests so they don't need to import the memory package.
type harness struct {
	mem [1 << 16]uint8
}

func (h *harness) service(bus *Bus) {
	if bus.RW {
		bus.Data = h.mem[bus.Addr]
	} else {
		h.mem[bus.Addr] = bus.Data
	}
}

type observed struct {
	addr  uint16
	data  uint8
	write bool
}

// run steps c for n cycles against h, servicing the bus before each Clock
// call and recording what crossed the bus.
func run(c *CPU, bus *Bus, h *harness, n int) []observed {
	out := make([]observed, 0, n)
	for i := 0; i < n; i++ {
		h.service(bus)
		out = append(out, observed{addr: bus.Addr, data: bus.Data, write: !bus.RW})
		c.Clock(bus)
	}
	return out
}

func newAt(core Core) (*CPU, *Bus) {
	return New(core), &Bus{}
}

// S1: ADC carry/overflow.
func TestADCCarryOverflow(t *testing.T) {
	h := &harness{}
	h.mem[0x8000] = 0x69 // ADC #imm
	h.mem[0x8001] = 0x50
	c, bus := newAt(Core{PC: 0x8000, A: 0x50, P: 0})

	// priming call issues the opcode SYNC fetch.
	c.Clock(bus)
	obs := run(c, bus, h, 2)

	got := c.Core()
	if got.A != 0xA0 {
		t.Errorf("A = %#x, want 0xa0", got.A)
	}
	if got.P.C() || !got.P.V() || !got.P.N() || got.P.Z() {
		t.Errorf("P = %#x (%s), want C=0 V=1 N=1 Z=0", uint8(got.P), spew.Sdump(got.P))
	}
	if len(obs) != 2 || !bus.SYNC {
		t.Errorf("instruction did not end after %d cycles, want 2", len(obs))
	}
}

// S2: JMP indirect page-wrap bug.
func TestJMPIndirectPageWrapBug(t *testing.T) {
	h := &harness{}
	h.mem[0x9000] = 0x6C // JMP (ind)
	h.mem[0x9001] = 0xFF
	h.mem[0x9002] = 0x10
	h.mem[0x10FF] = 0x34
	h.mem[0x1000] = 0x12 // the wrap: high byte comes from $1000, not $1100
	c, bus := newAt(Core{PC: 0x9000})

	c.Clock(bus)
	obs := run(c, bus, h, 5)

	if got := c.Core().PC; got != 0x1234 {
		t.Errorf("PC = %#x, want 0x1234", got)
	}
	want := []uint16{0x9000, 0x9001, 0x9002, 0x10FF, 0x1000}
	for i, w := range want {
		if obs[i].addr != w {
			t.Errorf("cycle %d addr = %#x, want %#x", i, obs[i].addr, w)
		}
	}
}

// S3: RMW double-write on INC.
func TestINCRMWDoubleWrite(t *testing.T) {
	h := &harness{}
	h.mem[0xA000] = 0xE6 // INC zp
	h.mem[0xA001] = 0x80
	h.mem[0x0080] = 0x7F
	c, bus := newAt(Core{PC: 0xA000})

	c.Clock(bus)
	obs := run(c, bus, h, 5)

	if h.mem[0x0080] != 0x80 {
		t.Errorf("RAM[$80] = %#x, want 0x80", h.mem[0x0080])
	}
	got := c.Core().P
	if !got.N() || got.Z() {
		t.Errorf("P = %#x, want N=1 Z=0", uint8(got))
	}
	wantWrites := []bool{false, false, false, true, true}
	for i, w := range wantWrites {
		if obs[i].write != w {
			t.Errorf("cycle %d write = %v, want %v", i, obs[i].write, w)
		}
	}
	if obs[3].data != 0x7F {
		t.Errorf("writeback cycle wrote %#x, want unchanged 0x7f", obs[3].data)
	}
	if obs[4].data != 0x80 {
		t.Errorf("final write wrote %#x, want 0x80", obs[4].data)
	}
}

// S4: page-cross branch timing.
func TestBranchPageCrossCycles(t *testing.T) {
	cases := []struct {
		name     string
		offset   uint8
		wantLen  int
		wantPC   uint16
	}{
		{"not taken", 0x04, 2, 0x80FF},
		{"taken no cross", 0xFE, 3, 0x80FD},
		{"taken with cross", 0x04, 4, 0x8103},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &harness{}
			h.mem[0x80FD] = 0xD0 // BNE
			h.mem[0x80FE] = tc.offset
			z := tc.name == "not taken"
			p := P(0)
			if z {
				p = p.WithZ(true)
			}
			c, bus := newAt(Core{PC: 0x80FD, P: p})
			c.Clock(bus)
			obs := run(c, bus, h, tc.wantLen)
			if len(obs) != tc.wantLen || !bus.SYNC {
				t.Errorf("branch did not end after %d cycles", tc.wantLen)
			}
			if got := c.Core().PC; got != tc.wantPC {
				t.Errorf("PC = %#x, want %#x", got, tc.wantPC)
			}
		})
	}
}

// S5: NMI is edge-triggered and does not re-fire while held high.
func TestNMIEdgeScheduling(t *testing.T) {
	h := &harness{}
	h.mem[0xB000] = 0xEA // NOP
	h.mem[0xFFFA] = 0x00
	h.mem[0xFFFB] = 0x20 // NMI vector -> 0x2000
	c, bus := newAt(Core{PC: 0xB000, S: 0xFD})

	c.Clock(bus)
	// Finish the NOP (2 cycles) while NMI is held high throughout.
	for i := 0; i < 2; i++ {
		h.service(bus)
		bus.NMI = true
		c.Clock(bus)
	}
	// Run the seven-cycle BRK/NMI sequence.
	for i := 0; i < 7; i++ {
		h.service(bus)
		bus.NMI = true // still held; must not re-trigger a second sequence
		c.Clock(bus)
	}
	if got := c.Core().PC; got != 0x2000 {
		t.Errorf("PC = %#x, want 0x2000 after NMI vector", got)
	}
	if !c.Core().P.I() {
		t.Error("P.I should be set after entering the NMI handler")
	}
	// One more instruction boundary should not trigger a second NMI.
	h.mem[0x2000] = 0xEA
	for i := 0; i < 2; i++ {
		h.service(bus)
		bus.NMI = true
		c.Clock(bus)
	}
	if got := c.Core().PC; got != 0x2001 {
		t.Errorf("NMI re-triggered: PC = %#x, want 0x2001", got)
	}
}

// S6: IndirectIndexed read vs store cycle counts.
func TestIndirectIndexedPageCrossVsStore(t *testing.T) {
	h := &harness{}
	h.mem[0xC000] = 0xB1 // LDA (zp),Y
	h.mem[0xC001] = 0x20
	h.mem[0x0020] = 0x34
	h.mem[0x0021] = 0x12
	h.mem[0x1244] = 0x55
	c, bus := newAt(Core{PC: 0xC000, Y: 0x10})
	c.Clock(bus)
	obs := run(c, bus, h, 5)
	if len(obs) != 5 || !bus.SYNC {
		t.Errorf("no-cross read: did not end after %d cycles, want 5", len(obs))
	}
	if c.Core().A != 0x55 {
		t.Errorf("A = %#x, want 0x55", c.Core().A)
	}

	h2 := &harness{}
	h2.mem[0xC000] = 0xB1
	h2.mem[0xC001] = 0x20
	h2.mem[0x0020] = 0x34
	h2.mem[0x0021] = 0x12
	h2.mem[0x1333] = 0x66 // 0x1234 + 0xFF wraps into the next page
	c2, bus2 := newAt(Core{PC: 0xC000, Y: 0xFF})
	c2.Clock(bus2)
	obs2 := run(c2, bus2, h2, 6)
	if len(obs2) != 6 || !bus2.SYNC {
		t.Errorf("cross read: did not end after %d cycles, want 6", len(obs2))
	}

	h3 := &harness{}
	h3.mem[0xC000] = 0x91 // STA (zp),Y
	h3.mem[0xC001] = 0x20
	h3.mem[0x0020] = 0x34
	h3.mem[0x0021] = 0x12
	c3, bus3 := newAt(Core{PC: 0xC000, Y: 0x10, A: 0x77})
	c3.Clock(bus3)
	obs3 := run(c3, bus3, h3, 6)
	if len(obs3) != 6 || !bus3.SYNC {
		t.Errorf("store: did not end after %d cycles, want 6 regardless of page cross", len(obs3))
	}
}

func TestJAMHangsForever(t *testing.T) {
	h := &harness{}
	h.mem[0xD000] = 0x02 // JAM
	h.mem[0xFFFF] = 0x00
	h.mem[0xFFFE] = 0x00
	c, bus := newAt(Core{PC: 0xD000})
	c.Clock(bus)

	h.service(bus)
	if bus.Addr != 0xD000 {
		t.Errorf("opcode fetch addr = %#x, want PC", bus.Addr)
	}
	c.Clock(bus)
	// Cycle 0 reads the byte after the opcode, then the hang pattern begins.
	want := []uint16{0xD001, 0xFFFF, 0xFFFE, 0xFFFE, 0xFFFF, 0xFFFF, 0xFFFF}
	for i, w := range want {
		h.service(bus)
		if bus.Addr != w {
			t.Errorf("jam cycle %d addr = %#x, want %#x", i, bus.Addr, w)
		}
		if bus.SYNC {
			t.Errorf("jam cycle %d unexpectedly asserted SYNC", i)
		}
		c.Clock(bus)
	}
}

// IRQ is level-sensitive and gated by P.I; NMI is not.
func TestIRQGatedByInterruptDisable(t *testing.T) {
	h := &harness{}
	h.mem[0xE000] = 0xEA // NOP
	h.mem[0xE001] = 0xEA
	c, bus := newAt(Core{PC: 0xE000, P: FlagI})
	c.Clock(bus)
	for i := 0; i < 2; i++ {
		h.service(bus)
		bus.IRQ = true
		c.Clock(bus)
	}
	if got := c.Core().PC; got != 0xE001 {
		t.Errorf("IRQ fired despite P.I=1: PC = %#x, want 0xE001", got)
	}
}

// BRK pushes B=1, a hardware IRQ push carries B=0.
func TestFlagPushAsymmetry(t *testing.T) {
	h := &harness{}
	h.mem[0xF000] = 0x00 // BRK
	h.mem[0xF001] = 0x00
	h.mem[0xFFFE] = 0x00
	h.mem[0xFFFF] = 0x30
	c, bus := newAt(Core{PC: 0xF000, S: 0xFD})
	c.Clock(bus)
	run(c, bus, h, 7)
	if pushed := h.mem[0x01FB]; pushed&uint8(FlagB) == 0 {
		t.Errorf("BRK pushed status %#x, want B set", pushed)
	}

	h2 := &harness{}
	h2.mem[0x1000] = 0xEA
	h2.mem[0xFFFE] = 0x00
	h2.mem[0xFFFF] = 0x30
	c2, bus2 := newAt(Core{PC: 0x1000, S: 0xFD})
	c2.Clock(bus2)
	for i := 0; i < 2; i++ {
		h2.service(bus2)
		bus2.IRQ = true
		c2.Clock(bus2)
	}
	run(c2, bus2, h2, 7)
	if pushed := h2.mem[0x01FB]; pushed&uint8(FlagB) != 0 {
		t.Errorf("IRQ pushed status %#x, want B clear", pushed)
	}
}
