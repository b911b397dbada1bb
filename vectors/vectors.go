// Package vectors runs the CPU core against per-instruction test cases in
// the style of the community 65x02 JSON conformance corpus: an initial
// register/RAM snapshot, the final snapshot, and the exact sequence of bus
// transactions expected in between.
package vectors

import (
	"encoding/json"
	"fmt"

	"github.com/go-test/deep"

	"github.com/nes6502/cpu6502/cpu"
	"github.com/nes6502/cpu6502/memory"
)

// RAMPair is one (address, value) entry of a State's sparse RAM image.
type RAMPair [2]int

// State is a register/RAM snapshot, taken either before or after a test
// case's single instruction runs.
type State struct {
	PC  uint16    `json:"pc"`
	S   uint8     `json:"s"`
	A   uint8     `json:"a"`
	X   uint8     `json:"x"`
	Y   uint8     `json:"y"`
	P   uint8     `json:"p"`
	RAM []RAMPair `json:"ram"`
}

// Cycle is one bus transaction: the address driven, the data on the bus,
// and whether the CPU was reading or writing. It unmarshals from the
// corpus's compact [addr, data, "read"|"write"] triples.
type Cycle struct {
	Addr uint16
	Data uint8
	Kind string
}

func (c *Cycle) UnmarshalJSON(b []byte) error {
	var raw [3]interface{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	addr, ok := raw[0].(float64)
	if !ok {
		return fmt.Errorf("cycle addr: want number, got %T", raw[0])
	}
	data, ok := raw[1].(float64)
	if !ok {
		return fmt.Errorf("cycle data: want number, got %T", raw[1])
	}
	kind, ok := raw[2].(string)
	if !ok {
		return fmt.Errorf("cycle kind: want string, got %T", raw[2])
	}
	c.Addr, c.Data, c.Kind = uint16(addr), uint8(data), kind
	return nil
}

func (c Cycle) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]interface{}{c.Addr, c.Data, c.Kind})
}

// Test is a single conformance case: one instruction, its starting state,
// its ending state, and the bus trace in between.
type Test struct {
	Name    string  `json:"name"`
	Initial State   `json:"initial"`
	Final   State   `json:"final"`
	Cycles  []Cycle `json:"cycles"`
}

func coreFromState(s State) cpu.Core {
	return cpu.Core{A: s.A, X: s.X, Y: s.Y, S: s.S, PC: s.PC, P: cpu.P(s.P)}
}

func bankFromState(s State) memory.Bank {
	image := make([]uint8, 1<<16)
	for _, pair := range s.RAM {
		image[uint16(pair[0])] = uint8(pair[1])
	}
	return memory.NewFlatRAM(image)
}

// Result is the outcome of running one Test.
type Result struct {
	Name        string
	StateDiff   []string
	RAMDiff     []string
	CyclesDiff  []string
}

// Passed reports whether the test case's final state, RAM, and cycle trace
// all matched exactly.
func (r Result) Passed() bool {
	return len(r.StateDiff) == 0 && len(r.RAMDiff) == 0 && len(r.CyclesDiff) == 0
}

// Run drives the core through a single Test and reports any divergence
// from its expected final state, RAM contents, and bus trace.
func Run(t Test) Result {
	core := coreFromState(t.Initial)
	bank := bankFromState(t.Initial)
	c := cpu.New(core)
	bus := &cpu.Bus{}

	// Priming call: New() begins mid-instruction on a synthetic NOP, whose
	// only effect is to issue the SYNC fetch for Initial.PC.
	c.Clock(bus)

	got := make([]Cycle, 0, len(t.Cycles))
	for range t.Cycles {
		var kind string
		if bus.RW {
			bus.Data = bank.Read(bus.Addr)
			kind = "read"
		} else {
			bank.Write(bus.Addr, bus.Data)
			kind = "write"
		}
		got = append(got, Cycle{Addr: bus.Addr, Data: bus.Data, Kind: kind})
		// Always clock, even for the last transaction: this is what
		// applies the instruction's effect and settles the final
		// register state. The request it produces afterward belongs to
		// the next instruction's opcode fetch and is not part of this
		// trace.
		c.Clock(bus)
	}

	final := c.Core()
	wantFinal := coreFromState(t.Final)

	res := Result{Name: t.Name}
	if diff := deep.Equal(final, wantFinal); diff != nil {
		res.StateDiff = diff
	}
	for _, pair := range t.Final.RAM {
		addr, want := uint16(pair[0]), uint8(pair[1])
		if got := bank.Read(addr); got != want {
			res.RAMDiff = append(res.RAMDiff, fmt.Sprintf("ram[%.4X] = %.2X, want %.2X", addr, got, want))
		}
	}
	if diff := deep.Equal(got, t.Cycles); diff != nil {
		res.CyclesDiff = diff
	}
	return res
}
