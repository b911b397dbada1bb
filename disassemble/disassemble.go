// Package disassemble implements a disassembler driven by the same decode
// table the cycle-level sequencer uses, so its notion of opcode length and
// addressing mode can never drift from what the CPU actually executes.
package disassemble

import (
	"fmt"

	"github.com/nes6502/cpu6502/cpu"
	"github.com/nes6502/cpu6502/memory"
)

// Step disassembles the instruction at pc, returning its text and the
// number of bytes the PC should advance to reach the next instruction.
// This does not interpret control flow, so a JMP target is never
// followed; it always reads up to two bytes past pc, so pc+2 must be a
// valid address even for one-byte instructions.
func Step(pc uint16, r memory.Bank) (string, int) {
	opcode := r.Read(pc)
	operand1 := r.Read(pc + 1)
	operand2 := r.Read(pc + 2)
	rel := pc + 2 + uint16(int16(int8(operand1)))

	info := cpu.Decode(opcode)
	name := info.Op.String()

	out := fmt.Sprintf("%.4X %.2X ", pc, opcode)
	count := 1
	switch info.Mode {
	case cpu.Immediate:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", operand1, name, operand1)
		count = 2
	case cpu.Zero:
		out += fmt.Sprintf("%.2X      %s %.2X        ", operand1, name, operand1)
		count = 2
	case cpu.ZeroX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", operand1, name, operand1)
		count = 2
	case cpu.ZeroY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", operand1, name, operand1)
		count = 2
	case cpu.IndexedIndirect:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", operand1, name, operand1)
		count = 2
	case cpu.IndirectIndexed:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", operand1, name, operand1)
		count = 2
	case cpu.Absolute:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", operand1, operand2, name, operand2, operand1)
		count = 3
	case cpu.AbsoluteX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", operand1, operand2, name, operand2, operand1)
		count = 3
	case cpu.AbsoluteY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", operand1, operand2, name, operand2, operand1)
		count = 3
	case cpu.Indirect:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", operand1, operand2, name, operand2, operand1)
		count = 3
	case cpu.Relative:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", operand1, name, operand1, rel)
		count = 2
	case cpu.Accumulator:
		out += fmt.Sprintf("        %s A         ", name)
	case cpu.Implied:
		out += fmt.Sprintf("        %s           ", name)
	default:
		panic(fmt.Sprintf("unhandled addressing mode: %d", info.Mode))
	}
	// BRK reads and discards a signature byte even though it's formally
	// Implied; the disassembly shows it consuming two bytes to match.
	if info.Op == cpu.OpBRK {
		count = 2
	}
	return out, count
}
