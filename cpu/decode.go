package cpu

// Op names every instruction this core executes, including the
// undocumented/"illegal" opcodes the NES relies on.
type Op uint8

const (
	OpADC Op = iota
	OpAND
	OpASL
	OpBCC
	OpBCS
	OpBEQ
	OpBIT
	OpBMI
	OpBNE
	OpBPL
	OpBRK
	OpBVC
	OpBVS
	OpCLC
	OpCLD
	OpCLI
	OpCLV
	OpCMP
	OpCPX
	OpCPY
	OpDEC
	OpDEX
	OpDEY
	OpEOR
	OpINC
	OpINX
	OpINY
	OpJAM
	OpJMP
	OpJSR
	OpLDA
	OpLDX
	OpLDY
	OpLSR
	OpNOP
	OpORA
	OpPHA
	OpPHP
	OpPLA
	OpPLP
	OpROL
	OpROR
	OpRTI
	OpRTS
	OpSBC
	OpSEC
	OpSED
	OpSEI
	OpSTA
	OpSTX
	OpSTY
	OpTAX
	OpTAY
	OpTSX
	OpTXA
	OpTXS
	OpTYA
	// Undocumented.
	OpSLO
	OpRLA
	OpSRE
	OpRRA
	OpSAX
	OpLAX
	OpDCP
	OpISC
	OpANC
	OpALR
	OpARR
	OpANE
	OpLXA
	OpSBX
	OpSHA
	OpSHX
	OpSHY
	OpTAS
	OpLAS
)

var opNames = map[Op]string{
	OpADC: "ADC", OpAND: "AND", OpASL: "ASL", OpBCC: "BCC", OpBCS: "BCS",
	OpBEQ: "BEQ", OpBIT: "BIT", OpBMI: "BMI", OpBNE: "BNE", OpBPL: "BPL",
	OpBRK: "BRK", OpBVC: "BVC", OpBVS: "BVS", OpCLC: "CLC", OpCLD: "CLD",
	OpCLI: "CLI", OpCLV: "CLV", OpCMP: "CMP", OpCPX: "CPX", OpCPY: "CPY",
	OpDEC: "DEC", OpDEX: "DEX", OpDEY: "DEY", OpEOR: "EOR", OpINC: "INC",
	OpINX: "INX", OpINY: "INY", OpJAM: "JAM", OpJMP: "JMP", OpJSR: "JSR",
	OpLDA: "LDA", OpLDX: "LDX", OpLDY: "LDY", OpLSR: "LSR", OpNOP: "NOP",
	OpORA: "ORA", OpPHA: "PHA", OpPHP: "PHP", OpPLA: "PLA", OpPLP: "PLP",
	OpROL: "ROL", OpROR: "ROR", OpRTI: "RTI", OpRTS: "RTS", OpSBC: "SBC",
	OpSEC: "SEC", OpSED: "SED", OpSEI: "SEI", OpSTA: "STA", OpSTX: "STX",
	OpSTY: "STY", OpTAX: "TAX", OpTAY: "TAY", OpTSX: "TSX", OpTXA: "TXA",
	OpTXS: "TXS", OpTYA: "TYA", OpSLO: "SLO", OpRLA: "RLA", OpSRE: "SRE",
	OpRRA: "RRA", OpSAX: "SAX", OpLAX: "LAX", OpDCP: "DCP", OpISC: "ISC",
	OpANC: "ANC", OpALR: "ALR", OpARR: "ARR", OpANE: "ANE", OpLXA: "LXA",
	OpSBX: "SBX", OpSHA: "SHA", OpSHX: "SHX", OpSHY: "SHY", OpTAS: "TAS",
	OpLAS: "LAS",
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return "???"
}

// AddressingMode names the 6502's 13 addressing modes.
type AddressingMode uint8

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Zero
	ZeroX
	ZeroY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect
	IndirectIndexed
	Relative
)

// OpInfo is the pair (Op, AddressingMode) a byte decodes to, plus the three
// booleans the timing engine needs to pick an addressing-mode sub-sequence:
// whether the instruction reads the operand, writes it, or does both
// (read-modify-write).
type OpInfo struct {
	Op             Op
	Mode           AddressingMode
	ReadsOperand   bool
	WritesOperand  bool
	IsRMW          bool
}

func isRMWOp(op Op) bool {
	switch op {
	case OpASL, OpLSR, OpROL, OpROR, OpINC, OpDEC,
		OpSLO, OpRLA, OpSRE, OpRRA, OpDCP, OpISC:
		return true
	}
	return false
}

func isStoreOp(op Op) bool {
	switch op {
	case OpSTA, OpSTX, OpSTY, OpSAX, OpSHA, OpSHX, OpSHY, OpTAS:
		return true
	}
	return false
}

func newOpInfo(op Op, mode AddressingMode) OpInfo {
	rmw := isRMWOp(op)
	store := isStoreOp(op)
	return OpInfo{
		Op:            op,
		Mode:          mode,
		IsRMW:         rmw,
		WritesOperand: rmw || store,
		ReadsOperand:  !store,
	}
}

// decodeTable is the total byte -> OpInfo map covering all 256 opcodes.
var decodeTable [256]OpInfo

func d(b byte, op Op, mode AddressingMode) { decodeTable[b] = newOpInfo(op, mode) }

func init() {
	d(0x00, OpBRK, Implied)
	d(0x01, OpORA, IndexedIndirect)
	d(0x02, OpJAM, Implied)
	d(0x03, OpSLO, IndexedIndirect)
	d(0x04, OpNOP, Zero)
	d(0x05, OpORA, Zero)
	d(0x06, OpASL, Zero)
	d(0x07, OpSLO, Zero)
	d(0x08, OpPHP, Implied)
	d(0x09, OpORA, Immediate)
	d(0x0A, OpASL, Accumulator)
	d(0x0B, OpANC, Immediate)
	d(0x0C, OpNOP, Absolute)
	d(0x0D, OpORA, Absolute)
	d(0x0E, OpASL, Absolute)
	d(0x0F, OpSLO, Absolute)

	d(0x10, OpBPL, Relative)
	d(0x11, OpORA, IndirectIndexed)
	d(0x12, OpJAM, Implied)
	d(0x13, OpSLO, IndirectIndexed)
	d(0x14, OpNOP, ZeroX)
	d(0x15, OpORA, ZeroX)
	d(0x16, OpASL, ZeroX)
	d(0x17, OpSLO, ZeroX)
	d(0x18, OpCLC, Implied)
	d(0x19, OpORA, AbsoluteY)
	d(0x1A, OpNOP, Implied)
	d(0x1B, OpSLO, AbsoluteY)
	d(0x1C, OpNOP, AbsoluteX)
	d(0x1D, OpORA, AbsoluteX)
	d(0x1E, OpASL, AbsoluteX)
	d(0x1F, OpSLO, AbsoluteX)

	d(0x20, OpJSR, Absolute)
	d(0x21, OpAND, IndexedIndirect)
	d(0x22, OpJAM, Implied)
	d(0x23, OpRLA, IndexedIndirect)
	d(0x24, OpBIT, Zero)
	d(0x25, OpAND, Zero)
	d(0x26, OpROL, Zero)
	d(0x27, OpRLA, Zero)
	d(0x28, OpPLP, Implied)
	d(0x29, OpAND, Immediate)
	d(0x2A, OpROL, Accumulator)
	d(0x2B, OpANC, Immediate)
	d(0x2C, OpBIT, Absolute)
	d(0x2D, OpAND, Absolute)
	d(0x2E, OpROL, Absolute)
	d(0x2F, OpRLA, Absolute)

	d(0x30, OpBMI, Relative)
	d(0x31, OpAND, IndirectIndexed)
	d(0x32, OpJAM, Implied)
	d(0x33, OpRLA, IndirectIndexed)
	d(0x34, OpNOP, ZeroX)
	d(0x35, OpAND, ZeroX)
	d(0x36, OpROL, ZeroX)
	d(0x37, OpRLA, ZeroX)
	d(0x38, OpSEC, Implied)
	d(0x39, OpAND, AbsoluteY)
	d(0x3A, OpNOP, Implied)
	d(0x3B, OpRLA, AbsoluteY)
	d(0x3C, OpNOP, AbsoluteX)
	d(0x3D, OpAND, AbsoluteX)
	d(0x3E, OpROL, AbsoluteX)
	d(0x3F, OpRLA, AbsoluteX)

	d(0x40, OpRTI, Implied)
	d(0x41, OpEOR, IndexedIndirect)
	d(0x42, OpJAM, Implied)
	d(0x43, OpSRE, IndexedIndirect)
	d(0x44, OpNOP, Zero)
	d(0x45, OpEOR, Zero)
	d(0x46, OpLSR, Zero)
	d(0x47, OpSRE, Zero)
	d(0x48, OpPHA, Implied)
	d(0x49, OpEOR, Immediate)
	d(0x4A, OpLSR, Accumulator)
	d(0x4B, OpALR, Immediate)
	d(0x4C, OpJMP, Absolute)
	d(0x4D, OpEOR, Absolute)
	d(0x4E, OpLSR, Absolute)
	d(0x4F, OpSRE, Absolute)

	d(0x50, OpBVC, Relative)
	d(0x51, OpEOR, IndirectIndexed)
	d(0x52, OpJAM, Implied)
	d(0x53, OpSRE, IndirectIndexed)
	d(0x54, OpNOP, ZeroX)
	d(0x55, OpEOR, ZeroX)
	d(0x56, OpLSR, ZeroX)
	d(0x57, OpSRE, ZeroX)
	d(0x58, OpCLI, Implied)
	d(0x59, OpEOR, AbsoluteY)
	d(0x5A, OpNOP, Implied)
	d(0x5B, OpSRE, AbsoluteY)
	d(0x5C, OpNOP, AbsoluteX)
	d(0x5D, OpEOR, AbsoluteX)
	d(0x5E, OpLSR, AbsoluteX)
	d(0x5F, OpSRE, AbsoluteX)

	d(0x60, OpRTS, Implied)
	d(0x61, OpADC, IndexedIndirect)
	d(0x62, OpJAM, Implied)
	d(0x63, OpRRA, IndexedIndirect)
	d(0x64, OpNOP, Zero)
	d(0x65, OpADC, Zero)
	d(0x66, OpROR, Zero)
	d(0x67, OpRRA, Zero)
	d(0x68, OpPLA, Implied)
	d(0x69, OpADC, Immediate)
	d(0x6A, OpROR, Accumulator)
	d(0x6B, OpARR, Immediate)
	d(0x6C, OpJMP, Indirect)
	d(0x6D, OpADC, Absolute)
	d(0x6E, OpROR, Absolute)
	d(0x6F, OpRRA, Absolute)

	d(0x70, OpBVS, Relative)
	d(0x71, OpADC, IndirectIndexed)
	d(0x72, OpJAM, Implied)
	d(0x73, OpRRA, IndirectIndexed)
	d(0x74, OpNOP, ZeroX)
	d(0x75, OpADC, ZeroX)
	d(0x76, OpROR, ZeroX)
	d(0x77, OpRRA, ZeroX)
	d(0x78, OpSEI, Implied)
	d(0x79, OpADC, AbsoluteY)
	d(0x7A, OpNOP, Implied)
	d(0x7B, OpRRA, AbsoluteY)
	d(0x7C, OpNOP, AbsoluteX)
	d(0x7D, OpADC, AbsoluteX)
	d(0x7E, OpROR, AbsoluteX)
	d(0x7F, OpRRA, AbsoluteX)

	d(0x80, OpNOP, Immediate)
	d(0x81, OpSTA, IndexedIndirect)
	d(0x82, OpNOP, Immediate)
	d(0x83, OpSAX, IndexedIndirect)
	d(0x84, OpSTY, Zero)
	d(0x85, OpSTA, Zero)
	d(0x86, OpSTX, Zero)
	d(0x87, OpSAX, Zero)
	d(0x88, OpDEY, Implied)
	d(0x89, OpNOP, Immediate)
	d(0x8A, OpTXA, Implied)
	d(0x8B, OpANE, Immediate)
	d(0x8C, OpSTY, Absolute)
	d(0x8D, OpSTA, Absolute)
	d(0x8E, OpSTX, Absolute)
	d(0x8F, OpSAX, Absolute)

	d(0x90, OpBCC, Relative)
	d(0x91, OpSTA, IndirectIndexed)
	d(0x92, OpJAM, Implied)
	d(0x93, OpSHA, IndirectIndexed)
	d(0x94, OpSTY, ZeroX)
	d(0x95, OpSTA, ZeroX)
	d(0x96, OpSTX, ZeroY)
	d(0x97, OpSAX, ZeroY)
	d(0x98, OpTYA, Implied)
	d(0x99, OpSTA, AbsoluteY)
	d(0x9A, OpTXS, Implied)
	d(0x9B, OpTAS, AbsoluteY)
	d(0x9C, OpSHY, AbsoluteX)
	d(0x9D, OpSTA, AbsoluteX)
	d(0x9E, OpSHX, AbsoluteY)
	d(0x9F, OpSHA, AbsoluteY)

	d(0xA0, OpLDY, Immediate)
	d(0xA1, OpLDA, IndexedIndirect)
	d(0xA2, OpLDX, Immediate)
	d(0xA3, OpLAX, IndexedIndirect)
	d(0xA4, OpLDY, Zero)
	d(0xA5, OpLDA, Zero)
	d(0xA6, OpLDX, Zero)
	d(0xA7, OpLAX, Zero)
	d(0xA8, OpTAY, Implied)
	d(0xA9, OpLDA, Immediate)
	d(0xAA, OpTAX, Implied)
	d(0xAB, OpLXA, Immediate)
	d(0xAC, OpLDY, Absolute)
	d(0xAD, OpLDA, Absolute)
	d(0xAE, OpLDX, Absolute)
	d(0xAF, OpLAX, Absolute)

	d(0xB0, OpBCS, Relative)
	d(0xB1, OpLDA, IndirectIndexed)
	d(0xB2, OpJAM, Implied)
	d(0xB3, OpLAX, IndirectIndexed)
	d(0xB4, OpLDY, ZeroX)
	d(0xB5, OpLDA, ZeroX)
	d(0xB6, OpLDX, ZeroY)
	d(0xB7, OpLAX, ZeroY)
	d(0xB8, OpCLV, Implied)
	d(0xB9, OpLDA, AbsoluteY)
	d(0xBA, OpTSX, Implied)
	d(0xBB, OpLAS, AbsoluteY)
	d(0xBC, OpLDY, AbsoluteX)
	d(0xBD, OpLDA, AbsoluteX)
	d(0xBE, OpLDX, AbsoluteY)
	d(0xBF, OpLAX, AbsoluteY)

	d(0xC0, OpCPY, Immediate)
	d(0xC1, OpCMP, IndexedIndirect)
	d(0xC2, OpNOP, Immediate)
	d(0xC3, OpDCP, IndexedIndirect)
	d(0xC4, OpCPY, Zero)
	d(0xC5, OpCMP, Zero)
	d(0xC6, OpDEC, Zero)
	d(0xC7, OpDCP, Zero)
	d(0xC8, OpINY, Implied)
	d(0xC9, OpCMP, Immediate)
	d(0xCA, OpDEX, Implied)
	d(0xCB, OpSBX, Immediate)
	d(0xCC, OpCPY, Absolute)
	d(0xCD, OpCMP, Absolute)
	d(0xCE, OpDEC, Absolute)
	d(0xCF, OpDCP, Absolute)

	d(0xD0, OpBNE, Relative)
	d(0xD1, OpCMP, IndirectIndexed)
	d(0xD2, OpJAM, Implied)
	d(0xD3, OpDCP, IndirectIndexed)
	d(0xD4, OpNOP, ZeroX)
	d(0xD5, OpCMP, ZeroX)
	d(0xD6, OpDEC, ZeroX)
	d(0xD7, OpDCP, ZeroX)
	d(0xD8, OpCLD, Implied)
	d(0xD9, OpCMP, AbsoluteY)
	d(0xDA, OpNOP, Implied)
	d(0xDB, OpDCP, AbsoluteY)
	d(0xDC, OpNOP, AbsoluteX)
	d(0xDD, OpCMP, AbsoluteX)
	d(0xDE, OpDEC, AbsoluteX)
	d(0xDF, OpDCP, AbsoluteX)

	d(0xE0, OpCPX, Immediate)
	d(0xE1, OpSBC, IndexedIndirect)
	d(0xE2, OpNOP, Immediate)
	d(0xE3, OpISC, IndexedIndirect)
	d(0xE4, OpCPX, Zero)
	d(0xE5, OpSBC, Zero)
	d(0xE6, OpINC, Zero)
	d(0xE7, OpISC, Zero)
	d(0xE8, OpINX, Implied)
	d(0xE9, OpSBC, Immediate)
	d(0xEA, OpNOP, Implied)
	d(0xEB, OpSBC, Immediate)
	d(0xEC, OpCPX, Absolute)
	d(0xED, OpSBC, Absolute)
	d(0xEE, OpINC, Absolute)
	d(0xEF, OpISC, Absolute)

	d(0xF0, OpBEQ, Relative)
	d(0xF1, OpSBC, IndirectIndexed)
	d(0xF2, OpJAM, Implied)
	d(0xF3, OpISC, IndirectIndexed)
	d(0xF4, OpNOP, ZeroX)
	d(0xF5, OpSBC, ZeroX)
	d(0xF6, OpINC, ZeroX)
	d(0xF7, OpISC, ZeroX)
	d(0xF8, OpSED, Implied)
	d(0xF9, OpSBC, AbsoluteY)
	d(0xFA, OpNOP, Implied)
	d(0xFB, OpISC, AbsoluteY)
	d(0xFC, OpNOP, AbsoluteX)
	d(0xFD, OpSBC, AbsoluteX)
	d(0xFE, OpINC, AbsoluteX)
	d(0xFF, OpISC, AbsoluteX)
}

// Decode returns the (Op, AddressingMode, flags) for an opcode byte. It is
// a total function: every byte decodes to something.
func Decode(opcode uint8) OpInfo {
	return decodeTable[opcode]
}
