package cpu

// These tables map each Op to the Core method that executes it, split by
// the shape of data the addressing-mode state machines in cpu.go hand
// them: a read operand, a read-modify-write operand, or nothing at all.

type readOpFunc func(c *Core, data uint8)
type rmwOpFunc func(c *Core, data uint8) uint8
type impliedOpFunc func(c *Core)
type branchPredFunc func(p P) bool

var readOps = map[Op]readOpFunc{
	OpADC: (*Core).ExecAdc,
	OpAND: (*Core).ExecAnd,
	OpBIT: (*Core).ExecBit,
	OpCMP: (*Core).ExecCmp,
	OpCPX: (*Core).ExecCpx,
	OpCPY: (*Core).ExecCpy,
	OpEOR: (*Core).ExecEor,
	OpLDA: (*Core).ExecLda,
	OpLDX: (*Core).ExecLdx,
	OpLDY: (*Core).ExecLdy,
	OpORA: (*Core).ExecOra,
	OpSBC: (*Core).ExecSbc,
	OpNOP: func(c *Core, data uint8) {},
	OpLAX: (*Core).ExecLax,
	OpLAS: (*Core).ExecLas,
	OpANC: (*Core).ExecAnc,
	OpALR: (*Core).ExecAlr,
	OpARR: (*Core).ExecArr,
	OpANE: (*Core).ExecAne,
	OpLXA: (*Core).ExecLxa,
	OpSBX: (*Core).ExecSbx,
}

var rmwOps = map[Op]rmwOpFunc{
	OpASL: (*Core).ExecAsl,
	OpLSR: (*Core).ExecLsr,
	OpROL: (*Core).ExecRol,
	OpROR: (*Core).ExecRor,
	OpINC: (*Core).ExecInc,
	OpDEC: (*Core).ExecDec,
	OpSLO: (*Core).ExecSlo,
	OpRLA: (*Core).ExecRla,
	OpSRE: (*Core).ExecSre,
	OpRRA: (*Core).ExecRra,
	OpDCP: (*Core).ExecDcp,
	OpISC: (*Core).ExecIsc,
}

var impliedOps = map[Op]impliedOpFunc{
	OpCLC: (*Core).ExecClc,
	OpSEC: (*Core).ExecSec,
	OpCLI: (*Core).ExecCli,
	OpSEI: (*Core).ExecSei,
	OpCLV: (*Core).ExecClv,
	OpCLD: (*Core).ExecCld,
	OpSED: (*Core).ExecSed,
	OpTAX: (*Core).ExecTax,
	OpTAY: (*Core).ExecTay,
	OpTXA: (*Core).ExecTxa,
	OpTYA: (*Core).ExecTya,
	OpTSX: (*Core).ExecTsx,
	OpTXS: (*Core).ExecTxs,
	OpINX: (*Core).ExecInx,
	OpINY: (*Core).ExecIny,
	OpDEX: (*Core).ExecDex,
	OpDEY: (*Core).ExecDey,
	OpNOP: func(c *Core) {},
}

var accOps = map[Op]impliedOpFunc{
	OpASL: (*Core).ExecAslAcc,
	OpLSR: (*Core).ExecLsrAcc,
	OpROL: (*Core).ExecRolAcc,
	OpROR: (*Core).ExecRorAcc,
}

var branchOps = map[Op]branchPredFunc{
	OpBCC: func(p P) bool { return !p.C() },
	OpBCS: func(p P) bool { return p.C() },
	OpBEQ: func(p P) bool { return p.Z() },
	OpBNE: func(p P) bool { return !p.Z() },
	OpBPL: func(p P) bool { return !p.N() },
	OpBMI: func(p P) bool { return p.N() },
	OpBVC: func(p P) bool { return !p.V() },
	OpBVS: func(p P) bool { return p.V() },
}
