package x86

// Opcode identifies the semantic of a decoded instruction. Multiple
// encodings can map to the same opcode, the register direct and the memory
// forms of mov for example.
type Opcode uint16

// Opcodes supported by the decoders.
const (
	OpInvalid Opcode = iota

	OpAaa
	OpAad
	OpAam
	OpAas
	OpAdc
	OpAdd
	OpAnd
	OpArpl
	OpBound
	OpBsf
	OpBsr
	OpBswap
	OpBt
	OpBtc
	OpBtr
	OpBts
	OpCall
	OpCallf
	OpCbw
	OpCdq
	OpCdqe
	OpClc
	OpCld
	OpCli
	OpCmc
	OpCmova
	OpCmovae
	OpCmovb
	OpCmovbe
	OpCmovg
	OpCmovge
	OpCmovl
	OpCmovle
	OpCmovno
	OpCmovnp
	OpCmovns
	OpCmovnz
	OpCmovo
	OpCmovp
	OpCmovs
	OpCmovz
	OpCmp
	OpCmps
	OpCmpxchg
	OpCpuid
	OpCqo
	OpCwd
	OpCwde
	OpDaa
	OpDas
	OpDec
	OpDiv
	OpEnter
	OpHlt
	OpIdiv
	OpImul
	OpIn
	OpInc
	OpIns
	OpInt
	OpInt1
	OpInt3
	OpInto
	OpIret
	OpJa
	OpJae
	OpJb
	OpJbe
	OpJcxz
	OpJecxz
	OpJg
	OpJge
	OpJl
	OpJle
	OpJmp
	OpJmpf
	OpJno
	OpJnp
	OpJns
	OpJnz
	OpJo
	OpJp
	OpJrcxz
	OpJs
	OpJz
	OpLahf
	OpLds
	OpLea
	OpLeave
	OpLes
	OpLods
	OpLoop
	OpLoopnz
	OpLoopz
	OpMov
	OpMovs
	OpMovsx
	OpMovsxd
	OpMovzx
	OpMul
	OpNeg
	OpNop
	OpNot
	OpOr
	OpOut
	OpOuts
	OpPop
	OpPopa
	OpPopf
	OpPush
	OpPusha
	OpPushf
	OpRcl
	OpRcr
	OpRdmsr
	OpRdtsc
	OpRet
	OpRetf
	OpRol
	OpRor
	OpSahf
	OpSal
	OpSalc
	OpSar
	OpSbb
	OpScas
	OpSeta
	OpSetae
	OpSetb
	OpSetbe
	OpSetg
	OpSetge
	OpSetl
	OpSetle
	OpSetno
	OpSetnp
	OpSetns
	OpSetnz
	OpSeto
	OpSetp
	OpSets
	OpSetz
	OpShl
	OpShld
	OpShr
	OpShrd
	OpStc
	OpStd
	OpSti
	OpStos
	OpSub
	OpSyscall
	OpSysenter
	OpSysexit
	OpSysret
	OpTest
	OpWait
	OpWrmsr
	OpXadd
	OpXchg
	OpXlat
	OpXor
	OpUd2
)

var opcodeNames = map[Opcode]string{
	OpInvalid:  "invalid",
	OpAaa:      "aaa",
	OpAad:      "aad",
	OpAam:      "aam",
	OpAas:      "aas",
	OpAdc:      "adc",
	OpAdd:      "add",
	OpAnd:      "and",
	OpArpl:     "arpl",
	OpBound:    "bound",
	OpBsf:      "bsf",
	OpBsr:      "bsr",
	OpBswap:    "bswap",
	OpBt:       "bt",
	OpBtc:      "btc",
	OpBtr:      "btr",
	OpBts:      "bts",
	OpCall:     "call",
	OpCallf:    "callf",
	OpCbw:      "cbw",
	OpCdq:      "cdq",
	OpCdqe:     "cdqe",
	OpClc:      "clc",
	OpCld:      "cld",
	OpCli:      "cli",
	OpCmc:      "cmc",
	OpCmova:    "cmova",
	OpCmovae:   "cmovae",
	OpCmovb:    "cmovb",
	OpCmovbe:   "cmovbe",
	OpCmovg:    "cmovg",
	OpCmovge:   "cmovge",
	OpCmovl:    "cmovl",
	OpCmovle:   "cmovle",
	OpCmovno:   "cmovno",
	OpCmovnp:   "cmovnp",
	OpCmovns:   "cmovns",
	OpCmovnz:   "cmovnz",
	OpCmovo:    "cmovo",
	OpCmovp:    "cmovp",
	OpCmovs:    "cmovs",
	OpCmovz:    "cmovz",
	OpCmp:      "cmp",
	OpCmps:     "cmps",
	OpCmpxchg:  "cmpxchg",
	OpCpuid:    "cpuid",
	OpCqo:      "cqo",
	OpCwd:      "cwd",
	OpCwde:     "cwde",
	OpDaa:      "daa",
	OpDas:      "das",
	OpDec:      "dec",
	OpDiv:      "div",
	OpEnter:    "enter",
	OpHlt:      "hlt",
	OpIdiv:     "idiv",
	OpImul:     "imul",
	OpIn:       "in",
	OpInc:      "inc",
	OpIns:      "ins",
	OpInt:      "int",
	OpInt1:     "int1",
	OpInt3:     "int3",
	OpInto:     "into",
	OpIret:     "iret",
	OpJa:       "ja",
	OpJae:      "jae",
	OpJb:       "jb",
	OpJbe:      "jbe",
	OpJcxz:     "jcxz",
	OpJecxz:    "jecxz",
	OpJg:       "jg",
	OpJge:      "jge",
	OpJl:       "jl",
	OpJle:      "jle",
	OpJmp:      "jmp",
	OpJmpf:     "jmpf",
	OpJno:      "jno",
	OpJnp:      "jnp",
	OpJns:      "jns",
	OpJnz:      "jnz",
	OpJo:       "jo",
	OpJp:       "jp",
	OpJrcxz:    "jrcxz",
	OpJs:       "js",
	OpJz:       "jz",
	OpLahf:     "lahf",
	OpLds:      "lds",
	OpLea:      "lea",
	OpLeave:    "leave",
	OpLes:      "les",
	OpLods:     "lods",
	OpLoop:     "loop",
	OpLoopnz:   "loopnz",
	OpLoopz:    "loopz",
	OpMov:      "mov",
	OpMovs:     "movs",
	OpMovsx:    "movsx",
	OpMovsxd:   "movsxd",
	OpMovzx:    "movzx",
	OpMul:      "mul",
	OpNeg:      "neg",
	OpNop:      "nop",
	OpNot:      "not",
	OpOr:       "or",
	OpOut:      "out",
	OpOuts:     "outs",
	OpPop:      "pop",
	OpPopa:     "popa",
	OpPopf:     "popf",
	OpPush:     "push",
	OpPusha:    "pusha",
	OpPushf:    "pushf",
	OpRcl:      "rcl",
	OpRcr:      "rcr",
	OpRdmsr:    "rdmsr",
	OpRdtsc:    "rdtsc",
	OpRet:      "ret",
	OpRetf:     "retf",
	OpRol:      "rol",
	OpRor:      "ror",
	OpSahf:     "sahf",
	OpSal:      "sal",
	OpSalc:     "salc",
	OpSar:      "sar",
	OpSbb:      "sbb",
	OpScas:     "scas",
	OpSeta:     "seta",
	OpSetae:    "setae",
	OpSetb:     "setb",
	OpSetbe:    "setbe",
	OpSetg:     "setg",
	OpSetge:    "setge",
	OpSetl:     "setl",
	OpSetle:    "setle",
	OpSetno:    "setno",
	OpSetnp:    "setnp",
	OpSetns:    "setns",
	OpSetnz:    "setnz",
	OpSeto:     "seto",
	OpSetp:     "setp",
	OpSets:     "sets",
	OpSetz:     "setz",
	OpShl:      "shl",
	OpShld:     "shld",
	OpShr:      "shr",
	OpShrd:     "shrd",
	OpStc:      "stc",
	OpStd:      "std",
	OpSti:      "sti",
	OpStos:     "stos",
	OpSub:      "sub",
	OpSyscall:  "syscall",
	OpSysenter: "sysenter",
	OpSysexit:  "sysexit",
	OpSysret:   "sysret",
	OpTest:     "test",
	OpWait:     "wait",
	OpWrmsr:    "wrmsr",
	OpXadd:     "xadd",
	OpXchg:     "xchg",
	OpXlat:     "xlat",
	OpXor:      "xor",
	OpUd2:      "ud2",
}

// String returns the lower case Intel mnemonic of the opcode.
func (op Opcode) String() string {
	name, ok := opcodeNames[op]
	if !ok {
		return "invalid"
	}
	return name
}

// BranchingInstructions contains all opcodes that change the program
// counter depending on a condition or unconditionally.
var BranchingInstructions = map[Opcode]struct{}{
	OpJa: {}, OpJae: {}, OpJb: {}, OpJbe: {}, OpJcxz: {}, OpJecxz: {},
	OpJg: {}, OpJge: {}, OpJl: {}, OpJle: {}, OpJmp: {}, OpJmpf: {},
	OpJno: {}, OpJnp: {}, OpJns: {}, OpJnz: {}, OpJo: {}, OpJp: {},
	OpJrcxz: {}, OpJs: {}, OpJz: {}, OpLoop: {}, OpLoopnz: {}, OpLoopz: {},
}

// CallInstructions contains all opcodes that call a subroutine.
var CallInstructions = map[Opcode]struct{}{
	OpCall: {}, OpCallf: {},
}

// ReturnInstructions contains all opcodes that return from a subroutine
// or interrupt handler.
var ReturnInstructions = map[Opcode]struct{}{
	OpRet: {}, OpRetf: {}, OpIret: {}, OpSysret: {}, OpSysexit: {},
}

// StringInstructions contains all opcodes with architecturally fixed
// segment usage on their rSI/rDI operands.
var StringInstructions = map[Opcode]struct{}{
	OpCmps: {}, OpIns: {}, OpLods: {}, OpMovs: {}, OpOuts: {},
	OpScas: {}, OpStos: {},
}

// StackInstructions contains all opcodes with an implied stack access
// that is not represented by a syntactic memory operand.
var StackInstructions = map[Opcode]struct{}{
	OpCall: {}, OpCallf: {}, OpEnter: {}, OpInt: {}, OpInt1: {},
	OpInt3: {}, OpInto: {}, OpIret: {}, OpLeave: {}, OpPop: {},
	OpPopa: {}, OpPopf: {}, OpPush: {}, OpPusha: {}, OpPushf: {},
	OpRet: {}, OpRetf: {},
}

// SystemInstructions contains all opcodes that require system level
// privileges or switch privilege levels. Decoders can be configured to
// reject them.
var SystemInstructions = map[Opcode]struct{}{
	OpHlt: {}, OpRdmsr: {}, OpSyscall: {}, OpSysenter: {}, OpSysexit: {},
	OpSysret: {}, OpWrmsr: {},
}

// LockableInstructions contains all opcodes that permit a lock prefix.
// The lock prefix additionally requires a memory destination operand.
var LockableInstructions = map[Opcode]struct{}{
	OpAdc: {}, OpAdd: {}, OpAnd: {}, OpBtc: {}, OpBtr: {}, OpBts: {},
	OpCmpxchg: {}, OpDec: {}, OpInc: {}, OpNeg: {}, OpNot: {}, OpOr: {},
	OpSbb: {}, OpSub: {}, OpXadd: {}, OpXchg: {}, OpXor: {},
}

// NotExecutingFollowingOpcodeInstructions contains all opcodes after
// which execution does not continue at the following instruction.
var NotExecutingFollowingOpcodeInstructions = map[Opcode]struct{}{
	OpHlt: {}, OpIret: {}, OpJmp: {}, OpJmpf: {}, OpRet: {}, OpRetf: {},
	OpSysret: {}, OpUd2: {},
}
