// Package opcodemap contains the opcode table data shared by the mode
// specific decoders. Each mode owns its final maps, built by copying the
// legacy base tables and patching the entries where long mode reassigns
// or invalidates opcode space.
package opcodemap

import (
	"github.com/retroenv/x86godisasm/arch/x86"
)

// Coding describes the operand encoding shape bound to an opcode table
// entry, in the operand naming of the architecture manual: E is a ModRM
// rm operand, G the ModRM reg operand, S a segment register, I an
// immediate, J a relative branch displacement, O a direct memory offset
// and A a direct far pointer. b/w/d are fixed widths, v and z follow the
// effective operand size.
type Coding uint8

// Operand encoding shapes.
const (
	CodingInvalid Coding = iota
	CodingNone

	// prefix bytes are consumed before table lookup, their entries are
	// never reached
	CodingPrefix

	// escape to the secondary opcode map
	CodingEscape

	// ModRM forms
	CodingEbGb
	CodingEvGv
	CodingGbEb
	CodingGvEv
	CodingGvM  // memory only
	CodingGvMa // bound operand pair, memory only
	CodingGvMp // far pointer memory, memory only
	CodingGvEb
	CodingGvEw
	CodingGvEd
	CodingEwGw
	CodingEvSw
	CodingSwEw
	CodingGvEvIz
	CodingGvEvIb
	CodingEvGvIb
	CodingEvGvCL

	// ModRM forms used by group entries
	CodingEb
	CodingEv
	CodingEbIb
	CodingEvIz
	CodingEvIb
	CodingEb1
	CodingEv1
	CodingEbCL
	CodingEvCL
	CodingEp // far indirect branch, memory only

	// immediate and displacement forms
	CodingALIb
	CodingAXIz
	CodingIb
	CodingIz
	CodingIw
	CodingIwIb
	CodingJb
	CodingJz
	CodingAp

	// register encoded in the low three opcode bits
	CodingPlusRegV
	CodingPlusRegXchg
	CodingPlusRegIb
	CodingPlusRegIv

	// direct memory offset forms
	CodingALOb
	CodingAXOv
	CodingObAL
	CodingOvAX

	// port I/O forms
	CodingInALIb
	CodingInAXIb
	CodingOutIbAL
	CodingOutIbAX
	CodingInALDX
	CodingInAXDX
	CodingOutDXAL
	CodingOutDXAX

	// string instruction forms
	CodingStringB
	CodingStringV

	// implied operands, nothing rendered
	CodingImplied

	// push/pop of a segment register, Arg names the segment
	CodingSegReg

	// opcode extension group, Arg selects the group table and the ModRM
	// reg field the entry within it
	CodingGroup
)

// Entry binds an opcode and its operand encoding shape to a table slot.
type Entry struct {
	Op  x86.Opcode
	C   Coding
	Arg uint8
}

// Group table indexes for Entry.Arg of CodingGroup entries.
const (
	Group1EbIb uint8 = iota
	Group1EvIz
	Group1EvIb
	GroupShiftEbIb
	GroupShiftEvIb
	GroupShiftEb1
	GroupShiftEv1
	GroupShiftEbCL
	GroupShiftEvCL
	Group3Eb
	Group3Ev
	Group4
	Group5
	Group8
	Group11Eb
	Group11Ev
	GroupPop
)

// SignExtend interprets the low n bytes of v as a signed little endian
// value and widens it to 64 bit.
func SignExtend(v uint64, n uint8) int64 {
	shift := 64 - 8*uint(n)
	return int64(v<<shift) >> shift
}

func group(c Coding, ops [8]x86.Opcode) [8]Entry {
	var entries [8]Entry
	for i, op := range ops {
		if op == x86.OpInvalid {
			continue
		}
		entries[i] = Entry{Op: op, C: c}
	}
	return entries
}

var arithmeticGroupOps = [8]x86.Opcode{
	x86.OpAdd, x86.OpOr, x86.OpAdc, x86.OpSbb,
	x86.OpAnd, x86.OpSub, x86.OpXor, x86.OpCmp,
}

var shiftGroupOps = [8]x86.Opcode{
	x86.OpRol, x86.OpRor, x86.OpRcl, x86.OpRcr,
	x86.OpShl, x86.OpShr, x86.OpSal, x86.OpSar,
}

// Groups contains the ModRM reg field opcode extension tables.
var Groups = [...][8]Entry{
	Group1EbIb:     group(CodingEbIb, arithmeticGroupOps),
	Group1EvIz:     group(CodingEvIz, arithmeticGroupOps),
	Group1EvIb:     group(CodingEvIb, arithmeticGroupOps),
	GroupShiftEbIb: group(CodingEbIb, shiftGroupOps),
	GroupShiftEvIb: group(CodingEvIb, shiftGroupOps),
	GroupShiftEb1:  group(CodingEb1, shiftGroupOps),
	GroupShiftEv1:  group(CodingEv1, shiftGroupOps),
	GroupShiftEbCL: group(CodingEbCL, shiftGroupOps),
	GroupShiftEvCL: group(CodingEvCL, shiftGroupOps),
	Group3Eb: {
		{Op: x86.OpTest, C: CodingEbIb},
		{Op: x86.OpTest, C: CodingEbIb},
		{Op: x86.OpNot, C: CodingEb},
		{Op: x86.OpNeg, C: CodingEb},
		{Op: x86.OpMul, C: CodingEb},
		{Op: x86.OpImul, C: CodingEb},
		{Op: x86.OpDiv, C: CodingEb},
		{Op: x86.OpIdiv, C: CodingEb},
	},
	Group3Ev: {
		{Op: x86.OpTest, C: CodingEvIz},
		{Op: x86.OpTest, C: CodingEvIz},
		{Op: x86.OpNot, C: CodingEv},
		{Op: x86.OpNeg, C: CodingEv},
		{Op: x86.OpMul, C: CodingEv},
		{Op: x86.OpImul, C: CodingEv},
		{Op: x86.OpDiv, C: CodingEv},
		{Op: x86.OpIdiv, C: CodingEv},
	},
	Group4: {
		{Op: x86.OpInc, C: CodingEb},
		{Op: x86.OpDec, C: CodingEb},
	},
	Group5: {
		{Op: x86.OpInc, C: CodingEv},
		{Op: x86.OpDec, C: CodingEv},
		{Op: x86.OpCall, C: CodingEv},
		{Op: x86.OpCallf, C: CodingEp},
		{Op: x86.OpJmp, C: CodingEv},
		{Op: x86.OpJmpf, C: CodingEp},
		{Op: x86.OpPush, C: CodingEv},
	},
	Group8: {
		4: {Op: x86.OpBt, C: CodingEvIb},
		5: {Op: x86.OpBts, C: CodingEvIb},
		6: {Op: x86.OpBtr, C: CodingEvIb},
		7: {Op: x86.OpBtc, C: CodingEvIb},
	},
	Group11Eb: {
		{Op: x86.OpMov, C: CodingEbIb},
	},
	Group11Ev: {
		{Op: x86.OpMov, C: CodingEvIz},
	},
	GroupPop: {
		{Op: x86.OpPop, C: CodingEv},
	},
}
