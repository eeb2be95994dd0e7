package x86

import (
	"fmt"
	"strings"
)

// OperandKind is the variant tag of an operand.
type OperandKind uint8

// Operand kinds.
const (
	OperandNone OperandKind = iota
	OperandRegister
	OperandImmediate
	OperandMemory
	OperandFarPointer
	OperandRelative
)

// Operand is a tagged variant describing one instruction operand.
// The zero value is the absent operand.
type Operand struct {
	Kind OperandKind

	// register operand
	Reg RegSpec

	// memory operand
	Base       RegSpec
	Index      RegSpec
	Scale      uint8
	Disp       int64
	Segment    Segment
	SegmentSet bool // explicit override or architecturally fixed segment

	// immediate operand or relative branch displacement, sign extended
	// for signed encodings
	Imm      int64
	Unsigned bool

	// far pointer operand
	FarSegment uint16
	FarOffset  uint32

	// data width in bytes for memory and immediate operands, derived
	// from the effective operand size at decode time, 0 if the operand
	// carries no data width
	DataWidth uint8
}

// RegisterOperand creates a register operand.
func RegisterOperand(reg RegSpec) Operand {
	return Operand{Kind: OperandRegister, Reg: reg}
}

// ImmediateOperand creates a sized signed immediate operand.
func ImmediateOperand(value int64, width uint8) Operand {
	return Operand{Kind: OperandImmediate, Imm: value, DataWidth: width}
}

// UnsignedImmediateOperand creates a sized unsigned immediate operand.
func UnsignedImmediateOperand(value uint64, width uint8) Operand {
	return Operand{Kind: OperandImmediate, Imm: int64(value), Unsigned: true, DataWidth: width}
}

// MemoryOperand creates a memory operand.
func MemoryOperand(base, index RegSpec, scale uint8, disp int64, width uint8) Operand {
	return Operand{
		Kind:      OperandMemory,
		Base:      base,
		Index:     index,
		Scale:     scale,
		Disp:      disp,
		DataWidth: width,
	}
}

// RelativeOperand creates a branch target relative to the end of the
// decoded instruction.
func RelativeOperand(disp int64) Operand {
	return Operand{Kind: OperandRelative, Imm: disp}
}

// FarPointerOperand creates an absolute segment:offset branch target.
func FarPointerOperand(segment uint16, offset uint32, offsetWidth uint8) Operand {
	return Operand{
		Kind:       OperandFarPointer,
		FarSegment: segment,
		FarOffset:  offset,
		DataWidth:  offsetWidth,
	}
}

// WithSegment returns a copy of the memory operand with its segment set.
func (o Operand) WithSegment(segment Segment) Operand {
	o.Segment = segment
	o.SegmentSet = true
	return o
}

// Width returns the data width of the operand in bytes. Registers report
// their own architectural width, memory and immediate operands the width
// derived from the effective operand size. Branch targets and absent
// operands report no width.
func (o Operand) Width() (int, bool) {
	switch o.Kind {
	case OperandRegister:
		return o.Reg.Width(), true
	case OperandImmediate, OperandMemory, OperandFarPointer:
		if o.DataWidth == 0 {
			return 0, false
		}
		return int(o.DataWidth), true
	case OperandNone, OperandRelative:
		return 0, false
	default:
		return 0, false
	}
}

// String renders the operand in Intel syntax.
func (o Operand) String() string {
	switch o.Kind {
	case OperandRegister:
		return o.Reg.Name()

	case OperandImmediate:
		if o.Unsigned {
			return fmt.Sprintf("0x%x", uint64(o.Imm))
		}
		return formatSigned(o.Imm)

	case OperandMemory:
		return o.formatMemory()

	case OperandRelative:
		if o.Imm < 0 {
			return fmt.Sprintf("$-0x%x", uint64(-o.Imm))
		}
		return fmt.Sprintf("$+0x%x", uint64(o.Imm))

	case OperandFarPointer:
		return fmt.Sprintf("0x%04x:0x%x", o.FarSegment, o.FarOffset)

	case OperandNone:
		return ""

	default:
		return ""
	}
}

func (o Operand) formatMemory() string {
	var sb strings.Builder

	if o.DataWidth != 0 {
		sb.WriteString(NewMemoryAccessSize(int(o.DataWidth)).SizeName())
		sb.WriteByte(' ')
	}
	sb.WriteByte('[')
	if o.SegmentSet {
		sb.WriteString(o.Segment.String())
		sb.WriteByte(':')
	}

	hasTerm := false
	if o.Base.IsSet() {
		sb.WriteString(o.Base.Name())
		hasTerm = true
	}
	if o.Index.IsSet() {
		if hasTerm {
			sb.WriteByte('+')
		}
		sb.WriteString(o.Index.Name())
		if o.Scale > 1 {
			fmt.Fprintf(&sb, "*%d", o.Scale)
		}
		hasTerm = true
	}
	if o.Disp != 0 || !hasTerm {
		switch {
		case !hasTerm:
			fmt.Fprintf(&sb, "0x%x", uint64(o.Disp))
		case o.Disp < 0:
			fmt.Fprintf(&sb, "-0x%x", uint64(-o.Disp))
		default:
			fmt.Fprintf(&sb, "+0x%x", uint64(o.Disp))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}

func formatSigned(value int64) string {
	if value < 0 {
		return fmt.Sprintf("-0x%x", uint64(-value))
	}
	return fmt.Sprintf("0x%x", uint64(value))
}
