package longmode

import (
	"fmt"
	"strings"

	"github.com/retroenv/x86godisasm/arch/x86"
	"github.com/retroenv/x86godisasm/arch/x86/internal/opcodemap"
)

var _ x86.Instruction = &Instruction{}

// stackSlotWidth is the fixed width of an implied stack access in 64 bit
// mode. The operand size override prefix does not change it.
const stackSlotWidth = 8

// Instruction is a decoded 64 bit mode instruction. The record is
// overwritten in place on every decode call. After a failed decode its
// contents are unspecified but the accessor bounds contract still holds.
type Instruction struct {
	opcode       x86.Opcode
	operands     [x86.MaxOperands]x86.Operand
	operandCount int

	prefixes x86.Prefixes
	rex      x86.RexPrefix
	coding   opcodemap.Coding

	opSize   uint8 // effective operand size in bytes
	addrSize uint8 // effective address size in bytes
	length   int
}

func (inst *Instruction) reset() {
	*inst = Instruction{}
}

// Opcode returns the mnemonic identity of the instruction.
func (inst *Instruction) Opcode() x86.Opcode {
	return inst.opcode
}

// Operand returns the operand at the given index. The index must be
// smaller than OperandCount.
func (inst *Instruction) Operand(index int) x86.Operand {
	if index >= inst.operandCount {
		panic(fmt.Sprintf("operand index %d out of range, instruction has %d operands",
			index, inst.operandCount))
	}
	return inst.operands[index]
}

// OperandCount returns the number of operands of the instruction.
func (inst *Instruction) OperandCount() int {
	return inst.operandCount
}

// Len returns the encoded length of the instruction in bytes.
func (inst *Instruction) Len() int {
	return inst.length
}

// Prefixes returns the recorded legacy prefix state.
func (inst *Instruction) Prefixes() x86.Prefixes {
	return inst.prefixes
}

// Rex returns the recorded REX prefix state.
func (inst *Instruction) Rex() x86.RexPrefix {
	return inst.rex
}

// SegmentOverrideForOp returns the effective segment for the operand at
// the given index and whether a segment applies to it at all.
func (inst *Instruction) SegmentOverrideForOp(index int) (x86.Segment, bool) {
	if index >= inst.operandCount {
		return 0, false
	}
	return x86.ResolveSegment(inst.opcode, index, inst.operands[index], inst.prefixes)
}

// MemSize returns the width of the memory access the instruction
// performs. Implied stack accesses are fixed to the 8 byte stack slot
// width in 64 bit mode, only explicit operand forms honor the operand
// size override prefix.
func (inst *Instruction) MemSize() (x86.MemoryAccessSize, bool) {
	switch inst.opcode {
	case x86.OpPush, x86.OpPop:
		if inst.coding == opcodemap.CodingGroup {
			// explicit Ev form, ff /6 and 8f /0
			if width, ok := inst.operands[0].Width(); ok {
				return x86.NewMemoryAccessSize(width), true
			}
		}
		return x86.NewMemoryAccessSize(stackSlotWidth), true

	case x86.OpCall, x86.OpCallf:
		if width, ok := inst.explicitMemWidth(); ok {
			return x86.NewMemoryAccessSize(width), true
		}
		return x86.NewMemoryAccessSize(stackSlotWidth), true

	case x86.OpJmp, x86.OpJmpf:
		if width, ok := inst.explicitMemWidth(); ok {
			return x86.NewMemoryAccessSize(width), true
		}
		return x86.MemoryAccessSize{}, false

	case x86.OpRet, x86.OpRetf, x86.OpIret, x86.OpEnter, x86.OpLeave,
		x86.OpPushf, x86.OpPopf:
		return x86.NewMemoryAccessSize(stackSlotWidth), true

	default:
		if width, ok := inst.explicitMemWidth(); ok {
			return x86.NewMemoryAccessSize(width), true
		}
		return x86.MemoryAccessSize{}, false
	}
}

// explicitMemWidth returns the width of the first memory operand.
func (inst *Instruction) explicitMemWidth() (int, bool) {
	for i := 0; i < inst.operandCount; i++ {
		if inst.operands[i].Kind == x86.OperandMemory {
			return inst.operands[i].Width()
		}
	}
	return 0, false
}

// String renders the instruction in Intel syntax.
func (inst *Instruction) String() string {
	var sb strings.Builder

	if inst.prefixes.Lock {
		sb.WriteString("lock ")
	}
	if _, isString := x86.StringInstructions[inst.opcode]; isString {
		if inst.prefixes.RepNZ {
			sb.WriteString("repnz ")
		} else if inst.prefixes.Rep {
			sb.WriteString("rep ")
		}
	}

	sb.WriteString(inst.opcode.String())
	for i := 0; i < inst.operandCount; i++ {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(", ")
		}
		sb.WriteString(inst.operands[i].String())
	}
	return sb.String()
}
