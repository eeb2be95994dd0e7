package x86

import "fmt"

// MaxOperands is the hard operand list capacity of an instruction record.
// No represented x86 instruction carries more operands.
const MaxOperands = 4

// Instruction is the mode independent capability contract of a decoded
// instruction. It is implemented by the instruction records of the
// realmode, protectedmode and longmode packages.
type Instruction interface {
	fmt.Stringer

	// Opcode returns the mnemonic identity of the instruction.
	Opcode() Opcode
	// Operand returns the operand at the given index. The index must be
	// smaller than OperandCount, violating this contract panics.
	Operand(index int) Operand
	// OperandCount returns the number of semantically meaningful
	// operands, at most MaxOperands.
	OperandCount() int
	// SegmentOverrideForOp returns the effective segment for the operand
	// at the given index and whether a segment applies to it at all.
	// The result is a pure function of opcode, prefix state and operand
	// shape, it never depends on addressed memory contents.
	SegmentOverrideForOp(index int) (Segment, bool)
	// MemSize returns the width of the memory access the instruction
	// performs, explicit through a memory operand or implied like a
	// stack push, and whether it accesses memory at all.
	MemSize() (MemoryAccessSize, bool)
	// Len returns the encoded length of the instruction in bytes.
	Len() int
}

// Decoder binds a processor mode to its instruction record type. All
// three mode decoders satisfy this contract. Decoder instances are
// immutable configuration and safe for concurrent use, instruction
// records are single owner.
type Decoder[I Instruction] interface {
	// Decode allocates a fresh instruction record, decodes one
	// instruction from the reader into it and returns it.
	Decode(r Reader) (I, error)
	// DecodeInto decodes one instruction into a caller owned record,
	// avoiding the allocation. On error the record contents are
	// unspecified but never violate the accessor bounds contract.
	DecodeInto(inst I, r Reader) error
}
