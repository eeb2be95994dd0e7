package longmode

import (
	"github.com/retroenv/x86godisasm/arch/x86"
	"github.com/retroenv/x86godisasm/arch/x86/internal/opcodemap"
)

type modRM struct {
	mod uint8
	reg uint8
	rm  uint8
}

func (inst *Instruction) readByte(r x86.Reader) (byte, error) {
	if inst.length >= x86.MaxInstructionLen {
		return 0, x86.NewDecodeError(x86.ErrTooLong, inst.length)
	}
	b, err := r.ReadByte()
	if err != nil {
		return 0, x86.NewDecodeError(x86.ErrExhaustedInput, inst.length)
	}
	inst.length++
	return b, nil
}

// readUint reads n little endian bytes.
func (inst *Instruction) readUint(r x86.Reader, n uint8) (uint64, error) {
	var value uint64
	for i := uint8(0); i < n; i++ {
		b, err := inst.readByte(r)
		if err != nil {
			return 0, err
		}
		value |= uint64(b) << (8 * i)
	}
	return value, nil
}

func (inst *Instruction) addOperand(op x86.Operand) {
	inst.operands[inst.operandCount] = op
	inst.operandCount++
}

func (d InstDecoder) readModRM(inst *Instruction, r x86.Reader) (modRM, error) {
	b, err := inst.readByte(r)
	if err != nil {
		return modRM{}, err
	}
	return modRM{
		mod: b >> 6,
		reg: (b >> 3) & 7,
		rm:  b & 7,
	}, nil
}

// regOperand synthesizes the register named by the ModRM reg field,
// extended by REX.R.
func (d InstDecoder) regOperand(inst *Instruction, m modRM, width uint8) x86.Operand {
	index := m.reg
	if inst.rex.R {
		index |= 8
	}
	return x86.RegisterOperand(x86.GPReg(int(width), index, inst.rex.Present))
}

// rmOperand synthesizes the operand named by the ModRM mod and rm
// fields, a register for register direct mode, a memory operand
// otherwise.
func (d InstDecoder) rmOperand(inst *Instruction, r x86.Reader, m modRM,
	width uint8) (x86.Operand, error) {

	if m.mod == 3 {
		index := m.rm
		if inst.rex.B {
			index |= 8
		}
		return x86.RegisterOperand(x86.GPReg(int(width), index, inst.rex.Present)), nil
	}
	return d.memOperand(inst, r, m, width)
}

// memOperand synthesizes a memory operand, reading the SIB byte and
// displacement bytes as the encoding requires. mod=00 rm=101 is RIP
// relative addressing in 64 bit mode.
func (d InstDecoder) memOperand(inst *Instruction, r x86.Reader, m modRM,
	width uint8) (x86.Operand, error) {

	var base, index x86.RegSpec
	scale := uint8(1)
	dispSize := uint8(0)

	switch {
	case m.rm == 4:
		sib, err := inst.readByte(r)
		if err != nil {
			return x86.Operand{}, err
		}
		scale = 1 << (sib >> 6)

		indexNum := (sib >> 3) & 7
		if inst.rex.X {
			indexNum |= 8
		}
		if indexNum != 4 { // encoded index 4 without REX.X means no index
			index = d.addrReg(inst, indexNum)
		}

		baseNum := sib & 7
		if inst.rex.B {
			baseNum |= 8
		}
		if sib&7 == 5 && m.mod == 0 {
			dispSize = 4 // no base, disp32
		} else {
			base = d.addrReg(inst, baseNum)
		}

	case m.mod == 0 && m.rm == 5:
		base = x86.RegSpec{Class: x86.RegClassRIP}
		dispSize = 4

	default:
		baseNum := m.rm
		if inst.rex.B {
			baseNum |= 8
		}
		base = d.addrReg(inst, baseNum)
	}

	switch m.mod {
	case 1:
		dispSize = 1
	case 2:
		dispSize = 4
	}

	var disp int64
	if dispSize > 0 {
		value, err := inst.readUint(r, dispSize)
		if err != nil {
			return x86.Operand{}, err
		}
		disp = opcodemap.SignExtend(value, dispSize)
	}

	op := x86.MemoryOperand(base, index, scale, disp, width)
	if inst.prefixes.HasSegment {
		op = op.WithSegment(inst.prefixes.Segment)
	}
	return op, nil
}

// addrReg returns the base or index register for the effective address
// size.
func (d InstDecoder) addrReg(inst *Instruction, index uint8) x86.RegSpec {
	if inst.addrSize == 4 {
		return x86.RegSpec{Class: x86.RegClassDword, Index: index}
	}
	return x86.RegSpec{Class: x86.RegClassQword, Index: index}
}

// readImmOperand reads an immediate of the given size and appends it.
func (d InstDecoder) readImmOperand(inst *Instruction, r x86.Reader,
	size uint8, unsigned bool) error {

	value, err := inst.readUint(r, size)
	if err != nil {
		return err
	}
	if unsigned {
		inst.addOperand(x86.UnsignedImmediateOperand(value, size))
	} else {
		inst.addOperand(x86.ImmediateOperand(opcodemap.SignExtend(value, size), size))
	}
	return nil
}

// readRelative reads a branch displacement relative to the end of the
// instruction.
func (d InstDecoder) readRelative(inst *Instruction, r x86.Reader, size uint8) error {
	value, err := inst.readUint(r, size)
	if err != nil {
		return err
	}
	inst.addOperand(x86.RelativeOperand(opcodemap.SignExtend(value, size)))
	return nil
}

// moffsOperands synthesizes the direct memory offset forms of mov.
func (d InstDecoder) moffsOperands(inst *Instruction, r x86.Reader,
	coding opcodemap.Coding) error {

	offset, err := inst.readUint(r, inst.addrSize)
	if err != nil {
		return err
	}

	width := uint8(1)
	accumulator := x86.RegisterOperand(x86.AL())
	if coding == opcodemap.CodingAXOv || coding == opcodemap.CodingOvAX {
		width = inst.opSize
		accumulator = x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false))
	}

	mem := x86.MemoryOperand(x86.RegSpec{}, x86.RegSpec{}, 1, int64(offset), width)
	if inst.prefixes.HasSegment {
		mem = mem.WithSegment(inst.prefixes.Segment)
	}

	if coding == opcodemap.CodingObAL || coding == opcodemap.CodingOvAX {
		inst.addOperand(mem)
		inst.addOperand(accumulator)
	} else {
		inst.addOperand(accumulator)
		inst.addOperand(mem)
	}
	return nil
}

// stringOperands synthesizes the operand pair of the string
// instructions. The rDI side is architecturally bound to ES, the rSI
// side defaults to DS and honors a segment override.
func (d InstDecoder) stringOperands(inst *Instruction, width uint8) {
	si := x86.MemoryOperand(d.addrReg(inst, 6), x86.RegSpec{}, 1, 0, width)
	di := x86.MemoryOperand(d.addrReg(inst, 7), x86.RegSpec{}, 1, 0, width)
	accumulator := x86.RegisterOperand(x86.GPReg(int(width), 0, false))
	dx := x86.RegisterOperand(x86.DX())

	switch inst.opcode {
	case x86.OpMovs:
		inst.addOperand(di.WithSegment(x86.ES))
		inst.addOperand(d.siWithSegment(inst, si))
	case x86.OpCmps:
		inst.addOperand(d.siWithSegment(inst, si))
		inst.addOperand(di.WithSegment(x86.ES))
	case x86.OpStos:
		inst.addOperand(di.WithSegment(x86.ES))
		inst.addOperand(accumulator)
	case x86.OpLods:
		inst.addOperand(accumulator)
		inst.addOperand(d.siWithSegment(inst, si))
	case x86.OpScas:
		inst.addOperand(accumulator)
		inst.addOperand(di.WithSegment(x86.ES))
	case x86.OpIns:
		inst.addOperand(di.WithSegment(x86.ES))
		inst.addOperand(dx)
	case x86.OpOuts:
		inst.addOperand(dx)
		inst.addOperand(d.siWithSegment(inst, si))
	default:
	}
}

func (d InstDecoder) siWithSegment(inst *Instruction, si x86.Operand) x86.Operand {
	if inst.prefixes.HasSegment {
		return si.WithSegment(inst.prefixes.Segment)
	}
	return si.WithSegment(x86.DS)
}
