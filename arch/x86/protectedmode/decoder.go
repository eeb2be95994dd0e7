package protectedmode

import (
	"github.com/retroenv/x86godisasm/arch/x86"
	"github.com/retroenv/x86godisasm/arch/x86/internal/opcodemap"
)

var _ x86.Decoder[*Instruction] = InstDecoder{}

// InstDecoder decodes 32 bit mode instructions. It is immutable
// configuration and safe for concurrent use from multiple goroutines
// against independent readers and instruction records. The zero value
// accepts every instruction this engine knows.
type InstDecoder struct {
	noSystem bool
}

// NewDecoder returns a decoder accepting all supported instructions.
func NewDecoder() InstDecoder {
	return InstDecoder{}
}

// WithoutSystemInstructions returns a decoder that reports system level
// instructions like sysenter or hlt as invalid opcodes.
func (d InstDecoder) WithoutSystemInstructions() InstDecoder {
	d.noSystem = true
	return d
}

// Decode decodes one instruction from the reader into a fresh record.
func (d InstDecoder) Decode(r x86.Reader) (*Instruction, error) {
	inst := &Instruction{}
	if err := d.DecodeInto(inst, r); err != nil {
		return nil, err
	}
	return inst, nil
}

// DecodeInto decodes one instruction from the reader into a caller owned
// record, overwriting it in place. On error the record contents are
// unspecified but never violate the accessor bounds contract.
func (d InstDecoder) DecodeInto(inst *Instruction, r x86.Reader) error {
	inst.reset()

	b, err := d.decodePrefixes(inst, r)
	if err != nil {
		return err
	}

	inst.opSize = 4
	if inst.prefixes.OperandSize {
		inst.opSize = 2
	}
	inst.addrSize = 4
	if inst.prefixes.AddressSize {
		inst.addrSize = 2
	}

	entry, opcodeByte, err := d.identifyOpcode(inst, r, b)
	if err != nil {
		return err
	}

	if err := d.decodeOperands(inst, r, entry, opcodeByte); err != nil {
		return err
	}

	return d.validatePrefixes(inst)
}

// decodePrefixes accumulates legacy prefixes and returns the first
// opcode byte. There is no REX stage in 32 bit mode, bytes in the 0x40
// to 0x4f range are the inc/dec opcodes. The instruction length limit
// bounds pathological prefix runs.
func (d InstDecoder) decodePrefixes(inst *Instruction, r x86.Reader) (byte, error) {
	for {
		b, err := inst.readByte(r)
		if err != nil {
			return 0, err
		}
		if !inst.prefixes.ConsumeLegacyPrefix(b) {
			return b, nil
		}
	}
}

// identifyOpcode resolves the opcode byte, following the 0x0f escape to
// the secondary map if needed.
func (d InstDecoder) identifyOpcode(inst *Instruction, r x86.Reader,
	b byte) (opcodemap.Entry, byte, error) {

	entry := oneByteMap[b]
	if entry.C == opcodemap.CodingEscape {
		b2, err := inst.readByte(r)
		if err != nil {
			return opcodemap.Entry{}, 0, err
		}
		entry = twoByteMap[b2]
		b = b2
	}

	if entry.C == opcodemap.CodingInvalid || entry.C == opcodemap.CodingPrefix {
		return opcodemap.Entry{}, 0, x86.NewDecodeError(x86.ErrInvalidOpcode, inst.length)
	}
	return entry, b, nil
}

//nolint:funlen,cyclop // one case per operand encoding shape
func (d InstDecoder) decodeOperands(inst *Instruction, r x86.Reader,
	entry opcodemap.Entry, opcodeByte byte) error {

	var m modRM
	haveModRM := false

	if entry.C == opcodemap.CodingGroup {
		var err error
		if m, err = d.readModRM(inst, r); err != nil {
			return err
		}
		haveModRM = true
		entry = opcodemap.Groups[entry.Arg][m.reg]
		if entry.C == opcodemap.CodingInvalid {
			return x86.NewDecodeError(x86.ErrInvalidOpcode, inst.length)
		}
		inst.coding = opcodemap.CodingGroup
	} else {
		inst.coding = entry.C
	}

	if d.noSystem {
		if _, ok := x86.SystemInstructions[entry.Op]; ok {
			return x86.NewDecodeError(x86.ErrInvalidOpcode, inst.length)
		}
	}
	inst.opcode = entry.Op

	readModRM := func() error {
		if haveModRM {
			return nil
		}
		var err error
		if m, err = d.readModRM(inst, r); err != nil {
			return err
		}
		haveModRM = true
		return nil
	}

	switch entry.C {
	case opcodemap.CodingNone, opcodemap.CodingImplied:
		d.adjustImpliedOpcode(inst)

	case opcodemap.CodingEbGb:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, 1, 1, false)

	case opcodemap.CodingEvGv:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, inst.opSize, inst.opSize, false)

	case opcodemap.CodingGbEb:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, 1, 1, true)

	case opcodemap.CodingGvEv:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, inst.opSize, inst.opSize, true)

	case opcodemap.CodingGvEb:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, inst.opSize, 1, true)

	case opcodemap.CodingGvEw:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, inst.opSize, 2, true)

	case opcodemap.CodingEwGw:
		if err := readModRM(); err != nil {
			return err
		}
		return d.modRMOperands(inst, r, m, 2, 2, false)

	case opcodemap.CodingGvM:
		if err := readModRM(); err != nil {
			return err
		}
		if m.mod == 3 {
			return x86.NewDecodeError(x86.ErrInvalidOperand, inst.length)
		}
		inst.addOperand(d.regOperand(m, inst.opSize))
		mem, err := d.memOperand(inst, r, m, 0)
		if err != nil {
			return err
		}
		inst.addOperand(mem)

	case opcodemap.CodingGvMa:
		if err := readModRM(); err != nil {
			return err
		}
		if m.mod == 3 {
			return x86.NewDecodeError(x86.ErrInvalidOperand, inst.length)
		}
		inst.addOperand(d.regOperand(m, inst.opSize))
		mem, err := d.memOperand(inst, r, m, inst.opSize*2)
		if err != nil {
			return err
		}
		inst.addOperand(mem)

	case opcodemap.CodingGvMp:
		if err := readModRM(); err != nil {
			return err
		}
		if m.mod == 3 {
			return x86.NewDecodeError(x86.ErrInvalidOperand, inst.length)
		}
		inst.addOperand(d.regOperand(m, inst.opSize))
		mem, err := d.memOperand(inst, r, m, inst.opSize+2)
		if err != nil {
			return err
		}
		inst.addOperand(mem)

	case opcodemap.CodingEvSw:
		if err := readModRM(); err != nil {
			return err
		}
		if m.reg > 5 {
			return x86.NewDecodeError(x86.ErrInvalidOperand, inst.length)
		}
		width := inst.opSize
		if m.mod != 3 {
			width = 2
		}
		rm, err := d.rmOperand(inst, r, m, width)
		if err != nil {
			return err
		}
		inst.addOperand(rm)
		inst.addOperand(x86.RegisterOperand(x86.Segment(m.reg).Reg()))

	case opcodemap.CodingSwEw:
		if err := readModRM(); err != nil {
			return err
		}
		seg := x86.Segment(m.reg)
		if m.reg > 5 || seg == x86.CS {
			return x86.NewDecodeError(x86.ErrInvalidOperand, inst.length)
		}
		inst.addOperand(x86.RegisterOperand(seg.Reg()))
		rm, err := d.rmOperand(inst, r, m, 2)
		if err != nil {
			return err
		}
		inst.addOperand(rm)

	case opcodemap.CodingGvEvIz:
		if err := readModRM(); err != nil {
			return err
		}
		if err := d.modRMOperands(inst, r, m, inst.opSize, inst.opSize, true); err != nil {
			return err
		}
		return d.readImmOperand(inst, r, inst.opSize, false)

	case opcodemap.CodingGvEvIb:
		if err := readModRM(); err != nil {
			return err
		}
		if err := d.modRMOperands(inst, r, m, inst.opSize, inst.opSize, true); err != nil {
			return err
		}
		return d.readImmOperand(inst, r, 1, false)

	case opcodemap.CodingEvGvIb:
		if err := readModRM(); err != nil {
			return err
		}
		if err := d.modRMOperands(inst, r, m, inst.opSize, inst.opSize, false); err != nil {
			return err
		}
		return d.readImmOperand(inst, r, 1, true)

	case opcodemap.CodingEvGvCL:
		if err := readModRM(); err != nil {
			return err
		}
		if err := d.modRMOperands(inst, r, m, inst.opSize, inst.opSize, false); err != nil {
			return err
		}
		inst.addOperand(x86.RegisterOperand(x86.CL()))

	case opcodemap.CodingEb, opcodemap.CodingEv:
		if err := readModRM(); err != nil {
			return err
		}
		width := uint8(1)
		if entry.C == opcodemap.CodingEv {
			width = inst.opSize
		}
		rm, err := d.rmOperand(inst, r, m, width)
		if err != nil {
			return err
		}
		inst.addOperand(rm)

	case opcodemap.CodingEbIb, opcodemap.CodingEvIz, opcodemap.CodingEvIb:
		if err := readModRM(); err != nil {
			return err
		}
		width := uint8(1)
		immSize := uint8(1)
		switch entry.C {
		case opcodemap.CodingEvIz:
			width = inst.opSize
			immSize = inst.opSize
		case opcodemap.CodingEvIb:
			width = inst.opSize
		}
		rm, err := d.rmOperand(inst, r, m, width)
		if err != nil {
			return err
		}
		inst.addOperand(rm)
		return d.readImmOperand(inst, r, immSize, entry.Op == x86.OpMov)

	case opcodemap.CodingEb1, opcodemap.CodingEv1:
		if err := readModRM(); err != nil {
			return err
		}
		width := uint8(1)
		if entry.C == opcodemap.CodingEv1 {
			width = inst.opSize
		}
		rm, err := d.rmOperand(inst, r, m, width)
		if err != nil {
			return err
		}
		inst.addOperand(rm)
		inst.addOperand(x86.UnsignedImmediateOperand(1, 1))

	case opcodemap.CodingEbCL, opcodemap.CodingEvCL:
		if err := readModRM(); err != nil {
			return err
		}
		width := uint8(1)
		if entry.C == opcodemap.CodingEvCL {
			width = inst.opSize
		}
		rm, err := d.rmOperand(inst, r, m, width)
		if err != nil {
			return err
		}
		inst.addOperand(rm)
		inst.addOperand(x86.RegisterOperand(x86.CL()))

	case opcodemap.CodingEp:
		if err := readModRM(); err != nil {
			return err
		}
		if m.mod == 3 {
			return x86.NewDecodeError(x86.ErrInvalidOperand, inst.length)
		}
		mem, err := d.memOperand(inst, r, m, inst.opSize+2)
		if err != nil {
			return err
		}
		inst.addOperand(mem)

	case opcodemap.CodingALIb:
		inst.addOperand(x86.RegisterOperand(x86.AL()))
		return d.readImmOperand(inst, r, 1, false)

	case opcodemap.CodingAXIz:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false)))
		return d.readImmOperand(inst, r, inst.opSize, false)

	case opcodemap.CodingIb:
		return d.readImmOperand(inst, r, 1, entry.Op == x86.OpInt)

	case opcodemap.CodingIz:
		return d.readImmOperand(inst, r, inst.opSize, false)

	case opcodemap.CodingIw:
		return d.readImmOperand(inst, r, 2, true)

	case opcodemap.CodingIwIb:
		if err := d.readImmOperand(inst, r, 2, true); err != nil {
			return err
		}
		return d.readImmOperand(inst, r, 1, true)

	case opcodemap.CodingJb:
		d.adjustAddressSizedOpcode(inst)
		return d.readRelative(inst, r, 1)

	case opcodemap.CodingJz:
		return d.readRelative(inst, r, inst.opSize)

	case opcodemap.CodingAp:
		return d.farPointerOperand(inst, r)

	case opcodemap.CodingPlusRegV:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), opcodeByte&7, false)))

	case opcodemap.CodingPlusRegXchg:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false)))
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), opcodeByte&7, false)))

	case opcodemap.CodingPlusRegIb:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(1, opcodeByte&7, false)))
		return d.readImmOperand(inst, r, 1, true)

	case opcodemap.CodingPlusRegIv:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), opcodeByte&7, false)))
		return d.readImmOperand(inst, r, inst.opSize, true)

	case opcodemap.CodingALOb, opcodemap.CodingAXOv,
		opcodemap.CodingObAL, opcodemap.CodingOvAX:
		return d.moffsOperands(inst, r, entry.C)

	case opcodemap.CodingInALIb:
		inst.addOperand(x86.RegisterOperand(x86.AL()))
		return d.readImmOperand(inst, r, 1, true)

	case opcodemap.CodingInAXIb:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false)))
		return d.readImmOperand(inst, r, 1, true)

	case opcodemap.CodingOutIbAL:
		if err := d.readImmOperand(inst, r, 1, true); err != nil {
			return err
		}
		inst.addOperand(x86.RegisterOperand(x86.AL()))

	case opcodemap.CodingOutIbAX:
		if err := d.readImmOperand(inst, r, 1, true); err != nil {
			return err
		}
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false)))

	case opcodemap.CodingInALDX:
		inst.addOperand(x86.RegisterOperand(x86.AL()))
		inst.addOperand(x86.RegisterOperand(x86.DX()))

	case opcodemap.CodingInAXDX:
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false)))
		inst.addOperand(x86.RegisterOperand(x86.DX()))

	case opcodemap.CodingOutDXAL:
		inst.addOperand(x86.RegisterOperand(x86.DX()))
		inst.addOperand(x86.RegisterOperand(x86.AL()))

	case opcodemap.CodingOutDXAX:
		inst.addOperand(x86.RegisterOperand(x86.DX()))
		inst.addOperand(x86.RegisterOperand(x86.GPReg(int(inst.opSize), 0, false)))

	case opcodemap.CodingStringB:
		d.stringOperands(inst, 1)

	case opcodemap.CodingStringV:
		d.stringOperands(inst, inst.opSize)

	case opcodemap.CodingSegReg:
		inst.addOperand(x86.RegisterOperand(x86.Segment(entry.Arg).Reg()))

	case opcodemap.CodingInvalid, opcodemap.CodingPrefix, opcodemap.CodingEscape,
		opcodemap.CodingGroup, opcodemap.CodingGvEd:
		return x86.NewDecodeError(x86.ErrInvalidOpcode, inst.length)

	default:
		return x86.NewDecodeError(x86.ErrInvalidOpcode, inst.length)
	}

	return nil
}

// modRMOperands appends the rm and reg operand pair, reg first when
// regFirst is set.
func (d InstDecoder) modRMOperands(inst *Instruction, r x86.Reader, m modRM,
	regWidth, rmWidth uint8, regFirst bool) error {

	rm, err := d.rmOperand(inst, r, m, rmWidth)
	if err != nil {
		return err
	}
	reg := d.regOperand(m, regWidth)

	if regFirst {
		inst.addOperand(reg)
		inst.addOperand(rm)
	} else {
		inst.addOperand(rm)
		inst.addOperand(reg)
	}
	return nil
}

// adjustImpliedOpcode selects the mnemonic of the operand size dependent
// implied operand instructions.
func (d InstDecoder) adjustImpliedOpcode(inst *Instruction) {
	if inst.opSize != 4 {
		return
	}
	switch inst.opcode {
	case x86.OpCbw:
		inst.opcode = x86.OpCwde
	case x86.OpCwd:
		inst.opcode = x86.OpCdq
	default:
	}
}

// adjustAddressSizedOpcode selects the jcxz/jecxz mnemonic by the
// effective address size.
func (d InstDecoder) adjustAddressSizedOpcode(inst *Instruction) {
	if inst.opcode != x86.OpJcxz {
		return
	}
	if inst.addrSize == 4 {
		inst.opcode = x86.OpJecxz
	}
}

// validatePrefixes rejects prefix combinations the architecture forbids.
// A lock prefix requires a lockable opcode with a memory destination.
func (d InstDecoder) validatePrefixes(inst *Instruction) error {
	if !inst.prefixes.Lock {
		return nil
	}
	if _, ok := x86.LockableInstructions[inst.opcode]; !ok {
		return x86.NewDecodeError(x86.ErrInvalidPrefixes, inst.length)
	}
	if inst.operandCount == 0 || inst.operands[0].Kind != x86.OperandMemory {
		return x86.NewDecodeError(x86.ErrInvalidPrefixes, inst.length)
	}
	return nil
}
