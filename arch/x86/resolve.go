package x86

// segmentRule describes the architecturally defined segment for one
// operand position of a string instruction.
type segmentRule struct {
	segment    Segment
	fixed      bool // a segment override prefix never applies
	hasSegment bool
}

// stringSegmentRules records the per opcode, per operand index segment
// semantics of the string instructions. The rDI side is always ES and
// can not be overridden, the rSI side defaults to DS and honors a
// segment override prefix.
var stringSegmentRules = map[Opcode][2]segmentRule{
	OpMovs: {
		{segment: ES, fixed: true, hasSegment: true},
		{segment: DS, hasSegment: true},
	},
	OpCmps: {
		{segment: DS, hasSegment: true},
		{segment: ES, fixed: true, hasSegment: true},
	},
	OpStos: {
		{segment: ES, fixed: true, hasSegment: true},
		{},
	},
	OpScas: {
		{},
		{segment: ES, fixed: true, hasSegment: true},
	},
	OpLods: {
		{},
		{segment: DS, hasSegment: true},
	},
	OpIns: {
		{segment: ES, fixed: true, hasSegment: true},
		{},
	},
	OpOuts: {
		{},
		{segment: DS, hasSegment: true},
	},
}

// ResolveSegment computes the effective segment for the operand at the
// given index of an instruction. It is a pure function of opcode, prefix
// state and operand shape. The second return value reports whether a
// segment is meaningful for the operand at all.
func ResolveSegment(op Opcode, index int, operand Operand, prefixes Prefixes) (Segment, bool) {
	if rules, ok := stringSegmentRules[op]; ok && index < len(rules) {
		rule := rules[index]
		if !rule.hasSegment {
			return 0, false
		}
		if !rule.fixed && prefixes.HasSegment {
			return prefixes.Segment, true
		}
		return rule.segment, true
	}

	switch operand.Kind {
	case OperandMemory:
		if prefixes.HasSegment {
			return prefixes.Segment, true
		}
		return defaultDataSegment(operand.Base), true

	case OperandRelative:
		// code fetch
		return CS, true

	case OperandNone, OperandRegister, OperandImmediate, OperandFarPointer:
		return 0, false

	default:
		return 0, false
	}
}

// defaultDataSegment returns the default segment for a memory operand
// based on its base register: stack relative bases use SS, everything
// else uses DS.
func defaultDataSegment(base RegSpec) Segment {
	switch base.Class {
	case RegClassWord, RegClassDword, RegClassQword:
		if base.Index == 4 || base.Index == 5 { // sp/bp family
			return SS
		}
	case RegClassNone, RegClassByte, RegClassHighByte, RegClassSegment,
		RegClassIP, RegClassEIP, RegClassRIP:
	}
	return DS
}
