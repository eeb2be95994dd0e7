package x86

// Prefixes records the legacy prefix state accumulated while decoding one
// instruction. Repeated prefixes of the same class overwrite each other,
// the last one wins.
type Prefixes struct {
	OperandSize bool // 0x66
	AddressSize bool // 0x67
	Lock        bool // 0xf0
	Rep         bool // 0xf3
	RepNZ       bool // 0xf2

	Segment    Segment
	HasSegment bool
}

// Reset clears all recorded prefixes.
func (p *Prefixes) Reset() {
	*p = Prefixes{}
}

// SetSegment records a segment override prefix.
func (p *Prefixes) SetSegment(segment Segment) {
	p.Segment = segment
	p.HasSegment = true
}

// ConsumeLegacyPrefix records the prefix encoded by the byte and returns
// whether the byte was a legacy prefix. Bytes that are not legacy
// prefixes leave the state untouched.
func (p *Prefixes) ConsumeLegacyPrefix(b byte) bool {
	switch b {
	case 0x26:
		p.SetSegment(ES)
	case 0x2e:
		p.SetSegment(CS)
	case 0x36:
		p.SetSegment(SS)
	case 0x3e:
		p.SetSegment(DS)
	case 0x64:
		p.SetSegment(FS)
	case 0x65:
		p.SetSegment(GS)
	case 0x66:
		p.OperandSize = true
	case 0x67:
		p.AddressSize = true
	case 0xf0:
		p.Lock = true
	case 0xf2:
		p.RepNZ = true
		p.Rep = false
	case 0xf3:
		p.Rep = true
		p.RepNZ = false
	default:
		return false
	}
	return true
}

// RexPrefix records the REX prefix bits, only meaningful in 64 bit mode.
// Only a REX byte immediately preceding the opcode takes effect, an
// earlier REX followed by a legacy prefix stops applying.
type RexPrefix struct {
	Present bool
	W       bool // 64 bit operand width
	R       bool // ModRM reg field extension
	X       bool // SIB index field extension
	B       bool // ModRM rm / SIB base / opcode reg field extension
}

// Set fills the prefix state from a REX byte in the 0x40 to 0x4f range.
func (r *RexPrefix) Set(b byte) {
	r.Present = true
	r.W = b&0x8 != 0
	r.R = b&0x4 != 0
	r.X = b&0x2 != 0
	r.B = b&0x1 != 0
}
