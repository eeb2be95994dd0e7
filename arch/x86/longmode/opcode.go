package longmode

import (
	"github.com/retroenv/x86godisasm/arch/x86"
	"github.com/retroenv/x86godisasm/arch/x86/internal/opcodemap"
)

// oneByteMap is the primary opcode map of 64 bit mode. It is built from
// the legacy base map by removing the opcode space that long mode
// invalidates or reuses: the REX range is consumed as prefixes, the
// segment push/pop, BCD, bound and far direct branch slots are invalid,
// and 0x63 is reassigned from arpl to movsxd.
var oneByteMap = buildOneByteMap()

// twoByteMap is the secondary opcode map of 64 bit mode with the fast
// system call slots of long mode instead of sysenter/sysexit.
var twoByteMap = buildTwoByteMap()

func buildOneByteMap() [256]opcodemap.Entry {
	m := opcodemap.LegacyOneByte

	invalidated := []byte{
		0x06, 0x07, 0x0e, 0x16, 0x17, 0x1e, 0x1f, 0x27, 0x2f, 0x37, 0x3f,
		0x60, 0x61, 0x62, 0x82, 0x9a, 0xc4, 0xc5, 0xce, 0xd4, 0xd5, 0xd6,
		0xea,
	}
	for _, b := range invalidated {
		m[b] = opcodemap.Entry{}
	}

	// REX prefix space, consumed before opcode lookup
	for b := 0x40; b <= 0x4f; b++ {
		m[b] = opcodemap.Entry{}
	}

	m[0x63] = opcodemap.Entry{Op: x86.OpMovsxd, C: opcodemap.CodingGvEd}

	return m
}

func buildTwoByteMap() [256]opcodemap.Entry {
	m := opcodemap.TwoByte

	m[0x05] = opcodemap.Entry{Op: x86.OpSyscall, C: opcodemap.CodingNone}
	m[0x07] = opcodemap.Entry{Op: x86.OpSysret, C: opcodemap.CodingNone}
	m[0x34] = opcodemap.Entry{}
	m[0x35] = opcodemap.Entry{}

	return m
}
