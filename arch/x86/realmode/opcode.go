package realmode

import (
	"github.com/retroenv/x86godisasm/arch/x86/internal/opcodemap"
)

// oneByteMap is the primary opcode map of 16 bit mode, the legacy base
// map applies unchanged.
var oneByteMap = opcodemap.LegacyOneByte

// twoByteMap is the secondary opcode map of 16 bit mode. The fast
// system call instructions are not defined in real mode.
var twoByteMap = buildTwoByteMap()

func buildTwoByteMap() [256]opcodemap.Entry {
	m := opcodemap.TwoByte

	m[0x34] = opcodemap.Entry{} // sysenter
	m[0x35] = opcodemap.Entry{} // sysexit

	return m
}
