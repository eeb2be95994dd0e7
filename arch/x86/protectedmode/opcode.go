package protectedmode

import (
	"github.com/retroenv/x86godisasm/arch/x86/internal/opcodemap"
)

// oneByteMap is the primary opcode map of 32 bit mode, the legacy base
// map applies unchanged.
var oneByteMap = opcodemap.LegacyOneByte

// twoByteMap is the secondary opcode map of 32 bit mode. sysenter and
// sysexit are available, the long mode syscall slots stay invalid.
var twoByteMap = opcodemap.TwoByte
