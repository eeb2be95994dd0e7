// Package arch contains types and functions used for multi mode support.
// It acts as a bridge between the disassembler and the processor mode
// specific decoders.
package arch

import (
	"fmt"

	"github.com/retroenv/x86godisasm/arch/x86"
	"github.com/retroenv/x86godisasm/arch/x86/longmode"
	"github.com/retroenv/x86godisasm/arch/x86/protectedmode"
	"github.com/retroenv/x86godisasm/arch/x86/realmode"
)

// Architecture contains processor mode specific information.
type Architecture interface {
	// Name returns the mode name.
	Name() string
	// BitMode returns the bit width of the mode.
	BitMode() int
	// Decode decodes one instruction from the reader.
	Decode(r *x86.BytesReader) (x86.Instruction, error)
}

// New returns the architecture for a bit mode of 16, 32 or 64.
func New(bitMode int) (Architecture, error) {
	switch bitMode {
	case 16:
		return realMode{dec: realmode.NewDecoder()}, nil
	case 32:
		return protectedMode{dec: protectedmode.NewDecoder()}, nil
	case 64:
		return longMode{dec: longmode.NewDecoder()}, nil
	default:
		return nil, fmt.Errorf("unsupported bit mode %d", bitMode)
	}
}

type realMode struct {
	dec realmode.InstDecoder
}

func (m realMode) Name() string {
	return "real"
}

func (m realMode) BitMode() int {
	return 16
}

func (m realMode) Decode(r *x86.BytesReader) (x86.Instruction, error) {
	return m.dec.Decode(r)
}

type protectedMode struct {
	dec protectedmode.InstDecoder
}

func (m protectedMode) Name() string {
	return "protected"
}

func (m protectedMode) BitMode() int {
	return 32
}

func (m protectedMode) Decode(r *x86.BytesReader) (x86.Instruction, error) {
	return m.dec.Decode(r)
}

type longMode struct {
	dec longmode.InstDecoder
}

func (m longMode) Name() string {
	return "long"
}

func (m longMode) BitMode() int {
	return 64
}

func (m longMode) Decode(r *x86.BytesReader) (x86.Instruction, error) {
	return m.dec.Decode(r)
}
