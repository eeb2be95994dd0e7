package disasm

import (
	"context"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/x86godisasm/internal/arch"
	"github.com/retroenv/x86godisasm/internal/options"
)

func TestProcessLabelsAndData(t *testing.T) {
	image := []byte{
		0xe8, 0x03, 0x00, 0x00, 0x00, // 0x1000: call 0x1008
		0xeb, 0x01, // 0x1005: jmp 0x1008
		0x90,       // 0x1007: nop
		0x55,       // 0x1008: push rbp
		0xc3,       // 0x1009: ret
		0x06,       // 0x100a: invalid in 64 bit mode
	}

	ar, err := arch.New(64)
	assert.NoError(t, err)

	dis := New(log.NewTestLogger(t), ar, image, options.NewDisassembler(64, 0x1000))
	listing, err := dis.Process(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 0x1000, int(listing.BaseAddress))
	assert.Equal(t, 64, listing.BitMode)
	assert.Equal(t, len(image), listing.Size)
	assert.Equal(t, 6, len(listing.Offsets))

	assert.Equal(t, "call func_1008", listing.Offsets[0].Code)
	assert.Equal(t, "jmp func_1008", listing.Offsets[1].Code)
	assert.Equal(t, "nop", listing.Offsets[2].Code)

	target := listing.Offsets[3]
	assert.Equal(t, 0x1008, int(target.Address))
	assert.Equal(t, "func_1008", target.Label)
	assert.Equal(t, "push rbp", target.Code)

	assert.Equal(t, "ret", listing.Offsets[4].Code)

	data := listing.Offsets[5]
	assert.True(t, data.IsData)
	assert.Equal(t, 1, len(data.OpcodeBytes))
	assert.Equal(t, byte(0x06), data.OpcodeBytes[0])
}

func TestProcessBranchLabel(t *testing.T) {
	image := []byte{
		0x90,       // 0x00: nop
		0x74, 0x01, // 0x01: jz 0x04
		0x90, // 0x03: nop
		0xc3, // 0x04: ret
	}

	ar, err := arch.New(64)
	assert.NoError(t, err)

	dis := New(log.NewTestLogger(t), ar, image, options.NewDisassembler(64, 0))
	listing, err := dis.Process(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, "label_0004", listing.Offsets[3].Label)
	assert.Equal(t, "jz label_0004", listing.Offsets[1].Code)
}

// Branch targets outside of the image keep their relative form.
func TestProcessTargetOutsideImage(t *testing.T) {
	image := []byte{
		0xeb, 0x10, // jmp past the end of the image
		0xc3,
	}

	ar, err := arch.New(64)
	assert.NoError(t, err)

	dis := New(log.NewTestLogger(t), ar, image, options.NewDisassembler(64, 0))
	listing, err := dis.Process(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, "jmp $+0x10", listing.Offsets[0].Code)
	assert.Equal(t, "", listing.Offsets[1].Label)
}

func TestProcessDataResync(t *testing.T) {
	// a truncated instruction at the end is marked as data byte by byte
	image := []byte{0x90, 0x48, 0x8b}

	ar, err := arch.New(64)
	assert.NoError(t, err)

	dis := New(log.NewTestLogger(t), ar, image, options.NewDisassembler(64, 0))
	listing, err := dis.Process(context.Background())
	assert.NoError(t, err)

	assert.Equal(t, 3, len(listing.Offsets))
	assert.False(t, listing.Offsets[0].IsData)
	assert.True(t, listing.Offsets[1].IsData)
	assert.True(t, listing.Offsets[2].IsData)
}

func TestProcessCancellation(t *testing.T) {
	ar, err := arch.New(64)
	assert.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dis := New(log.NewTestLogger(t), ar, []byte{0x90}, options.NewDisassembler(64, 0))
	_, err = dis.Process(ctx)
	assert.Error(t, err)
}
