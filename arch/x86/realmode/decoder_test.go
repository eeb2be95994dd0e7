package realmode

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/x86godisasm/arch/x86"
)

func decode(t *testing.T, data []byte) *Instruction {
	t.Helper()

	inst, err := NewDecoder().Decode(x86.NewBytesReader(0, data))
	assert.NoError(t, err)
	return inst
}

func TestDecodeInstructions(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "register mov", data: []byte{0x89, 0xd8}, want: "mov ax, bx"},
		{name: "bx indirect", data: []byte{0x8b, 0x07}, want: "mov ax, word [bx]"},
		{name: "bx si pair", data: []byte{0x8b, 0x00}, want: "mov ax, word [bx+si]"},
		{name: "bp di pair", data: []byte{0x8b, 0x03}, want: "mov ax, word [bp+di]"},
		{name: "bp with disp8", data: []byte{0x8b, 0x46, 0x08}, want: "mov ax, word [bp+0x8]"},
		{name: "absolute disp16", data: []byte{0x8b, 0x06, 0x34, 0x12}, want: "mov ax, word [0x1234]"},
		{name: "disp16 with base", data: []byte{0x8b, 0x87, 0x00, 0x10}, want: "mov ax, word [bx+0x1000]"},
		{name: "operand size override", data: []byte{0x66, 0x8b, 0x07}, want: "mov eax, dword [bx]"},
		{name: "address size override", data: []byte{0x67, 0x8b, 0x00}, want: "mov ax, word [eax]"},
		{name: "short inc", data: []byte{0x40}, want: "inc ax"},
		{name: "short inc 32 bit", data: []byte{0x66, 0x40}, want: "inc eax"},
		{name: "short dec", data: []byte{0x4b}, want: "dec bx"},
		{name: "push segment register", data: []byte{0x1e}, want: "push ds"},
		{name: "pop segment register", data: []byte{0x07}, want: "pop es"},
		{name: "interrupt", data: []byte{0xcd, 0x10}, want: "int 0x10"},
		{name: "far jmp", data: []byte{0xea, 0x00, 0x7c, 0x00, 0x00}, want: "jmpf 0x0000:0x7c00"},
		{name: "bound", data: []byte{0x62, 0x07}, want: "bound ax, dword [bx]"},
		{name: "les", data: []byte{0xc4, 0x07}, want: "les ax, dword [bx]"},
		{name: "arpl", data: []byte{0x63, 0xc8}, want: "arpl ax, cx"},
		{name: "aam", data: []byte{0xd4, 0x0a}, want: "aam 0xa"},
		{name: "mov to segment register", data: []byte{0x8e, 0xd8}, want: "mov ds, ax"},
		{name: "segment override", data: []byte{0x26, 0x8b, 0x07}, want: "mov ax, word [es:bx]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := decode(t, tt.data)
			assert.Equal(t, tt.want, inst.String())
			assert.Equal(t, len(tt.data), inst.Len())
		})
	}
}

func TestDecodeMemoryAccessSize(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		size      string
		hasAccess bool
	}{
		{name: "push register", data: []byte{0x50}, size: "word", hasAccess: true},
		{name: "push register 32 bit", data: []byte{0x66, 0x50}, size: "dword", hasAccess: true},
		{name: "ret", data: []byte{0xc3}, size: "word", hasAccess: true},
		{name: "pusha", data: []byte{0x60}, size: "word", hasAccess: true},
		{name: "far call through memory", data: []byte{0xff, 0x1e, 0x00, 0x20}, size: "dword", hasAccess: true},
		{name: "register add has no access", data: []byte{0x01, 0xd8}, hasAccess: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := decode(t, tt.data)

			size, ok := inst.MemSize()
			assert.Equal(t, tt.hasAccess, ok)
			if tt.hasAccess {
				assert.Equal(t, tt.size, size.SizeName())
			}
		})
	}
}

// bp based addressing defaults to the stack segment, an override prefix
// replaces it.
func TestSegmentDefaults(t *testing.T) {
	inst := decode(t, []byte{0x8b, 0x46, 0x08})
	seg, ok := inst.SegmentOverrideForOp(1)
	assert.True(t, ok)
	assert.Equal(t, x86.SS, seg)

	inst = decode(t, []byte{0x8b, 0x07})
	seg, ok = inst.SegmentOverrideForOp(1)
	assert.True(t, ok)
	assert.Equal(t, x86.DS, seg)

	inst = decode(t, []byte{0x2e, 0x8b, 0x46, 0x08})
	seg, ok = inst.SegmentOverrideForOp(1)
	assert.True(t, ok)
	assert.Equal(t, x86.CS, seg)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty input", data: nil, want: x86.ErrExhaustedInput},
		{name: "truncated disp16", data: []byte{0x8b, 0x06, 0x34}, want: x86.ErrExhaustedInput},
		{name: "sysenter undefined", data: []byte{0x0f, 0x34}, want: x86.ErrInvalidOpcode},
		{name: "bound needs memory", data: []byte{0x62, 0xc0}, want: x86.ErrInvalidOperand},
		{name: "lock on unlockable opcode", data: []byte{0xf0, 0x90}, want: x86.ErrInvalidPrefixes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder().Decode(x86.NewBytesReader(0, tt.data))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}
