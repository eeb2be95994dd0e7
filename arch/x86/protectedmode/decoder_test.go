package protectedmode

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
		{name: "register mov", data: []byte{0x89, 0xd8}, want: "mov eax, ebx"},
		{name: "scaled index", data: []byte{0x8b, 0x04, 0x8a}, want: "mov eax, dword [edx+ecx*4]"},
		{name: "absolute disp32", data: []byte{0x8b, 0x05, 0x44, 0x33, 0x22, 0x11},
			want: "mov eax, dword [0x11223344]"},
		{name: "ebp with disp8", data: []byte{0x8b, 0x45, 0xfc}, want: "mov eax, dword [ebp-0x4]"},
		{name: "operand size override", data: []byte{0x66, 0x8b, 0x07}, want: "mov ax, word [edi]"},
		{name: "address size override", data: []byte{0x67, 0x8b, 0x07}, want: "mov eax, dword [bx]"},
		{name: "rex range decodes as inc", data: []byte{0x40}, want: "inc eax"},
		{name: "rex range decodes as dec", data: []byte{0x48}, want: "dec eax"},
		{name: "push immediate", data: []byte{0x68, 0x78, 0x56, 0x34, 0x12}, want: "push 0x12345678"},
		{name: "far call", data: []byte{0x9a, 0x00, 0x10, 0x00, 0x00, 0x34, 0x12},
			want: "callf 0x1234:0x1000"},
		{name: "sysenter", data: []byte{0x0f, 0x34}, want: "sysenter"},
		{name: "cwde", data: []byte{0x98}, want: "cwde"},
		{name: "cbw with override", data: []byte{0x66, 0x98}, want: "cbw"},
		{name: "movzx", data: []byte{0x0f, 0xb6, 0xc3}, want: "movzx eax, bl"},
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
		{name: "push register", data: []byte{0x50}, size: "dword", hasAccess: true},
		{name: "push register 16 bit", data: []byte{0x66, 0x50}, size: "word", hasAccess: true},
		{name: "ret", data: []byte{0xc3}, size: "dword", hasAccess: true},
		{name: "pusha", data: []byte{0x60}, size: "dword", hasAccess: true},
		{name: "pusha 16 bit", data: []byte{0x66, 0x60}, size: "word", hasAccess: true},
		{name: "byte load", data: []byte{0x8a, 0x07}, size: "byte", hasAccess: true},
		{name: "register xor has no access", data: []byte{0x31, 0xc0}, hasAccess: false},
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

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty input", data: nil, want: x86.ErrExhaustedInput},
		{name: "truncated sib", data: []byte{0x8b, 0x04}, want: x86.ErrExhaustedInput},
		{name: "truncated disp32", data: []byte{0x8b, 0x05, 0x44, 0x33}, want: x86.ErrExhaustedInput},
		{name: "lock on register destination", data: []byte{0xf0, 0x01, 0xc8}, want: x86.ErrInvalidPrefixes},
		{name: "lea needs memory", data: []byte{0x8d, 0xc0}, want: x86.ErrInvalidOperand},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder().Decode(x86.NewBytesReader(0, tt.data))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}
