package x86

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOperandWidth(t *testing.T) {
	tests := []struct {
		name     string
		operand  Operand
		width    int
		hasWidth bool
	}{
		{name: "register reports architectural width", operand: RegisterOperand(RSP()), width: 8, hasWidth: true},
		{name: "immediate reports encoded width", operand: ImmediateOperand(1, 4), width: 4, hasWidth: true},
		{name: "memory reports derived width", operand: MemoryOperand(RAX(), RegSpec{}, 1, 0, 2), width: 2, hasWidth: true},
		{name: "branch target has no width", operand: RelativeOperand(-2)},
		{name: "absent operand has no width", operand: Operand{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			width, ok := tt.operand.Width()
			assert.Equal(t, tt.hasWidth, ok)
			assert.Equal(t, tt.width, width)
		})
	}
}

func TestOperandString(t *testing.T) {
	tests := []struct {
		name    string
		operand Operand
		want    string
	}{
		{name: "register", operand: RegisterOperand(EAX()), want: "eax"},
		{name: "positive immediate", operand: ImmediateOperand(16, 1), want: "0x10"},
		{name: "negative immediate", operand: ImmediateOperand(-1, 1), want: "-0x1"},
		{name: "unsigned immediate", operand: UnsignedImmediateOperand(0xff, 1), want: "0xff"},
		{name: "plain base", operand: MemoryOperand(RAX(), RegSpec{}, 1, 0, 4), want: "dword [rax]"},
		{name: "base with displacement", operand: MemoryOperand(RBP(), RegSpec{}, 1, -4, 4), want: "dword [rbp-0x4]"},
		{name: "scaled index", operand: MemoryOperand(RDX(), RCX(), 4, 0, 8), want: "qword [rdx+rcx*4]"},
		{name: "absolute address", operand: MemoryOperand(RegSpec{}, RegSpec{}, 1, 0x1234, 2), want: "word [0x1234]"},
		{name: "segment qualified", operand: MemoryOperand(RDI(), RegSpec{}, 1, 0, 1).WithSegment(ES), want: "byte [es:rdi]"},
		{name: "no width memory", operand: MemoryOperand(RAX(), RegSpec{}, 1, 0, 0), want: "[rax]"},
		{name: "forward branch", operand: RelativeOperand(5), want: "$+0x5"},
		{name: "backward branch", operand: RelativeOperand(-2), want: "$-0x2"},
		{name: "far pointer", operand: FarPointerOperand(0x1234, 0x5678, 2), want: "0x1234:0x5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.operand.String())
		})
	}
}

func TestMemoryAccessSizeNames(t *testing.T) {
	assert.Equal(t, "byte", NewMemoryAccessSize(1).SizeName())
	assert.Equal(t, "word", NewMemoryAccessSize(2).SizeName())
	assert.Equal(t, "dword", NewMemoryAccessSize(4).SizeName())
	assert.Equal(t, "fword", NewMemoryAccessSize(6).SizeName())
	assert.Equal(t, "qword", NewMemoryAccessSize(8).SizeName())
	assert.Equal(t, "tbyte", NewMemoryAccessSize(10).SizeName())
	assert.Equal(t, "xmmword", NewMemoryAccessSize(16).SizeName())
}

func TestBytesReader(t *testing.T) {
	r := NewBytesReader(0x8000, []byte{0x90, 0xc3})

	assert.Equal(t, uint64(0x8000), r.Address())
	assert.Equal(t, 2, r.Remaining())

	b, err := r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, byte(0x90), b)
	assert.Equal(t, uint64(0x8001), r.Address())
	assert.Equal(t, 1, r.Offset())

	_, err = r.ReadByte()
	assert.NoError(t, err)
	assert.Equal(t, 0, r.Remaining())

	_, err = r.ReadByte()
	assert.Error(t, err)
}
