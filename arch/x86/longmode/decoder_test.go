package longmode

import (
	"errors"
	"sync"
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

func TestDecodeMemoryAccessSize(t *testing.T) {
	tests := []struct {
		name      string
		data      []byte
		size      string
		hasAccess bool
	}{
		{name: "xor al with byte memory", data: []byte{0x32, 0x00}, size: "byte", hasAccess: true},
		{name: "xor ax with word memory", data: []byte{0x66, 0x33, 0x00}, size: "word", hasAccess: true},
		{name: "xor eax with dword memory", data: []byte{0x33, 0x00}, size: "dword", hasAccess: true},
		{name: "xor rax with qword memory", data: []byte{0x48, 0x33, 0x00}, size: "qword", hasAccess: true},

		{name: "ret pops a stack slot", data: []byte{0xc3}, size: "qword", hasAccess: true},
		{name: "call pushes a stack slot", data: []byte{0xe8, 0x00, 0x00, 0x00, 0x00}, size: "qword", hasAccess: true},
		{name: "push register", data: []byte{0x50}, size: "qword", hasAccess: true},
		{name: "pop register", data: []byte{0x58}, size: "qword", hasAccess: true},
		{name: "push register with operand size override", data: []byte{0x66, 0x50}, size: "qword", hasAccess: true},
		{name: "pop register with operand size override", data: []byte{0x66, 0x58}, size: "qword", hasAccess: true},
		{name: "push explicit register form", data: []byte{0xff, 0xf0}, size: "qword", hasAccess: true},
		{name: "push explicit form honors operand size", data: []byte{0x66, 0xff, 0xf0}, size: "word", hasAccess: true},
		{name: "call through memory reads a full pointer", data: []byte{0x66, 0xff, 0x10}, size: "qword", hasAccess: true},
		{name: "jmp through memory reads a full pointer", data: []byte{0x66, 0xff, 0x20}, size: "qword", hasAccess: true},
		{name: "leave restores the frame", data: []byte{0xc9}, size: "qword", hasAccess: true},

		{name: "nop has no access", data: []byte{0x90}, hasAccess: false},
		{name: "short jmp has no access", data: []byte{0xeb, 0x00}, hasAccess: false},
		{name: "register mov has no access", data: []byte{0x89, 0xd8}, hasAccess: false},
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

func TestDecodeInstructions(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "push rbp", data: []byte{0x55}, want: "push rbp"},
		{name: "mov rbp rsp", data: []byte{0x48, 0x89, 0xe5}, want: "mov rbp, rsp"},
		{name: "mov eax imm", data: []byte{0xb8, 0x01, 0x00, 0x00, 0x00}, want: "mov eax, 0x1"},
		{name: "mov r8 imm", data: []byte{0x49, 0xb8, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
			want: "mov r8, 0x10"},
		{name: "rip relative load", data: []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00},
			want: "mov rax, qword [rip+0x10]"},
		{name: "lea with scaled index", data: []byte{0x48, 0x8d, 0x04, 0x8a},
			want: "lea rax, [rdx+rcx*4]"},
		{name: "movsxd", data: []byte{0x48, 0x63, 0xc3}, want: "movsxd rax, ebx"},
		{name: "add with sign extended imm8", data: []byte{0x48, 0x83, 0xc0, 0xff},
			want: "add rax, -0x1"},
		{name: "byte register without rex", data: []byte{0x88, 0xe0}, want: "mov al, ah"},
		{name: "byte register with rex", data: []byte{0x40, 0x88, 0xe0}, want: "mov al, spl"},
		{name: "negative displacement", data: []byte{0x8b, 0x45, 0xfc},
			want: "mov eax, dword [rbp-0x4]"},
		{name: "segment override", data: []byte{0x64, 0x48, 0x8b, 0x04, 0x25, 0x28, 0x00, 0x00, 0x00},
			want: "mov rax, qword [fs:0x28]"},
		{name: "locked add", data: []byte{0xf0, 0x01, 0x08}, want: "lock add dword [rax], ecx"},
		{name: "rep movs", data: []byte{0xf3, 0x48, 0xa5},
			want: "rep movs qword [es:rdi], qword [ds:rsi]"},
		{name: "syscall", data: []byte{0x0f, 0x05}, want: "syscall"},
		{name: "cdqe", data: []byte{0x48, 0x98}, want: "cdqe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := decode(t, tt.data)
			assert.Equal(t, tt.want, inst.String())
			assert.Equal(t, len(tt.data), inst.Len())
		})
	}
}

// A legacy prefix after a REX byte stops the REX from applying, only a
// REX directly preceding the opcode takes effect.
func TestRexAdjacency(t *testing.T) {
	inst := decode(t, []byte{0x48, 0x66, 0x33, 0x00})
	assert.Equal(t, "xor ax, word [rax]", inst.String())

	size, ok := inst.MemSize()
	assert.True(t, ok)
	assert.Equal(t, "word", size.SizeName())
}

func TestSegmentResolution(t *testing.T) {
	t.Run("movs destination is architecturally es", func(t *testing.T) {
		inst := decode(t, []byte{0xa4})

		seg, ok := inst.SegmentOverrideForOp(0)
		assert.True(t, ok)
		assert.Equal(t, x86.ES, seg)

		seg, ok = inst.SegmentOverrideForOp(1)
		assert.True(t, ok)
		assert.Equal(t, x86.DS, seg)
	})

	t.Run("override only applies to the source side", func(t *testing.T) {
		inst := decode(t, []byte{0x65, 0xa4})

		seg, ok := inst.SegmentOverrideForOp(0)
		assert.True(t, ok)
		assert.Equal(t, x86.ES, seg)

		seg, ok = inst.SegmentOverrideForOp(1)
		assert.True(t, ok)
		assert.Equal(t, x86.GS, seg)
	})

	t.Run("stos accumulator has no segment", func(t *testing.T) {
		inst := decode(t, []byte{0xaa})

		seg, ok := inst.SegmentOverrideForOp(0)
		assert.True(t, ok)
		assert.Equal(t, x86.ES, seg)

		_, ok = inst.SegmentOverrideForOp(1)
		assert.False(t, ok)
	})

	t.Run("branch target is a code fetch", func(t *testing.T) {
		inst := decode(t, []byte{0xeb, 0x00})

		seg, ok := inst.SegmentOverrideForOp(0)
		assert.True(t, ok)
		assert.Equal(t, x86.CS, seg)
	})

	t.Run("stack relative memory defaults to ss", func(t *testing.T) {
		inst := decode(t, []byte{0x8b, 0x45, 0xfc})

		seg, ok := inst.SegmentOverrideForOp(1)
		assert.True(t, ok)
		assert.Equal(t, x86.SS, seg)
	})
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty input", data: nil, want: x86.ErrExhaustedInput},
		{name: "lone rex prefix", data: []byte{0x48}, want: x86.ErrExhaustedInput},
		{name: "truncated modrm", data: []byte{0x89}, want: x86.ErrExhaustedInput},
		{name: "truncated immediate", data: []byte{0xb8, 0x01, 0x00}, want: x86.ErrExhaustedInput},
		{name: "truncated escape", data: []byte{0x0f}, want: x86.ErrExhaustedInput},
		{name: "invalidated legacy opcode", data: []byte{0x06}, want: x86.ErrInvalidOpcode},
		{name: "bcd opcode removed", data: []byte{0x27}, want: x86.ErrInvalidOpcode},
		{name: "lock on unlockable opcode", data: []byte{0xf0, 0x90}, want: x86.ErrInvalidPrefixes},
		{name: "lock on register destination", data: []byte{0xf0, 0x01, 0xc8}, want: x86.ErrInvalidPrefixes},
		{name: "lea requires memory", data: []byte{0x8d, 0xc0}, want: x86.ErrInvalidOperand},
		{
			name: "endless prefix run",
			data: []byte{
				0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66,
				0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x66, 0x90,
			},
			want: x86.ErrTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDecoder().Decode(x86.NewBytesReader(0, tt.data))
			assert.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))

			var decodeErr *x86.DecodeError
			assert.True(t, errors.As(err, &decodeErr))
		})
	}
}

// Decoding consumes exactly Len bytes, re-decoding them reproduces the
// same instruction and every strict prefix of them fails with exhausted
// input.
func TestDecodeDeterminism(t *testing.T) {
	encodings := [][]byte{
		{0x55},
		{0x48, 0x89, 0xe5},
		{0xe8, 0x00, 0x00, 0x00, 0x00},
		{0x66, 0xff, 0xf0},
		{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00},
		{0x49, 0xb8, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xf3, 0x48, 0xa5},
	}

	dec := NewDecoder()
	for _, data := range encodings {
		first, err := dec.Decode(x86.NewBytesReader(0, data))
		assert.NoError(t, err)
		assert.Equal(t, len(data), first.Len())

		second, err := dec.Decode(x86.NewBytesReader(0, data))
		assert.NoError(t, err)
		assert.Equal(t, first.String(), second.String())

		for cut := 0; cut < len(data); cut++ {
			_, err := dec.Decode(x86.NewBytesReader(0, data[:cut]))
			assert.True(t, errors.Is(err, x86.ErrExhaustedInput))
		}
	}
}

func TestWithoutSystemInstructions(t *testing.T) {
	data := []byte{0x0f, 0x05}

	_, err := NewDecoder().Decode(x86.NewBytesReader(0, data))
	assert.NoError(t, err)

	_, err = NewDecoder().WithoutSystemInstructions().Decode(x86.NewBytesReader(0, data))
	assert.True(t, errors.Is(err, x86.ErrInvalidOpcode))
}

func TestOperandIndexBounds(t *testing.T) {
	inst := decode(t, []byte{0x90})
	assert.Equal(t, 0, inst.OperandCount())

	defer func() {
		assert.True(t, recover() != nil)
	}()
	inst.Operand(0)
}

func TestDecodeIntoReuse(t *testing.T) {
	dec := NewDecoder()
	inst := &Instruction{}

	assert.NoError(t, dec.DecodeInto(inst, x86.NewBytesReader(0, []byte{0x48, 0x89, 0xe5})))
	assert.Equal(t, "mov rbp, rsp", inst.String())

	// reuse must not leak state from the previous decode
	assert.NoError(t, dec.DecodeInto(inst, x86.NewBytesReader(0, []byte{0x90})))
	assert.Equal(t, "nop", inst.String())
	assert.Equal(t, 1, inst.Len())
}

func TestDecoderConcurrentUse(t *testing.T) {
	dec := NewDecoder()
	data := []byte{0x48, 0x8b, 0x05, 0x10, 0x00, 0x00, 0x00}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				inst, err := dec.Decode(x86.NewBytesReader(0, data))
				assert.NoError(t, err)
				assert.Equal(t, "mov rax, qword [rip+0x10]", inst.String())
			}
		}()
	}
	wg.Wait()
}
