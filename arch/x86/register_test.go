package x86

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestRegisterWidths(t *testing.T) {
	tests := []struct {
		name  string
		reg   RegSpec
		width int
	}{
		{name: "rsp", reg: RSP(), width: 8},
		{name: "esp", reg: ESP(), width: 4},
		{name: "sp", reg: SP(), width: 2},
		{name: "cl", reg: CL(), width: 1},
		{name: "ch", reg: CH(), width: 1},
		{name: "gs", reg: GS.Reg(), width: 2},
		{name: "rip", reg: RegSpec{Class: RegClassRIP}, width: 8},
		{name: "unset", reg: RegSpec{}, width: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.width, tt.reg.Width())
		})
	}
}

func TestRegisterNames(t *testing.T) {
	assert.Equal(t, "rdx", RDX().Name())
	assert.Equal(t, "rsp", RSP().Name())
	assert.Equal(t, "esp", ESP().Name())
	assert.Equal(t, "sp", SP().Name())
	assert.Equal(t, "cl", CL().Name())
	assert.Equal(t, "ch", CH().Name())
	assert.Equal(t, "gs", GS.Reg().Name())
	assert.Equal(t, "r15", RegSpec{Class: RegClassQword, Index: 15}.Name())
	assert.Equal(t, "r10b", RegSpec{Class: RegClassByte, Index: 10}.Name())
}

// Without a REX prefix the byte register encodings 4 to 7 name the high
// byte aliases, with any REX they name spl to dil.
func TestGPRegHighByteAliasing(t *testing.T) {
	assert.Equal(t, "ah", GPReg(1, 4, false).Name())
	assert.Equal(t, "bh", GPReg(1, 7, false).Name())
	assert.Equal(t, "spl", GPReg(1, 4, true).Name())
	assert.Equal(t, "dil", GPReg(1, 7, true).Name())
	assert.Equal(t, "al", GPReg(1, 0, false).Name())
	assert.Equal(t, "r12b", GPReg(1, 12, true).Name())

	assert.Equal(t, "ax", GPReg(2, 0, false).Name())
	assert.Equal(t, "eax", GPReg(4, 0, false).Name())
	assert.Equal(t, "rax", GPReg(8, 0, false).Name())
}
