package arch

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/x86godisasm/arch/x86"
)

func TestNew(t *testing.T) {
	tests := []struct {
		bitMode int
		name    string
	}{
		{bitMode: 16, name: "real"},
		{bitMode: 32, name: "protected"},
		{bitMode: 64, name: "long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar, err := New(tt.bitMode)
			assert.NoError(t, err)
			assert.Equal(t, tt.name, ar.Name())
			assert.Equal(t, tt.bitMode, ar.BitMode())

			inst, err := ar.Decode(x86.NewBytesReader(0, []byte{0x90}))
			assert.NoError(t, err)
			assert.Equal(t, "nop", inst.String())
		})
	}

	_, err := New(8)
	assert.Error(t, err)
}

// The same byte sequence decodes differently per mode.
func TestModeDependentDecoding(t *testing.T) {
	data := []byte{0x48, 0x89, 0xe5}

	tests := []struct {
		bitMode int
		want    string
	}{
		{bitMode: 16, want: "dec ax"},
		{bitMode: 32, want: "dec eax"},
		{bitMode: 64, want: "mov rbp, rsp"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ar, err := New(tt.bitMode)
			assert.NoError(t, err)

			inst, err := ar.Decode(x86.NewBytesReader(0, data))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, inst.String())
		})
	}
}
