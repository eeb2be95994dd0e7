package cli

import (
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/x86godisasm/internal/options"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOpts options.Program
		wantDis  options.Disassembler
	}{
		{
			name:     "default flags",
			args:     []string{"prog", "test.bin"},
			wantOpts: options.Program{Input: "test.bin", BitMode: 64},
			wantDis:  options.Disassembler{BitMode: 64, HexComments: true, OffsetComments: true},
		},
		{
			name:     "bit mode and base address",
			args:     []string{"prog", "-m", "16", "-base", "0x7c00", "test.bin"},
			wantOpts: options.Program{Input: "test.bin", BitMode: 16, BaseAddress: 0x7c00},
			wantDis:  options.Disassembler{BitMode: 16, BaseAddress: 0x7c00, HexComments: true, OffsetComments: true},
		},
		{
			name:     "base address without prefix",
			args:     []string{"prog", "-base", "400000", "test.bin"},
			wantOpts: options.Program{Input: "test.bin", BitMode: 64, BaseAddress: 0x400000},
			wantDis:  options.Disassembler{BitMode: 64, BaseAddress: 0x400000, HexComments: true, OffsetComments: true},
		},
		{
			name:     "nohexcomments flag",
			args:     []string{"prog", "-nohexcomments", "test.bin"},
			wantOpts: options.Program{Input: "test.bin", BitMode: 64, NoHexComments: true},
			wantDis:  options.Disassembler{BitMode: 64, OffsetComments: true},
		},
		{
			name:     "nooffsets flag",
			args:     []string{"prog", "-nooffsets", "test.bin"},
			wantOpts: options.Program{Input: "test.bin", BitMode: 64, NoOffsets: true},
			wantDis:  options.Disassembler{BitMode: 64, HexComments: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			opts, disasmOptions, err := ParseFlags()
			assert.NoError(t, err)
			assert.Equal(t, tt.wantOpts.Input, opts.Input)
			assert.Equal(t, tt.wantOpts.BitMode, opts.BitMode)
			assert.Equal(t, tt.wantOpts.BaseAddress, opts.BaseAddress)
			assert.Equal(t, tt.wantDis.BitMode, disasmOptions.BitMode)
			assert.Equal(t, tt.wantDis.BaseAddress, disasmOptions.BaseAddress)
			assert.Equal(t, tt.wantDis.HexComments, disasmOptions.HexComments)
			assert.Equal(t, tt.wantDis.OffsetComments, disasmOptions.OffsetComments)
		})
	}
}

func TestParseFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing input file", args: []string{"prog"}},
		{name: "invalid bit mode", args: []string{"prog", "-m", "24", "test.bin"}},
		{name: "invalid base address", args: []string{"prog", "-base", "zzz", "test.bin"}},
		{name: "flag after input file", args: []string{"prog", "test.bin", "-q"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oldArgs := os.Args
			t.Cleanup(func() { os.Args = oldArgs })

			os.Args = tt.args

			_, _, err := ParseFlags()
			assert.Error(t, err)
		})
	}
}
