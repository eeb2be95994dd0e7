// Package options contains the program options.
package options

// Program options of the disassembler.
type Program struct {
	Input  string
	Output string
	Batch  string

	BitMode     int
	BaseAddress uint64

	Debug bool
	Dump  bool
	Quiet bool

	NoHexComments bool
	NoOffsets     bool
}

// Disassembler defines options to control the disassembler.
type Disassembler struct {
	BitMode     int
	BaseAddress uint64

	HexComments    bool
	OffsetComments bool
}

// NewDisassembler returns a new options instance with default options.
func NewDisassembler(bitMode int, baseAddress uint64) Disassembler {
	return Disassembler{
		BitMode:     bitMode,
		BaseAddress: baseAddress,

		HexComments:    true,
		OffsetComments: true,
	}
}
