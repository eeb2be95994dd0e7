// Package program represents a disassembled program listing.
package program

// Offset defines the content of an offset in a program that can
// represent data or code.
type Offset struct {
	Address     uint64
	OpcodeBytes []byte // data byte or all opcode bytes that are part of the instruction

	IsData bool

	Label   string // name of label or function if identified as a branch destination
	Code    string // asm output of this instruction
	Comment string
}

// Listing defines a disassembled program.
type Listing struct {
	BaseAddress uint64
	BitMode     int
	Size        int

	Offsets []Offset
}

// New creates a new program listing.
func New(baseAddress uint64, bitMode, size int) *Listing {
	return &Listing{
		BaseAddress: baseAddress,
		BitMode:     bitMode,
		Size:        size,
	}
}
