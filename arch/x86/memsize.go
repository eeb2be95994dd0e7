package x86

// MemoryAccessSize describes the width in bytes of a memory access
// performed by an instruction, either through an explicit memory operand
// or as an implied access like a stack push.
type MemoryAccessSize struct {
	bytes int
}

// NewMemoryAccessSize creates a memory access size of the given byte count.
func NewMemoryAccessSize(bytes int) MemoryAccessSize {
	return MemoryAccessSize{bytes: bytes}
}

// Bytes returns the access width in bytes.
func (m MemoryAccessSize) Bytes() int {
	return m.bytes
}

// SizeName returns the Intel assembly size keyword for the access width.
func (m MemoryAccessSize) SizeName() string {
	switch m.bytes {
	case 1:
		return "byte"
	case 2:
		return "word"
	case 4:
		return "dword"
	case 6:
		return "fword"
	case 8:
		return "qword"
	case 10:
		return "tbyte"
	case 16:
		return "xmmword"
	default:
		return "?"
	}
}

// String returns the size keyword.
func (m MemoryAccessSize) String() string {
	return m.SizeName()
}
