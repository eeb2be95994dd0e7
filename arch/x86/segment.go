package x86

// Segment represents one of the 6 x86 segment registers.
type Segment uint8

// Segment registers in their encoding order.
const (
	ES Segment = iota
	CS
	SS
	DS
	FS
	GS
)

var segmentNames = [...]string{"es", "cs", "ss", "ds", "fs", "gs"}

// String returns the lower case name of the segment register.
func (s Segment) String() string {
	if int(s) >= len(segmentNames) {
		return "?"
	}
	return segmentNames[s]
}

// Reg returns the register reference for the segment register.
func (s Segment) Reg() RegSpec {
	return RegSpec{Class: RegClassSegment, Index: uint8(s)}
}
