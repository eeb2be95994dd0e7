package x86

// RegClass groups registers by their architectural width and encoding bank.
// Two registers can share an index but name different bytes of the same
// physical register, cl and ch both carry index 1 but live in different
// classes.
type RegClass uint8

// Register classes.
const (
	RegClassNone RegClass = iota
	RegClassByte
	RegClassHighByte
	RegClassWord
	RegClassDword
	RegClassQword
	RegClassSegment
	RegClassIP
	RegClassEIP
	RegClassRIP
)

// RegSpec references a single register as a (class, index) pair.
// It is an immutable value compared by structural equality.
type RegSpec struct {
	Class RegClass
	Index uint8
}

var regClassWidths = [...]int{
	RegClassNone:     0,
	RegClassByte:     1,
	RegClassHighByte: 1,
	RegClassWord:     2,
	RegClassDword:    4,
	RegClassQword:    8,
	RegClassSegment:  2,
	RegClassIP:       2,
	RegClassEIP:      4,
	RegClassRIP:      8,
}

var (
	byteRegNames = [...]string{
		"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
		"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
	}
	highByteRegNames = [...]string{"ah", "ch", "dh", "bh"}
	wordRegNames     = [...]string{
		"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
		"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
	}
	dwordRegNames = [...]string{
		"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
		"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
	}
	qwordRegNames = [...]string{
		"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
		"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	}
)

// Width returns the architectural width of the register in bytes.
// Segment registers report 2 bytes.
func (r RegSpec) Width() int {
	if int(r.Class) >= len(regClassWidths) {
		return 0
	}
	return regClassWidths[r.Class]
}

// Name returns the canonical lower case register name.
func (r RegSpec) Name() string {
	switch r.Class {
	case RegClassByte:
		if int(r.Index) < len(byteRegNames) {
			return byteRegNames[r.Index]
		}
	case RegClassHighByte:
		if int(r.Index) < len(highByteRegNames) {
			return highByteRegNames[r.Index]
		}
	case RegClassWord:
		if int(r.Index) < len(wordRegNames) {
			return wordRegNames[r.Index]
		}
	case RegClassDword:
		if int(r.Index) < len(dwordRegNames) {
			return dwordRegNames[r.Index]
		}
	case RegClassQword:
		if int(r.Index) < len(qwordRegNames) {
			return qwordRegNames[r.Index]
		}
	case RegClassSegment:
		return Segment(r.Index).String()
	case RegClassIP:
		return "ip"
	case RegClassEIP:
		return "eip"
	case RegClassRIP:
		return "rip"
	case RegClassNone:
	}
	return "?"
}

// String returns the canonical register name.
func (r RegSpec) String() string {
	return r.Name()
}

// IsSet returns whether the reference names a register.
func (r RegSpec) IsSet() bool {
	return r.Class != RegClassNone
}

// Register constructors for commonly referenced registers.

// AL returns the low byte of the accumulator.
func AL() RegSpec { return RegSpec{Class: RegClassByte, Index: 0} }

// CL returns the low byte of the counter register.
func CL() RegSpec { return RegSpec{Class: RegClassByte, Index: 1} }

// AH returns the high byte alias of the accumulator.
func AH() RegSpec { return RegSpec{Class: RegClassHighByte, Index: 0} }

// CH returns the high byte alias of the counter register.
func CH() RegSpec { return RegSpec{Class: RegClassHighByte, Index: 1} }

// AX returns the 16 bit accumulator.
func AX() RegSpec { return RegSpec{Class: RegClassWord, Index: 0} }

// DX returns the 16 bit data register.
func DX() RegSpec { return RegSpec{Class: RegClassWord, Index: 2} }

// SP returns the 16 bit stack pointer.
func SP() RegSpec { return RegSpec{Class: RegClassWord, Index: 4} }

// BP returns the 16 bit base pointer.
func BP() RegSpec { return RegSpec{Class: RegClassWord, Index: 5} }

// SI returns the 16 bit source index register.
func SI() RegSpec { return RegSpec{Class: RegClassWord, Index: 6} }

// DI returns the 16 bit destination index register.
func DI() RegSpec { return RegSpec{Class: RegClassWord, Index: 7} }

// EAX returns the 32 bit accumulator.
func EAX() RegSpec { return RegSpec{Class: RegClassDword, Index: 0} }

// ECX returns the 32 bit counter register.
func ECX() RegSpec { return RegSpec{Class: RegClassDword, Index: 1} }

// ESP returns the 32 bit stack pointer.
func ESP() RegSpec { return RegSpec{Class: RegClassDword, Index: 4} }

// EBP returns the 32 bit base pointer.
func EBP() RegSpec { return RegSpec{Class: RegClassDword, Index: 5} }

// ESI returns the 32 bit source index register.
func ESI() RegSpec { return RegSpec{Class: RegClassDword, Index: 6} }

// EDI returns the 32 bit destination index register.
func EDI() RegSpec { return RegSpec{Class: RegClassDword, Index: 7} }

// RAX returns the 64 bit accumulator.
func RAX() RegSpec { return RegSpec{Class: RegClassQword, Index: 0} }

// RCX returns the 64 bit counter register.
func RCX() RegSpec { return RegSpec{Class: RegClassQword, Index: 1} }

// RDX returns the 64 bit data register.
func RDX() RegSpec { return RegSpec{Class: RegClassQword, Index: 2} }

// RSP returns the 64 bit stack pointer.
func RSP() RegSpec { return RegSpec{Class: RegClassQword, Index: 4} }

// RBP returns the 64 bit base pointer.
func RBP() RegSpec { return RegSpec{Class: RegClassQword, Index: 5} }

// RSI returns the 64 bit source index register.
func RSI() RegSpec { return RegSpec{Class: RegClassQword, Index: 6} }

// RDI returns the 64 bit destination index register.
func RDI() RegSpec { return RegSpec{Class: RegClassQword, Index: 7} }

// GPReg returns the general purpose register of the given width in bytes
// for an encoding index. rex selects the REX register naming for byte
// registers, without it encoding indexes 4 to 7 name the high byte
// aliases ah, ch, dh and bh.
func GPReg(width int, index uint8, rex bool) RegSpec {
	switch width {
	case 1:
		if !rex && index >= 4 && index < 8 {
			return RegSpec{Class: RegClassHighByte, Index: index - 4}
		}
		return RegSpec{Class: RegClassByte, Index: index}
	case 2:
		return RegSpec{Class: RegClassWord, Index: index}
	case 4:
		return RegSpec{Class: RegClassDword, Index: index}
	case 8:
		return RegSpec{Class: RegClassQword, Index: index}
	default:
		return RegSpec{}
	}
}
