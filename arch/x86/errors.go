package x86

import (
	"errors"
	"fmt"
)

// Decode error kinds. A decoder aborts at the first byte that can not form
// a valid instruction, it never guesses an opcode or resynchronizes the
// stream.
var (
	// ErrExhaustedInput indicates that the byte source ran out before a
	// complete instruction could be formed.
	ErrExhaustedInput = errors.New("exhausted input")
	// ErrInvalidOpcode indicates a byte or escape chain combination with
	// no opcode table entry.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrInvalidOperand indicates a ModRM/SIB encoding that the
	// architecture disallows for the identified opcode.
	ErrInvalidOperand = errors.New("invalid operand encoding")
	// ErrInvalidPrefixes indicates a prefix combination that the
	// architecture forbids.
	ErrInvalidPrefixes = errors.New("invalid prefix combination")
	// ErrTooLong indicates that decoding exceeded the architectural
	// 15 byte instruction length limit.
	ErrTooLong = errors.New("instruction exceeds length limit")
)

// MaxInstructionLen is the architectural limit for the encoded length of
// a single instruction including all prefixes.
const MaxInstructionLen = 15

// DecodeError describes a failed decode. It wraps one of the sentinel
// error kinds of this package and records the stream offset in bytes
// relative to the start of the attempted instruction.
type DecodeError struct {
	Kind   error
	Offset int
}

// NewDecodeError creates a decode error of the given kind at an offset.
func NewDecodeError(kind error, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset}
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Unwrap returns the sentinel error kind for errors.Is matching.
func (e *DecodeError) Unwrap() error {
	return e.Kind
}
