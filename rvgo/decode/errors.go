package decode

import (
	"errors"
	"fmt"
)

var (
	// ErrCompressedUnsupported is returned for words whose bits [1:0] are not 11.
	ErrCompressedUnsupported = errors.New("compressed 16-bit instruction encoding is not supported")

	// ErrUnknownEncoding matches every *UnknownEncodingError.
	ErrUnknownEncoding = errors.New("unknown instruction encoding")
)

// UnknownEncodingError is returned for a well-formed 32-bit word whose
// selector has no row in the dispatch table: either a reserved encoding or an
// extension that is not wired in.
type UnknownEncodingError struct {
	Opcode uint8
	Funct3 uint8
	Funct7 uint8
}

func (e *UnknownEncodingError) Error() string {
	return fmt.Sprintf("%v: opcode %#02x funct3 %#x funct7 %#02x", ErrUnknownEncoding, e.Opcode, e.Funct3, e.Funct7)
}

func (e *UnknownEncodingError) Is(target error) bool {
	return target == ErrUnknownEncoding
}
