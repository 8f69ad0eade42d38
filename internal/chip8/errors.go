package chip8

import (
	"errors"
	"fmt"
)

// Errors returned by LoadROM and Step. Stack errors are reported distinctly
// from decode errors since they indicate a different failure class; none of
// them is ever silently swallowed by the engine.
var (
	// ErrROMTooLarge is returned when a ROM image does not fit into the
	// program space between ProgramStart and the end of memory.
	ErrROMTooLarge = errors.New("ROM image too large")

	// ErrStackOverflow is returned when a call exceeds the 16 nesting
	// levels of the call stack.
	ErrStackOverflow = errors.New("call stack overflow")

	// ErrStackUnderflow is returned when a return is executed with an
	// empty call stack.
	ErrStackUnderflow = errors.New("call stack underflow")
)

// DecodeError reports an instruction word that does not match any of the 35
// documented Chip-8 instruction forms. It identifies the raw word and the
// address it was fetched from; the failed step leaves the machine state
// untouched.
type DecodeError struct {
	Opcode uint16
	PC     uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unrecognized opcode %04X at address %04X", e.Opcode, e.PC)
}
