// Package disasm formats Chip-8 instruction words as assembly text. It is
// used for instruction tracing while the interpreter runs and for writing a
// plain listing of a ROM image.
package disasm

import (
	"fmt"
	"io"

	"github.com/retroenv/chip8emu/internal/chip8"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Format renders a single instruction word as assembly text. Words that do
// not match any documented instruction form render as a data directive.
func Format(word uint16) string {
	instruction, ok := lookup(word)
	if !ok {
		return fmt.Sprintf(".word $%04X", word)
	}

	params := formatParams(word)
	if params == "" {
		return instruction.Name
	}
	return fmt.Sprintf("%s %s", instruction.Name, params)
}

// Listing writes a two-byte-per-line disassembly of a ROM image to w, with
// addresses relative to the program start address.
func Listing(w io.Writer, rom []byte) error {
	for offset := 0; offset < len(rom); offset += 2 {
		word := uint16(rom[offset]) << 8
		if offset+1 < len(rom) {
			word |= uint16(rom[offset+1])
		}

		address := chip8.ProgramStart + offset
		if _, err := fmt.Fprintf(w, "%04X: %04X  %s\n", address, word, Format(word)); err != nil {
			return fmt.Errorf("writing listing line: %w", err)
		}
	}
	return nil
}

// lookup matches an instruction word against the opcode table of its first
// nibble.
func lookup(word uint16) (*chip8cpu.Instruction, bool) {
	firstNibble := int(word >> 12)
	for _, op := range chip8cpu.Opcodes[firstNibble] {
		if op.Info.Mask&word == op.Info.Value {
			if op.Instruction == nil {
				return nil, false
			}
			return op.Instruction, true
		}
	}
	return nil, false
}

// formatParams renders the operand fields of an instruction word, switching
// on the opcode pattern rather than the instruction name since several
// mnemonics cover multiple operand encodings.
func formatParams(word uint16) string {
	x := (word & 0x0F00) >> 8
	y := (word & 0x00F0) >> 4
	kk := word & 0x00FF
	nnn := word & 0x0FFF

	switch word & 0xF000 {
	case 0x0000:
		return "" // cls, ret
	case 0x1000, 0x2000:
		return fmt.Sprintf("$%03X", nnn)
	case 0x3000, 0x4000, 0x6000, 0x7000, 0xC000:
		return fmt.Sprintf("V%X, $%02X", x, kk)
	case 0x5000, 0x9000:
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0x8000:
		if n := word & 0x000F; n == 0x6 || n == 0xE {
			return fmt.Sprintf("V%X", x)
		}
		return fmt.Sprintf("V%X, V%X", x, y)
	case 0xA000:
		return fmt.Sprintf("I, $%03X", nnn)
	case 0xB000:
		return fmt.Sprintf("V0, $%03X", nnn)
	case 0xD000:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, word&0x000F)
	case 0xE000:
		return fmt.Sprintf("V%X", x)
	case 0xF000:
		return formatSystemParams(word, x)
	}
	return ""
}

// formatSystemParams renders the operands of the Fxkk group, which reuses
// the ld and add mnemonics for timer, key, font and memory transfers.
func formatSystemParams(word, x uint16) string {
	switch word & 0x00FF {
	case 0x07:
		return fmt.Sprintf("V%X, DT", x)
	case 0x0A:
		return fmt.Sprintf("V%X, K", x)
	case 0x15:
		return fmt.Sprintf("DT, V%X", x)
	case 0x18:
		return fmt.Sprintf("ST, V%X", x)
	case 0x1E:
		return fmt.Sprintf("I, V%X", x)
	case 0x29:
		return fmt.Sprintf("F, V%X", x)
	case 0x33:
		return fmt.Sprintf("B, V%X", x)
	case 0x55:
		return fmt.Sprintf("[I], V%X", x)
	case 0x65:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}
