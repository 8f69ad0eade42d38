// Package rom handles ROM image file loading operations.
package rom

import (
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/chip8emu/internal/chip8"
)

// ErrEmptyROM is returned when a ROM file contains no data.
var ErrEmptyROM = errors.New("ROM file is empty")

// LoadFile reads a raw Chip-8 ROM image from disk. Chip-8 ROMs have no
// header, the file content is the program image loaded at the program start
// address. Size validation against the 4KB memory space happens here so a
// bad file is rejected before any machine is constructed.
func LoadFile(path string) ([]byte, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file %s: %w", path, err)
	}

	if len(image) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyROM, path)
	}
	if limit := chip8.MemorySize - chip8.ProgramStart; len(image) > limit {
		return nil, fmt.Errorf("%w: %d bytes, %d available",
			chip8.ErrROMTooLarge, len(image), limit)
	}

	return image, nil
}
