package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestOperandFieldExtraction(t *testing.T) {
	tests := []struct {
		name   string
		opcode uint16
		nnn    uint16
		kk     byte
		x      byte
		y      byte
		n      byte
	}{
		{"jp", 0x1A23, 0xA23, 0x23, 0xA, 0x2, 0x3},
		{"ld immediate", 0x6555, 0x555, 0x55, 0x5, 0x5, 0x5},
		{"drw", 0xD12F, 0x12F, 0x2F, 0x1, 0x2, 0xF},
		{"all zero", 0x0000, 0x000, 0x00, 0x0, 0x0, 0x0},
		{"all set", 0xFFFF, 0xFFF, 0xFF, 0xF, 0xF, 0xF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.nnn, addressField(tt.opcode))
			assert.Equal(t, tt.kk, byteField(tt.opcode))
			assert.Equal(t, tt.x, registerX(tt.opcode))
			assert.Equal(t, tt.y, registerY(tt.opcode))
			assert.Equal(t, tt.n, nibbleField(tt.opcode))
		})
	}
}

func TestOperandFieldRoundTrip(t *testing.T) {
	// extraction must invert construction for every operand combination
	for x := uint16(0); x < 16; x++ {
		for y := uint16(0); y < 16; y++ {
			for n := uint16(0); n < 16; n++ {
				opcode := 0x8000 | x<<8 | y<<4 | n
				assert.Equal(t, byte(x), registerX(opcode))
				assert.Equal(t, byte(y), registerY(opcode))
				assert.Equal(t, byte(n), nibbleField(opcode))
				assert.Equal(t, byte(y<<4|n), byteField(opcode))
				assert.Equal(t, x<<8|y<<4|n, addressField(opcode))
			}
		}
	}
}
