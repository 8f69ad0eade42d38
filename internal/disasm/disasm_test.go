package disasm

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		word     uint16
		expected string
	}{
		{"cls", 0x00E0, "cls"},
		{"ret", 0x00EE, "ret"},
		{"jp", 0x1234, "jp $234"},
		{"call", 0x2300, "call $300"},
		{"se immediate", 0x3234, "se V2, $34"},
		{"sne immediate", 0x4234, "sne V2, $34"},
		{"se register", 0x5230, "se V2, V3"},
		{"ld immediate", 0x6234, "ld V2, $34"},
		{"add immediate", 0x7234, "add V2, $34"},
		{"ld register", 0x8230, "ld V2, V3"},
		{"or", 0x8231, "or V2, V3"},
		{"and", 0x8232, "and V2, V3"},
		{"xor", 0x8233, "xor V2, V3"},
		{"add register", 0x8234, "add V2, V3"},
		{"sub", 0x8235, "sub V2, V3"},
		{"shr", 0x8236, "shr V2"},
		{"subn", 0x8237, "subn V2, V3"},
		{"shl", 0x823E, "shl V2"},
		{"sne register", 0x9230, "sne V2, V3"},
		{"ld index", 0xA234, "ld I, $234"},
		{"jp offset", 0xB234, "jp V0, $234"},
		{"rnd", 0xC234, "rnd V2, $34"},
		{"drw", 0xD235, "drw V2, V3, $5"},
		{"skp", 0xE29E, "skp V2"},
		{"sknp", 0xE2A1, "sknp V2"},
		{"ld delay to register", 0xF207, "ld V2, DT"},
		{"ld key", 0xF20A, "ld V2, K"},
		{"ld delay", 0xF215, "ld DT, V2"},
		{"ld sound", 0xF218, "ld ST, V2"},
		{"add index", 0xF21E, "add I, V2"},
		{"ld font", 0xF229, "ld F, V2"},
		{"ld bcd", 0xF233, "ld B, V2"},
		{"ld memory", 0xF255, "ld [I], V2"},
		{"ld registers", 0xF265, "ld V2, [I]"},
		{"unknown word", 0xFFFF, ".word $FFFF"},
		{"invalid alu form", 0x8238, ".word $8238"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.word))
		})
	}
}

func TestListing(t *testing.T) {
	rom := []byte{
		0x00, 0xE0, // cls
		0xA2, 0x10, // ld I, $210
		0x12, 0x00, // jp $200
	}

	var sb strings.Builder
	err := Listing(&sb, rom)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "0200: 00E0  cls", lines[0])
	assert.Equal(t, "0202: A210  ld I, $210", lines[1])
	assert.Equal(t, "0204: 1200  jp $200", lines[2])
}

func TestListingOddLength(t *testing.T) {
	// a trailing data byte is padded with zero
	var sb strings.Builder
	err := Listing(&sb, []byte{0x00, 0xE0, 0xE1})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "0202: E100  .word $E100", lines[1])
}
