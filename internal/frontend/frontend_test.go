package frontend

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestKeyMapCoversPad(t *testing.T) {
	assert.Equal(t, 16, len(keyMap))

	seen := map[uint8]bool{}
	for _, pad := range keyMap {
		assert.True(t, pad <= 0xF)
		assert.False(t, seen[pad], "pad key %X mapped twice", pad)
		seen[pad] = true
	}
	assert.Equal(t, 16, len(seen))
}

func TestBeeperRead(t *testing.T) {
	b := &Beeper{}
	buf := make([]byte, 256)

	// gate closed, all samples are silence
	n, err := b.Read(buf)
	assert.NoError(t, err)
	assert.Equal(t, len(buf), n)
	for i := 0; i < n; i += 4 {
		assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(buf[i:]))
	}

	// gate open, the square wave swings between the two volume levels
	b.SetActive(true)
	_, err = b.Read(buf)
	assert.NoError(t, err)

	high, low := false, false
	for i := 0; i < len(buf); i += 4 {
		value := math.Float32frombits(binary.LittleEndian.Uint32(buf[i:]))
		switch {
		case value > 0:
			high = true
		case value < 0:
			low = true
		}
	}
	assert.True(t, high)
	assert.True(t, low)
}
