package chip8

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// newTestVM returns a machine with a deterministic randomness source.
func newTestVM(quirks Quirks) *VM {
	return New(Config{
		Quirks: quirks,
		Rand:   rand.New(rand.NewSource(1)),
	})
}

// writeProgram places instruction words into memory at the program start
// address.
func writeProgram(vm *VM, words ...uint16) {
	address := uint16(ProgramStart)
	for _, w := range words {
		vm.memory[address] = byte(w >> 8)
		vm.memory[address+1] = byte(w)
		address += 2
	}
}

// step executes a single instruction and fails the test on any engine error.
func step(t *testing.T, vm *VM) StepResult {
	t.Helper()
	result, err := vm.Step()
	assert.NoError(t, err)
	return result
}

func TestNew(t *testing.T) {
	vm := newTestVM(Quirks{})

	assert.Equal(t, uint16(ProgramStart), vm.pc)
	assert.Equal(t, 0, vm.sp)
	assert.Equal(t, uint8(0), vm.delayTimer)
	assert.Equal(t, uint8(0), vm.soundTimer)
	assert.False(t, vm.AwaitingKey())

	for i := range fontSprites {
		assert.Equal(t, fontSprites[i], vm.memory[FontStart+i])
	}
}

func TestLoadROM(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr bool
	}{
		{"small ROM", 2, false},
		{"maximum size", MemorySize - ProgramStart, false},
		{"one byte too large", MemorySize - ProgramStart + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vm := newTestVM(Quirks{})
			err := vm.LoadROM(make([]byte, tt.size))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrROMTooLarge))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadROMContent(t *testing.T) {
	vm := newTestVM(Quirks{})

	err := vm.LoadROM([]byte{0x12, 0x34, 0x56})
	assert.NoError(t, err)
	assert.Equal(t, byte(0x12), vm.memory[ProgramStart])
	assert.Equal(t, byte(0x34), vm.memory[ProgramStart+1])
	assert.Equal(t, byte(0x56), vm.memory[ProgramStart+2])
}

func TestFramebufferSnapshot(t *testing.T) {
	vm := newTestVM(Quirks{})
	vm.display[0] = true

	buf := vm.Framebuffer()
	assert.Equal(t, DisplayWidth*DisplayHeight, len(buf))
	assert.True(t, buf[0])

	// the snapshot is a copy, mutating it must not reach the machine
	buf[0] = false
	buf[1] = true
	assert.True(t, vm.display[0])
	assert.False(t, vm.display[1])
}

func TestSetKey(t *testing.T) {
	vm := newTestVM(Quirks{})

	vm.SetKey(0x4, true)
	assert.True(t, vm.keys[0x4])

	vm.SetKey(0x4, false)
	assert.False(t, vm.keys[0x4])

	// out of range keys are ignored
	vm.SetKey(0x10, true)
	for _, pressed := range vm.keys {
		assert.False(t, pressed)
	}
}

func TestTickTimers(t *testing.T) {
	vm := newTestVM(Quirks{})
	vm.delayTimer = 60
	vm.soundTimer = 2

	for i := 0; i < 60; i++ {
		vm.TickTimers()
	}
	assert.Equal(t, uint8(0), vm.delayTimer)
	assert.Equal(t, uint8(0), vm.soundTimer)

	// no underflow below zero
	vm.TickTimers()
	assert.Equal(t, uint8(0), vm.delayTimer)
	assert.Equal(t, uint8(0), vm.soundTimer)
}

func TestReadWord(t *testing.T) {
	vm := newTestVM(Quirks{})
	vm.memory[0x300] = 0xAB
	vm.memory[0x301] = 0xCD

	assert.Equal(t, uint16(0xABCD), vm.ReadWord(0x300))

	// addresses wrap inside the 4KB space
	vm.memory[0x000] = 0x11
	vm.memory[MaxAddress] = 0x22
	assert.Equal(t, uint16(0x2211), vm.ReadWord(MaxAddress))
}

func TestFontDataProtected(t *testing.T) {
	vm := newTestVM(Quirks{})

	// a block store pointed below the program area must not clobber the
	// interpreter-owned font sprites
	vm.i = FontStart
	vm.v[0] = 0xAA
	vm.v[1] = 0xBB
	writeProgram(vm, 0xF155) // ld [I], V1

	step(t, vm)

	assert.Equal(t, fontSprites[0], vm.memory[FontStart])
	assert.Equal(t, fontSprites[1], vm.memory[FontStart+1])
}
