// Package chip8 implements the Chip-8 interpreter core.
//
// The package is split into a pure state container (the VM struct with its
// bounds-checked accessors) and the execution engine (Step and the
// instruction dispatch in execute.go). The core performs no I/O and no
// timing: the host calls Step at its chosen instruction rate and TickTimers
// at 60 Hz, reads the framebuffer when a step reports it dirty, and feeds
// key state through SetKey.
package chip8

import (
	"fmt"
	"math/rand"
	"time"
)

// Chip-8 memory layout constants.
//
// Memory map (4KB total):
//
//	0x000-0x1FF: interpreter area, font sprites at FontStart
//	0x200-0xFFF: user program space (3584 bytes)
const (
	// MemorySize is the total addressable memory of the virtual machine.
	MemorySize = 4096

	// ProgramStart is the memory address where Chip-8 programs begin execution.
	ProgramStart = 0x200

	// FontStart is the memory address of the built-in hexadecimal font sprites.
	FontStart = 0x050

	// MaxAddress is the highest valid address in the Chip-8 memory space.
	MaxAddress = 0xFFF
)

// Display dimensions of the monochrome framebuffer.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

const (
	registerCount  = 16
	flagRegister   = 0xF
	stackDepth     = 16
	keyCount       = 16
	fontSpriteSize = 5
	addressMask    = MaxAddress
)

// engineState tracks whether the engine is executing instructions or
// suspended inside a key-wait instruction.
type engineState int

const (
	running engineState = iota
	awaitingKey
)

// Config contains the configuration for a new virtual machine.
type Config struct {
	// Quirks selects between documented behavioral variants of historical
	// interpreters. The zero value is the modern interpretation.
	Quirks Quirks

	// Rand is the randomness source for the rnd instruction. If nil, a
	// time-seeded source is used. Inject a fixed-seed source for
	// deterministic tests.
	Rand *rand.Rand
}

// VM holds the complete architectural state of a Chip-8 virtual machine.
// All mutation happens through LoadROM, Step, TickTimers and SetKey, so
// multiple independent instances can run side by side.
type VM struct {
	memory [MemorySize]byte
	v      [registerCount]byte
	i      uint16
	pc     uint16

	stack [stackDepth]uint16
	sp    int

	display        [DisplayWidth * DisplayHeight]bool
	displayTouched bool

	keys [keyCount]bool

	delayTimer uint8
	soundTimer uint8

	state   engineState
	keyDest byte // register receiving the key index when awaiting a key

	quirks Quirks
	rng    *rand.Rand
}

// New returns a new virtual machine with zeroed registers, the font sprites
// loaded and the program counter set to the program start address.
func New(cfg Config) *VM {
	vm := &VM{
		pc:     ProgramStart,
		quirks: cfg.Quirks,
		rng:    cfg.Rand,
	}
	if vm.rng == nil {
		vm.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	copy(vm.memory[FontStart:], fontSprites[:])
	return vm
}

// LoadROM copies a raw ROM image into memory at the program start address.
// Images larger than the available program space are rejected before any
// byte is written.
func (vm *VM) LoadROM(image []byte) error {
	if len(image) > MemorySize-ProgramStart {
		return fmt.Errorf("%w: %d bytes, %d available",
			ErrROMTooLarge, len(image), MemorySize-ProgramStart)
	}
	copy(vm.memory[ProgramStart:], image)
	return nil
}

// Framebuffer returns a snapshot copy of the 64x32 framebuffer in row-major
// order. Mutating the returned slice does not affect the machine.
func (vm *VM) Framebuffer() []bool {
	buf := make([]bool, len(vm.display))
	copy(buf, vm.display[:])
	return buf
}

// SetKey records the pressed state of a pad key (0x0-0xF). A press
// transition while the engine is suspended in a key-wait instruction
// resolves the wait: the key index is written to the target register and
// execution resumes. Keys outside the pad range are ignored.
func (vm *VM) SetKey(key uint8, pressed bool) {
	if key >= keyCount {
		return
	}
	if pressed && !vm.keys[key] && vm.state == awaitingKey {
		vm.v[vm.keyDest] = key
		vm.state = running
	}
	vm.keys[key] = pressed
}

// TickTimers decrements the delay and sound timers by one, flooring at
// zero. The host calls this at a 60 Hz cadence.
func (vm *VM) TickTimers() {
	if vm.delayTimer > 0 {
		vm.delayTimer--
	}
	if vm.soundTimer > 0 {
		vm.soundTimer--
	}
}

// DelayTimer returns the current delay timer value.
func (vm *VM) DelayTimer() uint8 {
	return vm.delayTimer
}

// SoundTimer returns the current sound timer value. The host emits a tone
// while it is nonzero.
func (vm *VM) SoundTimer() uint8 {
	return vm.soundTimer
}

// PC returns the current program counter.
func (vm *VM) PC() uint16 {
	return vm.pc
}

// AwaitingKey reports whether the engine is suspended in a key-wait
// instruction.
func (vm *VM) AwaitingKey() bool {
	return vm.state == awaitingKey
}

// ReadWord returns the big-endian 16-bit word at the given address, used by
// hosts for instruction tracing.
func (vm *VM) ReadWord(address uint16) uint16 {
	hi := vm.memory[address&addressMask]
	lo := vm.memory[(address+1)&addressMask]
	return uint16(hi)<<8 | uint16(lo)
}

// writeByte stores a value in memory, masking the address to the 4KB space.
// Writes into the interpreter area below the program start are ignored so
// program code cannot corrupt the engine-owned font data.
func (vm *VM) writeByte(address uint16, value byte) {
	address &= addressMask
	if address < ProgramStart {
		return
	}
	vm.memory[address] = value
}

// readByte reads a value from memory, masking the address to the 4KB space.
func (vm *VM) readByte(address uint16) byte {
	return vm.memory[address&addressMask]
}
