package chip8

import "fmt"

const spriteWidth = 8

// StepResult reports the observable outcome of a single instruction step.
type StepResult struct {
	// DisplayDirty is set when the step changed the framebuffer and the
	// host should redraw.
	DisplayDirty bool

	// AwaitingKey is set while the engine is suspended in a key-wait
	// instruction. Further steps are no-ops until a key press is
	// delivered through SetKey.
	AwaitingKey bool
}

// Step fetches, decodes and executes a single instruction at the program
// counter. The program counter advances by 2 unless the instruction
// branched; taken skips advance by 4 in total. A failed step returns the
// error without having mutated any machine state.
func (vm *VM) Step() (StepResult, error) {
	if vm.state == awaitingKey {
		return StepResult{AwaitingKey: true}, nil
	}

	opcode := vm.ReadWord(vm.pc)
	vm.displayTouched = false

	if err := vm.execute(opcode); err != nil {
		return StepResult{}, err
	}

	return StepResult{
		DisplayDirty: vm.displayTouched,
		AwaitingKey:  vm.state == awaitingKey,
	}, nil
}

// execute dispatches an instruction word by its high nibble and runs the
// instruction semantics. Every path either commits the new program counter
// or returns an error before touching any state.
func (vm *VM) execute(opcode uint16) error {
	x := registerX(opcode)
	y := registerY(opcode)
	kk := byteField(opcode)
	nnn := addressField(opcode)
	n := nibbleField(opcode)

	next := vm.pc + 2

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0: // cls
			vm.display = [DisplayWidth * DisplayHeight]bool{}
			vm.displayTouched = true
		case 0x00EE: // ret
			if vm.sp == 0 {
				return fmt.Errorf("%w: ret at %04X", ErrStackUnderflow, vm.pc)
			}
			vm.sp--
			next = vm.stack[vm.sp]
		default:
			// 0nnn sys: machine code call on the original hardware,
			// ignored by software interpreters.
		}

	case 0x1: // jp nnn
		next = nnn

	case 0x2: // call nnn
		if vm.sp == stackDepth {
			return fmt.Errorf("%w: call at %04X", ErrStackOverflow, vm.pc)
		}
		vm.stack[vm.sp] = vm.pc + 2
		vm.sp++
		next = nnn

	case 0x3: // se Vx, kk
		if vm.v[x] == kk {
			next += 2
		}

	case 0x4: // sne Vx, kk
		if vm.v[x] != kk {
			next += 2
		}

	case 0x5: // se Vx, Vy
		if n != 0 {
			return &DecodeError{Opcode: opcode, PC: vm.pc}
		}
		if vm.v[x] == vm.v[y] {
			next += 2
		}

	case 0x6: // ld Vx, kk
		vm.v[x] = kk

	case 0x7: // add Vx, kk (no flag)
		vm.v[x] += kk

	case 0x8:
		if err := vm.executeALU(opcode, x, y, n); err != nil {
			return err
		}

	case 0x9: // sne Vx, Vy
		if n != 0 {
			return &DecodeError{Opcode: opcode, PC: vm.pc}
		}
		if vm.v[x] != vm.v[y] {
			next += 2
		}

	case 0xA: // ld I, nnn
		vm.i = nnn

	case 0xB: // jp V0, nnn
		offset := vm.v[0]
		if vm.quirks.JumpAddsVX {
			offset = vm.v[x]
		}
		next = (nnn + uint16(offset)) & addressMask

	case 0xC: // rnd Vx, kk
		vm.v[x] = byte(vm.rng.Intn(256)) & kk

	case 0xD: // drw Vx, Vy, n
		vm.drawSprite(x, y, n)

	case 0xE:
		switch kk {
		case 0x9E: // skp Vx
			if vm.keys[vm.v[x]&0x0F] {
				next += 2
			}
		case 0xA1: // sknp Vx
			if !vm.keys[vm.v[x]&0x0F] {
				next += 2
			}
		default:
			return &DecodeError{Opcode: opcode, PC: vm.pc}
		}

	case 0xF:
		if err := vm.executeSystem(opcode, x, kk); err != nil {
			return err
		}
	}

	vm.pc = next & addressMask
	return nil
}

// executeALU handles the 8xyn arithmetic and logic group. The flag
// producing instructions compute VF from the full-width result and write it
// after the destination register, so VF as an operand stays well-defined.
func (vm *VM) executeALU(opcode uint16, x, y, n byte) error {
	switch n {
	case 0x0: // ld Vx, Vy
		vm.v[x] = vm.v[y]

	case 0x1: // or Vx, Vy
		vm.v[x] |= vm.v[y]

	case 0x2: // and Vx, Vy
		vm.v[x] &= vm.v[y]

	case 0x3: // xor Vx, Vy
		vm.v[x] ^= vm.v[y]

	case 0x4: // add Vx, Vy
		sum := uint16(vm.v[x]) + uint16(vm.v[y])
		vm.v[x] = byte(sum)
		vm.v[flagRegister] = byte(sum >> 8)

	case 0x5: // sub Vx, Vy
		noBorrow := byte(0)
		if vm.v[x] >= vm.v[y] {
			noBorrow = 1
		}
		vm.v[x] -= vm.v[y]
		vm.v[flagRegister] = noBorrow

	case 0x6: // shr Vx
		src := vm.v[x]
		if vm.quirks.ShiftSourceVY {
			src = vm.v[y]
		}
		vm.v[x] = src >> 1
		vm.v[flagRegister] = src & 0x01

	case 0x7: // subn Vx, Vy
		noBorrow := byte(0)
		if vm.v[y] >= vm.v[x] {
			noBorrow = 1
		}
		vm.v[x] = vm.v[y] - vm.v[x]
		vm.v[flagRegister] = noBorrow

	case 0xE: // shl Vx
		src := vm.v[x]
		if vm.quirks.ShiftSourceVY {
			src = vm.v[y]
		}
		vm.v[x] = src << 1
		vm.v[flagRegister] = src >> 7

	default:
		return &DecodeError{Opcode: opcode, PC: vm.pc}
	}
	return nil
}

// executeSystem handles the Fxkk timer, input, index and memory group.
func (vm *VM) executeSystem(opcode uint16, x, kk byte) error {
	switch kk {
	case 0x07: // ld Vx, DT
		vm.v[x] = vm.delayTimer

	case 0x0A: // ld Vx, K: suspend until a key press is delivered
		vm.state = awaitingKey
		vm.keyDest = x

	case 0x15: // ld DT, Vx
		vm.delayTimer = vm.v[x]

	case 0x18: // ld ST, Vx
		vm.soundTimer = vm.v[x]

	case 0x1E: // add I, Vx
		vm.i = (vm.i + uint16(vm.v[x])) & addressMask

	case 0x29: // ld F, Vx
		vm.i = FontStart + uint16(vm.v[x]&0x0F)*fontSpriteSize

	case 0x33: // ld B, Vx: decimal digits, most significant first
		vm.writeByte(vm.i, vm.v[x]/100)
		vm.writeByte(vm.i+1, vm.v[x]/10%10)
		vm.writeByte(vm.i+2, vm.v[x]%10)

	case 0x55: // ld [I], Vx: store V0..Vx inclusive
		for r := byte(0); r <= x; r++ {
			vm.writeByte(vm.i+uint16(r), vm.v[r])
		}
		if vm.quirks.IncrementIOnStore {
			vm.i = (vm.i + uint16(x) + 1) & addressMask
		}

	case 0x65: // ld Vx, [I]: read V0..Vx inclusive
		for r := byte(0); r <= x; r++ {
			vm.v[r] = vm.readByte(vm.i + uint16(r))
		}
		if vm.quirks.IncrementIOnStore {
			vm.i = (vm.i + uint16(x) + 1) & addressMask
		}

	default:
		return &DecodeError{Opcode: opcode, PC: vm.pc}
	}
	return nil
}

// drawSprite XOR-blits the n-byte sprite at I onto the framebuffer at
// (Vx, Vy). The sprite origin wraps around the display edges; individual
// pixels falling off-screen clip unless the wrap quirk is enabled. VF is
// set last: 1 if any set pixel was unset by the blit, 0 otherwise.
func (vm *VM) drawSprite(x, y, height byte) {
	originX := int(vm.v[x]) % DisplayWidth
	originY := int(vm.v[y]) % DisplayHeight
	collision := byte(0)

	for row := 0; row < int(height); row++ {
		bits := vm.readByte(vm.i + uint16(row))
		posY := originY + row
		if posY >= DisplayHeight {
			if !vm.quirks.WrapSpritePixels {
				continue
			}
			posY %= DisplayHeight
		}

		for bit := 0; bit < spriteWidth; bit++ {
			if bits&(0x80>>bit) == 0 {
				continue
			}
			posX := originX + bit
			if posX >= DisplayWidth {
				if !vm.quirks.WrapSpritePixels {
					continue
				}
				posX %= DisplayWidth
			}

			index := posY*DisplayWidth + posX
			if vm.display[index] {
				collision = 1
			}
			vm.display[index] = !vm.display[index]
		}
	}

	vm.v[flagRegister] = collision
	vm.displayTouched = true
}
