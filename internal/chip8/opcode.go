package chip8

// Instruction words encode their operands in fixed nibble fields:
//
//	nnn - 12-bit address in the low three nibbles
//	kk  - 8-bit immediate in the low byte
//	x   - register index in the second nibble
//	y   - register index in the third nibble
//	n   - 4-bit immediate in the low nibble

// addressField extracts the 12-bit nnn address field.
func addressField(opcode uint16) uint16 {
	return opcode & 0x0FFF
}

// byteField extracts the 8-bit kk immediate field.
func byteField(opcode uint16) byte {
	return byte(opcode & 0x00FF)
}

// registerX extracts the x register index.
func registerX(opcode uint16) byte {
	return byte((opcode & 0x0F00) >> 8)
}

// registerY extracts the y register index.
func registerY(opcode uint16) byte {
	return byte((opcode & 0x00F0) >> 4)
}

// nibbleField extracts the 4-bit n immediate field.
func nibbleField(opcode uint16) byte {
	return byte(opcode & 0x000F)
}
