package chip8

// Quirks selects between documented points of behavioral divergence of
// historical Chip-8 interpreters. The zero value is the modern
// interpretation, which matches the majority of the test ROM corpus; the
// original COSMAC VIP behavior is reachable by enabling the toggles.
type Quirks struct {
	// ShiftSourceVY makes shr and shl operate on Vy and store the result
	// in Vx, as the original interpreter did. By default shifts operate on
	// Vx directly and ignore Vy.
	ShiftSourceVY bool

	// JumpAddsVX makes jp V0, addr add Vx (with x taken from the high
	// nibble of the address field) instead of V0.
	JumpAddsVX bool

	// IncrementIOnStore makes the register block copy instructions leave
	// I pointing past the last byte transferred, as the original
	// interpreter did. By default I is unchanged.
	IncrementIOnStore bool

	// WrapSpritePixels makes sprite pixels that fall off-screen wrap to
	// the opposite edge instead of being clipped. The sprite origin wraps
	// in either mode.
	WrapSpritePixels bool
}
