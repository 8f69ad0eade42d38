package frontend

import "github.com/hajimehoshi/ebiten/v2"

// keyMap maps the host keyboard onto the 16-key pad using the classic
// COSMAC VIP layout:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   =>   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keyMap = map[ebiten.Key]uint8{
	ebiten.Key1: 0x1,
	ebiten.Key2: 0x2,
	ebiten.Key3: 0x3,
	ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4,
	ebiten.KeyW: 0x5,
	ebiten.KeyE: 0x6,
	ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7,
	ebiten.KeyS: 0x8,
	ebiten.KeyD: 0x9,
	ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA,
	ebiten.KeyX: 0x0,
	ebiten.KeyC: 0xB,
	ebiten.KeyV: 0xF,
}

// pollKeys feeds the current pressed state of every mapped key into the
// interpreter.
func (f *Frontend) pollKeys() {
	for key, pad := range keyMap {
		f.vm.SetKey(pad, ebiten.IsKeyPressed(key))
	}
}
