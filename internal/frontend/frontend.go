// Package frontend drives the interpreter core with an ebiten window. It
// owns the three host-side rates: ebiten calls Update at 60 Hz, each update
// executes the configured number of instructions and ticks the timers once,
// and the display is only re-rendered when a step reported it dirty.
package frontend

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/retroenv/chip8emu/internal/chip8"
	"github.com/retroenv/chip8emu/internal/disasm"
	"github.com/retroenv/retrogolib/log"
)

const windowTitle = "chip8emu"

// Config contains the configuration for a new frontend.
type Config struct {
	VM     *chip8.VM
	Logger *log.Logger

	CyclesPerFrame int
	Scale          int
	Trace          bool
}

// Frontend implements ebiten.Game, bridging the window system and the
// interpreter core.
type Frontend struct {
	vm     *chip8.VM
	logger *log.Logger
	beeper *Beeper

	cycles int
	scale  int
	trace  bool

	ctx    context.Context // set by Run, checked each update for shutdown
	frame  *ebiten.Image
	pixels []byte
	dirty  bool
}

// New returns a new frontend with the audio backend initialized.
func New(cfg Config) (*Frontend, error) {
	beeper, err := NewBeeper()
	if err != nil {
		return nil, fmt.Errorf("initializing audio: %w", err)
	}

	return &Frontend{
		vm:     cfg.VM,
		logger: cfg.Logger,
		beeper: beeper,
		cycles: cfg.CyclesPerFrame,
		scale:  cfg.Scale,
		trace:  cfg.Trace,
		pixels: make([]byte, 4*chip8.DisplayWidth*chip8.DisplayHeight),
		dirty:  true,
	}, nil
}

// Run opens the window and blocks until the window is closed, the context
// is cancelled, escape is pressed or the interpreter reports an error.
func (f *Frontend) Run(ctx context.Context) error {
	f.ctx = ctx

	ebiten.SetWindowSize(chip8.DisplayWidth*f.scale, chip8.DisplayHeight*f.scale)
	ebiten.SetWindowTitle(windowTitle)
	defer f.beeper.Close()

	if err := ebiten.RunGame(f); err != nil {
		return fmt.Errorf("running frontend: %w", err)
	}
	return nil
}

// Update executes one 60 Hz frame: poll keys, run the configured number of
// instruction steps, tick the timers once and gate the beep on the sound
// timer.
func (f *Frontend) Update() error {
	if f.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	f.pollKeys()

	for i := 0; i < f.cycles; i++ {
		if f.trace {
			pc := f.vm.PC()
			f.logger.Debug("Executing",
				log.Hex("pc", pc),
				log.String("code", disasm.Format(f.vm.ReadWord(pc))))
		}

		result, err := f.vm.Step()
		if err != nil {
			return fmt.Errorf("stepping interpreter: %w", err)
		}
		if result.DisplayDirty {
			f.dirty = true
		}
		if result.AwaitingKey {
			// the remaining frame budget would be burned as no-ops
			break
		}
	}

	f.vm.TickTimers()
	f.beeper.SetActive(f.vm.SoundTimer() > 0)
	return nil
}

// Draw renders the framebuffer. The offscreen frame image is only updated
// when the interpreter touched the display since the last draw.
func (f *Frontend) Draw(screen *ebiten.Image) {
	if f.frame == nil {
		f.frame = ebiten.NewImage(chip8.DisplayWidth, chip8.DisplayHeight)
	}
	if f.dirty {
		f.renderFrame()
		f.dirty = false
	}
	screen.DrawImage(f.frame, nil)
}

// Layout reports the logical display size, ebiten scales it to the window.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return chip8.DisplayWidth, chip8.DisplayHeight
}

func (f *Frontend) renderFrame() {
	for i, on := range f.vm.Framebuffer() {
		value := byte(0x00)
		if on {
			value = 0xFF
		}
		f.pixels[4*i] = value
		f.pixels[4*i+1] = value
		f.pixels[4*i+2] = value
		f.pixels[4*i+3] = 0xFF
	}
	f.frame.WritePixels(f.pixels)
}
