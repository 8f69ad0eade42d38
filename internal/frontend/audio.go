package frontend

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

const (
	beepSampleRate = 44100
	beepFrequency  = 440
	beepVolume     = 0.25
)

// Beeper produces the Chip-8 tone: a square wave that plays while the gate
// is open and silence otherwise. It implements io.Reader for the oto
// player, which pulls samples from a separate audio thread, so the gate is
// an atomic flag.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player

	active atomic.Bool
	phase  int
}

// NewBeeper initializes the audio backend and starts the (silent) player.
func NewBeeper() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   beepSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("creating audio context: %w", err)
	}
	<-ready

	b := &Beeper{ctx: ctx}
	b.player = ctx.NewPlayer(b)
	b.player.Play()
	return b, nil
}

// SetActive opens or closes the tone gate. The host calls this each frame
// with the sound timer state.
func (b *Beeper) SetActive(on bool) {
	b.active.Store(on)
}

// Read generates mono float32 square wave samples.
func (b *Beeper) Read(p []byte) (int, error) {
	const bytesPerSample = 4
	const period = beepSampleRate / beepFrequency

	samples := len(p) / bytesPerSample
	active := b.active.Load()

	for i := 0; i < samples; i++ {
		var value float32
		if active {
			value = -beepVolume
			if b.phase < period/2 {
				value = beepVolume
			}
			b.phase = (b.phase + 1) % period
		}
		binary.LittleEndian.PutUint32(p[i*bytesPerSample:], math.Float32bits(value))
	}

	return samples * bytesPerSample, nil
}

// Close stops the player and releases the audio device.
func (b *Beeper) Close() {
	if b.player != nil {
		_ = b.player.Close()
	}
}
