package nes

import "math"

const apuSampleRate = 44100

// APU is an unimplemented Audio Processing Unit (spec.md §1 Non-goals).
// It exists only so the host shell has something to feed its audio
// output stream with; $4000-$4015 reads and $4000-$4013/$4015/$4017
// writes are discarded at the bus (spec.md §4.4) and never reach this
// type.
type APU struct {
	out    chan float32
	sample int
}

// NewAPU creates a stubbed APU.
func NewAPU() *APU {
	return &APU{}
}

// SetAudioOut wires the sample channel the host's audio stream reads from.
func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}

// Step advances the stub by one CPU cycle's worth of samples, emitting a
// fixed 440Hz test tone so the wired portaudio stream has something to
// play; this is not a model of NES audio hardware.
func (a *APU) Step() {
	if a.out == nil {
		return
	}
	x := float32(math.Sin(2.0 * math.Pi * 440 * float64(a.sample) / float64(apuSampleRate)))
	select {
	case a.out <- x:
	default:
	}
	a.sample++
	if a.sample >= apuSampleRate*10 {
		a.sample = 0
	}
}
