package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// resampleQuality trades CPU for fidelity when stretching audio with the time scale
const resampleQuality = 4

// PitchSink slows down, speeds up and pauses a stream in lockstep with the time scale
// It implements engine.ScaleSink
type PitchSink struct {
	ctrl      *beep.Ctrl
	resampler *beep.Resampler

	lock   func()
	unlock func()
}

// NewPitchSink wraps src so its playback rate follows the time scale, starting at 1
func NewPitchSink(src beep.Streamer) *PitchSink {
	resampler := beep.ResampleRatio(resampleQuality, 1, src)
	return &PitchSink{
		ctrl:      &beep.Ctrl{Streamer: resampler},
		resampler: resampler,
		lock:      func() {},
		unlock:    func() {},
	}
}

// SetLocker installs the lock guarding the stream while the speaker pulls samples from it
func (p *PitchSink) SetLocker(lock, unlock func()) {
	p.lock, p.unlock = lock, unlock
}

// Streamer returns the stream to hand to a mixer or the speaker
func (p *PitchSink) Streamer() beep.Streamer {
	return p.ctrl
}

// SetTimeScale implements engine.ScaleSink
// Zero pauses the stream; the resampler keeps its last positive ratio since it cannot represent zero
func (p *PitchSink) SetTimeScale(scale float64) {
	p.lock()
	defer p.unlock()

	if scale <= 0 {
		p.ctrl.Paused = true
		return
	}
	p.ctrl.Paused = false
	p.resampler.SetRatio(scale)
}

// Paused reports whether the stream is silenced
func (p *PitchSink) Paused() bool {
	p.lock()
	defer p.unlock()
	return p.ctrl.Paused
}

// Ratio returns the current playback rate multiplier
func (p *PitchSink) Ratio() float64 {
	p.lock()
	defer p.unlock()
	return p.resampler.Ratio()
}

// Tone returns an endless, softened sine tone for the demo soundtrack
func Tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: sine,
		Base:     2,
		Volume:   -3,
	}, nil
}
