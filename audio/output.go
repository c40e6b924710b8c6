package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// Output owns the speaker and a mixer that time-scaled streams are added to
type Output struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewOutput creates an uninitialized output
func NewOutput() *Output {
	return &Output{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts playing the mixer
func (o *Output) Initialize() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(o.mixer)
	o.initialized = true
	return nil
}

// Initialized reports whether the speaker is open
func (o *Output) Initialized() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initialized
}

// Attach adds the sink's stream to the mixer and routes its mutations through the speaker lock
// Without an open speaker the sink keeps working silently
func (o *Output) Attach(sink *PitchSink) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}
	sink.SetLocker(speaker.Lock, speaker.Unlock)

	speaker.Lock()
	o.mixer.Add(sink.Streamer())
	speaker.Unlock()
}

// Cleanup stops all streams and closes the speaker
func (o *Output) Cleanup() {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !o.initialized {
		return
	}

	speaker.Lock()
	o.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	o.initialized = false
}
