package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/splitclock/constants"
	"github.com/lixenwraith/splitclock/stopwatch"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// Cue plays a tone after each stopwatch transition
type Cue struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCue creates an uninitialized cue, Play is a no-op until Initialize succeeds
func NewCue() *Cue {
	return &Cue{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (c *Cue) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("audio init: %w", err)
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the tone for the state just entered
func (c *Cue) Play(state stopwatch.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	tone := ToneFor(state)
	if tone == nil {
		return
	}

	speaker.Lock()
	c.mixer.Add(tone)
	speaker.Unlock()
}

// Close stops playback and releases the speaker
func (c *Cue) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	c.initialized = false
}

// ToneFor builds the tone announcing entry into state
func ToneFor(state stopwatch.State) beep.Streamer {
	var freq float64
	switch state {
	case stopwatch.Running:
		freq = constants.StartToneFreq
	case stopwatch.Done:
		freq = constants.StopToneFreq
	case stopwatch.NotStarted:
		freq = constants.ResetToneFreq
	default:
		return nil
	}

	osc := NewOscillator(freq, constants.ToneDuration, sampleRate)
	shaped := NewEnvelope(osc, constants.ToneDuration, constants.ToneAttack, constants.ToneRelease, sampleRate)
	return newVolume(shaped, constants.ToneVolume)
}
