package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/lixenwraith/splitclock/constants"
	"github.com/lixenwraith/splitclock/stopwatch"
)

// drain streams s to completion and returns all samples
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	samples := drain(NewOscillator(440, 10*time.Millisecond, rate))
	if len(samples) != rate.N(10*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(10*time.Millisecond), len(samples))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 || s[0] != s[1] {
			t.Fatalf("Sample %d out of range or unbalanced: %v", i, s)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(48000)
	duration := 20 * time.Millisecond
	osc := NewOscillator(1000, duration, rate)
	samples := drain(NewEnvelope(osc, duration, 5*time.Millisecond, 5*time.Millisecond, rate))

	if len(samples) != rate.N(duration) {
		t.Fatalf("Expected %d samples, got %d", rate.N(duration), len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %v", samples[0][0])
	}
	last := samples[len(samples)-1][0]
	if math.Abs(last) > 0.01 {
		t.Errorf("Expected near-silent last sample, got %v", last)
	}
}

func TestToneFor(t *testing.T) {
	for _, state := range []stopwatch.State{stopwatch.NotStarted, stopwatch.Running, stopwatch.Done} {
		tone := ToneFor(state)
		if tone == nil {
			t.Fatalf("Expected tone for %v", state)
		}
		if n := len(drain(tone)); n != sampleRate.N(constants.ToneDuration) {
			t.Errorf("%v: expected %d samples, got %d", state, sampleRate.N(constants.ToneDuration), n)
		}
	}
	if ToneFor(stopwatch.State(42)) != nil {
		t.Error("Expected no tone for unknown state")
	}
}

func TestCuePlayBeforeInitializeIsNoop(t *testing.T) {
	c := NewCue()
	c.Play(stopwatch.Running)
	if c.mixer.Len() != 0 {
		t.Errorf("Expected empty mixer, got %d streamers", c.mixer.Len())
	}
	c.Close()
}

func TestCuePlayQueuesTone(t *testing.T) {
	c := NewCue()
	c.initialized = true

	c.Play(stopwatch.Running)
	c.Play(stopwatch.Done)
	if c.mixer.Len() != 2 {
		t.Errorf("Expected 2 queued tones, got %d", c.mixer.Len())
	}
}
