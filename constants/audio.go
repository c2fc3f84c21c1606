package constants

import "time"

// AudioSampleRate is the speaker sample rate in Hz
const AudioSampleRate = 48000

// AudioBufferDuration is the speaker buffer length
const AudioBufferDuration = 100 * time.Millisecond

// Transition cue tones
const (
	// StartToneFreq plays on NotStarted -> Running (A5)
	StartToneFreq = 880.0
	// StopToneFreq plays on Running -> Done (A4)
	StopToneFreq = 440.0
	// ResetToneFreq plays on Done -> NotStarted (E5)
	ResetToneFreq = 659.25

	ToneDuration = 60 * time.Millisecond
	ToneAttack   = 5 * time.Millisecond
	ToneRelease  = 40 * time.Millisecond
	ToneVolume   = 0.4
)
