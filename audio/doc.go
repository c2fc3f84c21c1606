// Package audio plays a short tone for each stopwatch transition.
//
// Audio is optional. If the speaker cannot be opened the Cue stays
// uninitialized and every Play is a no-op.
package audio
