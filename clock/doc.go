// Package clock provides injectable time sources and the wall-clock
// formatter shown in the right-hand panel.
//
// Production code uses MonotonicTimeProvider; tests drive time explicitly
// through MockTimeProvider so elapsed-time assertions are exact.
package clock
