// Package app runs the poll → advance → render loop.
//
// Each Step polls pending input without waiting, applies every trigger to
// the stopwatch in arrival order, and only then renders the frame, so a
// frame always reflects all input polled up to and including its own
// poll. Run repeats Step with a fixed sleep until quit, context
// cancellation, or a fatal surface/input error.
package app
