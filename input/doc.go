// Package input turns terminal events into intents for the event loop.
//
// tcell's PollEvent blocks, so Source runs it on a pump goroutine and
// buffers the results; Poll drains the buffer with zero wait. Only the
// loop goroutine calls Poll.
package input
