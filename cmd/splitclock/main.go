package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/splitclock/app"
	"github.com/lixenwraith/splitclock/audio"
	"github.com/lixenwraith/splitclock/clock"
	"github.com/lixenwraith/splitclock/constants"
	"github.com/lixenwraith/splitclock/display"
	"github.com/lixenwraith/splitclock/input"
)

func main() {
	logFile := setupLogging(constants.DebugLogging)

	code := run()
	log.Printf("exit %d", code)
	if logFile != nil {
		logFile.Close()
	}
	os.Exit(code)
}

func run() (code int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	surface, err := display.NewSurface()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}

	// Panic recovery: restore the terminal before printing so the trace is readable
	defer func() {
		if r := recover(); r != nil {
			surface.Close()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSPLITCLOCK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			code = 1
		}
	}()
	defer surface.Close()

	source := input.NewSource(surface.Screen())
	source.Start()
	defer source.Stop()

	loop := app.NewLoop(surface, source, clock.NewMonotonicTimeProvider())

	cue := audio.NewCue()
	if err := cue.Initialize(); err != nil {
		log.Printf("%v (continuing without audio)", err)
	} else {
		defer cue.Close()
		loop.SetCue(cue)
	}

	if err := loop.Run(ctx); err != nil {
		surface.Close()
		fmt.Fprintf(os.Stderr, "splitclock: %v\n", err)
		return 1
	}
	return 0
}
