package cmd

import (
	"os"
	"os/signal"
	"syscall"
)

// interruptSignals are the signals that stop a run early.
var interruptSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func setupSignals() <-chan os.Signal {
	// signal.Notify does not block, so the channel must be buffered
	c := make(chan os.Signal, 1)
	signal.Notify(c, interruptSignals...)
	return c
}
