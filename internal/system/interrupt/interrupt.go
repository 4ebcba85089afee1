// Released under an MIT license. See LICENSE.

// Package interrupt turns interrupt signals into requests to abandon the
// current evaluation.
package interrupt

import (
	"os"
	"os/signal"
)

// Interrupter is anything that can be asked to stop what it is doing.
type Interrupter interface {
	Interrupt()
}

// Notify calls i.Interrupt for each interrupt signal received until the
// returned function is called.
func Notify(i Interrupter) (stop func()) {
	return relay(i, signals()...)
}

func relay(i Interrupter, sigs ...os.Signal) func() {
	signalq := make(chan os.Signal, 1)
	done := make(chan struct{})

	signal.Notify(signalq, sigs...)

	go func() {
		for {
			select {
			case <-signalq:
				i.Interrupt()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(signalq)
		close(done)
	}
}
