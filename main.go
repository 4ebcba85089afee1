// Released under an MIT license. See LICENSE.

/*
Ensemble is a small Lisp-family language whose programs are written as
nested arrays:

	[global, square, [function, [x], [multiply, x, x]]]
	[log, [square, 12]]

Symbols name values, arrays are calls, and objects ({ key: value }) are
maps. Macros, quasiquote, and try/catch are built in.

Ensemble is released under an MIT-style license.
*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ensemble-lang/ensemble/internal/engine"
	"github.com/ensemble-lang/ensemble/internal/interface/cell"
	"github.com/ensemble-lang/ensemble/internal/printer"
	"github.com/ensemble-lang/ensemble/internal/system/interrupt"
	"github.com/ensemble-lang/ensemble/internal/system/options"
	"github.com/ensemble-lang/ensemble/internal/system/watch"
	"github.com/ensemble-lang/ensemble/internal/type/list"
	"github.com/ensemble-lang/ensemble/internal/type/str"
	"github.com/ensemble-lang/ensemble/internal/ui"
)

func main() {
	options.Parse()

	os.Exit(run())
}

func run() int {
	if options.Watch() && options.Script() != "" {
		return watching(options.Script())
	}

	e := boot(os.Stdout, os.Stderr)

	stop := interrupt.Notify(e)
	defer stop()

	switch {
	case options.Command() != "":
		if !evaluate(e, "command", options.Command(), os.Stderr) {
			return 1
		}
	case options.Script() != "":
		b, err := os.ReadFile(options.Script())
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}

		if !evaluate(e, options.Script(), string(b), os.Stderr) {
			return 1
		}
	case !options.Interactive():
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}

		if !evaluate(e, "stdin", string(b), os.Stderr) {
			return 1
		}
	}

	if options.Interactive() {
		err := ui.Run(e, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			return 1
		}
	}

	return 0
}

// boot creates an engine with *ARGV* and *host-language* bound.
func boot(stdout, stderr io.Writer) *engine.T {
	opts := []engine.Option{engine.Output(stdout)}
	if options.Trace() {
		opts = append(opts, engine.Trace(stderr))
	}

	e := engine.New(opts...)

	argv := []cell.T{}
	for _, a := range options.Args() {
		argv = append(argv, str.New(a))
	}

	e.Define("*ARGV*", list.New(argv...))
	e.Define("*host-language*", str.New("go"))

	return e
}

func evaluate(e *engine.T, label, text string, w io.Writer) bool {
	_, err := e.Run(label, text)
	if err != nil {
		fmt.Fprint(w, printer.FormatError(err))
		return false
	}

	return true
}

// watching evaluates path with a fresh engine each time it changes.
func watching(path string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err := watch.Run(ctx, path, func(text string) {
		rerun(ctx, path, text, os.Stdout, os.Stderr)
	}, func(err error) {
		fmt.Fprintln(os.Stderr, err.Error())
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}

	return 0
}

// rerun evaluates text with a fresh engine that is interrupted once ctx
// is done.
func rerun(ctx context.Context, label, text string, stdout, stderr io.Writer) bool {
	e := boot(stdout, stderr)

	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
			return
		}

		// Run clears a pending interrupt when it starts so keep asking.
		for {
			e.Interrupt()

			select {
			case <-done:
				return
			case <-time.After(watch.Settle):
			}
		}
	}()

	return evaluate(e, label, text, stderr)
}
