// Released under an MIT license. See LICENSE.

// Package options parses the ensemble command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is reported by -v.
const Version = "ensemble 0.1.0"

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	interactive bool
	script      string
	trace       bool
	watch       bool
	usage       = `ensemble

Usage:
  ensemble [-itw] SCRIPT [ARGUMENTS...]
  ensemble [-it] -c COMMAND [ARGUMENTS...]
  ensemble [-it]
  ensemble -h
  ensemble -v

Arguments:
  ARGUMENTS  Bound, as strings, to *ARGV*.
  SCRIPT     Path to an ensemble script.

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -i, --interactive      Invert interactive mode.
  -t, --trace            Write each evaluation step to stderr.
  -w, --watch            Evaluate SCRIPT again whenever it changes.
  -h, --help             Display this help.
  -v, --version          Print ensemble version.

If ensemble's stdin is a TTY, and ensemble was invoked with no SCRIPT or
COMMAND, it starts an interactive session. Otherwise, it evaluates the
SCRIPT, the COMMAND, or whatever is read from stdin, and exits.
`
)

// Args returns the arguments following SCRIPT or COMMAND.
func Args() []string {
	return args
}

// Command returns the text passed with -c.
func Command() string {
	return command
}

// Interactive returns true if ensemble should start a REPL.
func Interactive() bool {
	return interactive
}

// Parse parses the process's command line. It exits after printing help
// or the version, or when the command line is invalid.
func Parse() {
	p := &docopt.Parser{
		HelpHandler:  docopt.PrintHelpAndExit,
		OptionsFirst: true,
	}

	err := parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}

// Trace returns true if evaluation steps should be written to stderr.
func Trace() bool {
	return trace
}

// Watch returns true if the script should be evaluated again on change.
func Watch() bool {
	return watch
}

func parse(p *docopt.Parser, argv []string, tty bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	interactive = script == "" && command == "" && tty

	args, _ = opts["ARGUMENTS"].([]string)

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	trace, _ = opts.Bool("--trace")
	watch, _ = opts.Bool("--watch")

	return nil
}
