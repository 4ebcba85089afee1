// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the ensemble language.
package ui

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/peterh/liner"

	"github.com/ensemble-lang/ensemble/internal/printer"
	"github.com/ensemble-lang/ensemble/internal/reader"
	"github.com/ensemble-lang/ensemble/internal/system/history"
)

const (
	prompt       = "> "
	continuation = "... "
)

// Evaluator is the interface for things that evaluate and print a command.
type Evaluator interface {
	Rep(text string) (string, error)
}

type terminal interface {
	AppendHistory(item string)
	Prompt(p string) (string, error)
}

// Run reads commands until EOF and writes each result, or the failure that
// prevented one, to w.
func Run(e Evaluator, w io.Writer) error {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	err := history.Load(cli.ReadHistory)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(w, "Error reading history: "+err.Error())
	}

	err = loop(cli, e, w)

	if serr := history.Save(cli.WriteHistory); serr != nil {
		fmt.Fprintln(w, "Error writing history: "+serr.Error())
	}

	return err
}

func loop(t terminal, e Evaluator, w io.Writer) error {
	var pending strings.Builder

	p := prompt

	for {
		line, err := t.Prompt(p)

		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			pending.Reset()
			p = prompt

			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(w)

			return nil
		case err != nil:
			return err
		}

		pending.WriteString(line)
		pending.WriteString("\n")

		text := pending.String()

		result, err := e.Rep(text)
		if reader.Incomplete(err) {
			p = continuation

			continue
		}

		pending.Reset()
		p = prompt

		if reader.Empty(err) {
			continue
		}

		t.AppendHistory(strings.TrimSpace(text))

		if err != nil {
			fmt.Fprint(w, printer.FormatError(err))

			continue
		}

		fmt.Fprintln(w, result)
	}
}
