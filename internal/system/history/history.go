// Released under an MIT license. See LICENSE.

// Package history stores REPL history between sessions.
package history

import (
	"io"
	"os"
	"path/filepath"
)

const name = ".ensemble_history"

// Load passes the saved history to read.
func Load(read func(r io.Reader) (int, error)) error {
	f, err := file(os.Open)
	if err != nil {
		return err
	}

	_, err = read(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Save replaces the saved history with whatever write produces.
func Save(write func(w io.Writer) (int, error)) error {
	f, err := file(os.Create)
	if err != nil {
		return err
	}

	_, err = write(f)
	if err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// Path returns the location of the history file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, name), nil
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}

	return op(p)
}
