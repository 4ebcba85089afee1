package options

import (
	"reflect"
	"testing"

	"github.com/docopt/docopt-go"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		argv        []string
		tty         bool
		args        []string
		command     string
		interactive bool
		script      string
		trace       bool
		watch       bool
	}{
		{argv: []string{}, tty: true, interactive: true},
		{argv: []string{}, tty: false},
		{argv: []string{"-i"}, tty: true},
		{argv: []string{"-i"}, tty: false, interactive: true},
		{argv: []string{"-t", "main.ens", "a", "b"}, tty: true,
			script: "main.ens", args: []string{"a", "b"}, trace: true},
		{argv: []string{"-w", "main.ens"}, tty: true, script: "main.ens", watch: true},
		{argv: []string{"-c", "[log, 1]", "x"}, tty: true, command: "[log, 1]", args: []string{"x"}},
		{argv: []string{"-i", "-c", "[log, 1]"}, tty: true, command: "[log, 1]", interactive: true},
	} {
		p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler, OptionsFirst: true}

		if err := parse(p, tc.argv, tc.tty); err != nil {
			t.Fatalf("%v: %v", tc.argv, err)
		}

		if tc.args == nil {
			tc.args = []string{}
		}

		actual := Args()
		if actual == nil {
			actual = []string{}
		}

		switch {
		case !reflect.DeepEqual(actual, tc.args):
			t.Errorf("%v: expected args %q, got %q", tc.argv, tc.args, actual)
		case Command() != tc.command:
			t.Errorf("%v: expected command %q, got %q", tc.argv, tc.command, Command())
		case Interactive() != tc.interactive:
			t.Errorf("%v: expected interactive %v", tc.argv, tc.interactive)
		case Script() != tc.script:
			t.Errorf("%v: expected script %q, got %q", tc.argv, tc.script, Script())
		case Trace() != tc.trace:
			t.Errorf("%v: expected trace %v", tc.argv, tc.trace)
		case Watch() != tc.watch:
			t.Errorf("%v: expected watch %v", tc.argv, tc.watch)
		}
	}
}

func TestInvalid(t *testing.T) {
	p := &docopt.Parser{HelpHandler: docopt.NoHelpHandler, OptionsFirst: true}

	if err := parse(p, []string{"-w", "-c", "x"}, true); err == nil {
		t.Fatal("expected -w to require a script")
	}
}
