package repl

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunEchoesResults(t *testing.T) {
	in := strings.NewReader("3 + 4\nquit\n")
	var out, errOut bytes.Buffer

	err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true})
	if err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !strings.Contains(out.String(), "7") {
		t.Errorf("output = %q, want it to contain 7", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("errOut = %q, want empty", errOut.String())
	}
}

func TestRunPrintsFormattedErrorsToErrOut(t *testing.T) {
	in := strings.NewReader("1 / 0\nquit\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if errOut.Len() == 0 {
		t.Error("expected an error message on errOut for division by zero")
	}
	if !strings.Contains(errOut.String(), "Error: ") {
		t.Errorf("errOut = %q, want it to contain the literal %q prefix", errOut.String(), "Error: ")
	}
}

// TestRunHelpListsBuiltins wires builtins.Names() into the REPL's
// "help" sentinel so it isn't dead exported API.
func TestRunHelpListsBuiltins(t *testing.T) {
	in := strings.NewReader("help\nquit\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	for _, name := range []string{"sqrt", "det", "sin"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help output = %q, want it to mention builtin %q", out.String(), name)
		}
	}
}

func TestRunSkipsBlankLines(t *testing.T) {
	in := strings.NewReader("\n\n5\nquit\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !strings.Contains(out.String(), "5") {
		t.Errorf("output = %q, want it to contain 5", out.String())
	}
}

func TestRunStopsOnExitSentinel(t *testing.T) {
	in := strings.NewReader("exit\n1 + 1\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if strings.Contains(out.String(), "2") {
		t.Errorf("output = %q, lines after exit should not be evaluated", out.String())
	}
}

func TestRunStopsAtEOFWithoutQuit(t *testing.T) {
	in := strings.NewReader("2 + 2\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if !strings.Contains(out.String(), "4") {
		t.Errorf("output = %q, want it to contain 4", out.String())
	}
}

func TestAppendHistoryWritesLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	in := strings.NewReader("1 + 1\n2 + 2\nquit\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true, HistoryPath: path}); err != nil {
		t.Fatalf("Run returned %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read history file: %v", err)
	}
	got := string(contents)
	if !strings.Contains(got, "1 + 1") || !strings.Contains(got, "2 + 2") {
		t.Errorf("history = %q, want both evaluated lines", got)
	}
	if strings.Contains(got, "quit") {
		t.Errorf("history = %q, quit sentinel should not be recorded (loop returns before appendHistory runs)", got)
	}
}

func TestEmptyHistoryPathDisablesPersistence(t *testing.T) {
	in := strings.NewReader("1 + 1\nquit\n")
	var out, errOut bytes.Buffer

	if err := Run(Options{In: in, Out: &out, ErrOut: &errOut, NoColor: true, HistoryPath: ""}); err != nil {
		t.Fatalf("Run returned %v", err)
	}
}

func TestDefaultHistoryPathJoinsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory available in this environment")
	}
	got := DefaultHistoryPath()
	want := filepath.Join(home, historyFileName)
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPromptColorsAreSuppressedWithNoColor(t *testing.T) {
	if prompt(true) != "> " {
		t.Errorf("prompt(true) = %q, want plain \"> \"", prompt(true))
	}
	if prompt(false) == "" {
		t.Error("prompt(false) should not be empty")
	}
}
