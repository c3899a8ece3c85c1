// Package repl implements the interactive computorv2 loop: read a
// line, simplify it, print the result or a formatted error, append the
// line to a history file, repeat (spec §4.Repl, §6).
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"computorv2/internal/builtins"
	"computorv2/internal/env"
	"computorv2/internal/errors"
	"computorv2/internal/simplify"
)

const historyFileName = ".computorv2_history"

var promptColor = color.New(color.FgCyan, color.Bold)

// Options configures a REPL session.
type Options struct {
	In          io.Reader
	Out         io.Writer
	ErrOut      io.Writer
	NoColor     bool
	HistoryPath string // empty disables history persistence
}

// Run drives the read-eval-print loop over opts.In until EOF or a "quit"/"exit" line.
func Run(opts Options) error {
	e := env.New()
	scanner := bufio.NewScanner(opts.In)

	historyFile := openHistory(opts.HistoryPath)
	if historyFile != nil {
		defer historyFile.Close()
	}

	for {
		fmt.Fprint(opts.Out, prompt(opts.NoColor))
		if !scanner.Scan() {
			fmt.Fprintln(opts.Out)
			return scanner.Err()
		}
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "quit" || trimmed == "exit" {
			return nil
		}
		if trimmed == "help" {
			fmt.Fprintln(opts.Out, helpText())
			continue
		}

		appendHistory(historyFile, line)

		result, err := simplify.Line(trimmed, e)
		if err != nil {
			fmt.Fprintln(opts.ErrOut, errors.Format(err, trimmed, !opts.NoColor))
			continue
		}
		fmt.Fprintln(opts.Out, result)
	}
}

// helpText lists the registered builtin functions, in response to the
// "help" sentinel line, alongside "quit"/"exit" to end the session.
func helpText() string {
	names := builtins.Names()
	sort.Strings(names)
	return "Builtin functions: " + strings.Join(names, ", ") + "\nType \"quit\" or \"exit\" to end the session."
}

func prompt(noColor bool) string {
	if noColor {
		return "> "
	}
	return promptColor.Sprint("> ")
}

// DefaultHistoryPath returns $HOME/.computorv2_history, or "" if $HOME
// can't be determined (history is then simply disabled).
func DefaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}

func openHistory(path string) *os.File {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}

func appendHistory(f *os.File, line string) {
	if f == nil {
		return
	}
	fmt.Fprintln(f, line)
}
