package errors

import (
	"strings"
	"testing"

	"computorv2/internal/evalerr"
)

func TestFormatIncludesCaretAtColumn(t *testing.T) {
	err := &evalerr.TypeError{Col: 5, Msg: "bad operand"}
	out := Format(err, "1 + [1,2]", false)

	lines := strings.Split(out, "\n")
	if len(lines) < 3 {
		t.Fatalf("expected source line + caret line + message, got %q", out)
	}
	if lines[0] != "1 + [1,2]" {
		t.Errorf("source line = %q", lines[0])
	}
	if lines[1] != strings.Repeat(" ", 4)+"^" {
		t.Errorf("caret line = %q, want 4 spaces then ^", lines[1])
	}
	if lines[2] != "Error: type error: bad operand" {
		t.Errorf("message line = %q", lines[2])
	}
}

func TestFormatWithoutColumnSkipsSourceLine(t *testing.T) {
	err := &evalerr.ParseError{Msg: "empty input"}
	out := Format(err, "", false)
	if out != "Error: syntax error: empty input" {
		t.Errorf("got %q, want just the labeled message", out)
	}
}

// TestFormatPrefixesErrorLiterally locks in spec.md §6's exact
// "errors prefixed with `Error: `" requirement — Format must emit that
// literal text, not just a column/caret-aware rendering.
func TestFormatPrefixesErrorLiterally(t *testing.T) {
	err := &evalerr.MathError{Msg: "division by zero"}
	out := Format(err, "1 / 0", false)
	if !strings.HasPrefix(lastLine(out), "Error: ") {
		t.Errorf("got %q, want a line starting with %q", out, "Error: ")
	}
}

func lastLine(s string) string {
	lines := strings.Split(s, "\n")
	return lines[len(lines)-1]
}

func TestLabelPrefixesErrorKind(t *testing.T) {
	out := Label(&evalerr.NameError{Name: "z"})
	if !strings.Contains(out, "undefined identifier") {
		t.Errorf("got %q", out)
	}
}
