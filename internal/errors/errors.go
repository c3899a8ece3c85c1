// Package errors formats computorv2 evaluation errors with source
// context and a caret pointing at the offending column, optionally in
// color for an interactive terminal — grounded on the same
// source-line-plus-caret layout the teacher's compiler errors use.
package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"computorv2/internal/evalerr"
)

var (
	caretColor   = color.New(color.Bold, color.FgRed)
	messageColor = color.New(color.Bold)
)

// Format renders err against the original input line: the line of
// source, a caret under the reported column, then the message. When
// err doesn't implement evalerr.CodeError (no column information), only
// the message is printed.
func Format(err error, source string, useColor bool) string {
	var sb strings.Builder

	codeErr, ok := err.(evalerr.CodeError)
	col := 0
	if ok {
		col = codeErr.Column()
	}

	if col > 0 {
		sb.WriteString(source)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", col-1))
		sb.WriteString(caret(useColor))
		sb.WriteString("\n")
	}

	sb.WriteString(message("Error: "+Label(err), useColor))
	return sb.String()
}

func caret(useColor bool) string {
	if useColor {
		return caretColor.Sprint("^")
	}
	return "^"
}

func message(msg string, useColor bool) string {
	if useColor {
		return messageColor.Sprint(msg)
	}
	return msg
}

// Label prefixes msg with the concrete error kind, mirroring the
// teacher's "Error in %s:%d:%d" style header but without a filename,
// since computorv2 only ever evaluates one line at a time.
func Label(err error) string {
	switch err.(type) {
	case *evalerr.ParseError:
		return fmt.Sprintf("syntax error: %s", err.Error())
	case *evalerr.NameError:
		return fmt.Sprintf("undefined identifier: %s", err.Error())
	case *evalerr.TypeError:
		return fmt.Sprintf("type error: %s", err.Error())
	case *evalerr.MathError:
		return fmt.Sprintf("math error: %s", err.Error())
	case *evalerr.SolveError:
		return fmt.Sprintf("solve error: %s", err.Error())
	case *evalerr.ArityError:
		return fmt.Sprintf("argument error: %s", err.Error())
	default:
		return err.Error()
	}
}
