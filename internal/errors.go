package internal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind classifies the errors produced by a program unit
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindLexical
	KindSyntax
	KindResolution
	KindRuntime
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "Lexical"
	case KindSyntax:
		return "Syntax"
	case KindResolution:
		return "Resolution"
	case KindRuntime:
		return "Runtime"
	}
	return "Unknown"
}

// Kind returns the kind of the first language error found in err
func Kind(err error) ErrorKind {
	var lexErr *LexError
	var parseErr *ParseError
	var resolveErr *ResolveError
	var runtimeErr *RuntimeError
	switch {
	case errors.As(err, &lexErr):
		return KindLexical
	case errors.As(err, &parseErr):
		return KindSyntax
	case errors.As(err, &resolveErr):
		return KindResolution
	case errors.As(err, &runtimeErr):
		return KindRuntime
	}
	return KindUnknown
}

// LexError is the first unrecoverable problem found by the lexer
type LexError struct {
	Err  error
	Line int
	Pos  int
	// Char is set for unexpected characters
	Char rune
	// Partial holds the consumed text of an unterminated literal
	Partial string
}

func (e *LexError) Error() string {
	msg := e.Err.Error()
	switch {
	case errors.Is(e.Err, errUnexpectedChar):
		msg = fmt.Sprintf("%s %q", msg, e.Char)
	case e.Partial != "":
		msg = fmt.Sprintf("%s %q", msg, e.Partial)
	}
	return fmt.Sprintf("Lexical error on line %d at %d: %s", e.Line, e.Pos, msg)
}

func (e *LexError) Unwrap() error { return e.Err }

// ParseError is a syntax error of a single statement
type ParseError struct {
	Err    error
	Line   int
	Pos    int
	Lexeme string
}

func (e *ParseError) Error() string {
	near := "end of input"
	if e.Lexeme != "" {
		near = "'" + e.Lexeme + "'"
	}
	return fmt.Sprintf("Syntax error on line %d at %d: %s, found %s", e.Line, e.Pos, e.Err, near)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ResolveError is reported by the static resolution pass
type ResolveError struct {
	Err  error
	Line int
	Name string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("Resolution error on line %d: %s '%s'", e.Line, e.Err, e.Name)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// RuntimeError aborts the execution of the current unit
type RuntimeError struct {
	Err    error
	Line   int
	Lexeme string

	// Actual is the offending value for type errors and bad calls
	Actual interface{}

	// Expected and Got are argument counts for arity errors
	Expected int
	Got      int
}

func (e *RuntimeError) Error() string {
	var msg string
	switch {
	case errors.Is(e.Err, errWrongNumberOfArguments):
		msg = fmt.Sprintf("expected %d arguments but got %d", e.Expected, e.Got)
	case errors.Is(e.Err, errUndefinedVariable):
		msg = fmt.Sprintf("%s '%s'", e.Err, e.Lexeme)
	case errors.Is(e.Err, errDivisionByZero):
		msg = e.Err.Error()
	default:
		msg = fmt.Sprintf("%s, got %s", e.Err, repr(e.Actual))
	}
	return fmt.Sprintf("Runtime error on line %d: %s", e.Line, msg)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

// ErrorList holds every error reported for a program unit
type ErrorList []error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, err := range l {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "\n")
}

func (l ErrorList) Unwrap() []error { return l }
