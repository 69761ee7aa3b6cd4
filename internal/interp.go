package internal

import (
	"io"
	"io/ioutil"
	"strings"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter is a session that keeps globals and resolved depths
// between program units, as the REPL needs
type Interpreter struct {
	exec   *exec
	ids    int
	logger logrus.FieldLogger
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithLogger sets the logger used for phase diagnostics
func WithLogger(logger logrus.FieldLogger) Option {
	return func(in *Interpreter) {
		in.logger = logger
	}
}

func discardLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = ioutil.Discard
	return logger
}

// NewInterpreter creates a session that prints through p
func NewInterpreter(p IPrinter, opts ...Option) *Interpreter {
	in := &Interpreter{
		exec:   newExec(p),
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(in)
	}
	defineGlobals(in.exec.globals)
	return in
}

// Run scans, parses, resolves and executes one program unit. Nothing is
// executed when scanning, parsing or resolution fails. The returned
// error, if any, is an ErrorList.
func (in *Interpreter) Run(source string) error {
	return in.run("", source).Err()
}

// RunFile is Run for a unit read from absPath
func (in *Interpreter) RunFile(absPath, source string) error {
	return in.run(absPath, source).Err()
}

func (in *Interpreter) run(absPath, source string) *interpreterState {
	state := newInterpreterState(absPath, source, in.exec.printer)
	unit := absPath
	if unit == "" {
		unit = "<input>"
	}
	log := in.logger.WithField("unit", unit)

	newLexer(state).scan()
	if !state.Valid() {
		log.WithError(state.Err()).Debug("scan failed")
		return state
	}
	log.WithField("tokens", len(state.tokens)).Debug("scanned")

	newParser(state, &in.ids).parse()
	if !state.Valid() {
		log.WithError(state.Err()).Debug("parse failed")
		return state
	}
	log.WithField("statements", len(state.stmts)).Debug("parsed")

	before := len(in.exec.locals)
	newResolver(state, in.exec.locals).resolve()
	if !state.Valid() {
		log.WithError(state.Err()).Debug("resolution failed")
		return state
	}
	log.WithField("locals", len(in.exec.locals)-before).Debug("resolved")

	in.exec.state = state
	if err := in.exec.interpret(); err != nil {
		state.setError(err)
		log.WithError(err).Debug("runtime error")
		return state
	}
	log.Debug("executed")
	return state
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(absPath, source string, p IPrinter) bool {
	in := NewInterpreter(p)
	state := in.run(absPath, source)
	return !state.PrintErrors()
}

// Tokens returns a printable form of the tokens of source
func Tokens(source string) ([]string, error) {
	state := newInterpreterState("", source, nil)
	newLexer(state).scan()
	if !state.Valid() {
		return nil, state.Err()
	}
	out := make([]string, len(state.tokens))
	for i := range state.tokens {
		out[i] = state.tokens[i].String()
	}
	return out, nil
}

// Tree returns the parenthesized form of the statements of source
func Tree(source string) (string, error) {
	state := newInterpreterState("", source, nil)
	newLexer(state).scan()
	if !state.Valid() {
		return "", state.Err()
	}
	ids := 0
	newParser(state, &ids).parse()
	if !state.Valid() {
		return "", state.Err()
	}
	lines := make([]string, len(state.stmts))
	for i, st := range state.stmts {
		lines[i] = astPrinter{}.stmt(st)
	}
	return strings.Join(lines, "\n"), nil
}

// Incomplete reports whether source ends inside an open block or
// string, so a line editor should keep reading
func Incomplete(source string) bool {
	state := newInterpreterState("", source, nil)
	newLexer(state).scan()
	for _, err := range state.errors {
		if lexErr, ok := err.(*LexError); ok && lexErr.Err == errUnterminatedString {
			return true
		}
	}
	if !state.Valid() {
		return false
	}
	depth := 0
	for _, tk := range state.tokens {
		switch tk.token {
		case tkLeftBrace:
			depth++
		case tkRightBrace:
			depth--
		}
	}
	return depth > 0
}
