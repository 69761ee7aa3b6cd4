package internal

import (
	"errors"
	"os"
)

// interpreterState stores the state of a single program unit
type interpreterState struct {
	absPath string
	source  string
	errors  []error
	tokens  []token
	stmts   []stmt

	logger IPrinter
}

func newInterpreterState(absPath, source string, p IPrinter) *interpreterState {
	return &interpreterState{
		absPath: absPath,
		source:  source,
		errors:  make([]error, 0),
		logger:  p,
	}
}

func (s *interpreterState) setError(err error) {
	s.errors = append(s.errors, err)
}

// Valid returns true if no error was reported for the unit
func (s *interpreterState) Valid() bool {
	return len(s.errors) == 0
}

// Err returns the errors of the unit as an ErrorList, or nil
func (s *interpreterState) Err() error {
	if s.Valid() {
		return nil
	}
	list := make(ErrorList, len(s.errors))
	copy(list, s.errors)
	return list
}

// PrintErrors prints all errors and reports whether there was any
func (s *interpreterState) PrintErrors() bool {
	for _, e := range s.errors {
		s.logger.Fprintln(os.Stderr, e)
	}
	return !s.Valid()
}

// Lexer errors
var errUnexpectedChar = errors.New("unexpected character")
var errUnterminatedString = errors.New("unterminated string")
var errUnterminatedNumber = errors.New("unterminated number")

// Parser errors
var errExpectedExpression = errors.New("expected expression")
var errExpectedEndOfExpression = errors.New("expected ';' after expression")
var errExpectedEndOfBlock = errors.New("expected '}' at the end of block")
var errExpectedLeftParen = errors.New("expected '('")
var errExpectedRightParen = errors.New("expected ')'")
var errUnmatchedParenthesis = errors.New("expected ')' after expression")
var errInvalidAssignmentTarget = errors.New("invalid assignment target")
var errExpectedIdentifier = errors.New("expected identifier")
var errExpectedBlock = errors.New("expected '{' before body")
var errMaxArguments = errors.New("max number of arguments is 255")
var errMaxParameters = errors.New("max number of parameters is 255")

// Resolver errors
var errReadInOwnInitializer = errors.New("can't read local variable in its own initializer")
var errAlreadyDeclared = errors.New("variable already declared in this scope")
var errReturnOutsideFunction = errors.New("can't return from top-level code")

// Runtime errors
var errExpectedNumber = errors.New("expected number")
var errExpectedString = errors.New("expected string")
var errExpectedNumberOrString = errors.New("expected number or string")
var errUndefinedVariable = errors.New("undefined variable")
var errDivisionByZero = errors.New("division by zero")
var errWrongNumberOfArguments = errors.New("wrong number of arguments")
var errUncallable = errors.New("attempted to call uncallable expression")
