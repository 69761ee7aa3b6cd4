package internal

import (
	"errors"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	in := NewInterpreter(&testPrinter{})
	cases := map[string]ErrorKind{
		"print 1;":       KindUnknown,
		`print "a`:       KindLexical,
		"print (1;":      KindSyntax,
		"{ var a = a; }": KindResolution,
		"print -nil;":    KindRuntime,
	}
	for source, kind := range cases {
		err := in.Run(source)
		if Kind(err) != kind {
			t.Errorf("%q: expected %s, found %s (%v)", source, kind, Kind(err), err)
		}
		if kind == KindUnknown && err != nil {
			t.Errorf("%q: unexpected error %v", source, err)
		}
	}
}

func TestErrorList(t *testing.T) {
	err := NewInterpreter(&testPrinter{}).Run("print ;\nprint 1 / 0;\nvar = 1;")
	var list ErrorList
	if !errors.As(err, &list) || len(list) != 2 {
		t.Fatalf("Expected two errors, found %v", err)
	}
	expected := "Syntax error on line 1 at 6: expected expression, found ';'\n" +
		"Syntax error on line 3 at 25: expected identifier, found '='"
	if err.Error() != expected {
		t.Errorf("\nExpected:\n%s\nFound:\n%s", expected, err)
	}
	if !errors.Is(err, errExpectedIdentifier) || !errors.Is(err, errExpectedExpression) {
		t.Error("Expected both sentinels to be reachable through the list")
	}
	if errors.Is(err, errDivisionByZero) {
		t.Error("Nothing should run when parsing fails")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) || parseErr.Line != 1 {
		t.Errorf("Expected the first parse error, found %v", parseErr)
	}
}

func TestRuntimeErrorDetails(t *testing.T) {
	err := NewInterpreter(&testPrinter{}).Run("fun f(a) {}\nf(1, 2);")
	var runErr *RuntimeError
	if !errors.As(err, &runErr) {
		t.Fatalf("Expected a runtime error, found %v", err)
	}
	if runErr.Expected != 1 || runErr.Got != 2 || runErr.Line != 2 {
		t.Errorf("Unexpected details %+v", runErr)
	}
	if !errors.Is(err, errWrongNumberOfArguments) {
		t.Errorf("Expected wrong number of arguments, found %v", err)
	}

	err = NewInterpreter(&testPrinter{}).Run(`print -"x";`)
	if !errors.As(err, &runErr) || runErr.Actual != loxString("x") || runErr.Lexeme != "-" {
		t.Errorf("Unexpected details %+v", runErr)
	}
}
