package internal

import (
	"fmt"
	"io"
	"testing"
)

type testPrinter struct {
	printed string
}

func (t *testPrinter) Println(a ...interface{}) (n int, err error) {
	for i, e := range a {
		if i != 0 {
			t.printed += " "
		}
		t.printed += fmt.Sprintf("%v", e)
	}
	t.printed += "\n"
	return 0, nil
}

func (t *testPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return t.Println(fmt.Sprintf(format, a...))
}

func (t *testPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return t.Println(a...)
}

func (t *testPrinter) Equals(p string) bool {
	if t.printed == p+"\n" {
		t.Reset()
		return true
	}
	return false
}

func (t *testPrinter) Reset() {
	t.printed = ""
}

func checkExpression(t *testing.T, exp string, result string) {
	t.Helper()
	source := "print " + exp + ";"
	tp := &testPrinter{}
	RunSourceWithPrinter("", source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\tResult should be equal to %s instead of %s",
			exp,
			result,
			tp.printed,
		)
	}
}

// checkOutput runs source and compares everything it printed, errors included
func checkOutput(t *testing.T, source string, output string) {
	t.Helper()
	tp := &testPrinter{}
	RunSourceWithPrinter("", source, tp)
	if !tp.Equals(output) {
		t.Errorf(
			"\nSource:\n----\n%s\n----\nExpected:\n----\n%s\n----\nFound:\n----\n%s----",
			source,
			output,
			tp.printed,
		)
	}
}

func checkErrorMsg(t *testing.T, source string, errorMsg string, line int) {
	t.Helper()
	checkOutput(t, source, fmt.Sprintf("Runtime error on line %d: %s", line, errorMsg))
}

func checkStatements(t *testing.T, code string, resultVar string, result string) {
	t.Helper()
	source := code + "\nprint " + resultVar + ";"
	tp := &testPrinter{}
	RunSourceWithPrinter("", source, tp)
	if !tp.Equals(result) {
		t.Errorf(
			"Error on: \n%s\n\t%s should be equal to %s instead of %s",
			code,
			resultVar,
			result,
			tp.printed,
		)
	}
}

func TestExpressions(t *testing.T) {

	// Arithmethic
	{
		checkExpression(t, "1", "1")
		checkExpression(t, "-1", "-1")
		checkExpression(t, "1.5", "1.5")
		checkExpression(t, "1 + 2 + 3", "6")
		checkExpression(t, "8 - 2", "6")
		checkExpression(t, "1 * 2 * 3", "6")
		checkExpression(t, "12 / 2", "6")
		checkExpression(t, "10 / 4", "2.5")
		checkExpression(t, "--3", "3")

		// Precedence
		checkExpression(t, "1 + 2 * 3", "7")
		checkExpression(t, "(1 + 2) * 3", "9")
		checkExpression(t, "8 - 4 - 2", "2")
		checkExpression(t, "-2 * -3", "6")
	}

	// Logical
	{
		checkExpression(t, "true", "true")
		checkExpression(t, "false", "false")
		checkExpression(t, "nil", "nil")

		// not
		checkExpression(t, "!false", "true")
		checkExpression(t, "!true", "false")
		checkExpression(t, "!nil", "true")
		checkExpression(t, `!""`, "false")
		checkExpression(t, "!0", "false")

		// and yields an operand
		checkExpression(t, "true and true", "true")
		checkExpression(t, "false and true", "false")
		checkExpression(t, "nil and 1", "nil")
		checkExpression(t, "1 and 2", "2")

		// or yields an operand
		checkExpression(t, "false or false", "false")
		checkExpression(t, `nil or "x"`, "x")
		checkExpression(t, "1 or 2", "1")
		checkExpression(t, `false or nil`, "nil")
	}

	// Strings
	{
		checkExpression(t, `"test"`, "test")
		checkExpression(t, `"te" + "st"`, "test")
		checkExpression(t, `""`, "")
	}

	// Comparisons
	{
		checkExpression(t, `"test" == "test"`, "true")
		checkExpression(t, `"test" != "test"`, "false")
		checkExpression(t, `2*2 == 8-4`, "true")
		checkExpression(t, `2*2 != 8-4`, "false")
		checkExpression(t, `1 == "1"`, "false")
		checkExpression(t, `nil == nil`, "true")
		checkExpression(t, `nil == false`, "false")
		checkExpression(t, `0 == false`, "false")
		checkExpression(t, `10 > 5`, "true")
		checkExpression(t, `10 < 5`, "false")
		checkExpression(t, `5 >= 5`, "true")
		checkExpression(t, `4 >= 5`, "false")
		checkExpression(t, `5 <= 5`, "true")
		checkExpression(t, `10 <= 5`, "false")

		// Grouping
		checkExpression(t, `(5 <= 5) and (!true or ((1*(1+4)) == 5))`, "true")
	}
}

func TestRuntimeErrors(t *testing.T) {
	// Expression errors
	{
		checkErrorMsg(t, `print "A" - "B";`, `expected number, got "A"`, 1)
		checkErrorMsg(t, `print 1 - "B";`, `expected number, got "B"`, 1)
		checkErrorMsg(t, `print -"B";`, `expected number, got "B"`, 1)
		checkErrorMsg(t, `print 1 < "a";`, `expected number, got "a"`, 1)
		checkErrorMsg(t, `print "a" < "b";`, `expected number, got "a"`, 1)
		checkErrorMsg(t, `print 1 + "a";`, `expected number, got "a"`, 1)
		checkErrorMsg(t, `print "a" + 1;`, `expected string, got 1`, 1)
		checkErrorMsg(t, `print nil + 1;`, `expected number or string, got nil`, 1)
		checkErrorMsg(t, `print true + 1;`, `expected number or string, got true`, 1)
		checkErrorMsg(t, `print 1 / 0;`, `division by zero`, 1)
		checkErrorMsg(t, `"B"();`, `attempted to call uncallable expression, got "B"`, 1)
		checkErrorMsg(t, `nil();`, `attempted to call uncallable expression, got nil`, 1)
	}

	// Statement errors
	{
		checkErrorMsg(t, `var a = b;`, `undefined variable 'b'`, 1)
		checkErrorMsg(t, `a = 1;`, `undefined variable 'a'`, 1)

		checkErrorMsg(t, `
		fun add(a, b) {
			return a + b;
		}
		add(1);
		`, `expected 2 arguments but got 1`, 5)

		checkErrorMsg(t, `clock(1);`, `expected 0 arguments but got 1`, 1)

		checkErrorMsg(t, `
		var a = true;
		var b = false;
		print a + b;
		`, `expected number or string, got true`, 4)

		// Errors inside a call keep the line where they happened
		checkErrorMsg(t, `
		fun half(n) {
			return n / 0;
		}
		half(4);
		`, `division by zero`, 3)
	}

	// A runtime error aborts the rest of the unit
	checkOutput(t, "print 1;\nprint -\"a\";\nprint 2;", "1\nRuntime error on line 2: expected number, got \"a\"")
}

func TestGlobals(t *testing.T) {
	checkExpression(t, "clock", "<native fn clock>")
	checkExpression(t, "clock() > 0", "true")
}

func TestStatements(t *testing.T) {
	// Comment
	{
		checkStatements(t, `
		// This is a "comment"
		var i = 0;
		`, "i", "0")
	}

	// Uninitialized variables are nil
	{
		checkStatements(t, `var i;`, "i", "nil")
	}

	// Globals can be redeclared
	{
		checkStatements(t, `
		var i = 1;
		var i = i + 1;
		`, "i", "2")
	}

	// If-else
	{
		checkStatements(t, `
		var i = 0;
		if (i == 100) i = 10;
		else if (i < 10) i = 20;
		else i = 100;
		`, "i", "20")

		checkStatements(t, `
		var i = 20;
		if (i == 100) {
			i = 10;
		} else if (i < 10) {
			i = 20;
		} else {
			i = 100;
		}`, "i", "100")

		// Truthiness
		checkStatements(t, `
		var i = "no";
		if (0) i = "yes";
		`, "i", "yes")

		checkStatements(t, `
		var i = "no";
		if ("") i = "yes";
		`, "i", "yes")

		checkStatements(t, `
		var i = "no";
		if (nil) i = "yes";
		`, "i", "no")
	}

	// While loop
	{
		checkStatements(t, `
		var i = 0;
		while (i*2 < 10) {
			i = i + 1;
		}
		`, "i", "5")
	}

	// For loop
	{
		checkStatements(t, `
		var x = 1;
		for (var i = 1; i <= 8; i = i + 1) {
			x = x * i;
		}`, "x", "40320")

		checkStatements(t, `
		var x = 40320;
		var u = 0;
		for (; u < 10; u = u + 1) {
			x = x - u;
		}
		`, "x", "40275")

		checkStatements(t, `
		fun loop() {
			var x = 0;
			for (;;) {
				x = x + 1;
				if (x == 3) return x;
			}
		}
		var x = loop();
		`, "x", "3")

		// The loop variable is scoped to the loop
		checkOutput(t, `
		for (var i = 0; i < 1; i = i + 1) {}
		print i;
		`, "Runtime error on line 3: undefined variable 'i'")
	}

	// Functions
	{
		checkStatements(t, `
		fun nilCheck() {
			return;
		}
		var i = nilCheck();
		`, "i", "nil")

		checkStatements(t, `
		fun noReturn() {}
		var i = noReturn();
		`, "i", "nil")

		checkStatements(t, `
		fun check(i) {
			return i;
		}
		var i = check(10);
		`, "i", "10")

		checkStatements(t, `
		fun fib(i) {
			if (i == 0) return 0;
			else if (i == 1) return 1;
			return fib(i-1) + fib(i-2);
		}
		var f = fib(10);
		`, "f", "55")

		checkStatements(t, `
		fun count(i) {
			while (true) {
				i = i - 1;
				if (i < 0) {
					return i;
				}
			}
			return i;
		}
		var f = count(10);
		`, "f", "-1")

		checkStatements(t, `
		fun count(i) {
			for (var n = 0; n < 1; n = n + 1) {
				return n;
			}
			return i;
		}
		var f = count(10);
		`, "f", "0")

		// Print function
		checkStatements(t, `
		fun ff() {
		}
		`, "ff", "<fn ff>")

		// Functions are first class
		checkStatements(t, `
		fun twice(f, x) {
			return f(f(x));
		}
		fun inc(x) {
			return x + 1;
		}
		var r = twice(inc, 1);
		`, "r", "3")
	}
}

func TestScopes(t *testing.T) {
	// Shadowing
	checkOutput(t, `
	var a = 1;
	{
		var a = 2;
		print a;
	}
	print a;
	`, "2\n1")

	// Assignment reaches the enclosing binding
	checkOutput(t, `
	var a = 1;
	{
		a = 2;
	}
	print a;
	`, "2")

	// Closures capture their declaring scope, not a later shadow
	checkOutput(t, `
	var a = "global";
	{
		fun show() {
			print a;
		}
		show();
		var a = "block";
		show();
	}
	`, "global\nglobal")

	// Every call creates an independent closure
	checkOutput(t, `
	fun makeCounter() {
		var i = 0;
		fun count() {
			i = i + 1;
			return i;
		}
		return count;
	}
	var c1 = makeCounter();
	var c2 = makeCounter();
	print c1();
	print c1();
	print c2();
	`, "1\n2\n1")

	// Deeply nested reads
	checkOutput(t, `
	{
		var a = "outer";
		{
			{
				{
					print a;
				}
			}
		}
	}
	`, "outer")
}

func TestSession(t *testing.T) {
	tp := &testPrinter{}
	in := NewInterpreter(tp)

	run := func(source string) {
		t.Helper()
		if err := in.Run(source); err != nil {
			t.Fatalf("Unexpected error on %q: %s", source, err)
		}
	}

	run("var a = 1;")
	run("fun f() { return a + 1; }")
	run("print f();")
	if !tp.Equals("2") {
		t.Errorf("Expected 2, found %q", tp.printed)
	}

	// Locals resolved in a previous unit keep working
	run("fun g() { var x = 10; { return x; } }")
	run("print g();")
	if !tp.Equals("10") {
		t.Errorf("Expected 10, found %q", tp.printed)
	}

	// An error leaves the session usable
	err := in.Run("print b;")
	if err == nil || Kind(err) != KindRuntime {
		t.Errorf("Expected a runtime error, found %v", err)
	}
	run("var b = 3; print b;")
	if !tp.Equals("3") {
		t.Errorf("Expected 3, found %q", tp.printed)
	}

	// Nothing runs when a unit does not parse
	err = in.Run("print 4; print ;")
	if Kind(err) != KindSyntax {
		t.Errorf("Expected a syntax error, found %v", err)
	}
	if tp.printed != "" {
		t.Errorf("Expected no output, found %q", tp.printed)
	}
}
