package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"lox/internal"
)

var source = `
var a = 0;
while (a < %d) {
    a = a + 1;
}
fun fib(n) {
    if (n < 2) return n;
    return fib(n - 1) + fib(n - 2);
}
print fib(%d);
`

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}

func main() {
	iterations := flag.Int("n", 1000000, "iterations of the counting loop")
	fib := flag.Int("fib", 25, "argument to the recursive fib")
	flag.Parse()

	start := time.Now()
	ok := internal.RunSourceWithPrinter("", fmt.Sprintf(source, *iterations, *fib), stdPrinter{})
	fmt.Println("Time elapsed is:", time.Since(start))
	if !ok {
		os.Exit(70)
	}
}
