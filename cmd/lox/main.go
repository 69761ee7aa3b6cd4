package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"lox/internal"
	"lox/internal/config"

	"github.com/labstack/gommon/color"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"
)

// Exit codes follow sysexits.h
const (
	exitOK       = 0
	exitUsage    = 64
	exitSoftware = 70
	exitIOErr    = 74
)

type stdPrinter struct{}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

// Fprintln colours whatever goes to stderr, which is only ever errors
func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	if w == os.Stderr {
		return fmt.Fprintln(w, color.Red(fmt.Sprint(a...)))
	}
	return fmt.Fprintln(w, a...)
}

type options struct {
	configPath string
	logLevel   string
	noColor    bool
	lines      bool
	tokens     bool
	ast        bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("lox", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: lox [flags] [/path/to/script.lox]")
		fs.PrintDefaults()
	}
	var opts options
	fs.StringVar(&opts.configPath, "config", os.Getenv(config.EnvVar), "path to a YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable coloured errors")
	fs.BoolVar(&opts.lines, "lines", false, "run a file one line at a time")
	fs.BoolVar(&opts.tokens, "tokens", false, "print the tokens of a file and exit")
	fs.BoolVar(&opts.ast, "ast", false, "print the syntax tree of a file and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.noColor {
		cfg.Color = false
	}
	if opts.lines {
		cfg.LineMode = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}
	if !cfg.Color {
		color.Disable()
	}

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{DisableTimestamp: true}
	logger.Level = cfg.Level()

	if fs.NArg() == 0 {
		if opts.tokens || opts.ast {
			fmt.Fprintln(os.Stderr, "-tokens and -ast need a file")
			return exitUsage
		}
		return repl(cfg, logger)
	}

	absPath, err := filepath.Abs(fs.Arg(0))
	if err != nil {
		logger.WithError(err).Error("resolving path")
		return exitSoftware
	}
	b, err := ioutil.ReadFile(absPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		return exitIOErr
	}
	source := string(b)

	switch {
	case opts.tokens:
		return dumpTokens(source)
	case opts.ast:
		return dumpTree(source)
	case cfg.LineMode:
		return runLines(absPath, source, logger)
	}

	in := internal.NewInterpreter(stdPrinter{}, internal.WithLogger(logger))
	if err := in.RunFile(absPath, source); err != nil {
		reportErrors(err)
		return exitUsage
	}
	return exitOK
}

func reportErrors(err error) {
	var list internal.ErrorList
	if errors.As(err, &list) {
		for _, e := range list {
			stdPrinter{}.Fprintln(os.Stderr, e)
		}
		return
	}
	stdPrinter{}.Fprintln(os.Stderr, err)
}

// runLines treats every line as its own unit on a shared session and
// keeps going after errors
func runLines(absPath, source string, logger logrus.FieldLogger) int {
	in := internal.NewInterpreter(stdPrinter{}, internal.WithLogger(logger))
	code := exitOK
	scanner := bufio.NewScanner(strings.NewReader(source))
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if err := in.RunFile(absPath, text); err != nil {
			stdPrinter{}.Fprintln(os.Stderr, fmt.Sprintf("%s:%d:", filepath.Base(absPath), line))
			reportErrors(err)
			code = exitUsage
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, color.Red(err.Error()))
		return exitIOErr
	}
	return code
}

func dumpTokens(source string) int {
	tokens, err := internal.Tokens(source)
	if err != nil {
		reportErrors(err)
		return exitUsage
	}
	for _, tk := range tokens {
		fmt.Println(tk)
	}
	return exitOK
}

func dumpTree(source string) int {
	tree, err := internal.Tree(source)
	if err != nil {
		reportErrors(err)
		return exitUsage
	}
	if tree != "" {
		fmt.Println(tree)
	}
	return exitOK
}

func repl(cfg config.Config, logger logrus.FieldLogger) int {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(exitOK)
	}()

	in := internal.NewInterpreter(stdPrinter{}, internal.WithLogger(logger))
	for {
		code, ok := readUnit(ln, cfg.Prompt, cfg.ContinuationPrompt)
		if !ok {
			fmt.Println()
			return exitOK
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.ToLower(trimmed) == ":quit" {
				return exitOK
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := in.Run(code); err != nil {
			reportErrors(err)
		}
	}
}

// readUnit keeps prompting while the input ends inside an open block or
// string. ok is false on end of input.
func readUnit(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder
	for {
		p := prompt
		if b.Len() > 0 {
			p = cont
		}
		line, err := ln.Prompt(p)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !internal.Incomplete(b.String()) {
			return b.String(), true
		}
	}
}
