package internal

import (
	"strconv"
	"unicode/utf8"
)

type lexer struct {
	start   int
	current int
	line    int

	state *interpreterState
}

var keywords = map[string]tokenType{
	"and":    tkAnd,
	"class":  tkClass,
	"else":   tkElse,
	"false":  tkFalse,
	"fun":    tkFun,
	"for":    tkFor,
	"if":     tkIf,
	"nil":    tkNil,
	"or":     tkOr,
	"print":  tkPrint,
	"return": tkReturn,
	"super":  tkSuper,
	"this":   tkThis,
	"true":   tkTrue,
	"var":    tkVar,
	"while":  tkWhile,
}

func newLexer(state *interpreterState) *lexer {
	return &lexer{
		line:  1,
		state: state,
	}
}

// scan fills state.tokens, stopping at the first lexical error
func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		if err := l.scanToken(); err != nil {
			l.state.setError(err)
			return
		}
	}
	l.state.tokens = append(l.state.tokens, token{
		token: tkEOF,
		line:  l.line,
		pos:   l.current,
	})
}

func (l *lexer) scanToken() error {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftBrace, nil)
	case '}':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	// Ignore whitespace
	case ' ':
	case '\r':
	case '\t':

	case '\n':
		l.line++

	case '"':
		return l.string()

	default:
		if isDigit(c) {
			return l.number()
		} else if isAlpha(c) {
			l.identifier()
		} else {
			char, _ := utf8.DecodeRuneInString(l.state.source[l.start:])
			return &LexError{
				Err:  errUnexpectedChar,
				Line: l.line,
				Pos:  l.start,
				Char: char,
			}
		}
	}
	return nil
}

func (l *lexer) string() error {
	line := l.line
	for !l.isAtEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}

	if l.isAtEnd() {
		return &LexError{
			Err:     errUnterminatedString,
			Line:    line,
			Pos:     l.start,
			Partial: l.state.source[l.start+1 : l.current],
		}
	}

	// Consume ending "
	l.advance()

	l.emit(tkString, l.state.source[l.start+1:l.current-1])
	return nil
}

func (l *lexer) number() error {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.match('.') {
		if !isDigit(l.peek()) {
			return &LexError{
				Err:     errUnterminatedNumber,
				Line:    l.line,
				Pos:     l.start,
				Partial: l.state.source[l.start:l.current],
			}
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	lexeme := l.state.source[l.start:l.current]
	literal, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return &LexError{
			Err:     errUnterminatedNumber,
			Line:    l.line,
			Pos:     l.start,
			Partial: lexeme,
		}
	}

	l.emit(tkNumber, literal)
	return nil
}

func (l *lexer) identifier() {
	for c := l.peek(); isAlpha(c) || isDigit(c); c = l.peek() {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() byte {
	current := l.state.source[l.current]
	l.current++
	return current
}

func (l *lexer) match(c byte) bool {
	if l.isAtEnd() || l.state.source[l.current] != c {
		return false
	}
	l.current++
	return true
}

// peek returns 0 at the end of the source
func (l *lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.state.source[l.current]
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.state.source[l.start:l.current],
		literal: literal,
		line:    l.line,
		pos:     l.start,
		length:  l.current - l.start,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}
