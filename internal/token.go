package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, ',', ., -, +, ;, /, *
	tkLeftParen
	tkRightParen
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkSemicolon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, number
	tkIdentifier
	tkString
	tkNumber

	// Keywords.
	// and, class, else, false, fun, for, if, nil, or,
	// print, return, super, this, true, var, while
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFun
	tkFor
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkVar
	tkWhile
)

var tokenNames = map[tokenType]string{
	tkEOF:          "EOF",
	tkLeftParen:    "(",
	tkRightParen:   ")",
	tkLeftBrace:    "{",
	tkRightBrace:   "}",
	tkComma:        ",",
	tkDot:          ".",
	tkMinus:        "-",
	tkPlus:         "+",
	tkSemicolon:    ";",
	tkSlash:        "/",
	tkStar:         "*",
	tkBang:         "!",
	tkBangEqual:    "!=",
	tkEqual:        "=",
	tkEqualEqual:   "==",
	tkGreater:      ">",
	tkGreaterEqual: ">=",
	tkLess:         "<",
	tkLessEqual:    "<=",
	tkIdentifier:   "IDENTIFIER",
	tkString:       "STRING",
	tkNumber:       "NUMBER",
	tkAnd:          "and",
	tkClass:        "class",
	tkElse:         "else",
	tkFalse:        "false",
	tkFun:          "fun",
	tkFor:          "for",
	tkIf:           "if",
	tkNil:          "nil",
	tkOr:           "or",
	tkPrint:        "print",
	tkReturn:       "return",
	tkSuper:        "super",
	tkThis:         "this",
	tkTrue:         "true",
	tkVar:          "var",
	tkWhile:        "while",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("tokenType(%d)", int(t))
}

type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	line    int
	// pos is the byte offset of the lexeme in the unit source
	pos int
	// length is the lexeme length, kept for number diagnostics
	length int
}

func (t *token) String() string {
	switch t.token {
	case tkNumber, tkString, tkIdentifier:
		return fmt.Sprintf("%s %q", t.token, t.lexeme)
	}
	return t.token.String()
}
