// Package syntax implements lexical and syntactic analysis for the TINY language.
package syntax

import "fmt"

// Token represents the type of a lexical token.
type Token uint

const (
	// Special tokens
	_EOF   Token = iota // end of input
	_Error              // lexical error

	// Reserved words
	_If
	_Then
	_Else
	_End
	_Repeat
	_Until
	_Read
	_Write

	// Multi-character tokens
	_Name   // identifier: x, fact, a1
	_Number // integer literal: 0, 42

	// Special symbols
	_Assign // :=
	_Eql    // =
	_Lss    // <
	_Add    // +
	_Sub    // -
	_Mul    // *
	_Div    // /
	_Lparen // (
	_Rparen // )
	_Semi   // ;

	tokenCount
)

// tokenNames maps tokens to their string representation.
var tokenNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_If:     "if",
	_Then:   "then",
	_Else:   "else",
	_End:    "end",
	_Repeat: "repeat",
	_Until:  "until",
	_Read:   "read",
	_Write:  "write",

	_Name:   "NAME",
	_Number: "NUMBER",

	_Assign: ":=",
	_Eql:    "=",
	_Lss:    "<",
	_Add:    "+",
	_Sub:    "-",
	_Mul:    "*",
	_Div:    "/",
	_Lparen: "(",
	_Rparen: ")",
	_Semi:   ";",
}

// String returns the string representation of the token.
func (t Token) String() string {
	if t < tokenCount {
		return tokenNames[t]
	}
	return fmt.Sprintf("token(%d)", t)
}

// IsKeyword reports whether t is a reserved word.
func (t Token) IsKeyword() bool {
	return t >= _If && t <= _Write
}

// IsOperator reports whether t is a binary operator.
func (t Token) IsOperator() bool {
	return t >= _Eql && t <= _Div
}

// IsComparison reports whether t is one of the comparison operators < and =.
func (t Token) IsComparison() bool {
	return t == _Lss || t == _Eql
}

// IsEOF reports whether t is the EOF token.
func (t Token) IsEOF() bool {
	return t == _EOF
}

// IsError reports whether t is the lexical error token.
func (t Token) IsError() bool {
	return t == _Error
}

// Exported tokens for the type checker and tools outside this package.
const (
	EOF   Token = _EOF
	Error Token = _Error
	Eql   Token = _Eql // =
	Lss   Token = _Lss // <
	Add   Token = _Add // +
	Sub   Token = _Sub // -
	Mul   Token = _Mul // *
	Div   Token = _Div // /
)

// keywords maps reserved words to their token type.
var keywords = map[string]Token{
	"if":     _If,
	"then":   _Then,
	"else":   _Else,
	"end":    _End,
	"repeat": _Repeat,
	"until":  _Until,
	"read":   _Read,
	"write":  _Write,
}

// symbols maps one-character lexemes to their token type.
// := is not listed: it is recognized by the IN_ASSIGN state.
var symbols = map[string]Token{
	"=": _Eql,
	"<": _Lss,
	"+": _Add,
	"-": _Sub,
	"*": _Mul,
	"/": _Div,
	"(": _Lparen,
	")": _Rparen,
	";": _Semi,
}

// LookupKeyword returns the token for the given identifier string.
// If the identifier is a reserved word, returns the keyword token.
// Otherwise, returns _Name. Matching is case-sensitive.
func LookupKeyword(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return _Name
}

// lookupSymbol returns the token for a one-character symbol lexeme,
// or _Error if lit is not a symbol.
func lookupSymbol(lit string) Token {
	if tok, ok := symbols[lit]; ok {
		return tok
	}
	return _Error
}
