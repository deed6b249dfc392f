package syntax

import (
	"fmt"
	"strconv"

	"github.com/you-not-fish/tinyc/internal/diag"
)

// Parser performs syntax analysis on TINY source code.
//
// The parser is predictive: every decision is taken on the single
// lookahead token. Parsing is fail-fast. The first error is recorded and
// the lookahead is forced to EOF, which unwinds every grammar rule; the
// partially built tree is still returned.
type Parser struct {
	scanner *Scanner

	// Current token info (cached from scanner)
	tok Token
	lit string
	pos Pos

	first *diag.Error // first error encountered
	arena *arena      // owns every node of the tree being built
}

// NewParser creates a new Parser for src and primes the lookahead.
func NewParser(filename string, src []byte) *Parser {
	p := &Parser{
		scanner: NewScanner(filename, src),
		arena:   &arena{},
	}
	p.next()
	return p
}

// Parse parses filename's src. It is a shorthand for NewParser(...).Parse().
func Parse(filename string, src []byte) (*File, error) {
	return NewParser(filename, src).Parse()
}

// ParseString is like Parse for a string source.
func ParseString(filename, src string) (*File, error) {
	return Parse(filename, []byte(src))
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.scanner.Next()
	p.tok = p.scanner.Token()
	p.lit = p.scanner.Literal()
	p.pos = p.scanner.Pos()
}

// got reports whether the current token is tok.
// If so, it consumes the token and returns true.
func (p *Parser) got(tok Token) bool {
	if p.tok == tok {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it matches tok.
// Otherwise, reports an error and does not advance.
func (p *Parser) want(tok Token) {
	if !p.got(tok) {
		p.syntaxError(describe(tok))
	}
}

// describe names a token the way diagnostics refer to it.
func describe(tok Token) string {
	switch tok {
	case _Name:
		return "identifier"
	case _Number:
		return "number"
	}
	return tok.String()
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports that the lookahead does not match what the grammar
// expected. An error token in the lookahead is reported as a lexical error.
func (p *Parser) syntaxError(expected string) {
	if p.first != nil {
		return
	}

	found := p.lit
	if p.tok == _EOF {
		found = "EOF"
	}

	var e *diag.Error
	if p.tok == _Error {
		e = p.lexicalError()
	} else {
		e = p.errorAt(p.pos, diag.Unexpected, "expected %s, found %s", quote(expected), quote(found))
	}
	e.Expected = expected
	e.Found = found
	p.fail(e)
}

// lexicalError describes the error token in the lookahead.
func (p *Parser) lexicalError() *diag.Error {
	switch kind := p.scanner.ErrorKind(); kind {
	case diag.BadAssign:
		return p.errorAt(p.pos, kind, "expected %q, found %q", ":=", p.lit)
	case diag.UnterminatedComment:
		return p.errorAt(p.pos, kind, "comment not terminated")
	default:
		return p.errorAt(p.pos, diag.BadChar, "unexpected character %q", p.lit)
	}
}

// errorAt builds an error of the given kind at pos.
func (p *Parser) errorAt(pos Pos, kind diag.Kind, format string, args ...interface{}) *diag.Error {
	return diag.New(kind, pos.Filename(), pos.Line(), pos.Col(), fmt.Sprintf(format, args...))
}

// fail records e as the parse result and aborts the parse.
func (p *Parser) fail(e *diag.Error) {
	if p.first == nil {
		p.first = e
	}
	p.tok = _EOF
}

// quote quotes a lexeme for a diagnostic; EOF is left bare.
func quote(s string) string {
	if s == "EOF" {
		return s
	}
	return strconv.Quote(s)
}

// FirstError returns the first error encountered, or nil if none.
func (p *Parser) FirstError() error {
	if p.first == nil {
		return nil
	}
	return p.first
}

// ----------------------------------------------------------------------------
// Parsing entry point

// Parse parses a complete program:
//
//	program -> stmt-sequence EOF
//
// On error it returns the partial tree together with the error. The
// caller owns the tree in both cases and may Release it.
func (p *Parser) Parse() (*File, error) {
	f := &File{arena: p.arena}
	f.pos = p.pos

	f.Body = p.stmtSequence()
	if p.tok != _EOF {
		p.syntaxError("EOF")
	}

	return f, p.FirstError()
}

// ----------------------------------------------------------------------------
// Statements

// stmtSequence parses: statement { ";" statement } [ ";" ]
// and links the statements through Next. It returns the head.
// A trailing ";" is accepted in front of a token that closes the sequence.
func (p *Parser) stmtSequence() Stmt {
	head := p.stmt()
	tail := head
	for tail != nil && p.got(_Semi) {
		if closesSequence(p.tok) {
			break
		}
		s := p.stmt()
		if s == nil {
			break
		}
		tail.SetNext(s)
		tail = s
	}
	return head
}

// closesSequence reports whether tok may follow a statement sequence.
func closesSequence(tok Token) bool {
	switch tok {
	case _End, _Else, _Until, _EOF:
		return true
	}
	return false
}

// stmt parses: if-stmt | repeat-stmt | assign-stmt | read-stmt | write-stmt
func (p *Parser) stmt() Stmt {
	switch p.tok {
	case _If:
		return p.ifStmt()
	case _Repeat:
		return p.repeatStmt()
	case _Name:
		return p.assignStmt()
	case _Read:
		return p.readStmt()
	case _Write:
		return p.writeStmt()
	}
	p.syntaxError("statement")
	return nil
}

// ifStmt parses: "if" expr "then" stmt-sequence [ "else" stmt-sequence ] "end"
func (p *Parser) ifStmt() Stmt {
	s := add(p.arena, &IfStmt{})
	s.pos = p.pos

	p.want(_If)
	s.Cond = p.expr()
	p.want(_Then)
	s.Then = p.stmtSequence()
	if p.got(_Else) {
		s.Else = p.stmtSequence()
	}
	p.want(_End)

	return s
}

// repeatStmt parses: "repeat" stmt-sequence "until" expr
func (p *Parser) repeatStmt() Stmt {
	s := add(p.arena, &RepeatStmt{})
	s.pos = p.pos

	p.want(_Repeat)
	s.Body = p.stmtSequence()
	p.want(_Until)
	s.Cond = p.expr()

	return s
}

// assignStmt parses: identifier ":=" expr
func (p *Parser) assignStmt() Stmt {
	s := add(p.arena, &AssignStmt{Name: p.lit})
	s.pos = p.pos

	p.want(_Name)
	p.want(_Assign)
	s.X = p.expr()

	return s
}

// readStmt parses: "read" identifier
func (p *Parser) readStmt() Stmt {
	s := add(p.arena, &ReadStmt{})
	s.pos = p.pos

	p.want(_Read)
	if p.tok == _Name {
		s.Name = p.lit
	}
	p.want(_Name)

	return s
}

// writeStmt parses: "write" expr
func (p *Parser) writeStmt() Stmt {
	s := add(p.arena, &WriteStmt{})
	s.pos = p.pos

	p.want(_Write)
	s.X = p.expr()

	return s
}

// ----------------------------------------------------------------------------
// Expressions

// expr parses: simple-expr [ ("<" | "=") simple-expr ]
// Comparison is not associative: at most one per expression.
func (p *Parser) expr() Expr {
	x := p.simpleExpr()
	if p.tok.IsComparison() {
		x = p.binary(x, p.simpleExpr)
	}
	return x
}

// simpleExpr parses: term { ("+" | "-") term }
func (p *Parser) simpleExpr() Expr {
	x := p.term()
	for p.tok == _Add || p.tok == _Sub {
		x = p.binary(x, p.term)
	}
	return x
}

// term parses: factor { ("*" | "/") factor }
func (p *Parser) term() Expr {
	x := p.factor()
	for p.tok == _Mul || p.tok == _Div {
		x = p.binary(x, p.factor)
	}
	return x
}

// binary builds an operation whose left operand is x, consumes the
// operator, and parses the right operand with operand. Callers loop on
// the result, so chains fold to the left: a-b-c is (a-b)-c.
func (p *Parser) binary(x Expr, operand func() Expr) Expr {
	op := add(p.arena, &Operation{Op: p.tok, X: x})
	op.pos = p.pos

	p.next() // consume operator
	op.Y = operand()

	return op
}

// factor parses: "(" expr ")" | number | identifier
func (p *Parser) factor() Expr {
	switch p.tok {
	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	case _Number:
		lit := add(p.arena, &BasicLit{Lit: p.lit})
		lit.pos = p.pos
		v, err := strconv.Atoi(p.lit)
		if err != nil {
			e := p.errorAt(p.pos, diag.BadNumber, "integer literal %s out of range", p.lit)
			e.Found = p.lit
			p.fail(e)
			return lit
		}
		lit.Value = v
		p.next()
		return lit

	case _Name:
		n := add(p.arena, &Name{Value: p.lit})
		n.pos = p.pos
		p.next()
		return n
	}

	p.syntaxError("expression")
	return nil
}
