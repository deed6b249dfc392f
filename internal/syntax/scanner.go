package syntax

import (
	"strings"

	"github.com/you-not-fish/tinyc/internal/diag"
)

// scanState is a state of the scanner's finite automaton.
type scanState uint8

const (
	stateStart scanState = iota
	stateComment
	stateNumber
	stateIdent
	stateAssign
	stateDone

	stateCount
)

// charClass partitions the input alphabet for the transition table.
type charClass uint8

const (
	classSpace charClass = iota
	classLetter
	classDigit
	classColon
	classEqual
	classLbrace
	classRbrace
	classOther
	classEOF

	classCount
)

// action says what happens to the character that drove a transition.
type action uint8

const (
	actKeep   action = iota // append to the lexeme
	actSkip                 // discard
	actUnread               // push back; it belongs to the next token
)

type transition struct {
	next scanState
	act  action
}

// transitions is indexed by (state, class). It is built once at package
// initialization and never modified.
var transitions = buildTransitions()

func buildTransitions() (t [stateCount][classCount]transition) {
	done := transition{stateDone, actKeep}
	unread := transition{stateDone, actUnread}

	for s := range t {
		for c := range t[s] {
			t[s][c] = done
		}
	}

	t[stateStart][classSpace] = transition{stateStart, actSkip}
	t[stateStart][classLbrace] = transition{stateComment, actSkip}
	t[stateStart][classDigit] = transition{stateNumber, actKeep}
	t[stateStart][classLetter] = transition{stateIdent, actKeep}
	t[stateStart][classColon] = transition{stateAssign, actKeep}
	t[stateStart][classEOF] = unread

	for c := range t[stateComment] {
		t[stateComment][c] = transition{stateComment, actSkip}
	}
	t[stateComment][classRbrace] = transition{stateStart, actSkip}
	t[stateComment][classEOF] = unread

	for c := range t[stateNumber] {
		t[stateNumber][c] = unread
	}
	t[stateNumber][classDigit] = transition{stateNumber, actKeep}

	for c := range t[stateIdent] {
		t[stateIdent][c] = unread
	}
	t[stateIdent][classLetter] = transition{stateIdent, actKeep}
	t[stateIdent][classDigit] = transition{stateIdent, actKeep}

	for c := range t[stateAssign] {
		t[stateAssign][c] = unread
	}
	t[stateAssign][classEqual] = done

	return t
}

// classOf returns the character class of ch.
func classOf(ch rune) charClass {
	switch {
	case ch == eof:
		return classEOF
	case isLetter(ch):
		return classLetter
	case isDigit(ch):
		return classDigit
	case isWhitespace(ch):
		return classSpace
	}
	switch ch {
	case ':':
		return classColon
	case '=':
		return classEqual
	case '{':
		return classLbrace
	case '}':
		return classRbrace
	}
	return classOther
}

// Scanner performs lexical analysis on TINY source code.
type Scanner struct {
	source // embedded character reader

	// Current token info
	tok    Token     // token type
	lit    string    // token lexeme
	tokPos Pos       // token start position
	bad    diag.Kind // reason for the current token when tok == _Error

	// Lexeme accumulation
	litBuf strings.Builder
}

// NewScanner creates a Scanner reading src. The filename labels
// positions and is not interpreted.
func NewScanner(filename string, src []byte) *Scanner {
	s := &Scanner{}
	s.SetInput(filename, src)
	return s
}

// SetInput resets the scanner to the start of a fresh buffer.
func (s *Scanner) SetInput(filename string, src []byte) {
	s.source.reset(filename, src)
	s.tok = _EOF
	s.lit = ""
	s.tokPos = Pos{}
	s.litBuf.Reset()
}

// Next advances to the next token. At end of input it keeps returning EOF.
func (s *Scanner) Next() {
	s.litBuf.Reset()

	state, last := stateStart, stateStart
	cls := classOther
	for state != stateDone {
		if state == stateStart {
			s.tokPos = s.pos()
		}
		ch := s.readch()
		cls = classOf(ch)
		tr := transitions[state][cls]
		switch tr.act {
		case actKeep:
			s.litBuf.WriteByte(byte(ch))
		case actUnread:
			s.unread()
		}
		last, state = state, tr.next
	}

	s.lit = s.litBuf.String()
	s.finish(last, cls)
}

// finish classifies the accumulated lexeme from the state the automaton
// was in when it reached DONE.
func (s *Scanner) finish(last scanState, cls charClass) {
	switch last {
	case stateStart:
		if cls == classEOF {
			s.tok = _EOF
			return
		}
		s.tok = lookupSymbol(s.lit)
		if s.tok == _Error {
			s.bad = diag.BadChar
		}

	case stateComment:
		s.tok = _Error
		s.lit = "{"
		s.bad = diag.UnterminatedComment

	case stateNumber:
		s.tok = _Number

	case stateIdent:
		s.tok = LookupKeyword(s.lit)

	case stateAssign:
		if s.lit == ":=" {
			s.tok = _Assign
			return
		}
		s.tok = _Error
		s.bad = diag.BadAssign
	}
}

// Token returns the current token type.
func (s *Scanner) Token() Token {
	return s.tok
}

// Literal returns the current token's lexeme.
func (s *Scanner) Literal() string {
	return s.lit
}

// Pos returns the current token's start position.
func (s *Scanner) Pos() Pos {
	return s.tokPos
}

// Line returns the line on which the current token starts.
func (s *Scanner) Line() int {
	return s.tokPos.Line()
}

// CurrentLine returns the line of the read cursor: one plus the number
// of line boundaries consumed so far.
func (s *Scanner) CurrentLine() int {
	return s.line
}

// ErrorKind returns why the current token is an error token.
// The result is meaningless unless Token() == Error.
func (s *Scanner) ErrorKind() diag.Kind {
	return s.bad
}
