package syntax

import (
	"fmt"
	"regexp"
	"strings"
)

// state is the closed set of lexer states. The state set and the
// transitions step performs are the lexer's contract; tests drive the
// machine one step at a time as well as end to end.
type state uint8

const (
	stateReady           state = iota // at a token boundary
	stateBuilding                     // accumulating an identifier/keyword/constant
	stateHandlingComment              // inside // or /* ... */
	stateDone                         // pending token awaits append
	stateExit                         // end of input reached from stateReady
)

var stateNames = [...]string{
	stateReady:           "Ready",
	stateBuilding:        "Building",
	stateHandlingComment: "HandlingComment",
	stateDone:            "Done",
	stateExit:            "Exit",
}

func (st state) String() string {
	if int(st) < len(stateNames) {
		return stateNames[st]
	}
	return fmt.Sprintf("state(%d)", st)
}

// commentMode tracks progress through a comment once the opening '/' has
// been consumed.
type commentMode uint8

const (
	commentPending commentMode = iota // '/' seen, next char disambiguates
	commentLine                       // inside //, runs to the line feed
	commentBlock                      // inside /*, runs to */
)

// ClassifyError reports a lexeme that matches neither a keyword, an
// identifier, nor a constant. It is a normal error value: the caller
// decides whether to abort the compilation.
type ClassifyError struct {
	Text string // the offending lexeme
	Line uint32
	Col  uint32
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("%d:%d: %q did not match an identifier or a constant", e.Line, e.Col, e.Text)
}

// UnterminatedError reports end of input inside a comment, including right
// after the opening '/'.
type UnterminatedError struct {
	Construct string // "comment", "line comment", or "block comment"
	Line      uint32
	Col       uint32
}

func (e *UnterminatedError) Error() string {
	return fmt.Sprintf("%d:%d: unterminated %s", e.Line, e.Col, e.Construct)
}

// Anchored lexeme patterns, checked after keyword lookup.
var (
	identRE = regexp.MustCompile(`^[a-zA-Z_]\w*$`)
	constRE = regexp.MustCompile(`^[0-9]+$`)
)

// classify resolves an accumulated lexeme to exactly one of
// keyword/identifier/constant.
func classify(text string, line, col uint32) (Token, error) {
	if k, ok := LookupKeyword(text); ok {
		return Token{Kind: k, Text: text}, nil
	}
	if identRE.MatchString(text) {
		return Token{Kind: Ident, Text: text}, nil
	}
	if constRE.MatchString(text) {
		return Token{Kind: Const, Text: text}, nil
	}
	return Token{}, &ClassifyError{Text: text, Line: line, Col: col}
}

// Lexer is the finite-state tokenizer. The zero value is not usable; use
// newLexer or Lex.
type Lexer struct {
	source

	state   state
	lit     strings.Builder // Building accumulation
	pending Token           // token awaiting append in stateDone
	comment commentMode

	// position of the first character of the lexeme being built
	litLine uint32
	litCol  uint32

	tokens []Token
}

func newLexer(src []byte) *Lexer {
	return &Lexer{source: newSource(src)}
}

// Lex tokenizes src, returning the full token sequence with adjacent Minus
// pairs merged into Decrement tokens. Whitespace and comments are emitted
// as tokens, not skipped; use Strip to drop them before parsing.
func Lex(src []byte) ([]Token, error) {
	l := newLexer(src)
	for l.state != stateExit {
		if err := l.step(); err != nil {
			return nil, err
		}
	}
	return mergeDecrements(l.tokens), nil
}

// step performs exactly one state transition.
func (l *Lexer) step() error {
	switch l.state {
	case stateReady:
		return l.stepReady()
	case stateBuilding:
		return l.stepBuilding()
	case stateHandlingComment:
		return l.stepComment()
	case stateDone:
		l.tokens = append(l.tokens, l.pending)
		l.state = stateReady
		return nil
	case stateExit:
		return nil
	}
	panic(fmt.Sprintf("syntax: lexer in unknown state %d", l.state))
}

func (l *Lexer) stepReady() error {
	ch, ok := l.next()
	if !ok {
		l.state = stateExit
		return nil
	}
	if k, isSym := symbolFor(ch); isSym {
		if k == CommentStart {
			l.comment = commentPending
			l.state = stateHandlingComment
			return nil
		}
		l.pending = Token{Kind: k, Text: string(ch)}
		l.state = stateDone
		return nil
	}
	l.lit.Reset()
	l.lit.WriteByte(ch)
	l.litLine, l.litCol = l.line, l.col
	l.state = stateBuilding
	return nil
}

func (l *Lexer) stepBuilding() error {
	// Peek only: a delimiter ends the lexeme but is not consumed here.
	ch, ok := l.peek()
	if ok {
		if _, isSym := symbolFor(ch); !isSym {
			l.next()
			l.lit.WriteByte(ch)
			return nil
		}
	}
	tok, err := classify(l.lit.String(), l.litLine, l.litCol)
	if err != nil {
		return err
	}
	l.pending = tok
	l.state = stateDone
	return nil
}

func (l *Lexer) stepComment() error {
	switch l.comment {
	case commentPending:
		ch, ok := l.next()
		if !ok {
			return &UnterminatedError{Construct: "comment", Line: l.line, Col: l.col}
		}
		switch ch {
		case '/':
			l.comment = commentLine
		case '*':
			l.comment = commentBlock
		default:
			// The grammar has no division operator, so a lone '/' followed
			// by anything else means the character stream itself broke the
			// contract.
			panic(fmt.Sprintf("syntax: impossible comment marker %q at %d:%d", ch, l.line, l.col))
		}
		return nil

	case commentLine:
		ch, ok := l.next()
		if !ok {
			return &UnterminatedError{Construct: "line comment", Line: l.line, Col: l.col}
		}
		if ch == '\n' {
			l.pending = Token{Kind: LineComment}
			l.state = stateDone
		}
		return nil

	case commentBlock:
		ch, ok := l.next()
		if !ok {
			return &UnterminatedError{Construct: "block comment", Line: l.line, Col: l.col}
		}
		if ch != '*' {
			return nil
		}
		// Peek only: a second '*' must stay in the input, since it may
		// itself precede the closing '/'.
		ch, ok = l.peek()
		if !ok {
			return &UnterminatedError{Construct: "block comment", Line: l.line, Col: l.col}
		}
		if ch == '/' {
			l.next()
			l.pending = Token{Kind: BlockComment}
			l.state = stateDone
		}
		return nil
	}
	panic(fmt.Sprintf("syntax: lexer in unknown comment mode %d", l.comment))
}

// mergeDecrements rewrites each adjacent pair of Minus tokens into a single
// Decrement token, in place. The scan is a single left-to-right pass and
// never pairs a freshly made Decrement with a following Minus, so "---"
// yields Decrement, Minus and "----" yields Decrement, Decrement. The pass
// is idempotent.
func mergeDecrements(tokens []Token) []Token {
	for i := 0; i+1 < len(tokens); i++ {
		if tokens[i].Kind == Minus && tokens[i+1].Kind == Minus {
			tokens[i] = Token{Kind: Decrement, Text: "--"}
			tokens = append(tokens[:i+1], tokens[i+2:]...)
		}
	}
	return tokens
}
