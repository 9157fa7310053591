// Package syntax implements lexical and syntactic analysis for the C subset
// accepted by wcc.
package syntax

import "fmt"

// Kind identifies the lexical class of a token.
type Kind uint

const (
	// Text-carrying classes
	Ident Kind = iota // identifier: main, x, _tmp
	Const             // integer constant: 0, 42

	// Keywords
	KwInt    // int
	KwVoid   // void
	KwReturn // return

	// Symbols
	OpenParen    // (
	CloseParen   // )
	OpenBrace    // {
	CloseBrace   // }
	Semi         // ;
	Quote        // "
	Whitespace   // space, tab, or newline
	CommentStart // / (dispatch only; never appears in Lex output)
	Minus        // -
	Decrement    // -- (produced only by the merge pass)
	Tilde        // ~

	// Comments, retained as tokens so the stream accounts for all input
	LineComment  // // ... to end of line
	BlockComment // /* ... */

	kindCount
)

// kindNames maps kinds to their string representation.
var kindNames = [...]string{
	Ident: "IDENT",
	Const: "CONST",

	KwInt:    "int",
	KwVoid:   "void",
	KwReturn: "return",

	OpenParen:    "(",
	CloseParen:   ")",
	OpenBrace:    "{",
	CloseBrace:   "}",
	Semi:         ";",
	Quote:        `"`,
	Whitespace:   "WHITESPACE",
	CommentStart: "/",
	Minus:        "-",
	Decrement:    "--",
	Tilde:        "~",

	LineComment:  "COMMENT",
	BlockComment: "BLOCK_COMMENT",
}

// String returns the string representation of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k >= KwInt && k <= KwReturn
}

// IsSymbol reports whether k is a punctuation kind.
func (k Kind) IsSymbol() bool {
	return k >= OpenParen && k <= Tilde
}

// IsComment reports whether k is a comment kind.
func (k Kind) IsComment() bool {
	return k == LineComment || k == BlockComment
}

// isTrivia reports whether tokens of kind k carry no grammatical meaning
// (whitespace and comments). Strip removes them before parsing.
func (k Kind) isTrivia() bool {
	return k == Whitespace || k.IsComment()
}

// Token is a classified lexeme. Text holds the original lexeme for
// identifiers, constants, keywords, and symbols; comment tokens carry no text.
type Token struct {
	Kind Kind
	Text string
}

// String returns a readable form of the token, e.g. IDENT("main").
func (t Token) String() string {
	switch t.Kind {
	case Ident, Const:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	}
	return t.Kind.String()
}

// keywords maps reserved words to their kind. Keyword lookup runs before
// identifier classification, so reserved words never scan as identifiers.
var keywords = map[string]Kind{
	"int":    KwInt,
	"void":   KwVoid,
	"return": KwReturn,
}

// LookupKeyword returns the keyword kind for text, if it is a reserved word.
func LookupKeyword(text string) (Kind, bool) {
	k, ok := keywords[text]
	return k, ok
}

// Strip returns tokens with whitespace and comment tokens removed.
// Lex deliberately keeps both in its output; parsing consumes the
// stripped stream.
func Strip(tokens []Token) []Token {
	var kept []Token
	for _, t := range tokens {
		if !t.Kind.isTrivia() {
			kept = append(kept, t)
		}
	}
	return kept
}
