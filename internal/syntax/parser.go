package syntax

import (
	"fmt"
	"strconv"
)

// ParseError reports a token that does not fit the grammar.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string {
	return e.Msg
}

// parser consumes a stripped token stream.
type parser struct {
	toks []Token
	pos  int
}

// Parse builds the AST for a full translation unit. Whitespace and comment
// tokens in the input are stripped first, so Parse accepts the raw Lex
// output directly.
func Parse(tokens []Token) (*Program, error) {
	p := &parser{toks: Strip(tokens)}
	fn, err := p.parseFunc()
	if err != nil {
		return nil, err
	}
	if tok, ok := p.at(); ok {
		return nil, &ParseError{Msg: fmt.Sprintf("unexpected %s after function body", tok)}
	}
	return &Program{Func: fn}, nil
}

func (p *parser) at() (Token, bool) {
	if p.pos >= len(p.toks) {
		return Token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (Token, bool) {
	tok, ok := p.at()
	if ok {
		p.pos++
	}
	return tok, ok
}

func (p *parser) expect(k Kind) (Token, error) {
	tok, ok := p.next()
	if !ok {
		return Token{}, &ParseError{Msg: fmt.Sprintf("expected %s, found end of input", k)}
	}
	if tok.Kind != k {
		return Token{}, &ParseError{Msg: fmt.Sprintf("expected %s, found %s", k, tok)}
	}
	return tok, nil
}

func (p *parser) parseFunc() (*FuncDecl, error) {
	if _, err := p.expect(KwInt); err != nil {
		return nil, err
	}
	name, err := p.expect(Ident)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(OpenParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(KwVoid); err != nil {
		return nil, err
	}
	if _, err := p.expect(CloseParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(OpenBrace); err != nil {
		return nil, err
	}
	body, err := p.parseReturn()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(CloseBrace); err != nil {
		return nil, err
	}
	return &FuncDecl{Name: name.Text, Body: body}, nil
}

func (p *parser) parseReturn() (*ReturnStmt, error) {
	if _, err := p.expect(KwReturn); err != nil {
		return nil, err
	}
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(Semi); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: e}, nil
}

func (p *parser) parseExpr() (Expr, error) {
	tok, ok := p.next()
	if !ok {
		return nil, &ParseError{Msg: "expected expression, found end of input"}
	}
	switch tok.Kind {
	case Const:
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, &ParseError{Msg: fmt.Sprintf("constant %q out of range", tok.Text)}
		}
		return &IntLit{Value: v}, nil

	case Minus, Tilde:
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: tok.Kind, X: x}, nil

	case OpenParen:
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(CloseParen); err != nil {
			return nil, err
		}
		return e, nil

	case Decrement:
		// The token exists only as the merge pass's output; no prefix or
		// postfix "--" operator is in the grammar.
		return nil, &ParseError{Msg: `"--" is not a supported operator`}
	}
	return nil, &ParseError{Msg: fmt.Sprintf("expected expression, found %s", tok)}
}
