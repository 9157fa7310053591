package syntax

// source is a byte cursor over the input with position tracking.
// The grammar is ASCII-only, so there is no UTF-8 decoding: each byte is
// one character.
type source struct {
	buf  []byte
	offs int // next unread byte

	line uint32 // 1-based line of the last byte read
	col  uint32 // 1-based column of the last byte read (0 before any read)
}

func newSource(buf []byte) source {
	return source{buf: buf, line: 1}
}

// next consumes and returns the next byte. The second result is false at
// end of input.
func (s *source) next() (byte, bool) {
	if s.offs >= len(s.buf) {
		return 0, false
	}
	ch := s.buf[s.offs]
	s.offs++
	if ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return ch, true
}

// peek returns the next byte without consuming it.
func (s *source) peek() (byte, bool) {
	if s.offs >= len(s.buf) {
		return 0, false
	}
	return s.buf[s.offs], true
}

// symbolFor returns the symbol kind for ch, if ch is one of the grammar's
// punctuation or whitespace characters. A '/' maps to CommentStart, which
// the lexer turns into comment handling rather than a token.
func symbolFor(ch byte) (Kind, bool) {
	switch ch {
	case '(':
		return OpenParen, true
	case ')':
		return CloseParen, true
	case '{':
		return OpenBrace, true
	case '}':
		return CloseBrace, true
	case ';':
		return Semi, true
	case '"':
		return Quote, true
	case '/':
		return CommentStart, true
	case '\n', ' ', '\t':
		return Whitespace, true
	case '-':
		return Minus, true
	case '~':
		return Tilde, true
	}
	return 0, false
}
