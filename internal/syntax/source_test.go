package syntax

import "testing"

func TestSourceNext(t *testing.T) {
	s := newSource([]byte("ab\nc"))

	type step struct {
		ch        byte
		line, col uint32
	}
	want := []step{
		{'a', 1, 1},
		{'b', 1, 2},
		{'\n', 2, 0},
		{'c', 2, 1},
	}
	for i, w := range want {
		ch, ok := s.next()
		if !ok {
			t.Fatalf("next %d: unexpected end of input", i)
		}
		if ch != w.ch || s.line != w.line || s.col != w.col {
			t.Errorf("next %d: %q at %d:%d, want %q at %d:%d",
				i, ch, s.line, s.col, w.ch, w.line, w.col)
		}
	}
	if _, ok := s.next(); ok {
		t.Error("next past end of input succeeded")
	}
	if _, ok := s.next(); ok {
		t.Error("next stays at end of input")
	}
}

func TestSourcePeek(t *testing.T) {
	s := newSource([]byte("xy"))

	ch, ok := s.peek()
	if !ok || ch != 'x' {
		t.Fatalf("peek = %q, %v", ch, ok)
	}
	// Peek does not consume.
	ch, ok = s.peek()
	if !ok || ch != 'x' {
		t.Fatalf("second peek = %q, %v", ch, ok)
	}
	s.next()
	s.next()
	if _, ok := s.peek(); ok {
		t.Error("peek past end of input succeeded")
	}
}

func TestSymbolFor(t *testing.T) {
	tests := []struct {
		ch   byte
		want Kind
	}{
		{'(', OpenParen},
		{')', CloseParen},
		{'{', OpenBrace},
		{'}', CloseBrace},
		{';', Semi},
		{'"', Quote},
		{'/', CommentStart},
		{' ', Whitespace},
		{'\t', Whitespace},
		{'\n', Whitespace},
		{'-', Minus},
		{'~', Tilde},
	}
	for _, tt := range tests {
		k, ok := symbolFor(tt.ch)
		if !ok || k != tt.want {
			t.Errorf("symbolFor(%q) = %s, %v, want %s", tt.ch, k, ok, tt.want)
		}
	}
	for _, ch := range []byte{'a', 'Z', '_', '0', '\r'} {
		if k, ok := symbolFor(ch); ok {
			t.Errorf("symbolFor(%q) = %s, want no symbol", ch, k)
		}
	}
}
