package asm

import "testing"

func TestRegisterString(t *testing.T) {
	tests := []struct {
		r    Register
		want string
	}{
		{AX, "%eax"},
		{R10, "%r10d"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("Register(%d).String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestUnaryOpString(t *testing.T) {
	tests := []struct {
		op   UnaryOp
		want string
	}{
		{Neg, "negl"},
		{Not, "notl"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("UnaryOp(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}
