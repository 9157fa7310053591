package asm

import (
	"errors"
	"strings"
	"testing"
)

// negation program: main returning -2 by way of the accumulator.
func negationProgram() *Program {
	return &Program{Func: &Function{
		Name: "main",
		Instrs: []Instruction{
			&Mov{Src: Imm{Value: 2}, Dst: Reg{R: AX}},
			&Unary{Op: Neg, Operand: Reg{R: AX}},
			&Ret{},
		},
	}}
}

func TestEmitNegation(t *testing.T) {
	var b strings.Builder
	if err := EmitProgram(&b, negationProgram()); err != nil {
		t.Fatalf("EmitProgram error: %v", err)
	}
	want := "\t.globl main\n" +
		"main:\n" +
		"\tpushq\t%rbp\n" +
		"\tmovq\t%rsp, %rbp\n" +
		"\tmovl\t$2, %eax\n" +
		"\tnegl\t%eax\n" +
		"\tmovq\t%rbp, %rsp\n" +
		"\tpopq\t%rbp\n" +
		"\tret\n" +
		"\t.section .note.GNU-stack,\"\",@progbits\n"
	if b.String() != want {
		t.Errorf("EmitProgram output:\n%s\nwant:\n%s", b.String(), want)
	}
}

func TestEmitStackOperands(t *testing.T) {
	p := &Program{Func: &Function{
		Name: "main",
		Instrs: []Instruction{
			&AllocateStack{Bytes: 8},
			&Mov{Src: Imm{Value: 2}, Dst: Stack{Offset: -4}},
			&Unary{Op: Not, Operand: Stack{Offset: -4}},
			&Mov{Src: Stack{Offset: -4}, Dst: Reg{R: R10}},
			&Mov{Src: Reg{R: R10}, Dst: Stack{Offset: -8}},
			&Mov{Src: Stack{Offset: -8}, Dst: Reg{R: AX}},
			&Ret{},
		},
	}}
	var b strings.Builder
	if err := EmitProgram(&b, p); err != nil {
		t.Fatalf("EmitProgram error: %v", err)
	}
	for _, line := range []string{
		"\tsubq\t$8, %rsp\n",
		"\tmovl\t$2, -4(%rbp)\n",
		"\tnotl\t-4(%rbp)\n",
		"\tmovl\t-4(%rbp), %r10d\n",
		"\tmovl\t%r10d, -8(%rbp)\n",
		"\tmovl\t-8(%rbp), %eax\n",
	} {
		if !strings.Contains(b.String(), line) {
			t.Errorf("output missing %q:\n%s", line, b.String())
		}
	}
}

// Emitting the same tree twice yields byte-identical output.
func TestEmitDeterministic(t *testing.T) {
	p := negationProgram()
	var b1, b2 strings.Builder
	if err := EmitProgram(&b1, p); err != nil {
		t.Fatalf("first emit: %v", err)
	}
	if err := EmitProgram(&b2, p); err != nil {
		t.Fatalf("second emit: %v", err)
	}
	if b1.String() != b2.String() {
		t.Error("emitting the same tree twice produced different output")
	}
}

// An unresolved pseudo register reaching the emitter is a pipeline bug and
// aborts before any text for that instruction is produced.
func TestEmitUnresolvedPseudoPanics(t *testing.T) {
	p := &Program{Func: &Function{
		Name: "main",
		Instrs: []Instruction{
			&Mov{Src: Pseudo{Name: "tmp.0"}, Dst: Reg{R: AX}},
		},
	}}
	var b strings.Builder
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("EmitProgram did not panic on a pseudo operand")
		}
		if !strings.Contains(r.(string), "emitter stage") {
			t.Errorf("panic = %v, want message naming the emitter stage", r)
		}
		if strings.Contains(b.String(), "movl") {
			t.Errorf("emitter produced text for the bad instruction:\n%s", b.String())
		}
	}()
	EmitProgram(&b, p)
}

// errWriter fails every write.
type errWriter struct{}

func (errWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEmitWriteError(t *testing.T) {
	err := EmitProgram(errWriter{}, negationProgram())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("EmitProgram error = %v, want first write error", err)
	}
}
