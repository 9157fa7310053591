package asm

import (
	"fmt"
	"io"
)

// emitter wraps an io.Writer with helpers for emitting assembly text.
type emitter struct {
	w   io.Writer
	err error // first write error
}

// emit writes a formatted line to the output (no indentation).
func (e *emitter) emit(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format+"\n", args...)
}

// emitInst writes an indented instruction or directive line.
func (e *emitter) emitInst(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, "\t"+format+"\n", args...)
}

// EmitProgram writes the GAS (AT&T syntax) text for the program: the one
// function, then the no-execute-stack trailer the GNU toolchain expects.
// The walk is a single depth-first pass; it never reads the output back.
func EmitProgram(w io.Writer, p *Program) error {
	e := &emitter{w: w}
	e.emitFunction(p.Func)
	e.emitInst(`.section .note.GNU-stack,"",@progbits`)
	return e.err
}

func (e *emitter) emitFunction(fn *Function) {
	e.emitInst(".globl %s", fn.Name)
	e.emit("%s:", fn.Name)
	e.emitPrologue()
	for _, in := range fn.Instrs {
		e.emitInstruction(in)
	}
}

func (e *emitter) emitPrologue() {
	e.emitInst("pushq\t%%rbp")
	e.emitInst("movq\t%%rsp, %%rbp")
}

func (e *emitter) emitEpilogue() {
	e.emitInst("movq\t%%rbp, %%rsp")
	e.emitInst("popq\t%%rbp")
}

func (e *emitter) emitInstruction(in Instruction) {
	switch in := in.(type) {
	case *Mov:
		e.emitInst("movl\t%s, %s", operandText(in.Src), operandText(in.Dst))
	case *Ret:
		e.emitEpilogue()
		e.emitInst("ret")
	case *Unary:
		e.emitInst("%s\t%s", in.Op, operandText(in.Operand))
	case *AllocateStack:
		e.emitInst("subq\t$%d, %%rsp", in.Bytes)
	default:
		panic(fmt.Sprintf("asm: unknown instruction %T in emitter stage", in))
	}
}

// operandText renders an operand. The emitter assumes all operands were
// resolved upstream; a Pseudo here is a contract violation and aborts.
func operandText(op Operand) string {
	switch op := op.(type) {
	case Imm:
		return fmt.Sprintf("$%d", op.Value)
	case Reg:
		return op.R.String()
	case Stack:
		return fmt.Sprintf("%d(%%rbp)", op.Offset)
	default:
		panic(fmt.Sprintf("asm: unresolved operand %#v in emitter stage", op))
	}
}
