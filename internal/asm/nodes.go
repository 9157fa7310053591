// Package asm defines the resolved x86-64 instruction tree and its text
// emitter. The tree is a four-level ownership hierarchy: a Program owns one
// Function, which owns its Instructions, which own their Operands. It is
// built once per translation unit and consumed once.
package asm

import "fmt"

// Program is the root of the tree.
type Program struct {
	Func *Function
}

// Function is a named, ordered instruction sequence.
type Function struct {
	Name   string
	Instrs []Instruction
}

// Instruction is the interface for all instruction variants.
type Instruction interface {
	aInstruction()
}

// Mov copies Src into Dst (word-sized movl).
type Mov struct {
	Src, Dst Operand
}

// Ret tears down the stack frame and returns. Every Ret emits the full
// epilogue on its own.
type Ret struct{}

// Unary applies a unary operator to its operand in place.
type Unary struct {
	Op      UnaryOp
	Operand Operand
}

// AllocateStack reserves Bytes bytes of frame space below %rbp.
type AllocateStack struct {
	Bytes int
}

func (*Mov) aInstruction()           {}
func (*Ret) aInstruction()           {}
func (*Unary) aInstruction()         {}
func (*AllocateStack) aInstruction() {}

// Operand is the interface for all operand variants.
type Operand interface {
	aOperand()
}

// Imm is an integer immediate.
type Imm struct {
	Value int64
}

// Reg is a concrete machine register.
type Reg struct {
	R Register
}

// Stack is a frame slot at the given (negative) offset from %rbp.
type Stack struct {
	Offset int
}

// Pseudo is an unallocated temporary. The allocation pass replaces every
// Pseudo with a Stack operand; one reaching the emitter is a bug in the
// pipeline, not in the input program.
type Pseudo struct {
	Name string
}

func (Imm) aOperand()    {}
func (Reg) aOperand()    {}
func (Stack) aOperand()  {}
func (Pseudo) aOperand() {}

// Register enumerates the machine registers the lowering uses.
type Register uint8

const (
	AX  Register = iota // accumulator
	R10                 // scratch for memory-to-memory fixups
)

// registerNames maps each register to its word-sized mnemonic.
var registerNames = [...]string{
	AX:  "%eax",
	R10: "%r10d",
}

// String returns the register's word-sized assembly name.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return fmt.Sprintf("register(%d)", r)
}

// UnaryOp enumerates the unary instruction operators.
type UnaryOp uint8

const (
	Neg UnaryOp = iota // arithmetic negation
	Not                // bitwise complement
)

// unaryOpNames maps each operator to its mnemonic.
var unaryOpNames = [...]string{
	Neg: "negl",
	Not: "notl",
}

// String returns the operator's mnemonic.
func (op UnaryOp) String() string {
	if int(op) < len(unaryOpNames) {
		return unaryOpNames[op]
	}
	return fmt.Sprintf("unaryop(%d)", op)
}
