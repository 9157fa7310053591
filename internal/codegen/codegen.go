// Package codegen lowers the parsed AST to the resolved instruction tree the
// asm emitter consumes. Lowering runs in three passes: instruction selection
// with pseudo-register temporaries, pseudo-to-stack-slot allocation, and an
// instruction fixup pass for the moves x86 cannot encode directly.
package codegen

import (
	"fmt"

	"github.com/VeeIsForVanana/writing-a-c-compiler/internal/asm"
	"github.com/VeeIsForVanana/writing-a-c-compiler/internal/syntax"
)

// slotSize is the frame space for one temporary (word-sized values).
const slotSize = 4

// Compile translates a parsed program into a fully resolved instruction
// tree: no Pseudo operand survives in the result.
func Compile(prog *syntax.Program) *asm.Program {
	fn := prog.Func
	g := &generator{}
	g.lowerReturn(fn.Body)
	instrs := fixup(allocate(g.instrs))
	return &asm.Program{Func: &asm.Function{Name: fn.Name, Instrs: instrs}}
}

// generator accumulates instructions during the lowering walk.
type generator struct {
	instrs []asm.Instruction
	tmp    int
}

func (g *generator) emit(in asm.Instruction) {
	g.instrs = append(g.instrs, in)
}

func (g *generator) newTmp() asm.Pseudo {
	p := asm.Pseudo{Name: fmt.Sprintf("tmp.%d", g.tmp)}
	g.tmp++
	return p
}

func (g *generator) lowerReturn(s *syntax.ReturnStmt) {
	src := g.lowerExpr(s.Expr)
	g.emit(&asm.Mov{Src: src, Dst: asm.Reg{R: asm.AX}})
	g.emit(&asm.Ret{})
}

// lowerExpr emits the instructions computing e and returns the operand
// holding its value. Each unary operation lands in a fresh temporary.
func (g *generator) lowerExpr(e syntax.Expr) asm.Operand {
	switch e := e.(type) {
	case *syntax.IntLit:
		return asm.Imm{Value: e.Value}
	case *syntax.UnaryExpr:
		src := g.lowerExpr(e.X)
		dst := g.newTmp()
		g.emit(&asm.Mov{Src: src, Dst: dst})
		g.emit(&asm.Unary{Op: unaryOp(e.Op), Operand: dst})
		return dst
	}
	panic(fmt.Sprintf("codegen: unknown expression %T in lowering stage", e))
}

func unaryOp(k syntax.Kind) asm.UnaryOp {
	switch k {
	case syntax.Minus:
		return asm.Neg
	case syntax.Tilde:
		return asm.Not
	}
	panic(fmt.Sprintf("codegen: token %s is not a unary operator", k))
}

// allocate assigns each distinct pseudo register a stack slot below %rbp
// and rewrites all operands accordingly. When any slot was assigned, an
// AllocateStack for the whole frame is prepended.
func allocate(instrs []asm.Instruction) []asm.Instruction {
	slots := make(map[string]int)
	next := 0

	resolve := func(op asm.Operand) asm.Operand {
		p, ok := op.(asm.Pseudo)
		if !ok {
			return op
		}
		off, ok := slots[p.Name]
		if !ok {
			next -= slotSize
			off = next
			slots[p.Name] = off
		}
		return asm.Stack{Offset: off}
	}

	for i, in := range instrs {
		switch in := in.(type) {
		case *asm.Mov:
			instrs[i] = &asm.Mov{Src: resolve(in.Src), Dst: resolve(in.Dst)}
		case *asm.Unary:
			instrs[i] = &asm.Unary{Op: in.Op, Operand: resolve(in.Operand)}
		}
	}

	if next == 0 {
		return instrs
	}
	return append([]asm.Instruction{&asm.AllocateStack{Bytes: -next}}, instrs...)
}

// fixup rewrites instructions the target cannot encode: a movl with both
// operands in memory goes through the scratch register.
func fixup(instrs []asm.Instruction) []asm.Instruction {
	var out []asm.Instruction
	for _, in := range instrs {
		if mov, ok := in.(*asm.Mov); ok {
			_, srcMem := mov.Src.(asm.Stack)
			_, dstMem := mov.Dst.(asm.Stack)
			if srcMem && dstMem {
				out = append(out,
					&asm.Mov{Src: mov.Src, Dst: asm.Reg{R: asm.R10}},
					&asm.Mov{Src: asm.Reg{R: asm.R10}, Dst: mov.Dst},
				)
				continue
			}
		}
		out = append(out, in)
	}
	return out
}
