// Package main implements the wcc compiler entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xyproto/env/v2"

	"github.com/VeeIsForVanana/writing-a-c-compiler/internal/asm"
	"github.com/VeeIsForVanana/writing-a-c-compiler/internal/codegen"
	"github.com/VeeIsForVanana/writing-a-c-compiler/internal/syntax"
)

// Compiler flags. Defaults can come from the environment so build scripts
// can set them once.
var (
	emitTokens = flag.Bool("emit-tokens", false, "Output token stream and exit")
	emitAsm    = flag.Bool("emit-asm", false, "Output assembly to stdout instead of a file")
	output     = flag.String("o", env.Str("WCC_OUTPUT"), "Output file (default: input with .s extension)")
	version    = flag.Bool("version", false, "Print version")
)

const Version = "0.1.0"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "wcc %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: wcc [options] <file.c>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("wcc version %s\n", Version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: wcc [options] <file.c>")
		os.Exit(1)
	}

	filename := args[0]

	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}
	os.Exit(runCompile(filename))
}

// runCompile drives the full pipeline: lex, parse, lower, emit.
func runCompile(filename string) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	tokens, err := syntax.Lex(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}

	prog, err := syntax.Parse(tokens)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}

	aprog := codegen.Compile(prog)

	if *emitAsm {
		if err := asm.EmitProgram(os.Stdout, aprog); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	out := outputPath(filename)
	f, err := os.Create(out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()
	if err := asm.EmitProgram(f, aprog); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// runEmitTokens lexes the input file and prints the raw token stream,
// whitespace and comment tokens included.
func runEmitTokens(filename string) int {
	src, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	tokens, err := syntax.Lex(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", filename, err)
		return 1
	}

	fmt.Printf("%-6s %-14s %s\n", "INDEX", "KIND", "TEXT")
	fmt.Printf("%-6s %-14s %s\n", strings.Repeat("-", 6), strings.Repeat("-", 14), strings.Repeat("-", 14))
	for i, tok := range tokens {
		fmt.Printf("%-6d %-14s %s\n", i, tok.Kind, formatText(tok.Text))
	}
	return 0
}

// outputPath picks the assembly output path: -o (or WCC_OUTPUT) when given,
// otherwise the input name with a .s extension.
func outputPath(filename string) string {
	if *output != "" {
		return *output
	}
	return strings.TrimSuffix(filename, ".c") + ".s"
}

// formatText formats a token's text for display, escaping whitespace.
func formatText(text string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range text {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
