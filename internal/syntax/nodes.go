package syntax

// AST for the single-function grammar:
//
//	<program> ::= "int" <identifier> "(" "void" ")" "{" <statement> "}"
//	<statement> ::= "return" <exp> ";"
//	<exp> ::= <int> | <unop> <exp> | "(" <exp> ")"
//	<unop> ::= "-" | "~"

// Node is the interface implemented by all AST nodes.
type Node interface {
	aNode() // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	aExpr()
}

type node struct{}

func (node) aNode() {}

type expr struct{ node }

func (expr) aExpr() {}

// Program is a complete translation unit: exactly one function.
type Program struct {
	node
	Func *FuncDecl
}

// FuncDecl is a function definition with the fixed int(void) signature.
type FuncDecl struct {
	node
	Name string
	Body *ReturnStmt
}

// ReturnStmt is the function's single return statement.
type ReturnStmt struct {
	node
	Expr Expr
}

// IntLit is a decimal integer constant.
type IntLit struct {
	expr
	Value int64
}

// UnaryExpr is a prefix unary operation. Op is Minus or Tilde.
type UnaryExpr struct {
	expr
	Op Kind
	X  Expr
}
