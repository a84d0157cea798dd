package compiler

import "fmt"

// Node is implemented by every AST node.
type Node interface {
	String() string
}

// Expr is implemented by every node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// ConstantExpr is an integer constant, kept as the lexed digits.
//
//	return 2;
//	       ^  ConstantExpr{Constant: Token{Type: CONSTANT, Lexeme: "2"}}
type ConstantExpr struct {
	Constant Token
}

func (*ConstantExpr) exprNode()        {}
func (c *ConstantExpr) String() string { return c.Constant.Lexeme }

// ReturnStmt is `return expr ;`.
type ReturnStmt struct {
	Expr Expr
}

func (*ReturnStmt) stmtNode() {}
func (r *ReturnStmt) String() string {
	return fmt.Sprintf("return %s;", r.Expr)
}

// FunctionDecl is the only top-level declaration the grammar accepts:
//
//	int main(void) { return 2; }
//	^^^ ^^^^ ^^^^    ^^^^^^^^^
//	|   |    |       Body
//	|   |    Args
//	|   Name
//	ReturnType
type FunctionDecl struct {
	ReturnType Token // INT
	Name       Token // IDENTIFIER
	Args       Token // VOID
	Body       Stmt
}

func (*FunctionDecl) stmtNode() {}
func (f *FunctionDecl) String() string {
	return fmt.Sprintf("%s %s(%s) { %s }", f.ReturnType.Type, f.Name.Lexeme, f.Args.Type, f.Body)
}

// Program is the root of the tree. Function is nil only when the source
// contained no tokens.
type Program struct {
	Function *FunctionDecl
}

func (p *Program) String() string {
	if p.Function == nil {
		return ""
	}
	return p.Function.String()
}
