package compiler

import (
	"fmt"
	"strings"
)

// astPrinter renders a tree one node per line, two spaces per level.
type astPrinter struct {
	sb strings.Builder
}

func (pr *astPrinter) line(depth int, format string, args ...any) {
	pr.sb.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&pr.sb, format, args...)
	pr.sb.WriteByte('\n')
}

func (pr *astPrinter) program(prog *Program) error {
	if prog == nil {
		return &RenderError{Msg: MsgExpectedProgram}
	}
	pr.line(0, "Program(")
	if prog.Function != nil {
		if err := pr.function(prog.Function, 1); err != nil {
			return err
		}
	}
	pr.line(0, ")")
	return nil
}

func (pr *astPrinter) function(fn *FunctionDecl, depth int) error {
	pr.line(depth, "FunctionDeclaration(")
	pr.line(depth+1, "returnType: %s", fn.ReturnType.Type)
	pr.line(depth+1, "functionName: %s", fn.Name.Lexeme)
	pr.line(depth+1, "args: %s", fn.Args.Type)
	if err := pr.stmt(fn.Body, depth+1); err != nil {
		return err
	}
	pr.line(depth, ")")
	return nil
}

func (pr *astPrinter) stmt(s Stmt, depth int) error {
	switch s := s.(type) {
	case *ReturnStmt:
		if s == nil {
			return &RenderError{Msg: MsgMissingChild, Node: "function body"}
		}
		pr.line(depth, "ReturnStatement(")
		if err := pr.expr(s.Expr, depth+1); err != nil {
			return err
		}
		pr.line(depth, ")")
		return nil
	case nil:
		return &RenderError{Msg: MsgMissingChild, Node: "function body"}
	default:
		return &RenderError{Msg: MsgUnexpectedNode, Node: fmt.Sprintf("statement %T", s)}
	}
}

func (pr *astPrinter) expr(e Expr, depth int) error {
	switch e := e.(type) {
	case *ConstantExpr:
		if e == nil {
			return &RenderError{Msg: MsgMissingChild, Node: "return statement"}
		}
		pr.line(depth, "Constant(%s)", e.Constant.Lexeme)
		return nil
	case nil:
		return &RenderError{Msg: MsgMissingChild, Node: "return statement"}
	default:
		return &RenderError{Msg: MsgUnexpectedNode, Node: fmt.Sprintf("expression %T", e)}
	}
}

// ASTString renders prog as an indented tree:
//
//	Program(
//	  FunctionDeclaration(
//	    returnType: int
//	    functionName: main
//	    args: void
//	    ReturnStatement(
//	      Constant(2)
//	    )
//	  )
//	)
//
// It fails on a nil program, a missing child, or a node type it does not
// know how to print. Trees built by Parse always render.
func ASTString(prog *Program) (string, error) {
	var pr astPrinter
	if err := pr.program(prog); err != nil {
		return "", err
	}
	return pr.sb.String(), nil
}
