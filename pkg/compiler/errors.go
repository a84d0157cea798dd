package compiler

import "fmt"

// Msg is a constant diagnostic message. Callers match on it to tell which
// expectation failed without parsing error strings.
type Msg string

func (m Msg) Error() string { return string(m) }

// Lexer and renderer messages.
const (
	MsgUnrecognizableToken = Msg("unrecognizable token")
	MsgMalformedConstant   = Msg("malformed constant, identifier character after digits")
	MsgUnterminatedComment = Msg("unterminated block comment")
	MsgExpectedTokens      = Msg("expected tokens")
	MsgExpectedProgram     = Msg("expected program node")
	MsgUnexpectedNode      = Msg("unexpected node type")
	MsgMissingChild        = Msg("node is missing a required child")
)

// Parser messages, one per failed expectation.
const (
	MsgFunctionExpectedReturnType = Msg("cannot parse function, expected valid return type")
	MsgFunctionExpectedName       = Msg("cannot parse function, expected function name identifier")
	MsgFunctionExpectedOpenParen  = Msg("cannot parse function, expected ( after function name")
	MsgFunctionExpectedArguments  = Msg("cannot parse function, expected arguments")
	MsgFunctionExpectedCloseParen = Msg("cannot parse function, expected close paren after args")
	MsgFunctionExpectedOpenBrace  = Msg("cannot parse function, expected open brace to start function body")
	MsgFunctionExpectedCloseBrace = Msg("cannot parse function, expected closing brace after function body")
	MsgReturnExpectedReturn       = Msg("cannot parse return statement, expected return keyword")
	MsgReturnExpectedSemicolon    = Msg("cannot parse return statement, expected semicolon")
	MsgConstantExpectedConstant   = Msg("cannot parse constant expression, expected constant")
	MsgProgramExpectedEndOfInput  = Msg("cannot parse program, expected end of input after function")
)

// LexError reports a character sequence that cannot begin any token.
type LexError struct {
	Line   int
	Column int
	Msg    Msg
	Text   string // offending source text
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s %q", e.Line, e.Column, e.Msg, e.Text)
}

func (e *LexError) Unwrap() error { return e.Msg }

// SyntaxError reports a grammar production whose expected token was not
// found. Found is the token that was there instead (EOF past the end).
type SyntaxError struct {
	Msg   Msg
	Found Token
}

func (e *SyntaxError) Error() string {
	found := e.Found.Type.String()
	if e.Found.Lexeme != "" {
		found += " " + e.Found.Lexeme
	}
	return fmt.Sprintf("line %d, column %d: %s (found %s)", e.Found.Line, e.Found.Column, e.Msg, found)
}

func (e *SyntaxError) Unwrap() error { return e.Msg }

// RenderError reports a token slice or tree that cannot be printed.
type RenderError struct {
	Msg  Msg
	Node string // description of the offending node, if any
}

func (e *RenderError) Error() string {
	if e.Node == "" {
		return string(e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Msg, e.Node)
}

func (e *RenderError) Unwrap() error { return e.Msg }
