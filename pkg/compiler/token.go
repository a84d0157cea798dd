package compiler

import (
	"fmt"
	"strings"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input, never produced by Lex

	// Paired delimiters
	OPEN_PAREN  // (
	CLOSE_PAREN // )
	OPEN_BRACE  // {
	CLOSE_BRACE // }

	// Punctuation
	SEMICOLON // ;

	// Arithmetic operators
	PLUS  // +
	MINUS // -

	// Comparison (two-character forms are matched first)
	GREATER_THAN          // >
	LESS_THAN             // <
	GREATER_THAN_OR_EQUAL // >=
	LESS_THAN_OR_EQUAL    // <=

	// Keywords
	IF     // "if"
	INT    // "int"
	VOID   // "void"
	RETURN // "return"

	// Literals
	CONSTANT   // decimal digits, kept verbatim
	IDENTIFIER // variable / function name
)

// tokenNames is indexed by TokenType. These are the names printed by the
// debug token dump, so they must stay stable.
var tokenNames = [...]string{
	EOF:                   "eof",
	OPEN_PAREN:            "open_paren",
	CLOSE_PAREN:           "close_paren",
	OPEN_BRACE:            "open_brace",
	CLOSE_BRACE:           "close_brace",
	SEMICOLON:             "semicolon",
	PLUS:                  "plus",
	MINUS:                 "minus",
	GREATER_THAN:          "greater_than",
	LESS_THAN:             "less_than",
	GREATER_THAN_OR_EQUAL: "greater_than_or_equal",
	LESS_THAN_OR_EQUAL:    "less_than_or_equal",
	IF:                    "if",
	INT:                   "int",
	VOID:                  "void",
	RETURN:                "return",
	CONSTANT:              "constant",
	IDENTIFIER:            "identifier",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Type TokenType
	// Lexeme is the payload: the name of an IDENTIFIER or the digits of a
	// CONSTANT. It is empty for every other kind.
	Lexeme string
	Line   int // 1-based source line
	Column int // 1-based column of the first character
}

// Name returns the identifier name, or "" for any other kind.
func (t Token) Name() string {
	if t.Type != IDENTIFIER {
		return ""
	}
	return t.Lexeme
}

// Constant returns the constant's digits, or "" for any other kind.
func (t Token) Constant() string {
	if t.Type != CONSTANT {
		return ""
	}
	return t.Lexeme
}

// Width is the number of source characters the token spans.
func (t Token) Width() int {
	switch t.Type {
	case IDENTIFIER, CONSTANT:
		return len([]rune(t.Lexeme))
	case IF, INT, VOID, RETURN:
		return len(t.Type.String())
	case GREATER_THAN_OR_EQUAL, LESS_THAN_OR_EQUAL:
		return 2
	case EOF:
		return 0
	default:
		return 1
	}
}

// String renders the token in the debug dump format:
//
//	<type: int>
//	<type: identifier name: main>
//	<type: constant constant: 2>
func (t Token) String() string {
	switch t.Type {
	case IDENTIFIER:
		return fmt.Sprintf("<type: %s name: %s>", t.Type, t.Lexeme)
	case CONSTANT:
		return fmt.Sprintf("<type: %s constant: %s>", t.Type, t.Lexeme)
	default:
		return fmt.Sprintf("<type: %s>", t.Type)
	}
}

// TokensString joins the rendering of every token with single spaces.
// A nil slice is rejected; an empty one renders as "".
func TokensString(tokens []Token) (string, error) {
	if tokens == nil {
		return "", &RenderError{Msg: MsgExpectedTokens}
	}
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = tok.String()
	}
	return strings.Join(parts, " "), nil
}
