package compiler

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program          = function? EOF
//	function         = "int" IDENTIFIER "(" "void" ")" "{" statement "}"
//	statement        = returnStmt
//	returnStmt       = "return" expression ";"
//	expression       = constantExpr
//	constantExpr     = CONSTANT
//
// Every production checks the current token before consuming it and fails
// immediately on a mismatch; there is no backtracking and no recovery.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	return p.peekAt(0)
}

// peekAt returns the token at the given offset from the current position,
// or an EOF sentinel placed just after the last token.
func (p *Parser) peekAt(offset int) Token {
	if p.pos+offset < len(p.tokens) {
		return p.tokens[p.pos+offset]
	}
	return p.eof()
}

func (p *Parser) eof() Token {
	if len(p.tokens) == 0 {
		return Token{Type: EOF, Line: 1, Column: 1}
	}
	last := p.tokens[len(p.tokens)-1]
	return Token{Type: EOF, Line: last.Line, Column: last.Column + last.Width()}
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt. Otherwise the cursor
// stays put and the error carries msg and the token found.
func (p *Parser) expect(tt TokenType, msg Msg) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return Token{}, &SyntaxError{Msg: msg, Found: tok}
	}
	return p.advance(), nil
}

// parseConstantExpr parses  CONSTANT
func (p *Parser) parseConstantExpr() (Expr, error) {
	tok, err := p.expect(CONSTANT, MsgConstantExpectedConstant)
	if err != nil {
		return nil, err
	}
	return &ConstantExpr{Constant: tok}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Expr, error) {
	return p.parseConstantExpr()
}

// parseReturn parses  return expr ;
func (p *Parser) parseReturn() (Stmt, error) {
	if _, err := p.expect(RETURN, MsgReturnExpectedReturn); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON, MsgReturnExpectedSemicolon); err != nil {
		return nil, err
	}
	return &ReturnStmt{Expr: expr}, nil
}

func (p *Parser) parseStatement() (Stmt, error) {
	return p.parseReturn()
}

// parseFunctionDecl parses  int name ( void ) { statement }
func (p *Parser) parseFunctionDecl() (*FunctionDecl, error) {
	retType, err := p.expect(INT, MsgFunctionExpectedReturnType)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(IDENTIFIER, MsgFunctionExpectedName)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(OPEN_PAREN, MsgFunctionExpectedOpenParen); err != nil {
		return nil, err
	}
	args, err := p.expect(VOID, MsgFunctionExpectedArguments)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(CLOSE_PAREN, MsgFunctionExpectedCloseParen); err != nil {
		return nil, err
	}
	if _, err := p.expect(OPEN_BRACE, MsgFunctionExpectedOpenBrace); err != nil {
		return nil, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(CLOSE_BRACE, MsgFunctionExpectedCloseBrace); err != nil {
		return nil, err
	}
	return &FunctionDecl{ReturnType: retType, Name: name, Args: args, Body: body}, nil
}

// parseProgram parses  function? EOF
func (p *Parser) parseProgram() (*Program, error) {
	if p.peek().Type == EOF {
		return &Program{}, nil
	}
	fn, err := p.parseFunctionDecl()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(EOF, MsgProgramExpectedEndOfInput); err != nil {
		return nil, err
	}
	return &Program{Function: fn}, nil
}

// Parse builds a Program from tokens. An empty slice yields a Program with
// no function. Any other input must be exactly one function.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).parseProgram()
}
