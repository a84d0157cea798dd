package compiler

import "unicode"

// keywords maps source text to its keyword TokenType. Anything else that
// scans as an identifier is an IDENTIFIER.
var keywords = map[string]TokenType{
	"if":     IF,
	"int":    INT,
	"void":   VOID,
	"return": RETURN,
}

// twoCharTokens are tried before oneCharTokens so ">=" never lexes as ">" "=".
var twoCharTokens = map[string]TokenType{
	">=": GREATER_THAN_OR_EQUAL,
	"<=": LESS_THAN_OR_EQUAL,
}

var oneCharTokens = map[rune]TokenType{
	'(': OPEN_PAREN,
	')': CLOSE_PAREN,
	'{': OPEN_BRACE,
	'}': CLOSE_BRACE,
	';': SEMICOLON,
	'+': PLUS,
	'-': MINUS,
	'>': GREATER_THAN,
	'<': LESS_THAN,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src  []rune
	pos  int // index of the next rune to consume
	line int // current 1-based source line
	col  int // current 1-based column
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1, col: 1}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	return l.peekAt(0)
}

// peekAt returns the rune offset positions ahead, or 0 past the end.
func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

// advance consumes one rune and returns it.
func (l *Lexer) advance() rune {
	if l.atEnd() {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentInner(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// isSpace also accepts U+FEFF, so a byte order mark reads as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}

func (l *Lexer) skipWhitespace() {
	for !l.atEnd() && isSpace(l.peek()) {
		l.advance()
	}
}

// skipLineComment discards everything up to, not including, the newline.
// The opening "//" must already have been consumed.
func (l *Lexer) skipLineComment() {
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
}

// skipBlockComment discards everything up to and including the first "*/".
// Block comments do not nest. The opening "/*" must already have been
// consumed; line and col locate it for the error.
func (l *Lexer) skipBlockComment(line, col int) error {
	for !l.atEnd() {
		if l.peek() == '*' && l.peekAt(1) == '/' {
			l.advance() // *
			l.advance() // /
			return nil
		}
		l.advance()
	}
	return &LexError{Line: line, Column: col, Msg: MsgUnterminatedComment, Text: "/*"}
}

// skipTrivia skips whitespace and both comment styles in a loop so that a
// comment followed by more whitespace is handled.
func (l *Lexer) skipTrivia() error {
	for {
		l.skipWhitespace()
		if l.peek() != '/' {
			return nil
		}
		line, col := l.line, l.col
		switch l.peekAt(1) {
		case '/':
			l.advance()
			l.advance()
			l.skipLineComment()
		case '*':
			l.advance()
			l.advance()
			if err := l.skipBlockComment(line, col); err != nil {
				return err
			}
		default:
			// a lone '/' is not a token; nextToken reports it
			return nil
		}
	}
}

// scanWord consumes a maximal run of identifier characters, then classifies
// it against the keyword table. The first rune must satisfy isIdentStart.
func (l *Lexer) scanWord() Token {
	line, col := l.line, l.col
	start := l.pos
	for isIdentInner(l.peek()) {
		l.advance()
	}
	word := string(l.src[start:l.pos])
	if kw, ok := keywords[word]; ok {
		return Token{Type: kw, Line: line, Column: col}
	}
	return Token{Type: IDENTIFIER, Lexeme: word, Line: line, Column: col}
}

// scanConstant consumes a maximal run of decimal digits. A run that runs
// straight into a letter or underscore (e.g. 9a) is rejected rather than
// split into a constant and an identifier.
func (l *Lexer) scanConstant() (Token, error) {
	line, col := l.line, l.col
	start := l.pos
	for isDigit(l.peek()) {
		l.advance()
	}
	if isIdentInner(l.peek()) {
		for isIdentInner(l.peek()) {
			l.advance()
		}
		return Token{}, &LexError{Line: line, Column: col, Msg: MsgMalformedConstant, Text: string(l.src[start:l.pos])}
	}
	return Token{Type: CONSTANT, Lexeme: string(l.src[start:l.pos]), Line: line, Column: col}, nil
}

// nextToken returns the next token. ok is false once the input is exhausted.
func (l *Lexer) nextToken() (tok Token, ok bool, err error) {
	if err := l.skipTrivia(); err != nil {
		return Token{}, false, err
	}
	if l.atEnd() {
		return Token{}, false, nil
	}

	ch := l.peek()
	line, col := l.line, l.col

	if tt, found := twoCharTokens[string([]rune{ch, l.peekAt(1)})]; found {
		l.advance()
		l.advance()
		return Token{Type: tt, Line: line, Column: col}, true, nil
	}
	if tt, found := oneCharTokens[ch]; found {
		l.advance()
		return Token{Type: tt, Line: line, Column: col}, true, nil
	}
	if isIdentStart(ch) {
		return l.scanWord(), true, nil
	}
	if isDigit(ch) {
		tok, err := l.scanConstant()
		if err != nil {
			return Token{}, false, err
		}
		return tok, true, nil
	}

	return Token{}, false, &LexError{Line: line, Column: col, Msg: MsgUnrecognizableToken, Text: string(ch)}
}

// Lex tokenises src. The result never contains EOF and is non-nil on
// success, empty when src holds only whitespace and comments. It returns
// nil and an error on the first character that cannot start a token.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	tokens := []Token{}
	for {
		tok, ok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		if !ok {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
