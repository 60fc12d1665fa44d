// Package lexer scans Brewin source text into tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Punctuation
	LPAREN // "("
	RPAREN // ")"
	LBRACE // "{"
	RBRACE // "}"
	SEMI   // ";"
	COMMA  // ","
	DOT    // "."
	AMP    // "&"
	AT     // "@"

	// Operators
	ASSIGN  // "="
	PLUS    // "+"
	MINUS   // "-"
	STAR    // "*"
	SLASH   // "/"
	EQ      // "=="
	NEQ     // "!="
	LT      // "<"
	LTE     // "<="
	GT      // ">"
	GTE     // ">="
	AND     // "&&"
	OR      // "||"
	BANG    // "!"

	// Literals & identifiers
	IDENT
	INT
	STRING

	// Keywords
	DEF
	VAR
	BVAR
	IF
	ELSE
	WHILE
	RETURN
	LAMBDA
	INTERFACE
	TRUE
	FALSE
	NIL
)

// Token is a lexical token with optional literal value.
type Token struct {
	Type   TokenType
	Lexeme string
	Int    int64 // parsed value for INT tokens
	Line   int
	Col    int
}

var keywords = map[string]TokenType{
	"def":       DEF,
	"var":       VAR,
	"bvar":      BVAR,
	"if":        IF,
	"else":      ELSE,
	"while":     WHILE,
	"return":    RETURN,
	"lambda":    LAMBDA,
	"interface": INTERFACE,
	"true":      TRUE,
	"false":     FALSE,
	"nil":       NIL,
}

// Lexer scans one source string.
type Lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func New(src string) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Scan tokenizes the whole source, ending with an EOF token.
func Scan(src string) ([]Token, error) {
	l := New(src)
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *Lexer) skipBlanksAndComments() error {
	for l.pos < len(l.src) {
		c := l.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.advance()
		case c == '/' && l.peekAt(1) == '*':
			line, col := l.line, l.col
			l.advance()
			l.advance()
			closed := false
			for l.pos < len(l.src) {
				if l.peek() == '*' && l.peekAt(1) == '/' {
					l.advance()
					l.advance()
					closed = true
					break
				}
				l.advance()
			}
			if !closed {
				return fmt.Errorf("lexer: unterminated comment at %d:%d", line, col)
			}
		default:
			return nil
		}
	}
	return nil
}

// Next returns the next token.
func (l *Lexer) Next() (Token, error) {
	if err := l.skipBlanksAndComments(); err != nil {
		return Token{}, err
	}
	line, col := l.line, l.col
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Line: line, Col: col}, nil
	}

	c := l.advance()
	switch c {
	case '(':
		return l.tok(LPAREN, "(", line, col), nil
	case ')':
		return l.tok(RPAREN, ")", line, col), nil
	case '{':
		return l.tok(LBRACE, "{", line, col), nil
	case '}':
		return l.tok(RBRACE, "}", line, col), nil
	case ';':
		return l.tok(SEMI, ";", line, col), nil
	case ',':
		return l.tok(COMMA, ",", line, col), nil
	case '.':
		return l.tok(DOT, ".", line, col), nil
	case '@':
		return l.tok(AT, "@", line, col), nil
	case '+':
		return l.tok(PLUS, "+", line, col), nil
	case '-':
		return l.tok(MINUS, "-", line, col), nil
	case '*':
		return l.tok(STAR, "*", line, col), nil
	case '/':
		return l.tok(SLASH, "/", line, col), nil
	case '=':
		if l.peek() == '=' {
			l.advance()
			return l.tok(EQ, "==", line, col), nil
		}
		return l.tok(ASSIGN, "=", line, col), nil
	case '!':
		if l.peek() == '=' {
			l.advance()
			return l.tok(NEQ, "!=", line, col), nil
		}
		return l.tok(BANG, "!", line, col), nil
	case '<':
		if l.peek() == '=' {
			l.advance()
			return l.tok(LTE, "<=", line, col), nil
		}
		return l.tok(LT, "<", line, col), nil
	case '>':
		if l.peek() == '=' {
			l.advance()
			return l.tok(GTE, ">=", line, col), nil
		}
		return l.tok(GT, ">", line, col), nil
	case '&':
		if l.peek() == '&' {
			l.advance()
			return l.tok(AND, "&&", line, col), nil
		}
		return l.tok(AMP, "&", line, col), nil
	case '|':
		if l.peek() == '|' {
			l.advance()
			return l.tok(OR, "||", line, col), nil
		}
		return Token{}, fmt.Errorf("lexer: unexpected character %q at %d:%d", c, line, col)
	case '"':
		return l.scanString(line, col)
	}

	if c >= '0' && c <= '9' {
		return l.scanInt(line, col)
	}
	if isIdentStart(c) {
		return l.scanIdent(line, col), nil
	}
	return Token{}, fmt.Errorf("lexer: unexpected character %q at %d:%d", c, line, col)
}

func (l *Lexer) tok(t TokenType, lexeme string, line, col int) Token {
	return Token{Type: t, Lexeme: lexeme, Line: line, Col: col}
}

func (l *Lexer) scanString(line, col int) (Token, error) {
	var b strings.Builder
	for {
		if l.pos >= len(l.src) {
			return Token{}, fmt.Errorf("lexer: unterminated string at %d:%d", line, col)
		}
		c := l.advance()
		switch c {
		case '"':
			return Token{Type: STRING, Lexeme: b.String(), Line: line, Col: col}, nil
		case '\n':
			return Token{}, fmt.Errorf("lexer: unterminated string at %d:%d", line, col)
		case '\\':
			if l.pos >= len(l.src) {
				return Token{}, fmt.Errorf("lexer: unterminated string at %d:%d", line, col)
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			default:
				return Token{}, fmt.Errorf("lexer: invalid escape %q at %d:%d", esc, l.line, l.col)
			}
		default:
			b.WriteByte(c)
		}
	}
}

// scanInt continues from the digit already consumed at l.pos-1.
func (l *Lexer) scanInt(line, col int) (Token, error) {
	start := l.pos - 1
	for l.pos < len(l.src) && l.peek() >= '0' && l.peek() <= '9' {
		l.advance()
	}
	lexeme := l.src[start:l.pos]
	v, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Token{}, fmt.Errorf("lexer: invalid integer %q at %d:%d", lexeme, line, col)
	}
	return Token{Type: INT, Lexeme: lexeme, Int: v, Line: line, Col: col}, nil
}

// scanIdent continues from the identifier byte already consumed at l.pos-1.
func (l *Lexer) scanIdent(line, col int) Token {
	start := l.pos - 1
	for l.pos < len(l.src) && isIdentPart(l.peek()) {
		l.advance()
	}
	lexeme := l.src[start:l.pos]
	if kw, ok := keywords[lexeme]; ok {
		return Token{Type: kw, Lexeme: lexeme, Line: line, Col: col}
	}
	return Token{Type: IDENT, Lexeme: lexeme, Line: line, Col: col}
}

func isIdentStart(c byte) bool {
	return c == '_' || unicode.IsLetter(rune(c))
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
