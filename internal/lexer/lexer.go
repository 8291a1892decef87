package lexer

import (
	"unicode/utf8"

	"mnlang/token"
)

// Lexer hands out one token per NextToken call. It never backtracks over
// consumed input and keeps returning EOF once the source is exhausted.
type Lexer struct {
	source      string
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
}

func New(source string) *Lexer {
	return &Lexer{
		source: source,
		line:   1,
		column: 1,
	}
}

// Tokenize scans the whole source, including the trailing EOF token.
func Tokenize(source string) []token.Token {
	l := New(source)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens
		}
	}
}

func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column

	if l.isAtEnd() {
		return token.Token{Type: token.EOF, Literal: token.EOFLiteral, Pos: l.startPos()}
	}

	c := l.advance()
	switch c {
	case '+':
		return l.makeToken(token.PLUS)
	case '-':
		return l.makeToken(token.MINUS)
	case '*':
		return l.makeToken(token.ASTERISK)
	case '/':
		return l.makeToken(token.SLASH)
	case '<':
		return l.makeToken(token.LT)
	case '>':
		return l.makeToken(token.GT)
	case ',':
		return l.makeToken(token.COMMA)
	case ';':
		return l.makeToken(token.SEMICOLON)
	case '(':
		return l.makeToken(token.LPAREN)
	case ')':
		return l.makeToken(token.RPAREN)
	case '{':
		return l.makeToken(token.LBRACE)
	case '}':
		return l.makeToken(token.RBRACE)

	// Operators with a two-character variant
	case '=':
		return l.scanEqualOperator()
	case '!':
		return l.scanBangOperator()
	}

	return l.scanDefault(c)
}

func (l *Lexer) scanEqualOperator() token.Token {
	if l.matchNext('=') {
		return l.makeToken(token.EQ)
	}
	return l.makeToken(token.ASSIGN)
}

func (l *Lexer) scanBangOperator() token.Token {
	if l.matchNext('=') {
		return l.makeToken(token.NOT_EQ)
	}
	return l.makeToken(token.BANG)
}

func (l *Lexer) scanDefault(c byte) token.Token {
	switch {
	case isLetter(c):
		return l.scanIdentifier()
	case isDigit(c):
		return l.scanNumber()
	case c >= utf8.RuneSelf:
		// Keep multi-byte characters whole in the Illegal literal.
		_, size := utf8.DecodeRuneInString(l.source[l.start:])
		for i := 1; i < size; i++ {
			l.advance()
		}
	}
	return l.makeToken(token.ILLEGAL)
}

func (l *Lexer) scanIdentifier() token.Token {
	for isLetter(l.peek()) {
		l.advance()
	}
	text := l.source[l.start:l.current]
	return l.makeToken(token.LookupIdent(text))
}

func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	return l.makeToken(token.INT)
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) advance() byte {
	c := l.source[l.current]
	l.current++
	if c == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return c
}

func (l *Lexer) matchNext(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) makeToken(tokenType token.Type) token.Token {
	return token.Token{
		Type:    tokenType,
		Literal: l.source[l.start:l.current],
		Pos:     l.startPos(),
	}
}

func (l *Lexer) startPos() token.Position {
	return token.Position{
		Offset: l.start,
		Line:   l.startLine,
		Column: l.startColumn,
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
