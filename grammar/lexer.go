package grammar

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	mnlexer "mnlang/internal/lexer"
	"mnlang/token"
)

// Lexer adapts the hand-written scanner to participle so both parsers see
// exactly the same token stream. Symbol names are the token.Type names.
var Lexer lexer.Definition = &definition{}

type definition struct{}

var (
	_ lexer.Definition       = &definition{}
	_ lexer.StringDefinition = &definition{}
)

func (d *definition) Symbols() map[string]lexer.TokenType {
	symbols := map[string]lexer.TokenType{"EOF": lexer.EOF}
	for _, t := range token.Types() {
		if t == token.EOF {
			continue
		}
		symbols[t.String()] = lexer.TokenType(t)
	}
	return symbols
}

func (d *definition) Lex(filename string, r io.Reader) (lexer.Lexer, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return d.LexString(filename, string(source))
}

func (d *definition) LexString(filename string, source string) (lexer.Lexer, error) {
	return &tokenStream{filename: filename, scanner: mnlexer.New(source)}, nil
}

type tokenStream struct {
	filename string
	scanner  *mnlexer.Lexer
}

func (s *tokenStream) Next() (lexer.Token, error) {
	tok := s.scanner.NextToken()
	pos := lexer.Position{
		Filename: s.filename,
		Offset:   tok.Pos.Offset,
		Line:     tok.Pos.Line,
		Column:   tok.Pos.Column,
	}

	switch tok.Type {
	case token.EOF:
		return lexer.EOFToken(pos), nil
	case token.ILLEGAL:
		return lexer.Token{}, participle.Errorf(pos, "illegal character %q", tok.Literal)
	}
	return lexer.Token{Type: lexer.TokenType(tok.Type), Value: tok.Literal, Pos: pos}, nil
}
