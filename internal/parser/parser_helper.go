package parser

import (
	"mnlang/internal/ast"
	"mnlang/internal/errors"
	"mnlang/token"
)

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t token.Type) bool {
	return p.peekToken.Type == t
}

// expectPeek advances only when peekToken has the wanted type; otherwise it
// records an error and leaves the window where it is.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) skipOptionalSemicolon() {
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
}

// synchronize skips to the next statement boundary: just past a ';', or onto
// the '}' that closes the enclosing block, or EOF.
func (p *Parser) synchronize() {
	for !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.SEMICOLON:
			p.nextToken()
			return
		case token.RBRACE:
			return
		}
		p.nextToken()
	}
}

// resync recovers from a failed statement. A failure reported against
// peekToken leaves curToken consumed by the statement, so a '}' there closed
// a nested block and must not end the enclosing one.
func (p *Parser) resync() {
	if !p.curTokenIs(token.EOF) && p.lastErrorAt(p.peekToken) {
		p.nextToken()
	}
	p.synchronize()
}

func (p *Parser) lastErrorAt(tok token.Token) bool {
	if len(p.errs) == 0 {
		return false
	}
	found := p.errs[len(p.errs)-1].Found
	return found.Type == tok.Type && found.Pos == tok.Pos
}

func (p *Parser) makeIdent(tok token.Token) *ast.Ident {
	return &ast.Ident{Token: tok, Name: tok.Literal}
}

// parseList parses a comma-separated list closed by end. It is entered with
// curToken on the opening token and returns with curToken on end.
func parseList[T any](p *Parser, end token.Type, parseItem func() (T, bool)) ([]T, bool) {
	var items []T

	if p.peekTokenIs(end) {
		p.nextToken()
		return items, true
	}

	p.nextToken()
	item, ok := parseItem()
	if !ok {
		return nil, false
	}
	items = append(items, item)

	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		item, ok := parseItem()
		if !ok {
			return nil, false
		}
		items = append(items, item)
	}

	if !p.expectPeek(end) {
		return nil, false
	}
	return items, true
}

func (p *Parser) parseParameter() (*ast.Ident, bool) {
	if !p.curTokenIs(token.IDENT) {
		p.addError(token.IDENT.String(), p.curToken, errors.UnexpectedToken(token.IDENT, p.curToken))
		return nil, false
	}
	return p.makeIdent(p.curToken), true
}

func (p *Parser) parseArgument() (ast.Expression, bool) {
	arg := p.parsePrattExpr(LOWEST)
	return arg, arg != nil
}

// Error helpers

func (p *Parser) addError(expected string, found token.Token, diag errors.CompilerError) {
	p.errs = append(p.errs, ParseError{
		Code:     diag.Code,
		Message:  diag.Message,
		Position: diag.Position,
		Expected: expected,
		Found:    found,
		Detail:   diag,
	})
}

func (p *Parser) peekError(t token.Type) {
	p.addError(t.String(), p.peekToken, errors.UnexpectedToken(t, p.peekToken))
}

func (p *Parser) noPrefixRuleError(tok token.Token) {
	if tok.Type == token.ILLEGAL {
		p.addError("expression", tok, errors.IllegalCharacter(tok))
		return
	}
	p.addError("expression", tok, errors.MissingExpression(tok))
}

func (p *Parser) unterminatedBlockError(open token.Token) {
	p.addError(token.RBRACE.String(), p.curToken, errors.UnterminatedBlock(open, p.curToken))
}
