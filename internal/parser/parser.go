package parser

import (
	"mnlang/internal/ast"
	"mnlang/internal/lexer"
	"mnlang/token"
)

type (
	prefixRule func() ast.Expression
	infixRule  func(left ast.Expression) ast.Expression
)

// Parser keeps a two-token window (curToken, peekToken) over the lexer output.
// Every parse function is entered with curToken on the first token of its
// construct and returns with curToken on the last one.
type Parser struct {
	l    *lexer.Lexer
	errs ErrorList

	curToken  token.Token
	peekToken token.Token

	prefixRules map[token.Type]prefixRule
	infixRules  map[token.Type]infixRule
}

func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}
	p.registerRules()

	// Fill curToken and peekToken
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) Errors() ErrorList {
	return p.errs
}

// ParseProgram parses statements until EOF. A statement that fails to parse
// is dropped and the parser resumes after the next statement boundary, so
// one pass can report several independent errors.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
			p.nextToken()
			continue
		}

		p.resync()
		// A '}' at top level closes nothing, and neither does a ';' after it
		if p.curTokenIs(token.RBRACE) {
			p.nextToken()
			if p.curTokenIs(token.SEMICOLON) {
				p.nextToken()
			}
		}
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case token.RETURN:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
	}
	return nil
}

func (p *Parser) parseLetStatement() *ast.LetStmt {
	stmt := &ast.LetStmt{Token: p.curToken}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	stmt.Name = p.makeIdent(p.curToken)

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()
	stmt.Value = p.parsePrattExpr(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseReturnStatement() *ast.ReturnStmt {
	stmt := &ast.ReturnStmt{Token: p.curToken}

	p.nextToken()
	stmt.Value = p.parsePrattExpr(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	p.skipOptionalSemicolon()
	return stmt
}

func (p *Parser) parseExpressionStatement() *ast.ExprStmt {
	stmt := &ast.ExprStmt{Token: p.curToken}

	stmt.Value = p.parsePrattExpr(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	p.skipOptionalSemicolon()
	return stmt
}

// parseBlock parses "{ statements }" and returns with curToken on the '}'.
func (p *Parser) parseBlock() *ast.Block {
	block := &ast.Block{Token: p.curToken}
	p.nextToken()

	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			// Blocks still open around an inner failure at EOF stay quiet
			if !p.lastErrorAt(p.curToken) {
				p.unterminatedBlockError(block.Token)
			}
			return nil
		}

		if stmt := p.parseStatement(); stmt != nil {
			block.Statements = append(block.Statements, stmt)
			p.nextToken()
			continue
		}
		p.resync()
	}

	return block
}
