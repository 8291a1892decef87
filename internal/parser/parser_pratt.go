package parser

import (
	"strconv"

	"mnlang/internal/ast"
	"mnlang/internal/errors"
	"mnlang/token"
)

const (
	_ int = iota
	LOWEST
	EQUALS      // == !=
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * /
	PREFIX      // -x !x
	CALL        // f(x)
)

var binaryPrecedence = map[token.Type]int{
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.LPAREN:   CALL,
}

func (p *Parser) registerRules() {
	p.prefixRules = map[token.Type]prefixRule{
		token.IDENT:    p.parseIdentifier,
		token.INT:      p.parseIntegerLiteral,
		token.TRUE:     p.parseBooleanLiteral,
		token.FALSE:    p.parseBooleanLiteral,
		token.BANG:     p.parsePrefixExpr,
		token.MINUS:    p.parsePrefixExpr,
		token.LPAREN:   p.parseGroupedExpr,
		token.IF:       p.parseIfExpr,
		token.FUNCTION: p.parseFunctionLiteral,
	}

	p.infixRules = make(map[token.Type]infixRule)
	for t := range binaryPrecedence {
		p.infixRules[t] = p.parseInfixExpr
	}
	p.infixRules[token.LPAREN] = p.parseCallExpr
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := binaryPrecedence[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := binaryPrecedence[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// parsePrattExpr returns nil after recording an error; callers propagate the
// nil so no partially built node reaches the tree.
func (p *Parser) parsePrattExpr(minPrec int) ast.Expression {
	prefix := p.prefixRules[p.curToken.Type]
	if prefix == nil {
		p.noPrefixRuleError(p.curToken)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && minPrec < p.peekPrecedence() {
		infix := p.infixRules[p.peekToken.Type]
		if infix == nil {
			return left
		}

		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) parseIdentifier() ast.Expression {
	return p.makeIdent(p.curToken)
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError("integer", p.curToken, errors.IntegerOverflow(p.curToken))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(token.TRUE)}
}

func (p *Parser) parsePrefixExpr() ast.Expression {
	expr := &ast.PrefixExpr{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
	}

	p.nextToken()
	expr.Right = p.parsePrattExpr(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseInfixExpr(left ast.Expression) ast.Expression {
	expr := &ast.InfixExpr{
		Token:    p.curToken,
		Operator: p.curToken.Literal,
		Left:     left,
	}

	prec := p.curPrecedence()
	p.nextToken()
	expr.Right = p.parsePrattExpr(prec)
	if expr.Right == nil {
		return nil
	}
	return expr
}

func (p *Parser) parseGroupedExpr() ast.Expression {
	p.nextToken()

	expr := p.parsePrattExpr(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseIfExpr() ast.Expression {
	expr := &ast.IfExpr{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	p.nextToken()
	expr.Condition = p.parsePrattExpr(LOWEST)
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.RPAREN) || !p.expectPeek(token.LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlock()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		if !p.expectPeek(token.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlock()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

func (p *Parser) parseFunctionLiteral() ast.Expression {
	fn := &ast.FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	params, ok := parseList(p, token.RPAREN, p.parseParameter)
	if !ok {
		return nil
	}
	fn.Parameters = params

	if !p.expectPeek(token.LBRACE) {
		return nil
	}

	fn.Body = p.parseBlock()
	if fn.Body == nil {
		return nil
	}
	return fn
}

func (p *Parser) parseCallExpr(function ast.Expression) ast.Expression {
	call := &ast.CallExpr{Token: p.curToken, Function: function}

	args, ok := parseList(p, token.RPAREN, p.parseArgument)
	if !ok {
		return nil
	}
	call.Arguments = args
	return call
}
