package parser

import (
	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/token"
)

// parseStatement dispatches on the current token to one of the
// statement forms; the trailing semicolon (where the grammar requires
// one) is consumed here so callers can just call nextToken afterward.
func (p *Parser) parseStatement() ast.Node {
	switch p.curToken().Type {
	case token.LET:
		return p.parseDeclaration()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseConditional()
	case token.WHILE:
		return p.parseLoopWhile()
	case token.FN:
		return p.parseFunctionDeclaration()
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseAssignment()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseAssignment() ast.Node {
	start := p.curToken()
	name := p.curToken().Lexeme
	p.nextToken() // consume '='
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.Assignment{Base: ast.NewBase(p.span(start)), Name: name, Expr: expr}
}

// parseBlock parses a `{ stmt* }` body, used by conditionals, loops,
// and function/lambda bodies.
func (p *Parser) parseBlock() []ast.Node {
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()

	var body []ast.Node
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if len(p.errors) > 0 {
			return nil
		}
		if stmt != nil {
			body = append(body, stmt)
		}
		p.nextToken()
	}
	if !p.curTokenIs(token.RBRACE) {
		p.errorf(p.curToken().Span, "expected '}' to close block, got %v", p.curToken().Type)
		return nil
	}
	return body
}

func (p *Parser) parseDeclaration() ast.Node {
	start := p.curToken()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken().Lexeme

	typeAnn := ""
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		typeAnn = p.curToken().Lexeme
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.Declaration{Base: ast.NewBase(p.span(start)), Name: name, Type: typeAnn, Expr: expr}
}

func (p *Parser) parseReturn() ast.Node {
	start := p.curToken()
	var expr ast.Node
	if !p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
		expr = p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	return &ast.Return{Base: ast.NewBase(p.span(start)), Expr: expr}
}

func (p *Parser) parseConditional() ast.Node {
	start := p.curToken()
	var arms []ast.ConditionalArm

	for {
		if !p.expectPeek(token.LPAREN) {
			return nil
		}
		p.nextToken()
		cond := p.parseExpression(LOWEST)
		if cond == nil {
			return nil
		}
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		body := p.parseBlock()
		if len(p.errors) > 0 {
			return nil
		}
		arms = append(arms, ast.ConditionalArm{Cond: cond, Body: body})

		if p.peekTokenIs(token.ELSE) {
			p.nextToken()
			if p.peekTokenIs(token.IF) {
				p.nextToken()
				continue
			}
			elseBody := p.parseBlock()
			if len(p.errors) > 0 {
				return nil
			}
			return &ast.Conditional{Base: ast.NewBase(p.span(start)), Arms: arms, Else: elseBody}
		}
		break
	}

	return &ast.Conditional{Base: ast.NewBase(p.span(start)), Arms: arms}
}

func (p *Parser) parseLoopWhile() ast.Node {
	start := p.curToken()
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	body := p.parseBlock()
	if len(p.errors) > 0 {
		return nil
	}
	return &ast.LoopWhile{Base: ast.NewBase(p.span(start)), Cond: cond, Body: body}
}

func (p *Parser) parseFunctionDeclaration() ast.Node {
	start := p.curToken()
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken().Lexeme

	params := p.parseParamList()
	if len(p.errors) > 0 {
		return nil
	}

	returnType := ""
	if p.peekTokenIs(token.COLON) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		returnType = p.curToken().Lexeme
	}

	body := p.parseBlock()
	if len(p.errors) > 0 {
		return nil
	}
	return &ast.FunctionDeclaration{
		Base: ast.NewBase(p.span(start)), Name: name, Params: params, ReturnType: returnType, Body: body,
	}
}

// parseParamList parses `(ident, ident, ...)`, assuming the current
// token precedes the opening paren.
func (p *Parser) parseParamList() []string {
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	var params []string
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return params
	}
	p.nextToken()
	params = append(params, p.curToken().Lexeme)
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		params = append(params, p.curToken().Lexeme)
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseExpressionStatement() ast.Node {
	start := p.curToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if p.peekTokenIs(token.SEMICOLON) {
		p.nextToken()
	}
	_ = start
	return expr
}
