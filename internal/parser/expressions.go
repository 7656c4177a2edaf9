package parser

import (
	"strconv"

	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/token"
)

// Precedence levels, lowest to highest -- grounded on the teacher's
// iota ladder in expressions_core.go, trimmed to petal's operator set.
const (
	LOWEST int = iota
	OR_PREC
	AND_PREC
	EQUALITY_PREC
	COMPARISON_PREC
	SUM_PREC
	PRODUCT_PREC
	POWER_PREC
	PREFIX_PREC
)

var precedences = map[token.Type]int{
	token.OR:    OR_PREC,
	token.AND:   AND_PREC,
	token.EQ:    EQUALITY_PREC,
	token.NOT_EQ: EQUALITY_PREC,
	token.LT:    COMPARISON_PREC,
	token.GT:    COMPARISON_PREC,
	token.LTE:   COMPARISON_PREC,
	token.GTE:   COMPARISON_PREC,
	token.PLUS:  SUM_PREC,
	token.MINUS: SUM_PREC,
	token.STAR:  PRODUCT_PREC,
	token.SLASH: PRODUCT_PREC,
	token.POW:   POWER_PREC,
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken().Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken().Type]; ok {
		return prec
	}
	return LOWEST
}

// parseExpression is petal's Pratt loop: a prefix production followed
// by zero or more infix continuations, bounded by precedence. NOT_EQ
// (!=) has no ast.Dyadic of its own -- it desugars to a Negate wrapped
// around Equality, since petal's dyadic set (SPEC_FULL.md section 4.2)
// has no dedicated inequality verb.
func (p *Parser) parseExpression(precedence int) ast.Node {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}
	left = p.parsePostfix(left)
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		if !isInfixOperator(p.peekToken().Type) {
			break
		}
		p.nextToken()
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func isInfixOperator(t token.Type) bool {
	_, ok := precedences[t]
	return ok
}

func (p *Parser) parsePrefix() ast.Node {
	switch p.curToken().Type {
	case token.INT:
		return p.parseIntLit()
	case token.FLOAT:
		return p.parseFloatLit()
	case token.STRING:
		return p.parseStringLit()
	case token.TRUE, token.FALSE:
		return &ast.BoolLit{Base: ast.NewBase(p.curToken().Span), Value: p.curToken().Type == token.TRUE}
	case token.NULL:
		return &ast.NullLit{Base: ast.NewBase(p.curToken().Span)}
	case token.IDENT:
		return p.parseIdentOrCall()
	case token.BANG:
		return p.parsePrefixNegate()
	case token.MINUS:
		return p.parsePrefixNegativeNumber()
	case token.LPAREN:
		return p.parseGroupedOrLambda()
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.STRUCT:
		return p.parseStructLit()
	default:
		p.unsupportedTokenError()
		return nil
	}
}

func (p *Parser) parseIntLit() ast.Node {
	v, err := strconv.ParseInt(p.curToken().Literal, 10, 64)
	if err != nil {
		p.errorf(p.curToken().Span, "invalid integer literal %q", p.curToken().Literal)
		return nil
	}
	return &ast.IntLit{Base: ast.NewBase(p.curToken().Span), Value: v}
}

func (p *Parser) parseFloatLit() ast.Node {
	v, err := strconv.ParseFloat(p.curToken().Literal, 64)
	if err != nil {
		p.errorf(p.curToken().Span, "invalid float literal %q", p.curToken().Literal)
		return nil
	}
	return &ast.FloatLit{Base: ast.NewBase(p.curToken().Span), Value: v}
}

func (p *Parser) parseStringLit() ast.Node {
	return &ast.StringLit{Base: ast.NewBase(p.curToken().Span), Value: p.curToken().Literal}
}

// parseIdentOrCall handles a bare identifier, or (if immediately
// followed by '(') a top-level function call.
func (p *Parser) parseIdentOrCall() ast.Node {
	start := p.curToken()
	name := p.curToken().Lexeme
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args := p.parseArgList()
		if len(p.errors) > 0 {
			return nil
		}
		return &ast.FunctionCall{Base: ast.NewBase(p.span(start)), Name: name, Args: args}
	}
	return &ast.Ident{Base: ast.NewBase(start.Span), Name: name}
}

// parseArgList parses `(expr, expr, ...)`, assuming curToken is '('.
func (p *Parser) parseArgList() []ast.Node {
	var args []ast.Node
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return args
}

func (p *Parser) parsePrefixNegate() ast.Node {
	start := p.curToken()
	p.nextToken()
	expr := p.parseExpression(PREFIX_PREC)
	if expr == nil {
		return nil
	}
	return &ast.MondaicOp{Base: ast.NewBase(p.span(start)), Verb: ast.Negate, Expr: expr}
}

// parsePrefixNegativeNumber desugars unary minus into `0 - expr`: petal
// has no dedicated numeric-negation verb (ast.Mondaic carries only
// Negate, which is boolean-only per SPEC_FULL.md section 4.1).
func (p *Parser) parsePrefixNegativeNumber() ast.Node {
	start := p.curToken()
	p.nextToken()
	expr := p.parseExpression(PREFIX_PREC)
	if expr == nil {
		return nil
	}
	zero := &ast.IntLit{Base: ast.NewBase(start.Span), Value: 0}
	return &ast.DyadicOp{Base: ast.NewBase(p.span(start)), Verb: ast.Subtract, LHS: zero, RHS: expr}
}

func (p *Parser) parseInfix(left ast.Node) ast.Node {
	opTok := p.curToken()
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}

	verb, ok := dyadicVerbForToken(opTok.Type)
	if !ok {
		p.errorf(opTok.Span, "unsupported infix operator %v", opTok.Type)
		return nil
	}

	node := &ast.DyadicOp{Base: ast.NewBase(p.span(opTok)), Verb: verb, LHS: left, RHS: right}
	if opTok.Type == token.NOT_EQ {
		return &ast.MondaicOp{Base: ast.NewBase(p.span(opTok)), Verb: ast.Negate, Expr: node}
	}
	return node
}

func dyadicVerbForToken(t token.Type) (ast.Dyadic, bool) {
	switch t {
	case token.PLUS:
		return ast.Add, true
	case token.MINUS:
		return ast.Subtract, true
	case token.STAR:
		return ast.Multiply, true
	case token.SLASH:
		return ast.Divide, true
	case token.POW:
		return ast.Pow, true
	case token.EQ:
		return ast.Equality, true
	case token.NOT_EQ:
		return ast.Equality, true // wrapped in Negate by the caller
	case token.LT:
		return ast.LessThan, true
	case token.GT:
		return ast.GreaterThan, true
	case token.LTE:
		return ast.LessThanOrEqual, true
	case token.GTE:
		return ast.GreaterThanOrEqual, true
	case token.AND:
		return ast.And, true
	case token.OR:
		return ast.Or, true
	default:
		return 0, false
	}
}

// parseGroupedOrLambda disambiguates `(expr)` from a lambda literal
// `(params) => { body }` by scanning ahead, from the '(' at curToken,
// for the matching ')' and checking whether '=>' follows it -- trivial
// here since the whole source is already tokenized into p.tokens.
func (p *Parser) parseGroupedOrLambda() ast.Node {
	if p.looksLikeLambda() {
		return p.parseLambda()
	}
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

// looksLikeLambda scans forward from the '(' at curToken to its
// matching ')', tracking paren depth, then reports whether the token
// right after it is '=>'. Arbitrary lookahead costs nothing once the
// source is pre-tokenized, so there is no need for the teacher's
// streaming-lexer heuristics.
func (p *Parser) looksLikeLambda() bool {
	depth := 0
	for i := p.pos; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return p.peekTokenAt(i - p.pos + 1).Type == token.ARROW
			}
		case token.EOF:
			return false
		}
	}
	return false
}

// parseLambda parses `(params) => { body }`, assuming curToken is the
// opening '(' of the parameter list.
func (p *Parser) parseLambda() ast.Node {
	start := p.curToken()
	params := p.parseParamList()
	if len(p.errors) > 0 {
		return nil
	}
	if !p.expectPeek(token.ARROW) {
		return nil
	}
	body := p.parseBlock()
	if len(p.errors) > 0 {
		return nil
	}
	return &ast.Lambda{Base: ast.NewBase(p.span(start)), Params: params, Body: body}
}

// parseArrayLit parses `[expr, expr, ...]`, assuming curToken is '['.
func (p *Parser) parseArrayLit() ast.Node {
	start := p.curToken()
	var elems []ast.Node
	if p.peekTokenIs(token.RBRACKET) {
		p.nextToken()
		return &ast.Array{Base: ast.NewBase(p.span(start)), Elements: elems}
	}
	p.nextToken()
	elems = append(elems, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		elems = append(elems, p.parseExpression(LOWEST))
	}
	if !p.expectPeek(token.RBRACKET) {
		return nil
	}
	return &ast.Array{Base: ast.NewBase(p.span(start)), Elements: elems}
}

// parseStructLit parses `struct Name { field: expr, field: expr, ... }`,
// assuming curToken is the `struct` keyword. The struct name is
// optional (anonymous struct literals are legal wherever a value is
// expected); fields are comma-separated `ident: expr` pairs.
func (p *Parser) parseStructLit() ast.Node {
	start := p.curToken()
	name := ""
	if p.peekTokenIs(token.IDENT) {
		p.nextToken()
		name = p.curToken().Lexeme
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	var fields []ast.StructField
	for !p.peekTokenIs(token.RBRACE) {
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		fieldName := p.curToken().Lexeme
		if !p.expectPeek(token.COLON) {
			return nil
		}
		p.nextToken()
		val := p.parseExpression(LOWEST)
		if val == nil {
			return nil
		}
		fields = append(fields, ast.StructField{Name: fieldName, Expr: val})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
		}
	}
	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return &ast.Struct{Base: ast.NewBase(p.span(start)), Name: name, Fields: fields}
}

// parsePostfix absorbs a `.`-chain of index/method steps following a
// primary expression into a single ast.Index, matching the object-as-
// scope walk the evaluator performs one step at a time (see
// internal/evaluator/index.go). Each step is a bare identifier lookup,
// a method call `.name(args)`, or a bracketed literal subscript
// `[0]`/`["key"]` -- SPEC_FULL.md section 4.4 only defines integer- and
// string-literal path steps, never an arbitrary computed expression, so
// `[expr]` accepts only an int or string literal.
func (p *Parser) parsePostfix(left ast.Node) ast.Node {
	if !p.peekTokenIs(token.DOT) && !p.peekTokenIs(token.LBRACKET) {
		return left
	}
	leftSpan := left.Span()
	var path []ast.Node
	for p.peekTokenIs(token.DOT) || p.peekTokenIs(token.LBRACKET) {
		if p.peekTokenIs(token.LBRACKET) {
			p.nextToken() // consume '['
			p.nextToken()
			switch p.curToken().Type {
			case token.INT:
				lit := p.parseIntLit()
				if lit == nil {
					return nil
				}
				path = append(path, lit)
			case token.STRING:
				lit := p.parseStringLit()
				if lit == nil {
					return nil
				}
				path = append(path, lit)
			default:
				p.errorf(p.curToken().Span, "expected an integer or string literal subscript, got %v", p.curToken().Type)
				return nil
			}
			if !p.expectPeek(token.RBRACKET) {
				return nil
			}
			continue
		}
		p.nextToken() // consume '.'
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		stepName := p.curToken().Lexeme
		stepStart := p.curToken()
		if p.peekTokenIs(token.LPAREN) {
			p.nextToken()
			args := p.parseArgList()
			if len(p.errors) > 0 {
				return nil
			}
			path = append(path, &ast.FunctionCall{Base: ast.NewBase(p.span(stepStart)), Name: stepName, Args: args})
			continue
		}
		path = append(path, &ast.Ident{Base: ast.NewBase(stepStart.Span), Name: stepName})
	}
	fullSpan := token.Span{
		Path:   p.path,
		Start:  leftSpan.Start,
		End:    p.curToken().Span.End,
		Line:   leftSpan.Line,
		Column: leftSpan.Column,
	}
	return &ast.Index{Base: ast.NewBase(fullSpan), Container: left, Path: path}
}
