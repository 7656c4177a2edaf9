// Package parser turns a token stream from internal/lexer into the AST
// defined in internal/ast.
//
// Grounded on funvibe-funxy/internal/parser/expressions_core.go for the
// cur/peek token pair, the Pratt prefix/infix dispatch tables, and the
// diagnostics-on-error idiom -- scoped down to petal's much smaller
// grammar (no pipeline operators, no format-string interpolation, no
// newline-significant statement termination; petal statements end in an
// explicit semicolon). Unlike the teacher, which streams tokens lazily
// off the lexer, this parser tokenizes the whole (small) source up
// front into a slice and walks it by index -- petal programs are short
// scripts/REPL lines, so the simpler, fully-lookahead-capable approach
// costs nothing and avoids the teacher's bespoke Peek(n) stream type.
package parser

import (
	"github.com/petal-lang/petal/internal/ast"
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/lexer"
	"github.com/petal-lang/petal/internal/token"
)

// Parser consumes a pre-tokenized source and builds an AST.
type Parser struct {
	path   string
	tokens []token.Token
	pos    int

	errors []error
}

// New builds a Parser over src, attributing diagnostics to path.
func New(path, src string) *Parser {
	l := lexer.New(path, src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return &Parser{path: path, tokens: toks}
}

func (p *Parser) curToken() token.Token { return p.tokens[p.pos] }

func (p *Parser) peekToken() token.Token {
	return p.peekTokenAt(1)
}

// peekTokenAt returns the token n positions ahead of the current one,
// clamped to EOF -- the lookahead the teacher's Peek(n) stream method
// provides, here just a slice index since the whole program is already
// tokenized.
func (p *Parser) peekTokenAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) nextToken() {
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken().Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken().Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.errorf(p.peekToken().Span, "expected next token to be %v, got %v instead", t, p.peekToken().Type)
	return false
}

func (p *Parser) errorf(span token.Span, format string, args ...any) {
	p.errors = append(p.errors, diagnostics.New("parsing", span, format, args...))
}

// Parse runs the full program grammar: a sequence of statements until
// EOF. It returns the first error encountered; partial results are not
// returned on error, matching how the evaluator treats a (value, error)
// pair -- a program either parses whole or not at all.
func Parse(path, src string) (*ast.Program, error) {
	p := New(path, src)
	var statements []ast.Node
	for !p.curTokenIs(token.EOF) {
		stmt := p.parseStatement()
		if len(p.errors) > 0 {
			return nil, p.errors[0]
		}
		if stmt != nil {
			statements = append(statements, stmt)
		}
		p.nextToken()
	}
	return &ast.Program{Tree: statements, Path: path, Src: src}, nil
}

func (p *Parser) span(start token.Token) token.Span {
	return token.Span{
		Path:   p.path,
		Start:  start.Span.Start,
		End:    p.curToken().Span.End,
		Line:   start.Span.Line,
		Column: start.Span.Column,
	}
}

func (p *Parser) unsupportedTokenError() {
	p.errorf(p.curToken().Span, "unexpected token %v", p.curToken().Type)
}
