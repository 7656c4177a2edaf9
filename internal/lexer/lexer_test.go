package lexer

import (
	"testing"

	"github.com/petal-lang/petal/internal/token"
	"github.com/stretchr/testify/assert"
)

func collect(src string) []token.Token {
	l := New("test.pet", src)
	var toks []token.Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func types(toks []token.Token) []token.Type {
	out := make([]token.Type, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestLexesLetDeclaration(t *testing.T) {
	toks := collect(`let x = 2 + 3 * 4;`)
	assert.Equal(t, []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.PLUS, token.INT,
		token.STAR, token.INT, token.SEMICOLON, token.EOF,
	}, types(toks))
}

func TestLexesMultiCharOperators(t *testing.T) {
	toks := collect(`== != <= >= && || ** =>`)
	assert.Equal(t, []token.Type{
		token.EQ, token.NOT_EQ, token.LTE, token.GTE, token.AND, token.OR, token.POW, token.ARROW, token.EOF,
	}, types(toks))
}

func TestLexesStringEscapes(t *testing.T) {
	toks := collect(`"foo\nbar"`)
	assert.Equal(t, token.STRING, toks[0].Type)
	assert.Equal(t, "foo\nbar", toks[0].Literal)
}

func TestLexesFloatVsInt(t *testing.T) {
	toks := collect(`3 3.5`)
	assert.Equal(t, token.INT, toks[0].Type)
	assert.Equal(t, token.FLOAT, toks[1].Type)
	assert.Equal(t, "3.5", toks[1].Literal)
}

func TestLexesKeywordsNotIdents(t *testing.T) {
	toks := collect(`if else while fn return true false null struct notakeyword`)
	want := []token.Type{
		token.IF, token.ELSE, token.WHILE, token.FN, token.RETURN,
		token.TRUE, token.FALSE, token.NULL, token.STRUCT, token.IDENT, token.EOF,
	}
	assert.Equal(t, want, types(toks))
}

func TestSkipsLineComments(t *testing.T) {
	toks := collect("let x = 1; // trailing comment\nx")
	want := []token.Type{
		token.LET, token.IDENT, token.ASSIGN, token.INT, token.SEMICOLON, token.IDENT, token.EOF,
	}
	assert.Equal(t, want, types(toks))
}

func TestTracksLineAndColumn(t *testing.T) {
	toks := collect("let x = 1;\nlet y = 2;")
	// the second `let` starts on line 2
	var secondLet token.Token
	count := 0
	for _, tk := range toks {
		if tk.Type == token.LET {
			count++
			if count == 2 {
				secondLet = tk
			}
		}
	}
	assert.Equal(t, 2, secondLet.Span.Line)
	assert.Equal(t, 1, secondLet.Span.Column)
}
