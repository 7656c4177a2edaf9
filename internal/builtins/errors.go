package builtins

import (
	"github.com/petal-lang/petal/internal/diagnostics"
	"github.com/petal-lang/petal/internal/token"
)

func argCountError(name string, min, max int) error {
	if max < 0 {
		return diagnostics.New("Invalid number of arguments", token.Span{},
			"%s expects at least %d argument(s)", name, min)
	}
	if min == max {
		return diagnostics.New("Invalid number of arguments", token.Span{},
			"%s expects exactly %d argument(s)", name, min)
	}
	return diagnostics.New("Invalid number of arguments", token.Span{},
		"%s expects between %d and %d argument(s)", name, min, max)
}

func invalidArgumentError(span token.Span, msg string) error {
	return diagnostics.New("Invalid argument", span, "%s", msg)
}

func typeError(span token.Span, msg string, args ...any) error {
	return diagnostics.New("checking types", span, msg, args...)
}
