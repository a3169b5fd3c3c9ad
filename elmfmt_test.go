package elmfmt

import (
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/formatter"
)

func TestFormat(t *testing.T) {
	mod := ast.NewModule("Counter",
		ast.WithExposing(ast.Expose(ast.Exposed("increment"))),
		ast.WithDecls(
			ast.NewFunction("increment", []ast.Pattern{ast.PVar("n")},
				ast.Op("+", ast.Var("n"), ast.Num("1")),
			),
		),
	)

	fixities := ast.Fixities{"+": {Precedence: 6, Assoc: ast.AssocLeft}}

	source, diags, err := Format(mod, formatter.WithFixities(fixities))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(diags))

	expected := `module Counter exposing ( increment )


increment n = n + 1
`
	assert.Equal(t, expected, source)
}

func TestFormatIdempotent(t *testing.T) {
	mod := ast.NewModule("App",
		ast.WithExposing(ast.Expose(ast.Exposed("a"), ast.Exposed("b"))),
		ast.WithComment(ast.NewComment(ast.Prose("Stuff."), ast.Tags("b"))),
		ast.WithDecls(
			ast.NewFunction("b", nil, ast.Var("x")),
			ast.NewFunction("a", nil, ast.Var("y")),
		),
	)

	first, _, err := Format(mod)
	assert.NoError(t, err)
	second, _, err := Format(mod)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormatJSON(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		data := `{
			"name": "Main",
			"decls": [{"kind": "function", "name": "greeting", "body": {"kind": "string", "text": "hello"}}]
		}`

		source, diags, err := FormatJSON([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, 0, len(diags))
		assert.True(t, strings.Contains(source, `greeting = "hello"`))
	})

	t.Run("Malformed", func(t *testing.T) {
		_, _, err := FormatJSON([]byte("not json"))
		assert.Error(t, err)
	})
}
