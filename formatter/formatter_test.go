package formatter

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
)

func TestNew(t *testing.T) {
	t.Run("DefaultOptions", func(t *testing.T) {
		f := New()
		assert.Equal(t, DefaultWidth, f.Width)
		assert.Equal(t, DefaultIndentation, f.Indentation)
	})

	t.Run("WithWidth", func(t *testing.T) {
		f := New(WithWidth(100))
		assert.Equal(t, 100, f.Width)
	})

	t.Run("WithIndentation", func(t *testing.T) {
		f := New(WithIndentation(2))
		assert.Equal(t, 2, f.Indentation)
	})

	t.Run("WithFixities", func(t *testing.T) {
		fixities := ast.Fixities{"+": {Precedence: 6, Assoc: ast.AssocLeft}}
		f := New(WithFixities(fixities))

		fx, ok := f.Fixities.Lookup("+")
		assert.True(t, ok)
		assert.Equal(t, 6, fx.Precedence)
	})
}

func TestFormat(t *testing.T) {
	t.Run("FullModule", func(t *testing.T) {
		mod := ast.NewModule("App.View",
			ast.WithExposing(ast.Expose(
				ast.Exposed("view"),
				ast.Exposed("update"),
				ast.ExposedType("Msg"),
			)),
			ast.WithComment(ast.NewComment(
				ast.Prose("Render the application."),
				ast.Tags("Msg", "view"),
			)),
			ast.WithImports(
				ast.NewImport("Html", ast.WithAlias("H")),
				ast.NewImport("Browser"),
			),
			ast.WithDecls(
				ast.NewFunction("view", []ast.Pattern{ast.PVar("model")},
					ast.Call(ast.QualifiedVar("H", "text"), ast.Str("hi")),
					ast.WithAnnotation(ast.TFunc(ast.TNamed("Model"), ast.TNamed("Html", ast.TVar("msg")))),
				),
			),
		)

		var buf bytes.Buffer
		diags, err := New().Format(context.Background(), mod, &buf)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(diags))

		expected := `module App.View exposing ( Msg(..), view, update )

{-| Render the application.

@doc Msg, view
-}

import Browser
import Html as H


view : Model -> Html msg
view model = H.text "hi"
`
		assert.Equal(t, expected, buf.String())
	})

	t.Run("WildcardExposingBypassesOrdering", func(t *testing.T) {
		mod := ast.NewModule("App",
			ast.WithExposing(ast.ExposeAll()),
			ast.WithComment(ast.NewComment(ast.Tags("doesNotExist"))),
			ast.WithDecls(
				ast.NewFunction("main", nil, ast.Var("page")),
			),
		)

		var buf bytes.Buffer
		diags, err := New().Format(context.Background(), mod, &buf)
		assert.NoError(t, err)
		assert.Equal(t, 0, len(diags))
		assert.True(t, strings.HasPrefix(buf.String(), "module App exposing (..)\n"))
	})

	t.Run("UnmatchedTagDiagnostic", func(t *testing.T) {
		mod := ast.NewModule("App",
			ast.WithExposing(ast.Expose(ast.Exposed("view"))),
			ast.WithComment(ast.NewComment(ast.Tags("view", "missing"))),
			ast.WithDecls(ast.NewFunction("view", nil, ast.Var("page"))),
		)

		var buf bytes.Buffer
		diags, err := New().Format(context.Background(), mod, &buf)
		assert.NoError(t, err)
		assert.Equal(t, 1, len(diags))
		assert.Equal(t, UnknownDocTag, diags[0].Kind)
		assert.Equal(t, "missing", diags[0].Subject)
		assert.True(t, strings.Contains(buf.String(), "exposing ( view )"))
	})

	t.Run("PortModuleHeader", func(t *testing.T) {
		mod := ast.NewModule("Worker",
			ast.WithKind(ast.PortModule),
			ast.WithExposing(ast.ExposeAll()),
		)

		var buf bytes.Buffer
		_, err := New().Format(context.Background(), mod, &buf)
		assert.NoError(t, err)
		assert.Equal(t, "port module Worker exposing (..)\n", buf.String())
	})

	t.Run("WidthDiscipline", func(t *testing.T) {
		mod := ast.NewModule("App",
			ast.WithExposing(ast.Expose(
				ast.Exposed("alpha"),
				ast.Exposed("beta"),
				ast.Exposed("gamma"),
				ast.Exposed("delta"),
			)),
			ast.WithDecls(
				ast.NewFunction("alpha", nil,
					ast.Call(ast.Var("combine"), ast.Var("beta"), ast.Var("gamma"), ast.Var("delta")),
				),
			),
		)

		var buf bytes.Buffer
		_, err := New(WithWidth(30)).Format(context.Background(), mod, &buf)
		assert.NoError(t, err)

		for _, line := range strings.Split(buf.String(), "\n") {
			assert.True(t, runewidth.StringWidth(line) <= 30)
			assert.Equal(t, strings.TrimRight(line, " "), line)
		}
	})

	t.Run("CommentLinesWithinWidth", func(t *testing.T) {
		mod := ast.NewModule("App",
			ast.WithComment(ast.NewComment(
				ast.Prose("alpha beta gamma delta epsilon zeta eta theta iota kappa"),
			)),
			ast.WithDecls(ast.NewFunction("main", nil, ast.Var("page"))),
		)

		var buf bytes.Buffer
		_, err := New(WithWidth(30)).Format(context.Background(), mod, &buf)
		assert.NoError(t, err)

		// The first comment line carries the "{-| " opener and must
		// still fit the page width.
		for _, line := range strings.Split(buf.String(), "\n") {
			assert.True(t, runewidth.StringWidth(line) <= 30)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		mod := ast.NewModule("App",
			ast.WithExposing(ast.Expose(ast.Exposed("a"), ast.Exposed("b"))),
			ast.WithDecls(ast.NewFunction("a", nil, ast.Var("b"))),
		)

		var first, second bytes.Buffer
		_, err := New().Format(context.Background(), mod, &first)
		assert.NoError(t, err)
		_, err = New().Format(context.Background(), mod, &second)
		assert.NoError(t, err)
		assert.Equal(t, first.String(), second.String())
	})

	t.Run("EmbeddedNewlineFails", func(t *testing.T) {
		mod := ast.NewModule("App",
			ast.WithDecls(ast.NewFunction("bad", nil, ast.Str("a\nb"))),
		)

		var buf bytes.Buffer
		_, err := New().Format(context.Background(), mod, &buf)
		assert.Error(t, err)

		var invalid *pretty.InvalidTextError
		assert.True(t, errors.As(err, &invalid))
	})
}

func TestDiagnosticKindString(t *testing.T) {
	assert.Equal(t, "unknown-fixity", UnknownFixity.String())
	assert.Equal(t, "unknown-doc-tag", UnknownDocTag.String())
	assert.Equal(t, "malformed-comment", MalformedComment.String())
}

func BenchmarkFormat(b *testing.B) {
	decls := make([]ast.Decl, 0, 50)
	for i := 0; i < 50; i++ {
		decls = append(decls, ast.NewFunction("item", []ast.Pattern{ast.PVar("x")},
			ast.Op("+", ast.Var("x"), ast.Num("1")),
			ast.WithAnnotation(ast.TFunc(ast.TNamed("Int"), ast.TNamed("Int"))),
		))
	}
	mod := ast.NewModule("Bench", ast.WithDecls(decls...))
	f := New(WithFixities(ast.Fixities{"+": {Precedence: 6, Assoc: ast.AssocLeft}}))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if _, err := f.Format(context.Background(), mod, &buf); err != nil {
			b.Fatal(err)
		}
	}
}
