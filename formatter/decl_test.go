package formatter

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
)

func TestDecl(t *testing.T) {
	tests := []struct {
		name     string
		decl     ast.Decl
		expected string
	}{
		{
			name: "FunctionWithSignature",
			decl: ast.NewFunction("incr", []ast.Pattern{ast.PVar("n")},
				ast.Op("+", ast.Var("n"), ast.Num("1")),
				ast.WithAnnotation(ast.TFunc(ast.TNamed("Int"), ast.TNamed("Int"))),
			),
			expected: "incr : Int -> Int\nincr n = n + 1",
		},
		{
			name: "FunctionWithDocComment",
			decl: ast.NewFunction("incr", []ast.Pattern{ast.PVar("n")},
				ast.Op("+", ast.Var("n"), ast.Num("1")),
				ast.WithDocComment(ast.NewComment(ast.Prose("Add one."))),
			),
			expected: "{-| Add one.\n-}\nincr n = n + 1",
		},
		{
			name: "CustomType",
			decl: &ast.CustomType{
				Name:   "Msg",
				Params: []string{"a"},
				Constructors: []ast.Constructor{
					{Name: "Increment"},
					{Name: "Decrement"},
					{Name: "Set", Args: []ast.Type{ast.TVar("a")}},
				},
			},
			expected: "type Msg a\n    = Increment\n    | Decrement\n    | Set a",
		},
		{
			name: "TypeAlias",
			decl: &ast.TypeAlias{
				Name: "Model",
				Type: &ast.RecordType{Fields: []ast.TypeField{
					{Name: "count", Type: ast.TNamed("Int")},
					{Name: "name", Type: ast.TNamed("String")},
				}},
			},
			expected: "type alias Model =\n    { count : Int, name : String }",
		},
		{
			name: "Port",
			decl: &ast.Port{
				Name: "send",
				Type: ast.TFunc(ast.TNamed("String"), ast.TNamed("Cmd", ast.TVar("msg"))),
			},
			expected: "port send : String -> Cmd msg",
		},
		{
			name: "Infix",
			decl: &ast.Infix{
				Assoc:          ast.AssocLeft,
				Precedence:     6,
				Operator:       "+",
				Implementation: "add",
			},
			expected: "infix left 6 (+) = add",
		},
		{
			name: "Destructuring",
			decl: &ast.Destructuring{
				Pattern: &ast.TuplePattern{Elems: []ast.Pattern{ast.PVar("a"), ast.PVar("b")}},
				Body:    ast.Var("pair"),
			},
			expected: "( a, b ) = pair",
		},
	}

	fixities := ast.Fixities{"+": {Precedence: 6, Assoc: ast.AssocLeft}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newConverter(New(WithFixities(fixities)))
			assert.Equal(t, test.expected, mustRender(t, c.decl(test.decl)))
		})
	}
}

func TestTypeDoc(t *testing.T) {
	tests := []struct {
		name     string
		typ      ast.Type
		expected string
	}{
		{
			name:     "Named",
			typ:      ast.TNamed("Int"),
			expected: "Int",
		},
		{
			name:     "Qualified",
			typ:      &ast.NamedType{Module: "Json.Decode", Name: "Decoder", Args: []ast.Type{ast.TVar("a")}},
			expected: "Json.Decode.Decoder a",
		},
		{
			name:     "AppliedArgParenthesized",
			typ:      ast.TNamed("List", ast.TNamed("Maybe", ast.TNamed("Int"))),
			expected: "List (Maybe Int)",
		},
		{
			name:     "ArrowChain",
			typ:      ast.TFunc(ast.TNamed("Int"), ast.TNamed("String"), ast.TNamed("Bool")),
			expected: "Int -> String -> Bool",
		},
		{
			name:     "FunctionArgParenthesized",
			typ:      ast.TFunc(ast.TFunc(ast.TVar("a"), ast.TVar("b")), ast.TVar("b")),
			expected: "(a -> b) -> b",
		},
		{
			name:     "Unit",
			typ:      &ast.TupleType{},
			expected: "()",
		},
		{
			name:     "Tuple",
			typ:      &ast.TupleType{Elems: []ast.Type{ast.TNamed("Int"), ast.TNamed("String")}},
			expected: "( Int, String )",
		},
		{
			name:     "EmptyRecord",
			typ:      &ast.RecordType{},
			expected: "{}",
		},
		{
			name: "ExtensibleRecord",
			typ: &ast.RecordType{Base: "r", Fields: []ast.TypeField{
				{Name: "x", Type: ast.TNamed("Int")},
			}},
			expected: "{ r | x : Int }",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := newConverter(New())
			assert.Equal(t, test.expected, mustRender(t, c.typeDoc(test.typ, false)))
		})
	}
}

func TestAnnotationBreaking(t *testing.T) {
	a := &ast.Annotation{
		Name: "fn",
		Type: ast.TFunc(ast.TNamed("Model"), ast.TNamed("Msg"), ast.TNamed("Html", ast.TVar("msg"))),
	}

	c := newConverter(New())
	result, err := pretty.Render(c.annotation(a), 20)
	assert.NoError(t, err)
	assert.Equal(t, "fn :\n    Model\n    -> Msg\n    -> Html msg", result)
}
