package ast

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestDecodeModule(t *testing.T) {
	t.Run("Minimal", func(t *testing.T) {
		data := `{"name": "Main"}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, "Main", mod.Name)
		assert.Equal(t, PlainModule, mod.Kind)
		assert.Zero(t, mod.Exposing)
	})

	t.Run("PortModule", func(t *testing.T) {
		data := `{"kind": "port", "name": "Worker"}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, PortModule, mod.Kind)
	})

	t.Run("ExposingAll", func(t *testing.T) {
		data := `{"name": "Main", "exposing": {"all": true}}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.True(t, mod.Exposing.All)
	})

	t.Run("ExposingNames", func(t *testing.T) {
		data := `{
			"name": "Main",
			"exposing": {"names": [
				{"name": "view"},
				{"name": "Msg", "openConstructors": true}
			]}
		}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, 2, len(mod.Exposing.Names))
		assert.Equal(t, "view", mod.Exposing.Names[0].Name)
		assert.True(t, mod.Exposing.Names[1].OpenConstructors)
	})

	t.Run("Imports", func(t *testing.T) {
		data := `{
			"name": "Main",
			"imports": [
				{"module": "Html", "alias": "H"},
				{"module": "List", "exposing": {"names": [{"name": "map"}]}}
			]
		}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, 2, len(mod.Imports))
		assert.Equal(t, "H", mod.Imports[0].Alias)
		assert.Equal(t, "map", mod.Imports[1].Exposing.Names[0].Name)
	})

	t.Run("FunctionDecl", func(t *testing.T) {
		data := `{
			"name": "Main",
			"decls": [{
				"kind": "function",
				"name": "add",
				"args": [{"kind": "var", "name": "a"}, {"kind": "var", "name": "b"}],
				"body": {
					"kind": "binop", "op": "+",
					"left": {"kind": "var", "name": "a"},
					"right": {"kind": "var", "name": "b"}
				}
			}]
		}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, 1, len(mod.Decls))

		fn, ok := mod.Decls[0].(*Function)
		assert.True(t, ok)
		assert.Equal(t, "add", fn.Name)
		assert.Equal(t, 2, len(fn.Args))

		binop, ok := fn.Body.(*BinOp)
		assert.True(t, ok)
		assert.Equal(t, "+", binop.Op)
	})

	t.Run("DocComment", func(t *testing.T) {
		data := `{
			"name": "Main",
			"comment": [
				{"kind": "markdown", "text": "A module."},
				{"kind": "doc", "names": ["view", "update"]}
			]
		}`

		mod, err := DecodeModule([]byte(data))
		assert.NoError(t, err)
		assert.Equal(t, [][]string{{"view", "update"}}, mod.Comment.TagGroups())
	})

	t.Run("UnknownDeclKind", func(t *testing.T) {
		data := `{"name": "Main", "decls": [{"kind": "widget"}]}`

		_, err := DecodeModule([]byte(data))
		assert.Error(t, err)

		var unknown *UnknownKindError
		assert.True(t, errors.As(err, &unknown))
		assert.Equal(t, "widget", unknown.Kind)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := DecodeModule([]byte("{"))
		assert.Error(t, err)
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	mod := NewModule("App.View",
		WithExposing(Expose(Exposed("view"), ExposedType("Msg"))),
		WithComment(NewComment(Prose("Views."), Tags("view", "Msg"))),
		WithImports(NewImport("Html", WithAlias("H"))),
		WithDecls(
			NewFunction("view", []Pattern{PVar("model")},
				Call(QualifiedVar("H", "text"), Str("hi")),
				WithAnnotation(TFunc(TNamed("Model"), TNamed("Html", TVar("msg")))),
			),
		),
	)

	data, err := EncodeModule(mod)
	assert.NoError(t, err)

	decoded, err := DecodeModule(data)
	assert.NoError(t, err)
	assert.Equal(t, mod, decoded)
}

func TestEncodeExposedNameWireKeys(t *testing.T) {
	mod := NewModule("Main",
		WithExposing(Expose(Exposed("view"), ExposedType("Msg"))),
	)

	data, err := EncodeModule(mod)
	assert.NoError(t, err)

	var wire struct {
		Exposing struct {
			Names []map[string]any `json:"names"`
		} `json:"exposing"`
	}
	err = json.Unmarshal(data, &wire)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(wire.Exposing.Names))
	assert.Equal(t, "view", wire.Exposing.Names[0]["name"])
	assert.Zero(t, wire.Exposing.Names[0]["openConstructors"])
	assert.Equal(t, "Msg", wire.Exposing.Names[1]["name"])
	assert.Equal(t, true, wire.Exposing.Names[1]["openConstructors"])
}

func TestDecodeFixities(t *testing.T) {
	t.Run("Table", func(t *testing.T) {
		data := `{
			"+": {"precedence": 6, "assoc": "left"},
			"^": {"precedence": 8, "assoc": "right"},
			"==": {"precedence": 4, "assoc": "non"}
		}`

		fixities, err := DecodeFixities([]byte(data))
		assert.NoError(t, err)

		plus, ok := fixities.Lookup("+")
		assert.True(t, ok)
		assert.Equal(t, Fixity{Precedence: 6, Assoc: AssocLeft}, plus)

		pow, _ := fixities.Lookup("^")
		assert.Equal(t, AssocRight, pow.Assoc)

		eq, _ := fixities.Lookup("==")
		assert.Equal(t, AssocNone, eq.Assoc)

		_, ok = fixities.Lookup("|>")
		assert.False(t, ok)
	})

	t.Run("UnknownAssoc", func(t *testing.T) {
		data := `{"+": {"precedence": 6, "assoc": "sideways"}}`

		_, err := DecodeFixities([]byte(data))
		assert.Error(t, err)
	})

	t.Run("NilLookup", func(t *testing.T) {
		var fixities Fixities

		_, ok := fixities.Lookup("+")
		assert.False(t, ok)
	})
}

func TestTagGroups(t *testing.T) {
	t.Run("NilComment", func(t *testing.T) {
		var c *Comment
		assert.Zero(t, c.TagGroups())
	})

	t.Run("MultipleGroups", func(t *testing.T) {
		c := NewComment(
			Prose("Intro."),
			Tags("a", "b"),
			Prose("More."),
			Tags("c"),
		)
		assert.Equal(t, [][]string{{"a", "b"}, {"c"}}, c.TagGroups())
	})
}
