package ast

import (
	"encoding/json"
	"fmt"
)

// JSON encoding of syntax trees. Every node of a sealed category is
// wrapped in an envelope carrying a "kind" tag so the closed variant sets
// survive serialization. This is the wire format the external parser uses
// to hand trees to elmfmt; EncodeModule produces it for tools going the
// other way.

// UnknownKindError reports a "kind" tag with no matching node variant.
type UnknownKindError struct {
	Category string
	Kind     string
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("ast: unknown %s kind %q", e.Category, e.Kind)
}

// EncodeModule encodes a module as indented JSON.
func EncodeModule(m *Module) ([]byte, error) {
	return json.MarshalIndent(encodeModule(m), "", "  ")
}

// DecodeModule decodes a module from JSON produced by the external
// parser or by EncodeModule.
func DecodeModule(data []byte) (*Module, error) {
	var w wireModule
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("ast: decoding module: %w", err)
	}
	return decodeModule(&w)
}

// DecodeFixities decodes an operator fixity table from JSON of the form
// {"+": {"precedence": 6, "assoc": "left"}, ...}.
func DecodeFixities(data []byte) (Fixities, error) {
	var raw map[string]struct {
		Precedence int    `json:"precedence"`
		Assoc      string `json:"assoc"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("ast: decoding fixities: %w", err)
	}

	fixities := make(Fixities, len(raw))
	for op, entry := range raw {
		assoc, err := decodeAssoc(entry.Assoc)
		if err != nil {
			return nil, err
		}
		fixities[op] = Fixity{Precedence: entry.Precedence, Assoc: assoc}
	}
	return fixities, nil
}

func decodeAssoc(s string) (Associativity, error) {
	switch s {
	case "left", "":
		return AssocLeft, nil
	case "right":
		return AssocRight, nil
	case "non":
		return AssocNone, nil
	}
	return 0, &UnknownKindError{Category: "associativity", Kind: s}
}

//
// Wire structs (decode side). Child nodes of sealed categories arrive as
// raw messages and are dispatched on their "kind" tag.
//

type wireModule struct {
	Pos      Position          `json:"pos,omitzero"`
	Kind     string            `json:"kind,omitempty"`
	Name     string            `json:"name"`
	Exposing *wireExposing     `json:"exposing"`
	Comment  []json.RawMessage `json:"comment,omitempty"`
	Imports  []wireImport      `json:"imports,omitempty"`
	Decls    []json.RawMessage `json:"decls,omitempty"`
}

type wireExposing struct {
	Pos   Position          `json:"pos,omitzero"`
	All   bool              `json:"all,omitempty"`
	Names []wireExposedName `json:"names,omitempty"`
}

type wireExposedName struct {
	Name             string `json:"name"`
	OpenConstructors bool   `json:"openConstructors,omitempty"`
}

type wireImport struct {
	Pos      Position      `json:"pos,omitzero"`
	Module   string        `json:"module"`
	Alias    string        `json:"alias,omitempty"`
	Exposing *wireExposing `json:"exposing,omitempty"`
}

type envelope struct {
	Kind string `json:"kind"`
}

func decodeModule(w *wireModule) (*Module, error) {
	kind := PlainModule
	switch w.Kind {
	case "", "module":
	case "port":
		kind = PortModule
	case "effect":
		kind = EffectModule
	default:
		return nil, &UnknownKindError{Category: "module", Kind: w.Kind}
	}

	m := &Module{
		Pos:      w.Pos,
		Kind:     kind,
		Name:     w.Name,
		Exposing: decodeExposing(w.Exposing),
	}

	if len(w.Comment) > 0 {
		comment, err := decodeComment(w.Comment)
		if err != nil {
			return nil, err
		}
		m.Comment = comment
	}

	for _, wi := range w.Imports {
		m.Imports = append(m.Imports, &Import{
			Pos:      wi.Pos,
			Module:   wi.Module,
			Alias:    wi.Alias,
			Exposing: decodeExposing(wi.Exposing),
		})
	}

	for _, raw := range w.Decls {
		decl, err := decodeDecl(raw)
		if err != nil {
			return nil, err
		}
		m.Decls = append(m.Decls, decl)
	}

	return m, nil
}

func decodeExposing(w *wireExposing) *Exposing {
	if w == nil {
		return nil
	}
	e := &Exposing{Pos: w.Pos, All: w.All}
	for _, name := range w.Names {
		e.Names = append(e.Names, ExposedName{
			Name:             name.Name,
			OpenConstructors: name.OpenConstructors,
		})
	}
	return e
}

func decodeComment(parts []json.RawMessage) (*Comment, error) {
	c := &Comment{}
	for _, raw := range parts {
		part, err := decodeCommentPart(raw)
		if err != nil {
			return nil, err
		}
		c.Parts = append(c.Parts, part)
	}
	return c, nil
}

func decodeCommentPart(raw json.RawMessage) (CommentPart, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decoding comment part: %w", err)
	}

	switch env.Kind {
	case "markdown":
		var w struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &Markdown{Text: w.Text}, nil

	case "code":
		var w struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &CodeBlock{Text: w.Text}, nil

	case "doc":
		var w struct {
			Names []string `json:"names"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &DocTags{Names: w.Names}, nil
	}

	return nil, &UnknownKindError{Category: "comment part", Kind: env.Kind}
}

func decodeDecl(raw json.RawMessage) (Decl, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decoding declaration: %w", err)
	}

	switch env.Kind {
	case "function":
		var w struct {
			Pos        Position          `json:"pos,omitzero"`
			Comment    []json.RawMessage `json:"comment,omitempty"`
			Name       string            `json:"name"`
			Annotation json.RawMessage   `json:"annotation,omitempty"`
			Args       []json.RawMessage `json:"args,omitempty"`
			Body       json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fn := &Function{Pos: w.Pos, Name: w.Name}
		if len(w.Comment) > 0 {
			comment, err := decodeComment(w.Comment)
			if err != nil {
				return nil, err
			}
			fn.Comment = comment
		}
		if len(w.Annotation) > 0 {
			t, err := decodeType(w.Annotation)
			if err != nil {
				return nil, err
			}
			fn.Annotation = &Annotation{Name: w.Name, Type: t}
		}
		args, err := decodePatterns(w.Args)
		if err != nil {
			return nil, err
		}
		fn.Args = args
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		fn.Body = body
		return fn, nil

	case "alias":
		var w struct {
			Pos     Position          `json:"pos,omitzero"`
			Comment []json.RawMessage `json:"comment,omitempty"`
			Name    string            `json:"name"`
			Params  []string          `json:"params,omitempty"`
			Type    json.RawMessage   `json:"type"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		alias := &TypeAlias{Pos: w.Pos, Name: w.Name, Params: w.Params}
		if len(w.Comment) > 0 {
			comment, err := decodeComment(w.Comment)
			if err != nil {
				return nil, err
			}
			alias.Comment = comment
		}
		t, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		alias.Type = t
		return alias, nil

	case "type":
		var w struct {
			Pos          Position          `json:"pos,omitzero"`
			Comment      []json.RawMessage `json:"comment,omitempty"`
			Name         string            `json:"name"`
			Params       []string          `json:"params,omitempty"`
			Constructors []struct {
				Name string            `json:"name"`
				Args []json.RawMessage `json:"args,omitempty"`
			} `json:"constructors"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		ct := &CustomType{Pos: w.Pos, Name: w.Name, Params: w.Params}
		if len(w.Comment) > 0 {
			comment, err := decodeComment(w.Comment)
			if err != nil {
				return nil, err
			}
			ct.Comment = comment
		}
		for _, wc := range w.Constructors {
			ctor := Constructor{Name: wc.Name}
			for _, rawArg := range wc.Args {
				t, err := decodeType(rawArg)
				if err != nil {
					return nil, err
				}
				ctor.Args = append(ctor.Args, t)
			}
			ct.Constructors = append(ct.Constructors, ctor)
		}
		return ct, nil

	case "port":
		var w struct {
			Pos     Position          `json:"pos,omitzero"`
			Comment []json.RawMessage `json:"comment,omitempty"`
			Name    string            `json:"name"`
			Type    json.RawMessage   `json:"type"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		port := &Port{Pos: w.Pos, Name: w.Name}
		if len(w.Comment) > 0 {
			comment, err := decodeComment(w.Comment)
			if err != nil {
				return nil, err
			}
			port.Comment = comment
		}
		t, err := decodeType(w.Type)
		if err != nil {
			return nil, err
		}
		port.Type = t
		return port, nil

	case "infix":
		var w struct {
			Pos            Position `json:"pos,omitzero"`
			Assoc          string   `json:"assoc"`
			Precedence     int      `json:"precedence"`
			Operator       string   `json:"operator"`
			Implementation string   `json:"implementation"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		assoc, err := decodeAssoc(w.Assoc)
		if err != nil {
			return nil, err
		}
		return &Infix{
			Pos:            w.Pos,
			Assoc:          assoc,
			Precedence:     w.Precedence,
			Operator:       w.Operator,
			Implementation: w.Implementation,
		}, nil

	case "destructuring":
		var w struct {
			Pos     Position          `json:"pos,omitzero"`
			Comment []json.RawMessage `json:"comment,omitempty"`
			Pattern json.RawMessage   `json:"pattern"`
			Body    json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		d := &Destructuring{Pos: w.Pos}
		if len(w.Comment) > 0 {
			comment, err := decodeComment(w.Comment)
			if err != nil {
				return nil, err
			}
			d.Comment = comment
		}
		pattern, err := decodePattern(w.Pattern)
		if err != nil {
			return nil, err
		}
		d.Pattern = pattern
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		d.Body = body
		return d, nil
	}

	return nil, &UnknownKindError{Category: "declaration", Kind: env.Kind}
}

func decodeTypes(raws []json.RawMessage) ([]Type, error) {
	var types []Type
	for _, raw := range raws {
		t, err := decodeType(raw)
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func decodeType(raw json.RawMessage) (Type, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decoding type: %w", err)
	}

	switch env.Kind {
	case "named":
		var w struct {
			Pos    Position          `json:"pos,omitzero"`
			Module string            `json:"module,omitempty"`
			Name   string            `json:"name"`
			Args   []json.RawMessage `json:"args,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		args, err := decodeTypes(w.Args)
		if err != nil {
			return nil, err
		}
		return &NamedType{Pos: w.Pos, Module: w.Module, Name: w.Name, Args: args}, nil

	case "var":
		var w struct {
			Pos  Position `json:"pos,omitzero"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &VarType{Pos: w.Pos, Name: w.Name}, nil

	case "func":
		var w struct {
			Pos    Position        `json:"pos,omitzero"`
			Arg    json.RawMessage `json:"arg"`
			Return json.RawMessage `json:"return"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		arg, err := decodeType(w.Arg)
		if err != nil {
			return nil, err
		}
		ret, err := decodeType(w.Return)
		if err != nil {
			return nil, err
		}
		return &FuncType{Pos: w.Pos, Arg: arg, Return: ret}, nil

	case "tuple":
		var w struct {
			Pos   Position          `json:"pos,omitzero"`
			Elems []json.RawMessage `json:"elems,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodeTypes(w.Elems)
		if err != nil {
			return nil, err
		}
		return &TupleType{Pos: w.Pos, Elems: elems}, nil

	case "record":
		var w struct {
			Pos    Position `json:"pos,omitzero"`
			Base   string   `json:"base,omitempty"`
			Fields []struct {
				Name string          `json:"name"`
				Type json.RawMessage `json:"type"`
			} `json:"fields,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		record := &RecordType{Pos: w.Pos, Base: w.Base}
		for _, wf := range w.Fields {
			t, err := decodeType(wf.Type)
			if err != nil {
				return nil, err
			}
			record.Fields = append(record.Fields, TypeField{Name: wf.Name, Type: t})
		}
		return record, nil
	}

	return nil, &UnknownKindError{Category: "type", Kind: env.Kind}
}

func decodePatterns(raws []json.RawMessage) ([]Pattern, error) {
	var patterns []Pattern
	for _, raw := range raws {
		p, err := decodePattern(raw)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

func decodePattern(raw json.RawMessage) (Pattern, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decoding pattern: %w", err)
	}

	switch env.Kind {
	case "anything":
		var w struct {
			Pos Position `json:"pos,omitzero"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &Anything{Pos: w.Pos}, nil

	case "var":
		var w struct {
			Pos  Position `json:"pos,omitzero"`
			Name string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &VarPattern{Pos: w.Pos, Name: w.Name}, nil

	case "literal":
		var w struct {
			Pos     Position        `json:"pos,omitzero"`
			Literal json.RawMessage `json:"literal"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		lit, err := decodeExpr(w.Literal)
		if err != nil {
			return nil, err
		}
		return &LiteralPattern{Pos: w.Pos, Literal: lit}, nil

	case "tuple":
		var w struct {
			Pos   Position          `json:"pos,omitzero"`
			Elems []json.RawMessage `json:"elems,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodePatterns(w.Elems)
		if err != nil {
			return nil, err
		}
		return &TuplePattern{Pos: w.Pos, Elems: elems}, nil

	case "list":
		var w struct {
			Pos   Position          `json:"pos,omitzero"`
			Elems []json.RawMessage `json:"elems,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodePatterns(w.Elems)
		if err != nil {
			return nil, err
		}
		return &ListPattern{Pos: w.Pos, Elems: elems}, nil

	case "cons":
		var w struct {
			Pos  Position        `json:"pos,omitzero"`
			Head json.RawMessage `json:"head"`
			Tail json.RawMessage `json:"tail"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		head, err := decodePattern(w.Head)
		if err != nil {
			return nil, err
		}
		tail, err := decodePattern(w.Tail)
		if err != nil {
			return nil, err
		}
		return &ConsPattern{Pos: w.Pos, Head: head, Tail: tail}, nil

	case "record":
		var w struct {
			Pos    Position `json:"pos,omitzero"`
			Fields []string `json:"fields"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &RecordPattern{Pos: w.Pos, Fields: w.Fields}, nil

	case "alias":
		var w struct {
			Pos     Position        `json:"pos,omitzero"`
			Pattern json.RawMessage `json:"pattern"`
			Name    string          `json:"name"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		inner, err := decodePattern(w.Pattern)
		if err != nil {
			return nil, err
		}
		return &AliasPattern{Pos: w.Pos, Pattern: inner, Name: w.Name}, nil

	case "ctor":
		var w struct {
			Pos    Position          `json:"pos,omitzero"`
			Module string            `json:"module,omitempty"`
			Name   string            `json:"name"`
			Args   []json.RawMessage `json:"args,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		args, err := decodePatterns(w.Args)
		if err != nil {
			return nil, err
		}
		return &CtorPattern{Pos: w.Pos, Module: w.Module, Name: w.Name, Args: args}, nil

	case "parens":
		var w struct {
			Pos     Position        `json:"pos,omitzero"`
			Pattern json.RawMessage `json:"pattern"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		inner, err := decodePattern(w.Pattern)
		if err != nil {
			return nil, err
		}
		return &ParensPattern{Pos: w.Pos, Pattern: inner}, nil
	}

	return nil, &UnknownKindError{Category: "pattern", Kind: env.Kind}
}

func decodeExprs(raws []json.RawMessage) ([]Expr, error) {
	var exprs []Expr
	for _, raw := range raws {
		e, err := decodeExpr(raw)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func decodeFields(raws []struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}) ([]Field, error) {
	var fields []Field
	for _, wf := range raws {
		value, err := decodeExpr(wf.Value)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Name: wf.Name, Value: value})
	}
	return fields, nil
}

type wireFields = []struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func decodeExpr(raw json.RawMessage) (Expr, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("ast: decoding expression: %w", err)
	}

	switch env.Kind {
	case "string":
		var w struct {
			Pos       Position `json:"pos,omitzero"`
			Text      string   `json:"text"`
			Multiline bool     `json:"multiline,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &StringLit{Pos: w.Pos, Text: w.Text, Multiline: w.Multiline}, nil

	case "char":
		var w struct {
			Pos  Position `json:"pos,omitzero"`
			Text string   `json:"text"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &CharLit{Pos: w.Pos, Text: w.Text}, nil

	case "number":
		var w struct {
			Pos  Position `json:"pos,omitzero"`
			Text string   `json:"text"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &NumberLit{Pos: w.Pos, Text: w.Text}, nil

	case "var":
		var w struct {
			Pos    Position `json:"pos,omitzero"`
			Module string   `json:"module,omitempty"`
			Name   string   `json:"name"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &VarRef{Pos: w.Pos, Module: w.Module, Name: w.Name}, nil

	case "apply":
		var w struct {
			Pos  Position          `json:"pos,omitzero"`
			Fn   json.RawMessage   `json:"fn"`
			Args []json.RawMessage `json:"args"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fn, err := decodeExpr(w.Fn)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(w.Args)
		if err != nil {
			return nil, err
		}
		return &Apply{Pos: w.Pos, Fn: fn, Args: args}, nil

	case "binop":
		var w struct {
			Pos   Position        `json:"pos,omitzero"`
			Op    string          `json:"op"`
			Left  json.RawMessage `json:"left"`
			Right json.RawMessage `json:"right"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		left, err := decodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := decodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &BinOp{Pos: w.Pos, Op: w.Op, Left: left, Right: right}, nil

	case "negate":
		var w struct {
			Pos  Position        `json:"pos,omitzero"`
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		inner, err := decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &Negate{Pos: w.Pos, Expr: inner}, nil

	case "tuple":
		var w struct {
			Pos   Position          `json:"pos,omitzero"`
			Elems []json.RawMessage `json:"elems,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodeExprs(w.Elems)
		if err != nil {
			return nil, err
		}
		return &TupleExpr{Pos: w.Pos, Elems: elems}, nil

	case "list":
		var w struct {
			Pos   Position          `json:"pos,omitzero"`
			Elems []json.RawMessage `json:"elems,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		elems, err := decodeExprs(w.Elems)
		if err != nil {
			return nil, err
		}
		return &ListExpr{Pos: w.Pos, Elems: elems}, nil

	case "record":
		var w struct {
			Pos    Position   `json:"pos,omitzero"`
			Fields wireFields `json:"fields,omitempty"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fields, err := decodeFields(w.Fields)
		if err != nil {
			return nil, err
		}
		return &RecordExpr{Pos: w.Pos, Fields: fields}, nil

	case "update":
		var w struct {
			Pos    Position   `json:"pos,omitzero"`
			Base   string     `json:"base"`
			Fields wireFields `json:"fields"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		fields, err := decodeFields(w.Fields)
		if err != nil {
			return nil, err
		}
		return &RecordUpdate{Pos: w.Pos, Base: w.Base, Fields: fields}, nil

	case "access":
		var w struct {
			Pos    Position        `json:"pos,omitzero"`
			Record json.RawMessage `json:"record"`
			Field  string          `json:"field"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		record, err := decodeExpr(w.Record)
		if err != nil {
			return nil, err
		}
		return &FieldAccess{Pos: w.Pos, Record: record, Field: w.Field}, nil

	case "accessor":
		var w struct {
			Pos   Position `json:"pos,omitzero"`
			Field string   `json:"field"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &AccessorFunc{Pos: w.Pos, Field: w.Field}, nil

	case "lambda":
		var w struct {
			Pos  Position          `json:"pos,omitzero"`
			Args []json.RawMessage `json:"args"`
			Body json.RawMessage   `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		args, err := decodePatterns(w.Args)
		if err != nil {
			return nil, err
		}
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		return &Lambda{Pos: w.Pos, Args: args, Body: body}, nil

	case "let":
		var w struct {
			Pos  Position `json:"pos,omitzero"`
			Defs []struct {
				Name       string            `json:"name,omitempty"`
				Annotation json.RawMessage   `json:"annotation,omitempty"`
				Args       []json.RawMessage `json:"args,omitempty"`
				Pattern    json.RawMessage   `json:"pattern,omitempty"`
				Body       json.RawMessage   `json:"body"`
			} `json:"defs"`
			Body json.RawMessage `json:"body"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		let := &Let{Pos: w.Pos}
		for _, wd := range w.Defs {
			def := LetDef{Name: wd.Name}
			if len(wd.Annotation) > 0 {
				t, err := decodeType(wd.Annotation)
				if err != nil {
					return nil, err
				}
				def.Annotation = &Annotation{Name: wd.Name, Type: t}
			}
			args, err := decodePatterns(wd.Args)
			if err != nil {
				return nil, err
			}
			def.Args = args
			if len(wd.Pattern) > 0 {
				pattern, err := decodePattern(wd.Pattern)
				if err != nil {
					return nil, err
				}
				def.Pattern = pattern
			}
			body, err := decodeExpr(wd.Body)
			if err != nil {
				return nil, err
			}
			def.Body = body
			let.Defs = append(let.Defs, def)
		}
		body, err := decodeExpr(w.Body)
		if err != nil {
			return nil, err
		}
		let.Body = body
		return let, nil

	case "if":
		var w struct {
			Pos  Position        `json:"pos,omitzero"`
			Cond json.RawMessage `json:"cond"`
			Then json.RawMessage `json:"then"`
			Else json.RawMessage `json:"else"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		cond, err := decodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeExpr(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeExpr(w.Else)
		if err != nil {
			return nil, err
		}
		return &If{Pos: w.Pos, Cond: cond, Then: then, Else: els}, nil

	case "case":
		var w struct {
			Pos      Position        `json:"pos,omitzero"`
			Subject  json.RawMessage `json:"subject"`
			Branches []struct {
				Pattern json.RawMessage `json:"pattern"`
				Body    json.RawMessage `json:"body"`
			} `json:"branches"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		subject, err := decodeExpr(w.Subject)
		if err != nil {
			return nil, err
		}
		c := &Case{Pos: w.Pos, Subject: subject}
		for _, wb := range w.Branches {
			pattern, err := decodePattern(wb.Pattern)
			if err != nil {
				return nil, err
			}
			body, err := decodeExpr(wb.Body)
			if err != nil {
				return nil, err
			}
			c.Branches = append(c.Branches, CaseBranch{Pattern: pattern, Body: body})
		}
		return c, nil

	case "parens":
		var w struct {
			Pos  Position        `json:"pos,omitzero"`
			Expr json.RawMessage `json:"expr"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		inner, err := decodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &Parens{Pos: w.Pos, Expr: inner}, nil

	case "embedded":
		var w struct {
			Pos  Position `json:"pos,omitzero"`
			Text string   `json:"text"`
		}
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, err
		}
		return &EmbeddedCode{Pos: w.Pos, Text: w.Text}, nil
	}

	return nil, &UnknownKindError{Category: "expression", Kind: env.Kind}
}
