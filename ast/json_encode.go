package ast

// Encode side of the JSON wire format. Nodes encode to generic maps so
// interface-typed children can be tagged with their "kind" without a
// parallel set of marshal methods.

func withPos(pos Position, fields map[string]any) map[string]any {
	if !pos.IsZero() {
		fields["pos"] = pos
	}
	return fields
}

func encodeModule(m *Module) map[string]any {
	fields := map[string]any{
		"name":     m.Name,
		"exposing": encodeExposing(m.Exposing),
	}
	switch m.Kind {
	case PortModule:
		fields["kind"] = "port"
	case EffectModule:
		fields["kind"] = "effect"
	}
	if m.Comment != nil {
		fields["comment"] = encodeComment(m.Comment)
	}
	if len(m.Imports) > 0 {
		imports := make([]any, len(m.Imports))
		for i, imp := range m.Imports {
			imports[i] = encodeImport(imp)
		}
		fields["imports"] = imports
	}
	if len(m.Decls) > 0 {
		decls := make([]any, len(m.Decls))
		for i, d := range m.Decls {
			decls[i] = encodeDecl(d)
		}
		fields["decls"] = decls
	}
	return withPos(m.Pos, fields)
}

func encodeExposing(e *Exposing) any {
	if e == nil {
		return nil
	}
	fields := map[string]any{}
	if e.All {
		fields["all"] = true
	}
	if len(e.Names) > 0 {
		names := make([]any, len(e.Names))
		for i, name := range e.Names {
			n := map[string]any{"name": name.Name}
			if name.OpenConstructors {
				n["openConstructors"] = true
			}
			names[i] = n
		}
		fields["names"] = names
	}
	return withPos(e.Pos, fields)
}

func encodeImport(imp *Import) map[string]any {
	fields := map[string]any{"module": imp.Module}
	if imp.Alias != "" {
		fields["alias"] = imp.Alias
	}
	if imp.Exposing != nil {
		fields["exposing"] = encodeExposing(imp.Exposing)
	}
	return withPos(imp.Pos, fields)
}

func encodeComment(c *Comment) []any {
	parts := make([]any, len(c.Parts))
	for i, part := range c.Parts {
		switch p := part.(type) {
		case *Markdown:
			parts[i] = map[string]any{"kind": "markdown", "text": p.Text}
		case *CodeBlock:
			parts[i] = map[string]any{"kind": "code", "text": p.Text}
		case *DocTags:
			parts[i] = map[string]any{"kind": "doc", "names": p.Names}
		}
	}
	return parts
}

func encodeDecl(d Decl) map[string]any {
	switch decl := d.(type) {
	case *Function:
		fields := map[string]any{
			"kind": "function",
			"name": decl.Name,
			"body": encodeExpr(decl.Body),
		}
		if decl.Comment != nil {
			fields["comment"] = encodeComment(decl.Comment)
		}
		if decl.Annotation != nil {
			fields["annotation"] = encodeType(decl.Annotation.Type)
		}
		if len(decl.Args) > 0 {
			fields["args"] = encodePatterns(decl.Args)
		}
		return withPos(decl.Pos, fields)

	case *TypeAlias:
		fields := map[string]any{
			"kind": "alias",
			"name": decl.Name,
			"type": encodeType(decl.Type),
		}
		if decl.Comment != nil {
			fields["comment"] = encodeComment(decl.Comment)
		}
		if len(decl.Params) > 0 {
			fields["params"] = decl.Params
		}
		return withPos(decl.Pos, fields)

	case *CustomType:
		ctors := make([]any, len(decl.Constructors))
		for i, ctor := range decl.Constructors {
			c := map[string]any{"name": ctor.Name}
			if len(ctor.Args) > 0 {
				c["args"] = encodeTypes(ctor.Args)
			}
			ctors[i] = c
		}
		fields := map[string]any{
			"kind":         "type",
			"name":         decl.Name,
			"constructors": ctors,
		}
		if decl.Comment != nil {
			fields["comment"] = encodeComment(decl.Comment)
		}
		if len(decl.Params) > 0 {
			fields["params"] = decl.Params
		}
		return withPos(decl.Pos, fields)

	case *Port:
		fields := map[string]any{
			"kind": "port",
			"name": decl.Name,
			"type": encodeType(decl.Type),
		}
		if decl.Comment != nil {
			fields["comment"] = encodeComment(decl.Comment)
		}
		return withPos(decl.Pos, fields)

	case *Infix:
		return withPos(decl.Pos, map[string]any{
			"kind":           "infix",
			"assoc":          decl.Assoc.String(),
			"precedence":     decl.Precedence,
			"operator":       decl.Operator,
			"implementation": decl.Implementation,
		})

	case *Destructuring:
		fields := map[string]any{
			"kind":    "destructuring",
			"pattern": encodePattern(decl.Pattern),
			"body":    encodeExpr(decl.Body),
		}
		if decl.Comment != nil {
			fields["comment"] = encodeComment(decl.Comment)
		}
		return withPos(decl.Pos, fields)
	}
	return nil
}

func encodeTypes(types []Type) []any {
	out := make([]any, len(types))
	for i, t := range types {
		out[i] = encodeType(t)
	}
	return out
}

func encodeType(t Type) map[string]any {
	switch ty := t.(type) {
	case *NamedType:
		fields := map[string]any{"kind": "named", "name": ty.Name}
		if ty.Module != "" {
			fields["module"] = ty.Module
		}
		if len(ty.Args) > 0 {
			fields["args"] = encodeTypes(ty.Args)
		}
		return withPos(ty.Pos, fields)

	case *VarType:
		return withPos(ty.Pos, map[string]any{"kind": "var", "name": ty.Name})

	case *FuncType:
		return withPos(ty.Pos, map[string]any{
			"kind":   "func",
			"arg":    encodeType(ty.Arg),
			"return": encodeType(ty.Return),
		})

	case *TupleType:
		fields := map[string]any{"kind": "tuple"}
		if len(ty.Elems) > 0 {
			fields["elems"] = encodeTypes(ty.Elems)
		}
		return withPos(ty.Pos, fields)

	case *RecordType:
		typeFields := make([]any, len(ty.Fields))
		for i, f := range ty.Fields {
			typeFields[i] = map[string]any{"name": f.Name, "type": encodeType(f.Type)}
		}
		fields := map[string]any{"kind": "record", "fields": typeFields}
		if ty.Base != "" {
			fields["base"] = ty.Base
		}
		return withPos(ty.Pos, fields)
	}
	return nil
}

func encodePatterns(patterns []Pattern) []any {
	out := make([]any, len(patterns))
	for i, p := range patterns {
		out[i] = encodePattern(p)
	}
	return out
}

func encodePattern(p Pattern) map[string]any {
	switch pat := p.(type) {
	case *Anything:
		return withPos(pat.Pos, map[string]any{"kind": "anything"})

	case *VarPattern:
		return withPos(pat.Pos, map[string]any{"kind": "var", "name": pat.Name})

	case *LiteralPattern:
		return withPos(pat.Pos, map[string]any{"kind": "literal", "literal": encodeExpr(pat.Literal)})

	case *TuplePattern:
		fields := map[string]any{"kind": "tuple"}
		if len(pat.Elems) > 0 {
			fields["elems"] = encodePatterns(pat.Elems)
		}
		return withPos(pat.Pos, fields)

	case *ListPattern:
		fields := map[string]any{"kind": "list"}
		if len(pat.Elems) > 0 {
			fields["elems"] = encodePatterns(pat.Elems)
		}
		return withPos(pat.Pos, fields)

	case *ConsPattern:
		return withPos(pat.Pos, map[string]any{
			"kind": "cons",
			"head": encodePattern(pat.Head),
			"tail": encodePattern(pat.Tail),
		})

	case *RecordPattern:
		return withPos(pat.Pos, map[string]any{"kind": "record", "fields": pat.Fields})

	case *AliasPattern:
		return withPos(pat.Pos, map[string]any{
			"kind":    "alias",
			"pattern": encodePattern(pat.Pattern),
			"name":    pat.Name,
		})

	case *CtorPattern:
		fields := map[string]any{"kind": "ctor", "name": pat.Name}
		if pat.Module != "" {
			fields["module"] = pat.Module
		}
		if len(pat.Args) > 0 {
			fields["args"] = encodePatterns(pat.Args)
		}
		return withPos(pat.Pos, fields)

	case *ParensPattern:
		return withPos(pat.Pos, map[string]any{"kind": "parens", "pattern": encodePattern(pat.Pattern)})
	}
	return nil
}

func encodeExprs(exprs []Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = encodeExpr(e)
	}
	return out
}

func encodeFieldList(fields []Field) []any {
	out := make([]any, len(fields))
	for i, f := range fields {
		out[i] = map[string]any{"name": f.Name, "value": encodeExpr(f.Value)}
	}
	return out
}

func encodeExpr(e Expr) map[string]any {
	switch expr := e.(type) {
	case *StringLit:
		fields := map[string]any{"kind": "string", "text": expr.Text}
		if expr.Multiline {
			fields["multiline"] = true
		}
		return withPos(expr.Pos, fields)

	case *CharLit:
		return withPos(expr.Pos, map[string]any{"kind": "char", "text": expr.Text})

	case *NumberLit:
		return withPos(expr.Pos, map[string]any{"kind": "number", "text": expr.Text})

	case *VarRef:
		fields := map[string]any{"kind": "var", "name": expr.Name}
		if expr.Module != "" {
			fields["module"] = expr.Module
		}
		return withPos(expr.Pos, fields)

	case *Apply:
		return withPos(expr.Pos, map[string]any{
			"kind": "apply",
			"fn":   encodeExpr(expr.Fn),
			"args": encodeExprs(expr.Args),
		})

	case *BinOp:
		return withPos(expr.Pos, map[string]any{
			"kind":  "binop",
			"op":    expr.Op,
			"left":  encodeExpr(expr.Left),
			"right": encodeExpr(expr.Right),
		})

	case *Negate:
		return withPos(expr.Pos, map[string]any{"kind": "negate", "expr": encodeExpr(expr.Expr)})

	case *TupleExpr:
		fields := map[string]any{"kind": "tuple"}
		if len(expr.Elems) > 0 {
			fields["elems"] = encodeExprs(expr.Elems)
		}
		return withPos(expr.Pos, fields)

	case *ListExpr:
		fields := map[string]any{"kind": "list"}
		if len(expr.Elems) > 0 {
			fields["elems"] = encodeExprs(expr.Elems)
		}
		return withPos(expr.Pos, fields)

	case *RecordExpr:
		fields := map[string]any{"kind": "record"}
		if len(expr.Fields) > 0 {
			fields["fields"] = encodeFieldList(expr.Fields)
		}
		return withPos(expr.Pos, fields)

	case *RecordUpdate:
		return withPos(expr.Pos, map[string]any{
			"kind":   "update",
			"base":   expr.Base,
			"fields": encodeFieldList(expr.Fields),
		})

	case *FieldAccess:
		return withPos(expr.Pos, map[string]any{
			"kind":   "access",
			"record": encodeExpr(expr.Record),
			"field":  expr.Field,
		})

	case *AccessorFunc:
		return withPos(expr.Pos, map[string]any{"kind": "accessor", "field": expr.Field})

	case *Lambda:
		return withPos(expr.Pos, map[string]any{
			"kind": "lambda",
			"args": encodePatterns(expr.Args),
			"body": encodeExpr(expr.Body),
		})

	case *Let:
		defs := make([]any, len(expr.Defs))
		for i, def := range expr.Defs {
			d := map[string]any{"body": encodeExpr(def.Body)}
			if def.Name != "" {
				d["name"] = def.Name
			}
			if def.Annotation != nil {
				d["annotation"] = encodeType(def.Annotation.Type)
			}
			if len(def.Args) > 0 {
				d["args"] = encodePatterns(def.Args)
			}
			if def.Pattern != nil {
				d["pattern"] = encodePattern(def.Pattern)
			}
			defs[i] = d
		}
		return withPos(expr.Pos, map[string]any{
			"kind": "let",
			"defs": defs,
			"body": encodeExpr(expr.Body),
		})

	case *If:
		return withPos(expr.Pos, map[string]any{
			"kind": "if",
			"cond": encodeExpr(expr.Cond),
			"then": encodeExpr(expr.Then),
			"else": encodeExpr(expr.Else),
		})

	case *Case:
		branches := make([]any, len(expr.Branches))
		for i, b := range expr.Branches {
			branches[i] = map[string]any{
				"pattern": encodePattern(b.Pattern),
				"body":    encodeExpr(b.Body),
			}
		}
		return withPos(expr.Pos, map[string]any{
			"kind":     "case",
			"subject":  encodeExpr(expr.Subject),
			"branches": branches,
		})

	case *Parens:
		return withPos(expr.Pos, map[string]any{"kind": "parens", "expr": encodeExpr(expr.Expr)})

	case *EmbeddedCode:
		return withPos(expr.Pos, map[string]any{"kind": "embedded", "text": expr.Text})
	}
	return nil
}
