package formatter

import (
	"strconv"
	"strings"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
)

// decl dispatches over all top-level declaration forms. The switch is
// total over the closed variant set; a new declaration form will not
// compile until it is handled here.
func (c *converter) decl(d ast.Decl) pretty.Doc {
	switch decl := d.(type) {
	case *ast.Function:
		return c.function(decl)
	case *ast.TypeAlias:
		return c.typeAlias(decl)
	case *ast.CustomType:
		return c.customType(decl)
	case *ast.Port:
		return c.port(decl)
	case *ast.Infix:
		return c.infix(decl)
	case *ast.Destructuring:
		return c.destructuring(decl)
	}
	return pretty.Empty
}

// function renders a value declaration as a hard-line-joined block:
// optional doc comment, optional type signature, then the
// implementation. The body is grouped under the `=` so short bodies
// stay on the signature line and long ones wrap to an indented block.
func (c *converter) function(fn *ast.Function) pretty.Doc {
	var parts []pretty.Doc

	if fn.Comment != nil {
		parts = append(parts, c.commentDoc(fn.Comment))
	}
	if fn.Annotation != nil {
		parts = append(parts, c.annotation(fn.Annotation))
	}

	head := []pretty.Doc{pretty.Text(fn.Name)}
	for _, arg := range fn.Args {
		head = append(head, c.patternArg(arg))
	}

	parts = append(parts, pretty.Concat(
		pretty.Words(head...),
		pretty.Text(" ="),
		c.body(fn.Body),
	))

	return pretty.Lines(parts...)
}

// body lays out an expression hanging off a `=` or `->`.
func (c *converter) body(e ast.Expr) pretty.Doc {
	return pretty.Group(pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, c.expr(e))))
}

// annotation renders a standalone type signature, breaking after the
// colon when the type does not fit.
func (c *converter) annotation(a *ast.Annotation) pretty.Doc {
	return pretty.Concat(
		pretty.Text(a.Name+" :"),
		pretty.Group(pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, c.typeDoc(a.Type, false)))),
	)
}

func (c *converter) typeAlias(alias *ast.TypeAlias) pretty.Doc {
	var parts []pretty.Doc

	if alias.Comment != nil {
		parts = append(parts, c.commentDoc(alias.Comment))
	}

	head := "type alias " + alias.Name
	if len(alias.Params) > 0 {
		head += " " + strings.Join(alias.Params, " ")
	}

	parts = append(parts, pretty.Concat(
		pretty.Text(head+" ="),
		pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, c.typeDoc(alias.Type, false))),
	))

	return pretty.Lines(parts...)
}

// customType renders a tagged union with the first constructor behind
// `=` and the rest behind `|`, one per line.
func (c *converter) customType(ct *ast.CustomType) pretty.Doc {
	var parts []pretty.Doc

	if ct.Comment != nil {
		parts = append(parts, c.commentDoc(ct.Comment))
	}

	head := "type " + ct.Name
	if len(ct.Params) > 0 {
		head += " " + strings.Join(ct.Params, " ")
	}

	ctors := make([]pretty.Doc, len(ct.Constructors))
	for i, ctor := range ct.Constructors {
		lead := "= "
		if i > 0 {
			lead = "| "
		}
		ctors[i] = pretty.Concat(pretty.Text(lead), c.constructor(ctor))
	}

	parts = append(parts, pretty.Concat(
		pretty.Text(head),
		pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, pretty.Lines(ctors...))),
	))

	return pretty.Lines(parts...)
}

func (c *converter) constructor(ctor ast.Constructor) pretty.Doc {
	docs := []pretty.Doc{pretty.Text(ctor.Name)}
	for _, arg := range ctor.Args {
		docs = append(docs, c.typeArg(arg))
	}
	return pretty.Words(docs...)
}

func (c *converter) port(p *ast.Port) pretty.Doc {
	var parts []pretty.Doc

	if p.Comment != nil {
		parts = append(parts, c.commentDoc(p.Comment))
	}

	parts = append(parts, pretty.Concat(
		pretty.Text("port "),
		c.annotation(&ast.Annotation{Name: p.Name, Type: p.Type}),
	))

	return pretty.Lines(parts...)
}

func (c *converter) infix(in *ast.Infix) pretty.Doc {
	return pretty.Text("infix " + in.Assoc.String() + " " +
		strconv.Itoa(in.Precedence) + " (" + in.Operator + ") = " + in.Implementation)
}

func (c *converter) destructuring(d *ast.Destructuring) pretty.Doc {
	var parts []pretty.Doc

	if d.Comment != nil {
		parts = append(parts, c.commentDoc(d.Comment))
	}

	parts = append(parts, pretty.Concat(
		c.pattern(d.Pattern),
		pretty.Text(" ="),
		c.body(d.Body),
	))

	return pretty.Lines(parts...)
}

// typeDoc renders a type expression. Function arrows are laid out as a
// chain that either stays on one line or breaks before every arrow.
// inArrow is set when the type is the argument side of an arrow, where
// a nested function type needs parentheses.
func (c *converter) typeDoc(t ast.Type, inArrow bool) pretty.Doc {
	switch ty := t.(type) {
	case *ast.NamedType:
		name := ty.Name
		if ty.Module != "" {
			name = ty.Module + "." + ty.Name
		}
		if len(ty.Args) == 0 {
			return pretty.Text(name)
		}
		docs := []pretty.Doc{pretty.Text(name)}
		for _, arg := range ty.Args {
			docs = append(docs, c.typeArg(arg))
		}
		return pretty.Words(docs...)

	case *ast.VarType:
		return pretty.Text(ty.Name)

	case *ast.FuncType:
		chain := c.arrowChain(ty)
		if inArrow {
			return parenthesize(chain)
		}
		return chain

	case *ast.TupleType:
		if len(ty.Elems) == 0 {
			return pretty.Text("()")
		}
		elems := make([]pretty.Doc, len(ty.Elems))
		for i, elem := range ty.Elems {
			elems[i] = c.typeDoc(elem, false)
		}
		return c.enclose("(", ")", elems)

	case *ast.RecordType:
		if len(ty.Fields) == 0 && ty.Base == "" {
			return pretty.Text("{}")
		}
		fields := make([]pretty.Doc, len(ty.Fields))
		for i, field := range ty.Fields {
			fields[i] = pretty.Concat(pretty.Text(field.Name+" : "), c.typeDoc(field.Type, false))
		}
		if ty.Base != "" {
			return pretty.Group(pretty.Concat(
				pretty.Text("{ "+ty.Base+" |"),
				pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine,
					pretty.Join(pretty.Concat(pretty.Text(","), pretty.SoftLine), fields...))),
				pretty.SoftLine,
				pretty.Text("}"),
			))
		}
		return c.enclose("{", "}", fields)
	}
	return pretty.Empty
}

// arrowChain flattens right-nested arrows into one group that breaks
// before every `->` when the chain does not fit.
func (c *converter) arrowChain(fn *ast.FuncType) pretty.Doc {
	out := c.typeDoc(fn.Arg, true)

	rest := fn.Return
	for {
		next, ok := rest.(*ast.FuncType)
		if !ok {
			break
		}
		out = pretty.Concat(out, pretty.SoftLine, pretty.Text("-> "), c.typeDoc(next.Arg, true))
		rest = next.Return
	}
	out = pretty.Concat(out, pretty.SoftLine, pretty.Text("-> "), c.typeDoc(rest, false))

	return pretty.Group(out)
}

// typeArg renders a type in argument position, where applied named
// types and arrows need parentheses.
func (c *converter) typeArg(t ast.Type) pretty.Doc {
	switch ty := t.(type) {
	case *ast.NamedType:
		if len(ty.Args) > 0 {
			return parenthesize(c.typeDoc(ty, false))
		}
	case *ast.FuncType:
		return parenthesize(c.typeDoc(ty, false))
	}
	return c.typeDoc(t, false)
}
