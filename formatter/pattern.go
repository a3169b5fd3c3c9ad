package formatter

import (
	"strings"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
)

// pattern dispatches over all pattern forms. Patterns are rendered flat;
// they are short enough in practice that width fitting happens at the
// level of the construct containing them.
func (c *converter) pattern(p ast.Pattern) pretty.Doc {
	switch pat := p.(type) {
	case *ast.Anything:
		return pretty.Text("_")

	case *ast.VarPattern:
		return pretty.Text(pat.Name)

	case *ast.LiteralPattern:
		return c.expr(pat.Literal)

	case *ast.TuplePattern:
		if len(pat.Elems) == 0 {
			return pretty.Text("()")
		}
		return pretty.Concat(
			pretty.Text("( "),
			pretty.Join(pretty.Text(", "), c.patterns(pat.Elems)...),
			pretty.Text(" )"),
		)

	case *ast.ListPattern:
		if len(pat.Elems) == 0 {
			return pretty.Text("[]")
		}
		return pretty.Concat(
			pretty.Text("[ "),
			pretty.Join(pretty.Text(", "), c.patterns(pat.Elems)...),
			pretty.Text(" ]"),
		)

	case *ast.ConsPattern:
		head := c.pattern(pat.Head)
		if _, ok := pat.Head.(*ast.ConsPattern); ok {
			head = parenthesize(head)
		}
		return pretty.Concat(head, pretty.Text(" :: "), c.pattern(pat.Tail))

	case *ast.RecordPattern:
		if len(pat.Fields) == 0 {
			return pretty.Text("{}")
		}
		return pretty.Text("{ " + strings.Join(pat.Fields, ", ") + " }")

	case *ast.AliasPattern:
		return pretty.Concat(c.patternArg(pat.Pattern), pretty.Text(" as "+pat.Name))

	case *ast.CtorPattern:
		name := pat.Name
		if pat.Module != "" {
			name = pat.Module + "." + pat.Name
		}
		if len(pat.Args) == 0 {
			return pretty.Text(name)
		}
		docs := []pretty.Doc{pretty.Text(name)}
		for _, arg := range pat.Args {
			docs = append(docs, c.patternArg(arg))
		}
		return pretty.Words(docs...)

	case *ast.ParensPattern:
		return parenthesize(c.pattern(pat.Pattern))
	}
	return pretty.Empty
}

func (c *converter) patterns(pats []ast.Pattern) []pretty.Doc {
	docs := make([]pretty.Doc, len(pats))
	for i, p := range pats {
		docs[i] = c.pattern(p)
	}
	return docs
}

// patternArg renders a pattern in argument position, where constructor
// applications, cons chains, and aliases need parentheses to re-parse as
// a single argument.
func (c *converter) patternArg(p ast.Pattern) pretty.Doc {
	switch pat := p.(type) {
	case *ast.CtorPattern:
		if len(pat.Args) > 0 {
			return parenthesize(c.pattern(pat))
		}
	case *ast.ConsPattern, *ast.AliasPattern:
		return parenthesize(c.pattern(p))
	}
	return c.pattern(p)
}
