package formatter

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
)

// module produces the document for a whole file: header, file comment,
// imports, then declarations separated by two blank lines.
func (c *converter) module(m *ast.Module) pretty.Doc {
	sections := []pretty.Doc{c.header(m)}

	if m.Comment != nil {
		sections = append(sections, c.commentDoc(m.Comment))
	}

	if len(m.Imports) > 0 {
		sections = append(sections, c.imports(m.Imports))
	}

	blank := pretty.Concat(pretty.HardLine, pretty.HardLine)
	out := pretty.Join(blank, sections...)

	declSep := pretty.Concat(pretty.HardLine, pretty.HardLine, pretty.HardLine)
	for _, d := range m.Decls {
		out = pretty.Concat(out, declSep, c.decl(d))
	}

	return out
}

// header renders the module line. The exposing clause stays on the
// header line when it fits; otherwise it breaks to an indented list.
func (c *converter) header(m *ast.Module) pretty.Doc {
	lead := pretty.Text(m.Kind.String() + " " + m.Name + " exposing")
	return pretty.Concat(lead, c.moduleExposing(m))
}

// moduleExposing renders the module's exposing clause, routing explicit
// name lists through the export orderer. A wildcard clause is emitted
// unchanged: ordering `(..)` is meaningless, so the orderer is bypassed
// regardless of any comment tag content.
func (c *converter) moduleExposing(m *ast.Module) pretty.Doc {
	e := m.Exposing
	if e == nil || e.All {
		return pretty.Text(" (..)")
	}

	declared := make([]string, len(e.Names))
	byName := make(map[string]ast.ExposedName, len(e.Names))
	for i, name := range e.Names {
		declared[i] = name.Name
		byName[name.Name] = name
	}

	ordered := c.orderExports(m.Comment.TagGroups(), declared)

	names := make([]ast.ExposedName, len(ordered))
	for i, name := range ordered {
		names[i] = byName[name]
	}

	return pretty.Group(pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, c.exposingList(names))))
}

// exposingDoc renders a non-file-scope exposing clause (imports), which
// has no doc-tag input and keeps its declared order.
func (c *converter) exposingDoc(e *ast.Exposing) pretty.Doc {
	if e.All {
		return pretty.Text("(..)")
	}
	return c.exposingList(e.Names)
}

func (c *converter) exposingList(names []ast.ExposedName) pretty.Doc {
	elems := make([]pretty.Doc, len(names))
	for i, name := range names {
		text := name.Name
		if name.OpenConstructors {
			text += "(..)"
		}
		elems[i] = pretty.Text(text)
	}
	return c.enclose("(", ")", elems)
}

// imports renders the import block, sorted by module name.
func (c *converter) imports(imports []*ast.Import) pretty.Doc {
	sorted := make([]*ast.Import, len(imports))
	copy(sorted, imports)
	slices.SortStableFunc(sorted, func(a, b *ast.Import) int {
		return strings.Compare(a.Module, b.Module)
	})

	lines := make([]pretty.Doc, len(sorted))
	for i, imp := range sorted {
		lines[i] = c.importDoc(imp)
	}
	return pretty.Lines(lines...)
}

func (c *converter) importDoc(imp *ast.Import) pretty.Doc {
	out := pretty.Text("import " + imp.Module)
	if imp.Alias != "" {
		out = pretty.Concat(out, pretty.Text(" as "+imp.Alias))
	}
	if imp.Exposing != nil {
		exposing := pretty.Group(pretty.Nest(c.indent,
			pretty.Concat(pretty.SoftLine, c.exposingDoc(imp.Exposing))))
		out = pretty.Concat(out, pretty.Text(" exposing"), exposing)
	}
	return out
}

// commentDoc renders a doc comment block, re-flowed to the page width.
// The first body line shares its line with the `{-| ` opener, so prose
// wraps at the width minus the opener to keep every line within budget.
func (c *converter) commentDoc(comment *ast.Comment) pretty.Doc {
	body := c.reflow(comment, c.width-len("{-| "))
	if body == "" {
		return pretty.Text("{-| -}")
	}

	lines := strings.Split(body, "\n")
	docs := make([]pretty.Doc, 0, len(lines)+1)
	docs = append(docs, pretty.Text("{-| "+lines[0]))
	for _, line := range lines[1:] {
		docs = append(docs, pretty.Text(line))
	}
	docs = append(docs, pretty.Text("-}"))
	return pretty.Lines(docs...)
}

// enclose lays out a bracketed, comma-separated list: flat as
// `( a, b )`, broken with one element per line and the closing bracket
// on its own line.
func (c *converter) enclose(open, closing string, elems []pretty.Doc) pretty.Doc {
	if len(elems) == 0 {
		return pretty.Text(open + closing)
	}

	sep := pretty.Concat(pretty.Text(","), pretty.SoftLine)
	return pretty.Group(pretty.Concat(
		pretty.Text(open+" "),
		pretty.Nest(c.indent, pretty.Join(sep, elems...)),
		pretty.SoftLine,
		pretty.Text(closing),
	))
}

func parenthesize(d pretty.Doc) pretty.Doc {
	return pretty.Concat(pretty.Text("("), d, pretty.Text(")"))
}
