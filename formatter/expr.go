package formatter

import (
	"github.com/robinvdvleuten/elmfmt/ast"
	"github.com/robinvdvleuten/elmfmt/pretty"
)

// unknownPrecedence sits below every declared precedence level, so an
// operator with no fixity entry is parenthesized wherever the question
// arises. Paired with AssocNone it forces parentheses on both sides at
// equal precedence, which is the conservative reconstruction.
const unknownPrecedence = -1

// side identifies which operand of a binary operator is being rendered.
type side int

const (
	sideLeft side = iota
	sideRight
)

// expr dispatches over all expression forms. The switch is total over
// the closed variant set.
func (c *converter) expr(e ast.Expr) pretty.Doc {
	switch expr := e.(type) {
	case *ast.StringLit:
		return c.stringLit(expr)

	case *ast.CharLit:
		return pretty.Text("'" + expr.Text + "'")

	case *ast.NumberLit:
		// The original spelling (decimal, hex, exponent form) is part of
		// source fidelity; never re-derive it from the value.
		return pretty.Text(expr.Text)

	case *ast.VarRef:
		if expr.Module != "" {
			return pretty.Text(expr.Module + "." + expr.Name)
		}
		return pretty.Text(expr.Name)

	case *ast.Apply:
		return c.apply(expr)

	case *ast.BinOp:
		return c.binop(expr)

	case *ast.Negate:
		return pretty.Concat(pretty.Text("-"), c.exprArg(expr.Expr))

	case *ast.TupleExpr:
		if len(expr.Elems) == 0 {
			return pretty.Text("()")
		}
		return c.enclose("(", ")", c.exprs(expr.Elems))

	case *ast.ListExpr:
		if len(expr.Elems) == 0 {
			return pretty.Text("[]")
		}
		return c.enclose("[", "]", c.exprs(expr.Elems))

	case *ast.RecordExpr:
		if len(expr.Fields) == 0 {
			return pretty.Text("{}")
		}
		return c.enclose("{", "}", c.fields(expr.Fields))

	case *ast.RecordUpdate:
		return pretty.Group(pretty.Concat(
			pretty.Text("{ "+expr.Base+" |"),
			pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine,
				pretty.Join(pretty.Concat(pretty.Text(","), pretty.SoftLine), c.fields(expr.Fields)...))),
			pretty.SoftLine,
			pretty.Text("}"),
		))

	case *ast.FieldAccess:
		return pretty.Concat(c.exprArg(expr.Record), pretty.Text("."+expr.Field))

	case *ast.AccessorFunc:
		return pretty.Text("." + expr.Field)

	case *ast.Lambda:
		if len(expr.Args) == 0 {
			return c.expr(expr.Body)
		}
		head := []pretty.Doc{pretty.Concat(pretty.Text("\\"), c.patternArg(expr.Args[0]))}
		for _, arg := range expr.Args[1:] {
			head = append(head, c.patternArg(arg))
		}
		return pretty.Group(pretty.Concat(
			pretty.Words(head...),
			pretty.Text(" ->"),
			pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, c.expr(expr.Body))),
		))

	case *ast.Let:
		return c.let(expr)

	case *ast.If:
		return c.ifExpr(expr)

	case *ast.Case:
		return c.caseExpr(expr)

	case *ast.Parens:
		return parenthesize(c.expr(expr.Expr))

	case *ast.EmbeddedCode:
		return pretty.TextLines(expr.Text)
	}
	return pretty.Empty
}

func (c *converter) exprs(exprs []ast.Expr) []pretty.Doc {
	docs := make([]pretty.Doc, len(exprs))
	for i, e := range exprs {
		docs[i] = c.expr(e)
	}
	return docs
}

func (c *converter) fields(fields []ast.Field) []pretty.Doc {
	docs := make([]pretty.Doc, len(fields))
	for i, f := range fields {
		docs[i] = pretty.Concat(pretty.Text(f.Name+" = "), c.expr(f.Value))
	}
	return docs
}

func (c *converter) stringLit(s *ast.StringLit) pretty.Doc {
	if s.Multiline {
		// Triple-quoted strings keep their line structure; the content is
		// decomposed into text/hard-line sequences so the renderer never
		// sees an embedded newline.
		return pretty.TextLines(`"""` + s.Text + `"""`)
	}
	return pretty.Text(`"` + s.Text + `"`)
}

// apply renders function application with every argument in its own
// group, so each independently collapses or expands, and continuation
// lines indented under the function.
func (c *converter) apply(app *ast.Apply) pretty.Doc {
	out := c.exprArg(app.Fn)
	args := pretty.Empty
	for _, arg := range app.Args {
		args = pretty.Concat(args, pretty.SoftLine, pretty.Group(c.exprArg(arg)))
	}
	return pretty.Group(pretty.Concat(out, pretty.Nest(c.indent, args)))
}

// exprArg renders an expression in argument position: anything that
// would extend past a single application argument on re-parse is
// parenthesized.
func (c *converter) exprArg(e ast.Expr) pretty.Doc {
	if exprNeedsParens(e) {
		return parenthesize(c.expr(e))
	}
	return c.expr(e)
}

// exprNeedsParens reports whether e must be parenthesized in argument
// position. Applications and operator uses re-parse with the wrong
// grouping; lambdas, lets, ifs, and cases extend greedily to the end of
// the enclosing expression.
func exprNeedsParens(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Apply, *ast.BinOp, *ast.Negate, *ast.Lambda, *ast.Let, *ast.If, *ast.Case:
		return true
	}
	return false
}

// fixityOf resolves an operator's fixity, falling back to the lowest
// possible precedence with a diagnostic when the operator is unknown.
// The diagnostic is reported once per operator symbol per pass.
func (c *converter) fixityOf(op string) ast.Fixity {
	if fx, ok := c.fixities.Lookup(op); ok {
		return fx
	}
	if !c.seenOps[op] {
		c.seenOps[op] = true
		c.diagnose(UnknownFixity, op,
			"operator %q has no fixity entry; parenthesizing conservatively", op)
	}
	return ast.Fixity{Precedence: unknownPrecedence, Assoc: ast.AssocNone}
}

// binop renders a binary operator application, parenthesizing operands
// exactly as required to reconstruct the original grouping on re-parse.
// The group breaks before the operator, so a long chain lays out one
// operand per line.
func (c *converter) binop(b *ast.BinOp) pretty.Doc {
	parent := c.fixityOf(b.Op)

	left := c.operand(b.Left, parent, sideLeft)
	right := c.operand(b.Right, parent, sideRight)

	return pretty.Group(pretty.Concat(
		left,
		pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, pretty.Text(b.Op+" "), right)),
	))
}

func (c *converter) operand(e ast.Expr, parent ast.Fixity, s side) pretty.Doc {
	if child, ok := e.(*ast.BinOp); ok {
		fx := c.fixityOf(child.Op)
		doc := c.binop(child)
		if operandNeedsParens(parent, fx, s) {
			return parenthesize(doc)
		}
		return doc
	}

	switch e.(type) {
	case *ast.Lambda, *ast.Let, *ast.If, *ast.Case:
		return parenthesize(c.expr(e))
	}
	return c.expr(e)
}

// operandNeedsParens decides parenthesization of a nested operator
// application. A strictly lower-precedence child always needs
// parentheses. At equal precedence, parentheses may be omitted only on
// the side the shared associativity permits: the left operand of a
// left-associative operator, the right operand of a right-associative
// one. Non-associative operators and mismatched associativities require
// parentheses on both sides.
func operandNeedsParens(parent, child ast.Fixity, s side) bool {
	if child.Precedence < parent.Precedence {
		return true
	}
	if child.Precedence > parent.Precedence {
		return false
	}
	if parent.Assoc != child.Assoc {
		return true
	}
	switch parent.Assoc {
	case ast.AssocLeft:
		return s != sideLeft
	case ast.AssocRight:
		return s != sideRight
	default:
		return true
	}
}

func (c *converter) let(l *ast.Let) pretty.Doc {
	defs := make([]pretty.Doc, len(l.Defs))
	for i, def := range l.Defs {
		defs[i] = c.letDef(def)
	}

	blank := pretty.Concat(pretty.HardLine, pretty.HardLine)
	return pretty.Concat(
		pretty.Text("let"),
		pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, pretty.Join(blank, defs...))),
		pretty.HardLine,
		pretty.Text("in"),
		pretty.HardLine,
		c.expr(l.Body),
	)
}

func (c *converter) letDef(def ast.LetDef) pretty.Doc {
	// A definition is either a named function or a destructuring bind.
	if def.Name == "" {
		return pretty.Concat(c.pattern(def.Pattern), pretty.Text(" ="), c.body(def.Body))
	}

	var parts []pretty.Doc
	if def.Annotation != nil {
		parts = append(parts, c.annotation(def.Annotation))
	}

	head := []pretty.Doc{pretty.Text(def.Name)}
	for _, arg := range def.Args {
		head = append(head, c.patternArg(arg))
	}
	parts = append(parts, pretty.Concat(pretty.Words(head...), pretty.Text(" ="), c.body(def.Body)))

	return pretty.Lines(parts...)
}

func (c *converter) ifExpr(i *ast.If) pretty.Doc {
	cond := pretty.Group(pretty.Concat(
		pretty.Text("if"),
		pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, c.expr(i.Cond))),
		pretty.SoftLine,
		pretty.Text("then"),
	))

	out := pretty.Concat(
		cond,
		pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, c.expr(i.Then))),
		pretty.HardLine,
		pretty.HardLine,
	)

	// Chain `else if` onto one line, elm style.
	if elseIf, ok := i.Else.(*ast.If); ok {
		return pretty.Concat(out, pretty.Text("else "), c.ifExpr(elseIf))
	}

	return pretty.Concat(
		out,
		pretty.Text("else"),
		pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, c.expr(i.Else))),
	)
}

func (c *converter) caseExpr(ce *ast.Case) pretty.Doc {
	head := pretty.Group(pretty.Concat(
		pretty.Text("case"),
		pretty.Nest(c.indent, pretty.Concat(pretty.SoftLine, c.expr(ce.Subject))),
		pretty.SoftLine,
		pretty.Text("of"),
	))

	branches := make([]pretty.Doc, len(ce.Branches))
	for i, branch := range ce.Branches {
		branches[i] = pretty.Concat(
			c.pattern(branch.Pattern),
			pretty.Text(" ->"),
			pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, c.expr(branch.Body))),
		)
	}

	blank := pretty.Concat(pretty.HardLine, pretty.HardLine)
	return pretty.Concat(
		head,
		pretty.Nest(c.indent, pretty.Concat(pretty.HardLine, pretty.Join(blank, branches...))),
	)
}
