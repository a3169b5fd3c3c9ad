package ast

// Pattern is the interface implemented by all pattern forms.
type Pattern interface {
	isPattern()
}

func (*Anything) isPattern()       {}
func (*VarPattern) isPattern()     {}
func (*LiteralPattern) isPattern() {}
func (*TuplePattern) isPattern()   {}
func (*ListPattern) isPattern()    {}
func (*ConsPattern) isPattern()    {}
func (*RecordPattern) isPattern()  {}
func (*AliasPattern) isPattern()   {}
func (*CtorPattern) isPattern()    {}
func (*ParensPattern) isPattern()  {}

// Anything is the wildcard pattern `_`.
type Anything struct {
	Pos Position
}

// VarPattern binds a name.
type VarPattern struct {
	Pos Position

	Name string
}

// LiteralPattern matches a literal. Literal is one of StringLit, CharLit,
// or NumberLit.
type LiteralPattern struct {
	Pos Position

	Literal Expr
}

// TuplePattern matches a tuple. Zero elements is the unit pattern `()`.
type TuplePattern struct {
	Pos Position

	Elems []Pattern
}

// ListPattern matches a list literal pattern like `[ a, b ]`.
type ListPattern struct {
	Pos Position

	Elems []Pattern
}

// ConsPattern matches head and tail: `x :: rest`.
type ConsPattern struct {
	Pos Position

	Head Pattern
	Tail Pattern
}

// RecordPattern extracts fields by name: `{ name, age }`.
type RecordPattern struct {
	Pos Position

	Fields []string
}

// AliasPattern binds the whole matched value to a name: `pattern as name`.
type AliasPattern struct {
	Pos Position

	Pattern Pattern
	Name    string
}

// CtorPattern matches a custom type constructor with argument patterns.
type CtorPattern struct {
	Pos Position

	Module string
	Name   string
	Args   []Pattern
}

// ParensPattern is an explicitly parenthesized pattern.
type ParensPattern struct {
	Pos Position

	Pattern Pattern
}
