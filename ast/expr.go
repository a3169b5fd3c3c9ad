package ast

// Expr is the interface implemented by all expression forms.
type Expr interface {
	isExpr()
}

func (*StringLit) isExpr()    {}
func (*CharLit) isExpr()      {}
func (*NumberLit) isExpr()    {}
func (*VarRef) isExpr()       {}
func (*Apply) isExpr()        {}
func (*BinOp) isExpr()        {}
func (*Negate) isExpr()       {}
func (*TupleExpr) isExpr()    {}
func (*ListExpr) isExpr()     {}
func (*RecordExpr) isExpr()   {}
func (*RecordUpdate) isExpr() {}
func (*FieldAccess) isExpr()  {}
func (*AccessorFunc) isExpr() {}
func (*Lambda) isExpr()       {}
func (*Let) isExpr()          {}
func (*If) isExpr()           {}
func (*Case) isExpr()         {}
func (*Parens) isExpr()       {}
func (*EmbeddedCode) isExpr() {}

// StringLit is a string literal. Text holds the raw source segment
// between the quotes, escapes included, so the literal round-trips
// byte for byte. Multiline selects the triple-quote form.
type StringLit struct {
	Pos Position

	Text      string
	Multiline bool
}

// CharLit is a character literal; Text is the raw content between the
// single quotes.
type CharLit struct {
	Pos Position

	Text string
}

// NumberLit is a numeric literal. Text preserves the original spelling
// (decimal, hexadecimal, float, exponent form); the formatter never
// re-derives it from the numeric value.
type NumberLit struct {
	Pos Position

	Text string
}

// VarRef is a reference to a value, possibly qualified with a module
// name.
type VarRef struct {
	Pos Position

	Module string
	Name   string
}

// Apply is function application with one or more arguments.
type Apply struct {
	Pos Position

	Fn   Expr
	Args []Expr
}

// BinOp applies a binary operator to two operands. Nesting of BinOp
// nodes records the original grouping; the formatter re-inserts
// parentheses from the fixity table so the grouping survives a re-parse.
type BinOp struct {
	Pos Position

	Op    string
	Left  Expr
	Right Expr
}

// Negate is unary minus.
type Negate struct {
	Pos Position

	Expr Expr
}

// TupleExpr is a tuple. Zero elements is the unit value `()`.
type TupleExpr struct {
	Pos Position

	Elems []Expr
}

// ListExpr is a list literal.
type ListExpr struct {
	Pos Position

	Elems []Expr
}

// RecordExpr constructs a record.
type RecordExpr struct {
	Pos Position

	Fields []Field
}

// RecordUpdate copies a record with some fields replaced:
// `{ base | field = value }`.
type RecordUpdate struct {
	Pos Position

	Base   string
	Fields []Field
}

// Field is a single name/value pair in a record construct or update.
type Field struct {
	Name  string
	Value Expr
}

// FieldAccess reads a field from a record expression.
type FieldAccess struct {
	Pos Position

	Record Expr
	Field  string
}

// AccessorFunc is the field accessor shorthand `.field`.
type AccessorFunc struct {
	Pos Position

	Field string
}

// Lambda is an anonymous function.
type Lambda struct {
	Pos Position

	Args []Pattern
	Body Expr
}

// Let binds local definitions for the scope of Body.
type Let struct {
	Pos Position

	Defs []LetDef
	Body Expr
}

// LetDef is one definition inside a let block: either a named function
// (Name set, Pattern nil) or a destructuring bind (Pattern set, Name
// empty).
type LetDef struct {
	Name       string
	Annotation *Annotation
	Args       []Pattern
	Pattern    Pattern
	Body       Expr
}

// If is a conditional expression.
type If struct {
	Pos Position

	Cond Expr
	Then Expr
	Else Expr
}

// Case matches a subject expression against branch patterns in order.
type Case struct {
	Pos Position

	Subject  Expr
	Branches []CaseBranch
}

// CaseBranch is a single pattern/body pair in a case expression.
type CaseBranch struct {
	Pattern Pattern
	Body    Expr
}

// Parens is an explicitly parenthesized expression. The parentheses are
// retained in the output.
type Parens struct {
	Pos Position

	Expr Expr
}

// EmbeddedCode is a raw embedded-code literal such as a `[glsl| ... |]`
// block. Text is reproduced verbatim, line breaks included.
type EmbeddedCode struct {
	Pos Position

	Text string
}
