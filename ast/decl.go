package ast

// Decl is the interface implemented by all top-level declaration forms.
// The set of implementations is closed: Function, TypeAlias, CustomType,
// Port, Infix, and Destructuring.
type Decl interface {
	isDecl()

	// Keyword returns a short name for the declaration form, used in
	// diagnostics and tree dumps.
	Keyword() string
}

func (*Function) isDecl()      {}
func (*TypeAlias) isDecl()     {}
func (*CustomType) isDecl()    {}
func (*Port) isDecl()          {}
func (*Infix) isDecl()         {}
func (*Destructuring) isDecl() {}

// Function is a value or function declaration: an optional doc comment,
// an optional type annotation, the name, argument patterns, and a body.
type Function struct {
	Pos Position

	Comment    *Comment
	Name       string
	Annotation *Annotation
	Args       []Pattern
	Body       Expr
}

func (*Function) Keyword() string { return "function" }

// Annotation is a standalone type signature attached to a function or
// port declaration.
type Annotation struct {
	Name string
	Type Type
}

// TypeAlias declares a name for an existing type.
type TypeAlias struct {
	Pos Position

	Comment *Comment
	Name    string
	Params  []string
	Type    Type
}

func (*TypeAlias) Keyword() string { return "type alias" }

// CustomType declares a tagged union with one or more constructors.
type CustomType struct {
	Pos Position

	Comment      *Comment
	Name         string
	Params       []string
	Constructors []Constructor
}

func (*CustomType) Keyword() string { return "type" }

// Constructor is a single variant of a custom type.
type Constructor struct {
	Name string
	Args []Type
}

// Port declares a port with its type.
type Port struct {
	Pos Position

	Comment *Comment
	Name    string
	Type    Type
}

func (*Port) Keyword() string { return "port" }

// Infix declares the fixity of an operator and names its implementation.
type Infix struct {
	Pos Position

	Assoc          Associativity
	Precedence     int
	Operator       string
	Implementation string
}

func (*Infix) Keyword() string { return "infix" }

// Destructuring binds names by matching a pattern against an expression
// at the top level.
type Destructuring struct {
	Pos Position

	Comment *Comment
	Pattern Pattern
	Body    Expr
}

func (*Destructuring) Keyword() string { return "destructuring" }
