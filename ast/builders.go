// Builders for constructing syntax trees programmatically. These make it
// easy to produce modules from code, such as code generators or tests,
// without going through the external parser.
//
// Complex nodes use functional options, following Go idioms for
// configurable constructors.

package ast

// ModuleOption configures a module built with NewModule.
type ModuleOption func(*Module)

// NewModule creates a module with the given name, exposing everything by
// default.
//
// Example:
//
//	mod := ast.NewModule("Main",
//		ast.WithExposing(ast.Expose(ast.Exposed("main"))),
//		ast.WithDecls(ast.NewFunction("main", nil, ast.Var("view"))),
//	)
func NewModule(name string, opts ...ModuleOption) *Module {
	m := &Module{
		Name:     name,
		Exposing: ExposeAll(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WithKind sets the module header form (plain, port, or effect).
func WithKind(kind ModuleKind) ModuleOption {
	return func(m *Module) { m.Kind = kind }
}

// WithExposing sets the module's exposing clause.
func WithExposing(e *Exposing) ModuleOption {
	return func(m *Module) { m.Exposing = e }
}

// WithComment sets the file-level doc comment.
func WithComment(c *Comment) ModuleOption {
	return func(m *Module) { m.Comment = c }
}

// WithImports appends imports to the module.
func WithImports(imports ...*Import) ModuleOption {
	return func(m *Module) { m.Imports = append(m.Imports, imports...) }
}

// WithDecls appends top-level declarations to the module.
func WithDecls(decls ...Decl) ModuleOption {
	return func(m *Module) { m.Decls = append(m.Decls, decls...) }
}

// ExposeAll returns the wildcard exposing clause `(..)`.
func ExposeAll() *Exposing {
	return &Exposing{All: true}
}

// Expose returns an explicit exposing clause with the given entries.
func Expose(names ...ExposedName) *Exposing {
	return &Exposing{Names: names}
}

// Exposed returns a plain exposed name.
func Exposed(name string) ExposedName {
	return ExposedName{Name: name}
}

// ExposedType returns a type entry that also exposes its constructors,
// rendered as `Name(..)`.
func ExposedType(name string) ExposedName {
	return ExposedName{Name: name, OpenConstructors: true}
}

// ImportOption configures an import built with NewImport.
type ImportOption func(*Import)

// NewImport creates an import of the given module.
func NewImport(module string, opts ...ImportOption) *Import {
	imp := &Import{Module: module}
	for _, opt := range opts {
		opt(imp)
	}
	return imp
}

// WithAlias sets the `as` alias on an import.
func WithAlias(alias string) ImportOption {
	return func(i *Import) { i.Alias = alias }
}

// WithImportExposing sets the exposing clause on an import.
func WithImportExposing(e *Exposing) ImportOption {
	return func(i *Import) { i.Exposing = e }
}

// FunctionOption configures a function declaration.
type FunctionOption func(*Function)

// NewFunction creates a function declaration with the given name,
// argument patterns, and body.
func NewFunction(name string, args []Pattern, body Expr, opts ...FunctionOption) *Function {
	fn := &Function{Name: name, Args: args, Body: body}
	for _, opt := range opts {
		opt(fn)
	}
	return fn
}

// WithAnnotation attaches a type annotation to a function.
func WithAnnotation(t Type) FunctionOption {
	return func(f *Function) { f.Annotation = &Annotation{Name: f.Name, Type: t} }
}

// WithDocComment attaches a doc comment to a function.
func WithDocComment(c *Comment) FunctionOption {
	return func(f *Function) { f.Comment = c }
}

// NewComment creates a doc comment from parts in order.
func NewComment(parts ...CommentPart) *Comment {
	return &Comment{Parts: parts}
}

// Prose returns a Markdown comment part.
func Prose(text string) *Markdown {
	return &Markdown{Text: text}
}

// Code returns a verbatim code block comment part.
func Code(text string) *CodeBlock {
	return &CodeBlock{Text: text}
}

// Tags returns a @doc tag line comment part.
func Tags(names ...string) *DocTags {
	return &DocTags{Names: names}
}

// Var returns an unqualified value reference.
func Var(name string) *VarRef {
	return &VarRef{Name: name}
}

// QualifiedVar returns a module-qualified value reference.
func QualifiedVar(module, name string) *VarRef {
	return &VarRef{Module: module, Name: name}
}

// Str returns a single-line string literal; text is the raw source
// segment between the quotes.
func Str(text string) *StringLit {
	return &StringLit{Text: text}
}

// Num returns a numeric literal with its original source spelling.
func Num(text string) *NumberLit {
	return &NumberLit{Text: text}
}

// Call returns a function application.
func Call(fn Expr, args ...Expr) *Apply {
	return &Apply{Fn: fn, Args: args}
}

// Op returns a binary operator application.
func Op(op string, left, right Expr) *BinOp {
	return &BinOp{Op: op, Left: left, Right: right}
}

// PVar returns a variable binding pattern.
func PVar(name string) *VarPattern {
	return &VarPattern{Name: name}
}

// PAny returns the wildcard pattern `_`.
func PAny() *Anything {
	return &Anything{}
}

// TNamed returns a named type reference.
func TNamed(name string, args ...Type) *NamedType {
	return &NamedType{Name: name, Args: args}
}

// TVar returns a type variable.
func TVar(name string) *VarType {
	return &VarType{Name: name}
}

// TFunc returns a right-nested function type from the given chain of
// types. It panics when called with fewer than two types.
func TFunc(types ...Type) Type {
	if len(types) < 2 {
		panic("ast: TFunc needs at least two types")
	}
	out := types[len(types)-1]
	for i := len(types) - 2; i >= 0; i-- {
		out = &FuncType{Arg: types[i], Return: out}
	}
	return out
}
