// Package ast declares the types used to represent syntax trees for Elm
// modules.
//
// The tree covers the module header, imports, exposing clauses, top-level
// declarations, patterns, expressions, types, and structured doc comments.
// Trees are produced by an external parser (handed over as JSON, see the
// loader package) or constructed programmatically with the builders in
// this package. All nodes are immutable once built; a tree is consumed by
// a single formatting pass and does not outlive it.
//
// Each grammatical category (Decl, Pattern, Expr, Type, CommentPart) is a
// closed set of variants behind a sealed interface: adding a variant is a
// compile-time update site for every switch over the category.
package ast

// ModuleKind distinguishes the three module header forms.
type ModuleKind int

const (
	// PlainModule is an ordinary `module` header.
	PlainModule ModuleKind = iota
	// PortModule is a `port module` header.
	PortModule
	// EffectModule is an `effect module` header.
	EffectModule
)

// String returns the header keyword prefix for the module kind.
func (k ModuleKind) String() string {
	switch k {
	case PortModule:
		return "port module"
	case EffectModule:
		return "effect module"
	default:
		return "module"
	}
}

// Module is a complete parsed source file.
type Module struct {
	Pos Position

	Kind     ModuleKind
	Name     string
	Exposing *Exposing

	// Comment is the file-level doc comment, if any. Its DocTags parts
	// drive the ordering of the exposing clause.
	Comment *Comment

	Imports []*Import
	Decls   []Decl
}

// Exposing is the list of names a module or import makes visible.
// Either All is set (the `(..)` wildcard) or Names holds the explicit
// list; never both.
type Exposing struct {
	Pos Position

	All   bool
	Names []ExposedName
}

// ExposedName is a single entry in an explicit exposing clause. A type
// exposing its constructors carries OpenConstructors and renders with a
// trailing `(..)`.
type ExposedName struct {
	Name             string
	OpenConstructors bool
}

// Import brings another module into scope, optionally under an alias and
// optionally exposing some of its names.
type Import struct {
	Pos Position

	Module   string
	Alias    string
	Exposing *Exposing
}
