package ast

// Type is the interface implemented by all type expression forms: named
// types, type variables, functions, tuples, and records.
type Type interface {
	isType()
}

func (*NamedType) isType()  {}
func (*VarType) isType()    {}
func (*FuncType) isType()   {}
func (*TupleType) isType()  {}
func (*RecordType) isType() {}

// NamedType is a concrete type reference, possibly qualified and possibly
// applied to arguments: `Maybe a`, `Dict.Dict String Int`.
type NamedType struct {
	Pos Position

	Module string
	Name   string
	Args   []Type
}

// VarType is a lowercase type variable.
type VarType struct {
	Pos Position

	Name string
}

// FuncType is a function arrow. Chains like `a -> b -> c` nest to the
// right: FuncType(a, FuncType(b, c)).
type FuncType struct {
	Pos Position

	Arg    Type
	Return Type
}

// TupleType is a tuple of types. Zero elements is the unit type `()`.
type TupleType struct {
	Pos Position

	Elems []Type
}

// RecordType is a record type, optionally extending a base record
// variable: `{ a : Int }` or `{ r | a : Int }`.
type RecordType struct {
	Pos Position

	Base   string
	Fields []TypeField
}

// TypeField is a single name/type pair in a record type.
type TypeField struct {
	Name string
	Type Type
}
