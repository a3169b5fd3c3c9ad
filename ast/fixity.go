package ast

// Associativity tells on which side an operator at equal precedence may
// omit parentheses.
type Associativity int

const (
	// AssocLeft groups to the left: a - b - c means (a - b) - c.
	AssocLeft Associativity = iota
	// AssocRight groups to the right: a :: b :: c means a :: (b :: c).
	AssocRight
	// AssocNone never groups implicitly; equal-precedence operands must
	// be parenthesized on both sides.
	AssocNone
)

// String returns the associativity keyword as written in infix
// declarations.
func (a Associativity) String() string {
	switch a {
	case AssocRight:
		return "right"
	case AssocNone:
		return "non"
	default:
		return "left"
	}
}

// Fixity is an operator's precedence and associativity.
type Fixity struct {
	Precedence int
	Assoc      Associativity
}

// Fixities maps operator symbols to their fixity. The table is read-only
// shared input owned by the caller; a nil table is valid and means every
// operator has unknown fixity.
type Fixities map[string]Fixity

// Lookup returns the fixity for an operator symbol. The second result is
// false when the operator is not in the table; callers are expected to
// fall back to conservative parenthesization in that case.
func (f Fixities) Lookup(op string) (Fixity, bool) {
	fx, ok := f[op]
	return fx, ok
}
