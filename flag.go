package singular

import (
	"golang.org/x/exp/constraints"
)

// Flag is the type constraint for enumeration types that Value can wrap.
// Any integer-kinded type satisfies it at compile time; whether the type is
// a usable enumeration with a closed set of named members is checked when
// the first Value of that type is constructed, since Go's type system cannot
// express "closed member set" as a constraint.
type Flag interface {
	constraints.Integer
}

// FlagValues is implemented by enumeration types to declare their defined
// member set. The returned slice must contain every defined member in
// declaration order. Canonical member names are taken from the members'
// fmt.Stringer implementation, so a stringer-generated enumeration only
// needs to add this one method.
//
// Example:
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	    Blue
//	)
//
//	func (c Color) String() string { ... }
//
//	func (Color) EnumValues() []Color {
//	    return []Color{Red, Green, Blue}
//	}
//
// Types that cannot grow methods can be described with Register instead.
type FlagValues[E Flag] interface {
	EnumValues() []E
}

// Validator is optionally implemented by enumeration members to mark
// declared-but-invalid sentinel members, such as an Unknown or None case
// that exists in the declaration but must never be held by a Value.
// Members reporting false are rejected by New and Default and are never
// produced by Parse.
type Validator interface {
	IsValid() bool
}
