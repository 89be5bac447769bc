package singular

import (
	"context"
	"fmt"
	"reflect"
)

// Value holds exactly one defined member of the enumeration E. Every Value
// produced by New, Of, Default, Must, Parse or ParseLiteral satisfies that
// invariant: the enclosed member is defined by E's declaration, is not a
// bitwise combination of several members (unless that combination is itself
// a declared member), and is not a member E declares invalid.
//
// A Value is immutable after construction and safe to share between
// goroutines without locking. The zero Value wraps the zero member of E
// without any validation having run; use Default to obtain a validated
// zero-member Value.
//
// Example usage:
//
//	perm := singular.Must(singular.New(Read))
//	perm.Member()          // Read
//	perm.String()          // "Read"
//
//	_, err := singular.New(Read | Write)
//	// err: value 3 is not a defined member of main.Permission (combines Read|Write)
type Value[E Flag] struct {
	member E
}

// New validates member against E's declared member set and returns a Value
// enclosing it. The returned error is an UnsupportedTypeError when E is not
// a usable enumeration, or a SingularValueError when member is undefined, a
// combination of members, or declared invalid.
//
// New is the explicit counterpart of assigning a raw enumeration value to a
// variable that must hold exactly one flag; the validation stays visible at
// the call site.
func New[E Flag](member E) (Value[E], error) {
	lk, err := lookupFor[E](context.Background())
	if err != nil {
		return Value[E]{}, err
	}
	if err := lk.check(int64(member)); err != nil {
		return Value[E]{}, err
	}
	return Value[E]{member: member}, nil
}

// Of is a convenience constructor with the identical contract as New. It
// exists as an alternative named entry point, not a distinct algorithm.
func Of[E Flag](member E) (Value[E], error) {
	return New(member)
}

// Default returns a Value enclosing E's zero member. It fails with an
// UnsupportedTypeError when E is not a usable enumeration, and with a
// SingularValueError when the zero member is not itself a defined, valid
// member of E.
func Default[E Flag]() (Value[E], error) {
	var zero E
	return New(zero)
}

// Must returns v or panics when err is non-nil. It wraps the constructors
// for members known to be valid at compile time:
//
//	var readOnly = singular.Must(singular.New(Read))
func Must[E Flag](v Value[E], err error) Value[E] {
	if err != nil {
		panic(err)
	}
	return v
}

// Member returns the enclosed enumeration member. This is the projection
// back to the raw enumeration value; it always succeeds because the
// construction invariant already guarantees validity.
func (v Value[E]) Member() E {
	return v.member
}

// Ordinal returns the member's integral value projected to int64. Unsigned
// members larger than the int64 range wrap; the projection is bijective per
// enumeration, which is all equality and hashing require.
func (v Value[E]) Ordinal() int64 {
	return int64(v.member)
}

// Type returns the runtime descriptor of E for diagnostic or reflective
// use.
func (v Value[E]) Type() reflect.Type {
	return reflect.TypeOf(v.member)
}

// String returns the member's canonical name. A member that cannot be
// resolved against E's declaration, such as the member of a zero Value of
// an enumeration whose zero ordinal is undefined, renders in the
// stringer-style fallback form "Type(ordinal)".
func (v Value[E]) String() string {
	if lk, err := lookupFor[E](context.Background()); err == nil {
		if name, ok := lk.names[int64(v.member)]; ok {
			return name
		}
	}
	typ := v.Type()
	name := typ.Name()
	if name == "" {
		name = typ.String()
	}
	return fmt.Sprintf("%s(%d)", name, int64(v.member))
}

// Compare returns a negative value, zero, or a positive value when v's
// member orders before, equal to, or after other's member under E's own
// integral ordering. The order is total and consistent with Equal for
// Values of one enumeration.
func (v Value[E]) Compare(other Value[E]) int {
	switch {
	case v.member < other.member:
		return -1
	case v.member > other.member:
		return 1
	}
	return 0
}

// Equal reports whether other wraps the identical enumeration type and the
// identical member. Values of different enumerations are never equal, even
// when their underlying integral values match; the mismatch yields false
// rather than an error.
func (v Value[E]) Equal(other Single) bool {
	return other != nil && v.Type() == other.Type() && v.Ordinal() == other.Ordinal()
}

// Hash returns a hash combining the member with the enumeration's type
// identity, so members of different enumerations with equal ordinals hash
// apart. The hash is stable across processes.
func (v Value[E]) Hash() uint64 {
	return hashMember(v.Type(), int64(v.member))
}
