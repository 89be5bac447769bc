package singular

import (
	"fmt"
	"reflect"
)

// Single is the type-erased view of a Value, satisfied by every Value
// instantiation. It exposes the comparable key of a singular value, the
// enumeration's type descriptor paired with the member's ordinal, so
// heterogeneous code can compare and hash values without knowing their
// enumeration types.
type Single interface {
	fmt.Stringer

	// Type returns the runtime descriptor of the wrapped enumeration.
	Type() reflect.Type

	// Ordinal returns the member's integral value projected to int64.
	Ordinal() int64

	// Hash returns the type-aware member hash.
	Hash() uint64

	// Equal reports whether another value wraps the identical enumeration
	// type and the identical member.
	Equal(other Single) bool
}

// As attempts to view a type-erased Single as a concrete Value[E]. It
// returns the concrete value and true if s wraps a member of E, or the zero
// Value and false if s is nil or wraps a different enumeration type.
func As[E Flag](s Single) (Value[E], bool) {
	if v, ok := s.(Value[E]); ok {
		return v, true
	}

	// A Single may arrive as a pointer to a Value; accept that too.
	if v, ok := s.(*Value[E]); ok && v != nil {
		return *v, true
	}

	return Value[E]{}, false
}
