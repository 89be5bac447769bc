package singular

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	timing "github.com/gburgyan/go-timing"
)

// enumLookup is the analyzed description of one enumeration type: its
// defined members in declaration order, their canonical names, and which
// members are declared invalid. Instances are immutable once built and are
// shared through the package-level cache.
type enumLookup struct {
	typ        reflect.Type
	ordered    []int64          // deduplicated ordinals, declaration order
	names      map[int64]string // ordinal to canonical name
	byName     map[string]int64 // every declared name, aliases included
	invalid    map[int64]bool   // members whose IsValid reported false
	registered bool             // built from an explicit Definition
}

// memberDef is the normalized form a member arrives in, whether it was
// discovered through FlagValues or supplied through Register.
type memberDef struct {
	name    string
	ordinal int64
	valid   bool
}

type lookupRegistry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*enumLookup
}

var lookups = lookupRegistry{byType: map[reflect.Type]*enumLookup{}}

// lookupFor returns the cached lookup for E, analyzing the type on first
// use. Analysis is pure, so a race between two first uses builds identical
// lookups and the first one stored wins. The context only scopes the
// analysis timing span; the context-free entry points pass
// context.Background(), so their first-use span roots in a fresh timing
// tree rather than a caller's.
func lookupFor[E Flag](ctx context.Context) (*enumLookup, error) {
	typ := flagType[E]()

	lookups.mu.RLock()
	lk, ok := lookups.byType[typ]
	lookups.mu.RUnlock()
	if ok {
		return lk, nil
	}

	lk, err := analyze[E](ctx, typ)
	if err != nil {
		return nil, err
	}

	lookups.mu.Lock()
	defer lookups.mu.Unlock()
	if existing, ok := lookups.byType[typ]; ok {
		return existing, nil
	}
	lookups.byType[typ] = lk
	return lk, nil
}

// storeLookup installs an explicitly registered lookup. A registration
// replaces any lookup discovered through FlagValues, but a second
// registration for the same type is rejected.
func storeLookup(lk *enumLookup) error {
	lookups.mu.Lock()
	defer lookups.mu.Unlock()
	if existing, ok := lookups.byType[lk.typ]; ok && existing.registered {
		return fmt.Errorf("flag type %v already registered", lk.typ)
	}
	lookups.byType[lk.typ] = lk
	return nil
}

// analyze builds the lookup for a type from its FlagValues declaration.
func analyze[E Flag](ctx context.Context, typ reflect.Type) (*enumLookup, error) {
	_, complete := timing.Start(ctx, "singular.analyze")
	defer complete()

	values, ok := declaredValues[E]()
	if !ok {
		return nil, UnsupportedTypeError{
			Type:   typ,
			Reason: "no member set available; implement FlagValues or call Register",
		}
	}

	defs := make([]memberDef, 0, len(values))
	for _, m := range values {
		name, named := memberName(m)
		if !named {
			return nil, UnsupportedTypeError{
				Type:   typ,
				Reason: fmt.Sprintf("member %d has no name; implement fmt.Stringer", int64(m)),
			}
		}
		defs = append(defs, memberDef{
			name:    name,
			ordinal: int64(m),
			valid:   memberValid(m),
		})
	}

	return newEnumLookup(typ, defs, false)
}

// newEnumLookup validates declaration coherence and indexes the members.
// Aliased declarations of one ordinal collapse to the first declaration;
// every alias name stays parseable.
func newEnumLookup(typ reflect.Type, defs []memberDef, registered bool) (*enumLookup, error) {
	if len(defs) == 0 {
		return nil, UnsupportedTypeError{Type: typ, Reason: "declares no members"}
	}

	lk := &enumLookup{
		typ:        typ,
		names:      make(map[int64]string, len(defs)),
		byName:     make(map[string]int64, len(defs)),
		invalid:    map[int64]bool{},
		registered: registered,
	}

	for _, d := range defs {
		if d.name == "" {
			return nil, UnsupportedTypeError{
				Type:   typ,
				Reason: fmt.Sprintf("member %d has an empty name", d.ordinal),
			}
		}
		if existing, ok := lk.byName[d.name]; ok && existing != d.ordinal {
			return nil, UnsupportedTypeError{
				Type:   typ,
				Reason: fmt.Sprintf("members %d and %d share the name %q", existing, d.ordinal, d.name),
			}
		}
		if _, ok := lk.names[d.ordinal]; !ok {
			lk.names[d.ordinal] = d.name
			lk.ordered = append(lk.ordered, d.ordinal)
			if !d.valid {
				lk.invalid[d.ordinal] = true
			}
		}
		if _, ok := lk.byName[d.name]; !ok {
			lk.byName[d.name] = d.ordinal
		}
	}

	return lk, nil
}

// check enforces the single-member invariant for a raw ordinal: it must be
// a defined member and must not be declared invalid.
func (lk *enumLookup) check(ord int64) error {
	if name, defined := lk.names[ord]; defined {
		if !lk.invalid[ord] {
			return nil
		}
		return SingularValueError{
			Type:   lk.typ,
			Value:  ord,
			Reason: fmt.Sprintf("member %s of %s is declared invalid", name, typeName(lk.typ)),
		}
	}
	return SingularValueError{
		Type:    lk.typ,
		Value:   ord,
		Members: lk.decompose(ord),
		Reason:  fmt.Sprintf("value %d is not a defined member of %s", ord, typeName(lk.typ)),
	}
}

// decompose reports the defined members an undefined value's bits combine,
// or nil when the value is not a clean combination of two or more members.
func (lk *enumLookup) decompose(ord int64) []string {
	if ord == 0 {
		return nil
	}
	var members []string
	var combined int64
	for _, m := range lk.ordered {
		if m == 0 {
			continue
		}
		if ord&m == m {
			members = append(members, lk.names[m])
			combined |= m
		}
	}
	if combined != ord || len(members) < 2 {
		return nil
	}
	return members
}

func flagType[E Flag]() reflect.Type {
	var zero E
	return reflect.TypeOf(zero)
}

// declaredValues fetches the member set from the type's FlagValues
// implementation, accepting either a value or a pointer receiver.
func declaredValues[E Flag]() ([]E, bool) {
	var zero E
	if p, ok := any(zero).(FlagValues[E]); ok {
		return p.EnumValues(), true
	}
	if p, ok := any(&zero).(FlagValues[E]); ok {
		return p.EnumValues(), true
	}
	return nil, false
}

// memberName resolves the canonical name of a member through fmt.Stringer,
// accepting either a value or a pointer receiver.
func memberName[E Flag](m E) (string, bool) {
	if s, ok := any(m).(fmt.Stringer); ok {
		return s.String(), true
	}
	if s, ok := any(&m).(fmt.Stringer); ok {
		return s.String(), true
	}
	return "", false
}

// memberValid consults the optional Validator capability; members without
// it are always valid.
func memberValid[E Flag](m E) bool {
	if v, ok := any(m).(Validator); ok {
		return v.IsValid()
	}
	if v, ok := any(&m).(Validator); ok {
		return v.IsValid()
	}
	return true
}
