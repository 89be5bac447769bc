package singular

import (
	"context"
	"fmt"

	timing "github.com/gburgyan/go-timing"
)

// Member pairs a defined member with its canonical name for explicit
// registration.
type Member[E Flag] struct {
	Name  string
	Value E
}

// Definition describes an enumeration's member set for explicit
// registration. It serves types that cannot implement FlagValues, such as
// enumerations declared in packages you do not control.
type Definition[E Flag] struct {
	// Members lists every defined member with its canonical name, in
	// declaration order. A later entry with an already listed ordinal is an
	// alias: its name resolves to the member, but the first entry supplies
	// the canonical name.
	Members []Member[E]

	// Valid optionally marks sentinel members as declared invalid. A nil
	// Valid means every listed member is valid.
	Valid func(E) bool
}

// Register installs def as the member declaration for E. A registration
// replaces whatever was discovered through FlagValues, but registering the
// same type twice is an error, so call it once during initialization:
//
//	err := singular.Register(ctx, singular.Definition[tls.ClientAuthType]{
//	    Members: []singular.Member[tls.ClientAuthType]{
//	        {Name: "NoClientCert", Value: tls.NoClientCert},
//	        {Name: "RequestClientCert", Value: tls.RequestClientCert},
//	    },
//	})
func Register[E Flag](ctx context.Context, def Definition[E]) error {
	_, complete := timing.Start(ctx, "singular.Register")
	defer complete()

	if err := validateDefinition(def); err != nil {
		return err
	}

	defs := make([]memberDef, 0, len(def.Members))
	for _, m := range def.Members {
		valid := true
		if def.Valid != nil {
			valid = def.Valid(m.Value)
		}
		defs = append(defs, memberDef{
			name:    m.Name,
			ordinal: int64(m.Value),
			valid:   valid,
		})
	}

	lk, err := newEnumLookup(flagType[E](), defs, true)
	if err != nil {
		return err
	}
	return storeLookup(lk)
}

// MustRegister registers def and panics on error. It suits package-level
// initialization where a bad definition is a programming error.
func MustRegister[E Flag](ctx context.Context, def Definition[E]) {
	if err := Register(ctx, def); err != nil {
		panic(err)
	}
}

// validateDefinition rejects definitions that are malformed at the surface
// before they reach member indexing.
func validateDefinition[E Flag](def Definition[E]) error {
	if len(def.Members) == 0 {
		return fmt.Errorf("definition must declare at least one member")
	}
	for i, m := range def.Members {
		if m.Name == "" {
			return fmt.Errorf("definition member %d has an empty name", i)
		}
	}
	return nil
}
