package singular

import (
	"context"
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// flagLiteral is the parsed form of a flag literal: one or more terms
// separated by '|' or ','.
type flagLiteral struct {
	Terms []flagTerm `parser:"@@ ( ( '|' | ',' ) @@ )*"`
	Pos   lexer.Position
}

// flagTerm is a single literal term: a member name or a decimal ordinal.
type flagTerm struct {
	Name  *string `parser:"@Ident"`
	Value *int64  `parser:"| @Int"`
	Pos   lexer.Position
}

var (
	literalLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
		{Name: "Int", Pattern: `-?\d+`},
		{Name: "Punct", Pattern: `[|,]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	})
	literalParser = participle.MustBuild[flagLiteral](
		participle.Lexer(literalLexer),
		participle.Elide("Whitespace"),
	)
)

// Parse looks name up against E's defined member names, case-sensitively,
// and returns an Option: present when name matches a defined, valid member,
// empty otherwise. Parse never returns an error: an unmatched name, a
// member declared invalid, and even an unusable E all yield the empty
// Option, because a missing name is an expected outcome. Use New or
// ParseLiteral when the failure cause matters.
func Parse[E Flag](name string) Option[Value[E]] {
	lk, err := lookupFor[E](context.Background())
	if err != nil {
		return None[Value[E]]()
	}
	ord, ok := lk.byName[name]
	if !ok || lk.invalid[ord] {
		return None[Value[E]]()
	}
	return Some(Value[E]{member: E(ord)})
}

// ParseLiteral parses the full flag-literal syntax and enforces the
// single-member invariant on the result. A literal is a member name, a
// decimal ordinal, or several of either separated by '|' or ','. Terms are
// combined bitwise, and the combination must collapse to exactly one
// defined member: "Read" and "2" resolve directly, and "Read|Write" is
// accepted only when the enumeration declares that combination as its own
// member.
//
// Unlike Parse, this is the strict entry point: unknown names, undefined
// ordinals, and combinations that do not name a single member fail with a
// SingularValueError carrying the position in the input.
func ParseLiteral[E Flag](input string) (Value[E], error) {
	lk, err := lookupFor[E](context.Background())
	if err != nil {
		return Value[E]{}, err
	}

	lit, err := literalParser.ParseString("", input)
	if err != nil {
		return Value[E]{}, err
	}

	var combined int64
	for _, term := range lit.Terms {
		switch {
		case term.Name != nil:
			ord, ok := lk.byName[*term.Name]
			if !ok {
				return Value[E]{}, SingularValueError{
					Type:   lk.typ,
					Reason: fmt.Sprintf("%s has no member named %q", typeName(lk.typ), *term.Name),
				}.at(term.Pos)
			}
			combined |= ord
		case term.Value != nil:
			combined |= *term.Value
		}
	}

	if err := lk.check(combined); err != nil {
		var sve SingularValueError
		if errors.As(err, &sve) {
			return Value[E]{}, sve.at(lit.Pos)
		}
		return Value[E]{}, err
	}
	return Value[E]{member: E(combined)}, nil
}
