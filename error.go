package singular

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// UnsupportedTypeError reports that a generic type parameter cannot be used
// as an enumeration: no member set is available for it, or its declaration
// is incoherent. It is fatal to construction and not recoverable except by
// fixing the type argument or its declaration.
//
// Fields:
// - Type: The rejected enumeration type.
// - Reason: Why the type cannot be treated as a closed enumeration.
type UnsupportedTypeError struct {
	Type   reflect.Type
	Reason string
}

func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported flag type %s: %s", typeName(e.Type), e.Reason)
}

// SingularValueError reports that a supplied value is not exactly one
// defined member of its enumeration: an undefined integral value, a bitwise
// combination of several members, or a member declared invalid by the
// enumeration itself. It carries enough structure to diagnose the failure
// without parsing the message.
//
// Fields:
// - Type: The enumeration type the value was checked against.
// - Value: The offending raw value, projected to int64.
// - Members: The defined members the value's bits decompose into, when the
//   value is a combination of defined members.
// - Reason: The base message, already naming the enumeration type.
// - Pos: Where in a parsed literal the failure occurred. Only set by
//   ParseLiteral; a zero position means the error did not come from text.
type SingularValueError struct {
	Type    reflect.Type
	Value   int64
	Members []string
	Reason  string
	Pos     lexer.Position
}

func (e SingularValueError) Error() string {
	s := strings.Builder{}
	s.WriteString(e.Reason)
	if len(e.Members) > 0 {
		s.WriteString(" (combines ")
		s.WriteString(strings.Join(e.Members, "|"))
		s.WriteString(")")
	}
	if e.Pos.Line > 0 {
		s.WriteString(fmt.Sprintf(" at %d:%d", e.Pos.Line, e.Pos.Column))
	}
	return s.String()
}

// at returns a copy of the error annotated with a source position so that
// failures raised while resolving a parsed literal point into the text.
func (e SingularValueError) at(pos lexer.Position) SingularValueError {
	if e.Pos.Line == 0 {
		e.Pos = pos
	}
	return e
}
