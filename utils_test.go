package singular

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_typeName(t *testing.T) {
	assert.Equal(t, "singular.color", typeName(reflect.TypeOf(Red)))
	assert.Equal(t, "int", typeName(reflect.TypeOf(0)))
	assert.Equal(t, "<nil>", typeName(nil))
}

func Test_typeIdentity(t *testing.T) {
	identity := typeIdentity(reflect.TypeOf(Red))
	assert.Equal(t, "github.com/gburgyan/go-singular.color", identity)

	// Predeclared types have no package path and fall back to the plain
	// name.
	assert.Equal(t, "int", typeIdentity(reflect.TypeOf(0)))
}

func Test_hashMember(t *testing.T) {
	colorType := reflect.TypeOf(Red)
	statusType := reflect.TypeOf(StatusUnknown)

	assert.Equal(t, hashMember(colorType, 1), hashMember(colorType, 1))
	assert.NotEqual(t, hashMember(colorType, 1), hashMember(colorType, 2))

	// The type identity participates, so equal ordinals of different types
	// hash apart.
	assert.NotEqual(t, hashMember(colorType, 1), hashMember(statusType, 1))
}
