package singular

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Enumeration fixtures shared across the package tests.

// color is a plain sequential enumeration with a defined zero member.
type color int

const (
	Red color = iota
	Green
	Blue
)

func (c color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	}
	return fmt.Sprintf("color(%d)", int(c))
}

func (color) EnumValues() []color {
	return []color{Red, Green, Blue}
}

// permission is bit-valued with no zero member and no declared combinations.
type permission int

const (
	Read permission = 1 << iota
	Write
	Execute
)

func (p permission) String() string {
	switch p {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Execute:
		return "Execute"
	}
	return fmt.Sprintf("permission(%d)", int(p))
}

func (permission) EnumValues() []permission {
	return []permission{Read, Write, Execute}
}

// status declares its zero member as an invalid sentinel.
type status int

const (
	StatusUnknown status = iota
	StatusActive
	StatusClosed
)

func (s status) String() string {
	switch s {
	case StatusUnknown:
		return "Unknown"
	case StatusActive:
		return "Active"
	case StatusClosed:
		return "Closed"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

func (status) EnumValues() []status {
	return []status{StatusUnknown, StatusActive, StatusClosed}
}

func (s status) IsValid() bool {
	return s != StatusUnknown
}

func TestNew(t *testing.T) {
	v, err := New(Green)
	require.NoError(t, err)

	assert.Equal(t, Green, v.Member())
	assert.Equal(t, int64(1), v.Ordinal())
	assert.Equal(t, "Green", v.String())
	assert.Equal(t, reflect.TypeOf(Green), v.Type())
}

func TestNew_UndefinedValue(t *testing.T) {
	_, err := New(color(5))
	require.Error(t, err)
	assert.Equal(t, "value 5 is not a defined member of singular.color", err.Error())

	var sve SingularValueError
	require.True(t, errors.As(err, &sve))
	assert.Equal(t, int64(5), sve.Value)
	assert.Equal(t, reflect.TypeOf(color(0)), sve.Type)
	assert.Empty(t, sve.Members)
}

func TestNew_CombinedMembers(t *testing.T) {
	_, err := New(Read | Write)
	require.Error(t, err)
	assert.Equal(t, "value 3 is not a defined member of singular.permission (combines Read|Write)", err.Error())

	var sve SingularValueError
	require.True(t, errors.As(err, &sve))
	assert.Equal(t, []string{"Read", "Write"}, sve.Members)
}

func TestNew_InvalidSentinel(t *testing.T) {
	_, err := New(StatusUnknown)
	require.Error(t, err)
	assert.Equal(t, "member Unknown of singular.status is declared invalid", err.Error())

	v, err := New(StatusActive)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, v.Member())
}

func TestOf(t *testing.T) {
	v, err := Of(Blue)
	require.NoError(t, err)
	assert.Equal(t, Blue, v.Member())
}

func TestDefault(t *testing.T) {
	v, err := Default[color]()
	require.NoError(t, err)
	assert.Equal(t, Red, v.Member())
}

func TestDefault_UndefinedZero(t *testing.T) {
	_, err := Default[permission]()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "value 0 is not a defined member")
}

func TestDefault_InvalidZero(t *testing.T) {
	_, err := Default[status]()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declared invalid")
}

func TestMust(t *testing.T) {
	v := Must(New(Blue))
	assert.Equal(t, Blue, v.Member())

	assert.Panics(t, func() {
		Must(New(color(42)))
	})
}

func TestValue_Roundtrip(t *testing.T) {
	for _, m := range (color(0)).EnumValues() {
		v, err := New(m)
		require.NoError(t, err)
		assert.Equal(t, m, v.Member())
		assert.Equal(t, int64(m), v.Ordinal())
		assert.Equal(t, m.String(), v.String())
		assert.Equal(t, reflect.TypeOf(m), v.Type())
	}
}

func TestValue_StringFallback(t *testing.T) {
	// The zero Value of an enumeration without a zero member has no name to
	// resolve.
	var v Value[permission]
	assert.Equal(t, "permission(0)", v.String())
}

func TestValue_Compare(t *testing.T) {
	red := Must(New(Red))
	green := Must(New(Green))
	blue := Must(New(Blue))

	assert.Equal(t, -1, red.Compare(green))
	assert.Equal(t, 0, green.Compare(green))
	assert.Equal(t, 1, blue.Compare(green))

	// The order chains transitively along the underlying values.
	assert.Equal(t, -1, red.Compare(blue))
	assert.Equal(t, 1, blue.Compare(red))
}

func TestValue_Equal(t *testing.T) {
	green := Must(New(Green))
	active := Must(New(StatusActive))

	assert.True(t, green.Equal(Must(New(Green))))
	assert.False(t, green.Equal(Must(New(Blue))))

	// Equal ordinals of different enumerations are not equal values.
	assert.Equal(t, green.Ordinal(), active.Ordinal())
	assert.False(t, green.Equal(active))
	assert.False(t, green.Equal(nil))
}

func TestValue_Hash(t *testing.T) {
	green := Must(New(Green))
	active := Must(New(StatusActive))

	assert.Equal(t, green.Hash(), Must(New(Green)).Hash())
	assert.NotEqual(t, green.Hash(), Must(New(Blue)).Hash())

	// Equal ordinals of different enumerations hash apart.
	assert.NotEqual(t, green.Hash(), active.Hash())
}

func TestValue_MapKey(t *testing.T) {
	counts := map[Value[color]]int{}
	counts[Must(New(Red))]++
	counts[Must(New(Red))]++
	counts[Must(New(Blue))]++

	assert.Equal(t, 2, counts[Must(New(Red))])
	assert.Equal(t, 1, counts[Must(New(Blue))])
}
