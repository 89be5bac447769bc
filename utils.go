package singular

import (
	"encoding/binary"
	"hash/fnv"
	"reflect"
)

// typeName returns the name of an enumeration type for diagnostics. It is
// nil-safe so error values constructed from a zero Value still render.
func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// typeIdentity returns a stable identity string for a type. The package
// path is used rather than reflect.Type.String so that identically named
// types from different packages stay distinct.
func typeIdentity(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return t.String()
	}
	return t.PkgPath() + "." + t.Name()
}

// hashMember hashes an enumeration member together with its type identity,
// so that equal ordinals of different enumerations do not collide. FNV-1a is
// used because the hash only needs to be fast and stable, not
// cryptographic.
func hashMember(t reflect.Type, ordinal int64) uint64 {
	h := fnv.New64a()
	h.Write([]byte(typeIdentity(t)))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(ordinal))
	h.Write(buf[:])
	return h.Sum64()
}
