package fixture

import (
	"fmt"

	"github.com/oapi-codegen/nullable"
)

// Optional is a tri-state fixture field. The zero value is unset, which is what a missing
// JSON key decodes to. An explicit null decodes to the null state, which is also not
// asserted but stays distinguishable from a missing key.
type Optional[T any] struct {
	n nullable.Nullable[T]
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{n: nullable.NewNullableWithValue(v)}
}

// Null returns an Optional in the explicit-null state.
func Null[T any]() Optional[T] {
	return Optional[T]{n: nullable.NewNullNullable[T]()}
}

// Get returns the value and whether it is set.
func (o Optional[T]) Get() (T, bool) {
	v, err := o.n.Get()
	return v, err == nil
}

// IsSet reports whether the field carries a value to assert.
func (o Optional[T]) IsSet() bool { return o.n.IsSpecified() && !o.n.IsNull() }

// IsNull reports whether the fixture wrote an explicit null.
func (o Optional[T]) IsNull() bool { return o.n.IsNull() }

// IsUnset reports whether the key was missing from the fixture.
func (o Optional[T]) IsUnset() bool { return !o.n.IsSpecified() }

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	return o.n.UnmarshalJSON(data)
}

// MarshalJSON implements json.Marshaler. Unset fields are written as null.
func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.IsSet() {
		return []byte("null"), nil
	}

	return o.n.MarshalJSON()
}

func (o Optional[T]) String() string {
	switch {
	case o.IsSet():
		v, _ := o.Get()
		return fmt.Sprintf("%v", v)
	case o.IsNull():
		return "null"
	default:
		return "unset"
	}
}
