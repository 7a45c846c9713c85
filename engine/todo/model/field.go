package model

import "encoding/json"

// Field distinguishes the three states an optional payload field can be
// in: absent from the payload, explicitly null, or carrying a value.
// A bare pointer cannot represent that distinction, and partial updates
// depend on it.
type Field[T any] struct {
	set   bool
	null  bool
	value T
}

// SomeField returns a present field carrying v.
func SomeField[T any](v T) Field[T] {
	return Field[T]{set: true, value: v}
}

// NullField returns a field explicitly set to null.
func NullField[T any]() Field[T] {
	return Field[T]{set: true, null: true}
}

// IsSet reports whether the field appeared in the payload at all.
func (f Field[T]) IsSet() bool { return f.set }

// IsNull reports whether the field was explicitly null.
func (f Field[T]) IsNull() bool { return f.set && f.null }

// Value returns the carried value; meaningful only when IsSet and not
// IsNull.
func (f Field[T]) Value() T { return f.value }

// UnmarshalJSON marks the field present. It is only invoked for keys
// that appear in the payload, so absent fields keep their zero state.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if string(data) == "null" {
		f.null = true
		return nil
	}
	return json.Unmarshal(data, &f.value)
}

// MarshalJSON renders null for null or absent fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}
