package pkg

import (
	"bytes"
	"encoding/json"
)

// Nullable is a JSON field that tells apart an omitted key, an explicit null and a value.
// Only the zero Nullable is "omitted"; UnmarshalJSON is not called for absent keys.
type Nullable[T any] struct {
	Set   bool
	Null  bool
	Value T
}

func NewNullable[T any](v T) Nullable[T] {
	return Nullable[T]{Set: true, Value: v}
}

func NullOf[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		n.Null = true
		var zero T
		n.Value = zero
		return nil
	}
	n.Null = false
	return json.Unmarshal(data, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// HasValue reports whether a non-null value was supplied.
func (n Nullable[T]) HasValue() bool {
	return n.Set && !n.Null
}

// Ptr returns nil unless a non-null value was supplied.
func (n Nullable[T]) Ptr() *T {
	if !n.HasValue() {
		return nil
	}
	v := n.Value
	return &v
}
