package model

import (
	"encoding/json"
)

// Nullable is a JSON value that remembers whether it was present in the
// payload and whether it was an explicit null. PATCH requests use it for
// nullable columns so that "absent" and "clear" stay distinguishable.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// NullableOf returns a Nullable holding v.
func NullableOf[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Set: true}
}

// Null returns a Nullable that was explicitly set to null.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	n.Set = true

	if string(b) == "null" {
		var zero T
		n.Value = zero
		n.Null = true
		return nil
	}

	n.Null = false
	return json.Unmarshal(b, &n.Value)
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return []byte(`null`), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil for an absent or null value.
func (n Nullable[T]) Ptr() *T {
	if !n.Set || n.Null {
		return nil
	}
	v := n.Value
	return &v
}

// Interface exposes the held value to the validator; absent and null both
// yield nil so that omitempty rules skip them.
func (n Nullable[T]) Interface() any {
	if !n.Set || n.Null {
		return nil
	}
	return n.Value
}

func (n Nullable[T]) apply(dst **T) {
	if !n.Set {
		return
	}
	*dst = n.Ptr()
}
