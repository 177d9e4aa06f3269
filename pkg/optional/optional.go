// Package optional provides an explicit present/absent wrapper used for
// partial updates: an absent value means "leave unchanged".
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds either a T or nothing. The zero value is empty.
type Value[T any] struct {
	v       T
	present bool
}

// Of returns a present Value.
func Of[T any](v T) Value[T] {
	return Value[T]{v: v, present: true}
}

// Empty returns an absent Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns Of(*p) for a non-nil pointer and Empty otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return Empty[T]()
	}
	return Of(*p)
}

// Get returns the held value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.v, o.present
}

// IsPresent reports whether a value is held.
func (o Value[T]) IsPresent() bool {
	return o.present
}

// OrElse returns the held value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if o.present {
		return o.v
	}
	return def
}

// UnmarshalJSON decodes a JSON value. A JSON null leaves the Value empty;
// a missing field never calls this method and stays empty as well.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Empty[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Of(v)
	return nil
}

// MarshalJSON encodes the held value, or null when absent.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.v)
}
