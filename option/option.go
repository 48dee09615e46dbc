package option

import "encoding/json"

type Option[T any] struct {
	value  T
	isSome bool
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func Some[T any](value T) Option[T] {
	return Option[T]{value: value, isSome: true}
}

func (x Option[T]) IsSome() bool {
	return x.isSome
}

func (x Option[T]) IsNone() bool {
	return !x.isSome
}

func (x Option[T]) Get() T {
	if !x.isSome {
		panic("option is none")
	}
	return x.value
}

// Unpack returns the value and whether it is present.
func (x Option[T]) Unpack() (T, bool) {
	return x.value, x.isSome
}

// Ptr returns a pointer to a copy of the value, or nil for none.
func (x Option[T]) Ptr() *T {
	if !x.isSome {
		return nil
	}
	v := x.value
	return &v
}

func (x Option[T]) MarshalJSON() ([]byte, error) {
	if !x.isSome {
		return []byte("null"), nil
	}
	return json.Marshal(x.value)
}
