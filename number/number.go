package number

import (
	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/internal/convert"
)

// Real is the set of supported representation types.
type Real = convert.Real

// Number is a value of representation type T made distinct by Tag, with
// the operations granted by C and the behaviour supplied by P.
//
// Tag is never instantiated. C and P are zero-size.
type Number[T Real, Tag any, C Caps, P Policy[T]] struct {
	value T
}

// Value returns the wrapped value.
func (n Number[T, Tag, C, P]) Value() T {
	return n.value
}

// Flags returns the flag set of the number's capability type.
func (n Number[T, Tag, C, P]) Flags() flags.Set {
	var c C
	return c.Flags()
}

// String formats n with its policy. See [Format].
func (n Number[T, Tag, C, P]) String() string {
	return formatValue[T, P](n.value)
}

func (Number[T, Tag, C, P]) isNumber() {}

// IsNumber reports whether v is an instantiation of [Number].
func IsNumber(v any) bool {
	_, ok := v.(interface{ isNumber() })
	return ok
}
