package number

import (
	"cmp"

	"go.dw1.io/typebuilder/internal/convert"
)

func Equal[T Real, Tag any, C SpecificEquatable, P Policy[T]](a, b Number[T, Tag, C, P]) bool {
	return a.value == b.value
}

func NotEqual[T Real, Tag any, C SpecificEquatable, P Policy[T]](a, b Number[T, Tag, C, P]) bool {
	return a.value != b.value
}

// EqualValue compares a number against a bare value.
func EqualValue[T Real, Tag any, C Equatable, P Policy[T]](a Number[T, Tag, C, P], v T) bool {
	return a.value == v
}

func NotEqualValue[T Real, Tag any, C Equatable, P Policy[T]](a Number[T, Tag, C, P], v T) bool {
	return a.value != v
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b.
func Compare[T Real, Tag any, C SpecificOrderable, P Policy[T]](a, b Number[T, Tag, C, P]) int {
	return cmp.Compare(a.value, b.value)
}

func Less[T Real, Tag any, C SpecificOrderable, P Policy[T]](a, b Number[T, Tag, C, P]) bool {
	return a.value < b.value
}

func LessEqual[T Real, Tag any, C SpecificOrderable, P Policy[T]](a, b Number[T, Tag, C, P]) bool {
	return a.value <= b.value
}

func Greater[T Real, Tag any, C SpecificOrderable, P Policy[T]](a, b Number[T, Tag, C, P]) bool {
	return a.value > b.value
}

func GreaterEqual[T Real, Tag any, C SpecificOrderable, P Policy[T]](a, b Number[T, Tag, C, P]) bool {
	return a.value >= b.value
}

// CompareValue is like [Compare] against a bare value.
func CompareValue[T Real, Tag any, C Orderable, P Policy[T]](a Number[T, Tag, C, P], v T) int {
	return cmp.Compare(a.value, v)
}

func LessValue[T Real, Tag any, C Orderable, P Policy[T]](a Number[T, Tag, C, P], v T) bool {
	return a.value < v
}

func LessEqualValue[T Real, Tag any, C Orderable, P Policy[T]](a Number[T, Tag, C, P], v T) bool {
	return a.value <= v
}

func GreaterValue[T Real, Tag any, C Orderable, P Policy[T]](a Number[T, Tag, C, P], v T) bool {
	return a.value > v
}

func GreaterEqualValue[T Real, Tag any, C Orderable, P Policy[T]](a Number[T, Tag, C, P], v T) bool {
	return a.value >= v
}

// EqualNative compares two equivalent numbers of different representation
// types by value.
func EqualNative[T Real, Tag any, C interface {
	SpecificEquatable
	Native
}, P Policy[T], U Real, Q Policy[U]](a Number[T, Tag, C, P], b Number[U, Tag, C, Q]) bool {
	return convert.Compare(a.value, b.value) == 0
}

// CompareNative is like [Compare] for equivalent numbers of different
// representation types. Integers compare exactly; if either side is a
// floating-point type both sides compare as float64.
func CompareNative[T Real, Tag any, C interface {
	SpecificOrderable
	Native
}, P Policy[T], U Real, Q Policy[U]](a Number[T, Tag, C, P], b Number[U, Tag, C, Q]) int {
	return convert.Compare(a.value, b.value)
}
