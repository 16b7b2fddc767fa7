package number

import (
	"golang.org/x/exp/constraints"

	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/internal/convert"
)

// Complex is the complex valued counterpart of [Number]. Complex values
// have no order, so only construction, assignment, + - * / and equality
// are defined for it. Streams use Go syntax, e.g. "(1+2i)".
type Complex[T constraints.Complex, Tag any, C Caps] struct {
	value T
}

func (z Complex[T, Tag, C]) Value() T {
	return z.value
}

func (z Complex[T, Tag, C]) Flags() flags.Set {
	var c C
	return c.Flags()
}

func (z Complex[T, Tag, C]) String() string {
	return convert.FormatComplex(z.value)
}

func (Complex[T, Tag, C]) isNumber() {}

// OfComplex returns a complex number of type N holding v.
func OfComplex[N interface{ Complex[T, Tag, C] }, T constraints.Complex, Tag any, C Constructible](v T) N {
	return N{value: v}
}

func AssignComplex[T constraints.Complex, Tag any, C Mutable](dst *Complex[T, Tag, C], src Complex[T, Tag, C]) {
	*dst = src
}

func NegComplex[T constraints.Complex, Tag any, C SpecificAdditive](z Complex[T, Tag, C]) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: -z.value}
}

func AddComplex[T constraints.Complex, Tag any, C SpecificAdditive](a, b Complex[T, Tag, C]) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: a.value + b.value}
}

func SubComplex[T constraints.Complex, Tag any, C SpecificAdditive](a, b Complex[T, Tag, C]) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: a.value - b.value}
}

func MulComplex[T constraints.Complex, Tag any, C SpecificMultiplicative](a, b Complex[T, Tag, C]) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: a.value * b.value}
}

func DivComplex[T constraints.Complex, Tag any, C SpecificDivisible](a, b Complex[T, Tag, C]) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: a.value / b.value}
}

// MulComplexValue scales z by a raw value, which may be real: an untyped
// constant such as 5.0 converts to T.
func MulComplexValue[T constraints.Complex, Tag any, C GeneralMultiplicative](z Complex[T, Tag, C], v T) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: z.value * v}
}

func DivComplexValue[T constraints.Complex, Tag any, C GeneralDivisible](z Complex[T, Tag, C], v T) Complex[T, Tag, C] {
	return Complex[T, Tag, C]{value: z.value / v}
}

func EqualComplex[T constraints.Complex, Tag any, C SpecificEquatable](a, b Complex[T, Tag, C]) bool {
	return a.value == b.value
}

func NotEqualComplex[T constraints.Complex, Tag any, C SpecificEquatable](a, b Complex[T, Tag, C]) bool {
	return a.value != b.value
}

// EqualComplexValue compares z with a raw value.
func EqualComplexValue[T constraints.Complex, Tag any, C Equatable](z Complex[T, Tag, C], v T) bool {
	return z.value == v
}
