package number

import (
	"golang.org/x/exp/constraints"

	"go.dw1.io/typebuilder/internal/convert"
)

type op uint8

const (
	opAdd op = iota
	opSub
	opMul
	opDiv
)

// mixed applies o to a value and a scalar of another representation type.
// The operation runs in float64 when either side is a floating-point type.
// Integer operands are combined in uint64: sums, differences and products
// are exact modulo 2^64, quotients are taken on magnitudes and signed
// afterwards. The result is converted back to T.
func mixed[T, S Real](o op, v T, s S) T {
	if convert.IsFloat[T]() || convert.IsFloat[S]() {
		return T(apply(o, float64(v), float64(s)))
	}

	if o != opDiv {
		return T(apply(o, uint64(v), uint64(s)))
	}

	a, aNeg := magnitude(v)
	b, bNeg := magnitude(s)
	q := a / b
	if aNeg != bNeg {
		q = -q
	}

	return T(q)
}

// magnitude returns |v| and whether v is negative.
func magnitude[T Real](v T) (uint64, bool) {
	if v < 0 {
		return -uint64(v), true
	}

	return uint64(v), false
}

func apply[V float64 | uint64](o op, a, b V) V {
	switch o {
	case opAdd:
		return a + b
	case opSub:
		return a - b
	case opMul:
		return a * b
	}

	return a / b
}

// AddValue adds a scalar of any representation type. The result keeps a's
// type.
func AddValue[T Real, Tag any, C GeneralAdditive, P Policy[T], S Real](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opAdd, a.value, s)}
}

func SubValue[T Real, Tag any, C GeneralAdditive, P Policy[T], S Real](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opSub, a.value, s)}
}

func AddAssignValue[T Real, Tag any, C interface {
	Mutable
	GeneralAdditive
}, P Policy[T], S Real](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opAdd, dst.value, s)
}

func SubAssignValue[T Real, Tag any, C interface {
	Mutable
	GeneralAdditive
}, P Policy[T], S Real](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opSub, dst.value, s)
}

// MulInt multiplies by an integer scalar.
func MulInt[T Real, Tag any, C IntegerMultiplicative, P Policy[T], S constraints.Integer](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opMul, a.value, s)}
}

// DivInt divides by an integer scalar.
func DivInt[T Real, Tag any, C IntegerDivisible, P Policy[T], S constraints.Integer](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opDiv, a.value, s)}
}

// MulFloat multiplies by a floating-point scalar.
func MulFloat[T Real, Tag any, C FloatMultiplicative, P Policy[T], S constraints.Float](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opMul, a.value, s)}
}

// DivFloat divides by a floating-point scalar.
func DivFloat[T Real, Tag any, C FloatDivisible, P Policy[T], S constraints.Float](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opDiv, a.value, s)}
}

// MulBase multiplies by a scalar of the representation type.
func MulBase[T Real, Tag any, C BaseMultiplicative, P Policy[T]](a Number[T, Tag, C, P], s T) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value * s}
}

// DivBase divides by a scalar of the representation type.
func DivBase[T Real, Tag any, C BaseDivisible, P Policy[T]](a Number[T, Tag, C, P], s T) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value / s}
}

// MulScalar multiplies by a scalar of any representation type.
func MulScalar[T Real, Tag any, C GeneralMultiplicative, P Policy[T], S Real](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opMul, a.value, s)}
}

// DivScalar divides by a scalar of any representation type.
func DivScalar[T Real, Tag any, C GeneralDivisible, P Policy[T], S Real](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: mixed(opDiv, a.value, s)}
}

func MulAssignInt[T Real, Tag any, C interface {
	Mutable
	IntegerMultiplicative
}, P Policy[T], S constraints.Integer](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opMul, dst.value, s)
}

func DivAssignInt[T Real, Tag any, C interface {
	Mutable
	IntegerDivisible
}, P Policy[T], S constraints.Integer](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opDiv, dst.value, s)
}

func MulAssignFloat[T Real, Tag any, C interface {
	Mutable
	FloatMultiplicative
}, P Policy[T], S constraints.Float](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opMul, dst.value, s)
}

func DivAssignFloat[T Real, Tag any, C interface {
	Mutable
	FloatDivisible
}, P Policy[T], S constraints.Float](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opDiv, dst.value, s)
}

func MulAssignBase[T Real, Tag any, C interface {
	Mutable
	BaseMultiplicative
}, P Policy[T]](dst *Number[T, Tag, C, P], s T) {
	dst.value *= s
}

func DivAssignBase[T Real, Tag any, C interface {
	Mutable
	BaseDivisible
}, P Policy[T]](dst *Number[T, Tag, C, P], s T) {
	dst.value /= s
}

func MulAssignScalar[T Real, Tag any, C interface {
	Mutable
	GeneralMultiplicative
}, P Policy[T], S Real](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opMul, dst.value, s)
}

func DivAssignScalar[T Real, Tag any, C interface {
	Mutable
	GeneralDivisible
}, P Policy[T], S Real](dst *Number[T, Tag, C, P], s S) {
	dst.value = mixed(opDiv, dst.value, s)
}

// ScalarAdd returns s + n. S is a bare representation type, so two numbers
// never match.
func ScalarAdd[T Real, Tag any, C GeneralAdditive, P Policy[T], S Real](s S, n Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return AddValue(n, s)
}

// ScalarMulInt returns s * n for an integer scalar.
func ScalarMulInt[T Real, Tag any, C IntegerMultiplicative, P Policy[T], S constraints.Integer](s S, n Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return MulInt(n, s)
}

// ScalarMulFloat returns s * n for a floating-point scalar.
func ScalarMulFloat[T Real, Tag any, C FloatMultiplicative, P Policy[T], S constraints.Float](s S, n Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return MulFloat(n, s)
}

// ScalarMulBase returns s * n for a scalar of the representation type.
func ScalarMulBase[T Real, Tag any, C BaseMultiplicative, P Policy[T]](s T, n Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return MulBase(n, s)
}

// ScalarMul returns s * n for a scalar of any representation type.
func ScalarMul[T Real, Tag any, C GeneralMultiplicative, P Policy[T], S Real](s S, n Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return MulScalar(n, s)
}
