package safeint

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"go.dw1.io/typebuilder/internal/convert"
)

// Integer is the set of representation types of [Int].
type Integer = constraints.Integer

// Int is an integer of type T. Its value always lies within the range of T.
type Int[T Integer] struct {
	v T
}

// New returns v as an Int.
func New[T Integer](v T) Int[T] {
	return Int[T]{v: v}
}

// From converts v to an Int[T], failing with [KindRange] when v lies
// outside the range of T.
func From[T Integer, S Integer](v S) (Int[T], error) {
	t, err := convert.Integer[T](v)
	if err != nil {
		return Int[T]{}, &Error{
			Op:     "convert",
			Kind:   KindRange,
			Detail: fmt.Sprintf("%v does not fit %T", v, t),
			Cause:  err,
		}
	}

	return Int[T]{v: t}, nil
}

// Min returns the smallest value of T.
func Min[T Integer]() T {
	if !convert.IsSigned[T]() {
		return 0
	}

	return -Max[T]() - 1
}

// Max returns the largest value of T.
func Max[T Integer]() T {
	if !convert.IsSigned[T]() {
		var zero T
		return ^zero
	}

	return T(uint64(1)<<(convert.Bits[T]()-1) - 1)
}

// Value returns the wrapped integer.
func (x Int[T]) Value() T {
	return x.v
}

// Bool reports whether x is nonzero.
func (x Int[T]) Bool() bool {
	return x.v != 0
}

func (x Int[T]) String() string {
	return convert.Format(x.v)
}

func (x Int[T]) fail(op string, k Kind, y any) error {
	detail := fmt.Sprintf("%v %s %v", x.v, op, y)
	if y == nil {
		detail = fmt.Sprintf("%s%v", op, x.v)
	}

	return &Error{Op: op, Kind: k, Detail: fmt.Sprintf("%s on %T", detail, x.v)}
}

func (x Int[T]) Add(y Int[T]) (Int[T], error) {
	if k := addKind(x.v, y.v); k != "" {
		return x, x.fail("+", k, y.v)
	}

	return Int[T]{v: x.v + y.v}, nil
}

func (x Int[T]) Sub(y Int[T]) (Int[T], error) {
	if k := subKind(x.v, y.v); k != "" {
		return x, x.fail("-", k, y.v)
	}

	return Int[T]{v: x.v - y.v}, nil
}

func (x Int[T]) Mul(y Int[T]) (Int[T], error) {
	if k := mulKind(x.v, y.v); k != "" {
		return x, x.fail("*", k, y.v)
	}

	return Int[T]{v: x.v * y.v}, nil
}

func (x Int[T]) Div(y Int[T]) (Int[T], error) {
	if k := divKind(x.v, y.v); k != "" {
		return x, x.fail("/", k, y.v)
	}

	return Int[T]{v: x.v / y.v}, nil
}

// Mod returns the remainder of x / y, which has the sign of x.
func (x Int[T]) Mod(y Int[T]) (Int[T], error) {
	if y.v == 0 {
		return x, x.fail("%", KindDomain, y.v)
	}

	if convert.IsSigned[T]() && y.v == ^T(0) {
		return Int[T]{}, nil
	}

	return Int[T]{v: x.v % y.v}, nil
}

// The assignment forms store the result in x only on success.

func (x *Int[T]) AddAssign(y Int[T]) error { return x.commit(x.Add(y)) }
func (x *Int[T]) SubAssign(y Int[T]) error { return x.commit(x.Sub(y)) }
func (x *Int[T]) MulAssign(y Int[T]) error { return x.commit(x.Mul(y)) }
func (x *Int[T]) DivAssign(y Int[T]) error { return x.commit(x.Div(y)) }
func (x *Int[T]) ModAssign(y Int[T]) error { return x.commit(x.Mod(y)) }

func (x *Int[T]) commit(r Int[T], err error) error {
	if err != nil {
		return err
	}

	*x = r
	return nil
}

// Inc increments x and returns the new value. It fails at the maximum of T.
func (x *Int[T]) Inc() (Int[T], error) {
	if x.v == Max[T]() {
		return *x, x.fail("++", KindOverflow, nil)
	}

	x.v++
	return *x, nil
}

// Dec decrements x and returns the new value. It fails at the minimum of T.
func (x *Int[T]) Dec() (Int[T], error) {
	if x.v == Min[T]() {
		return *x, x.fail("--", KindUnderflow, nil)
	}

	x.v--
	return *x, nil
}

// PostInc increments x and returns the value it held before.
func (x *Int[T]) PostInc() (Int[T], error) {
	old := *x
	if _, err := x.Inc(); err != nil {
		return old, err
	}

	return old, nil
}

// PostDec decrements x and returns the value it held before.
func (x *Int[T]) PostDec() (Int[T], error) {
	old := *x
	if _, err := x.Dec(); err != nil {
		return old, err
	}

	return old, nil
}

// Neg returns -x. For signed T it fails on the minimum, which has no
// positive counterpart; for unsigned T it fails on every nonzero value. Use
// [NegateUint8] and its siblings to negate an unsigned value into the
// signed type of the same width.
func (x Int[T]) Neg() (Int[T], error) {
	switch {
	case convert.IsSigned[T]() && x.v == Min[T]():
		return x, x.fail("-", KindOverflow, nil)
	case !convert.IsSigned[T]() && x.v != 0:
		return x, x.fail("-", KindUnderflow, nil)
	}

	return Int[T]{v: -x.v}, nil
}

// Negate converts x to the signed type S of the same width and negates it.
func Negate[S, T Integer](x Int[T]) (Int[S], error) {
	if !convert.IsSigned[S]() || convert.Bits[S]() != convert.Bits[T]() {
		var s S
		return Int[S]{}, &Error{
			Op:     "-",
			Kind:   KindCommonType,
			Detail: fmt.Sprintf("%T is not the signed type of %T", s, x.v),
		}
	}

	s, err := From[S](x.v)
	if err != nil {
		return s, err
	}

	return s.Neg()
}

func NegateUint8(x Int[uint8]) (Int[int8], error)    { return Negate[int8](x) }
func NegateUint16(x Int[uint16]) (Int[int16], error) { return Negate[int16](x) }
func NegateUint32(x Int[uint32]) (Int[int32], error) { return Negate[int32](x) }
func NegateUint64(x Int[uint64]) (Int[int64], error) { return Negate[int64](x) }
func NegateUint(x Int[uint]) (Int[int], error)       { return Negate[int](x) }

func (x Int[T]) Or(y Int[T]) Int[T]  { return Int[T]{v: x.v | y.v} }
func (x Int[T]) And(y Int[T]) Int[T] { return Int[T]{v: x.v & y.v} }
func (x Int[T]) Xor(y Int[T]) Int[T] { return Int[T]{v: x.v ^ y.v} }
func (x Int[T]) Not() Int[T]         { return Int[T]{v: ^x.v} }

// Shl returns x << n. It fails when n is negative or not less than the
// width of T, and when x is negative.
func (x Int[T]) Shl(n int) (Int[T], error) {
	if err := x.checkShift("<<", n); err != nil {
		return x, err
	}

	return Int[T]{v: x.v << n}, nil
}

// Shr returns x >> n under the same conditions as [Int.Shl].
func (x Int[T]) Shr(n int) (Int[T], error) {
	if err := x.checkShift(">>", n); err != nil {
		return x, err
	}

	return Int[T]{v: x.v >> n}, nil
}

func (x *Int[T]) ShlAssign(n int) error { return x.commit(x.Shl(n)) }
func (x *Int[T]) ShrAssign(n int) error { return x.commit(x.Shr(n)) }

func (x Int[T]) checkShift(op string, n int) error {
	switch {
	case n < 0:
		return x.fail(op, KindDomain, n)
	case n >= convert.Bits[T]():
		return x.fail(op, KindDomain, n)
	case x.v < 0:
		return x.fail(op, KindDomain, n)
	}

	return nil
}
