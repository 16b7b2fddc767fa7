package safeint

import (
	"fmt"

	"go.dw1.io/typebuilder/internal/convert"
)

// IsShared reports whether C is the shared type of L and R: as wide as the
// wider of the two and signed if either is.
func IsShared[C, L, R Integer]() bool {
	bits := max(convert.Bits[L](), convert.Bits[R]())
	signed := convert.IsSigned[L]() || convert.IsSigned[R]()

	return convert.Bits[C]() == bits && convert.IsSigned[C]() == signed
}

// promote converts both operands to the shared type C.
func promote[C, L, R Integer](op string, l Int[L], r Int[R]) (Int[C], Int[C], error) {
	if !IsShared[C, L, R]() {
		var c C
		return Int[C]{}, Int[C]{}, &Error{
			Op:     op,
			Kind:   KindCommonType,
			Detail: fmt.Sprintf("%T is not the shared type of %T and %T", c, l.v, r.v),
		}
	}

	lc, err := From[C](l.v)
	if err != nil {
		return lc, lc, err
	}

	rc, err := From[C](r.v)
	if err != nil {
		return lc, rc, err
	}

	return lc, rc, nil
}

// Add returns l + r in the shared type C of L and R. Both operands are
// range checked on the way into C.
func Add[C, L, R Integer](l Int[L], r Int[R]) (Int[C], error) {
	lc, rc, err := promote[C]("+", l, r)
	if err != nil {
		return Int[C]{}, err
	}

	return lc.Add(rc)
}

// Sub is the subtraction counterpart of [Add].
func Sub[C, L, R Integer](l Int[L], r Int[R]) (Int[C], error) {
	lc, rc, err := promote[C]("-", l, r)
	if err != nil {
		return Int[C]{}, err
	}

	return lc.Sub(rc)
}

// Mul is the multiplication counterpart of [Add].
func Mul[C, L, R Integer](l Int[L], r Int[R]) (Int[C], error) {
	lc, rc, err := promote[C]("*", l, r)
	if err != nil {
		return Int[C]{}, err
	}

	return lc.Mul(rc)
}

// Div is the division counterpart of [Add].
func Div[C, L, R Integer](l Int[L], r Int[R]) (Int[C], error) {
	lc, rc, err := promote[C]("/", l, r)
	if err != nil {
		return Int[C]{}, err
	}

	return lc.Div(rc)
}

// Mod is the remainder counterpart of [Add].
func Mod[C, L, R Integer](l Int[L], r Int[R]) (Int[C], error) {
	lc, rc, err := promote[C]("%", l, r)
	if err != nil {
		return Int[C]{}, err
	}

	return lc.Mod(rc)
}

// Compare compares the values of two Ints of any types. An unsigned value
// too large for a signed type compares greater than every value of it.
func Compare[L, R Integer](l Int[L], r Int[R]) int {
	return convert.Compare(l.v, r.v)
}

func Equal[L, R Integer](l Int[L], r Int[R]) bool        { return Compare(l, r) == 0 }
func NotEqual[L, R Integer](l Int[L], r Int[R]) bool     { return Compare(l, r) != 0 }
func Less[L, R Integer](l Int[L], r Int[R]) bool         { return Compare(l, r) < 0 }
func LessEqual[L, R Integer](l Int[L], r Int[R]) bool    { return Compare(l, r) <= 0 }
func Greater[L, R Integer](l Int[L], r Int[R]) bool      { return Compare(l, r) > 0 }
func GreaterEqual[L, R Integer](l Int[L], r Int[R]) bool { return Compare(l, r) >= 0 }
