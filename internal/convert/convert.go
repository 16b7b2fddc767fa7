package convert

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"unsafe"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
	"golang.org/x/exp/constraints"

	"go.dw1.io/typebuilder/internal/pattern"
)

// ErrSyntax is returned by [Parse] for text that is not a decimal number.
var ErrSyntax = errors.New("not a decimal number")

// Real is the set of representation types understood by this package.
type Real interface {
	constraints.Integer | constraints.Float
}

// Format renders v the way the representation type prints by default.
func Format[T Real](v T) string {
	return cast.ToString(v)
}

var (
	decimalInteger = pattern.MustCompile(`^([-+]?)0*([0-9]+)$`)
	decimalFloat   = pattern.MustCompile(`^[-+]?(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][-+]?[0-9]+)?$`)
)

// Parse reads text as a decimal value of type T. Integer results are range
// checked. Base prefixes, special float values and digit separators are
// rejected.
func Parse[T Real](text string) (T, error) {
	var zero T

	if IsFloat[T]() {
		if !decimalFloat.MatchString(text) {
			return zero, fmt.Errorf("%w: %q", ErrSyntax, text)
		}
		f, err := cast.ToFloat64E(text)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	}

	m := decimalInteger.FindStringSubmatch(text)
	if m == nil {
		return zero, fmt.Errorf("%w: %q", ErrSyntax, text)
	}
	// leading zeros would select octal in cast
	digits := m[1] + m[2]

	if IsSigned[T]() {
		v, err := cast.ToInt64E(digits)
		if err != nil {
			return zero, err
		}
		return fit[T](v)
	}

	if m[1] == "-" && m[2] != "0" {
		return zero, fmt.Errorf("%w: %q is negative", safemath.ErrTruncation, text)
	}
	v, err := cast.ToUint64E(m[2])
	if err != nil {
		return zero, err
	}
	return fit[T](v)
}

// fit converts v to T when T holds v exactly.
func fit[T, S Real](v S) (T, error) {
	t := T(v)
	if Compare(t, v) != 0 {
		var zero T
		return zero, fmt.Errorf("%w: %v does not fit %T", safemath.ErrTruncation, v, t)
	}

	return t, nil
}

// Integer converts v to the integer type T, failing when v does not fit.
// Named integer types are accepted on both sides.
func Integer[T, S constraints.Integer](v S) (T, error) {
	return safemath.Convert[T](v)
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Real]() bool {
	var one T = 1
	return one/2 != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Real]() bool {
	var zero T
	return zero-1 < zero
}

// FormatComplex renders v in Go syntax, e.g. "(1+2i)", using the shortest
// digits that round-trip at T's precision.
func FormatComplex[T constraints.Complex](v T) string {
	var zero T
	return strconv.FormatComplex(complex128(v), 'g', -1, int(unsafe.Sizeof(zero))*8)
}

// Bits returns the width of T in bits.
func Bits[T Real]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// Compare compares two values of possibly different representation types by
// their mathematical value. Mixing in a floating-point type compares as
// float64.
func Compare[T, U Real](a T, b U) int {
	if IsFloat[T]() || IsFloat[U]() {
		return cmp.Compare(float64(a), float64(b))
	}

	switch {
	case a < 0 && b >= 0:
		return -1
	case a >= 0 && b < 0:
		return 1
	case a < 0:
		return cmp.Compare(int64(a), int64(b))
	}

	return cmp.Compare(uint64(a), uint64(b))
}
