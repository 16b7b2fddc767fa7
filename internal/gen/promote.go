package gen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPromotion is returned for representation types the promotion table
// does not know.
var ErrPromotion = errors.New("no promotion")

type kind struct {
	bits   int
	signed bool
	float  bool
}

// kinds assumes a 64-bit target for int and uint.
var kinds = map[string]kind{
	"int":     {64, true, false},
	"int8":    {8, true, false},
	"int16":   {16, true, false},
	"int32":   {32, true, false},
	"int64":   {64, true, false},
	"uint":    {64, false, false},
	"uint8":   {8, false, false},
	"uint16":  {16, false, false},
	"uint32":  {32, false, false},
	"uint64":  {64, false, false},
	"float32": {32, true, true},
	"float64": {64, true, true},
}

// aliases maps the predeclared alias names to the types they stand for.
var aliases = map[string]string{
	"byte": "uint8",
	"rune": "int32",
}

func lookupKind(name string) (string, kind, error) {
	if a, ok := aliases[name]; ok {
		name = a
	}

	k, ok := kinds[name]
	if !ok {
		if strings.HasPrefix(name, "complex") {
			return "", kind{}, fmt.Errorf("%w: complex representation %q is not supported", ErrPromotion, name)
		}
		return "", kind{}, fmt.Errorf("%w: unknown representation %q", ErrPromotion, name)
	}

	return name, k, nil
}

// Promote returns the type the result of a binary operation on a and b has:
// a floating-point operand makes the result float64, or float32 when both
// are float32; otherwise the wider integer wins and at equal width an
// unsigned operand makes the result unsigned. Integers narrower than int
// are not widened to int.
func Promote(a, b string) (string, error) {
	an, ak, err := lookupKind(a)
	if err != nil {
		return "", err
	}
	bn, bk, err := lookupKind(b)
	if err != nil {
		return "", err
	}

	switch {
	case an == bn:
		return an, nil
	case ak.float || bk.float:
		if an == "float32" && bn == "float32" {
			return "float32", nil
		}
		return "float64", nil
	case ak.bits != bk.bits:
		if ak.bits > bk.bits {
			return an, nil
		}
		return bn, nil
	case ak.signed != bk.signed:
		if ak.signed {
			return bn, nil
		}
		return an, nil
	}

	// int and int64, uint and uint64: prefer the sized name.
	if an == "int" || an == "uint" {
		return bn, nil
	}
	return an, nil
}

func isInteger(name string) bool {
	_, k, err := lookupKind(name)
	return err == nil && !k.float
}
