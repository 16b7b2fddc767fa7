package flags

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.dw1.io/typebuilder/internal/pattern"
)

// ErrUnknownFlag is returned by [Parse] for names that are not part of the
// vocabulary.
var ErrUnknownFlag = errors.New("unknown flag")

type namedSet struct {
	name string
	set  Set
}

// names is ordered from the widest umbrella to the single bits so that
// String prefers the shortest rendering.
var names = []namedSet{
	{"ENABLE_ALL", ENABLE_ALL},
	{"ENABLE_ALL_MATH", ENABLE_ALL_MATH},
	{"ENABLE_ALL_SPECIFIC_MATH", ENABLE_ALL_SPECIFIC_MATH},
	{"DEFAULT_SETTINGS", DEFAULT_SETTINGS},
	{"ENABLE_ORDERING", ENABLE_ORDERING},
	{"ENABLE_EQUALITY_CHECK", ENABLE_EQUALITY_CHECK},
	{"ENABLE_SPECIFIC_ORDERING", ENABLE_SPECIFIC_ORDERING},
	{"ENABLE_GENERAL_MULT_DIV", ENABLE_GENERAL_MULT_DIV},
	{"ENABLE_FLOAT_MULT_DIV", ENABLE_FLOAT_MULT_DIV},
	{"ENABLE_INTEGER_MULT_DIV", ENABLE_INTEGER_MULT_DIV},
	{"ENABLE_BASE_MULT_DIV", ENABLE_BASE_MULT_DIV},
	{"ENABLE_FLOAT_MULTIPLICATION", ENABLE_FLOAT_MULTIPLICATION},
	{"ENABLE_FLOAT_DIVISION", ENABLE_FLOAT_DIVISION},
	{"ENABLE_MODULO", ENABLE_MODULO},
	{"ENABLE_GENERAL_CONSTRUCTION", ENABLE_GENERAL_CONSTRUCTION},
	{"ENABLE_DEFAULT_CONSTRUCTION", ENABLE_DEFAULT_CONSTRUCTION},
	{"ENABLE_LATE_ASSIGNMENT", ENABLE_LATE_ASSIGNMENT},
	{"ENABLE_SPECIFIC_EQUALITY_CHECK", ENABLE_SPECIFIC_EQUALITY_CHECK},
	{"ENABLE_INC_DEC", ENABLE_INC_DEC},
	{"ENABLE_SPECIFIC_PLUS_MINUS", ENABLE_SPECIFIC_PLUS_MINUS},
	{"ENABLE_SPECIFIC_MULTIPLICATION", ENABLE_SPECIFIC_MULTIPLICATION},
	{"ENABLE_SPECIFIC_DIVISION", ENABLE_SPECIFIC_DIVISION},
	{"ENABLE_INTEGER_MULTIPLICATION", ENABLE_INTEGER_MULTIPLICATION},
	{"ENABLE_INTEGER_DIVISION", ENABLE_INTEGER_DIVISION},
	{"ENABLE_BASE_MULTIPLICATION", ENABLE_BASE_MULTIPLICATION},
	{"ENABLE_BASE_DIVISION", ENABLE_BASE_DIVISION},
	{"ENABLE_GENERAL_PLUS_MINUS", ENABLE_GENERAL_PLUS_MINUS},
	{"ENABLE_GENERAL_MULTIPLICATION", ENABLE_GENERAL_MULTIPLICATION},
	{"ENABLE_GENERAL_DIVISION", ENABLE_GENERAL_DIVISION},
	{"ENABLE_SPECIFIC_MODULO", ENABLE_SPECIFIC_MODULO},
	{"ENABLE_NATIVE_TYPING", ENABLE_NATIVE_TYPING},
	{"DISABLE_CONSTRUCTION", DISABLE_CONSTRUCTION},
	{"DISABLE_MUTABILITY", DISABLE_MUTABILITY},
}

var numeric = pattern.MustCompile(`^(?:0[xX]([0-9a-fA-F]+)|([0-9]+))$`)

// Lookup returns the constant registered under name.
func Lookup(name string) (Set, bool) {
	for _, n := range names {
		if n.name == name {
			return n.set, true
		}
	}

	return 0, false
}

// String renders s as a "|"-joined list of named constants. Bits that no
// constant covers are rendered as one hexadecimal literal.
func (s Set) String() string {
	if s == 0 {
		return "0"
	}

	var (
		parts   []string
		covered Set
	)
	for _, n := range names {
		if s.Has(n.set) && n.set&^covered != 0 {
			parts = append(parts, n.name)
			covered |= n.set
		}
	}

	if rest := s &^ covered; rest != 0 {
		parts = append(parts, "0x"+strconv.FormatUint(uint64(rest), 16))
	}

	return strings.Join(parts, "|")
}

// Parse reads a "|"-separated expression of flag names and numeric
// literals, as produced by [Set.String].
func Parse(expr string) (Set, error) {
	var s Set
	for _, tok := range strings.Split(expr, "|") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return 0, fmt.Errorf("%w: empty term in %q", ErrUnknownFlag, expr)
		}

		if m := numeric.FindStringSubmatch(tok); m != nil {
			digits, base := m[2], 10
			if m[1] != "" {
				digits, base = m[1], 16
			}

			v, err := strconv.ParseUint(digits, base, 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %q: %v", ErrUnknownFlag, tok, err)
			}
			s |= Set(v)
			continue
		}

		f, ok := Lookup(tok)
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownFlag, tok)
		}
		s |= f
	}

	return s, nil
}

// MustParse is like [Parse] but panics on error.
func MustParse(expr string) Set {
	s, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return s
}
