// nolint
package flags

// Set is a capability bitset. It is fixed per declared number type and is
// never stored inside a number value.
type Set uint64

const (
	// ENABLE_GENERAL_CONSTRUCTION allows construction and late assignment from
	// any real scalar, not only from the representation type.
	ENABLE_GENERAL_CONSTRUCTION Set = 1 << 0

	// ENABLE_DEFAULT_CONSTRUCTION allows construction from the policy default.
	ENABLE_DEFAULT_CONSTRUCTION Set = 1 << 1

	// ENABLE_LATE_ASSIGNMENT allows assigning a bare value to an existing
	// number.
	ENABLE_LATE_ASSIGNMENT Set = 1 << 2

	// ENABLE_SPECIFIC_EQUALITY_CHECK allows == and != between equivalent
	// numbers.
	ENABLE_SPECIFIC_EQUALITY_CHECK Set = 1 << 3

	// ENABLE_SPECIFIC_ORDERING allows ordering between equivalent numbers.
	ENABLE_SPECIFIC_ORDERING Set = ENABLE_SPECIFIC_EQUALITY_CHECK | bitSpecificOrdering

	// ENABLE_EQUALITY_CHECK additionally allows == and != against bare values.
	ENABLE_EQUALITY_CHECK Set = ENABLE_SPECIFIC_EQUALITY_CHECK | bitEquality

	// ENABLE_ORDERING allows every comparison against equivalent numbers and
	// bare values.
	ENABLE_ORDERING Set = ENABLE_SPECIFIC_ORDERING | ENABLE_EQUALITY_CHECK | bitOrdering

	// ENABLE_INC_DEC allows prefix and postfix increment and decrement.
	ENABLE_INC_DEC Set = 1 << 7

	// ENABLE_SPECIFIC_PLUS_MINUS allows +, - and unary negation between
	// equivalent numbers.
	ENABLE_SPECIFIC_PLUS_MINUS Set = 1 << 8

	// ENABLE_SPECIFIC_MULTIPLICATION allows * between equivalent numbers.
	ENABLE_SPECIFIC_MULTIPLICATION Set = 1 << 9

	// ENABLE_SPECIFIC_DIVISION allows / between equivalent numbers.
	ENABLE_SPECIFIC_DIVISION Set = 1 << 10

	// ENABLE_INTEGER_MULTIPLICATION allows multiplying by integer scalars.
	ENABLE_INTEGER_MULTIPLICATION Set = 1 << 11

	// ENABLE_INTEGER_DIVISION allows dividing by integer scalars.
	ENABLE_INTEGER_DIVISION Set = 1 << 12

	// ENABLE_FLOAT_MULTIPLICATION allows multiplying by integer and
	// floating-point scalars.
	ENABLE_FLOAT_MULTIPLICATION Set = ENABLE_INTEGER_MULTIPLICATION | bitFloatMultiplication

	// ENABLE_FLOAT_DIVISION allows dividing by integer and floating-point
	// scalars.
	ENABLE_FLOAT_DIVISION Set = ENABLE_INTEGER_DIVISION | bitFloatDivision

	// ENABLE_BASE_MULTIPLICATION allows multiplying by a scalar of the
	// representation type.
	ENABLE_BASE_MULTIPLICATION Set = 1 << 15

	// ENABLE_BASE_DIVISION allows dividing by a scalar of the representation
	// type.
	ENABLE_BASE_DIVISION Set = 1 << 16

	ENABLE_INTEGER_MULT_DIV Set = ENABLE_INTEGER_MULTIPLICATION | ENABLE_INTEGER_DIVISION
	ENABLE_FLOAT_MULT_DIV   Set = ENABLE_FLOAT_MULTIPLICATION | ENABLE_FLOAT_DIVISION
	ENABLE_BASE_MULT_DIV    Set = ENABLE_BASE_MULTIPLICATION | ENABLE_BASE_DIVISION

	// ENABLE_GENERAL_PLUS_MINUS allows + and - against any real scalar.
	ENABLE_GENERAL_PLUS_MINUS Set = 1 << 20

	// ENABLE_GENERAL_MULTIPLICATION allows * against any real scalar.
	ENABLE_GENERAL_MULTIPLICATION Set = 1 << 21

	// ENABLE_GENERAL_DIVISION allows / against any real scalar.
	ENABLE_GENERAL_DIVISION Set = 1 << 22

	ENABLE_GENERAL_MULT_DIV Set = ENABLE_GENERAL_MULTIPLICATION | ENABLE_GENERAL_DIVISION

	// ENABLE_SPECIFIC_MODULO allows % between equivalent integer numbers.
	ENABLE_SPECIFIC_MODULO Set = 1 << 26

	// ENABLE_MODULO additionally allows % against bare integer values.
	ENABLE_MODULO Set = ENABLE_SPECIFIC_MODULO | bitModulo

	// ENABLE_NATIVE_TYPING makes numbers that differ only in their
	// representation type equivalent.
	ENABLE_NATIVE_TYPING Set = 1 << 30

	// DISABLE_CONSTRUCTION makes every constructor unavailable.
	DISABLE_CONSTRUCTION Set = 1 << 60

	// DISABLE_MUTABILITY makes assignment and every mutating operator
	// unavailable.
	DISABLE_MUTABILITY Set = 1 << 61

	// DEFAULT_SETTINGS is the configuration used when nothing else is asked
	// for.
	DEFAULT_SETTINGS Set = ENABLE_SPECIFIC_ORDERING | ENABLE_INC_DEC |
		ENABLE_SPECIFIC_PLUS_MINUS | ENABLE_INTEGER_MULTIPLICATION | ENABLE_INTEGER_DIVISION

	ENABLE_ALL_SPECIFIC_MATH Set = ENABLE_INC_DEC | ENABLE_SPECIFIC_PLUS_MINUS |
		ENABLE_SPECIFIC_MULTIPLICATION | ENABLE_SPECIFIC_DIVISION | ENABLE_SPECIFIC_MODULO

	ENABLE_ALL_MATH Set = ENABLE_ALL_SPECIFIC_MATH | ENABLE_GENERAL_PLUS_MINUS |
		ENABLE_GENERAL_MULT_DIV | ENABLE_FLOAT_MULT_DIV | ENABLE_BASE_MULT_DIV | ENABLE_MODULO

	ENABLE_ALL Set = ENABLE_GENERAL_CONSTRUCTION | ENABLE_DEFAULT_CONSTRUCTION |
		ENABLE_LATE_ASSIGNMENT | ENABLE_ORDERING | ENABLE_ALL_MATH
)

// bits that only exist as part of an umbrella constant.
const (
	bitSpecificOrdering    Set = 1 << 4
	bitEquality            Set = 1 << 5
	bitOrdering            Set = 1 << 6
	bitFloatMultiplication Set = 1 << 13
	bitFloatDivision       Set = 1 << 14
	bitModulo              Set = 1 << 27
)

// Has reports whether every bit of f is present in s.
func (s Set) Has(f Set) bool {
	return s&f == f
}

// Lacks reports whether at least one bit of f is missing from s.
func (s Set) Lacks(f Set) bool {
	return !s.Has(f)
}

// Any reports whether s and f share at least one bit.
func (s Set) Any(f Set) bool {
	return s&f != 0
}

// With returns s extended by f.
func (s Set) With(f Set) Set {
	return s | f
}
