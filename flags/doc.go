// Package flags defines the capability vocabulary of typebuilder numbers.
//
// A [Set] is a 64-bit value built from the named constants of this package.
// Several constants are umbrellas: ENABLE_ORDERING, for example, includes
// ENABLE_EQUALITY_CHECK. Flags are purely additive; no constant removes
// another one.
//
// A Set never rejects anything on its own. It is turned into a list of
// [Capability] values, each of which has a marker type of the same name in
// package number. Only the operations whose capability markers are present
// on a number's capability type compile.
//
// Example:
//
//	set, err := flags.Parse("DEFAULT_SETTINGS | ENABLE_FLOAT_MULT_DIV")
//	if err != nil {
//		// handle unknown flag name
//	}
//	fmt.Println(set.Has(flags.ENABLE_INC_DEC)) // true
package flags
