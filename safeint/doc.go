// Package safeint provides an integer type whose arithmetic reports
// overflow, underflow and domain errors instead of wrapping.
//
// Every operation that can leave the range of the representation type
// returns an error and leaves its receiver untouched:
//
//	a := safeint.New[int8](127)
//	_, err := a.Add(safeint.New[int8](1))
//	errors.Is(err, safeint.ErrOverflow) // true
//
// Operands of different types are combined with the free functions [Add],
// [Sub], [Mul], [Div] and [Mod], which promote both sides to a shared type
// first, and compared with [Compare] and friends, which compare exact
// mathematical values.
package safeint
