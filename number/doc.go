// Package number provides strongly typed numeric wrappers.
//
// A [Number] holds a single value of a representation type T. Its three
// other type parameters carry no data: Tag tells otherwise identical
// numbers apart, C lists the operations the number supports and P supplies
// the default value together with its text format.
//
// Operations are generic functions whose capability parameter is
// constrained by marker interfaces. Using an operation that the number's
// capability type does not grant is a compile error:
//
//	type meterTag struct{}
//	type Meter = number.Number[float64, meterTag, number.DefaultCaps, number.EmptyPolicy[float64]]
//
//	a := number.Of[Meter](3)
//	b := number.Add(a, number.Of[Meter](4)) // ok
//	c := number.Mul(a, b)                   // does not compile: DefaultCaps lacks CapSpecificMultiplication
//
// Capability types are structs embedding one marker per granted capability
// plus a Flags method returning the matching [flags.Set]. The presets in
// this package cover the common configurations; cmd/typebuilder generates
// the rest.
//
// [Complex] wraps complex64 and complex128 the same way, limited to
// arithmetic and equality.
package number
