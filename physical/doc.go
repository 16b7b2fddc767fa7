// Package physical implements SI quantities on top of package number.
//
// A quantity's tag is its dimension, a zero-size type reporting the
// exponents of the seven base units. Adding quantities of different
// dimensions does not compile, and products and quotients are only
// available as functions whose signatures fix the result dimension:
//
//	d := number.Of[physical.Meters[float64]](100)
//	t := number.Of[physical.Seconds[float64]](10)
//	v := physical.DivLengthTime(d, t) // physical.MetersPerSecond[float64]
//	fmt.Println(v)                    // 10ms^-1
//
// Quantities print as the value followed by the unit suffix and parse the
// same format back, rejecting any other suffix with [ErrFormat].
package physical
