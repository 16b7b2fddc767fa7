package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Phasor = number.Complex[complex128, tag, number.DefaultCaps]

func main() {
	z := number.OfComplex[Phasor](1 + 2i)
	_ = number.MulComplex(z, z)
}
