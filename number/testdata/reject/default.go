package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Length = number.Number[float64, tag, number.DefaultCaps, number.EmptyPolicy[float64]]

func main() {
	_ = number.Default[Length]()
}
