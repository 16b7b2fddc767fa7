package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Ratio = number.Number[float64, tag, number.AllCaps, number.EmptyPolicy[float64]]

func main() {
	a := number.Of[Ratio](7)
	_ = number.Mod(a, number.Of[Ratio](2))
}
