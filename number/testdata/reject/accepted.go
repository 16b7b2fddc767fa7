package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Count = number.Number[int, tag, number.AllCaps, number.EmptyPolicy[int]]

func main() {
	n := number.Default[Count]()
	number.Inc(&n)
	number.AddAssign(&n, number.Of[Count](2))
	_ = number.Mod(number.Mul(n, n), number.Of[Count](5))
}
