package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Count = number.Number[int, tag, number.AllCaps, number.EmptyPolicy[int]]

func main() {
	a := number.Of[Count](1)
	_ = number.AddAs[Count](a, a)
}
