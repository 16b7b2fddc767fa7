package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Fixed = number.Number[int, tag, number.ConstCaps, number.EmptyPolicy[int]]

func main() {
	n := number.Of[Fixed](1)
	number.Assign(&n, number.Of[Fixed](2))
}
