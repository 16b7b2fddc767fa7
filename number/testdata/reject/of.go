package main

import "go.dw1.io/typebuilder/number"

type tag struct{}

type Handle = number.Number[int, tag, number.SealedCaps, number.EmptyPolicy[int]]

func main() {
	_ = number.Of[Handle](1)
}
