package main

import (
	"os"

	"go.dw1.io/typebuilder/cmd/typebuilder/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
