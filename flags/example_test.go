package flags_test

import (
	"fmt"

	"go.dw1.io/typebuilder/flags"
)

func ExampleParse() {
	s, err := flags.Parse("DEFAULT_SETTINGS | ENABLE_SPECIFIC_MODULO | ENABLE_MODULO")
	if err != nil {
		panic(err)
	}

	fmt.Println(s)
	fmt.Println(s.Grants(flags.CapModulo))
	// Output:
	// DEFAULT_SETTINGS|ENABLE_MODULO
	// true
}
