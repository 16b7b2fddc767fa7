package physical

import (
	"strconv"
	"strings"
)

// Exponents are the powers of the seven SI base units making up a
// dimension.
type Exponents struct {
	M   int8 // metre
	Kg  int8 // kilogram
	S   int8 // second
	A   int8 // ampere
	K   int8 // kelvin
	Mol int8 // mole
	Cd  int8 // candela
}

// Symbols lists the base unit symbols in suffix order.
var Symbols = [7]string{"m", "kg", "s", "A", "K", "mol", "cd"}

func (e Exponents) list() [7]int8 {
	return [7]int8{e.M, e.Kg, e.S, e.A, e.K, e.Mol, e.Cd}
}

func fromList(l [7]int8) Exponents {
	return Exponents{M: l[0], Kg: l[1], S: l[2], A: l[3], K: l[4], Mol: l[5], Cd: l[6]}
}

// Add returns the exponents of a product of quantities.
func (e Exponents) Add(o Exponents) Exponents {
	a, b := e.list(), o.list()
	for i := range a {
		a[i] += b[i]
	}

	return fromList(a)
}

// Sub returns the exponents of a quotient of quantities.
func (e Exponents) Sub(o Exponents) Exponents {
	a, b := e.list(), o.list()
	for i := range a {
		a[i] -= b[i]
	}

	return fromList(a)
}

// Suffix renders e the way [Policy] prints it: exponent 1 is implied,
// 2 and 3 use superscript digits and any other nonzero exponent is written
// as ^N.
func (e Exponents) Suffix() string {
	return e.suffix(true)
}

// CaretSuffix renders e the way [CaretPolicy] prints it: every nonzero
// exponent other than 1 is written as ^N.
func (e Exponents) CaretSuffix() string {
	return e.suffix(false)
}

func (e Exponents) String() string {
	return e.Suffix()
}

// GoString renders e as a keyed composite literal, leaving out zero
// exponents.
func (e Exponents) GoString() string {
	var parts []string
	for i, x := range e.list() {
		if x != 0 {
			parts = append(parts, fieldNames[i]+": "+strconv.Itoa(int(x)))
		}
	}

	return "physical.Exponents{" + strings.Join(parts, ", ") + "}"
}

var fieldNames = [7]string{"M", "Kg", "S", "A", "K", "Mol", "Cd"}

// Set returns e with the exponent of the base unit symbol changed to x. It
// reports false for a symbol not in [Symbols].
func (e Exponents) Set(symbol string, x int8) (Exponents, bool) {
	l := e.list()
	for i, s := range Symbols {
		if s == symbol {
			l[i] = x
			return fromList(l), true
		}
	}

	return e, false
}

func (e Exponents) suffix(superscript bool) string {
	var b strings.Builder
	for i, x := range e.list() {
		if x == 0 {
			continue
		}

		b.WriteString(Symbols[i])

		switch {
		case x == 1:
		case superscript && x == 2:
			b.WriteString("²")
		case superscript && x == 3:
			b.WriteString("³")
		default:
			b.WriteString("^" + strconv.Itoa(int(x)))
		}
	}

	return b.String()
}

// Dimension is implemented by the zero-size types used as quantity tags.
// Exponents must return a constant.
type Dimension interface {
	Exponents() Exponents
}

func exponentsOf[D Dimension]() Exponents {
	var d D
	return d.Exponents()
}

// Base dimensions.
type (
	Length      struct{}
	Mass        struct{}
	Time        struct{}
	Current     struct{}
	Temperature struct{}
	Amount      struct{}
	Luminosity  struct{}
)

func (Length) Exponents() Exponents      { return Exponents{M: 1} }
func (Mass) Exponents() Exponents        { return Exponents{Kg: 1} }
func (Time) Exponents() Exponents        { return Exponents{S: 1} }
func (Current) Exponents() Exponents     { return Exponents{A: 1} }
func (Temperature) Exponents() Exponents { return Exponents{K: 1} }
func (Amount) Exponents() Exponents      { return Exponents{Mol: 1} }
func (Luminosity) Exponents() Exponents  { return Exponents{Cd: 1} }

// Derived dimensions.
type (
	Dimensionless struct{}
	Area          struct{}
	Volume        struct{}
	Velocity      struct{}
	Acceleration  struct{}
	Force         struct{}
	Energy        struct{}
	Power         struct{}
	Frequency     struct{}
)

func (Dimensionless) Exponents() Exponents { return Exponents{} }
func (Area) Exponents() Exponents          { return Exponents{M: 2} }
func (Volume) Exponents() Exponents        { return Exponents{M: 3} }
func (Velocity) Exponents() Exponents      { return Exponents{M: 1, S: -1} }
func (Acceleration) Exponents() Exponents  { return Exponents{M: 1, S: -2} }
func (Force) Exponents() Exponents         { return Exponents{M: 1, Kg: 1, S: -2} }
func (Energy) Exponents() Exponents        { return Exponents{M: 2, Kg: 1, S: -2} }
func (Power) Exponents() Exponents         { return Exponents{M: 2, Kg: 1, S: -3} }
func (Frequency) Exponents() Exponents     { return Exponents{S: -1} }
