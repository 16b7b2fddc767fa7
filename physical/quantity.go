package physical

import (
	"errors"
	"fmt"

	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/number"
)

// ErrDimension is the panic value of [Mul] and [Div] when the requested
// result dimension is not the product or quotient of the operands'.
var ErrDimension = errors.New("dimension mismatch")

// Caps grants addition and ordering between quantities of one dimension
// and scaling by a bare value of the representation type.
type Caps struct {
	number.CapConstruct
	number.CapMutate
	number.CapSpecificEquality
	number.CapSpecificOrdering
	number.CapSpecificPlusMinus
	number.CapBaseMultiplication
	number.CapBaseDivision
}

func (Caps) Flags() flags.Set {
	return flags.ENABLE_SPECIFIC_PLUS_MINUS | flags.ENABLE_BASE_MULT_DIV | flags.ENABLE_SPECIFIC_ORDERING
}

// Quantity is a value of dimension D.
type Quantity[T number.Real, D Dimension] = number.Number[T, D, Caps, Policy[T, D]]

// CaretQuantity is a [Quantity] printed with caret exponents only.
type CaretQuantity[T number.Real, D Dimension] = number.Number[T, D, Caps, CaretPolicy[T, D]]

type (
	Meters[T number.Real]                 = Quantity[T, Length]
	Kilograms[T number.Real]              = Quantity[T, Mass]
	Seconds[T number.Real]                = Quantity[T, Time]
	Amperes[T number.Real]                = Quantity[T, Current]
	Kelvins[T number.Real]                = Quantity[T, Temperature]
	Moles[T number.Real]                  = Quantity[T, Amount]
	Candelas[T number.Real]               = Quantity[T, Luminosity]
	Ratio[T number.Real]                  = Quantity[T, Dimensionless]
	SquareMeters[T number.Real]           = Quantity[T, Area]
	CubicMeters[T number.Real]            = Quantity[T, Volume]
	MetersPerSecond[T number.Real]        = Quantity[T, Velocity]
	MetersPerSecondSquared[T number.Real] = Quantity[T, Acceleration]
	Newtons[T number.Real]                = Quantity[T, Force]
	Joules[T number.Real]                 = Quantity[T, Energy]
	Watts[T number.Real]                  = Quantity[T, Power]
	Hertz[T number.Real]                  = Quantity[T, Frequency]
)

// Mul returns a * b as a quantity of dimension R. It panics with
// [ErrDimension] unless R's exponents are the sum of A's and B's.
func Mul[R Dimension, T number.Real, A, B Dimension](a Quantity[T, A], b Quantity[T, B]) Quantity[T, R] {
	if got, want := exponentsOf[R](), exponentsOf[A]().Add(exponentsOf[B]()); got != want {
		panic(fmt.Errorf("%w: %s * %s is %s, not %s", ErrDimension,
			exponentsOf[A](), exponentsOf[B](), want, got))
	}

	return number.Of[Quantity[T, R]](a.Value() * b.Value())
}

// Div returns a / b as a quantity of dimension R. It panics with
// [ErrDimension] unless R's exponents are the difference of A's and B's.
func Div[R Dimension, T number.Real, A, B Dimension](a Quantity[T, A], b Quantity[T, B]) Quantity[T, R] {
	if got, want := exponentsOf[R](), exponentsOf[A]().Sub(exponentsOf[B]()); got != want {
		panic(fmt.Errorf("%w: %s / %s is %s, not %s", ErrDimension,
			exponentsOf[A](), exponentsOf[B](), want, got))
	}

	return number.Of[Quantity[T, R]](a.Value() / b.Value())
}

func MulLengthLength[T number.Real](a, b Meters[T]) SquareMeters[T] {
	return Mul[Area](a, b)
}

func MulAreaLength[T number.Real](a SquareMeters[T], b Meters[T]) CubicMeters[T] {
	return Mul[Volume](a, b)
}

func DivLengthLength[T number.Real](a, b Meters[T]) Ratio[T] {
	return Div[Dimensionless](a, b)
}

func DivLengthTime[T number.Real](a Meters[T], b Seconds[T]) MetersPerSecond[T] {
	return Div[Velocity](a, b)
}

func DivVelocityTime[T number.Real](a MetersPerSecond[T], b Seconds[T]) MetersPerSecondSquared[T] {
	return Div[Acceleration](a, b)
}

func MulMassAcceleration[T number.Real](a Kilograms[T], b MetersPerSecondSquared[T]) Newtons[T] {
	return Mul[Force](a, b)
}

func MulForceLength[T number.Real](a Newtons[T], b Meters[T]) Joules[T] {
	return Mul[Energy](a, b)
}

func DivEnergyTime[T number.Real](a Joules[T], b Seconds[T]) Watts[T] {
	return Div[Power](a, b)
}

func DivRatioTime[T number.Real](a Ratio[T], b Seconds[T]) Hertz[T] {
	return Div[Frequency](a, b)
}
