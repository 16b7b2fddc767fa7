package number

// Inc increments *n and returns the new value.
func Inc[T Real, Tag any, C Incrementable, P Policy[T]](n *Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	n.value++
	return *n
}

// Dec decrements *n and returns the new value.
func Dec[T Real, Tag any, C Incrementable, P Policy[T]](n *Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	n.value--
	return *n
}

// PostInc increments *n and returns the value it held before.
func PostInc[T Real, Tag any, C Incrementable, P Policy[T]](n *Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	old := *n
	n.value++
	return old
}

// PostDec decrements *n and returns the value it held before.
func PostDec[T Real, Tag any, C Incrementable, P Policy[T]](n *Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	old := *n
	n.value--
	return old
}

func Neg[T Real, Tag any, C SpecificAdditive, P Policy[T]](n Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: -n.value}
}

func Add[T Real, Tag any, C SpecificAdditive, P Policy[T]](a, b Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value + b.value}
}

func Sub[T Real, Tag any, C SpecificAdditive, P Policy[T]](a, b Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value - b.value}
}

func Mul[T Real, Tag any, C SpecificMultiplicative, P Policy[T]](a, b Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value * b.value}
}

func Div[T Real, Tag any, C SpecificDivisible, P Policy[T]](a, b Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value / b.value}
}

func AddAssign[T Real, Tag any, C interface {
	Mutable
	SpecificAdditive
}, P Policy[T]](dst *Number[T, Tag, C, P], b Number[T, Tag, C, P]) {
	dst.value += b.value
}

func SubAssign[T Real, Tag any, C interface {
	Mutable
	SpecificAdditive
}, P Policy[T]](dst *Number[T, Tag, C, P], b Number[T, Tag, C, P]) {
	dst.value -= b.value
}

func MulAssign[T Real, Tag any, C interface {
	Mutable
	SpecificMultiplicative
}, P Policy[T]](dst *Number[T, Tag, C, P], b Number[T, Tag, C, P]) {
	dst.value *= b.value
}

func DivAssign[T Real, Tag any, C interface {
	Mutable
	SpecificDivisible
}, P Policy[T]](dst *Number[T, Tag, C, P], b Number[T, Tag, C, P]) {
	dst.value /= b.value
}

// AddAs adds two equivalent numbers of possibly different representation
// types. Both operands are converted to the representation of the result
// type N before adding:
//
//	x := number.AddAs[Coord[float64]](number.Of[Coord[int]](3), number.Of[Coord[float64]](1.5)) // 4.5
func AddAs[N interface{ Number[R, Tag, C, P] }, R Real, Tag any, C interface {
	SpecificAdditive
	Native
}, P Policy[R], T Real, PT Policy[T], U Real, PU Policy[U]](a Number[T, Tag, C, PT], b Number[U, Tag, C, PU]) N {
	return N{value: R(a.value) + R(b.value)}
}

// SubAs is the subtraction counterpart of [AddAs].
func SubAs[N interface{ Number[R, Tag, C, P] }, R Real, Tag any, C interface {
	SpecificAdditive
	Native
}, P Policy[R], T Real, PT Policy[T], U Real, PU Policy[U]](a Number[T, Tag, C, PT], b Number[U, Tag, C, PU]) N {
	return N{value: R(a.value) - R(b.value)}
}

// MulAs is the multiplication counterpart of [AddAs].
func MulAs[N interface{ Number[R, Tag, C, P] }, R Real, Tag any, C interface {
	SpecificMultiplicative
	Native
}, P Policy[R], T Real, PT Policy[T], U Real, PU Policy[U]](a Number[T, Tag, C, PT], b Number[U, Tag, C, PU]) N {
	return N{value: R(a.value) * R(b.value)}
}

// DivAs is the division counterpart of [AddAs].
func DivAs[N interface{ Number[R, Tag, C, P] }, R Real, Tag any, C interface {
	SpecificDivisible
	Native
}, P Policy[R], T Real, PT Policy[T], U Real, PU Policy[U]](a Number[T, Tag, C, PT], b Number[U, Tag, C, PU]) N {
	return N{value: R(a.value) / R(b.value)}
}
