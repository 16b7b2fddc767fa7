package number

// Of returns a number of type N holding v.
//
//	m := number.Of[Meter](3)
func Of[N interface{ Number[T, Tag, C, P] }, T Real, Tag any, C Constructible, P Policy[T]](v T) N {
	return N{value: v}
}

// From returns a number of type N holding v converted to N's representation
// type.
func From[N interface{ Number[T, Tag, C, P] }, T Real, Tag any, C interface {
	Constructible
	GeneralConstructible
}, P Policy[T], S Real](v S) N {
	return N{value: T(v)}
}

// Default returns a number of type N holding its policy's default value.
func Default[N interface{ Number[T, Tag, C, P] }, T Real, Tag any, C interface {
	Constructible
	DefaultConstructible
}, P Policy[T]]() N {
	var p P
	return N{value: p.Default()}
}

// Convert returns n as the equivalent number type N, which may differ from
// n's type in the representation only.
func Convert[N interface{ Number[T, Tag, C, P] }, T Real, Tag any, C interface {
	Constructible
	Native
}, P Policy[T], U Real, Q Policy[U]](n Number[U, Tag, C, Q]) N {
	return N{value: T(n.value)}
}

// Parse reads a number of type N from text in the format produced by
// [Format].
func Parse[N interface{ Number[T, Tag, C, P] }, T Real, Tag any, C Constructible, P Policy[T]](text string) (N, error) {
	v, err := parseValue[T, P](text)
	if err != nil {
		return N{}, err
	}

	return N{value: v}, nil
}

// Assign sets *dst to src.
func Assign[T Real, Tag any, C Mutable, P Policy[T]](dst *Number[T, Tag, C, P], src Number[T, Tag, C, P]) {
	*dst = src
}

// AssignConvert sets *dst to the equivalent number src.
func AssignConvert[T Real, Tag any, C interface {
	Mutable
	Native
}, P Policy[T], U Real, Q Policy[U]](dst *Number[T, Tag, C, P], src Number[U, Tag, C, Q]) {
	dst.value = T(src.value)
}

// AssignValue sets the value held by *dst.
func AssignValue[T Real, Tag any, C LateAssignable, P Policy[T]](dst *Number[T, Tag, C, P], v T) {
	dst.value = v
}

// AssignFrom sets the value held by *dst to v converted to the
// representation type.
func AssignFrom[T Real, Tag any, C interface {
	LateAssignable
	GeneralConstructible
}, P Policy[T], S Real](dst *Number[T, Tag, C, P], v S) {
	dst.value = T(v)
}
