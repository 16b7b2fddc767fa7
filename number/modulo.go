package number

import "golang.org/x/exp/constraints"

// Mod returns the remainder of a / b. Only integer representations have a
// remainder.
func Mod[T constraints.Integer, Tag any, C SpecificModular, P Policy[T]](a, b Number[T, Tag, C, P]) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: a.value % b.value}
}

func ModAssign[T constraints.Integer, Tag any, C interface {
	Mutable
	SpecificModular
}, P Policy[T]](dst *Number[T, Tag, C, P], b Number[T, Tag, C, P]) {
	dst.value %= b.value
}

// ModValue returns the remainder of a divided by an integer scalar of any
// width.
func ModValue[T constraints.Integer, Tag any, C Modular, P Policy[T], S constraints.Integer](a Number[T, Tag, C, P], s S) Number[T, Tag, C, P] {
	return Number[T, Tag, C, P]{value: rem(a.value, s)}
}

func ModAssignValue[T constraints.Integer, Tag any, C interface {
	Mutable
	Modular
}, P Policy[T], S constraints.Integer](dst *Number[T, Tag, C, P], s S) {
	dst.value = rem(dst.value, s)
}

// ModAs is the remainder counterpart of [AddAs].
func ModAs[N interface{ Number[R, Tag, C, P] }, R constraints.Integer, Tag any, C interface {
	SpecificModular
	Native
}, P Policy[R], T constraints.Integer, PT Policy[T], U constraints.Integer, PU Policy[U]](a Number[T, Tag, C, PT], b Number[U, Tag, C, PU]) N {
	return N{value: R(a.value) % R(b.value)}
}

// rem returns v % s with the sign of v, for any mix of signedness.
func rem[T, S constraints.Integer](v T, s S) T {
	a, neg := magnitude(v)
	b, _ := magnitude(s)

	r := a % b
	if neg {
		r = -r
	}

	return T(r)
}
