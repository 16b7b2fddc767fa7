package safeint

import "go.dw1.io/typebuilder/internal/convert"

// The *Kind functions report the error kind of an operation before it is
// carried out, or "" when the result is representable.

func addKind[T Integer](l, r T) Kind {
	switch {
	case r > 0 && l > Max[T]()-r:
		return KindOverflow
	case r < 0 && l < Min[T]()-r:
		return KindUnderflow
	}

	return ""
}

func subKind[T Integer](l, r T) Kind {
	switch {
	case r < 0 && l > Max[T]()+r:
		return KindOverflow
	case r > 0 && l < Min[T]()+r:
		return KindUnderflow
	}

	return ""
}

// mulKind compares against a quotient of the bound so the check itself
// cannot overflow.
func mulKind[T Integer](l, r T) Kind {
	switch {
	case l == 0 || r == 0:
		return ""
	case l > 0 && r > 0:
		if l > Max[T]()/r {
			return KindOverflow
		}
	case l > 0:
		if r < Min[T]()/l {
			return KindUnderflow
		}
	case r > 0:
		if l < Min[T]()/r {
			return KindUnderflow
		}
	default:
		if l < Max[T]()/r {
			return KindOverflow
		}
	}

	return ""
}

func divKind[T Integer](l, r T) Kind {
	switch {
	case r == 0:
		return KindDomain
	case convert.IsSigned[T]() && l == Min[T]() && r == ^T(0):
		return KindOverflow
	}

	return ""
}
