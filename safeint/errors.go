package safeint

import "strings"

// Kind categorizes an [Error].
type Kind string

const (
	KindOverflow   Kind = "overflow"    // result above the maximum
	KindUnderflow  Kind = "underflow"   // result below the minimum
	KindDomain     Kind = "domain"      // division by zero, invalid shift
	KindRange      Kind = "range"       // conversion source out of range
	KindCommonType Kind = "common_type" // result type is not the shared type
)

// Error describes a failed checked operation.
type Error struct {
	Cause  error
	Op     string
	Kind   Kind
	Detail string
}

// Sentinels for use with errors.Is. An *Error matches the sentinel of its
// Kind.
var (
	ErrOverflow   = &Error{Kind: KindOverflow}
	ErrUnderflow  = &Error{Kind: KindUnderflow}
	ErrDomain     = &Error{Kind: KindDomain}
	ErrRange      = &Error{Kind: KindRange}
	ErrCommonType = &Error{Kind: KindCommonType}
)

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("safeint: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind. A target with an
// Op only matches errors of that Op.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Kind == t.Kind && (t.Op == "" || t.Op == e.Op)
}

// Must returns x or panics with err.
func Must[T Integer](x Int[T], err error) Int[T] {
	if err != nil {
		panic(err)
	}

	return x
}
