package number

import (
	"errors"
	"fmt"
	"io"

	"go.dw1.io/typebuilder/internal/convert"
)

// ErrSyntax is returned when text cannot be read as the representation type.
var ErrSyntax = errors.New("invalid number syntax")

// Format renders n as text. Policies reporting DefaultStreamOut use the
// representation's own format, the others their Format method.
func Format[T Real, Tag any, C Caps, P Policy[T]](n Number[T, Tag, C, P]) string {
	return formatValue[T, P](n.value)
}

// Write writes the text form of n to w.
func Write[T Real, Tag any, C Caps, P Policy[T]](w io.Writer, n Number[T, Tag, C, P]) error {
	_, err := io.WriteString(w, formatValue[T, P](n.value))
	return err
}

// Read reads one whitespace delimited token from r into *dst. Policies
// reporting DefaultStreamIn use the representation's own format, the others
// their Parse method. *dst is left unchanged on error.
func Read[T Real, Tag any, C Mutable, P Policy[T]](r io.Reader, dst *Number[T, Tag, C, P]) error {
	var tok string
	if _, err := fmt.Fscan(r, &tok); err != nil {
		return err
	}

	v, err := parseValue[T, P](tok)
	if err != nil {
		return err
	}

	dst.value = v
	return nil
}

func formatValue[T Real, P Policy[T]](v T) string {
	var p P
	if p.DefaultStreamOut() {
		return convert.Format(v)
	}

	return p.Format(v)
}

func parseValue[T Real, P Policy[T]](text string) (T, error) {
	var p P
	if !p.DefaultStreamIn() {
		return p.Parse(text)
	}

	v, err := convert.Parse[T](text)
	if err != nil {
		return v, fmt.Errorf("%w: %q: %v", ErrSyntax, text, err)
	}

	return v, nil
}
