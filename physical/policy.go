package physical

import (
	"errors"
	"fmt"

	"go.dw1.io/typebuilder/internal/convert"
	"go.dw1.io/typebuilder/internal/pattern"
	"go.dw1.io/typebuilder/number"
)

// ErrFormat is returned when text is not a value followed by the expected
// unit suffix.
var ErrFormat = errors.New("invalid quantity format")

var quantity = pattern.MustCompile(`^([-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?)(.*)$`)

// Policy formats quantities of dimension D with [Exponents.Suffix].
type Policy[T number.Real, D Dimension] struct{}

func (Policy[T, D]) Default() T { return 0 }

func (Policy[T, D]) Format(v T) string {
	return convert.Format(v) + exponentsOf[D]().Suffix()
}

func (Policy[T, D]) Parse(text string) (T, error) {
	return parse[T](text, exponentsOf[D]().Suffix())
}

func (Policy[T, D]) DefaultStreamOut() bool { return false }
func (Policy[T, D]) DefaultStreamIn() bool  { return false }

// CaretPolicy formats quantities of dimension D with
// [Exponents.CaretSuffix].
type CaretPolicy[T number.Real, D Dimension] struct{}

func (CaretPolicy[T, D]) Default() T { return 0 }

func (CaretPolicy[T, D]) Format(v T) string {
	return convert.Format(v) + exponentsOf[D]().CaretSuffix()
}

func (CaretPolicy[T, D]) Parse(text string) (T, error) {
	return parse[T](text, exponentsOf[D]().CaretSuffix())
}

func (CaretPolicy[T, D]) DefaultStreamOut() bool { return false }
func (CaretPolicy[T, D]) DefaultStreamIn() bool  { return false }

func parse[T number.Real](text, suffix string) (T, error) {
	m := quantity.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, text)
	}

	if m[2] != suffix {
		return 0, fmt.Errorf("%w: unit %q in %q, expected %q", ErrFormat, m[2], text, suffix)
	}

	v, err := convert.Parse[T](m[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrFormat, text, err)
	}

	return v, nil
}
