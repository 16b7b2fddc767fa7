package number

import "go.dw1.io/typebuilder/internal/convert"

// Policy supplies the default value and the text format of a number.
//
// DefaultStreamOut and DefaultStreamIn select the representation's own
// format instead of Format and Parse. Implementations must return constants
// from both.
type Policy[T Real] interface {
	Default() T
	Format(v T) string
	Parse(text string) (T, error)
	DefaultStreamOut() bool
	DefaultStreamIn() bool
}

// EmptyPolicy defaults to zero and uses the representation's format in both
// directions.
type EmptyPolicy[T Real] struct{}

func (EmptyPolicy[T]) Default() T {
	return 0
}

func (EmptyPolicy[T]) Format(v T) string {
	return convert.Format(v)
}

func (EmptyPolicy[T]) Parse(text string) (T, error) {
	return convert.Parse[T](text)
}

func (EmptyPolicy[T]) DefaultStreamOut() bool { return true }
func (EmptyPolicy[T]) DefaultStreamIn() bool  { return true }
