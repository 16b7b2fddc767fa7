package safeint

import (
	"errors"
	"math"
	"testing"
)

func TestBounds(t *testing.T) {
	if Max[int8]() != math.MaxInt8 || Min[int8]() != math.MinInt8 {
		t.Fatalf("unexpected int8 bounds")
	}
	if Max[uint8]() != math.MaxUint8 || Min[uint8]() != 0 {
		t.Fatalf("unexpected uint8 bounds")
	}
	if Max[int64]() != math.MaxInt64 || Min[int64]() != math.MinInt64 {
		t.Fatalf("unexpected int64 bounds")
	}
	if Max[uint64]() != math.MaxUint64 {
		t.Fatalf("unexpected uint64 bounds")
	}
}

func TestAddSub(t *testing.T) {
	tests := []struct {
		name string
		run  func() (Int[int8], error)
		want int8
		err  error
	}{
		{"overflow", func() (Int[int8], error) { return New[int8](127).Add(New[int8](1)) }, 127, ErrOverflow},
		{"underflow", func() (Int[int8], error) { return New[int8](-128).Add(New[int8](-1)) }, -128, ErrUnderflow},
		{"add", func() (Int[int8], error) { return New[int8](100).Add(New[int8](27)) }, 127, nil},
		{"addNegative", func() (Int[int8], error) { return New[int8](-100).Add(New[int8](-28)) }, -128, nil},
		{"subOverflow", func() (Int[int8], error) { return New[int8](1).Sub(New[int8](-127)) }, 1, ErrOverflow},
		{"subUnderflow", func() (Int[int8], error) { return New[int8](-2).Sub(New[int8](127)) }, -2, ErrUnderflow},
		{"sub", func() (Int[int8], error) { return New[int8](-1).Sub(New[int8](127)) }, -128, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.run()
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value() != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got.Value())
			}
		})
	}

	t.Run("unsignedSub", func(t *testing.T) {
		if _, err := New[uint8](1).Sub(New[uint8](2)); !errors.Is(err, ErrUnderflow) {
			t.Fatalf("expected underflow, got %v", err)
		}
	})
}

func TestMul(t *testing.T) {
	tests := []struct {
		name string
		l, r int8
		want int8
		err  error
	}{
		{"zero", 0, -128, 0, nil},
		{"positive", 11, 11, 121, nil},
		{"positiveOverflow", 16, 8, 0, ErrOverflow},
		{"mixedUnderflow", 2, -65, 0, ErrUnderflow},
		{"mixedMin", 2, -64, -128, nil},
		{"negativePositiveUnderflow", -65, 2, 0, ErrUnderflow},
		{"negativeOverflow", -16, -8, 0, ErrOverflow},
		{"minTimesMinusOne", -128, -1, 0, ErrOverflow},
		{"negative", -11, -11, 121, nil},
		{"minusOne", 127, -1, -127, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.l).Mul(New(tt.r))
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value() != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got.Value())
			}
		})
	}

	t.Run("unsigned", func(t *testing.T) {
		if _, err := New[uint16](256).Mul(New[uint16](256)); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
	})
}

func TestDivMod(t *testing.T) {
	t.Run("byZero", func(t *testing.T) {
		if _, err := New[int8](1).Div(New[int8](0)); !errors.Is(err, ErrDomain) {
			t.Fatalf("int8 Div: expected domain error, got %v", err)
		}
		if _, err := New[uint64](1).Mod(New[uint64](0)); !errors.Is(err, ErrDomain) {
			t.Fatalf("uint64 Mod: expected domain error, got %v", err)
		}
		if _, err := New[int32](1).Mod(New[int32](0)); !errors.Is(err, ErrDomain) {
			t.Fatalf("int32 Mod: expected domain error, got %v", err)
		}
		if _, err := New[uint16](1).Div(New[uint16](0)); !errors.Is(err, ErrDomain) {
			t.Fatalf("uint16 Div: expected domain error, got %v", err)
		}
	})

	t.Run("minByMinusOne", func(t *testing.T) {
		if _, err := New[int16](math.MinInt16).Div(New[int16](-1)); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}

		got, err := New[int16](math.MinInt16).Mod(New[int16](-1))
		if err != nil || got.Value() != 0 {
			t.Fatalf("expected 0, got %v (%v)", got, err)
		}
	})

	t.Run("values", func(t *testing.T) {
		q := Must(New(-7).Div(New(2)))
		r := Must(New(-7).Mod(New(2)))
		if q.Value() != -3 || r.Value() != -1 {
			t.Fatalf("expected -3 and -1, got %d and %d", q.Value(), r.Value())
		}
	})
}

func TestAssign(t *testing.T) {
	x := New[int8](100)
	if err := x.AddAssign(New[int8](100)); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if x.Value() != 100 {
		t.Fatalf("failed assignment changed the value to %d", x.Value())
	}

	steps := []func() error{
		func() error { return x.SubAssign(New[int8](30)) },
		func() error { return x.MulAssign(New[int8](-1)) },
		func() error { return x.DivAssign(New[int8](7)) },
		func() error { return x.ModAssign(New[int8](6)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// (100 - 30) * -1 / 7 % 6
	if x.Value() != -4 {
		t.Fatalf("expected -4, got %d", x.Value())
	}

	y := New[uint8](14)
	if err := y.ModAssign(New[uint8](5)); err != nil || y.Value() != 4 {
		t.Fatalf("expected 4, got %d (%v)", y.Value(), err)
	}
}

func TestIncDec(t *testing.T) {
	t.Run("unsignedUnderflow", func(t *testing.T) {
		a := New[uint8](0)
		if _, err := a.Dec(); !errors.Is(err, ErrUnderflow) {
			t.Fatalf("expected underflow, got %v", err)
		}
		if a.Value() != 0 {
			t.Fatalf("expected 0, got %d", a.Value())
		}
	})

	t.Run("unsignedOverflow", func(t *testing.T) {
		a := New[uint8](255)
		if _, err := a.Inc(); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
		if _, err := a.PostInc(); !errors.Is(err, ErrOverflow) {
			t.Fatalf("expected overflow, got %v", err)
		}
	})

	t.Run("postfix", func(t *testing.T) {
		a := New[int8](5)
		old, err := a.PostInc()
		if err != nil || old.Value() != 5 || a.Value() != 6 {
			t.Fatalf("PostInc: expected 5 and 6, got %d and %d (%v)", old.Value(), a.Value(), err)
		}

		old, err = a.PostDec()
		if err != nil || old.Value() != 6 || a.Value() != 5 {
			t.Fatalf("PostDec: expected 6 and 5, got %d and %d (%v)", old.Value(), a.Value(), err)
		}

		if b, err := a.Inc(); err != nil || b.Value() != 6 {
			t.Fatalf("Inc: expected 6, got %d (%v)", b.Value(), err)
		}
	})

	t.Run("signedMin", func(t *testing.T) {
		a := New[int64](math.MinInt64)
		if _, err := a.PostDec(); !errors.Is(err, ErrUnderflow) {
			t.Fatalf("expected underflow, got %v", err)
		}
	})
}

func TestNeg(t *testing.T) {
	if _, err := New[int8](-128).Neg(); !errors.Is(err, ErrOverflow) {
		t.Fatalf("expected overflow, got %v", err)
	}
	if got := Must(New[int8](-127).Neg()); got.Value() != 127 {
		t.Fatalf("expected 127, got %d", got.Value())
	}
	if _, err := New[uint8](3).Neg(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected underflow, got %v", err)
	}
	if got := Must(New[uint8](0).Neg()); got.Value() != 0 {
		t.Fatalf("expected 0, got %d", got.Value())
	}

	t.Run("negate", func(t *testing.T) {
		got, err := Negate[int8](New[uint8](100))
		if err != nil || got.Value() != -100 {
			t.Fatalf("expected -100, got %d (%v)", got.Value(), err)
		}

		if _, err := Negate[int8](New[uint8](200)); !errors.Is(err, ErrRange) {
			t.Fatalf("expected range error, got %v", err)
		}
		if _, err := Negate[int16](New[uint8](1)); !errors.Is(err, ErrCommonType) {
			t.Fatalf("expected common type error, got %v", err)
		}
	})

	t.Run("perWidth", func(t *testing.T) {
		if got := Must(NegateUint8(New[uint8](128))); got.Value() != -128 {
			t.Fatalf("NegateUint8: expected -128, got %d", got.Value())
		}
		if got := Must(NegateUint16(New[uint16](300))); got.Value() != -300 {
			t.Fatalf("NegateUint16: expected -300, got %d", got.Value())
		}
		if got := Must(NegateUint32(New[uint32](7))); got.Value() != -7 {
			t.Fatalf("NegateUint32: expected -7, got %d", got.Value())
		}
		if got := Must(NegateUint64(New[uint64](math.MaxInt64))); got.Value() != -math.MaxInt64 {
			t.Fatalf("NegateUint64: expected %d, got %d", int64(-math.MaxInt64), got.Value())
		}
		if got := Must(NegateUint(New[uint](0))); got.Value() != 0 {
			t.Fatalf("NegateUint: expected 0, got %d", got.Value())
		}
		if _, err := NegateUint64(New[uint64](math.MaxUint64)); !errors.Is(err, ErrRange) {
			t.Fatalf("expected range error, got %v", err)
		}
	})
}

func TestBitwise(t *testing.T) {
	a, b := New[uint8](0b1100), New[uint8](0b1010)

	if a.Or(b).Value() != 0b1110 || a.And(b).Value() != 0b1000 || a.Xor(b).Value() != 0b0110 {
		t.Fatalf("unexpected bitwise results")
	}
	if a.Not().Value() != 0b11110011 {
		t.Fatalf("unexpected complement %08b", a.Not().Value())
	}
	if New[int8](0).Not().Value() != -1 {
		t.Fatalf("unexpected signed complement")
	}
}

func TestShift(t *testing.T) {
	t.Run("domain", func(t *testing.T) {
		tests := []struct {
			name string
			err  error
		}{
			{"int8Negative", func() error { _, err := New[int8](1).Shl(-1); return err }()},
			{"int8Width", func() error { _, err := New[int8](1).Shl(8); return err }()},
			{"int8NegativeBase", func() error { _, err := New[int8](-1).Shr(1); return err }()},
			{"uint32Width", func() error { _, err := New[uint32](1).Shr(32); return err }()},
			{"uint64Negative", func() error { _, err := New[uint64](1).Shr(-3); return err }()},
			{"int64NegativeBase", func() error { _, err := New[int64](-8).Shl(0); return err }()},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if !errors.Is(tt.err, ErrDomain) {
					t.Fatalf("expected domain error, got %v", tt.err)
				}
			})
		}
	})

	t.Run("values", func(t *testing.T) {
		x := New[uint16](3)
		if err := x.ShlAssign(4); err != nil || x.Value() != 48 {
			t.Fatalf("expected 48, got %d (%v)", x.Value(), err)
		}
		if err := x.ShrAssign(5); err != nil || x.Value() != 1 {
			t.Fatalf("expected 1, got %d (%v)", x.Value(), err)
		}
		if err := x.ShrAssign(16); !errors.Is(err, ErrDomain) || x.Value() != 1 {
			t.Fatalf("expected domain error and unchanged value, got %d (%v)", x.Value(), err)
		}
	})
}

func TestConversions(t *testing.T) {
	if New(0).Bool() || !New(-3).Bool() {
		t.Fatalf("unexpected Bool results")
	}
	if New[int16](-300).String() != "-300" {
		t.Fatalf("unexpected String %q", New[int16](-300).String())
	}

	if _, err := From[int8](300); !errors.Is(err, ErrRange) {
		t.Fatalf("expected range error, got %v", err)
	}
	if _, err := From[uint32](-1); !errors.Is(err, ErrRange) {
		t.Fatalf("expected range error, got %v", err)
	}
	if got, err := From[uint8](int64(255)); err != nil || got.Value() != 255 {
		t.Fatalf("expected 255, got %d (%v)", got.Value(), err)
	}
}

type (
	celsius  int16
	quantity uint32
)

func TestNamedIntegers(t *testing.T) {
	got, err := From[int8](quantity(5))
	if err != nil || got.Value() != 5 {
		t.Fatalf("expected 5, got %d (%v)", got.Value(), err)
	}

	if _, err := From[int8](quantity(500)); !errors.Is(err, ErrRange) {
		t.Fatalf("expected range error, got %v", err)
	}

	c, err := From[celsius](int64(-40))
	if err != nil || c.Value() != -40 {
		t.Fatalf("expected -40, got %d (%v)", c.Value(), err)
	}

	if _, err := From[quantity](celsius(-1)); !errors.Is(err, ErrRange) {
		t.Fatalf("expected range error, got %v", err)
	}

	sum, err := Add[int64](New(quantity(2)), New(int64(3)))
	if err != nil || sum.Value() != 5 {
		t.Fatalf("expected 5, got %d (%v)", sum.Value(), err)
	}

	diff, err := Sub[int16](New(celsius(-10)), New[uint8](20))
	if err != nil || diff.Value() != -30 {
		t.Fatalf("expected -30, got %d (%v)", diff.Value(), err)
	}
}

func TestErrorIs(t *testing.T) {
	_, err := New[int8](127).Add(New[int8](1))

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if se.Op != "+" || se.Kind != KindOverflow {
		t.Fatalf("unexpected error fields %+v", se)
	}
	if errors.Is(err, ErrUnderflow) {
		t.Fatalf("overflow must not match underflow")
	}
	if !errors.Is(err, &Error{Op: "+", Kind: KindOverflow}) || errors.Is(err, &Error{Op: "-", Kind: KindOverflow}) {
		t.Fatalf("unexpected Op matching")
	}
}
