package flags

import (
	"errors"
	"slices"
	"testing"
)

func TestPredicates(t *testing.T) {
	if !ENABLE_ORDERING.Has(ENABLE_EQUALITY_CHECK) {
		t.Fatalf("ENABLE_ORDERING should include ENABLE_EQUALITY_CHECK")
	}
	if !DEFAULT_SETTINGS.Lacks(ENABLE_EQUALITY_CHECK) {
		t.Fatalf("DEFAULT_SETTINGS should lack ENABLE_EQUALITY_CHECK")
	}
	if DEFAULT_SETTINGS.Lacks(ENABLE_SPECIFIC_EQUALITY_CHECK) {
		t.Fatalf("DEFAULT_SETTINGS should have ENABLE_SPECIFIC_EQUALITY_CHECK")
	}
	if !ENABLE_FLOAT_MULT_DIV.Any(ENABLE_INTEGER_DIVISION) {
		t.Fatalf("ENABLE_FLOAT_MULT_DIV should share bits with ENABLE_INTEGER_DIVISION")
	}
	if got := DEFAULT_SETTINGS.With(ENABLE_MODULO); !got.Has(ENABLE_SPECIFIC_MODULO) {
		t.Fatalf("With did not add bits: %s", got)
	}
}

func TestDistinctBits(t *testing.T) {
	single := []Set{
		ENABLE_GENERAL_CONSTRUCTION, ENABLE_DEFAULT_CONSTRUCTION, ENABLE_LATE_ASSIGNMENT,
		ENABLE_SPECIFIC_EQUALITY_CHECK, bitSpecificOrdering, bitEquality, bitOrdering,
		ENABLE_INC_DEC, ENABLE_SPECIFIC_PLUS_MINUS, ENABLE_SPECIFIC_MULTIPLICATION,
		ENABLE_SPECIFIC_DIVISION, ENABLE_INTEGER_MULTIPLICATION, ENABLE_INTEGER_DIVISION,
		bitFloatMultiplication, bitFloatDivision, ENABLE_BASE_MULTIPLICATION,
		ENABLE_BASE_DIVISION, ENABLE_GENERAL_PLUS_MINUS, ENABLE_GENERAL_MULTIPLICATION,
		ENABLE_GENERAL_DIVISION, ENABLE_SPECIFIC_MODULO, bitModulo, ENABLE_NATIVE_TYPING,
		DISABLE_CONSTRUCTION, DISABLE_MUTABILITY,
	}

	var seen Set
	for _, s := range single {
		if s&(s-1) != 0 {
			t.Fatalf("%#x is not a single bit", uint64(s))
		}
		if seen.Any(s) {
			t.Fatalf("bit %#x is used twice", uint64(s))
		}
		seen |= s
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		want string
	}{
		{"zero", 0, "0"},
		{"default", DEFAULT_SETTINGS, "DEFAULT_SETTINGS"},
		{"umbrella", DEFAULT_SETTINGS | ENABLE_MODULO, "DEFAULT_SETTINGS|ENABLE_MODULO"},
		{"all", ENABLE_ALL | ENABLE_NATIVE_TYPING, "ENABLE_ALL|ENABLE_NATIVE_TYPING"},
		{"unnamed", ENABLE_INC_DEC | 1<<40, "ENABLE_INC_DEC|0x10000000000"},
		{"partial", bitEquality, "0x20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.String(); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		want    Set
		wantErr bool
	}{
		{"single", "ENABLE_INC_DEC", ENABLE_INC_DEC, false},
		{"spaces", " ENABLE_INC_DEC |  DISABLE_MUTABILITY ", ENABLE_INC_DEC | DISABLE_MUTABILITY, false},
		{"hex", "ENABLE_INC_DEC|0x10", ENABLE_INC_DEC | bitSpecificOrdering, false},
		{"decimal", "12", 12, false},
		{"leadingZero", "010", 10, false},
		{"leadingZeroNine", "09", 9, false},
		{"upperHex", "0XfF", 0xff, false},
		{"overflow", "0x10000000000000000", 0, true},
		{"octalPrefix", "0o7", 0, true},
		{"unknown", "ENABLE_TELEPORTATION", 0, true},
		{"emptyTerm", "ENABLE_INC_DEC||ENABLE_MODULO", 0, true},
		{"empty", "", 0, true},
		{"lowercase", "enable_all", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.expr)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFlag) {
					t.Fatalf("expected ErrUnknownFlag, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []Set{
		0,
		DEFAULT_SETTINGS,
		ENABLE_ALL,
		ENABLE_ORDERING | ENABLE_GENERAL_MULT_DIV | DISABLE_CONSTRUCTION,
		ENABLE_BASE_MULTIPLICATION | 1<<40 | 1<<63,
	} {
		got, err := Parse(s.String())
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", s, err)
		}
		if got != s {
			t.Fatalf("expected %#x, got %#x", uint64(s), uint64(got))
		}
	}
}

func TestMustParse(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()

	MustParse("NOT_A_FLAG")
}

func TestGrants(t *testing.T) {
	tests := []struct {
		name string
		set  Set
		c    Capability
		want bool
	}{
		{"constructByDefault", 0, CapConstruct, true},
		{"disabledConstruction", DISABLE_CONSTRUCTION, CapConstruct, false},
		{"defaultNeedsConstruction", DISABLE_CONSTRUCTION | ENABLE_DEFAULT_CONSTRUCTION, CapDefaultConstruction, false},
		{"lateNeedsMutability", DISABLE_MUTABILITY | ENABLE_LATE_ASSIGNMENT, CapLateAssignment, false},
		{"incDecNeedsMutability", DEFAULT_SETTINGS | DISABLE_MUTABILITY, CapIncDec, false},
		{"incDec", DEFAULT_SETTINGS, CapIncDec, true},
		{"generalImpliesInteger", ENABLE_GENERAL_MULTIPLICATION, CapIntegerMultiplication, true},
		{"generalImpliesFloat", ENABLE_GENERAL_MULTIPLICATION, CapFloatMultiplication, true},
		{"generalImpliesBase", ENABLE_GENERAL_MULTIPLICATION, CapBaseMultiplication, true},
		{"multiplicationIsNotDivision", ENABLE_GENERAL_MULTIPLICATION, CapIntegerDivision, false},
		{"floatNeedsItsBit", ENABLE_INTEGER_MULT_DIV, CapFloatDivision, false},
		{"specificOrderingAlone", ENABLE_SPECIFIC_ORDERING, CapOrdering, false},
		{"ordering", ENABLE_ORDERING, CapEquality, true},
		{"moduloUmbrella", ENABLE_MODULO, CapSpecificModulo, true},
		{"native", ENABLE_NATIVE_TYPING, CapNativeTyping, true},
		{"unknown", ENABLE_ALL, Capability(200), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.set.Grants(tt.c); got != tt.want {
				t.Fatalf("%s.Grants(%s): expected %v, got %v", tt.set, tt.c, tt.want, got)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	if got := Set(0).Capabilities(); !slices.Equal(got, []Capability{CapConstruct, CapMutate}) {
		t.Fatalf("unexpected capabilities %v", got)
	}

	if got := ENABLE_ALL.Capabilities(); len(got) != len(AllCapabilities())-1 {
		t.Fatalf("ENABLE_ALL should grant everything but native typing, got %v", got)
	}

	if got := Capability(200).String(); got != "Capability(?)" {
		t.Fatalf("unexpected name %q", got)
	}
}
