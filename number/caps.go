package number

import "go.dw1.io/typebuilder/flags"

// Caps is implemented by every capability type.
type Caps interface {
	Flags() flags.Set
}

// Marker types. Each grants exactly one [flags.Capability] of the same name.
type (
	CapConstruct              struct{}
	CapMutate                 struct{}
	CapDefaultConstruction    struct{}
	CapGeneralConstruction    struct{}
	CapLateAssignment         struct{}
	CapSpecificEquality       struct{}
	CapEquality               struct{}
	CapSpecificOrdering       struct{}
	CapOrdering               struct{}
	CapIncDec                 struct{}
	CapSpecificPlusMinus      struct{}
	CapGeneralPlusMinus       struct{}
	CapSpecificMultiplication struct{}
	CapSpecificDivision       struct{}
	CapIntegerMultiplication  struct{}
	CapIntegerDivision        struct{}
	CapFloatMultiplication    struct{}
	CapFloatDivision          struct{}
	CapBaseMultiplication     struct{}
	CapBaseDivision           struct{}
	CapGeneralMultiplication  struct{}
	CapGeneralDivision        struct{}
	CapSpecificModulo         struct{}
	CapModulo                 struct{}
	CapNativeTyping           struct{}
)

func (CapConstruct) constructible() {}
func (CapMutate) mutable() {}
func (CapDefaultConstruction) defaultConstructible() {}
func (CapGeneralConstruction) generalConstructible() {}
func (CapLateAssignment) lateAssignable() {}
func (CapSpecificEquality) specificEquality() {}
func (CapEquality) equality() {}
func (CapSpecificOrdering) specificOrdering() {}
func (CapOrdering) ordering() {}
func (CapIncDec) incDec() {}
func (CapSpecificPlusMinus) specificPlusMinus() {}
func (CapGeneralPlusMinus) generalPlusMinus() {}
func (CapSpecificMultiplication) specificMultiplication() {}
func (CapSpecificDivision) specificDivision() {}
func (CapIntegerMultiplication) integerMultiplication() {}
func (CapIntegerDivision) integerDivision() {}
func (CapFloatMultiplication) floatMultiplication() {}
func (CapFloatDivision) floatDivision() {}
func (CapBaseMultiplication) baseMultiplication() {}
func (CapBaseDivision) baseDivision() {}
func (CapGeneralMultiplication) generalMultiplication() {}
func (CapGeneralDivision) generalDivision() {}
func (CapSpecificModulo) specificModulo() {}
func (CapModulo) modulo() {}
func (CapNativeTyping) nativeTyping() {}

// Capability constraints. A function constrained by one of these only
// accepts numbers whose capability type embeds the matching marker.
type (
	Constructible          interface{ Caps; constructible() }
	Mutable                interface{ Caps; mutable() }
	DefaultConstructible   interface{ Caps; defaultConstructible() }
	GeneralConstructible   interface{ Caps; generalConstructible() }
	LateAssignable         interface{ Caps; lateAssignable() }
	SpecificEquatable      interface{ Caps; specificEquality() }
	Equatable              interface{ Caps; equality() }
	SpecificOrderable      interface{ Caps; specificOrdering() }
	Orderable              interface{ Caps; ordering() }
	Incrementable          interface{ Caps; incDec() }
	SpecificAdditive       interface{ Caps; specificPlusMinus() }
	GeneralAdditive        interface{ Caps; generalPlusMinus() }
	SpecificMultiplicative interface{ Caps; specificMultiplication() }
	SpecificDivisible      interface{ Caps; specificDivision() }
	IntegerMultiplicative  interface{ Caps; integerMultiplication() }
	IntegerDivisible       interface{ Caps; integerDivision() }
	FloatMultiplicative    interface{ Caps; floatMultiplication() }
	FloatDivisible         interface{ Caps; floatDivision() }
	BaseMultiplicative     interface{ Caps; baseMultiplication() }
	BaseDivisible          interface{ Caps; baseDivision() }
	GeneralMultiplicative  interface{ Caps; generalMultiplication() }
	GeneralDivisible       interface{ Caps; generalDivision() }
	SpecificModular        interface{ Caps; specificModulo() }
	Modular                interface{ Caps; modulo() }
	Native                 interface{ Caps; nativeTyping() }
)

// Markers reports the capabilities c carries through its embedded marker
// types, in [flags.Capability] order. For a well formed capability type the
// result equals c.Flags().Capabilities().
func Markers(c Caps) []flags.Capability {
	var out []flags.Capability
	for _, capability := range flags.AllCapabilities() {
		if hasMarker(c, capability) {
			out = append(out, capability)
		}
	}

	return out
}

func hasMarker(c Caps, capability flags.Capability) bool {
	var ok bool

	switch capability {
	case flags.CapConstruct:
		_, ok = c.(Constructible)
	case flags.CapMutate:
		_, ok = c.(Mutable)
	case flags.CapDefaultConstruction:
		_, ok = c.(DefaultConstructible)
	case flags.CapGeneralConstruction:
		_, ok = c.(GeneralConstructible)
	case flags.CapLateAssignment:
		_, ok = c.(LateAssignable)
	case flags.CapSpecificEquality:
		_, ok = c.(SpecificEquatable)
	case flags.CapEquality:
		_, ok = c.(Equatable)
	case flags.CapSpecificOrdering:
		_, ok = c.(SpecificOrderable)
	case flags.CapOrdering:
		_, ok = c.(Orderable)
	case flags.CapIncDec:
		_, ok = c.(Incrementable)
	case flags.CapSpecificPlusMinus:
		_, ok = c.(SpecificAdditive)
	case flags.CapGeneralPlusMinus:
		_, ok = c.(GeneralAdditive)
	case flags.CapSpecificMultiplication:
		_, ok = c.(SpecificMultiplicative)
	case flags.CapSpecificDivision:
		_, ok = c.(SpecificDivisible)
	case flags.CapIntegerMultiplication:
		_, ok = c.(IntegerMultiplicative)
	case flags.CapIntegerDivision:
		_, ok = c.(IntegerDivisible)
	case flags.CapFloatMultiplication:
		_, ok = c.(FloatMultiplicative)
	case flags.CapFloatDivision:
		_, ok = c.(FloatDivisible)
	case flags.CapBaseMultiplication:
		_, ok = c.(BaseMultiplicative)
	case flags.CapBaseDivision:
		_, ok = c.(BaseDivisible)
	case flags.CapGeneralMultiplication:
		_, ok = c.(GeneralMultiplicative)
	case flags.CapGeneralDivision:
		_, ok = c.(GeneralDivisible)
	case flags.CapSpecificModulo:
		_, ok = c.(SpecificModular)
	case flags.CapModulo:
		_, ok = c.(Modular)
	case flags.CapNativeTyping:
		_, ok = c.(Native)
	}

	return ok
}
