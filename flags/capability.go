package flags

// Capability is a predicate derived from a [Set]. Every capability has a
// marker type with the same name in package number; a number's capability
// type embeds the markers of exactly the capabilities its Set grants.
type Capability uint8

const (
	CapConstruct Capability = iota
	CapMutate
	CapDefaultConstruction
	CapGeneralConstruction
	CapLateAssignment
	CapSpecificEquality
	CapEquality
	CapSpecificOrdering
	CapOrdering
	CapIncDec
	CapSpecificPlusMinus
	CapGeneralPlusMinus
	CapSpecificMultiplication
	CapSpecificDivision
	CapIntegerMultiplication
	CapIntegerDivision
	CapFloatMultiplication
	CapFloatDivision
	CapBaseMultiplication
	CapBaseDivision
	CapGeneralMultiplication
	CapGeneralDivision
	CapSpecificModulo
	CapModulo
	CapNativeTyping

	numCapabilities
)

var capabilityNames = [numCapabilities]string{
	CapConstruct:              "CapConstruct",
	CapMutate:                 "CapMutate",
	CapDefaultConstruction:    "CapDefaultConstruction",
	CapGeneralConstruction:    "CapGeneralConstruction",
	CapLateAssignment:         "CapLateAssignment",
	CapSpecificEquality:       "CapSpecificEquality",
	CapEquality:               "CapEquality",
	CapSpecificOrdering:       "CapSpecificOrdering",
	CapOrdering:               "CapOrdering",
	CapIncDec:                 "CapIncDec",
	CapSpecificPlusMinus:      "CapSpecificPlusMinus",
	CapGeneralPlusMinus:       "CapGeneralPlusMinus",
	CapSpecificMultiplication: "CapSpecificMultiplication",
	CapSpecificDivision:       "CapSpecificDivision",
	CapIntegerMultiplication:  "CapIntegerMultiplication",
	CapIntegerDivision:        "CapIntegerDivision",
	CapFloatMultiplication:    "CapFloatMultiplication",
	CapFloatDivision:          "CapFloatDivision",
	CapBaseMultiplication:     "CapBaseMultiplication",
	CapBaseDivision:           "CapBaseDivision",
	CapGeneralMultiplication:  "CapGeneralMultiplication",
	CapGeneralDivision:        "CapGeneralDivision",
	CapSpecificModulo:         "CapSpecificModulo",
	CapModulo:                 "CapModulo",
	CapNativeTyping:           "CapNativeTyping",
}

// String returns the name of the marker type for c.
func (c Capability) String() string {
	if c >= numCapabilities {
		return "Capability(?)"
	}

	return capabilityNames[c]
}

// AllCapabilities returns every capability in declaration order.
func AllCapabilities() []Capability {
	all := make([]Capability, numCapabilities)
	for i := range all {
		all[i] = Capability(i)
	}

	return all
}

// Grants reports whether s grants c.
func (s Set) Grants(c Capability) bool {
	constructible := s.Lacks(DISABLE_CONSTRUCTION)
	mutable := s.Lacks(DISABLE_MUTABILITY)

	switch c {
	case CapConstruct:
		return constructible
	case CapMutate:
		return mutable
	case CapDefaultConstruction:
		return constructible && s.Has(ENABLE_DEFAULT_CONSTRUCTION)
	case CapGeneralConstruction:
		return constructible && s.Has(ENABLE_GENERAL_CONSTRUCTION)
	case CapLateAssignment:
		return mutable && s.Has(ENABLE_LATE_ASSIGNMENT)
	case CapSpecificEquality:
		return s.Has(ENABLE_SPECIFIC_EQUALITY_CHECK)
	case CapEquality:
		return s.Has(bitEquality)
	case CapSpecificOrdering:
		return s.Has(bitSpecificOrdering)
	case CapOrdering:
		return s.Has(bitOrdering)
	case CapIncDec:
		return mutable && s.Has(ENABLE_INC_DEC)
	case CapSpecificPlusMinus:
		return s.Has(ENABLE_SPECIFIC_PLUS_MINUS)
	case CapGeneralPlusMinus:
		return s.Has(ENABLE_GENERAL_PLUS_MINUS)
	case CapSpecificMultiplication:
		return s.Has(ENABLE_SPECIFIC_MULTIPLICATION)
	case CapSpecificDivision:
		return s.Has(ENABLE_SPECIFIC_DIVISION)
	case CapIntegerMultiplication:
		return s.Any(ENABLE_INTEGER_MULTIPLICATION | ENABLE_GENERAL_MULTIPLICATION)
	case CapIntegerDivision:
		return s.Any(ENABLE_INTEGER_DIVISION | ENABLE_GENERAL_DIVISION)
	case CapFloatMultiplication:
		return s.Any(bitFloatMultiplication | ENABLE_GENERAL_MULTIPLICATION)
	case CapFloatDivision:
		return s.Any(bitFloatDivision | ENABLE_GENERAL_DIVISION)
	case CapBaseMultiplication:
		return s.Any(ENABLE_BASE_MULTIPLICATION | ENABLE_GENERAL_MULTIPLICATION)
	case CapBaseDivision:
		return s.Any(ENABLE_BASE_DIVISION | ENABLE_GENERAL_DIVISION)
	case CapGeneralMultiplication:
		return s.Has(ENABLE_GENERAL_MULTIPLICATION)
	case CapGeneralDivision:
		return s.Has(ENABLE_GENERAL_DIVISION)
	case CapSpecificModulo:
		return s.Has(ENABLE_SPECIFIC_MODULO)
	case CapModulo:
		return s.Has(bitModulo)
	case CapNativeTyping:
		return s.Has(ENABLE_NATIVE_TYPING)
	}

	return false
}

// Capabilities returns the capabilities granted by s in declaration order.
func (s Set) Capabilities() []Capability {
	var caps []Capability
	for _, c := range AllCapabilities() {
		if s.Grants(c) {
			caps = append(caps, c)
		}
	}

	return caps
}
