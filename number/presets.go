package number

import "go.dw1.io/typebuilder/flags"

// DefaultCaps grants [flags.DEFAULT_SETTINGS].
type DefaultCaps struct {
	CapConstruct
	CapMutate
	CapSpecificEquality
	CapSpecificOrdering
	CapIncDec
	CapSpecificPlusMinus
	CapIntegerMultiplication
	CapIntegerDivision
}

func (DefaultCaps) Flags() flags.Set { return flags.DEFAULT_SETTINGS }

// ConstCaps grants [flags.DEFAULT_SETTINGS] without mutability.
type ConstCaps struct {
	CapConstruct
	CapSpecificEquality
	CapSpecificOrdering
	CapSpecificPlusMinus
	CapIntegerMultiplication
	CapIntegerDivision
}

func (ConstCaps) Flags() flags.Set { return flags.DEFAULT_SETTINGS | flags.DISABLE_MUTABILITY }

// AllCaps grants [flags.ENABLE_ALL].
type AllCaps struct {
	CapConstruct
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
}

func (AllCaps) Flags() flags.Set { return flags.ENABLE_ALL }

// NativeCaps grants [flags.ENABLE_ALL] and [flags.ENABLE_NATIVE_TYPING].
type NativeCaps struct {
	AllCaps
	CapNativeTyping
}

func (NativeCaps) Flags() flags.Set { return flags.ENABLE_ALL | flags.ENABLE_NATIVE_TYPING }

// SealedCaps grants nothing. Numbers using it cannot be constructed.
type SealedCaps struct{}

func (SealedCaps) Flags() flags.Set { return flags.DISABLE_CONSTRUCTION | flags.DISABLE_MUTABILITY }
