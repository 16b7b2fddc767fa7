// Package gen renders Go source for number types declared in YAML.
//
// A declaration names number types with their flag expression, policy and
// representation types, and physical dimensions with their base unit
// exponents. For every type the generator emits a tag type, a capability
// type embedding exactly the markers its flags grant and a generic alias.
// Types with native typing also get promotion typed helpers for every pair
// of declared representations, and every pair of dimensions whose product
// or quotient is itself declared gets a typed Mul or Div function.
package gen
