// Package pattern compiles the small regular expressions used to read
// typebuilder text formats.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine).
// Patterns that need lookaround or backreferences fall back to regexp2.
package pattern
