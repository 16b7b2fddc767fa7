package gen

import "go.uber.org/zap"

const (
	defaultModule = "go.dw1.io/typebuilder"
	defaultPolicy = "number.EmptyPolicy"
	defaultHeader = "Code generated by typebuilder. DO NOT EDIT."
)

type options struct {
	logger *zap.Logger
	module string
	policy string
	header string
}

// Option configures a [Generator].
type Option func(*options)

// WithLogger sets the logger used while generating. Defaults to [Logger].
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithModule sets the import path the generated code uses for the flags,
// number and physical packages.
func WithModule(path string) Option {
	return func(o *options) {
		o.module = path
	}
}

// WithDefaultPolicy sets the policy of types that do not declare one. The
// policy is a generic type with one type parameter, written without it.
func WithDefaultPolicy(policy string) Option {
	return func(o *options) {
		o.policy = policy
	}
}

// WithHeader sets the comment placed above the package clause.
func WithHeader(header string) Option {
	return func(o *options) {
		o.header = header
	}
}
