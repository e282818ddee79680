package dycktesting

import "github.com/datatrails/go-datatrails-common/logger"

type ValidatorOptions struct {
	Log             logger.Logger
	MaxLeaves       int
	Representations []Representation
	// RandomShapes is the number of random shapes, beyond 64 bits, driven
	// through the wide representations.
	RandomShapes int
	Seed         int64
}

// Option is a generic option type. Implementations type assert to their
// options target record and ignore options for other targets.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*ValidatorOptions); ok {
			o.Log = log
		}
	}
}

func WithMaxLeaves(n int) Option {
	return func(opts any) {
		if o, ok := opts.(*ValidatorOptions); ok {
			o.MaxLeaves = n
		}
	}
}

func WithRepresentations(reprs ...Representation) Option {
	return func(opts any) {
		if o, ok := opts.(*ValidatorOptions); ok {
			o.Representations = reprs
		}
	}
}

func WithRandomShapes(count int, seed int64) Option {
	return func(opts any) {
		if o, ok := opts.(*ValidatorOptions); ok {
			o.RandomShapes = count
			o.Seed = seed
		}
	}
}
