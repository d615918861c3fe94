// Package edfopts is a functional-options builder that assembles a
// edf.ParseOptions from named toggles. It contains no parsing logic of
// its own.
package edfopts

import "github.com/ltick/edf"

// Option mutates a ParseOptions under construction.
type Option func(*edf.ParseOptions)

// WithComments enables Comment and commented-out Pair entries.
func WithComments() Option {
	return func(o *edf.ParseOptions) { o.IncludeComments = true }
}

// WithoutComments disables Comment and commented-out Pair entries.
func WithoutComments() Option {
	return func(o *edf.ParseOptions) { o.IncludeComments = false }
}

// WithPositions enables span/position tracking on emitted entries.
func WithPositions() Option {
	return func(o *edf.ParseOptions) { o.TrackPositions = true }
}

// WithoutPositions disables span/position tracking.
func WithoutPositions() Option {
	return func(o *edf.ParseOptions) { o.TrackPositions = false }
}

// Build assembles a edf.ParseOptions starting from edf.Fast() and
// applying opts in order, so later options override earlier ones.
func Build(opts ...Option) edf.ParseOptions {
	o := edf.Fast()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// BuildFull is Build seeded from edf.Full() instead of edf.Fast(),
// for callers who want comments and positions by default and only
// want to turn specific toggles off.
func BuildFull(opts ...Option) edf.ParseOptions {
	o := edf.Full()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
