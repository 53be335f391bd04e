// Package dobfs defines tunable options and error definitions for
// direction-optimizing BFS over a csr.Graph.
package dobfs

import (
	"errors"
	"fmt"
	"runtime"
)

// Default heuristic thresholds, from the direction-optimizing BFS paper.
const (
	// DefaultAlpha is the top-down→bottom-up cost-ratio threshold: switch
	// when scout count exceeds a 1/DefaultAlpha share of the remaining
	// edge budget.
	DefaultAlpha = 15

	// DefaultBeta is the bottom-up continuation density threshold: keep
	// scanning bottom-up while the round discovers more than
	// NumNodes/DefaultBeta vertices.
	DefaultBeta = 18
)

// Sentinel errors for traversal execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dobfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source id is outside [0, NumNodes).
	ErrSourceOutOfRange = errors.New("dobfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dobfs: invalid option supplied")
)

// Option configures traversal behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds the tuning parameters of one traversal.
type Options struct {
	// Alpha is the top-down→bottom-up switch threshold (must be > 0).
	Alpha int64

	// Beta is the bottom-up continuation threshold (must be > 0).
	Beta int64

	// Workers is the parallel region fan-out (must be > 0).
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with Alpha=15, Beta=18 and one worker
// per available CPU.
func DefaultOptions() Options {
	return Options{
		Alpha:   DefaultAlpha,
		Beta:    DefaultBeta,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithAlpha overrides the top-down→bottom-up cost-ratio threshold.
// A higher alpha delays the switch; alpha <= 0 is an option violation.
func WithAlpha(alpha int64) Option {
	return func(o *Options) {
		if alpha <= 0 {
			o.err = fmt.Errorf("%w: alpha must be positive (%d)", ErrOptionViolation, alpha)
			return
		}
		o.Alpha = alpha
	}
}

// WithBeta overrides the bottom-up continuation density threshold.
// A higher beta leaves bottom-up earlier; beta <= 0 is an option violation.
func WithBeta(beta int64) Option {
	return func(o *Options) {
		if beta <= 0 {
			o.err = fmt.Errorf("%w: beta must be positive (%d)", ErrOptionViolation, beta)
			return
		}
		o.Beta = beta
	}
}

// WithWorkers sets the number of workers per parallel region.
// workers <= 0 is an option violation.
func WithWorkers(workers int) Option {
	return func(o *Options) {
		if workers <= 0 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, workers)
			return
		}
		o.Workers = workers
	}
}
