package search

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates the searched value is absent from the sequence.
	ErrNotFound = errors.New("search: value not found")

	// ErrTimeout indicates Bogo exhausted its time budget without a match.
	ErrTimeout = errors.New("search: time budget exhausted")
)

// DefaultBogoTimeout is the time budget Bogo uses when none is given.
const DefaultBogoTimeout = 20 * time.Second

// BogoOption configures optional behavior of Bogo.
type BogoOption func(*BogoOptions)

// BogoOptions holds the knobs of the random-probing search.
type BogoOptions struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// Timeout bounds the probing loop. Non-positive values fall back to
	// DefaultBogoTimeout.
	Timeout time.Duration

	// Seed drives the index sampler. 0 selects the fixed default seed.
	Seed int64
}

// DefaultBogoOptions returns Background context, DefaultBogoTimeout and seed 0.
func DefaultBogoOptions() BogoOptions {
	return BogoOptions{
		Ctx:     context.Background(),
		Timeout: DefaultBogoTimeout,
		Seed:    0,
	}
}

// WithContext sets the context checked between probes.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) BogoOption {
	return func(o *BogoOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTimeout sets the probing time budget.
func WithTimeout(d time.Duration) BogoOption {
	return func(o *BogoOptions) {
		if d > 0 {
			o.Timeout = d
		}
	}
}

// WithSeed sets the sampler seed.
func WithSeed(seed int64) BogoOption {
	return func(o *BogoOptions) {
		o.Seed = seed
	}
}
