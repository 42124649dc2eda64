package sorting

import "errors"

var (
	// ErrInvalidRange indicates QuickRange bounds are out of the slice or start > end.
	ErrInvalidRange = errors.New("sorting: invalid index range")

	// ErrInputTooLarge indicates a bogo sort was asked to handle more than MaxLen elements.
	ErrInputTooLarge = errors.New("sorting: input too large for bogo sort")

	// ErrIterationLimit indicates a bogo sort used up MaxShuffles without finishing.
	ErrIterationLimit = errors.New("sorting: shuffle limit reached")

	// ErrUnknownAlgorithm indicates Lookup was given a name not in the catalog.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")
)

// Pivot selects how Quick picks the partition pivot.
type Pivot int

const (
	// PivotFirst uses seq[start]. Sorted and reverse-sorted inputs hit O(n²).
	PivotFirst Pivot = iota

	// PivotMedianOfThree moves the median of seq[start], seq[mid], seq[end]
	// into start before partitioning.
	PivotMedianOfThree
)

// QuickOption configures Quick and QuickRange.
type QuickOption func(*QuickOptions)

// QuickOptions holds the quicksort knobs.
type QuickOptions struct {
	Pivot Pivot
}

// WithPivot selects the pivot strategy.
func WithPivot(p Pivot) QuickOption {
	return func(o *QuickOptions) {
		o.Pivot = p
	}
}

// Defaults for the bogo family. BogoBogo gets a shorter length gate: its
// expected shuffle count grows like the product of k! for k <= n, which
// passes DefaultBogoMaxShuffles at n = 6.
const (
	DefaultBogoMaxLen      = 8
	DefaultBogoBogoMaxLen  = 5
	DefaultBogoMaxShuffles = 1_000_000
)

// BogoOption configures Bogo and BogoBogo.
type BogoOption func(*BogoOptions)

// BogoOptions bounds the otherwise unbounded bogo sorts.
//
// Fields:
//   - MaxLen      - longest accepted input; longer inputs fail with ErrInputTooLarge.
//   - MaxShuffles - shuffle budget; exhausting it fails with ErrIterationLimit.
//   - Seed        - shuffle seed; 0 selects the fixed default seed.
type BogoOptions struct {
	MaxLen      int
	MaxShuffles int
	Seed        int64
}

// DefaultBogoOptions returns MaxLen=8, MaxShuffles=1e6, Seed=0.
// BogoBogo starts from the same values with MaxLen=DefaultBogoBogoMaxLen.
func DefaultBogoOptions() BogoOptions {
	return BogoOptions{
		MaxLen:      DefaultBogoMaxLen,
		MaxShuffles: DefaultBogoMaxShuffles,
		Seed:        0,
	}
}

// WithMaxLen overrides the input length gate. Non-positive values are ignored.
func WithMaxLen(n int) BogoOption {
	return func(o *BogoOptions) {
		if n > 0 {
			o.MaxLen = n
		}
	}
}

// WithMaxShuffles overrides the shuffle budget. Non-positive values are ignored.
func WithMaxShuffles(n int) BogoOption {
	return func(o *BogoOptions) {
		if n > 0 {
			o.MaxShuffles = n
		}
	}
}

// WithSeed sets the shuffle seed.
func WithSeed(seed int64) BogoOption {
	return func(o *BogoOptions) {
		o.Seed = seed
	}
}
