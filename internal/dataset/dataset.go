// Package dataset produces the inputs the CLI feeds to the algorithms:
// seeded random integers, random names, or values parsed from arguments.
package dataset

import (
	"errors"
	"fmt"
	"strconv"

	randomdata "github.com/Pallinder/go-randomdata"

	"github.com/katalvlaran/lvlsort/internal/rng"
)

// Kind names an element type the CLI can work with.
type Kind string

const (
	// KindInts is the int element kind.
	KindInts Kind = "ints"
	// KindNames is the string element kind.
	KindNames Kind = "names"
)

var (
	// ErrUnknownKind indicates a kind other than ints or names.
	ErrUnknownKind = errors.New("dataset: unknown kind")

	// ErrParse indicates an argument could not be parsed as the requested kind.
	ErrParse = errors.New("dataset: cannot parse value")

	// ErrBadSize indicates a negative size or non-positive max value.
	ErrBadSize = errors.New("dataset: size must be >= 0 and max value > 0")
)

// ParseKind validates s as a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindInts, KindNames:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Ints returns size integers drawn uniformly from [0, maxValue) with a
// stream fixed by seed (0 selects the default seed).
func Ints(size, maxValue int, seed int64) ([]int, error) {
	if size < 0 || maxValue <= 0 {
		return nil, ErrBadSize
	}
	r := rng.FromSeed(seed)
	out := make([]int, size)
	for i := range out {
		out[i] = r.Intn(maxValue)
	}

	return out, nil
}

// Names returns size random names. Unlike Ints the output is not tied to a
// seed: go-randomdata draws from its own source.
func Names(size int) ([]string, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	out := make([]string, size)
	for i := range out {
		out[i] = randomdata.SillyName()
	}

	return out, nil
}

// ParseInts converts every argument to an int.
func ParseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an integer", ErrParse, a)
		}
		out[i] = v
	}

	return out, nil
}
