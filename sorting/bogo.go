package sorting

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/katalvlaran/lvlsort/internal/rng"
)

// Bogo shuffles seq until it is sorted.
//
// Inputs longer than MaxLen fail with ErrInputTooLarge and running out of
// MaxShuffles fails with ErrIterationLimit. The shuffling happens on a copy,
// so seq is only written once the copy is sorted.
//
// Expected time: O(n·n!).
func Bogo[T cmp.Ordered](seq []T, opts ...BogoOption) error {
	o, err := bogoPrepare(seq, DefaultBogoMaxLen, opts)
	if err != nil {
		return err
	}
	work := slices.Clone(seq)
	r := rng.FromSeed(o.Seed)

	for shuffles := 0; !IsSorted(work); shuffles++ {
		if shuffles >= o.MaxShuffles {
			return ErrIterationLimit
		}
		rng.Shuffle(work, r)
	}
	copy(seq, work)

	return nil
}

// BogoBogo grows a sorted prefix one element at a time: seq[:k] is shuffled,
// and k advances when the shuffled prefix is in order and falls back to 1
// when it is not. It finishes once the whole slice has been accepted.
//
// An input that is already sorted returns at once without shuffling. The
// length gate defaults to DefaultBogoBogoMaxLen; the shuffle budget and the
// copy-back policy are the same as Bogo's. Expected time grows
// super-exponentially with len(seq).
func BogoBogo[T cmp.Ordered](seq []T, opts ...BogoOption) error {
	o, err := bogoPrepare(seq, DefaultBogoBogoMaxLen, opts)
	if err != nil {
		return err
	}
	if IsSorted(seq) {
		return nil
	}
	work := slices.Clone(seq)
	r := rng.FromSeed(o.Seed)

	if err := growSortedPrefix(work, r, o.MaxShuffles); err != nil {
		return err
	}
	copy(seq, work)

	return nil
}

func growSortedPrefix[T cmp.Ordered](work []T, r *rand.Rand, budget int) error {
	shuffles := 0
	for k := 1; k <= len(work); {
		if shuffles >= budget {
			return ErrIterationLimit
		}
		rng.Shuffle(work[:k], r)
		shuffles++
		if IsSorted(work[:k]) {
			k++
		} else {
			k = 1
		}
	}

	return nil
}

func bogoPrepare[T cmp.Ordered](seq []T, maxLen int, opts []BogoOption) (BogoOptions, error) {
	o := DefaultBogoOptions()
	o.MaxLen = maxLen
	for _, fn := range opts {
		fn(&o)
	}
	if len(seq) > o.MaxLen {
		return o, ErrInputTooLarge
	}

	return o, nil
}
