package sorting_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/sorting"
)

func TestBogo_SortsSmallInput(t *testing.T) {
	seq := []int{3, 1, 4, 1, 5, 2}
	require.NoError(t, sorting.Bogo(seq, sorting.WithSeed(11)))
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5}, seq)
}

func TestBogoBogo_SortsSmallInput(t *testing.T) {
	seq := []int{4, 2, 3, 1}
	require.NoError(t, sorting.BogoBogo(seq, sorting.WithSeed(5)))
	assert.Equal(t, []int{1, 2, 3, 4}, seq)
}

func TestBogo_Boundaries(t *testing.T) {
	for name, sortFn := range map[string]func([]int, ...sorting.BogoOption) error{
		"Bogo":     sorting.Bogo[int],
		"BogoBogo": sorting.BogoBogo[int],
	} {
		t.Run(name, func(t *testing.T) {
			var empty []int
			assert.NoError(t, sortFn(empty))

			one := []int{9}
			assert.NoError(t, sortFn(one))
			assert.Equal(t, []int{9}, one)
		})
	}
}

func TestBogo_RejectsLargeInput(t *testing.T) {
	seq := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}
	for name, sortFn := range map[string]func([]int, ...sorting.BogoOption) error{
		"Bogo":     sorting.Bogo[int],
		"BogoBogo": sorting.BogoBogo[int],
	} {
		t.Run(name, func(t *testing.T) {
			in := append([]int(nil), seq...)
			assert.ErrorIs(t, sortFn(in), sorting.ErrInputTooLarge)
			assert.Equal(t, seq, in)
		})
	}
}

func TestBogo_IterationLimitLeavesInputUnchanged(t *testing.T) {
	for name, sortFn := range map[string]func([]int, ...sorting.BogoOption) error{
		"Bogo":     sorting.Bogo[int],
		"BogoBogo": sorting.BogoBogo[int],
	} {
		t.Run(name, func(t *testing.T) {
			in := []int{8, 7, 6, 5, 4, 3, 2, 1}
			err := sortFn(in, sorting.WithMaxLen(8), sorting.WithMaxShuffles(3))
			assert.ErrorIs(t, err, sorting.ErrIterationLimit)
			assert.Equal(t, []int{8, 7, 6, 5, 4, 3, 2, 1}, in, "failed call must not reorder")
		})
	}
}

func TestBogo_Options(t *testing.T) {
	o := sorting.DefaultBogoOptions()
	assert.Equal(t, sorting.DefaultBogoMaxLen, o.MaxLen)
	assert.Equal(t, sorting.DefaultBogoMaxShuffles, o.MaxShuffles)

	sorting.WithMaxLen(0)(&o)
	sorting.WithMaxShuffles(-5)(&o)
	assert.Equal(t, sorting.DefaultBogoMaxLen, o.MaxLen, "non-positive values are ignored")
	assert.Equal(t, sorting.DefaultBogoMaxShuffles, o.MaxShuffles)

	seq := []int{2, 1, 3, 0, 5, 4, 7, 6, 9}
	assert.NoError(t, sorting.Bogo(seq[:2], sorting.WithMaxLen(2)))
}

// ascending returns [0, 1, ..., n-1].
func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestBogo_SortedInputIsIdempotent(t *testing.T) {
	for n := 1; n <= sorting.DefaultBogoMaxLen; n++ {
		t.Run(fmt.Sprintf("Bogo/n=%d", n), func(t *testing.T) {
			seq := ascending(n)
			require.NoError(t, sorting.Bogo(seq))
			assert.Equal(t, ascending(n), seq)
		})
		t.Run(fmt.Sprintf("BogoBogo/n=%d", n), func(t *testing.T) {
			var opts []sorting.BogoOption
			if n > sorting.DefaultBogoBogoMaxLen {
				opts = append(opts, sorting.WithMaxLen(n))
			}
			seq := ascending(n)
			require.NoError(t, sorting.BogoBogo(seq, append(opts, sorting.WithMaxShuffles(1))...),
				"sorted input must return without shuffling")
			assert.Equal(t, ascending(n), seq)
		})
	}
}

func TestBogoBogo_DefaultGate(t *testing.T) {
	seq := []int{4, 0, 3, 1, 2}
	require.Len(t, seq, sorting.DefaultBogoBogoMaxLen)
	require.NoError(t, sorting.BogoBogo(seq), "the default gate only admits lengths the default budget can finish")
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seq)

	tooLong := []int{5, 4, 3, 2, 1, 0}
	assert.ErrorIs(t, sorting.BogoBogo(tooLong), sorting.ErrInputTooLarge)
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0}, tooLong)
}
