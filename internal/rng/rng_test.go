package rng_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlsort/internal/rng"
)

func TestFromSeed_ZeroUsesDefault(t *testing.T) {
	a := rng.FromSeed(0)
	b := rng.FromSeed(rng.DefaultSeed)
	for i := 0; i < 8; i++ {
		assert.Equal(t, a.Int63(), b.Int63(), "seed 0 must behave like DefaultSeed")
	}
}

func TestShuffle_SeedDeterminism(t *testing.T) {
	base := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	first := slices.Clone(base)
	rng.Shuffle(first, rng.FromSeed(42))
	second := slices.Clone(base)
	rng.Shuffle(second, rng.FromSeed(42))

	assert.Equal(t, first, second, "same seed must give the same permutation")
	assert.ElementsMatch(t, base, first, "shuffle must be a permutation")
}

func TestShuffle_NilRandAndTinyInputs(t *testing.T) {
	var empty []int
	rng.Shuffle(empty, nil)
	assert.Empty(t, empty)

	one := []string{"x"}
	rng.Shuffle(one, nil)
	assert.Equal(t, []string{"x"}, one)

	many := []int{3, 1, 2}
	rng.Shuffle(many, nil)
	assert.ElementsMatch(t, []int{1, 2, 3}, many)
}
