package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlsort/internal/dataset"
)

func TestParseKind(t *testing.T) {
	k, err := dataset.ParseKind("ints")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindInts, k)

	k, err = dataset.ParseKind("names")
	require.NoError(t, err)
	assert.Equal(t, dataset.KindNames, k)

	_, err = dataset.ParseKind("floats")
	assert.ErrorIs(t, err, dataset.ErrUnknownKind)
}

func TestInts_SeededAndBounded(t *testing.T) {
	a, err := dataset.Ints(100, 10, 7)
	require.NoError(t, err)
	b, err := dataset.Ints(100, 10, 7)
	require.NoError(t, err)

	assert.Equal(t, a, b, "same seed, same data")
	for _, v := range a {
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}

	_, err = dataset.Ints(-1, 10, 0)
	assert.ErrorIs(t, err, dataset.ErrBadSize)
	_, err = dataset.Ints(5, 0, 0)
	assert.ErrorIs(t, err, dataset.ErrBadSize)
}

func TestNames(t *testing.T) {
	names, err := dataset.Names(25)
	require.NoError(t, err)
	assert.Len(t, names, 25)
	for _, n := range names {
		assert.NotEmpty(t, n)
	}

	_, err = dataset.Names(-3)
	assert.ErrorIs(t, err, dataset.ErrBadSize)
}

func TestParseInts(t *testing.T) {
	got, err := dataset.ParseInts([]string{"3", "-1", "10"})
	require.NoError(t, err)
	assert.Equal(t, []int{3, -1, 10}, got)

	_, err = dataset.ParseInts([]string{"3", "x"})
	assert.ErrorIs(t, err, dataset.ErrParse)

	empty, err := dataset.ParseInts(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
