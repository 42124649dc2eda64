package commands

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
	"github.com/katalvlaran/lvlsort/internal/dataset"
	"github.com/katalvlaran/lvlsort/sorting"
)

// loadInts parses args, or generates cfg.Size seeded ints when args is empty.
func loadInts(cfg *config.Config, args []string) ([]int, error) {
	if len(args) > 0 {
		return dataset.ParseInts(args)
	}
	return dataset.Ints(cfg.Size, cfg.MaxValue, cfg.Seed)
}

// loadNames returns args as-is, or cfg.Size random names when args is empty.
func loadNames(cfg *config.Config, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	return dataset.Names(cfg.Size)
}

// catalog returns sorting.Catalog with the bogo entries bound to the
// configured gates and seed.
func catalog[T cmp.Ordered](cfg *config.Config) []sorting.Algorithm[T] {
	shared := []sorting.BogoOption{
		sorting.WithMaxShuffles(cfg.Bogo.MaxShuffles),
		sorting.WithSeed(cfg.Seed),
	}
	bogoOpts := append([]sorting.BogoOption{sorting.WithMaxLen(cfg.Bogo.MaxLen)}, shared...)
	bogoBogoOpts := append([]sorting.BogoOption{sorting.WithMaxLen(cfg.Bogo.BogoBogoMaxLen)}, shared...)

	cat := sorting.Catalog[T]()
	for i := range cat {
		switch cat[i].Name {
		case "bogo":
			cat[i].Run = func(s []T) ([]T, error) { return s, sorting.Bogo(s, bogoOpts...) }
		case "bogobogo":
			cat[i].Run = func(s []T) ([]T, error) { return s, sorting.BogoBogo(s, bogoBogoOpts...) }
		}
	}
	return cat
}

// lookup finds name in the configured catalog.
func lookup[T cmp.Ordered](cfg *config.Config, name string) (sorting.Algorithm[T], error) {
	for _, a := range catalog[T](cfg) {
		if a.Name == name {
			return a, nil
		}
	}
	return sorting.Algorithm[T]{}, fmt.Errorf("%w: %q (see `lvlsort algorithms`)", sorting.ErrUnknownAlgorithm, name)
}
