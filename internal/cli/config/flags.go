package config

import "github.com/spf13/pflag"

// RegisterFlags declares every configurable flag on fs. The registered
// defaults are only for help output; Load applies a flag only when it was set.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default: ./lvlsort.yaml)")
	fs.Int64("seed", DefaultSeed, "RNG seed for generated data and bogo algorithms (0 = fixed default)")
	fs.Int("size", DefaultSize, "number of elements to generate when no values are given")
	fs.Int("max-value", DefaultMaxValue, "generated ints are drawn from [0, max-value)")
	fs.String("kind", DefaultKind, "element kind (ints|names)")
	fs.StringP("output", "o", DefaultOutput, "output format (table|json|plain)")
	fs.BoolP("verbose", "v", false, "debug logging on stderr")
	fs.Int("workers", DefaultWorkers, "parallel workers for bench")
	fs.Duration("search-timeout", DefaultSearchTimeout, "time budget for bogo search")
	fs.Int("bogo-max-len", DefaultBogoMaxLen, "longest input bogo sort accepts")
	fs.Int("bogobogo-max-len", DefaultBogoBogoMaxLen, "longest input bogobogo sort accepts")
	fs.Int("bogo-max-shuffles", DefaultBogoMaxShuffles, "shuffle budget for the bogo sorts")
}
