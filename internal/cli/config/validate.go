package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlsort/internal/dataset"
)

// outputs lists the accepted output formats.
var outputs = map[string]bool{"table": true, "json": true, "plain": true}

// Validate reports every out-of-range field at once, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var problems []string
	if c.Size < 0 {
		problems = append(problems, fmt.Sprintf("size must be >= 0, got %d", c.Size))
	}
	if c.MaxValue <= 0 {
		problems = append(problems, fmt.Sprintf("max_value must be > 0, got %d", c.MaxValue))
	}
	if _, err := dataset.ParseKind(c.Kind); err != nil {
		problems = append(problems, fmt.Sprintf("kind: %v", err))
	}
	if !outputs[c.Output] {
		problems = append(problems, fmt.Sprintf("output must be table, json or plain, got %q", c.Output))
	}
	if c.Workers < 1 {
		problems = append(problems, fmt.Sprintf("workers must be >= 1, got %d", c.Workers))
	}
	if c.SearchTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("search_timeout must be > 0, got %s", c.SearchTimeout))
	}
	if c.Bogo.MaxLen < 1 {
		problems = append(problems, fmt.Sprintf("bogo.max_len must be >= 1, got %d", c.Bogo.MaxLen))
	}
	if c.Bogo.BogoBogoMaxLen < 1 {
		problems = append(problems, fmt.Sprintf("bogo.bogobogo_max_len must be >= 1, got %d", c.Bogo.BogoBogoMaxLen))
	}
	if c.Bogo.MaxShuffles < 1 {
		problems = append(problems, fmt.Sprintf("bogo.max_shuffles must be >= 1, got %d", c.Bogo.MaxShuffles))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}

	return nil
}
