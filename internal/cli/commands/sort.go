package commands

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
	"github.com/katalvlaran/lvlsort/internal/dataset"
)

type sortResult[T any] struct {
	Algorithm string `json:"algorithm"`
	Input     []T    `json:"input"`
	Output    []T    `json:"output"`
}

// NewSortCommand creates the sort command.
func NewSortCommand() *cobra.Command {
	var algo string

	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort the given values or a generated dataset",
		Long: `Sort runs one algorithm over the values given as arguments. Without
arguments a dataset of --size elements of --kind is generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if dataset.Kind(cfg.Kind) == dataset.KindNames {
				data, err := loadNames(cfg, args)
				if err != nil {
					return err
				}
				return runSort(cmd, cfg, algo, data)
			}
			data, err := loadInts(cfg, args)
			if err != nil {
				return err
			}
			return runSort(cmd, cfg, algo, data)
		},
	}
	cmd.Flags().StringVarP(&algo, "algo", "a", "quick", "algorithm name")

	return cmd
}

func runSort[T cmp.Ordered](cmd *cobra.Command, cfg *config.Config, name string, data []T) error {
	logger := config.GetLogger(cmd.Context())

	algo, err := lookup[T](cfg, name)
	if err != nil {
		return err
	}
	input := slices.Clone(data)
	logger.Debug("sorting", "algorithm", algo.Name, "n", len(data), "kind", cfg.Kind)

	out, err := algo.Run(data)
	if err != nil {
		return fmt.Errorf("%s sort: %w", algo.Name, err)
	}

	return render(cmd.OutOrStdout(), cfg.Output, report{
		Header:  table.Row{"Algorithm", "N", "Output"},
		Rows:    []table.Row{{algo.Name, len(out), joinValues(out)}},
		Payload: sortResult[T]{Algorithm: algo.Name, Input: input, Output: out},
	})
}
