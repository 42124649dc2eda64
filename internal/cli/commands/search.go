package commands

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
	"github.com/katalvlaran/lvlsort/internal/dataset"
	"github.com/katalvlaran/lvlsort/search"
	"github.com/katalvlaran/lvlsort/sorting"
)

// searchMethods lists the accepted --method values in display order.
var searchMethods = []string{"linear", "linear-recursive", "binary", "binary-recursive", "bogo"}

type searchResult[T any] struct {
	Method   string `json:"method"`
	Value    T      `json:"value"`
	Index    int    `json:"index"`
	Sequence []T    `json:"sequence"`
}

// NewSearchCommand creates the search command.
func NewSearchCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "search VALUE [values...]",
		Short: "Find VALUE in the given values or a generated dataset",
		Long: `Search looks VALUE up with the chosen method. The binary methods merge
sort the sequence first and report the index within the sorted sequence.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			if dataset.Kind(cfg.Kind) == dataset.KindNames {
				data, err := loadNames(cfg, args[1:])
				if err != nil {
					return err
				}
				return runSearch(cmd, cfg, method, args[0], data)
			}
			value, err := dataset.ParseInts(args[:1])
			if err != nil {
				return err
			}
			data, err := loadInts(cfg, args[1:])
			if err != nil {
				return err
			}
			return runSearch(cmd, cfg, method, value[0], data)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "m", "linear", "search method ("+strings.Join(searchMethods, "|")+")")

	return cmd
}

func runSearch[T cmp.Ordered](cmd *cobra.Command, cfg *config.Config, method string, value T, data []T) error {
	logger := config.GetLogger(cmd.Context())

	var (
		idx int
		err error
	)
	switch method {
	case "linear":
		idx, err = search.Linear(data, value)
	case "linear-recursive":
		idx, err = search.LinearRecursive(data, value)
	case "binary":
		data = sorting.Merge(data)
		idx, err = search.Binary(data, value)
	case "binary-recursive":
		data = sorting.Merge(data)
		idx, err = search.BinaryRecursive(data, value)
	case "bogo":
		idx, err = search.Bogo(data, value,
			search.WithContext(cmd.Context()),
			search.WithTimeout(cfg.SearchTimeout),
			search.WithSeed(cfg.Seed),
		)
	default:
		return fmt.Errorf("unknown search method %q (want one of %s)", method, strings.Join(searchMethods, ", "))
	}
	logger.Debug("search finished", "method", method, "n", len(data), "index", idx, "err", err)
	if err != nil {
		return fmt.Errorf("search %v: %w", value, err)
	}

	return render(cmd.OutOrStdout(), cfg.Output, report{
		Header:  table.Row{"Method", "Value", "Index"},
		Rows:    []table.Row{{method, value, idx}},
		Payload: searchResult[T]{Method: method, Value: value, Index: idx, Sequence: data},
	})
}
