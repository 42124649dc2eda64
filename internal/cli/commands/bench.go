package commands

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
	"github.com/katalvlaran/lvlsort/internal/dataset"
	"github.com/katalvlaran/lvlsort/sorting"
)

type benchResult struct {
	Algorithm string        `json:"algorithm"`
	N         int           `json:"n"`
	Duration  time.Duration `json:"duration_ns"`
	Sorted    bool          `json:"sorted"`
	Error     string        `json:"error,omitempty"`
}

type benchReport struct {
	RunID   string        `json:"run_id"`
	Kind    string        `json:"kind"`
	Results []benchResult `json:"results"`
}

// NewBenchCommand creates the bench command.
func NewBenchCommand() *cobra.Command {
	var algos []string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time several algorithms on the same generated dataset",
		Long: `Bench generates one dataset and runs every selected algorithm on its own
copy, --workers at a time. Algorithms that refuse the input (for example the
bogo sorts on large inputs) are reported instead of failing the run.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			if dataset.Kind(cfg.Kind) == dataset.KindNames {
				data, err := dataset.Names(cfg.Size)
				if err != nil {
					return err
				}
				return runBench(cmd, cfg, algos, data)
			}
			data, err := dataset.Ints(cfg.Size, cfg.MaxValue, cfg.Seed)
			if err != nil {
				return err
			}
			return runBench(cmd, cfg, algos, data)
		},
	}
	cmd.Flags().StringSliceVar(&algos, "algos", nil, "algorithms to run (default: all)")

	return cmd
}

func runBench[T cmp.Ordered](cmd *cobra.Command, cfg *config.Config, names []string, data []T) error {
	ctx := cmd.Context()
	logger := config.GetLogger(ctx)
	runID := uuid.New().String()

	selected, err := selectAlgorithms[T](cfg, names)
	if err != nil {
		return err
	}
	logger.Info("bench started", "run_id", runID, "algorithms", len(selected), "n", len(data), "workers", cfg.Workers)

	results := make([]benchResult, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, algo := range selected {
		i, algo := i, algo
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			work := slices.Clone(data)
			start := time.Now()
			out, err := algo.Run(work)
			res := benchResult{Algorithm: algo.Name, N: len(data), Duration: time.Since(start)}
			if err != nil {
				res.Error = err.Error()
				logger.Debug("algorithm refused input", "run_id", runID, "algorithm", algo.Name, "err", err)
			} else {
				res.Sorted = sorting.IsSorted(out)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("bench %s: %w", runID, err)
	}
	logger.Info("bench finished", "run_id", runID)

	rows := make([]table.Row, len(results))
	for i, r := range results {
		status := "ok"
		switch {
		case r.Error != "":
			status = "skipped: " + r.Error
		case !r.Sorted:
			status = "NOT SORTED"
		}
		rows[i] = table.Row{r.Algorithm, r.N, r.Duration.Round(time.Microsecond), status}
	}

	return render(cmd.OutOrStdout(), cfg.Output, report{
		Header:  table.Row{"Algorithm", "N", "Duration", "Status"},
		Rows:    rows,
		Payload: benchReport{RunID: runID, Kind: cfg.Kind, Results: results},
	})
}

// selectAlgorithms resolves names against the configured catalog, keeping
// catalog order when names is empty.
func selectAlgorithms[T cmp.Ordered](cfg *config.Config, names []string) ([]sorting.Algorithm[T], error) {
	if len(names) == 0 {
		return catalog[T](cfg), nil
	}
	out := make([]sorting.Algorithm[T], 0, len(names))
	for _, n := range names {
		a, err := lookup[T](cfg, strings.TrimSpace(n))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
