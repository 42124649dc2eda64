package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
)

type algorithmInfo struct {
	Name       string `json:"name"`
	Stable     bool   `json:"stable"`
	InPlace    bool   `json:"in_place"`
	Complexity string `json:"complexity"`
}

// NewAlgorithmsCommand creates the algorithms command.
func NewAlgorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available sorting algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())

			var (
				rows  []table.Row
				infos []algorithmInfo
			)
			for _, a := range catalog[int](cfg) {
				rows = append(rows, table.Row{a.Name, a.Stable, a.InPlace, a.Complexity})
				infos = append(infos, algorithmInfo{a.Name, a.Stable, a.InPlace, a.Complexity})
			}

			return render(cmd.OutOrStdout(), cfg.Output, report{
				Header:  table.Row{"Algorithm", "Stable", "In place", "Complexity"},
				Rows:    rows,
				Payload: infos,
			})
		},
	}
}
