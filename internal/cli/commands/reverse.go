package commands

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsort/internal/cli/config"
	"github.com/katalvlaran/lvlsort/linked"
)

type reverseResult struct {
	Reversed []string `json:"reversed"`
	Find     string   `json:"find,omitempty"`
	Found    bool     `json:"found"`
}

// NewReverseCommand creates the reverse command. Tokens are pushed onto a
// linked stack and popped back off, which yields them in reverse order.
func NewReverseCommand() *cobra.Command {
	var find string

	cmd := &cobra.Command{
		Use:   "reverse TOKEN...",
		Short: "Reverse tokens through a linked stack",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			stack := linked.NewStack[string]()
			for _, tok := range args {
				stack.Push(tok)
			}
			top, err := stack.Peek()
			if err != nil {
				return err
			}
			logger.Debug("stack loaded", "size", stack.Len(), "top", top)

			res := reverseResult{Find: find}
			if find != "" {
				res.Found = stack.Find(find)
			}
			for !stack.IsEmpty() {
				v, err := stack.Pop()
				if err != nil {
					return err
				}
				res.Reversed = append(res.Reversed, v)
			}

			rows := []table.Row{{joinValues(res.Reversed)}}
			header := table.Row{"Reversed"}
			if find != "" {
				rows[0] = append(rows[0], res.Found)
				header = append(header, "Contains "+find)
			}
			return render(cmd.OutOrStdout(), cfg.Output, report{Header: header, Rows: rows, Payload: res})
		},
	}
	cmd.Flags().StringVar(&find, "find", "", "also report whether this token was on the stack")

	return cmd
}
