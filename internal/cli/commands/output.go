package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// report is what a command hands to render: a header plus rows for the
// table and plain modes, and a payload for json.
type report struct {
	Header  table.Row
	Rows    []table.Row
	Payload any
}

// render writes r in the requested format (table|json|plain).
func render(w io.Writer, format string, r report) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r.Payload)
	case "plain":
		for _, row := range r.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = fmt.Sprint(c)
			}
			if _, err := fmt.Fprintln(w, strings.Join(cells, "\t")); err != nil {
				return err
			}
		}
		return nil
	default:
		return renderTable(w, r)
	}
}

func renderTable(w io.Writer, r report) error {
	if len(r.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(r.Header)
	t.AppendRows(r.Rows)
	t.Render()

	return nil
}

// joinValues renders a slice as space-separated text.
func joinValues[T any](seq []T) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}
