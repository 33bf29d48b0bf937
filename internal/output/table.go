package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderTable writes rows under header as an aligned text table.
func RenderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	hdr := make([]any, len(header))
	for i, h := range header {
		hdr[i] = h
	}
	table.Header(hdr...)
	for _, row := range rows {
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
