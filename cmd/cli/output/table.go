package output

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes headers and rows to stdout as an ASCII table.
func RenderTable(headers []string, rows [][]interface{}) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)

	header := make(table.Row, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		tw.AppendRow(table.Row(row))
	}

	tw.Render()
}
