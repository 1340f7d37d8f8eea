package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// TableReporter renders each report section as a bordered table.
type TableReporter struct {
	writer io.Writer
}

// NewTableReporter creates a new table reporter
func NewTableReporter(writer io.Writer) *TableReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TableReporter{writer: writer}
}

func (c *TableReporter) Handle(report *domain.Report) error {
	if _, err := fmt.Fprintf(c.writer, "\n%s (current month: %s)\n", report.Title, report.Month); err != nil {
		return err
	}

	for _, section := range report.Sections {
		t := table.NewWriter()
		t.SetOutputMirror(c.writer)
		t.SetStyle(table.StyleLight)
		t.SetTitle(section.Title)

		header := make(table.Row, len(section.Columns))
		for i, col := range section.Columns {
			header[i] = col
		}
		t.AppendHeader(header)

		for _, row := range section.Rows {
			r := make(table.Row, len(row))
			for i, v := range row {
				if f, ok := v.(float64); ok {
					r[i] = fmt.Sprintf("%.2f", f)
					continue
				}
				r[i] = v
			}
			t.AppendRow(r)
		}

		t.Render()
	}

	return nil
}
