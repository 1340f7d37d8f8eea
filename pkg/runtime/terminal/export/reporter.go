package export

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// Reporter renders a report to the terminal.
type Reporter interface {
	Handle(report *domain.Report) error
}

// ForFormat selects a reporter implementation by name.
func ForFormat(format string, writer io.Writer) (Reporter, error) {
	switch format {
	case "table":
		return NewTableReporter(writer), nil
	case "text":
		return NewTextReporter(writer), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (expected table or text)", format)
	}
}

// TextReporter outputs reports in a plain formatted text form
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new plain-text reporter
func NewTextReporter(writer io.Writer) *TextReporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &TextReporter{writer: writer}
}

func (c *TextReporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}} (current month: {{.Month}})

{{range .Sections}}
=== {{.Title}} ===
{{$cols := .Columns}}{{range .Rows}}{{range $i, $v := .}}{{index $cols $i}}: {{printf "%v" $v}}
{{end}}
{{end}}{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
