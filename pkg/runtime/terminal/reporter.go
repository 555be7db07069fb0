package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/astro-atlas/pkg/models/domain"
)

// Reporter prints a report as plain text, one block per section. Locked
// sections print a single marker line.
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.Report) error {
	tmpl := `
{{.Title}} [{{.Tradition}}]
{{.Subject}}
Generated: {{.GeneratedAt.Format "2006-01-02 15:04"}}
{{range .Sections}}
=== {{.Title}} ===
{{- if .Locked}}
(premium)
{{- else}}
{{- range $key, $value := .Summary}}
{{$key}}: {{$value}}
{{- end}}
{{- range .Details}}
- {{.Name}}: {{.Value}}{{if .Unit}} {{.Unit}}{{end}}{{if .Description}}
  {{.Description}}{{end}}
{{- end}}
{{- if .Body}}
{{.Body}}
{{- end}}
{{- end}}
{{end}}`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
