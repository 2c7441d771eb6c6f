package terminal

import (
	"fmt"
	"io"
	"os"
	"text/template"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
)

// Reporter lists saved reports and operations in a compact text form
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

func (c *Reporter) HandleSaved(current domain.Report, saved []domain.Report) error {
	tmpl := `{{if not .Saved}}No saved reports.
{{else}}{{range .Saved}}{{if eq .ID $.CurrentID}}*{{else}} {{end}} {{.ID}}  {{.ReportNumber}}  {{.ReportDate.Format "2006-01-02"}}  {{if .ClientName}}{{.ClientName}}{{else}}-{{end}}  ({{len .Operations}} operations)
{{end}}{{end}}`
	t, err := template.New("saved").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, struct {
		CurrentID string
		Saved     []domain.Report
	}{current.ID, saved})
}

func (c *Reporter) HandleOperations(report domain.Report) error {
	tmpl := `{{if not .Operations}}No operations.
{{else}}{{range .Operations}}{{.ID}}  {{.Name}} [{{.Category}}]  {{.EmployeeCount}} x {{printf "%.2f" .AvgHourlyRate}}/h, {{.Frequency}}/{{.FrequencyUnit}}, {{.TimePerExecution}} {{.TimeUnit}}{{if .LOCEnabled}}, loc{{end}}{{if .TokenCostsEnabled}}, tokens{{end}}{{if .HiringEnabled}}, hiring{{end}}
{{end}}{{end}}`
	t, err := template.New("operations").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
