package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/roi-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

type TableConfig struct {
	NameWidth     int
	CategoryWidth int
	AmountWidth   int
	PercentWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		NameWidth:     32,
		CategoryWidth: 12,
		AmountWidth:   14,
		PercentWidth:  10,
	}
}

// Reporter renders a report with its calculated results as a text table.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type reportView struct {
	Report  domain.Report
	Results []domain.OperationResult
	Summary domain.Summary
}

// Money formats an amount with two decimals, rounding half away from zero.
func Money(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

func Payback(months float64) string {
	if months >= domain.PaybackNever || math.IsNaN(months) {
		return "never"
	}
	return decimal.NewFromFloat(months).StringFixed(1) + " mo"
}

func (c *Reporter) Handle(report domain.Report, results []domain.OperationResult, summary domain.Summary) error {
	cfg := c.config
	funcMap := template.FuncMap{
		"money":   Money,
		"payback": Payback,
		"percent": func(v float64) string {
			return decimal.NewFromFloat(v).StringFixed(1) + "%"
		},
		"formatRow": func(name, category, current, future, savings, investment, roi, payback string) string {
			return fmt.Sprintf("| %-*s | %-*s | %*s | %*s | %*s | %*s | %*s | %*s |",
				cfg.NameWidth, truncate(name, cfg.NameWidth),
				cfg.CategoryWidth, truncate(category, cfg.CategoryWidth),
				cfg.AmountWidth, current,
				cfg.AmountWidth, future,
				cfg.AmountWidth, savings,
				cfg.AmountWidth, investment,
				cfg.PercentWidth, roi,
				cfg.PercentWidth, payback)
		},
		"separator": func() string {
			amount := strings.Repeat("-", cfg.AmountWidth+2)
			percent := strings.Repeat("-", cfg.PercentWidth+2)
			return fmt.Sprintf("+%s+%s+%s+%s+%s+%s+%s+%s+",
				strings.Repeat("-", cfg.NameWidth+2),
				strings.Repeat("-", cfg.CategoryWidth+2),
				amount, amount, amount, amount,
				percent, percent)
		},
	}

	tmpl := `
Report {{.Report.ReportNumber}} ({{.Report.ReportDate.Format "2006-01-02"}})
Client: {{if .Report.ClientName}}{{.Report.ClientName}}{{else}}-{{end}}
Currency: {{.Report.Currency}}
Project: {{.Report.Settings.ProjectStart.Format "2006-01-02"}} to {{.Report.Settings.ProjectEnd.Format "2006-01-02"}} ({{.Report.Settings.ImplementationDays}} days)

{{separator}}
{{formatRow "Operation" "Category" "Current/yr" "Future/yr" "Savings/yr" "Investment" "ROI 1Y" "Payback"}}
{{separator}}
{{range .Results}}{{formatRow .Name (printf "%s" .Category) (money .CurrentCost) (money .FutureCost) (money .AnnualSavings) (money .ROI.TotalInvestment) (percent .ROI.ROIPercent1Y) (payback .ROI.PaybackMonths)}}
{{end}}{{separator}}

=== Summary ===
Current cost:  {{money .Summary.CurrentCost}} {{.Report.Currency}}
Future cost:   {{money .Summary.FutureCost}} {{.Report.Currency}}
Savings:       {{money .Summary.Savings}} {{.Report.Currency}}
Investment:    {{money .Summary.Investment}} {{.Report.Currency}}
ROI 1Y:        {{percent .Summary.ROI1Y}}
ROI 3Y:        {{percent .Summary.ROI3Y}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, reportView{
		Report:  report,
		Results: results,
		Summary: summary,
	})
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
