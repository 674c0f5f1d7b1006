package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/de-tools/fiscal-atlas/pkg/models/domain"
)

type TableConfig struct {
	CategoryWidth int
	AmountWidth   int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		CategoryWidth: 48,
		AmountWidth:   18,
	}
}

// Reporter prints a series summary to the console in a formatted text form.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

type categoryTotal struct {
	Category string
	Amount   float64
}

type seriesSummary struct {
	ReportType string
	Rows       int
	FirstYear  int
	LastYear   int
	Totals     []categoryTotal
}

func (c *Reporter) Handle(series domain.TimeSeries) error {
	funcMap := template.FuncMap{
		"formatRow": func(category string, amount interface{}) string {
			return fmt.Sprintf("| %-*s | %*v |",
				c.config.CategoryWidth, category,
				c.config.AmountWidth, amount)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.CategoryWidth+2),
				strings.Repeat("-", c.config.AmountWidth+2))
		},
	}

	tmpl := `
{{.ReportType}}: {{.Rows}} rows, FY{{.FirstYear}} to FY{{.LastYear}}

FY{{.LastYear}} totals by category:

{{separator}}
{{formatRow "Category" "Amount"}}
{{separator}}
{{range .Totals}}{{formatRow .Category (printf "%.1f" .Amount)}}
{{end}}{{separator}}
`

	t, err := template.New("series").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summarize(series))
}

func summarize(series domain.TimeSeries) seriesSummary {
	summary := seriesSummary{ReportType: series.ReportType, Rows: len(series.Rows)}
	if len(series.Rows) == 0 {
		return summary
	}

	summary.FirstYear = series.Rows[0].FiscalYear
	summary.LastYear = series.Rows[0].FiscalYear
	for _, row := range series.Rows {
		if row.FiscalYear < summary.FirstYear {
			summary.FirstYear = row.FiscalYear
		}
		if row.FiscalYear > summary.LastYear {
			summary.LastYear = row.FiscalYear
		}
	}

	totals := make(map[string]float64)
	for _, row := range series.Rows {
		if row.FiscalYear == summary.LastYear {
			totals[string(row.Category)] += row.Amount
		}
	}
	for category, amount := range totals {
		summary.Totals = append(summary.Totals, categoryTotal{Category: category, Amount: amount})
	}
	sort.Slice(summary.Totals, func(i, j int) bool {
		return summary.Totals[i].Category < summary.Totals[j].Category
	})

	return summary
}

var seriesHeader = []string{
	"category", "fiscal_year", "fiscal_month", "month", "amount", "quarter",
	"report_fiscal_year", "report_quarter",
	"dept_code", "dept_major_code", "fund", "variable", "time_period", "as_of_date",
}

// WriteSeriesCSV writes the full merged series in long form.
func WriteSeriesCSV(w io.Writer, series domain.TimeSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(seriesHeader); err != nil {
		return err
	}

	for _, row := range series.Rows {
		asOf := ""
		if !row.AsOfDate.IsZero() {
			asOf = row.AsOfDate.Format(time.DateOnly)
		}
		record := []string{
			string(row.Category),
			strconv.Itoa(row.FiscalYear),
			strconv.Itoa(row.FiscalMonth),
			strconv.Itoa(row.Month),
			strconv.FormatFloat(row.Amount, 'f', -1, 64),
			strconv.Itoa(row.Quarter),
			strconv.Itoa(row.ReportFiscalYear),
			strconv.Itoa(row.ReportQuarter),
			row.DeptCode,
			row.DeptMajorCode,
			row.Fund,
			row.Variable,
			row.TimePeriod,
			asOf,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
