package api

// ReportType describes one registered report type.
type ReportType struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Anchor string `json:"anchor,omitempty"`
}

// Filing identifies one processed filing.
type Filing struct {
	ReportType string `json:"report_type"`
	FiscalYear int    `json:"fiscal_year"`
	Quarter    int    `json:"quarter"`
}

// SeriesRow is the JSON shape of one merged time-series row.
type SeriesRow struct {
	Category         string  `json:"category"`
	FiscalYear       int     `json:"fiscal_year"`
	FiscalMonth      int     `json:"fiscal_month,omitempty"`
	Month            int     `json:"month,omitempty"`
	Amount           float64 `json:"amount"`
	Quarter          int     `json:"quarter"`
	ReportFiscalYear int     `json:"report_fiscal_year"`
	ReportQuarter    int     `json:"report_quarter"`

	DeptCode      string `json:"dept_code,omitempty"`
	DeptMajorCode string `json:"dept_major_code,omitempty"`
	Fund          string `json:"fund,omitempty"`
	Variable      string `json:"variable,omitempty"`
	TimePeriod    string `json:"time_period,omitempty"`
	AsOfDate      string `json:"as_of_date,omitempty"`
}

// Series is a complete merged time series for one report type.
type Series struct {
	ReportType string      `json:"report_type"`
	Rows       []SeriesRow `json:"rows"`
}
