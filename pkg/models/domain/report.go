package domain

// Report represents the run summary shaped for terminal output
type Report struct {
	Title    string
	Month    string // month name, e.g. "Nov"
	Sections []ReportSection
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Columns []string
	Rows    [][]any
}
