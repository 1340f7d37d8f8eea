package domain

import (
	"strconv"
	"strings"
)

// Months holds the canonical month column names in calendar order.
var Months = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// Well-known flowplan columns. ColActualSecondary has no header text in the
// source sheet; the loader names it from its fixed column slot.
const (
	ColCampaign        = "CAMPAIGN"
	ColChannel         = "Media"
	ColActual          = "Actual"
	ColActualSecondary = "DM Actual"
)

// Row is a sparse mapping of column name to raw cell text. Values are kept
// exactly as read; channel grouping relies on exact string match.
type Row map[string]string

// Value returns the raw cell text, empty when the column is absent.
func (r Row) Value(col string) string {
	return r[col]
}

// Number returns the cell coerced to a float, zero when absent or non-numeric.
func (r Row) Number(col string) float64 {
	return Number(r[col])
}

// IsCampaignSummary reports whether the row aggregates a campaign's total
// actual spend: campaign set, channel blank.
func (r Row) IsCampaignSummary() bool {
	return r.Value(ColCampaign) != "" && r.Value(ColChannel) == ""
}

// IsChannelDetail reports whether the row breaks spend down by media channel.
func (r Row) IsChannelDetail() bool {
	return r.Value(ColChannel) != ""
}

// Table is an ordered sequence of flowplan rows.
type Table struct {
	Columns []string
	Rows    []Row
}

// Number coerces raw cell text to a float. Blank and non-numeric content
// reads as zero; thousands separators are tolerated.
func Number(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
