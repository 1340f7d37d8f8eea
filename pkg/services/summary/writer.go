package summary

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// TeamHeader is the fixed ten-column header of the team metrics block.
var TeamHeader = []string{
	"Team",
	"LTP",
	"Buffer",
	"YTD Spend",
	"Base limit (LTP - buffer)",
	"Over/(under) vs base",
	"Remaining LTP",
	"Consumed buffer",
	"Remaining buffer",
	"YTG total (LTP + buffer - YTD)",
}

// ChannelHeader is the fixed three-column header of the channel block.
var ChannelHeader = []string{"Channel", "Spend YTD", "Spend current month"}

// WriteSummary renders the summary into the named sheet. An existing sheet
// of that name is dropped and rebuilt, never merged, so rewriting the same
// summary is idempotent. Channels are written in the order given; the
// aggregator sorts them by name.
func WriteSummary(f *excelize.File, sheet string, s *domain.Summary) error {
	if idx, err := f.GetSheetIndex(sheet); err == nil && idx >= 0 {
		if err := f.DeleteSheet(sheet); err != nil {
			return fmt.Errorf("failed to drop existing sheet %q: %w", sheet, err)
		}
	}
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	w := &sheetWriter{f: f, sheet: sheet}

	for i, h := range TeamHeader {
		w.set(i+1, 1, h)
	}
	w.style(1, 1, len(TeamHeader), 1, bold)

	row := 2
	for _, t := range s.Teams {
		m := t.Metrics
		for i, v := range []any{
			t.Name, m.Plan, m.Buffer, m.YTDSpend, m.BaseLimit,
			m.OverVsBase, m.RemainingPlan, m.ConsumedBuffer, m.RemainingBuffer, m.YTGTotal,
		} {
			w.set(i+1, row, v)
		}
		row++
	}

	// Blank spacer row between the team block and the channel block.
	row++
	w.set(1, row, fmt.Sprintf("Channel spend (current month = %d)", s.Month))
	w.style(1, row, 1, row, bold)
	row++

	for i, h := range ChannelHeader {
		w.set(i+1, row, h)
	}
	w.style(1, row, len(ChannelHeader), row, bold)
	row++

	for _, c := range s.Channels {
		w.set(1, row, c.Channel)
		w.set(2, row, c.YTDSpend)
		w.set(3, row, c.CurrentMonthSpend)
		row++
	}

	return w.err
}

// sheetWriter carries the first cell-write failure so the layout code
// above stays free of per-cell error plumbing.
type sheetWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *sheetWriter) set(col, row int, v any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellValue(w.sheet, cell, v); err != nil {
		w.err = fmt.Errorf("failed to write cell %s: %w", cell, err)
	}
}

func (w *sheetWriter) style(fromCol, fromRow, toCol, toRow, styleID int) {
	if w.err != nil {
		return
	}
	from, err := excelize.CoordinatesToCellName(fromCol, fromRow)
	if err != nil {
		w.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(toCol, toRow)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(w.sheet, from, to, styleID); err != nil {
		w.err = fmt.Errorf("failed to style %s:%s: %w", from, to, err)
	}
}
