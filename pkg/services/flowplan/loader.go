package flowplan

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// Fixed flowplan layout, 0-based. The header row carries the column names,
// the row directly below it carries the month labels for the twelve
// quarter-grouped slots, and data starts after that.
const (
	headerRowOffset     = 7
	quarterSlotStart    = 7
	secondaryActualSlot = 20
)

var quarterHeaders = map[int]string{
	quarterSlotStart:     "Q1",
	quarterSlotStart + 3: "Q2",
	quarterSlotStart + 6: "Q3",
	quarterSlotStart + 9: "Q4",
}

// LoadTable reads the flowplan sheet into a table, renaming the twelve
// quarter-grouped columns to the canonical month names and dropping the
// month-label row from the data. The layout is verified first so a moved
// or reshaped sheet fails fast instead of silently mislabeling columns.
func LoadTable(ctx context.Context, f *excelize.File, sheet string) (*domain.Table, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) < headerRowOffset+2 {
		return nil, fmt.Errorf("sheet %q: header row %d or month label row %d missing",
			sheet, headerRowOffset+1, headerRowOffset+2)
	}

	header := rows[headerRowOffset]
	labels := rows[headerRowOffset+1]

	for slot, want := range quarterHeaders {
		if got := cellAt(header, slot); got != want {
			return nil, fmt.Errorf("sheet %q: expected quarter header %q in column %d of row %d, got %q",
				sheet, want, slot+1, headerRowOffset+1, got)
		}
	}
	for i, month := range domain.Months {
		if got := cellAt(labels, quarterSlotStart+i); got != month {
			return nil, fmt.Errorf("sheet %q: expected month label %q in column %d of row %d, got %q",
				sheet, month, quarterSlotStart+i+1, headerRowOffset+2, got)
		}
	}

	width := len(header)
	if width < secondaryActualSlot+1 {
		width = secondaryActualSlot + 1
	}
	columns := make([]string, width)
	for i := range header {
		columns[i] = strings.TrimSpace(header[i])
	}
	for i, month := range domain.Months {
		columns[quarterSlotStart+i] = month
	}
	// The secondary team's actual-spend column has no header text in the
	// source sheet; it is identified purely by position.
	columns[secondaryActualSlot] = domain.ColActualSecondary

	table := &domain.Table{Columns: columns}
	for _, raw := range rows[headerRowOffset+2:] {
		row := domain.Row{}
		for i, col := range columns {
			if col == "" || i >= len(raw) || raw[i] == "" {
				continue
			}
			row[col] = raw[i]
		}
		table.Rows = append(table.Rows, row)
	}

	zerolog.Ctx(ctx).Debug().
		Str("sheet", sheet).
		Int("rows", len(table.Rows)).
		Msg("flowplan table loaded")

	return table, nil
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
