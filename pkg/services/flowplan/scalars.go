package flowplan

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/de-tools/flowplan/pkg/models/domain"
)

// ReadBudgetFigures reads a team's plan and buffer from their fixed cells
// on the flowplan sheet. Empty and non-numeric cells read as zero; the
// source workbook simply leaves unused figures blank.
func ReadBudgetFigures(f *excelize.File, sheet, planCell, bufferCell string) (domain.BudgetFigures, error) {
	plan, err := readScalar(f, sheet, planCell)
	if err != nil {
		return domain.BudgetFigures{}, err
	}
	buffer, err := readScalar(f, sheet, bufferCell)
	if err != nil {
		return domain.BudgetFigures{}, err
	}
	return domain.BudgetFigures{Plan: plan, Buffer: buffer}, nil
}

func readScalar(f *excelize.File, sheet, cell string) (float64, error) {
	v, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return 0, fmt.Errorf("failed to read cell %s!%s: %w", sheet, cell, err)
	}
	return domain.Number(v), nil
}
