package workbook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MissingSheetError reports an expected worksheet absent from the workbook.
// It is fatal for the run and raised before anything is written.
type MissingSheetError struct {
	Sheet string
}

func (e *MissingSheetError) Error() string {
	return fmt.Sprintf("worksheet %q not found in workbook", e.Sheet)
}

// Open loads a workbook from disk.
func Open(path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return f, nil
}

// RequireSheet verifies the named worksheet exists.
func RequireSheet(f *excelize.File, name string) error {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return fmt.Errorf("failed to look up worksheet %q: %w", name, err)
	}
	if idx < 0 {
		return &MissingSheetError{Sheet: name}
	}
	return nil
}

// OutputPath derives the destination for the summarized copy by inserting
// the marker suffix before the extension: budget.xlsx -> budget_automated.xlsx.
func OutputPath(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// Save writes the workbook to path through a temp file in the same
// directory, renaming over the destination only once the write succeeded.
// A failed run leaves no partial output behind.
func Save(f *excelize.File, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".flowplan-*.xlsx")
	if err != nil {
		return fmt.Errorf("failed to create temp workbook: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := f.WriteTo(tmp); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to flush temp workbook: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to move workbook into place at %s: %w", path, err)
	}
	return nil
}
