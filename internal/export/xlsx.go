// Package export writes report sheets to an Excel workbook. It is the
// external sink for the Report Builder's in-memory tables.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tally-dev/tally/internal/report"
)

// WriteWorkbook writes the sheets to an .xlsx file at path. The first
// sheet replaces the workbook's default sheet so no empty "Sheet1" is
// left behind.
func WriteWorkbook(path string, sheets []report.Sheet) error {
	if len(sheets) == 0 {
		return fmt.Errorf("no sheets to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Name); err != nil {
				return fmt.Errorf("renaming sheet %q: %w", sheet.Name, err)
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return fmt.Errorf("creating sheet %q: %w", sheet.Name, err)
			}
		}
		if err := writeSheet(f, sheet); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet report.Sheet) error {
	if err := writeRow(f, sheet.Name, 1, sheet.Header); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		if err := writeRow(f, sheet.Name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, rowNum int, cells []string) error {
	for i, value := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNum)
		if err != nil {
			return fmt.Errorf("sheet %q row %d: %w", sheet, rowNum, err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("sheet %q cell %s: %w", sheet, cell, err)
		}
	}
	return nil
}
