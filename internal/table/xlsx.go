package table

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXReader reads a worksheet from an Excel workbook.
type XLSXReader struct{}

// Format returns the file extension this reader handles.
func (XLSXReader) Format() string { return "xlsx" }

// Read loads one worksheet into a Table. An empty sheet name selects the
// workbook's first sheet.
func (XLSXReader) Read(path, sheet string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading %s sheet %q: %w", path, sheet, err)
	}
	return fromRecords(path, records), nil
}
