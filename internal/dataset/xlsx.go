package dataset

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXLoader reads one worksheet of an Excel workbook. An empty Sheet selects
// the first worksheet.
type XLSXLoader struct {
	Sheet string
}

// Format returns the loader name.
func (l *XLSXLoader) Format() string { return "xlsx" }

// Load reads the worksheet; its first row is the header.
func (l *XLSXLoader) Load(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := l.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("sheet %q: missing header row", sheet)
	}

	lines := make([]int, len(all)-1)
	for i := range lines {
		lines[i] = i + 2
	}
	return newTable(all[0], all[1:], lines)
}
