package dataset

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the spreadsheet the dataset is published as. An empty
// Sheet means the first sheet of the workbook.
type XLSXSource struct {
	Path  string
	Sheet string
}

func (s XLSXSource) Name() string { return "xlsx:" + s.Path }

func (s XLSXSource) Load(ctx context.Context) (Table, error) {
	f, err := excelize.OpenFile(s.Path)
	if err != nil {
		return Table{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := s.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return Table{}, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return Table{}, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("sheet %q is empty", sheet)
	}
	if err := ctx.Err(); err != nil {
		return Table{}, err
	}
	return ParseRows(rows[0], rows[1:])
}
