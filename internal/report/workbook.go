package report

import (
	"github.com/xuri/excelize/v2"
)

// Workbook renders tables as a multi-sheet xlsx file, one named sheet per
// table, header row first.
func Workbook(tables []Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, t := range tables {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", t.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(t.Name); err != nil {
				return nil, err
			}
		}

		rows := append([][]string{t.Header}, t.Rows...)
		for rowIdx, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cells := make([]interface{}, len(row))
			for c, v := range row {
				cells[c] = v
			}
			if err := f.SetSheetRow(t.Name, cell, &cells); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
