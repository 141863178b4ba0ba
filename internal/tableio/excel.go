package tableio

import (
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"cleantab/internal/errors"
	"cleantab/pkg/contracts/domain"
)

const excelSheet = "Sheet1"

func readExcel(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "cannot open workbook", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.NewLoadError(errors.KindParseError, path, "workbook has no sheets", nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "cannot read sheet rows", err)
	}
	if len(rows) == 0 {
		return nil, errors.NewLoadError(errors.KindParseError, path, "sheet has no header row", nil)
	}

	return &domain.Table{Columns: buildColumns(rows[0], rows[1:])}, nil
}

func writeExcel(w io.Writer, tbl *domain.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	headers := make([]any, len(tbl.Columns))
	for i, name := range tbl.ColumnNames() {
		headers[i] = name
	}
	if err := f.SetSheetRow(excelSheet, "A1", &headers); err != nil {
		return err
	}

	rows := tbl.RowCount()
	for r := 0; r < rows; r++ {
		cells := make([]any, len(tbl.Columns))
		for i, col := range tbl.Columns {
			v := col.Values[r]
			// Datetimes go out as canonical text so the value survives a
			// round trip without picking up a workbook display format.
			if ts, ok := v.(time.Time); ok {
				v = ts.Format("2006-01-02 15:04:05")
			}
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(excelSheet, cell, &cells); err != nil {
			return err
		}
	}

	return f.Write(w)
}
