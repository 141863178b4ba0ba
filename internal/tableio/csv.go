package tableio

import (
	"encoding/csv"
	"io"
	"os"
	"strings"

	"cleantab/internal/errors"
	"cleantab/pkg/contracts/domain"
)

// utf8BOM is written before CSV output so Excel recognizes UTF-8, and
// stripped from the first header on read.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func readCSV(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindIOError, path, "cannot open file", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "malformed CSV", err)
	}
	if len(records) == 0 {
		return nil, errors.NewLoadError(errors.KindParseError, path, "file has no header row", nil)
	}

	headers := records[0]
	if len(headers) > 0 {
		headers[0] = strings.TrimPrefix(headers[0], string(utf8BOM))
	}

	return &domain.Table{Columns: buildColumns(headers, records[1:])}, nil
}

func writeCSV(w io.Writer, tbl *domain.Table) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.ColumnNames()); err != nil {
		return err
	}

	rows := tbl.RowCount()
	record := make([]string, len(tbl.Columns))
	for r := 0; r < rows; r++ {
		for i, col := range tbl.Columns {
			record[i] = renderCell(col.Values[r])
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
