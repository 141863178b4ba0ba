// Package tableio loads and saves tables in the supported file formats:
// CSV (and .txt treated as CSV), Excel .xlsx, JSON record arrays, and
// Parquet. The format is detected from the file extension. Loads are
// all-or-nothing: a failed load returns an error without producing a
// partial table. Saves are atomic: data is written to a temporary file in
// the destination directory and renamed over the target, so a failed save
// leaves the previous file untouched.
package tableio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cleantab/internal/errors"
	"cleantab/pkg/contracts/domain"
)

// Detect maps a file extension to its format.
func Detect(path string) (domain.Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".txt":
		return domain.FormatCSV, true
	case ".xlsx", ".xls":
		return domain.FormatExcel, true
	case ".json":
		return domain.FormatJSON, true
	case ".parquet":
		return domain.FormatParquet, true
	default:
		return "", false
	}
}

// Load reads the file at path into a fresh table.
func Load(path string) (*domain.Table, error) {
	format, ok := Detect(path)
	if !ok {
		return nil, errors.NewLoadError(errors.KindUnsupportedFormat, path,
			fmt.Sprintf("unsupported file extension %q", filepath.Ext(path)), nil)
	}
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		// excelize reads OOXML workbooks only.
		return nil, errors.NewLoadError(errors.KindUnsupportedFormat, path,
			"legacy .xls workbooks are not supported; convert to .xlsx", nil)
	}

	var (
		tbl *domain.Table
		err error
	)
	switch format {
	case domain.FormatCSV:
		tbl, err = readCSV(path)
	case domain.FormatExcel:
		tbl, err = readExcel(path)
	case domain.FormatJSON:
		tbl, err = readJSON(path)
	case domain.FormatParquet:
		tbl, err = readParquet(path)
	}
	if err != nil {
		return nil, err
	}

	tbl.Source = path
	tbl.Format = format
	return tbl, nil
}

// Save writes the table to path in the format implied by the extension.
func Save(tbl *domain.Table, path string) error {
	format, ok := Detect(path)
	if !ok {
		return errors.NewSaveError(errors.KindUnsupportedFormat, path,
			fmt.Sprintf("unsupported file extension %q", filepath.Ext(path)), nil)
	}
	if strings.EqualFold(filepath.Ext(path), ".xls") {
		// Load refuses legacy workbooks, so never produce one.
		return errors.NewSaveError(errors.KindUnsupportedFormat, path,
			"legacy .xls workbooks are not supported; save as .xlsx", nil)
	}

	tmp := fmt.Sprintf("%s.tmp.%d", path, os.Getpid())
	f, err := os.Create(tmp)
	if err != nil {
		return errors.NewSaveError(errors.KindIOError, path, "cannot create temporary file", err)
	}

	switch format {
	case domain.FormatCSV:
		err = writeCSV(f, tbl)
	case domain.FormatExcel:
		err = writeExcel(f, tbl)
	case domain.FormatJSON:
		err = writeJSON(f, tbl)
	case domain.FormatParquet:
		err = writeParquet(f, tbl)
	}
	if err != nil {
		f.Close()
		os.Remove(tmp)
		return errors.NewSaveError(errors.KindIOError, path, "write failed", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return errors.NewSaveError(errors.KindIOError, path, "close failed", err)
	}

	// Rename within the same directory is the all-or-nothing step: either
	// the new file fully replaces the target or the target stays intact.
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.NewSaveError(errors.KindIOError, path, "cannot replace target file", err)
	}
	return nil
}
