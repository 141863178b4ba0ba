// Package session owns the currently loaded table and exposes the engine
// operations to the caller: load, apply transformation, change type,
// normalize headers, describe, save, and reset. One session works on one
// table at a time, synchronously; it is never shared between goroutines.
package session

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"cleantab/internal/coerce"
	engerrors "cleantab/internal/errors"
	"cleantab/internal/inspect"
	"cleantab/internal/tableio"
	"cleantab/internal/transform"
	"cleantab/pkg/contracts/domain"
)

// ErrNoTable is returned by operations that need a loaded table.
var ErrNoTable = errors.New("no table loaded")

// Config carries the transformation parameters the session hands to the
// dispatcher.
type Config struct {
	CurrencySymbol    string
	NumericSampleSize int
}

// Session holds the loaded table and its unsaved-changes state.
type Session struct {
	logger *slog.Logger
	opts   transform.Options
	id     string

	table *domain.Table
	dirty bool
}

// New creates an empty session.
func New(logger *slog.Logger, cfg Config) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()
	return &Session{
		logger: logger.With(slog.String("session_id", id)),
		opts: transform.Options{
			CurrencySymbol: cfg.CurrencySymbol,
			SampleSize:     cfg.NumericSampleSize,
		},
		id: id,
	}
}

// ID returns the session identifier used for log correlation.
func (s *Session) ID() string { return s.id }

// Table returns the loaded table, or nil.
func (s *Session) Table() *domain.Table { return s.table }

// Dirty reports whether the table has unsaved changes.
func (s *Session) Dirty() bool { return s.dirty }

// Load reads the file at path into a fresh table. Loading is
// all-or-nothing: on failure the previously loaded table stays in place.
func (s *Session) Load(path string) error {
	tbl, err := tableio.Load(path)
	if err != nil {
		s.logger.Error("load failed", slog.String("path", path), slog.Any("error", err))
		return err
	}

	s.table = tbl
	s.dirty = false
	s.logger.Info("table loaded",
		slog.String("path", path),
		slog.String("format", string(tbl.Format)),
		slog.Int("columns", len(tbl.Columns)),
		slog.Int("rows", tbl.RowCount()))
	return nil
}

// Apply runs a (family, type) transformation on the named column and
// reports per-value counts.
func (s *Session) Apply(column string, fam transform.Family, typ transform.Type) (domain.Outcome, error) {
	if s.table == nil {
		return domain.Outcome{}, ErrNoTable
	}
	col, ok := s.table.Column(column)
	if !ok {
		return domain.Outcome{}, engerrors.NewUnknownColumn("apply", column)
	}

	out, err := transform.Apply(col, fam, typ, s.opts)
	if err != nil {
		s.logger.Error("transformation rejected",
			slog.String("column", column),
			slog.String("family", string(fam)),
			slog.String("type", string(typ)),
			slog.Any("error", err))
		return domain.Outcome{}, err
	}

	s.dirty = true
	s.logger.Info("transformation applied",
		slog.String("column", column),
		slog.String("family", string(fam)),
		slog.String("type", string(typ)),
		slog.Int("updated", out.Updated),
		slog.Int("failed", out.Failed),
		slog.Int("unmatched", out.Unmatched))
	if out.Warning != "" {
		s.logger.Warn("data quality warning", slog.String("warning", out.Warning))
	}
	return out, nil
}

// Coerce changes the declared kind of the named column and reports
// per-value conversion counts.
func (s *Session) Coerce(column string, target domain.Kind) (coerce.Result, error) {
	if s.table == nil {
		return coerce.Result{}, ErrNoTable
	}
	col, ok := s.table.Column(column)
	if !ok {
		return coerce.Result{}, engerrors.NewUnknownColumn("coerce", column)
	}

	res, err := coerce.Coerce(col, target)
	if err != nil {
		return coerce.Result{}, err
	}

	s.dirty = true
	s.logger.Info("column coerced",
		slog.String("column", column),
		slog.String("target_kind", string(target)),
		slog.Int("succeeded", res.Succeeded),
		slog.Int("failed", res.Failed))
	return res, nil
}

// NormalizeColumnNames rewrites all headers to unique lower snake_case and
// returns the new names. It always succeeds on a loaded table.
func (s *Session) NormalizeColumnNames() ([]string, error) {
	if s.table == nil {
		return nil, ErrNoTable
	}
	names := transform.NormalizeColumnNames(s.table)
	s.dirty = true
	s.logger.Info("column names normalized", slog.Int("columns", len(names)))
	return names, nil
}

// Describe summarizes every column of the loaded table.
func (s *Session) Describe() ([]inspect.ColumnSummary, error) {
	if s.table == nil {
		return nil, ErrNoTable
	}
	return inspect.Describe(s.table), nil
}

// Save writes the table back to its source path in its source format.
func (s *Session) Save() error {
	if s.table == nil {
		return ErrNoTable
	}
	return s.SaveAs(s.table.Source)
}

// SaveAs writes the table to path in the format implied by the extension.
// The write is atomic; on failure the target file is untouched.
func (s *Session) SaveAs(path string) error {
	if s.table == nil {
		return ErrNoTable
	}
	if err := tableio.Save(s.table, path); err != nil {
		s.logger.Error("save failed", slog.String("path", path), slog.Any("error", err))
		return err
	}

	s.dirty = false
	s.logger.Info("table saved",
		slog.String("path", path),
		slog.Int("rows", s.table.RowCount()))
	return nil
}

// Reset discards the in-memory table and reloads it from its source file.
func (s *Session) Reset() error {
	if s.table == nil {
		return ErrNoTable
	}
	source := s.table.Source
	s.logger.Info("resetting table", slog.String("path", source))
	return s.Load(source)
}
