package domain

// Kind identifies the declared value kind of a column.
type Kind string

const (
	KindInteger     Kind = "integer"
	KindFloat       Kind = "float"
	KindText        Kind = "text"
	KindDatetime    Kind = "datetime"
	KindCategorical Kind = "categorical"
	KindBoolean     Kind = "boolean"
	KindRaw         Kind = "raw"
)

// Kinds lists every declared kind in presentation order.
func Kinds() []Kind {
	return []Kind{
		KindInteger, KindFloat, KindText, KindDatetime,
		KindCategorical, KindBoolean, KindRaw,
	}
}

// ParseKind maps a kind label to its Kind constant.
func ParseKind(s string) (Kind, bool) {
	for _, k := range Kinds() {
		if string(k) == s {
			return k, true
		}
	}
	return "", false
}

// IsNumeric reports whether the kind holds numeric scalars.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat
}

// Format identifies the on-disk file format a table was loaded from.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatExcel   Format = "excel"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// Column is a named, ordered sequence of scalar values with a declared kind.
// Values hold int64, float64, string, bool or time.Time; nil marks a
// null/missing value.
type Column struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Values []any  `json:"values"`
}

// Len returns the number of rows in the column.
func (c *Column) Len() int {
	return len(c.Values)
}

// NullCount returns the number of null values in the column.
func (c *Column) NullCount() int {
	n := 0
	for _, v := range c.Values {
		if v == nil {
			n++
		}
	}
	return n
}

// Table is the in-memory representation of one loaded data file: an ordered
// sequence of named columns. Column names are unique within a table and row
// order is significant.
type Table struct {
	Columns []*Column `json:"columns"`
	Source  string    `json:"source,omitempty"`
	Format  Format    `json:"format,omitempty"`
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in table order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// RowCount returns the number of rows in the table. Columns are kept at
// equal length, so the first column is authoritative.
func (t *Table) RowCount() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return t.Columns[0].Len()
}

// Outcome reports the per-value result counts of one column transformation.
// Failed values have been set to null; Unmatched values (state lookups that
// hit no known state) are preserved unchanged.
type Outcome struct {
	Updated   int    `json:"updated"`
	Failed    int    `json:"failed"`
	Unmatched int    `json:"unmatched,omitempty"`
	Warning   string `json:"warning,omitempty"`
}
