package tableio

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"cleantab/internal/errors"
	"cleantab/internal/transform"
	"cleantab/pkg/contracts/domain"
)

func readParquet(path string) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindIOError, path, "cannot open file", err)
	}
	defer f.Close()

	pf, err := file.NewParquetReader(f)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "malformed parquet file", err)
	}
	defer pf.Close()

	fr, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, memory.DefaultAllocator)
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "cannot build arrow reader", err)
	}

	atbl, err := fr.ReadTable(context.Background())
	if err != nil {
		return nil, errors.NewLoadError(errors.KindParseError, path, "cannot read parquet data", err)
	}
	defer atbl.Release()

	cols := make([]*domain.Column, atbl.NumCols())
	for i := 0; i < int(atbl.NumCols()); i++ {
		field := atbl.Schema().Field(i)
		col, err := fromArrowColumn(field, atbl.Column(i).Data().Chunks())
		if err != nil {
			return nil, errors.NewLoadError(errors.KindParseError, path, err.Error(), nil)
		}
		cols[i] = col
	}
	return &domain.Table{Columns: cols}, nil
}

func fromArrowColumn(field arrow.Field, chunks []arrow.Array) (*domain.Column, error) {
	col := &domain.Column{Name: field.Name}

	switch field.Type.ID() {
	case arrow.INT64:
		col.Kind = domain.KindInteger
	case arrow.FLOAT64:
		col.Kind = domain.KindFloat
	case arrow.BOOL:
		col.Kind = domain.KindBoolean
	case arrow.TIMESTAMP:
		col.Kind = domain.KindDatetime
	case arrow.STRING:
		col.Kind = domain.KindText
	default:
		return nil, fmt.Errorf("column %q has unsupported parquet type %s", field.Name, field.Type)
	}

	for _, chunk := range chunks {
		for j := 0; j < chunk.Len(); j++ {
			if chunk.IsNull(j) {
				col.Values = append(col.Values, nil)
				continue
			}
			switch arr := chunk.(type) {
			case *array.Int64:
				col.Values = append(col.Values, arr.Value(j))
			case *array.Float64:
				col.Values = append(col.Values, arr.Value(j))
			case *array.Boolean:
				col.Values = append(col.Values, arr.Value(j))
			case *array.String:
				col.Values = append(col.Values, arr.Value(j))
			case *array.Timestamp:
				unit := field.Type.(*arrow.TimestampType).Unit
				col.Values = append(col.Values, timestampToTime(arr.Value(j), unit))
			default:
				return nil, fmt.Errorf("column %q has unsupported arrow array %T", field.Name, chunk)
			}
		}
	}
	return col, nil
}

func timestampToTime(ts arrow.Timestamp, unit arrow.TimeUnit) time.Time {
	v := int64(ts)
	switch unit {
	case arrow.Second:
		return time.Unix(v, 0).UTC()
	case arrow.Millisecond:
		return time.UnixMilli(v).UTC()
	case arrow.Microsecond:
		return time.UnixMicro(v).UTC()
	default:
		return time.Unix(0, v).UTC()
	}
}

func writeParquet(w io.Writer, tbl *domain.Table) error {
	fields := make([]arrow.Field, len(tbl.Columns))
	for i, col := range tbl.Columns {
		fields[i] = arrow.Field{Name: col.Name, Type: arrowType(col.Kind), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	for i, col := range tbl.Columns {
		appendArrowValues(b.Field(i), col)
	}

	rec := b.NewRecord()
	defer rec.Release()

	atbl := array.NewTableFromRecords(schema, []arrow.Record{rec})
	defer atbl.Release()

	chunkSize := int64(tbl.RowCount())
	if chunkSize == 0 {
		chunkSize = 1
	}
	// pqarrow closes the sink when it implements io.Closer; the caller owns
	// the file handle, so hide Close from it.
	sink := struct{ io.Writer }{w}
	return pqarrow.WriteTable(atbl, sink, chunkSize, parquet.NewWriterProperties(), pqarrow.DefaultWriterProps())
}

func arrowType(kind domain.Kind) arrow.DataType {
	switch kind {
	case domain.KindInteger:
		return arrow.PrimitiveTypes.Int64
	case domain.KindFloat:
		return arrow.PrimitiveTypes.Float64
	case domain.KindBoolean:
		return arrow.FixedWidthTypes.Boolean
	case domain.KindDatetime:
		return arrow.FixedWidthTypes.Timestamp_ms
	default:
		// text, categorical and raw columns persist as strings
		return arrow.BinaryTypes.String
	}
}

func appendArrowValues(b array.Builder, col *domain.Column) {
	for _, v := range col.Values {
		if v == nil {
			b.AppendNull()
			continue
		}
		switch builder := b.(type) {
		case *array.Int64Builder:
			if n, ok := v.(int64); ok {
				builder.Append(n)
			} else {
				builder.AppendNull()
			}
		case *array.Float64Builder:
			if f, ok := v.(float64); ok {
				builder.Append(f)
			} else {
				builder.AppendNull()
			}
		case *array.BooleanBuilder:
			if bv, ok := v.(bool); ok {
				builder.Append(bv)
			} else {
				builder.AppendNull()
			}
		case *array.TimestampBuilder:
			if ts, ok := v.(time.Time); ok {
				builder.Append(arrow.Timestamp(ts.UnixMilli()))
			} else {
				builder.AppendNull()
			}
		case *array.StringBuilder:
			builder.Append(transform.Stringify(v))
		default:
			b.AppendNull()
		}
	}
}
