package encoding

import (
	"fmt"

	"github.com/petradb/petra/column"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/memory"
)

// ColumnEncoder consumes a value column and produces an immutable encoded
// column. One implementation exists per encoding type.
//
// Encoders are stateless; the zero value of each encoder type is ready to
// use. All codec-internal buffers are reserved on res and released when the
// resulting column is released.
type ColumnEncoder[T column.Value] interface {
	Encode(res memory.Resource, col *column.ValueColumn[T], zsType format.ZsType) column.TypedColumn[T]
}

// EncodedColumn is implemented by every encoded column variant.
type EncodedColumn interface {
	column.Column

	// MemoryUsage reports the bytes reserved for the column's payload and
	// auxiliary structures.
	MemoryUsage() int64

	// Release returns the column's accounting to its memory resource.
	// The column must not be used afterwards.
	Release()
}

// EncodeColumn encodes a typed value column with the given encoding type.
// EncodingUnencoded returns the input column unchanged. An unknown encoding
// type is a programming error and panics.
func EncodeColumn[T column.Value](res memory.Resource, col *column.ValueColumn[T], encoding format.EncodingType, zsType format.ZsType) column.TypedColumn[T] {
	switch encoding {
	case format.EncodingUnencoded:
		return col
	case format.EncodingDictionary:
		return DictionaryEncoder[T]{}.Encode(res, col, zsType)
	case format.EncodingDeprecatedDictionary:
		return DeprecatedDictionaryEncoder[T]{}.Encode(res, col, zsType)
	case format.EncodingRunLength:
		return RunLengthEncoder[T]{}.Encode(res, col, zsType)
	default:
		panic(fmt.Sprintf("encoding: unknown encoding type %s", encoding))
	}
}

// EncodeAny encodes a type-erased column by resolving its concrete value
// type first. The column must be an unencoded value column; encoding an
// already-encoded column is a contract violation and panics.
func EncodeAny(res memory.Resource, col column.Column, encoding format.EncodingType, zsType format.ZsType) column.Column {
	switch c := col.(type) {
	case *column.ValueColumn[int32]:
		return EncodeColumn(res, c, encoding, zsType)
	case *column.ValueColumn[int64]:
		return EncodeColumn(res, c, encoding, zsType)
	case *column.ValueColumn[float64]:
		return EncodeColumn(res, c, encoding, zsType)
	case *column.ValueColumn[string]:
		return EncodeColumn(res, c, encoding, zsType)
	default:
		panic(fmt.Sprintf("encoding: cannot encode %s column already encoded as %s", col.DataType(), col.Encoding()))
	}
}
