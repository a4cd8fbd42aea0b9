package encoding

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/petradb/petra/column"
	"github.com/petradb/petra/compress"
	"github.com/petradb/petra/endian"
	"github.com/petradb/petra/format"
	"github.com/petradb/petra/internal/hash"
	"github.com/petradb/petra/internal/pool"
	"github.com/petradb/petra/memory"
	"github.com/petradb/petra/zs"
)

// Frozen block layout (little-endian):
//
//	offset 0:  magic      uint16
//	offset 2:  version    uint8
//	offset 3:  data type  uint8
//	offset 4:  encoding   uint8
//	offset 5:  compression uint8
//	offset 6:  reserved   uint16 (zero)
//	offset 8:  row count  uint32
//	offset 12: raw size   uint32 (uncompressed payload length)
//	offset 16: checksum   uint64 (xxHash64 of the uncompressed payload)
//	offset 24: compressed payload
const (
	frozenMagic      = uint16(0x4643) // "CF"
	frozenVersion    = uint8(1)
	frozenHeaderSize = 24
)

// FrozenColumn is a column flattened into one compressed, checksummed
// in-memory block. Freezing is the compaction path for cold columns: the
// block keeps the column's full encoded form but is not directly scannable;
// Thaw rehydrates it into the original column representation.
//
// A frozen block is immutable and safe for unsynchronized concurrent reads.
type FrozenColumn struct {
	block []byte
}

// Freeze flattens a column of any supported representation into a frozen
// block using the given compression codec.
func Freeze(col column.Column, compression format.CompressionType) (*FrozenColumn, error) {
	switch col.DataType() {
	case format.TypeInt32:
		return freeze[int32](col, compression)
	case format.TypeInt64:
		return freeze[int64](col, compression)
	case format.TypeFloat64:
		return freeze[float64](col, compression)
	case format.TypeString:
		return freeze[string](col, compression)
	default:
		return nil, fmt.Errorf("freeze: unsupported data type %s", col.DataType())
	}
}

func freeze[T column.Value](col column.Column, compression format.CompressionType) (*FrozenColumn, error) {
	buf := pool.GetBlockBuffer()
	defer pool.PutBlockBuffer(buf)

	engine := endian.GetLittleEndianEngine()

	switch c := col.(type) {
	case *column.ValueColumn[T]:
		values, nulls := c.Raw()
		writeBitmap(buf, nulls)
		writeValues(buf, engine, values)
	case *DictionaryColumn[T]:
		buf.B = engine.AppendUint32(buf.B, uint32(len(c.dict)))
		writeValues(buf, engine, c.dict)
		if err := writeVector(buf, engine, c.attrs); err != nil {
			return nil, err
		}
	case *DeprecatedDictionaryColumn[T]:
		buf.B = engine.AppendUint32(buf.B, uint32(len(c.dict)))
		writeValues(buf, engine, c.dict)
		if err := writeVector(buf, engine, c.attrs); err != nil {
			return nil, err
		}
	case *RunLengthColumn[T]:
		buf.B = engine.AppendUint32(buf.B, uint32(len(c.runValues)))
		writeValues(buf, engine, c.runValues)
		writeBitmap(buf, c.runNulls)
		if err := writeVector(buf, engine, c.ends); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("freeze: unsupported column type %T", col)
	}

	payload := buf.Bytes()

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("freeze: %w", err)
	}

	block := make([]byte, frozenHeaderSize+len(compressed))
	engine.PutUint16(block[0:2], frozenMagic)
	block[2] = frozenVersion
	block[3] = uint8(col.DataType())
	block[4] = uint8(col.Encoding())
	block[5] = uint8(compression)
	engine.PutUint32(block[8:12], uint32(col.Size()))
	engine.PutUint32(block[12:16], uint32(len(payload)))
	engine.PutUint64(block[16:24], hash.Checksum(payload))
	copy(block[frozenHeaderSize:], compressed)

	return &FrozenColumn{block: block}, nil
}

// DataType returns the frozen column's value type tag.
func (f *FrozenColumn) DataType() format.DataType {
	return format.DataType(f.block[3])
}

// Encoding returns the encoding the column will have after Thaw.
func (f *FrozenColumn) Encoding() format.EncodingType {
	return format.EncodingType(f.block[4])
}

// Compression returns the block's compression codec tag.
func (f *FrozenColumn) Compression() format.CompressionType {
	return format.CompressionType(f.block[5])
}

// RowCount returns the number of rows the thawed column will have.
func (f *FrozenColumn) RowCount() int {
	return int(endian.GetLittleEndianEngine().Uint32(f.block[8:12]))
}

// BlockSize returns the total size of the frozen block in bytes, header
// included.
func (f *FrozenColumn) BlockSize() int {
	return len(f.block)
}

// Thaw rehydrates the frozen block into its original column representation,
// reserving the rebuilt buffers on res.
//
// Thaw verifies the block header and the payload checksum and returns an
// error on any mismatch; it never returns a partially decoded column.
func (f *FrozenColumn) Thaw(res memory.Resource) (column.Column, error) {
	if len(f.block) < frozenHeaderSize {
		return nil, fmt.Errorf("thaw: truncated block (%d bytes)", len(f.block))
	}

	engine := endian.GetLittleEndianEngine()
	if engine.Uint16(f.block[0:2]) != frozenMagic {
		return nil, fmt.Errorf("thaw: bad magic %#04x", engine.Uint16(f.block[0:2]))
	}
	if f.block[2] != frozenVersion {
		return nil, fmt.Errorf("thaw: unsupported block version %d", f.block[2])
	}

	rawSize := int(engine.Uint32(f.block[12:16]))

	codec, err := compress.GetCodec(f.Compression())
	if err != nil {
		return nil, err
	}
	payload, err := codec.Decompress(f.block[frozenHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("thaw: %w", err)
	}
	if len(payload) != rawSize {
		return nil, fmt.Errorf("thaw: payload is %d bytes, header says %d", len(payload), rawSize)
	}
	if sum := hash.Checksum(payload); sum != engine.Uint64(f.block[16:24]) {
		return nil, fmt.Errorf("thaw: checksum mismatch")
	}

	switch f.DataType() {
	case format.TypeInt32:
		return thaw[int32](res, engine, payload, f.RowCount(), f.Encoding())
	case format.TypeInt64:
		return thaw[int64](res, engine, payload, f.RowCount(), f.Encoding())
	case format.TypeFloat64:
		return thaw[float64](res, engine, payload, f.RowCount(), f.Encoding())
	case format.TypeString:
		return thaw[string](res, engine, payload, f.RowCount(), f.Encoding())
	default:
		return nil, fmt.Errorf("thaw: unsupported data type %s", f.DataType())
	}
}

func thaw[T column.Value](res memory.Resource, engine endian.EndianEngine, payload []byte, rows int, encoding format.EncodingType) (column.Column, error) {
	switch encoding {
	case format.EncodingUnencoded:
		nulls, off, err := readBitmap(payload, 0, rows)
		if err != nil {
			return nil, err
		}
		values, _, err := readValues[T](engine, payload, off, rows)
		if err != nil {
			return nil, err
		}

		return column.NewValueColumnFrom(values, nulls), nil

	case format.EncodingDictionary:
		dict, off, err := readDictionary[T](engine, payload)
		if err != nil {
			return nil, err
		}
		attrs, _, err := readVector(res, engine, payload, off, rows)
		if err != nil {
			return nil, err
		}

		return newDictionaryColumn(res, dict, attrs), nil

	case format.EncodingDeprecatedDictionary:
		dict, off, err := readDictionary[T](engine, payload)
		if err != nil {
			return nil, err
		}
		attrs, _, err := readVector(res, engine, payload, off, rows)
		if err != nil {
			return nil, err
		}
		fixed, ok := attrs.(*zs.FixedVector[uint32])
		if !ok {
			return nil, fmt.Errorf("thaw: legacy dictionary block carries %s attribute layout", attrs.Type())
		}

		return newDeprecatedDictionaryColumn(res, dict, fixed), nil

	case format.EncodingRunLength:
		if len(payload) < 4 {
			return nil, fmt.Errorf("thaw: truncated run-length payload")
		}
		runCount := int(engine.Uint32(payload[0:4]))
		runValues, off, err := readValues[T](engine, payload, 4, runCount)
		if err != nil {
			return nil, err
		}
		runNulls, off, err := readBitmap(payload, off, runCount)
		if err != nil {
			return nil, err
		}
		ends, _, err := readVector(res, engine, payload, off, runCount)
		if err != nil {
			return nil, err
		}

		return newRunLengthColumn(res, runValues, runNulls, ends, rows), nil

	default:
		return nil, fmt.Errorf("thaw: unsupported encoding %s", encoding)
	}
}

func readDictionary[T column.Value](engine endian.EndianEngine, payload []byte) ([]T, int, error) {
	if len(payload) < 4 {
		return nil, 0, fmt.Errorf("thaw: truncated dictionary payload")
	}
	dictLen := int(engine.Uint32(payload[0:4]))

	return readValues[T](engine, payload, 4, dictLen)
}

// writeValues serializes a typed value slice: fixed-width little-endian for
// numeric types, uvarint length prefix plus raw bytes for strings.
func writeValues[T column.Value](buf *pool.ByteBuffer, engine endian.EndianEngine, values []T) {
	switch vs := any(values).(type) {
	case []int32:
		for _, v := range vs {
			buf.B = engine.AppendUint32(buf.B, uint32(v))
		}
	case []int64:
		for _, v := range vs {
			buf.B = engine.AppendUint64(buf.B, uint64(v))
		}
	case []float64:
		for _, v := range vs {
			buf.B = engine.AppendUint64(buf.B, math.Float64bits(v))
		}
	case []string:
		for _, v := range vs {
			buf.B = binary.AppendUvarint(buf.B, uint64(len(v)))
			buf.MustWrite([]byte(v))
		}
	}
}

// readValues deserializes n values starting at off and returns the values
// and the offset past them.
func readValues[T column.Value](engine endian.EndianEngine, data []byte, off, n int) ([]T, int, error) {
	values := make([]T, n)

	switch vs := any(values).(type) {
	case []int32:
		if off+n*4 > len(data) {
			return nil, 0, fmt.Errorf("thaw: truncated int32 values")
		}
		for i := range vs {
			vs[i] = int32(engine.Uint32(data[off : off+4]))
			off += 4
		}
	case []int64:
		if off+n*8 > len(data) {
			return nil, 0, fmt.Errorf("thaw: truncated int64 values")
		}
		for i := range vs {
			vs[i] = int64(engine.Uint64(data[off : off+8]))
			off += 8
		}
	case []float64:
		if off+n*8 > len(data) {
			return nil, 0, fmt.Errorf("thaw: truncated float64 values")
		}
		for i := range vs {
			vs[i] = math.Float64frombits(engine.Uint64(data[off : off+8]))
			off += 8
		}
	case []string:
		for i := range vs {
			strLen, varintSize := binary.Uvarint(data[off:])
			// Compare against the remaining length in uint64 space; converting
			// an oversized strLen to int first would wrap negative and pass.
			if varintSize <= 0 || strLen > uint64(len(data)-off-varintSize) {
				return nil, 0, fmt.Errorf("thaw: truncated string values")
			}
			off += varintSize
			vs[i] = string(data[off : off+int(strLen)])
			off += int(strLen)
		}
	}

	return values, off, nil
}

// writeBitmap packs a bool slice into bytes, LSB first.
func writeBitmap(buf *pool.ByteBuffer, bits []bool) {
	start := buf.Len()
	buf.ExtendOrGrow((len(bits) + 7) / 8)
	out := buf.Bytes()[start:]
	clear(out)

	for i, b := range bits {
		if b {
			out[i/8] |= 1 << (i % 8)
		}
	}
}

// readBitmap unpacks n bools starting at off and returns them with the
// offset past the bitmap.
func readBitmap(data []byte, off, n int) ([]bool, int, error) {
	byteLen := (n + 7) / 8
	if off+byteLen > len(data) {
		return nil, 0, fmt.Errorf("thaw: truncated null bitmap")
	}

	bits := make([]bool, n)
	for i := range bits {
		bits[i] = data[off+i/8]&(1<<(i%8)) != 0
	}

	return bits, off + byteLen, nil
}

// writeVector serializes a zero-suppression vector: one layout tag byte,
// layout-specific width information, then the packed payload.
func writeVector(buf *pool.ByteBuffer, engine endian.EndianEngine, v zs.Vector) error {
	buf.MustWrite([]byte{uint8(v.Type())})

	switch vec := v.(type) {
	case *zs.FixedVector[uint8]:
		buf.MustWrite([]byte{1})
		buf.MustWrite(vec.Data())
	case *zs.FixedVector[uint16]:
		buf.MustWrite([]byte{2})
		for _, u := range vec.Data() {
			buf.B = engine.AppendUint16(buf.B, u)
		}
	case *zs.FixedVector[uint32]:
		buf.MustWrite([]byte{4})
		for _, u := range vec.Data() {
			buf.B = engine.AppendUint32(buf.B, u)
		}
	case *zs.BitPackedVector:
		buf.MustWrite([]byte{vec.BitWidth()})
		buf.B = engine.AppendUint32(buf.B, uint32(len(vec.Words())))
		for _, w := range vec.Words() {
			buf.B = engine.AppendUint64(buf.B, w)
		}
	default:
		return fmt.Errorf("freeze: unsupported vector layout %T", v)
	}

	return nil
}

// readVector deserializes a zero-suppression vector of n values starting at
// off and returns it with the offset past its payload.
func readVector(res memory.Resource, engine endian.EndianEngine, data []byte, off, n int) (zs.Vector, int, error) {
	if off+2 > len(data) {
		return nil, 0, fmt.Errorf("thaw: truncated vector header")
	}
	tag := format.ZsType(data[off])

	switch tag {
	case format.ZsFixedByteAligned:
		width := int(data[off+1])
		off += 2
		if off+n*width > len(data) {
			return nil, 0, fmt.Errorf("thaw: truncated fixed-size vector")
		}

		switch width {
		case 1:
			vals := make([]uint8, n)
			copy(vals, data[off:off+n])

			return zs.NewFixedVector(res, vals), off + n, nil
		case 2:
			vals := make([]uint16, n)
			for i := range vals {
				vals[i] = engine.Uint16(data[off : off+2])
				off += 2
			}

			return zs.NewFixedVector(res, vals), off, nil
		case 4:
			vals := make([]uint32, n)
			for i := range vals {
				vals[i] = engine.Uint32(data[off : off+4])
				off += 4
			}

			return zs.NewFixedVector(res, vals), off, nil
		default:
			return nil, 0, fmt.Errorf("thaw: invalid fixed-size vector width %d", width)
		}

	case format.ZsBitPacked:
		bitWidth := data[off+1]
		off += 2
		if off+4 > len(data) {
			return nil, 0, fmt.Errorf("thaw: truncated bit-packed vector")
		}
		wordCount := int(engine.Uint32(data[off : off+4]))
		off += 4
		if off+wordCount*8 > len(data) {
			return nil, 0, fmt.Errorf("thaw: truncated bit-packed vector")
		}

		words := make([]uint64, wordCount)
		for i := range words {
			words[i] = engine.Uint64(data[off : off+8])
			off += 8
		}

		return zs.NewBitPackedVector(res, words, n, bitWidth), off, nil

	default:
		return nil, 0, fmt.Errorf("thaw: unknown vector layout tag %d", tag)
	}
}
