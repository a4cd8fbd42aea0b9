package format

type (
	DataType        uint8
	EncodingType    uint8
	ZsType          uint8
	CompressionType uint8
)

const (
	TypeInt32   DataType = 0x1 // TypeInt32 represents a 32-bit signed integer column.
	TypeInt64   DataType = 0x2 // TypeInt64 represents a 64-bit signed integer column.
	TypeFloat64 DataType = 0x3 // TypeFloat64 represents a 64-bit IEEE 754 float column.
	TypeString  DataType = 0x4 // TypeString represents a variable-length string column.

	EncodingUnencoded            EncodingType = 0x1 // EncodingUnencoded leaves the column as a plain value column.
	EncodingDictionary           EncodingType = 0x2 // EncodingDictionary represents dictionary encoding.
	EncodingDeprecatedDictionary EncodingType = 0x3 // EncodingDeprecatedDictionary represents the legacy dictionary layout.
	EncodingRunLength            EncodingType = 0x4 // EncodingRunLength represents run-length encoding.

	// ZsUnspecified lets the encoder pick the default zero-suppression layout.
	ZsUnspecified      ZsType = 0x0
	ZsFixedByteAligned ZsType = 0x1 // ZsFixedByteAligned stores each value in 1, 2 or 4 whole bytes.
	ZsBitPacked        ZsType = 0x2 // ZsBitPacked stores each value in a fixed number of bits.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (d DataType) String() string {
	switch d {
	case TypeInt32:
		return "Int32"
	case TypeInt64:
		return "Int64"
	case TypeFloat64:
		return "Float64"
	case TypeString:
		return "String"
	default:
		return "Unknown"
	}
}

func (e EncodingType) String() string {
	switch e {
	case EncodingUnencoded:
		return "Unencoded"
	case EncodingDictionary:
		return "Dictionary"
	case EncodingDeprecatedDictionary:
		return "DeprecatedDictionary"
	case EncodingRunLength:
		return "RunLength"
	default:
		return "Unknown"
	}
}

func (z ZsType) String() string {
	switch z {
	case ZsUnspecified:
		return "Unspecified"
	case ZsFixedByteAligned:
		return "FixedByteAligned"
	case ZsBitPacked:
		return "BitPacked"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
