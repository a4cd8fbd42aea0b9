// Package endian provides the byte-order engine used by frozen column block
// serialization.
//
// EndianEngine combines encoding/binary's ByteOrder and AppendByteOrder, so
// block writers can append header and payload fields without scratch buffers
// while readers decode through the same engine. Frozen column blocks are
// always little-endian, independent of the host byte order.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface for block serialization.
//
// It is satisfied by binary.LittleEndian and binary.BigEndian from the
// standard library, so code written against it composes with existing
// encoding/binary callers.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns an EndianEngine for little-endian byte
// order, the order every frozen column block uses.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
