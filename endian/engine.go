// Package endian provides the byte order engines used by lexkey.
//
// Order-preserving keys are always laid out most-significant byte first, so
// every scalar transform in the encoding package writes through the big-endian
// engine: unsigned byte comparison of a big-endian integer equals numeric
// comparison of the integer. Framing metadata that is never compared, such as
// the key block header, uses the little-endian engine instead.
//
// # Basic Usage
//
//	engine := endian.GetKeyEngine()
//	buf = engine.AppendUint64(buf, value)
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use. The returned
// EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetKeyEngine returns the engine used for order-preserving scalar encodings.
func GetKeyEngine() EndianEngine {
	return binary.BigEndian
}
