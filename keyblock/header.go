package keyblock

import (
	"fmt"

	"github.com/arloliu/lexkey/endian"
	"github.com/arloliu/lexkey/errs"
	"github.com/arloliu/lexkey/format"
)

// Header is the fixed-size header at the start of a key block.
//
// All fields are little-endian:
//
//	offset 0-1   Magic
//	offset 2     Version
//	offset 3     Compression
//	offset 4-7   Count
//	offset 8-11  RawLen
//	offset 12-15 PayloadLen
type Header struct {
	// Magic must equal keyblock.Magic.
	Magic uint16
	// Version is the block layout version.
	Version uint8
	// Compression is the codec applied to the payload.
	Compression format.CompressionType
	// Count is the number of keys in the block.
	Count uint32
	// RawLen is the payload length before compression.
	RawLen uint32
	// PayloadLen is the payload length as stored.
	PayloadLen uint32
}

var headerEngine = endian.GetLittleEndianEngine()

// NewHeader returns a header for the current version with the given compression.
func NewHeader(compression format.CompressionType) Header {
	return Header{
		Magic:       Magic,
		Version:     Version,
		Compression: compression,
	}
}

// AppendTo appends the encoded header to dst.
func (h Header) AppendTo(dst []byte) []byte {
	dst = headerEngine.AppendUint16(dst, h.Magic)
	dst = append(dst, h.Version, uint8(h.Compression))
	dst = headerEngine.AppendUint32(dst, h.Count)
	dst = headerEngine.AppendUint32(dst, h.RawLen)
	dst = headerEngine.AppendUint32(dst, h.PayloadLen)

	return dst
}

// Bytes returns the encoded header.
func (h Header) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}

// Parse decodes the header from exactly HeaderSize bytes and validates it.
func (h *Header) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	h.Magic = headerEngine.Uint16(data[0:2])
	h.Version = data[2]
	h.Compression = format.CompressionType(data[3])
	h.Count = headerEngine.Uint32(data[4:8])
	h.RawLen = headerEngine.Uint32(data[8:12])
	h.PayloadLen = headerEngine.Uint32(data[12:16])

	return h.Validate()
}

// Validate checks the magic number, version and compression type.
func (h Header) Validate() error {
	if h.Magic != Magic {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidMagic, h.Magic)
	}

	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}

	switch h.Compression {
	case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
		return nil
	default:
		return fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompression, uint8(h.Compression))
	}
}

// ParseHeader parses a Header from the start of data.
//
// Returns:
//   - Header: parsed header
//   - error: ErrInvalidHeaderSize if data is shorter than HeaderSize, or validation errors
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	var h Header
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return Header{}, err
	}

	return h, nil
}
