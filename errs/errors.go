// Package errs defines the sentinel errors returned by lexkey packages.
//
// Errors are wrapped with additional context using fmt.Errorf and %w, so
// callers should match them with errors.Is.
package errs

import "errors"

// Encoding errors.
var (
	// ErrNaN is returned when a NaN float64 is passed to a float transform.
	// NaN has no total order, so no encoding of it could preserve ordering.
	ErrNaN = errors.New("lexkey: NaN is not encodable")
	// ErrUnsupportedType is returned by lexkey.Of for values without a scalar transform.
	ErrUnsupportedType = errors.New("lexkey: unsupported value type")
	// ErrSeparatorInPart is returned by strict composite validation when a part
	// contains the 0x00 separator byte.
	ErrSeparatorInPart = errors.New("lexkey: composite part contains separator byte")
)

// Key block errors.
var (
	ErrKeyOutOfOrder       = errors.New("keyblock: key is not greater than previous key")
	ErrInvalidBlock        = errors.New("keyblock: invalid block")
	ErrInvalidHeaderSize   = errors.New("keyblock: invalid header size")
	ErrInvalidMagic        = errors.New("keyblock: invalid magic number")
	ErrUnsupportedVersion  = errors.New("keyblock: unsupported version")
	ErrChecksumMismatch    = errors.New("keyblock: checksum mismatch")
	ErrInvalidCompression  = errors.New("keyblock: invalid compression type")
	ErrInvalidRestartCount = errors.New("keyblock: invalid restart interval")
)

// Store errors.
var (
	ErrNotFound  = errors.New("kvstore: key not found")
	ErrClosed    = errors.New("kvstore: store is closed")
	ErrBatchDone = errors.New("kvstore: batch already committed or closed")

	// ErrIteratorInvalid is returned when reading from an iterator that is
	// not positioned on an entry.
	ErrIteratorInvalid = errors.New("kvstore: iterator is not positioned")
)
