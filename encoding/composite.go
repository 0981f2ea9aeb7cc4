package encoding

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/arloliu/lexkey/errs"
)

const (
	// Separator is the byte placed between adjacent composite parts.
	Separator byte = 0x00
	// EndMarker is the byte appended by AppendLast to form an exclusive upper bound.
	EndMarker byte = 0xFF
)

// CompositeLen returns the exact length of the composite encoding of parts:
// the sum of the part lengths plus one separator between each adjacent pair.
func CompositeLen(parts [][]byte) int {
	if len(parts) == 0 {
		return 0
	}

	n := len(parts) - 1
	for _, p := range parts {
		n += len(p)
	}

	return n
}

// AppendComposite appends parts to dst joined by a single Separator byte.
//
// No separator is written before the first part or after the last one. Zero
// parts append nothing and a single part is appended unchanged. An empty part
// contributes no bytes but still takes its position between separators, so
// ["a", "", "b"] encodes as "a\x00\x00b".
//
// Parts must not contain the Separator byte; this is not checked here (see
// CheckParts). dst is grown at most once.
func AppendComposite(dst []byte, parts ...[]byte) []byte {
	if len(parts) == 0 {
		return dst
	}

	dst = slices.Grow(dst, CompositeLen(parts))
	for i, p := range parts {
		if i > 0 {
			dst = append(dst, Separator)
		}
		dst = append(dst, p...)
	}

	return dst
}

// AppendFirst appends the inclusive lower bound of all composites extending parts:
// the composite of parts followed by Separator.
func AppendFirst(dst []byte, parts ...[]byte) []byte {
	dst = slices.Grow(dst, CompositeLen(parts)+1)
	dst = AppendComposite(dst, parts...)

	return append(dst, Separator)
}

// AppendLast appends the exclusive upper bound of all composites extending parts:
// the composite of parts followed by EndMarker.
//
// Together with AppendFirst it forms the half-open scan range
// [First(parts), Last(parts)) over keys that start with parts.
func AppendLast(dst []byte, parts ...[]byte) []byte {
	dst = slices.Grow(dst, CompositeLen(parts)+1)
	dst = AppendComposite(dst, parts...)

	return append(dst, EndMarker)
}

// CheckPart reports whether part can be used as a composite part without
// breaking separator-based range semantics.
//
// Returns:
//   - error: errs.ErrSeparatorInPart wrapped with the offending offset, or nil
func CheckPart(part []byte) error {
	if i := bytes.IndexByte(part, Separator); i >= 0 {
		return fmt.Errorf("%w: offset %d", errs.ErrSeparatorInPart, i)
	}

	return nil
}

// CheckParts runs CheckPart on every part and reports the first violation.
func CheckParts(parts ...[]byte) error {
	for idx, p := range parts {
		if i := bytes.IndexByte(p, Separator); i >= 0 {
			return fmt.Errorf("%w: part %d offset %d", errs.ErrSeparatorInPart, idx, i)
		}
	}

	return nil
}
