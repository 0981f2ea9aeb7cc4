package lexkey

import (
	"slices"
	"time"

	"github.com/arloliu/lexkey/encoding"
	"github.com/arloliu/lexkey/internal/pool"
	"github.com/google/uuid"
)

// Encoder is a reusable scratch buffer for building keys without allocating
// a new buffer per value.
//
// Values are appended with the Encode* methods, each of which returns the
// number of bytes written. The accumulated bytes can be borrowed at any time
// with Bytes, discarded with Reset (capacity is kept), or handed over to an
// immutable Key with Freeze.
//
// An Encoder has a single owner and is not safe for concurrent use. Use one
// encoder per goroutine, or take them from the shared pool with
// AcquireEncoder and ReleaseEncoder.
//
// Example:
//
//	enc := lexkey.NewEncoder(64)
//	for _, id := range ids {
//	    enc.Reset()
//	    enc.EncodeString("user")
//	    enc.WriteSeparator()
//	    enc.EncodeInt64(id)
//	    db.Set(enc.Bytes(), value, nil)
//	}
type Encoder struct {
	buf    *pool.ByteBuffer
	pooled bool
}

// NewEncoder creates an encoder whose buffer can hold capacity bytes before growing.
func NewEncoder(capacity int) *Encoder {
	return &Encoder{buf: pool.NewByteBuffer(max(capacity, 0))}
}

// AcquireEncoder returns an empty encoder backed by a pooled buffer.
// Return it with ReleaseEncoder when done.
func AcquireEncoder() *Encoder {
	return &Encoder{buf: pool.GetKeyBuffer(), pooled: true}
}

// ReleaseEncoder returns the encoder's buffer to the pool. The encoder must
// not be used afterwards. Storage already handed to a Key by Freeze is never
// recycled.
func ReleaseEncoder(e *Encoder) {
	if e == nil || !e.pooled {
		return
	}

	pool.PutKeyBuffer(e.buf)
	e.buf = nil
}

// Reset empties the encoder while retaining its capacity.
func (e *Encoder) Reset() {
	e.buf.Reset()
}

// Len returns the number of bytes written since the last Reset or Freeze.
func (e *Encoder) Len() int {
	return e.buf.Len()
}

// Cap returns the current capacity of the encoder's buffer.
func (e *Encoder) Cap() int {
	return e.buf.Cap()
}

// Bytes borrows the current contents without consuming them.
//
// The slice is only valid until the next write, Reset or Freeze.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Freeze hands the accumulated bytes to an immutable Key without copying.
//
// The encoder gives up its storage: afterwards it is empty and the next
// write allocates a new buffer, so the returned Key is never modified. The
// key's capacity is clipped to its length, so appending to Bytes copies.
func (e *Encoder) Freeze() Key {
	b := e.buf.Detach()
	if len(b) == 0 {
		return Key{}
	}

	return Key{b: slices.Clip(b)}
}

// Write appends p verbatim. It implements io.Writer and never fails.
func (e *Encoder) Write(p []byte) (int, error) {
	return e.buf.Write(p)
}

// PushByte appends a single byte.
func (e *Encoder) PushByte(b byte) {
	_ = e.buf.WriteByte(b)
}

// WriteSeparator appends the composite separator 0x00.
func (e *Encoder) WriteSeparator() {
	_ = e.buf.WriteByte(Separator)
}

// EncodeString appends the bytes of s and returns the number of bytes written.
func (e *Encoder) EncodeString(s string) int {
	e.buf.B = encoding.AppendString(e.buf.B, s)
	return len(s)
}

// EncodeBytes appends b verbatim and returns the number of bytes written.
func (e *Encoder) EncodeBytes(b []byte) int {
	e.buf.B = encoding.AppendBytes(e.buf.B, b)
	return len(b)
}

// EncodeUint64 appends the 8-byte big-endian encoding of n.
func (e *Encoder) EncodeUint64(n uint64) int {
	e.buf.B = encoding.AppendUint64(e.buf.B, n)
	return encoding.Uint64Width
}

// EncodeInt64 appends the 8-byte order-preserving encoding of n.
func (e *Encoder) EncodeInt64(n int64) int {
	e.buf.B = encoding.AppendInt64(e.buf.B, n)
	return encoding.Int64Width
}

// EncodeBool appends 0x00 or 0x01.
func (e *Encoder) EncodeBool(v bool) int {
	e.buf.B = encoding.AppendBool(e.buf.B, v)
	return encoding.BoolWidth
}

// EncodeFloat64 appends the 8-byte order-preserving encoding of x.
//
// NaN writes nothing and returns errs.ErrNaN.
func (e *Encoder) EncodeFloat64(x float64) (int, error) {
	b, err := encoding.AppendFloat64(e.buf.B, x)
	if err != nil {
		return 0, err
	}
	e.buf.B = b

	return encoding.Float64Width, nil
}

// EncodeUUID appends the 16 raw bytes of u.
func (e *Encoder) EncodeUUID(u uuid.UUID) int {
	e.buf.B = encoding.AppendUUID(e.buf.B, u)
	return encoding.UUIDWidth
}

// EncodeTime appends t as order-preserving unix nanoseconds.
func (e *Encoder) EncodeTime(t time.Time) int {
	e.buf.B = encoding.AppendTime(e.buf.B, t)
	return encoding.TimeWidth
}

// EncodeComposite appends parts joined by the separator, without a trailing
// separator, and returns the number of bytes written.
func (e *Encoder) EncodeComposite(parts ...[]byte) int {
	n := encoding.CompositeLen(parts)
	if n == 0 {
		return 0
	}

	e.buf.Grow(n)
	e.buf.B = encoding.AppendComposite(e.buf.B, parts...)

	return n
}
