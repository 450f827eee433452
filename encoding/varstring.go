package encoding

import (
	"fmt"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/internal/pool"
)

// MaxTextLength is the maximum length of an encoded string.
// The length prefix is a single byte.
const MaxTextLength = 255

// VarStringEncoder encodes strings with a uint8 length prefix.
//
// Each string is encoded as:
//   - 1 byte: length (0-255)
//   - N bytes: string data
type VarStringEncoder struct {
	buf   *pool.ByteBuffer
	count int
}

// NewVarStringEncoder creates a new variable-length string encoder backed by
// a pooled buffer. Call Reset to return the buffer.
func NewVarStringEncoder() *VarStringEncoder {
	return &VarStringEncoder{buf: pool.GetPayloadBuffer()}
}

// Write encodes text and returns the offset at which it was written.
func (e *VarStringEncoder) Write(text string) (int, error) {
	if len(text) > MaxTextLength {
		return 0, fmt.Errorf("text length %d exceeds maximum %d", len(text), MaxTextLength)
	}

	offset := e.buf.Len()
	e.buf.Grow(1 + len(text))
	e.buf.B = append(e.buf.B, uint8(len(text))) //nolint:gosec
	e.buf.B = append(e.buf.B, text...)
	e.count++

	return offset, nil
}

// Bytes returns the encoded data. The slice shares the encoder's buffer.
func (e *VarStringEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of strings encoded.
func (e *VarStringEncoder) Len() int {
	return e.count
}

// Size returns the total size of encoded data in bytes.
func (e *VarStringEncoder) Size() int {
	return e.buf.Len()
}

// Reset returns the buffer to the pool. The encoder must not be used after.
func (e *VarStringEncoder) Reset() {
	if e.buf != nil {
		pool.PutPayloadBuffer(e.buf)
		e.buf = nil
	}
	e.count = 0
}

// DecodeVarString reads the length-prefixed string at offset in data.
// It returns the string and the offset just past it.
func DecodeVarString(data []byte, offset int) (string, int, error) {
	if offset < 0 || offset >= len(data) {
		return "", 0, fmt.Errorf("%w: string offset %d out of bounds", errs.ErrInvalidPayload, offset)
	}

	start := offset + 1
	end := start + int(data[offset])
	if end > len(data) {
		return "", 0, fmt.Errorf("%w: truncated string at %d", errs.ErrInvalidPayload, offset)
	}

	return string(data[start:end]), end, nil
}
