package section

import (
	"fmt"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/format"
)

// Flag is the packed option word at the start of a table set header.
type Flag struct {
	// Options packs the endianness bit (bit 0, 1 = big-endian), three reserved
	// bits that must be zero, and the magic number in bits 4-15.
	Options uint16

	// Compression is the format.CompressionType applied to the payload.
	Compression uint8
}

// NewFlag returns a little-endian, uncompressed v1 flag.
func NewFlag() Flag {
	return Flag{
		Options:     MagicTableSetV1Opt,
		Compression: uint8(DefaultCompression),
	}
}

// IsBigEndian returns whether multi-byte fields are big-endian.
func (f Flag) IsBigEndian() bool {
	return f.Options&EndiannessMask != 0
}

// WithBigEndian sets big-endian byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// WithLittleEndian sets little-endian byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// GetMagicNumber returns the magic number bits.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(c format.CompressionType) {
	f.Compression = uint8(c)
}

// GetCompression returns the payload compression type.
func (f Flag) GetCompression() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// Validate checks the magic number, reserved bits and compression type.
func (f Flag) Validate() error {
	if f.GetMagicNumber() != MagicTableSetV1Opt {
		return fmt.Errorf("%w: %#x", errs.ErrInvalidMagicNumber, f.GetMagicNumber())
	}
	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits set", errs.ErrInvalidHeaderFlags)
	}
	if !f.GetCompression().IsValid() {
		return fmt.Errorf("%w: unknown compression %d", errs.ErrInvalidHeaderFlags, f.Compression)
	}

	return nil
}
