package section

import "github.com/arloliu/runetab/format"

const (
	HeaderSize     = 32
	IndexEntrySize = 24

	// Bit masks
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicTableSetV1Opt identifies a version 1 table set (bits 4-15).
	MagicTableSetV1Opt = 0x5270

	MaxTableCount   = 0xFFFF
	MaxTableNameLen = 0xFF

	DefaultCompression = format.CompressionNone
)
