package skiplist

import "fmt"

const (
	// StartIndexBits is the width of RunHeader.StartIndex in the packed form.
	StartIndexBits = 11
	// PrefixSumBits is the width of RunHeader.PrefixSum in the packed form.
	PrefixSumBits = 21

	MaxStartIndex = 1<<StartIndexBits - 1 // 2047
	MaxPrefixSum  = 1<<PrefixSumBits - 1  // 2,097,151

	prefixSumMask = MaxPrefixSum
)

// RunHeader marks an offset position whose delta did not fit in a byte.
//
// StartIndex is the index of the zero placeholder byte in Table.Offsets and
// PrefixSum is the exact boundary point at that index.
type RunHeader struct {
	StartIndex uint16
	PrefixSum  uint32
}

// Pack packs the header into a single word: StartIndex in the top 11 bits,
// PrefixSum in the low 21 bits.
//
// Both fields must already be within their bit budgets; Encode guarantees this.
func (h RunHeader) Pack() uint32 {
	return uint32(h.StartIndex)<<PrefixSumBits | h.PrefixSum&prefixSumMask
}

// UnpackRunHeader reverses RunHeader.Pack.
func UnpackRunHeader(v uint32) RunHeader {
	return RunHeader{
		StartIndex: uint16(v >> PrefixSumBits), //nolint: gosec
		PrefixSum:  v & prefixSumMask,
	}
}

func (h RunHeader) String() string {
	return fmt.Sprintf("RunHeader{start_index=%d, prefix_sum=%#x}", h.StartIndex, h.PrefixSum)
}
