package section

import (
	"testing"

	"github.com/arloliu/runetab/endian"
	"github.com/arloliu/runetab/errs"
	"github.com/stretchr/testify/require"
)

func TestIndexEntryRoundTrip(t *testing.T) {
	engines := map[string]endian.EndianEngine{
		"little-endian": endian.GetLittleEndianEngine(),
		"big-endian":    endian.GetBigEndianEngine(),
	}

	entry := IndexEntry{
		ID:             0xFEDCBA9876543210,
		FirstCodePoint: 0x300,
		HeaderCount:    12,
		OffsetCount:    1401,
		PayloadOffset:  70000,
		NameOffset:     42,
	}

	for name, engine := range engines {
		t.Run(name, func(t *testing.T) {
			data := entry.Append(nil, engine)
			require.Len(t, data, IndexEntrySize)

			parsed, err := ParseIndexEntry(data, engine)
			require.NoError(t, err)
			require.Equal(t, entry, parsed)
		})
	}

	require.Equal(t, 4*12+1401, entry.PayloadSize())
}

func TestIndexEntryAppendKeepsPrefix(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	first := IndexEntry{ID: 1}
	second := IndexEntry{ID: 2, NameOffset: 7}

	data := first.Append(nil, engine)
	data = second.Append(data, engine)
	require.Len(t, data, 2*IndexEntrySize)

	parsed, err := ParseIndexEntry(data[IndexEntrySize:], engine)
	require.NoError(t, err)
	require.Equal(t, second, parsed)
}

func TestParseIndexEntryShort(t *testing.T) {
	_, err := ParseIndexEntry(make([]byte, IndexEntrySize-1), endian.GetLittleEndianEngine())
	require.ErrorIs(t, err, errs.ErrInvalidIndexEntrySize)
}
