package skiplist

import (
	"testing"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/rangeset"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("doc example", func(t *testing.T) {
		table, err := Encode([]rangeset.Range{{Start: 0x41, End: 0x5B}, {Start: 0x61, End: 0x7B}, {Start: 0x3A9, End: 0x3AA}})

		require.NoError(t, err)
		require.Equal(t, []byte{0x41, 0x1A, 0x06, 0x1A, 0x00, 0x01, 0x00}, table.Offsets)
		require.Equal(t, []RunHeader{{4, 0x3A9}, {6, SentinelPoint}}, table.Headers)
		require.Equal(t, uint32(0x41), table.FirstCodePoint)
	})

	t.Run("empty set", func(t *testing.T) {
		table, err := Encode(nil)

		require.NoError(t, err)
		require.Equal(t, []byte{0}, table.Offsets)
		require.Equal(t, []RunHeader{{0, SentinelPoint}}, table.Headers)
		require.Equal(t, uint32(SentinelPoint), table.FirstCodePoint)
		require.NoError(t, table.Verify())
	})

	t.Run("first delta oversized", func(t *testing.T) {
		table, err := Encode([]rangeset.Range{{Start: 0x300, End: 0x301}})

		require.NoError(t, err)
		require.Equal(t, RunHeader{StartIndex: 0, PrefixSum: 0x300}, table.Headers[0])
		require.Equal(t, []byte{0, 1, 0}, table.Offsets)
	})

	t.Run("consecutive oversized deltas", func(t *testing.T) {
		table, err := Encode([]rangeset.Range{{Start: 300, End: 600}})

		require.NoError(t, err)
		require.Equal(t, []RunHeader{{0, 300}, {1, 600}, {2, SentinelPoint}}, table.Headers)
		require.Equal(t, []byte{0, 0, 0}, table.Offsets)
	})

	t.Run("overflow run keeps exact prefix sum", func(t *testing.T) {
		table, err := Encode([]rangeset.Range{{Start: 0, End: 1000}, {Start: 1005, End: 1006}})

		require.NoError(t, err)
		require.Equal(t, []byte{0, 0, 5, 1, 0}, table.Offsets)
		require.Equal(t, []RunHeader{{1, 1000}, {4, SentinelPoint}}, table.Headers)
	})

	t.Run("range ending at code point limit", func(t *testing.T) {
		table, err := Encode([]rangeset.Range{{Start: 0x10FF00, End: rangeset.CodePointLimit}})

		require.NoError(t, err)
		require.NoError(t, table.Verify())
		last := table.Headers[len(table.Headers)-1]
		require.Equal(t, uint32(SentinelPoint), last.PrefixSum)
		require.Equal(t, len(table.Offsets)-1, int(last.StartIndex))
	})
}

func TestEncodeErrors(t *testing.T) {
	t.Run("malformed input", func(t *testing.T) {
		inputs := [][]rangeset.Range{
			{{Start: 9, End: 5}},
			{{Start: 5, End: 5}},
			{{Start: 0, End: 10}, {Start: 5, End: 20}},
			{{Start: 20, End: 30}, {Start: 0, End: 10}},
			{{Start: 0, End: rangeset.CodePointLimit + 1}},
		}
		for _, in := range inputs {
			table, err := Encode(in)
			require.ErrorIs(t, err, errs.ErrMalformedInput)
			require.Nil(t, table)
		}
	})

	t.Run("boundary count overflow", func(t *testing.T) {
		ranges := make([]rangeset.Range, 1024)
		for i := range ranges {
			ranges[i] = rangeset.Range{Start: uint32(4 * i), End: uint32(4*i + 1)}
		}

		table, err := Encode(ranges)
		require.ErrorIs(t, err, errs.ErrEncodingOverflow)
		require.Contains(t, err.Error(), "start_index")
		require.Nil(t, table)
	})

	t.Run("largest addressable set", func(t *testing.T) {
		ranges := make([]rangeset.Range, (MaxBoundaries-1)/2)
		for i := range ranges {
			ranges[i] = rangeset.Range{Start: uint32(4 * i), End: uint32(4*i + 1)}
		}

		table, err := Encode(ranges)
		require.NoError(t, err)
		require.Len(t, table.Offsets, MaxBoundaries-1)
		require.NoError(t, table.Verify())
	})
}

func TestMustEncode(t *testing.T) {
	require.NotPanics(t, func() { MustEncode([]rangeset.Range{{Start: 1, End: 2}}) })
	require.Panics(t, func() { MustEncode([]rangeset.Range{{Start: 2, End: 1}}) })
}

func TestEncodeDeterministic(t *testing.T) {
	ranges := randomRanges(newRand(3), 400)

	a, err := Encode(ranges)
	require.NoError(t, err)
	b, err := Encode(ranges)
	require.NoError(t, err)

	require.Equal(t, a.Headers, b.Headers)
	require.Equal(t, a.Offsets, b.Offsets)
}
