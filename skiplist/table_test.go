package skiplist

import (
	"math/rand"
	"testing"

	"github.com/arloliu/runetab/errs"
	"github.com/arloliu/runetab/rangeset"
	"github.com/stretchr/testify/require"
)

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// randomRanges generates up to n sorted, disjoint ranges mixing short gaps that
// fit in a byte with long gaps and lengths that need run headers.
func randomRanges(rng *rand.Rand, n int) []rangeset.Range {
	ranges := make([]rangeset.Range, 0, n)
	var next uint32
	for range n {
		gap := uint32(rng.Intn(200))
		if rng.Intn(4) == 0 {
			gap = uint32(256 + rng.Intn(3000))
		}
		length := uint32(1 + rng.Intn(100))
		if rng.Intn(5) == 0 {
			length = uint32(256 + rng.Intn(2000))
		}

		start := next + gap
		end := start + length
		if end > rangeset.CodePointLimit {
			break
		}
		ranges = append(ranges, rangeset.Range{Start: start, End: end})
		next = end
	}

	return ranges
}

// membership expands ranges into a bitmap over the whole code-point space.
func membership(ranges []rangeset.Range) []bool {
	bits := make([]bool, rangeset.CodePointLimit)
	for _, r := range ranges {
		for c := r.Start; c < r.End; c++ {
			bits[c] = true
		}
	}

	return bits
}

func TestContainsBoundaryExactness(t *testing.T) {
	table := MustEncode([]rangeset.Range{{Start: 5, End: 9}})

	require.False(t, table.Contains(4))
	for c := rune(5); c <= 8; c++ {
		require.True(t, table.Contains(c), "c=%d", c)
	}
	require.False(t, table.Contains(9))
}

func TestContainsEmptySet(t *testing.T) {
	table := MustEncode(nil)

	for c := rune(0); c <= rangeset.MaxCodePoint; c += 97 {
		require.False(t, table.Contains(c))
		require.False(t, Search(table.Headers, table.Offsets, uint32(c)))
	}
	require.False(t, table.Contains(rangeset.MaxCodePoint))
}

func TestContainsOverflowRun(t *testing.T) {
	table := MustEncode([]rangeset.Range{{Start: 0, End: 1000}, {Start: 1005, End: 1006}})

	require.Equal(t, uint32(1000), table.Headers[0].PrefixSum)

	tests := []struct {
		c    rune
		want bool
	}{
		{0, true}, {1, true}, {255, true}, {256, true}, {999, true},
		{1000, false}, {1004, false},
		{1005, true},
		{1006, false}, {0x10FFFF, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, table.Contains(tt.c), "c=%d", tt.c)
	}
}

func TestContainsOutOfDomain(t *testing.T) {
	table := MustEncode([]rangeset.Range{{Start: 0x10FF00, End: rangeset.CodePointLimit}})

	require.True(t, table.Contains(rangeset.MaxCodePoint))
	require.False(t, table.Contains(rangeset.MaxCodePoint+1))
	require.False(t, table.Contains(-1))

	ok, err := table.Lookup(rangeset.MaxCodePoint)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = table.Lookup(rangeset.MaxCodePoint + 1)
	require.ErrorIs(t, err, errs.ErrOutOfRange)
	require.False(t, ok)
}

func TestContainsASCIIFastReject(t *testing.T) {
	table := MustEncode([]rangeset.Range{{Start: 0x300, End: 0x370}})
	require.Equal(t, uint32(0x300), table.FirstCodePoint)

	for c := rune(0); c < 0x300; c++ {
		require.False(t, table.Contains(c))
	}
	require.True(t, table.Contains(0x300))
	require.True(t, table.Contains(0x36F))
	require.False(t, table.Contains(0x370))
}

func TestContainsAdjacentRanges(t *testing.T) {
	table := MustEncode([]rangeset.Range{{Start: 0, End: 10}, {Start: 10, End: 12}, {Start: 300, End: 301}})

	for c := rune(0); c < 12; c++ {
		require.True(t, table.Contains(c), "c=%d", c)
	}
	require.False(t, table.Contains(12))
	require.True(t, table.Contains(300))
}

func TestRoundTripFullDomain(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		ranges := randomRanges(newRand(seed), 900)
		table, err := Encode(ranges)
		require.NoError(t, err)

		want := membership(ranges)
		for c := range want {
			if table.Contains(rune(c)) != want[c] {
				t.Fatalf("seed %d: Contains(%#x) = %v, want %v", seed, c, !want[c], want[c])
			}
		}
	}
}

func TestRoundTripSampled(t *testing.T) {
	rng := newRand(42)
	for range 50 {
		ranges := randomRanges(rng, 1+rng.Intn(1000))
		table, err := Encode(ranges)
		require.NoError(t, err)

		for _, r := range ranges {
			for _, c := range []uint32{r.Start - 1, r.Start, r.End - 1, r.End} {
				if c > rangeset.MaxCodePoint {
					continue
				}
				require.Equal(t, rangeset.Contains(ranges, c), table.Contains(rune(c)), "c=%#x", c)
			}
		}
		for range 2000 {
			c := uint32(rng.Intn(rangeset.CodePointLimit))
			require.Equal(t, rangeset.Contains(ranges, c), table.Contains(rune(c)), "c=%#x", c)
		}
	}
}

func TestTelescopingInvariant(t *testing.T) {
	rng := newRand(7)
	for range 20 {
		ranges := randomRanges(rng, 500)
		table := MustEncode(ranges)

		want := append(rangeset.Points(ranges), SentinelPoint)
		require.Equal(t, want, table.Points())
		require.Equal(t, len(want), len(table.Offsets))
		require.Equal(t, ranges, table.Ranges())
	}
}

func TestHeaderMonotonicity(t *testing.T) {
	table := MustEncode(randomRanges(newRand(11), 1000))

	for i, h := range table.Headers {
		require.Zero(t, table.Offsets[h.StartIndex])
		if i > 0 {
			require.Greater(t, h.StartIndex, table.Headers[i-1].StartIndex)
			require.Greater(t, h.PrefixSum, table.Headers[i-1].PrefixSum)
		}
	}
}

func TestSentinelTermination(t *testing.T) {
	table := MustEncode([]rangeset.Range{{Start: 0x41, End: 0x5B}})

	last := table.Headers[len(table.Headers)-1]
	require.Equal(t, len(table.Offsets)-1, int(last.StartIndex))
	require.Greater(t, last.PrefixSum, uint32(rangeset.MaxCodePoint))
	require.Zero(t, table.Offsets[len(table.Offsets)-1])
}

func TestFromPacked(t *testing.T) {
	original := MustEncode(randomRanges(newRand(5), 300))

	t.Run("round trip", func(t *testing.T) {
		table, err := FromPacked(original.PackedHeaders(), original.Offsets, original.FirstCodePoint)
		require.NoError(t, err)
		require.Equal(t, original.Headers, table.Headers)
		require.Equal(t, original.SizeBytes(), table.SizeBytes())
	})

	t.Run("wrong first code point", func(t *testing.T) {
		_, err := FromPacked(original.PackedHeaders(), original.Offsets, original.FirstCodePoint+1)
		require.ErrorIs(t, err, errs.ErrCorruptTable)
	})

	t.Run("missing sentinel", func(t *testing.T) {
		packed := original.PackedHeaders()
		_, err := FromPacked(packed[:len(packed)-1], original.Offsets, original.FirstCodePoint)
		require.ErrorIs(t, err, errs.ErrCorruptTable)
	})
}

func TestVerifyCorruption(t *testing.T) {
	base := func() *Table {
		return MustEncode([]rangeset.Range{{Start: 0x41, End: 0x5B}, {Start: 0x61, End: 0x7B}, {Start: 0x3A9, End: 0x3AA}})
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, base().Verify())
	})

	t.Run("even offset count", func(t *testing.T) {
		tbl := base()
		tbl.Offsets = tbl.Offsets[:len(tbl.Offsets)-1]
		require.ErrorIs(t, tbl.Verify(), errs.ErrCorruptTable)
	})

	t.Run("no headers", func(t *testing.T) {
		tbl := base()
		tbl.Headers = nil
		require.ErrorIs(t, tbl.Verify(), errs.ErrCorruptTable)
	})

	t.Run("header not on placeholder", func(t *testing.T) {
		tbl := base()
		tbl.Headers[0].StartIndex = 3
		require.ErrorIs(t, tbl.Verify(), errs.ErrCorruptTable)
	})

	t.Run("header out of bounds", func(t *testing.T) {
		tbl := base()
		tbl.Headers[1].StartIndex = 100
		require.ErrorIs(t, tbl.Verify(), errs.ErrCorruptTable)
	})

	t.Run("non monotonic headers", func(t *testing.T) {
		tbl := base()
		tbl.Headers[0].PrefixSum = SentinelPoint + 1
		require.ErrorIs(t, tbl.Verify(), errs.ErrCorruptTable)
	})
}

func TestConcurrentLookups(t *testing.T) {
	ranges := randomRanges(newRand(9), 800)
	table := MustEncode(ranges)

	done := make(chan struct{})
	for w := range 8 {
		go func(seed int64) {
			defer func() { done <- struct{}{} }()
			rng := newRand(seed)
			for range 5000 {
				c := uint32(rng.Intn(rangeset.CodePointLimit))
				if table.Contains(rune(c)) != rangeset.Contains(ranges, c) {
					t.Errorf("mismatch at %#x", c)
					return
				}
			}
		}(int64(w))
	}
	for range 8 {
		<-done
	}
}

func BenchmarkContains(b *testing.B) {
	table := MustEncode(randomRanges(newRand(1), 700))
	queries := make([]rune, 1024)
	rng := newRand(2)
	for i := range queries {
		queries[i] = rune(rng.Intn(0x30000))
	}

	b.ResetTimer()
	i := 0
	for b.Loop() {
		table.Contains(queries[i&1023])
		i++
	}
}

func BenchmarkEncode(b *testing.B) {
	ranges := randomRanges(newRand(1), 700)

	for b.Loop() {
		if _, err := Encode(ranges); err != nil {
			b.Fatal(err)
		}
	}
}
