package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/runetab/errs"
)

func TestVarStringEncoder_Write(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	off, err := encoder.Write("")
	require.NoError(t, err)
	require.Equal(t, 0, off)

	off, err = encoder.Write("hello")
	require.NoError(t, err)
	require.Equal(t, 1, off)
	require.Equal(t, 2, encoder.Len())
	require.Equal(t, 7, encoder.Size())

	data := encoder.Bytes()
	require.Equal(t, byte(0), data[0])
	require.Equal(t, byte(5), data[1])
	require.Equal(t, "hello", string(data[2:]))
}

func TestVarStringEncoder_Write_MaxLength(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	_, err := encoder.Write(strings.Repeat("a", MaxTextLength))
	require.NoError(t, err)
	require.Equal(t, 256, encoder.Size())

	_, err = encoder.Write(strings.Repeat("a", MaxTextLength+1))
	require.Error(t, err)
	require.Equal(t, 1, encoder.Len())
}

func TestDecodeVarString(t *testing.T) {
	encoder := NewVarStringEncoder()
	defer encoder.Reset()

	names := []string{"White_Space", "Dash", "", "Lu"}
	offsets := make([]int, len(names))
	for i, name := range names {
		off, err := encoder.Write(name)
		require.NoError(t, err)
		offsets[i] = off
	}
	data := encoder.Bytes()

	pos := 0
	for i, name := range names {
		require.Equal(t, offsets[i], pos)

		got, next, err := DecodeVarString(data, pos)
		require.NoError(t, err)
		require.Equal(t, name, got)
		pos = next
	}
	require.Equal(t, len(data), pos)
}

func TestDecodeVarString_Errors(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		offset int
	}{
		{"empty", nil, 0},
		{"offset past end", []byte{1, 'a'}, 2},
		{"negative offset", []byte{1, 'a'}, -1},
		{"truncated", []byte{5, 'a', 'b'}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeVarString(tt.data, tt.offset)
			require.ErrorIs(t, err, errs.ErrInvalidPayload)
		})
	}
}
