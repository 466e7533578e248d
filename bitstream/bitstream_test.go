package bitstream

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNextBitDecomposesBytesMSBFirst(t *testing.T) {
	src := bytes.NewReader([]byte{0b10110000})
	bs := New(8, src)
	want := []int{1, 0, 1, 1, 0, 0, 0, 0}
	for i, w := range want {
		b, err := bs.NextBit()
		require.NoError(t, err)
		require.Equalf(t, w, b, "bit %d", i)
	}
	require.Equal(t, uint64(8), bs.CallsCount())
}

func TestRefillsWhenExhausted(t *testing.T) {
	src := bytes.NewReader([]byte{0xFF, 0x00})
	bs := New(4, src)
	for i := 0; i < 4; i++ {
		b, err := bs.NextBit()
		require.NoError(t, err)
		require.Equal(t, 1, b)
	}
	for i := 0; i < 4; i++ {
		b, err := bs.NextBit()
		require.NoError(t, err)
		require.Equal(t, 0, b)
	}
}

func TestErrorPropagatesFromRNG(t *testing.T) {
	bs := New(8, bytes.NewReader(nil))
	_, err := bs.NextBit()
	require.Error(t, err)
}
