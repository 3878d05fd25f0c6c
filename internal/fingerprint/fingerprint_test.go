package fingerprint_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avghash/internal/fingerprint"
)

func build(t *testing.T, size int, bits func(i int) bool) fingerprint.Hash {
	t.Helper()
	b := fingerprint.NewBuilder(size)
	for i := 0; i < size; i++ {
		require.NoError(t, b.Append(bits(i)))
	}
	h, err := b.Finalize()
	require.NoError(t, err)
	return h
}

func TestFirstBitIsMostSignificant(t *testing.T) {
	h := build(t, 64, func(i int) bool { return i == 0 })
	assert.Equal(t, "8000000000000000", h.String())
	assert.Equal(t, []uint64{1 << 63}, h.Words())

	h = build(t, 64, func(i int) bool { return i == 63 })
	assert.Equal(t, "0000000000000001", h.String())

	h = build(t, 64, func(i int) bool { return i%2 == 0 })
	assert.Equal(t, "aaaaaaaaaaaaaaaa", h.String())
}

func TestRenderWidth(t *testing.T) {
	tests := []struct {
		name string
		size int
		bits func(int) bool
		want string
	}{
		{name: "empty", size: 0, bits: func(int) bool { return true }, want: ""},
		{name: "four bits", size: 4, bits: func(i int) bool { return i%2 == 1 }, want: "5"},
		{name: "five bits", size: 5, bits: func(i int) bool { return i == 0 || i == 4 }, want: "11"},
		{name: "22 ones", size: 22, bits: func(int) bool { return true }, want: "3fffff"},
		{name: "22 zeros", size: 22, bits: func(int) bool { return false }, want: "000000"},
		{name: "65 bits", size: 65, bits: func(i int) bool { return i == 64 }, want: strings.Repeat("0", 16) + "1"},
		{
			name: "130 ones",
			size: 130,
			bits: func(int) bool { return true },
			want: strings.Repeat("f", 32) + "3",
		},
		{
			name: "130 leading bit",
			size: 130,
			bits: func(i int) bool { return i == 0 },
			want: "8" + strings.Repeat("0", 31) + "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := build(t, tt.size, tt.bits)
			assert.Equal(t, tt.want, h.String())
			assert.Len(t, h.String(), (tt.size+3)/4)
			assert.Equal(t, tt.size, h.Size())
		})
	}
}

func TestMultiWordLayout(t *testing.T) {
	h := build(t, 130, func(int) bool { return true })
	words := h.Words()
	require.Len(t, words, 3)
	assert.Equal(t, ^uint64(0), words[0])
	assert.Equal(t, ^uint64(0), words[1])
	assert.Equal(t, uint64(3), words[2])
	assert.Len(t, h.String(), 33)
}

func TestFinalizeUnderfilled(t *testing.T) {
	b := fingerprint.NewBuilder(10)
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Append(true))
	}
	_, err := b.Finalize()
	require.ErrorIs(t, err, fingerprint.ErrInsufficientBits)
	assert.Contains(t, err.Error(), "5 of 10")

	// The builder stays usable after a failed Finalize.
	for i := 0; i < 5; i++ {
		require.NoError(t, b.Append(false))
	}
	h, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "3e0", h.String())
}

func TestAppendPastCapacity(t *testing.T) {
	b := fingerprint.NewBuilder(2)
	require.NoError(t, b.Append(true))
	require.NoError(t, b.Append(true))
	require.ErrorIs(t, b.Append(true), fingerprint.ErrOverflow)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, 2, b.Cap())

	h, err := b.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "3", h.String())
}

func TestZeroSizeBuilder(t *testing.T) {
	b := fingerprint.NewBuilder(0)
	require.ErrorIs(t, b.Append(true), fingerprint.ErrOverflow)
	h, err := b.Finalize()
	require.NoError(t, err)
	assert.True(t, h.IsZero())
	assert.Empty(t, h.String())

	assert.Equal(t, 0, fingerprint.NewBuilder(-3).Cap())
}

func TestBuilderClosedAfterFinalize(t *testing.T) {
	b := fingerprint.NewBuilder(1)
	require.NoError(t, b.Append(true))
	_, err := b.Finalize()
	require.NoError(t, err)

	assert.ErrorIs(t, b.Append(true), fingerprint.ErrFinalized)
	_, err = b.Finalize()
	assert.ErrorIs(t, err, fingerprint.ErrFinalized)
}

func TestHashEqualAndWordsCopy(t *testing.T) {
	a := build(t, 70, func(i int) bool { return i%3 == 0 })
	b := build(t, 70, func(i int) bool { return i%3 == 0 })
	c := build(t, 70, func(i int) bool { return i%3 == 1 })
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(build(t, 69, func(i int) bool { return i%3 == 0 })))

	words := a.Words()
	words[0] = 0
	assert.True(t, a.Equal(b), "Words must return a copy")

	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, a.String(), string(text))
}
