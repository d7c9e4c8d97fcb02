package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsZero(t *testing.T) {
	require.True(t, IsZero(IntZero))
	require.False(t, IsZero(fromInt64(t, 1)))
	require.False(t, IsZero(fromInt64(t, -1)))
}

func TestIsEvenOdd(t *testing.T) {
	require.True(t, IsEven(fromInt64(t, 0)))
	require.True(t, IsEven(fromInt64(t, 4)))
	require.True(t, IsEven(fromInt64(t, -4)))
	require.True(t, IsOdd(fromInt64(t, 5)))
	require.True(t, IsOdd(fromInt64(t, -5)))
}

func TestIsPowerOfTwo(t *testing.T) {
	cases := []struct {
		v    int64
		want bool
	}{
		{0, true},
		{1, true},
		{2, true},
		{3, false},
		{4, true},
		{5, false},
		{1 << 20, true},
		{(1 << 20) + 1, false},
	}
	for _, c := range cases {
		got := IsPowerOfTwo(fromInt64(t, c.v))
		require.Equal(t, c.want, got, "IsPowerOfTwo(%d)", c.v)
	}
}

func TestIsPowerOfTwoAcrossLimbBoundary(t *testing.T) {
	cfg := DefaultConfig()
	var a Int
	require.NoError(t, SetPowerOfTwo(&a, 100, &cfg))
	require.True(t, IsPowerOfTwo(&a))

	// Set a low bit below the top limb: no longer a power of two.
	var withLowBit Int
	require.NoError(t, copyInt(&withLowBit, &a, &cfg))
	require.NoError(t, AddDigit(&withLowBit, &withLowBit, 1, &cfg))
	require.False(t, IsPowerOfTwo(&withLowBit))
}

func TestCompareMagnitudeIgnoresSign(t *testing.T) {
	a := fromInt64(t, -5)
	b := fromInt64(t, 5)
	require.Equal(t, 0, CompareMagnitude(a, b))
}

func TestCompareSigned(t *testing.T) {
	require.Equal(t, -1, Compare(fromInt64(t, -1), fromInt64(t, 1)))
	require.Equal(t, 1, Compare(fromInt64(t, 1), fromInt64(t, -1)))
	require.Equal(t, 0, Compare(fromInt64(t, 7), fromInt64(t, 7)))
	require.Equal(t, -1, Compare(fromInt64(t, -7), fromInt64(t, -3)))
}

func TestCompareDigit(t *testing.T) {
	require.Equal(t, 0, CompareDigit(fromInt64(t, 5), 5))
	require.Equal(t, 1, CompareDigit(fromInt64(t, 6), 5))
	require.Equal(t, -1, CompareDigit(fromInt64(t, 4), 5))
	require.Equal(t, -1, CompareDigit(fromInt64(t, -1), 0))
	require.Equal(t, 0, CompareDigit(fromInt64(t, 0), 0))
}

func TestCountBits(t *testing.T) {
	require.Equal(t, 0, CountBits(fromInt64(t, 0)))
	require.Equal(t, 1, CountBits(fromInt64(t, 1)))
	require.Equal(t, 3, CountBits(fromInt64(t, 4)))
	require.Equal(t, 3, CountBits(fromInt64(t, -4)))
}

func TestTrailingZeroBits(t *testing.T) {
	require.Equal(t, 0, TrailingZeroBits(fromInt64(t, 0)))
	require.Equal(t, 0, TrailingZeroBits(fromInt64(t, 1)))
	require.Equal(t, 2, TrailingZeroBits(fromInt64(t, 12)))
	cfg := DefaultConfig()
	var a Int
	require.NoError(t, SetPowerOfTwo(&a, 90, &cfg))
	require.Equal(t, 90, TrailingZeroBits(&a))
}
