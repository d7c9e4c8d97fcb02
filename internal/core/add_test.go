package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddUnsignedCommutative(t *testing.T) {
	cfg := DefaultConfig()
	a := fromDecimal(t, "340282366920938463463374607431768211456") // 2^128
	b := fromDecimal(t, "340282366920938463463374607431768211456")
	var ab, ba Int
	require.NoError(t, AddUnsigned(&ab, a, b, &cfg))
	require.NoError(t, AddUnsigned(&ba, b, a, &cfg))
	require.Equal(t, 0, Compare(&ab, &ba))
	require.Equal(t, "680564733841876926926749214863536422912", toDecimal(t, &ab))
}

func TestSubUnsignedSelfIsZero(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 123456789)
	var dest Int
	require.NoError(t, SubUnsigned(&dest, a, a, &cfg))
	require.True(t, IsZero(&dest))
}

func TestAddSignedOppositeSignsCancelAcrossBoundary(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 1<<27)
	b := fromInt64(t, -(1 << 27))
	var dest Int
	require.NoError(t, AddSigned(&dest, a, b, &cfg))
	require.True(t, IsZero(&dest))
}

func TestAddDigitAcrossLimbBoundary(t *testing.T) {
	cfg := DefaultConfig()
	// Crossing a limb boundary: (2^28 - 1) + 1 == 2^28.
	a := fromInt64(t, (1<<DigitBits)-1)
	var dest Int
	require.NoError(t, AddDigit(&dest, a, 1, &cfg))
	require.Equal(t, toDecimal(t, fromInt64(t, 1<<DigitBits)), toDecimal(t, &dest))
}

func TestSubSignedSameSignSmallerFromLarger(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 10)
	b := fromInt64(t, 3)
	var dest Int
	require.NoError(t, SubSigned(&dest, a, b, &cfg))
	require.Equal(t, "7", toDecimal(t, &dest))
}

func TestSubSignedResultNegativeWhenSubtrahendLarger(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 3)
	b := fromInt64(t, 10)
	var dest Int
	require.NoError(t, SubSigned(&dest, a, b, &cfg))
	require.Equal(t, "-7", toDecimal(t, &dest))
}

func TestAddDigitAliasedFastPath(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 10)
	require.NoError(t, AddDigit(a, a, 5, &cfg))
	require.Equal(t, "15", toDecimal(t, a))
}

func TestSubDigitNegativeOperand(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, -10)
	var dest Int
	require.NoError(t, SubDigit(&dest, a, 5, &cfg))
	require.Equal(t, "-15", toDecimal(t, &dest))
}

func TestAddDigitNegativeOperandSignFlip(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, -5)
	var dest Int
	require.NoError(t, AddDigit(&dest, a, 10, &cfg))
	require.Equal(t, "5", toDecimal(t, &dest))
}

func TestAddSignedCommutative(t *testing.T) {
	cfg := DefaultConfig()
	a := fromDecimal(t, "-123456789012345678901234567890")
	b := fromDecimal(t, "987654321098765432109876543210")
	var ab, ba Int
	require.NoError(t, AddSigned(&ab, a, b, &cfg))
	require.NoError(t, AddSigned(&ba, b, a, &cfg))
	require.Equal(t, 0, Compare(&ab, &ba))
}
