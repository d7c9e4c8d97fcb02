package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShl1MatchesMulByTwo(t *testing.T) {
	cfg := DefaultConfig()
	src := fromInt64(t, 123456789)
	var viaShift, viaMul Int
	require.NoError(t, Shl1(&viaShift, src, &cfg))
	require.NoError(t, MulDigit(&viaMul, src, 2, &cfg))
	require.Equal(t, 0, Compare(&viaShift, &viaMul))
}

func TestShr1DropsLowBit(t *testing.T) {
	cfg := DefaultConfig()
	src := fromInt64(t, 7)
	var dest Int
	require.NoError(t, Shr1(&dest, src, &cfg))
	require.Equal(t, "3", toDecimal(t, &dest))
}

func TestShl1InPlaceAliasing(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 999999999)
	want := new(Int)
	require.NoError(t, MulDigit(want, a, 2, &cfg))
	require.NoError(t, Shl1(a, a, &cfg))
	require.Equal(t, 0, Compare(a, want))
}

func TestShlDigitWholeLimbShift(t *testing.T) {
	cfg := DefaultConfig()
	a := fromInt64(t, 5)
	require.NoError(t, ShlDigit(a, 2, &cfg))
	base := intPowBase(t, &cfg)
	want := new(Int)
	require.NoError(t, Mul(want, fromInt64(t, 5), base, &cfg))
	require.Equal(t, 0, Compare(a, want))
}

func intPowBase(t *testing.T, cfg *Config) *Int {
	t.Helper()
	var base Int
	require.NoError(t, SetPowerOfTwo(&base, 2*DigitBits, cfg))
	return &base
}

func TestShrDigitBeyondUsedZeroes(t *testing.T) {
	a := fromInt64(t, 100)
	require.NoError(t, ShrDigit(a, 5))
	require.True(t, IsZero(a))
}

func TestShlShrRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	src := fromDecimal(t, "123456789012345678901234567890")
	var shifted, back Int
	require.NoError(t, Shl(&shifted, src, 37, &cfg))
	require.NoError(t, Shr(&back, &shifted, 37, &cfg))
	require.Equal(t, 0, Compare(src, &back))
}

func TestShlMatchesPowerOfTwoMultiply(t *testing.T) {
	cfg := DefaultConfig()
	src := fromInt64(t, 17)
	var shifted, pow2, want Int
	require.NoError(t, Shl(&shifted, src, 50, &cfg))
	require.NoError(t, SetPowerOfTwo(&pow2, 50, &cfg))
	require.NoError(t, Mul(&want, src, &pow2, &cfg))
	require.Equal(t, 0, Compare(&shifted, &want))
}

func TestShrModRemainderIsLowBits(t *testing.T) {
	cfg := DefaultConfig()
	src := fromInt64(t, 0b10110111)
	var q, r Int
	require.NoError(t, ShrMod(&q, &r, src, 3, &cfg))
	require.Equal(t, "22", toDecimal(t, &q))
	require.Equal(t, "7", toDecimal(t, &r))
}

func TestShrSignedMatchesArithmeticShift(t *testing.T) {
	cfg := DefaultConfig()
	// -5 >> 1 (arithmetic, two's complement) == -3 (floor(-5/2) == -3)
	src := fromInt64(t, -5)
	var dest Int
	require.NoError(t, ShrSigned(&dest, src, 1, &cfg))
	require.Equal(t, "-3", toDecimal(t, &dest))
}

func TestShrSignedNonNegativeMatchesShr(t *testing.T) {
	cfg := DefaultConfig()
	src := fromInt64(t, 100)
	var viaSigned, viaPlain Int
	require.NoError(t, ShrSigned(&viaSigned, src, 3, &cfg))
	require.NoError(t, Shr(&viaPlain, src, 3, &cfg))
	require.Equal(t, 0, Compare(&viaSigned, &viaPlain))
}

func TestShlNegativeBitsRejected(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	err := Shl(&dest, fromInt64(t, 1), -1, &cfg)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestShlNegativeBitsErrorWrapsRequestedCount(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	err := Shl(&dest, fromInt64(t, 1), -42, &cfg)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.Contains(t, err.Error(), "-42")
}
