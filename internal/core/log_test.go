package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogDigitExactPowers(t *testing.T) {
	cfg := DefaultConfig()
	got, err := LogDigit(fromInt64(t, 1000), 10, &cfg)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestLogDigitFloorsBetweenPowers(t *testing.T) {
	cfg := DefaultConfig()
	got, err := LogDigit(fromInt64(t, 999), 10, &cfg)
	require.NoError(t, err)
	require.Equal(t, 2, got)

	got, err = LogDigit(fromInt64(t, 1001), 10, &cfg)
	require.NoError(t, err)
	require.Equal(t, 3, got)
}

func TestLogDigitBaseTwoMatchesCountBits(t *testing.T) {
	cfg := DefaultConfig()
	n := fromInt64(t, 1<<20)
	got, err := LogDigit(n, 2, &cfg)
	require.NoError(t, err)
	require.Equal(t, CountBits(n)-1, got)
}

func TestLogDigitOfOneIsZero(t *testing.T) {
	cfg := DefaultConfig()
	got, err := LogDigit(fromInt64(t, 1), 7, &cfg)
	require.NoError(t, err)
	require.Equal(t, 0, got)
}

func TestLogDigitInvalidBase(t *testing.T) {
	cfg := DefaultConfig()
	_, err := LogDigit(fromInt64(t, 100), 1, &cfg)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLogDigitNonPositiveSrcIsDomainError(t *testing.T) {
	cfg := DefaultConfig()
	_, err := LogDigit(fromInt64(t, 0), 10, &cfg)
	require.ErrorIs(t, err, ErrMathDomain)

	_, err = LogDigit(fromInt64(t, -5), 10, &cfg)
	require.ErrorIs(t, err, ErrMathDomain)
}
