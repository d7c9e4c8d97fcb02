package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootNPerfectCubes(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct{ n, root int64 }{
		{0, 0}, {1, 1}, {8, 2}, {27, 3}, {1000000, 100},
	}
	for _, c := range cases {
		var dest Int
		require.NoError(t, RootN(&dest, fromInt64(t, c.n), 3, &cfg))
		require.Equal(t, toDecimal(t, fromInt64(t, c.root)), toDecimal(t, &dest))
	}
}

func TestRootNFloorsNonPerfectRoots(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	require.NoError(t, RootN(&dest, fromInt64(t, 10), 3, &cfg))
	require.Equal(t, "2", toDecimal(t, &dest)) // 2^3=8 <= 10 < 27=3^3
}

func TestRootNNegativeOddRoot(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	require.NoError(t, RootN(&dest, fromInt64(t, -27), 3, &cfg))
	require.Equal(t, "-3", toDecimal(t, &dest))
}

func TestRootNNegativeEvenRootIsDomainError(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	err := RootN(&dest, fromInt64(t, -16), 4, &cfg)
	require.ErrorIs(t, err, ErrMathDomain)
}

func TestRootNDegreeTwoMatchesSqrt(t *testing.T) {
	cfg := DefaultConfig()
	n := fromDecimal(t, "123456789012345678901234567890")
	var viaRoot, viaSqrt Int
	require.NoError(t, RootN(&viaRoot, n, 2, &cfg))
	require.NoError(t, Sqrt(&viaSqrt, n, &cfg))
	require.Equal(t, 0, Compare(&viaRoot, &viaSqrt))
}

func TestRootNDegreeOneIsIdentity(t *testing.T) {
	cfg := DefaultConfig()
	n := fromInt64(t, -12345)
	var dest Int
	require.NoError(t, RootN(&dest, n, 1, &cfg))
	require.Equal(t, 0, Compare(n, &dest))
}

func TestRootNReturnsMaxIterationsWhenCutoffTooLow(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxIterationsRootN = 1
	var dest Int
	n := fromDecimal(t, "123456789012345678901234567890123456789012345")
	err := RootN(&dest, n, 7, &cfg)
	require.ErrorIs(t, err, ErrMaxIterationsReached)
}

func TestRootNBoundingInequality(t *testing.T) {
	cfg := DefaultConfig()
	n := fromDecimal(t, "123456789012345678901234567890")
	var root, lowPow, highPow, one Int
	require.NoError(t, RootN(&root, n, 5, &cfg))
	require.NoError(t, intPow(&lowPow, &root, 5, &cfg))
	require.NoError(t, Set(&one, int64(1), &cfg))
	var rootPlusOne Int
	require.NoError(t, AddUnsigned(&rootPlusOne, &root, &one, &cfg))
	require.NoError(t, intPow(&highPow, &rootPlusOne, 5, &cfg))

	require.LessOrEqual(t, CompareMagnitude(&lowPow, n), 0)
	require.Greater(t, CompareMagnitude(&highPow, n), 0)
}
