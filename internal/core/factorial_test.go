package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactorialSmallValues(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct{ n, want int64 }{
		{0, 1}, {1, 1}, {2, 2}, {5, 120}, {10, 3628800},
	}
	for _, c := range cases {
		var dest Int
		require.NoError(t, Factorial(&dest, c.n, &cfg))
		require.Equal(t, toDecimal(t, fromInt64(t, c.want)), toDecimal(t, &dest))
	}
}

func TestFactorialNegativeIsDomainError(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	err := Factorial(&dest, -1, &cfg)
	require.ErrorIs(t, err, ErrMathDomain)
}

// TestFactorialBinarySplitAgreesWithLinear forces the binary-split path
// (by lowering the cutoff) and checks it agrees with the linear
// accumulation path for the same n.
func TestFactorialBinarySplitAgreesWithLinear(t *testing.T) {
	linearCfg := DefaultConfig()
	linearCfg.FactorialBinarySplitCutoff = 1 << 30

	splitCfg := DefaultConfig()
	splitCfg.FactorialBinarySplitCutoff = 5

	var viaLinear, viaSplit Int
	require.NoError(t, Factorial(&viaLinear, 30, &linearCfg))
	require.NoError(t, Factorial(&viaSplit, 30, &splitCfg))
	require.Equal(t, 0, Compare(&viaLinear, &viaSplit))
}

func TestFactorialTwentyMatchesKnownValue(t *testing.T) {
	cfg := DefaultConfig()
	var dest Int
	require.NoError(t, Factorial(&dest, 20, &cfg))
	require.Equal(t, "2432902008176640000", toDecimal(t, &dest))
}
