package core

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToom3MulAgreesWithSchoolbook(t *testing.T) {
	cfg := DefaultConfig()
	x := patternOperand(t, 200)
	y := patternOperand(t, 210)
	want := schoolbookMul(x.digit[:x.used], y.digit[:y.used])
	got := toom3Mul(x.digit[:x.used], y.digit[:y.used], &cfg)
	require.Equal(t, want, got)
}

func TestToom3MulUnevenOperandsFallsBackToKaratsuba(t *testing.T) {
	cfg := DefaultConfig()
	x := patternOperand(t, 5)
	y := patternOperand(t, 300)
	want := schoolbookMul(x.digit[:x.used], y.digit[:y.used])
	got := toom3Mul(x.digit[:x.used], y.digit[:y.used], &cfg)
	require.Equal(t, want, got)
}

func TestSnumAddSubRoundTrip(t *testing.T) {
	a := snumFromLimbs([]DIGIT{5})
	b := snumFromLimbs([]DIGIT{9})
	diff := snumSub(a, b)
	require.True(t, diff.neg)
	require.Equal(t, []DIGIT{4}, diff.v)

	back := snumAdd(diff, b)
	require.False(t, back.neg)
	require.Equal(t, []DIGIT{5}, back.v)
}

func TestSnumDivExactRecoversQuotient(t *testing.T) {
	a := snumFromLimbs([]DIGIT{18})
	q := snumDivExact(a, 6)
	require.Equal(t, []DIGIT{3}, q.v)
}

func TestSnumShiftBitsMatchesMultiplyByPowerOfTwo(t *testing.T) {
	a := snumFromLimbs([]DIGIT{7})
	shifted := snumShiftBits(a, 2)
	require.Equal(t, []DIGIT{28}, shifted.v)
}

func TestSplitThreeHandlesShortTail(t *testing.T) {
	x := []DIGIT{1, 2, 3, 4, 5}
	lo, mid, hi := splitThree(x, 2)
	require.Equal(t, []DIGIT{1, 2}, lo)
	require.Equal(t, []DIGIT{3, 4}, mid)
	require.Equal(t, []DIGIT{5}, hi)
}
