package core

import "golang.org/x/exp/constraints"

// Get narrows a to the integer type T by shifting limbs in from most
// significant to least, OR-merging each into an accumulator of T's width.
// For a signed T, the top bit of the target width is masked off
// unconditionally, and the result is negated if a is negative — this
// mirrors libtommath's int_get behavior (and its documented quirk: the
// mask is applied regardless of whether the value actually needs it) and
// is not "fixed" here.
func Get[T constraints.Integer](a *Int) T {
	var acc T
	bitWidth := bitSizeOf[T]()
	for i := a.used - 1; i >= 0; i-- {
		acc = (acc << DigitBits) | T(a.digit[i])
	}
	if isSignedType[T]() && bitWidth > 0 {
		topBitMask := T(1) << uint(bitWidth-1)
		acc &^= topBitMask
	}
	if a.sign == Negative {
		acc = -acc
	}
	return acc
}

// Set clears dest, fixes its sign from v's sign, then emits limbs by
// repeatedly extracting v&Mask and right-shifting by DigitBits.
func Set[T constraints.Integer](dest *Int, v T, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	neg := v < 0
	u := v
	if neg {
		u = -u
	}

	oldUsed := dest.used
	limbs := make([]DIGIT, 0, 4)
	for u != 0 {
		limbs = append(limbs, DIGIT(u)&Mask)
		u >>= DigitBits
	}
	if err := grow(dest, len(limbs), false, cfg); err != nil {
		return err
	}
	copy(dest.digit, limbs)
	dest.used = len(limbs)
	zeroUnused(dest, oldUsed)
	dest.sign = NonNegative
	clamp(dest)
	if neg && dest.used != 0 {
		dest.sign = Negative
	}
	return nil
}

// GetFloat64 approximates a as a float64 by accumulating
// d = d*2^DigitBits + digit[i] over at most the 17 highest limbs (enough
// to exceed float64's 53-bit mantissa at this digit width), then applying
// a's sign. Values whose magnitude overflows float64 saturate to +/-Inf,
// matching ordinary float64 conversion semantics.
func GetFloat64(a *Int) float64 {
	if a.used == 0 {
		return 0
	}
	n := a.used
	highLimbs := 17
	if n < highLimbs {
		highLimbs = n
	}
	var d float64
	for i := n - 1; i >= n-highLimbs; i-- {
		d = d*float64(uint64(1)<<DigitBits) + float64(a.digit[i])
	}
	// Scale up for any limbs below the window we accumulated.
	if n > highLimbs {
		d *= pow2Float(DigitBits * (n - highLimbs))
	}
	if a.sign == Negative {
		d = -d
	}
	return d
}

func pow2Float(bits int) float64 {
	result := 1.0
	base := 2.0
	for bits > 0 {
		if bits&1 != 0 {
			result *= base
		}
		base *= base
		bits >>= 1
	}
	return result
}

func bitSizeOf[T constraints.Integer]() int {
	var v T
	switch any(v).(type) {
	case int8, uint8:
		return 8
	case int16, uint16:
		return 16
	case int32, uint32:
		return 32
	case int64, uint64, int, uint:
		return 64
	default:
		return 64
	}
}

func isSignedType[T constraints.Integer]() bool {
	var v T
	switch any(v).(type) {
	case int, int8, int16, int32, int64:
		return true
	default:
		return false
	}
}
