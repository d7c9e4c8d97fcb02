package core

// Factorial computes dest = n! for n >= 0. Below
// Config.FactorialBinarySplitCutoff it accumulates the running product
// linearly (one general Mul by the next integer per step); above it, it uses binary
// splitting — recursively multiplying balanced sub-ranges of consecutive
// integers — which keeps the operand sizes in each multiply close to
// equal and lets the multiplicative core's Karatsuba/Toom tiers do
// useful work, instead of the very lopsided single-digit-by-huge-product
// shape the linear method produces near the end.
func Factorial(dest *Int, n int64, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if n < 0 {
		return ErrMathDomain
	}
	if n < 2 {
		return copyInt(dest, IntOne, cfg)
	}

	if n < cfg.FactorialBinarySplitCutoff {
		var result Int
		if err := copyInt(&result, IntOne, cfg); err != nil {
			return err
		}
		for i := int64(2); i <= n; i++ {
			if err := mulSmallInt64(&result, &result, i, cfg); err != nil {
				return err
			}
		}
		return copyInt(dest, &result, cfg)
	}

	result, err := factorialRange(2, n, cfg)
	if err != nil {
		return err
	}
	return copyInt(dest, result, cfg)
}

// factorialRange returns the product lo*(lo+1)*...*hi via binary
// splitting, allocating a fresh *Int for the result.
func factorialRange(lo, hi int64, cfg *Config) (*Int, error) {
	if lo > hi {
		return IntOne, nil
	}
	if lo == hi {
		z := new(Int)
		if err := setInt64(z, lo, cfg); err != nil {
			return nil, err
		}
		return z, nil
	}
	if hi-lo <= 1 {
		z := new(Int)
		if err := setInt64(z, lo, cfg); err != nil {
			return nil, err
		}
		var hiInt Int
		if err := setInt64(&hiInt, hi, cfg); err != nil {
			return nil, err
		}
		if err := Mul(z, z, &hiInt, cfg); err != nil {
			return nil, err
		}
		return z, nil
	}
	mid := lo + (hi-lo)/2
	left, err := factorialRange(lo, mid, cfg)
	if err != nil {
		return nil, err
	}
	right, err := factorialRange(mid+1, hi, cfg)
	if err != nil {
		return nil, err
	}
	z := new(Int)
	if err := Mul(z, left, right, cfg); err != nil {
		return nil, err
	}
	return z, nil
}

// setInt64 sets z to the non-negative value of v, splitting it across as
// many limbs as DigitBits requires.
func setInt64(z *Int, v int64, cfg *Config) error {
	if v < 0 {
		return ErrInvalidArgument
	}
	if err := copyInt(z, IntZero, cfg); err != nil {
		return err
	}
	if v == 0 {
		return nil
	}
	limbs := make([]DIGIT, 0, 3)
	u := uint64(v)
	for u != 0 {
		limbs = append(limbs, DIGIT(u&uint64(Mask)))
		u >>= DigitBits
	}
	return storeLimbProduct(z, limbsNorm(limbs), false, cfg)
}

// mulSmallInt64 computes dest = a*v for a small non-negative v, via
// setInt64 plus the general multiply (v may exceed one limb, unlike
// MulDigit's single-DIGIT multiplier).
func mulSmallInt64(dest, a *Int, v int64, cfg *Config) error {
	var vi Int
	if err := setInt64(&vi, v, cfg); err != nil {
		return err
	}
	return Mul(dest, a, &vi, cfg)
}
