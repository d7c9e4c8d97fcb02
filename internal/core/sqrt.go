package core

// Sqrt computes dest = floor(sqrt(src)) for a non-negative src, via
// Newton's method: start from a value known to be too large and repeat
// z = floor((z + floor(src/z))/2) until the estimate stops decreasing.
// Negative src is a domain error; zero and one are their own roots.
func Sqrt(dest, src *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if src.sign == Negative {
		return ErrMathDomain
	}
	if src.used == 0 {
		return zeroResult(dest, cfg)
	}
	if CompareDigit(src, 1) == 0 {
		return copyInt(dest, src, cfg)
	}

	// Seed z with a power of two strictly above the root:
	// 2^(ceil(bits(src)/2)+1).
	bitLen := CountBits(src)
	seedBits := bitLen/2 + 1
	if bitLen%2 != 0 {
		seedBits++
	}

	var z, q, sum Int
	if err := setPowerOfTwo(&z, seedBits, cfg); err != nil {
		return err
	}

	for {
		if err := DivMod(&q, nil, src, &z, cfg); err != nil {
			return err
		}
		if err := AddUnsigned(&sum, &z, &q, cfg); err != nil {
			return err
		}
		if err := Shr1(&sum, &sum, cfg); err != nil {
			return err
		}
		if Compare(&sum, &z) >= 0 {
			break
		}
		swap(&z, &sum)
	}
	return copyInt(dest, &z, cfg)
}

// IsPerfectSquare reports whether src is a non-negative perfect square,
// writing the root to root when non-nil.
func IsPerfectSquare(root, src *Int, cfg *Config) (bool, error) {
	if src.sign == Negative {
		return false, nil
	}
	var r, check Int
	if err := Sqrt(&r, src, cfg); err != nil {
		return false, err
	}
	if err := Mul(&check, &r, &r, cfg); err != nil {
		return false, err
	}
	ok := Compare(&check, src) == 0
	if ok && root != nil {
		if err := copyInt(root, &r, cfg); err != nil {
			return false, err
		}
	}
	return ok, nil
}

// setPowerOfTwo sets z = 2^bits.
func setPowerOfTwo(z *Int, bitCount int, cfg *Config) error {
	if bitCount < 0 {
		return ErrInvalidArgument
	}
	if err := copyInt(z, IntOne, cfg); err != nil {
		return err
	}
	return Shl(z, z, bitCount, cfg)
}
