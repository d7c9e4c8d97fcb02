package core

// Gcd computes dest = gcd(|a|, |b|) via the binary (Stein's) algorithm:
// strip common factors of two, then repeatedly subtract the smaller
// magnitude from the larger after stripping any remaining factors of two
// from the difference. gcd(0, b) = |b|, gcd(a, 0) = |a|, gcd(0, 0) = 0.
func Gcd(dest, a, b *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if a.used == 0 {
		return absInto(dest, b, cfg)
	}
	if b.used == 0 {
		return absInto(dest, a, cfg)
	}

	var u, v Int
	if err := absInto(&u, a, cfg); err != nil {
		return err
	}
	if err := absInto(&v, b, cfg); err != nil {
		return err
	}

	shift := min(TrailingZeroBits(&u), TrailingZeroBits(&v))
	if err := stripFactorsOfTwo(&u, cfg); err != nil {
		return err
	}

	for {
		if err := stripFactorsOfTwo(&v, cfg); err != nil {
			return err
		}
		if CompareMagnitude(&u, &v) > 0 {
			swap(&u, &v)
		}
		if err := SubUnsigned(&v, &v, &u, cfg); err != nil {
			return err
		}
		if v.used == 0 {
			break
		}
	}

	if err := Shl(dest, &u, shift, cfg); err != nil {
		return err
	}
	dest.sign = NonNegative
	return nil
}

func stripFactorsOfTwo(a *Int, cfg *Config) error {
	tz := TrailingZeroBits(a)
	if tz == 0 {
		return nil
	}
	return Shr(a, a, tz, cfg)
}

func absInto(dest, src *Int, cfg *Config) error {
	if err := copyInt(dest, src, cfg); err != nil {
		return err
	}
	if dest.used != 0 {
		dest.sign = NonNegative
	}
	return nil
}

// Lcm computes dest = lcm(|a|, |b|) = |a*b| / gcd(a,b), zero if either
// input is zero.
func Lcm(dest, a, b *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if a.used == 0 || b.used == 0 {
		return zeroResult(dest, cfg)
	}
	var g, prod Int
	if err := Gcd(&g, a, b, cfg); err != nil {
		return err
	}
	if err := Mul(&prod, a, b, cfg); err != nil {
		return err
	}
	prod.sign = NonNegative
	return DivMod(dest, nil, &prod, &g, cfg)
}

// ExtendedGcd computes g = gcd(a,b) together with Bezout coefficients x,y
// such that a*x + b*y = g, via the iterative extended Euclidean
// algorithm. Any of g, x, y may be nil.
func ExtendedGcd(g, x, y, a, b *Int, cfg *Config) error {
	var oldR, r, oldS, s, oldT, t Int
	if err := copyInt(&oldR, a, cfg); err != nil {
		return err
	}
	if err := copyInt(&r, b, cfg); err != nil {
		return err
	}
	if err := copyInt(&oldS, IntOne, cfg); err != nil {
		return err
	}
	if err := copyInt(&s, IntZero, cfg); err != nil {
		return err
	}
	if err := copyInt(&oldT, IntZero, cfg); err != nil {
		return err
	}
	if err := copyInt(&t, IntOne, cfg); err != nil {
		return err
	}

	for r.used != 0 {
		var q, rem Int
		if err := DivMod(&q, &rem, &oldR, &r, cfg); err != nil {
			return err
		}
		oldR, r = r, rem

		var sNext, tNext, prod Int
		if err := Mul(&prod, &q, &s, cfg); err != nil {
			return err
		}
		if err := SubSigned(&sNext, &oldS, &prod, cfg); err != nil {
			return err
		}
		oldS, s = s, sNext

		if err := Mul(&prod, &q, &t, cfg); err != nil {
			return err
		}
		if err := SubSigned(&tNext, &oldT, &prod, cfg); err != nil {
			return err
		}
		oldT, t = t, tNext
	}

	if g != nil {
		if err := copyInt(g, &oldR, cfg); err != nil {
			return err
		}
	}
	if x != nil {
		if err := copyInt(x, &oldS, cfg); err != nil {
			return err
		}
	}
	if y != nil {
		if err := copyInt(y, &oldT, cfg); err != nil {
			return err
		}
	}
	return nil
}
