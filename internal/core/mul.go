package core

// This file implements the multiplicative core: digit multiply with its
// power-of-two fast path, and the general multiply dispatcher choosing
// among schoolbook, Comba, Karatsuba, and Toom-Cook.

// schoolbookMul is the textbook O(len(x)*len(y)) multiply, propagating a
// DIGIT-wide carry immediately after each limb product (as opposed to
// combaMul's column-accumulate-then-carry strategy).
func schoolbookMul(x, y []DIGIT) []DIGIT {
	z := make([]DIGIT, len(x)+len(y))
	for i, yi := range y {
		if yi == 0 {
			continue
		}
		c := limbsAddMulVVW(z[i:i+len(x)], x, yi)
		j := i + len(x)
		for c != 0 {
			s := WORD(z[j]) + WORD(c)
			z[j] = DIGIT(s & WORD(Mask))
			c = DIGIT(s >> DigitBits)
			j++
		}
	}
	return limbsNorm(z)
}

// mulDispatch picks the multiplication algorithm by operand size and
// returns the unsigned product's limbs.
func mulDispatch(x, y []DIGIT, cfg *Config) []DIGIT {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	small, large := x, y
	if len(small) > len(large) {
		small, large = large, small
	}
	switch {
	case len(small) >= cfg.MulKaratsubaCutoff && len(large) >= 2*len(small):
		return balancedMul(small, large, cfg)
	case len(large) >= cfg.MulToomCutoff:
		return toom3Mul(x, y, cfg)
	case len(small) >= cfg.MulKaratsubaCutoff:
		return karatsubaMul(x, y, cfg)
	case len(x)+len(y)+1 < cfg.WArray && min(len(x), len(y)) <= cfg.MaxComba:
		return combaMul(x, y)
	default:
		return schoolbookMul(x, y)
	}
}

// balancedMul handles the case where one operand is much longer than the
// other: it slices the larger operand into chunks no longer than the
// smaller one, multiplies each chunk with the usual dispatch, and
// accumulates the shifted partial products. This keeps Karatsuba/Toom
// applicable even when the two operands are very unevenly sized, instead
// of falling through to schoolbook purely because of the size mismatch.
func balancedMul(small, large []DIGIT, cfg *Config) []DIGIT {
	result := make([]DIGIT, len(small)+len(large))
	chunk := len(small)
	for off := 0; off < len(large); off += chunk {
		end := min(off+chunk, len(large))
		part := mulDispatch(small, large[off:end], cfg)
		limbsAddAt(result, part, off)
	}
	return limbsNorm(result)
}

// Mul computes dest = a*b. The result sign is negative iff exactly one
// operand was negative and the result is non-zero. If a and b are the
// same *Int (aliased), this dispatches to Square.
func Mul(dest, a, b *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if a.used == 0 || b.used == 0 {
		return zeroResult(dest, cfg)
	}
	if a == b {
		return Square(dest, a, cfg)
	}

	prod := mulDispatch(a.digit[:a.used], b.digit[:b.used], cfg)
	return storeLimbProduct(dest, prod, a.sign != b.sign, cfg)
}

// sqrDispatch picks the squaring algorithm by operand size, gated on the
// squaring-specific cutoffs rather than the multiply ones: a squaring is
// cheaper than a general multiply of the same size (the cross terms are
// symmetric), so it tolerates the sub-quadratic tiers at a larger size
// than a general multiply would.
func sqrDispatch(x []DIGIT, cfg *Config) []DIGIT {
	if len(x) == 0 {
		return nil
	}
	switch {
	case len(x) >= cfg.SqrToomCutoff:
		return toom3Mul(x, x, cfg)
	case len(x) >= cfg.SqrKaratsubaCutoff:
		return karatsubaMul(x, x, cfg)
	case len(x)*2+1 < cfg.WArray && len(x) <= cfg.MaxComba/2:
		return combaMul(x, x)
	default:
		return schoolbookMul(x, x)
	}
}

// Square computes dest = src*src. A dedicated squaring kernel would halve
// the number of cross-term multiplies by exploiting symmetry, but that is
// left as a future specialization; Square calls the same underlying
// Comba/Karatsuba/Toom/schoolbook primitives as Mul, just gated on the
// squaring-specific cutoffs (sqrDispatch) instead of the multiply ones.
func Square(dest, src *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if src.used == 0 {
		return zeroResult(dest, cfg)
	}
	srcLimbs := src.digit[:src.used]
	prod := sqrDispatch(srcLimbs, cfg)
	return storeLimbProduct(dest, prod, false, cfg)
}

func storeLimbProduct(dest *Int, prod []DIGIT, neg bool, cfg *Config) error {
	oldUsed := dest.used
	if err := grow(dest, len(prod), false, cfg); err != nil {
		return err
	}
	copy(dest.digit, prod)
	dest.used = len(prod)
	zeroUnused(dest, oldUsed)
	dest.sign = NonNegative
	clamp(dest)
	if neg && dest.used != 0 {
		dest.sign = Negative
	}
	return nil
}

// MulDigit computes dest = src*m for an unsigned single-limb m, with fast
// paths for m in {0,1,2} and general powers of two.
func MulDigit(dest, src *Int, m DIGIT, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	switch {
	case m == 0 || src.used == 0:
		return zeroResult(dest, cfg)
	case m == 1:
		return copyInt(dest, src, cfg)
	case m == 2:
		return Shl1(dest, src, cfg)
	case m&(m-1) == 0:
		shiftBy := 0
		for v := m; v > 1; v >>= 1 {
			shiftBy++
		}
		return Shl(dest, src, shiftBy, cfg)
	}

	oldUsed := dest.used
	n := src.used
	if err := grow(dest, n+1, false, cfg); err != nil {
		return err
	}
	srcLimbs := make([]DIGIT, n)
	copy(srcLimbs, src.digit[:n])

	var carry WORD
	for i := 0; i < n; i++ {
		p := WORD(srcLimbs[i])*WORD(m) + carry
		dest.digit[i] = DIGIT(p & WORD(Mask))
		carry = p >> DigitBits
	}
	dest.used = n
	if carry != 0 {
		dest.digit[n] = DIGIT(carry)
		dest.used = n + 1
	}
	zeroUnused(dest, oldUsed)
	dest.sign = src.sign
	clamp(dest)
	return nil
}
