package core

// Toom-Cook (3-way) multiplication. Each operand is split into three
// limbs-wide pieces x2,x1,x0 (most to least significant) and the product
// polynomial is evaluated at five points (0, 1, -1, 2, infinity) instead
// of naively computing nine cross products, then interpolated back to the
// five coefficients of the base-b^2 result. This is the sub-quadratic
// tier above Karatsuba, following the standard five-point scheme used by
// Toom-3 implementations generally (e.g. GMP's mpn_toom33_mul).
//
// Evaluation-point values can be negative mid-computation (e.g.
// p(-1) = x0-x1+x2), so this file works over a small sign+magnitude
// scratch type local to the interpolation instead of the kernel's Int.

type snum struct {
	neg bool
	v   []DIGIT
}

func snumFromLimbs(x []DIGIT) snum { return snum{v: limbsNorm(append([]DIGIT(nil), x...))} }

func (a snum) isZero() bool { return len(a.v) == 0 }

func snumAdd(a, b snum) snum {
	if a.isZero() {
		return b
	}
	if b.isZero() {
		return a
	}
	if a.neg == b.neg {
		return snum{neg: a.neg, v: limbsAdd(a.v, b.v)}
	}
	switch limbsCmp(a.v, b.v) {
	case 0:
		return snum{}
	case 1:
		return snum{neg: a.neg, v: limbsSub(a.v, b.v)}
	default:
		return snum{neg: b.neg, v: limbsSub(b.v, a.v)}
	}
}

func snumNeg(a snum) snum {
	if a.isZero() {
		return a
	}
	return snum{neg: !a.neg, v: a.v}
}

func snumSub(a, b snum) snum { return snumAdd(a, snumNeg(b)) }

func snumMul(a, b snum, cfg *Config) snum {
	if a.isZero() || b.isZero() {
		return snum{}
	}
	return snum{neg: a.neg != b.neg, v: mulDispatch(a.v, b.v, cfg)}
}

// snumDivExact divides a by the small positive constant d, which must
// divide a's magnitude exactly (guaranteed by Toom-Cook interpolation
// algebra for the divisors this file uses: 2 and 3).
func snumDivExact(a snum, d DIGIT) snum {
	if a.isZero() {
		return a
	}
	q := make([]DIGIT, len(a.v))
	var rem WORD
	for i := len(a.v) - 1; i >= 0; i-- {
		cur := rem<<DigitBits | WORD(a.v[i])
		q[i] = DIGIT(cur / WORD(d))
		rem = cur % WORD(d)
	}
	return snum{neg: a.neg, v: limbsNorm(q)}
}

func snumShiftLimbs(a snum, n int) snum {
	if a.isZero() {
		return a
	}
	z := make([]DIGIT, len(a.v)+n)
	copy(z[n:], a.v)
	return snum{neg: a.neg, v: z}
}

func toom3Mul(x, y []DIGIT, cfg *Config) []DIGIT {
	n := max(len(x), len(y))
	m := (n + 2) / 3
	if m < 1 {
		m = 1
	}
	if len(x) <= m || len(y) <= m {
		// Not enough height to split into three; Karatsuba already
		// handles this range.
		return karatsubaMul(x, y, cfg)
	}

	x0, x1, x2 := splitThree(x, m)
	y0, y1, y2 := splitThree(y, m)

	px0, px1, px2 := snumFromLimbs(x0), snumFromLimbs(x1), snumFromLimbs(x2)
	py0, py1, py2 := snumFromLimbs(y0), snumFromLimbs(y1), snumFromLimbs(y2)

	// Evaluation points.
	p1x := snumAdd(snumAdd(px0, px1), px2)
	p1y := snumAdd(snumAdd(py0, py1), py2)
	pm1x := snumSub(snumAdd(px0, px2), px1)
	pm1y := snumSub(snumAdd(py0, py2), py1)
	p2x := snumAdd(snumAdd(px0, snumShiftBits(px1, 1)), snumShiftBits(px2, 2))
	p2y := snumAdd(snumAdd(py0, snumShiftBits(py1, 1)), snumShiftBits(py2, 2))

	v0 := snumMul(px0, py0, cfg)
	v1 := snumMul(p1x, p1y, cfg)
	vm1 := snumMul(pm1x, pm1y, cfg)
	v2 := snumMul(p2x, p2y, cfg)
	vinf := snumMul(px2, py2, cfg)

	// Interpolate: r(t) = c0 + c1 t + c2 t^2 + c3 t^3 + c4 t^4.
	c0 := v0
	c4 := vinf
	c2 := snumSub(snumDivExact(snumAdd(v1, vm1), 2), snumAdd(c0, c4))
	t1 := snumDivExact(snumSub(v1, vm1), 2) // c1+c3
	rhsHalf := snumDivExact(
		snumSub(snumSub(v2, c0), snumAdd(snumShiftBits(c2, 2), snumShiftBits(c4, 4))), 2,
	) // c1+4c3
	c3 := snumDivExact(snumSub(rhsHalf, t1), 3)
	c1 := snumSub(t1, c3)

	// Recombine at base b = (2^DigitBits)^m.
	result := c0
	result = snumAdd(result, snumShiftLimbs(c1, m))
	result = snumAdd(result, snumShiftLimbs(c2, 2*m))
	result = snumAdd(result, snumShiftLimbs(c3, 3*m))
	result = snumAdd(result, snumShiftLimbs(c4, 4*m))

	// The final product is always non-negative; the interpolation above
	// only produces intermediate negative coefficients.
	return limbsNorm(result.v)
}

func splitThree(x []DIGIT, m int) (lo, mid, hi []DIGIT) {
	n := len(x)
	lo = x[:min(m, n)]
	if n <= m {
		return lo, nil, nil
	}
	mid = x[m:min(2*m, n)]
	if n <= 2*m {
		return lo, mid, nil
	}
	hi = x[2*m:]
	return lo, mid, hi
}

// snumShiftBits left-shifts a's magnitude by a small bit count (used for
// the *2 and *4 coefficients of the p(2) evaluation point).
func snumShiftBits(a snum, bits uint) snum {
	if a.isZero() || bits == 0 {
		return a
	}
	z := make([]DIGIT, len(a.v)+1)
	var carry DIGIT
	for i, d := range a.v {
		z[i] = ((d << bits) | carry) & Mask
		carry = d >> (DigitBits - bits)
	}
	z[len(a.v)] = carry
	return snum{neg: a.neg, v: limbsNorm(z)}
}
