package core

// Karatsuba multiplication: split each operand into a low and high half
// at a common limb boundary and replace the four half-size products a
// schoolbook split would need with three:
//
//   x = xhi*b + xlo,  y = yhi*b + ylo
//   z0 = xlo*ylo
//   z2 = xhi*yhi
//   z1 = xlo*yhi + xhi*ylo = (xlo+xhi)*(ylo+yhi) - z0 - z2
//
// The sum-based z1 (rather than a difference-based xd*yd formulation) is
// used deliberately: every intermediate product and sum involved is
// non-negative, so the recursion never needs extra sign bookkeeping for
// the cross term — at the cost of one extra half-size multiply's worth
// of constant factor, an acceptable trade for a reference kernel that
// makes no throughput guarantee.
func karatsubaMul(x, y []DIGIT, cfg *Config) []DIGIT {
	if len(y) > len(x) {
		x, y = y, x
	}
	if len(y) < cfg.MulKaratsubaCutoff || len(y) < 2 {
		return schoolbookMul(x, y)
	}

	m := (len(x) + 1) / 2
	xlo, xhi := x[:m], x[m:]
	ylo, yhi := splitAt(y, m)

	z0 := karatsubaMul(xlo, ylo, cfg)
	z2 := karatsubaMul(xhi, yhi, cfg)

	xsum := limbsAdd(xlo, xhi)
	ysum := limbsAdd(ylo, yhi)
	z1raw := karatsubaMul(xsum, ysum, cfg)

	z1 := limbsSub(z1raw, z0)
	z1 = limbsSub(z1, z2)

	result := make([]DIGIT, len(x)+len(y))
	limbsAddAt(result, z0, 0)
	limbsAddAt(result, z1, m)
	limbsAddAt(result, z2, 2*m)
	return limbsNorm(result)
}

// splitAt splits x into (x[:m], x[m:]), treating x as shorter than m as
// (x, nil).
func splitAt(x []DIGIT, m int) ([]DIGIT, []DIGIT) {
	if m >= len(x) {
		return x, nil
	}
	return x[:m], x[m:]
}

// limbsAdd returns the unsigned sum x+y as a freshly allocated, normalized
// slice.
func limbsAdd(x, y []DIGIT) []DIGIT {
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]DIGIT, len(x)+1)
	c := limbsAddVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		c = limbsAddVW(z[len(y):len(x)], x[len(y):], c)
	}
	z[len(x)] = c
	return limbsNorm(z)
}

// limbsSub returns the unsigned difference x-y, assuming x >= y.
func limbsSub(x, y []DIGIT) []DIGIT {
	z := make([]DIGIT, len(x))
	borrow := limbsSubVV(z[:len(y)], x[:len(y)], y)
	if len(x) > len(y) {
		borrow = limbsSubVW(z[len(y):], x[len(y):], borrow)
	}
	_ = borrow // x >= y is a precondition; any residual borrow would be a caller bug
	return limbsNorm(z)
}
