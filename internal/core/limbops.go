package core

// Low-level helpers operating directly on normalized-or-not []DIGIT
// slices, shared by the multiplicative and division dispatch logic.
// These mirror the shape of generic word-vector add/sub/mul-add
// routines, at DIGIT/WORD width.

// limbsNorm trims trailing zero limbs.
func limbsNorm(x []DIGIT) []DIGIT {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return x[:n]
}

// limbsAddVV computes z[i] = x[i]+y[i]+carry over len(z) limbs (all three
// equal length) and returns the final carry.
func limbsAddVV(z, x, y []DIGIT) DIGIT {
	var c WORD
	for i := range z {
		s := WORD(x[i]) + WORD(y[i]) + c
		z[i] = DIGIT(s & WORD(Mask))
		c = s >> DigitBits
	}
	return DIGIT(c)
}

// limbsAddVW adds a single limb y as carry-in across x into z.
func limbsAddVW(z, x []DIGIT, y DIGIT) DIGIT {
	c := WORD(y)
	for i := range z {
		s := WORD(x[i]) + c
		z[i] = DIGIT(s & WORD(Mask))
		c = s >> DigitBits
	}
	return DIGIT(c)
}

// limbsSubVV computes z[i] = x[i]-y[i]-borrow over len(z) limbs and
// returns the final borrow.
func limbsSubVV(z, x, y []DIGIT) DIGIT {
	var b WORD
	for i := range z {
		d := WORD(x[i]) - WORD(y[i]) - b
		z[i] = DIGIT(d & WORD(Mask))
		b = (d >> (WordBits - 1)) & 1
	}
	return DIGIT(b)
}

// limbsSubVW subtracts a single limb y as borrow-in across x into z.
func limbsSubVW(z, x []DIGIT, y DIGIT) DIGIT {
	b := WORD(y)
	for i := range z {
		d := WORD(x[i]) - b
		z[i] = DIGIT(d & WORD(Mask))
		b = (d >> (WordBits - 1)) & 1
	}
	return DIGIT(b)
}

// limbsAddMulVVW computes z[i] += x[i]*y over len(x) limbs (z must be at
// least that long) and returns the carry out of the top limb.
func limbsAddMulVVW(z, x []DIGIT, y DIGIT) DIGIT {
	var c WORD
	for i := range x {
		s := WORD(x[i])*WORD(y) + WORD(z[i]) + c
		z[i] = DIGIT(s & WORD(Mask))
		c = s >> DigitBits
	}
	return DIGIT(c)
}

// limbsAddAt implements z[i:] += x<<(_DigitBits*shift) in place, z must be
// long enough. Used by Karatsuba/Toom to merge partial products back in.
func limbsAddAt(z, x []DIGIT, shift int) {
	x = limbsNorm(x)
	if len(x) == 0 {
		return
	}
	c := limbsAddVV(z[shift:shift+len(x)], z[shift:], x)
	j := shift + len(x)
	for c != 0 && j < len(z) {
		s := WORD(z[j]) + WORD(c)
		z[j] = DIGIT(s & WORD(Mask))
		c = DIGIT(s >> DigitBits)
		j++
	}
}

// limbsCmp compares x to y as unsigned magnitudes (both already
// normalized or not — comparison only looks at significant limbs).
func limbsCmp(x, y []DIGIT) int {
	x = limbsNorm(x)
	y = limbsNorm(y)
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// limbsBitLen returns the bit length of x (0 if x is all zero).
func limbsBitLen(x []DIGIT) int {
	x = limbsNorm(x)
	if len(x) == 0 {
		return 0
	}
	top := x[len(x)-1]
	n := 0
	for top != 0 {
		top >>= 1
		n++
	}
	return (len(x)-1)*DigitBits + n
}
