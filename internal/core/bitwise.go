package core

// This file implements the two's-complement and/or/xor/not layer over a
// sign-magnitude representation. Each limb is converted on the fly to
// two's-complement form for a negative operand by accumulating a running
// carry (initialized to 1, i.e. "+1" for the two's-complement negation)
// and complementing within Mask; a positive operand's limb is used as-is.

func twosComplementLimb(v DIGIT, neg bool, carry *DIGIT) DIGIT {
	if !neg {
		return v
	}
	s := (^v & Mask) + *carry
	*carry = s >> DigitBits
	return s & Mask
}

func fromTwosComplementLimb(v DIGIT, neg bool, carry *DIGIT) DIGIT {
	return twosComplementLimb(v, neg, carry)
}

func bitwiseOp(dest, a, b *Int, cfg *Config, op func(x, y DIGIT) DIGIT, resultNeg bool) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	n := max(a.used, b.used) + 1
	oldUsed := dest.used
	if err := grow(dest, n, false, cfg); err != nil {
		return err
	}

	aLimbs := make([]DIGIT, n)
	copy(aLimbs, a.digit[:a.used])
	bLimbs := make([]DIGIT, n)
	copy(bLimbs, b.digit[:b.used])

	aNeg := a.sign == Negative
	bNeg := b.sign == Negative
	var aCarry, bCarry DIGIT = 1, 1

	out := make([]DIGIT, n)
	for i := 0; i < n; i++ {
		av := twosComplementLimb(aLimbs[i], aNeg, &aCarry)
		bv := twosComplementLimb(bLimbs[i], bNeg, &bCarry)
		out[i] = op(av, bv) & Mask
	}

	if resultNeg {
		var carry DIGIT = 1
		for i := 0; i < n; i++ {
			out[i] = fromTwosComplementLimb(out[i], true, &carry)
		}
	}

	copy(dest.digit, out)
	dest.used = n
	zeroUnused(dest, oldUsed)
	dest.sign = NonNegative
	clamp(dest)
	if resultNeg && dest.used != 0 {
		dest.sign = Negative
	}
	return nil
}

// And computes dest = a & b under two's-complement semantics. Negative
// iff both operands are negative.
func And(dest, a, b *Int, cfg *Config) error {
	resultNeg := a.sign == Negative && b.sign == Negative
	return bitwiseOp(dest, a, b, cfg, func(x, y DIGIT) DIGIT { return x & y }, resultNeg)
}

// Or computes dest = a | b under two's-complement semantics. Negative iff
// either operand is negative.
func Or(dest, a, b *Int, cfg *Config) error {
	resultNeg := a.sign == Negative || b.sign == Negative
	return bitwiseOp(dest, a, b, cfg, func(x, y DIGIT) DIGIT { return x | y }, resultNeg)
}

// Xor computes dest = a ^ b under two's-complement semantics. Negative
// iff the operand signs differ.
func Xor(dest, a, b *Int, cfg *Config) error {
	resultNeg := (a.sign == Negative) != (b.sign == Negative)
	return bitwiseOp(dest, a, b, cfg, func(x, y DIGIT) DIGIT { return x ^ y }, resultNeg)
}

// Complement computes dest = ~src = -src - 1, by copying src, flipping the
// copy's sign (zero/positive become negative, negative becomes
// non-negative) and subtracting 1; src itself is left untouched.
func Complement(dest, src *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	flipped := Negative
	if src.sign == Negative {
		flipped = NonNegative
	}

	var flippedSrc Int
	if err := copyInt(&flippedSrc, src, cfg); err != nil {
		return err
	}
	flippedSrc.sign = flipped

	return SubDigit(dest, &flippedSrc, 1, cfg)
}
