package core

// This file implements the additive core: unsigned add/sub by magnitude
// (HAC Algorithms 14.7 and 14.9), signed dispatch, and single-digit fast
// paths.

// AddUnsigned computes dest = |a| + |b|, ignoring both operands' signs.
// Orders operands by used, propagates carry across min(used) limbs,
// extends the carry through the longer operand's tail, and writes one
// extra limb for a final carry.
func AddUnsigned(dest, a, b *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if a.used < b.used {
		a, b = b, a
	}
	oldUsed := dest.used
	if err := grow(dest, a.used+1, false, cfg); err != nil {
		return err
	}

	// Snapshot operands in case dest aliases one of them.
	av := make([]DIGIT, a.used)
	copy(av, a.digit[:a.used])
	bv := make([]DIGIT, b.used)
	copy(bv, b.digit[:b.used])

	var carry WORD
	n := len(bv)
	for i := 0; i < n; i++ {
		s := WORD(av[i]) + WORD(bv[i]) + carry
		dest.digit[i] = DIGIT(s & WORD(Mask))
		carry = s >> DigitBits
	}
	for i := n; i < len(av); i++ {
		s := WORD(av[i]) + carry
		dest.digit[i] = DIGIT(s & WORD(Mask))
		carry = s >> DigitBits
	}
	dest.used = len(av)
	if carry != 0 {
		dest.digit[len(av)] = DIGIT(carry)
		dest.used = len(av) + 1
	}
	zeroUnused(dest, oldUsed)
	dest.sign = NonNegative
	clamp(dest)
	return nil
}

// SubUnsigned computes dest = |number| - |decrease|. Precondition:
// |number| >= |decrease|; violating it produces a meaningless result,
// since this layer trusts its caller rather than re-deriving the
// ordering itself.
func SubUnsigned(dest, number, decrease *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	oldUsed := dest.used
	if err := grow(dest, number.used, false, cfg); err != nil {
		return err
	}

	nv := make([]DIGIT, number.used)
	copy(nv, number.digit[:number.used])
	dv := make([]DIGIT, decrease.used)
	copy(dv, decrease.digit[:decrease.used])

	var borrow WORD
	n := len(dv)
	for i := 0; i < n; i++ {
		d := WORD(nv[i]) - WORD(dv[i]) - borrow
		dest.digit[i] = DIGIT(d & WORD(Mask))
		borrow = (d >> (WordBits - 1)) & 1
	}
	for i := n; i < len(nv); i++ {
		d := WORD(nv[i]) - borrow
		dest.digit[i] = DIGIT(d & WORD(Mask))
		borrow = (d >> (WordBits - 1)) & 1
	}
	dest.used = len(nv)
	zeroUnused(dest, oldUsed)
	dest.sign = NonNegative
	clamp(dest)
	return nil
}

// AddSigned computes dest = a + b honoring both signs.
func AddSigned(dest, a, b *Int, cfg *Config) error {
	// dest may alias a or b, and the unsigned helpers overwrite dest.sign,
	// so both signs are read before any of them runs.
	aSign, bSign := a.sign, b.sign
	if aSign == bSign {
		if err := AddUnsigned(dest, a, b, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = aSign
		}
		return nil
	}
	// opposite signs: subtract the smaller magnitude from the larger,
	// taking the sign of the larger.
	switch CompareMagnitude(a, b) {
	case 0:
		return zeroResult(dest, cfg)
	case 1:
		if err := SubUnsigned(dest, a, b, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = aSign
		}
		return nil
	default:
		if err := SubUnsigned(dest, b, a, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = bSign
		}
		return nil
	}
}

// SubSigned computes dest = a - b honoring both signs.
func SubSigned(dest, a, b *Int, cfg *Config) error {
	// dest may alias a or b; read a's sign before the helpers overwrite it.
	aSign := a.sign
	if aSign != b.sign {
		if err := AddUnsigned(dest, a, b, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = aSign
		}
		return nil
	}
	// equal signs: subtract magnitudes, taking a's sign if |a| >= |b|,
	// else the negation of that sign.
	switch CompareMagnitude(a, b) {
	case 0:
		return zeroResult(dest, cfg)
	case 1:
		if err := SubUnsigned(dest, a, b, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = aSign
		}
		return nil
	default:
		if err := SubUnsigned(dest, b, a, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = negate(aSign)
		}
		return nil
	}
}

func negate(s Sign) Sign {
	if s == Negative {
		return NonNegative
	}
	return Negative
}

func zeroResult(dest *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	oldUsed := dest.used
	if err := grow(dest, 1, false, cfg); err != nil {
		return err
	}
	dest.used = 0
	zeroUnused(dest, oldUsed)
	dest.sign = NonNegative
	return nil
}

// AddDigit computes dest = a + d for an unsigned single-limb d, honoring
// a's sign (d is always treated as non-negative).
func AddDigit(dest, a *Int, d DIGIT, cfg *Config) error {
	if a.sign == NonNegative {
		if dest == a && a.used > 0 {
			s := WORD(a.digit[0]) + WORD(d)
			if s <= WORD(Mask) {
				dest.digit[0] = DIGIT(s)
				return nil
			}
		}
		var db Int
		if err := setDigitInt(&db, d, cfg); err != nil {
			return err
		}
		return AddUnsigned(dest, a, &db, cfg)
	}
	// a is negative: a + d == d - |a|, sign flips if d > |a|
	var db Int
	if err := setDigitInt(&db, d, cfg); err != nil {
		return err
	}
	switch CompareMagnitude(a, &db) {
	case 0:
		return zeroResult(dest, cfg)
	case 1:
		if err := SubUnsigned(dest, a, &db, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = Negative
		}
		return nil
	default:
		if err := SubUnsigned(dest, &db, a, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = NonNegative
		}
		return nil
	}
}

// SubDigit computes dest = a - d for an unsigned single-limb d.
func SubDigit(dest, a *Int, d DIGIT, cfg *Config) error {
	if a.sign == Negative {
		var db Int
		if err := setDigitInt(&db, d, cfg); err != nil {
			return err
		}
		if err := AddUnsigned(dest, a, &db, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = Negative
		}
		return nil
	}
	// a is non-negative
	if dest == a && a.used > 0 && a.digit[0] >= d {
		dest.digit[0] -= d
		clamp(dest)
		return nil
	}
	var db Int
	if err := setDigitInt(&db, d, cfg); err != nil {
		return err
	}
	switch CompareMagnitude(a, &db) {
	case 0:
		return zeroResult(dest, cfg)
	case 1:
		if err := SubUnsigned(dest, a, &db, cfg); err != nil {
			return err
		}
		dest.sign = NonNegative
		return nil
	default:
		if err := SubUnsigned(dest, &db, a, cfg); err != nil {
			return err
		}
		if dest.used != 0 {
			dest.sign = Negative
		}
		return nil
	}
}

func setDigitInt(z *Int, d DIGIT, cfg *Config) error {
	if err := grow(z, 1, false, cfg); err != nil {
		return err
	}
	if d&^Mask != 0 {
		return ErrInvalidArgument
	}
	z.digit[0] = d
	z.used = 1
	z.sign = NonNegative
	clamp(z)
	return nil
}
