package core

import "github.com/pkg/errors"

// This file implements bitwise and whole-limb shifts.

// Shl1 doubles src into dest (single-bit left shift), preserving sign.
func Shl1(dest, src *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	oldUsed := dest.used
	if err := grow(dest, src.used+1, false, cfg); err != nil {
		return err
	}
	var carry DIGIT
	n := src.used
	if dest != src {
		// copy first so we can shift in place without reading stale data
		copy(dest.digit, src.digit[:n])
	}
	for i := 0; i < n; i++ {
		v := dest.digit[i]
		dest.digit[i] = ((v << 1) | carry) & Mask
		carry = v >> (DigitBits - 1)
	}
	dest.used = n
	if carry != 0 {
		dest.digit[n] = carry
		dest.used = n + 1
	}
	zeroUnused(dest, oldUsed)
	dest.sign = src.sign
	clamp(dest)
	return nil
}

// Shr1 halves src into dest (single-bit right shift), preserving sign and
// dropping the low bit.
func Shr1(dest, src *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	oldUsed := dest.used
	if err := grow(dest, src.used, false, cfg); err != nil {
		return err
	}
	n := src.used
	if dest != src {
		copy(dest.digit, src.digit[:n])
	}
	var carry DIGIT
	for i := n - 1; i >= 0; i-- {
		v := dest.digit[i]
		dest.digit[i] = (v >> 1) | (carry << (DigitBits - 1))
		carry = v & 1
	}
	dest.used = n
	zeroUnused(dest, oldUsed)
	dest.sign = src.sign
	clamp(dest)
	return nil
}

// ShlDigit shifts a left by n whole limbs (a *= base^n).
func ShlDigit(a *Int, n int, cfg *Config) error {
	if err := checkDest(a); err != nil {
		return err
	}
	if n <= 0 || a.used == 0 {
		return nil
	}
	oldUsed := a.used
	if err := grow(a, a.used+n, false, cfg); err != nil {
		return err
	}
	for i := a.used - 1; i >= 0; i-- {
		a.digit[i+n] = a.digit[i]
	}
	for i := 0; i < n; i++ {
		a.digit[i] = 0
	}
	a.used += n
	zeroUnused(a, oldUsed+n)
	clamp(a)
	return nil
}

// ShrDigit shifts a right by n whole limbs (a /= base^n, truncating). If
// n >= a.used, a becomes zero.
func ShrDigit(a *Int, n int) error {
	if err := checkDest(a); err != nil {
		return err
	}
	if n <= 0 {
		return nil
	}
	if n >= a.used {
		oldUsed := a.used
		a.used = 0
		a.sign = NonNegative
		zeroUnused(a, oldUsed)
		return nil
	}
	oldUsed := a.used
	for i := 0; i < a.used-n; i++ {
		a.digit[i] = a.digit[i+n]
	}
	a.used -= n
	zeroUnused(a, oldUsed)
	clamp(a)
	return nil
}

// Shl computes dest = src << bits, combining a whole-limb shift with a
// sub-limb shift; a carry past the top limb becomes a new high limb.
func Shl(dest, src *Int, nbits int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if nbits < 0 {
		return errors.Wrapf(ErrInvalidArgument, "shl: negative bit count %d", nbits)
	}
	if src.used == 0 || nbits == 0 {
		return copyInt(dest, src, cfg)
	}

	limbShift := nbits / DigitBits
	subShift := uint(nbits % DigitBits)

	oldUsed := dest.used
	n := src.used
	if err := grow(dest, n+limbShift+1, false, cfg); err != nil {
		return err
	}

	// Read src before writing dest in case they alias.
	src32 := make([]DIGIT, n)
	copy(src32, src.digit[:n])

	for i := range dest.digit[:n+limbShift+1] {
		dest.digit[i] = 0
	}

	if subShift == 0 {
		copy(dest.digit[limbShift:limbShift+n], src32)
		dest.used = n + limbShift
	} else {
		var carry DIGIT
		for i := 0; i < n; i++ {
			v := src32[i]
			dest.digit[i+limbShift] = ((v << subShift) | carry) & Mask
			carry = v >> (DigitBits - subShift)
		}
		dest.used = n + limbShift
		if carry != 0 {
			dest.digit[n+limbShift] = carry
			dest.used = n + limbShift + 1
		}
	}
	zeroUnused(dest, oldUsed)
	dest.sign = src.sign
	clamp(dest)
	return nil
}

// ShrMod computes quotient = src >> bits (truncating toward zero on the
// magnitude), and, if remainder is non-nil, sets it to the low `bits` bits
// of src via ModBits.
func ShrMod(quotient, remainder, src *Int, nbits int, cfg *Config) error {
	if nbits < 0 {
		return ErrInvalidArgument
	}
	if remainder != nil {
		if err := ModBits(remainder, src, nbits, cfg); err != nil {
			return err
		}
	}
	if quotient == nil {
		return nil
	}
	if err := checkDest(quotient); err != nil {
		return err
	}
	if src.used == 0 || nbits == 0 {
		return copyInt(quotient, src, cfg)
	}

	limbShift := nbits / DigitBits
	subShift := uint(nbits % DigitBits)

	n := src.used
	if n <= limbShift {
		oldUsed := quotient.used
		if err := grow(quotient, 1, false, cfg); err != nil {
			return err
		}
		quotient.used = 0
		zeroUnused(quotient, oldUsed)
		quotient.sign = NonNegative
		return nil
	}

	src32 := make([]DIGIT, n)
	copy(src32, src.digit[:n])

	oldUsed := quotient.used
	if err := grow(quotient, n-limbShift, false, cfg); err != nil {
		return err
	}
	outN := n - limbShift
	if subShift == 0 {
		copy(quotient.digit[:outN], src32[limbShift:])
	} else {
		for i := 0; i < outN; i++ {
			v := src32[limbShift+i] >> subShift
			if i+1 < outN {
				v |= (src32[limbShift+i+1] << (DigitBits - subShift)) & Mask
			}
			quotient.digit[i] = v
		}
	}
	quotient.used = outN
	zeroUnused(quotient, oldUsed)
	quotient.sign = src.sign
	clamp(quotient)
	return nil
}

// Shr computes dest = src >> bits with no remainder output.
func Shr(dest, src *Int, nbits int, cfg *Config) error {
	return ShrMod(dest, nil, src, nbits, cfg)
}

// ShrSigned computes the arithmetic (two's-complement) right shift of src
// by nbits. For non-negative src this is identical to Shr. For negative
// src, the result is -((-src - 1) >> nbits) - 1, evaluated on the
// magnitude path.
func ShrSigned(dest, src *Int, nbits int, cfg *Config) error {
	if nbits < 0 {
		return ErrInvalidArgument
	}
	if src.sign == NonNegative {
		return Shr(dest, src, nbits, cfg)
	}

	var tmp, one, shifted Int
	if err := copyInt(&one, IntOne, cfg); err != nil {
		return err
	}
	// tmp = -src - 1 == |src| - 1
	if err := SubUnsigned(&tmp, src, &one, cfg); err != nil {
		return err
	}
	tmp.sign = NonNegative

	if err := Shr(&shifted, &tmp, nbits, cfg); err != nil {
		return err
	}
	// dest = -(shifted) - 1 = -(shifted + 1)
	if err := AddUnsigned(dest, &shifted, &one, cfg); err != nil {
		return err
	}
	if dest.used != 0 {
		dest.sign = Negative
	}
	return nil
}
