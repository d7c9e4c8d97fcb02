package core

import "github.com/pkg/errors"

// This file implements the storage layer: growable limb buffer, the
// canonicalization invariants, and ownership transfer between Ints.
// Every other layer depends on these routines preserving the five
// canonical-form invariants across every exit.

// grow ensures a's capacity is at least max(MinDigitCount, a.used, needed).
// If allowShrink is false (the common case) capacity never decreases.
// Newly allocated positions are zero.
func grow(a *Int, needed int, allowShrink bool, cfg *Config) error {
	if err := checkDest(a); err != nil {
		return err
	}
	want := needed
	if a.used > want {
		want = a.used
	}
	if cfg.MinDigitCount > want {
		want = cfg.MinDigitCount
	}
	if want > cfg.MaxBitCount/DigitBits+1 {
		return errors.Wrapf(ErrOutOfMemory, "requested %d digits exceeds MaxBitCount ceiling", want)
	}

	switch {
	case allowShrink:
		nd, err := a.AllocatorOf().Alloc(want)
		if err != nil {
			return errors.Wrapf(err, "allocating %d digits", want)
		}
		copy(nd, a.digit[:min(a.used, want)])
		a.digit = nd
	case want > len(a.digit):
		nd, err := a.AllocatorOf().Alloc(want)
		if err != nil {
			return errors.Wrapf(err, "allocating %d digits", want)
		}
		copy(nd, a.digit)
		a.digit = nd
	}
	return nil
}

// shrink shrinks a's capacity to max(MinDigitCount, a.used).
func shrink(a *Int, cfg *Config) error {
	return grow(a, a.used, true, cfg)
}

// clamp decrements a.used while the top limb is zero, then normalizes the
// sign of zero to NonNegative.
func clamp(a *Int) {
	for a.used > 0 && a.digit[a.used-1] == 0 {
		a.used--
	}
	if a.used == 0 {
		a.sign = NonNegative
	}
}

// zeroUnused zeros the range [a.used, oldUsed). If oldUsed < 0, the range
// is [a.used, cap(a.digit)) instead.
func zeroUnused(a *Int, oldUsed int) {
	hi := oldUsed
	if hi < 0 || hi > len(a.digit) {
		hi = len(a.digit)
	}
	for i := a.used; i < hi; i++ {
		a.digit[i] = 0
	}
}

// swap exchanges the entire contents — sign, used, and buffer ownership —
// of a and b.
func swap(a, b *Int) {
	a.sign, b.sign = b.sign, a.sign
	a.used, b.used = b.used, a.used
	a.digit, b.digit = b.digit, a.digit
	a.alloc, b.alloc = b.alloc, a.alloc
}

// copyInt copies src into dest. A self-copy is a no-op. Otherwise dest is
// grown, src.used limbs are copied, the tail is zeroed, and dest's sign and
// non-Immutable flags follow src.
func copyInt(dest, src *Int, cfg *Config) error {
	if dest == src {
		return nil
	}
	if err := checkDest(dest); err != nil {
		return err
	}
	oldUsed := dest.used
	if err := grow(dest, src.used, false, cfg); err != nil {
		return err
	}
	dest.used = src.used
	copy(dest.digit, src.digit[:src.used])
	zeroUnused(dest, oldUsed)
	dest.sign = src.sign
	dest.flags = (dest.flags & FlagImmutable) | (src.flags &^ FlagImmutable)
	return nil
}

// destroy zeros the limb buffer of each Int and releases it.
func destroy(ints ...*Int) {
	for _, a := range ints {
		if a == nil {
			continue
		}
		for i := range a.digit {
			a.digit[i] = 0
		}
		a.digit = nil
		a.used = 0
		a.sign = NonNegative
		a.alloc = nil
	}
}
