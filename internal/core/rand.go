package core

import "math/rand"

// Source abstracts a digit-wide random number generator. The kernel's
// only concrete implementation is DefaultSource, which Rand falls back to
// when given nil (no CSPRNG guarantee is made here); callers needing
// cryptographic randomness supply their own Source, typically backed by
// crypto/rand, at a layer above this package.
type Source interface {
	RandomDigit() DIGIT
}

// defaultSource is the package's only concrete Source, backed by
// math/rand's default generator. It exists so the kernel's own tests
// have something to exercise Rand against without requiring callers to
// thread one in explicitly.
type defaultSource struct{}

// DefaultSource is the Source used when a caller passes nil to Rand.
var DefaultSource Source = defaultSource{}

func (defaultSource) RandomDigit() DIGIT {
	return DIGIT(rand.Uint32()) & Mask
}

// Rand fills dest with a uniformly random non-negative value of the
// requested bit width: ceil(bits/DigitBits) limbs are drawn from rng
// (DefaultSource if rng is nil), then the top limb is masked down to
// exactly the requested bit count.
func Rand(dest *Int, bits int, rng Source, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if bits < 0 {
		return ErrInvalidArgument
	}
	if rng == nil {
		rng = DefaultSource
	}
	if bits == 0 {
		return zeroResult(dest, cfg)
	}

	limbCount := (bits + DigitBits - 1) / DigitBits
	oldUsed := dest.used
	if err := grow(dest, limbCount, false, cfg); err != nil {
		return err
	}
	for i := 0; i < limbCount; i++ {
		dest.digit[i] = rng.RandomDigit() & Mask
	}
	dest.used = limbCount
	zeroUnused(dest, oldUsed)

	topBits := bits - (limbCount-1)*DigitBits
	if topBits < DigitBits {
		dest.digit[limbCount-1] &= DIGIT(1)<<uint(topBits) - 1
	}
	dest.sign = NonNegative
	clamp(dest)
	return nil
}
