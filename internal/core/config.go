package core

// Config collects the tunable thresholds referenced throughout the
// multiplicative and factorial dispatch logic. A zero Config is
// not usable; use DefaultConfig.
//
// Mirrors the shape of math/big's package-level karatsubaThreshold
// variable ("computed by calibrate.go") but gathered into one struct
// instead of scattered globals, since this kernel has several such
// thresholds instead of one.
type Config struct {
	MinDigitCount     int
	DefaultDigitCount int
	MaxBitCount       int

	WArray   int
	MaxComba int

	MulKaratsubaCutoff int
	SqrKaratsubaCutoff int
	MulToomCutoff      int
	SqrToomCutoff      int

	FactorialBinarySplitCutoff int64
	MaxIterationsRootN         int
}

// DefaultConfig returns the thresholds this package uses unless a caller
// threads a different Config through. Values are representative of a
// typical libtommath "fast" build (28-bit digit, 64-bit word).
func DefaultConfig() Config {
	return Config{
		MinDigitCount:     8,
		DefaultDigitCount: 32,
		MaxBitCount:       1 << 23, // ~8M bits; a sanity ceiling, not a hard ISA limit

		WArray:   1024,
		MaxComba: 256,

		MulKaratsubaCutoff: 80,
		SqrKaratsubaCutoff: 120,
		MulToomCutoff:      350,
		SqrToomCutoff:      400,

		FactorialBinarySplitCutoff: 100,
		MaxIterationsRootN:         100,
	}
}
