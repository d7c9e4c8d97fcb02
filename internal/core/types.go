// Package core implements the unexported limb-level arithmetic kernel for
// an arbitrary-precision signed integer. Every routine here trusts its
// caller to supply an initialized, non-nil *Int; nil-checking and
// higher-level validation live outside this package.
package core

// Sign distinguishes the two signs a sign-magnitude Int can carry. Zero is
// always NonNegative — there is exactly one representation of zero.
type Sign int8

const (
	NonNegative Sign = 0
	Negative    Sign = 1
)

// Flag is a small bitset of modal states an Int can carry alongside its
// sign-magnitude value.
type Flag uint8

const (
	// FlagImmutable marks an Int as a read-only singleton (the sentinel
	// constants below); every mutating entry point rejects it as a
	// destination with ErrAssignToImmutable.
	FlagImmutable Flag = 1 << iota
	FlagInf
	FlagNegInf
	FlagNaN
)

// DIGIT and WORD are the configured limb and wide-accumulator types.
// DigitBits=28 is chosen so two limbs fit in a WORD (uint64) with slack
// for carries, matching the "fast" build configuration libtommath itself
// uses on 32/64-bit platforms, over a wider alternative such as 60 bits
// that would need a 128-bit wide-accumulator type.
type DIGIT = uint32
type WORD = uint64

const (
	// DigitBits is the bit width of a single limb.
	DigitBits = 28
	// Mask isolates the DigitBits low bits of a WORD or DIGIT.
	Mask DIGIT = 1<<DigitBits - 1
	// WordBits is the bit width of the wide accumulator type.
	WordBits = 64
)

// Int is a signed arbitrary-precision integer in sign-magnitude form.
// digit[0] is the least significant limb. The zero value is not ready for
// use as a destination until it has been grown at least once (the first
// mutating call does this automatically).
//
// alloc is the by-reference allocator identity backing digit's buffer; a
// nil alloc means "use DefaultAllocator" and is the common case. It
// travels with the Int across grow/shrink, and across swap since swap
// exchanges buffer ownership wholesale.
type Int struct {
	sign  Sign
	used  int
	digit []DIGIT
	flags Flag
	alloc Allocator
}

// SetAllocator attaches alloc as the Allocator backing a's limb buffer;
// every subsequent grow of a uses it instead of DefaultAllocator. Passing
// nil reverts a to DefaultAllocator.
func (a *Int) SetAllocator(alloc Allocator) { a.alloc = alloc }

// AllocatorOf returns the Allocator backing a's limb buffer: a's own, if
// one was attached with SetAllocator, otherwise DefaultAllocator.
func (a *Int) AllocatorOf() Allocator {
	if a.alloc != nil {
		return a.alloc
	}
	return DefaultAllocator
}

// Immutable reports whether a is flagged read-only.
func (a *Int) Immutable() bool { return a.flags&FlagImmutable != 0 }

// Flags returns the modal flag set carried by a.
func (a *Int) Flags() Flag { return a.flags }

// SetFlags replaces a's modal flag set. It does not itself check
// Immutable — callers that want the immutability guard should go through
// checkDest.
func (a *Int) SetFlags(f Flag) { a.flags = f }

// Used returns the number of significant limbs.
func (a *Int) Used() int { return a.used }

// SignOf returns a's sign.
func (a *Int) SignOf() Sign { return a.sign }

// Sentinel immutable constants. Never mutate these; copy-style
// initializers may only read from them.
var (
	IntZero     = &Int{sign: NonNegative, used: 0, digit: nil, flags: FlagImmutable}
	IntOne      = &Int{sign: NonNegative, used: 1, digit: []DIGIT{1}, flags: FlagImmutable}
	IntMinusOne = &Int{sign: Negative, used: 1, digit: []DIGIT{1}, flags: FlagImmutable}
	IntInf      = &Int{sign: NonNegative, used: 0, digit: nil, flags: FlagImmutable | FlagInf}
	IntMinusInf = &Int{sign: Negative, used: 0, digit: nil, flags: FlagImmutable | FlagNegInf}
	IntNaN      = &Int{sign: NonNegative, used: 0, digit: nil, flags: FlagImmutable | FlagNaN}
)
