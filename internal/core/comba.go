package core

// combaMul implements column-summation ("Comba") multiplication: instead
// of propagating a DIGIT-wide carry after every single limb product (as
// schoolbookMul does), each output column accumulates all of its
// contributing products into one wide running sum before a carry is ever
// folded in. Valid as long as len(x)+len(y)+1 doesn't overflow the
// accumulator, which the dispatcher in mul.go already checked against
// Config.WArray/MaxComba before calling this.
func combaMul(x, y []DIGIT) []DIGIT {
	rn := len(x) + len(y)
	z := make([]DIGIT, rn)
	var carry WORD
	for k := 0; k < rn; k++ {
		var col WORD
		lo := 0
		if k >= len(y) {
			lo = k - len(y) + 1
		}
		hi := k
		if hi > len(x)-1 {
			hi = len(x) - 1
		}
		for i := lo; i <= hi; i++ {
			j := k - i
			col += WORD(x[i]) * WORD(y[j])
		}
		col += carry
		z[k] = DIGIT(col & WORD(Mask))
		carry = col >> DigitBits
	}
	return limbsNorm(z)
}
