package core

// AddMod computes a + b and reduces it with Mod (see Mod for the sign
// correction applied to a remainder whose sign differs from m's).
func AddMod(dest, a, b, m *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	var sum Int
	if err := AddSigned(&sum, a, b, cfg); err != nil {
		return err
	}
	return Mod(dest, &sum, m, cfg)
}

// SubMod computes a - b and reduces it with Mod, so a negative difference
// goes through Mod's sign correction: SubMod(3, 9, 10) is -12.
func SubMod(dest, a, b, m *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	var diff Int
	if err := SubSigned(&diff, a, b, cfg); err != nil {
		return err
	}
	return Mod(dest, &diff, m, cfg)
}

// MulMod computes a * b and reduces it with Mod.
func MulMod(dest, a, b, m *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	var prod Int
	if err := Mul(&prod, a, b, cfg); err != nil {
		return err
	}
	return Mod(dest, &prod, m, cfg)
}

// SqrMod computes a * a and reduces it with Mod.
func SqrMod(dest, a, m *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	var sq Int
	if err := Square(&sq, a, cfg); err != nil {
		return err
	}
	return Mod(dest, &sq, m, cfg)
}

// ExpMod computes dest = base^exp mod m for a non-negative exp, via
// right-to-left binary exponentiation (lowest bit of exp first), reducing
// modulo m after every squaring and every multiply-in, so the accumulator
// never grows past roughly twice the size of m. base is first brought to a
// remainder with m's sign.
func ExpMod(dest, base, exp, m *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if m.used == 0 {
		return ErrDivisionByZero
	}
	if exp.sign == Negative {
		return ErrMathDomain
	}
	if CompareDigit(m, 1) == 0 {
		return zeroResult(dest, cfg)
	}
	if exp.used == 0 {
		var one Int
		if err := copyInt(&one, IntOne, cfg); err != nil {
			return err
		}
		return Mod(dest, &one, m, cfg)
	}

	var acc, b Int
	if err := copyInt(&acc, IntOne, cfg); err != nil {
		return err
	}
	if err := DivMod(nil, &b, base, m, cfg); err != nil {
		return err
	}
	if b.used != 0 && b.sign != m.sign {
		if err := AddSigned(&b, &b, m, cfg); err != nil {
			return err
		}
	}

	bits := CountBits(exp)
	for i := 0; i < bits; i++ {
		if testBit(exp, i) {
			if err := MulMod(&acc, &acc, &b, m, cfg); err != nil {
				return err
			}
		}
		if i+1 < bits {
			if err := SqrMod(&b, &b, m, cfg); err != nil {
				return err
			}
		}
	}
	return copyInt(dest, &acc, cfg)
}

// InvMod computes dest = a^-1 mod m (the modular multiplicative inverse),
// via the extended Euclidean algorithm. Returns ErrMathDomain if a and m
// are not coprime (no inverse exists).
func InvMod(dest, a, m *Int, cfg *Config) error {
	if err := checkDest(dest); err != nil {
		return err
	}
	if m.used == 0 || CompareDigit(m, 1) == 0 {
		return ErrMathDomain
	}

	var g, x Int
	if err := ExtendedGcd(&g, &x, nil, a, m, cfg); err != nil {
		return err
	}
	g.sign = NonNegative
	if CompareDigit(&g, 1) != 0 {
		return ErrMathDomain
	}
	// x may come back with the opposite sign to m; shifting it by m first
	// keeps it out of Mod's sign correction.
	if x.used != 0 && x.sign != m.sign {
		if err := AddSigned(&x, &x, m, cfg); err != nil {
			return err
		}
	}
	return Mod(dest, &x, m, cfg)
}
