package core

// LogDigit computes floor(log_base(src)) for an integer base >= 2 and a
// positive src, by repeated multiplication: the smallest k such that
// base^(k+1) > src.
func LogDigit(src *Int, base DIGIT, cfg *Config) (int, error) {
	if base < 2 {
		return 0, ErrInvalidArgument
	}
	if src.sign == Negative || src.used == 0 {
		return 0, ErrMathDomain
	}
	if CompareDigit(src, 1) == 0 {
		return 0, nil
	}

	var power, next Int
	if err := copyInt(&power, IntOne, cfg); err != nil {
		return 0, err
	}
	count := 0
	for {
		if err := MulDigit(&next, &power, base, cfg); err != nil {
			return 0, err
		}
		if Compare(&next, src) > 0 {
			return count, nil
		}
		power, next = next, power
		count++
	}
}
