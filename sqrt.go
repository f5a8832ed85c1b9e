package computor

import "fmt"

// Sqrt returns the square root of d, truncated to at most [MaxDigits] digits
// after the decimal point.
//
// Sqrt uses the Newton–Raphson method entirely in fixed-point arithmetic.
// Starting from a power of ten that is known to be above the root, it repeats
// guess = (guess + d / guess) / 2 until two consecutive guesses differ by no
// more than [SqrtTolerance] or the guesses stop decreasing.
//
// Sqrt returns [ErrNegativeRadicand] if d is negative.
func (d FixedPoint) Sqrt() (FixedPoint, error) {
	// Special cases
	switch {
	case d.IsNeg():
		return FixedPoint{}, fmt.Errorf("computing sqrt(%v): %w", d, ErrNegativeRadicand)
	case d.IsZero():
		return d, nil
	}

	// Initial guess: d < 10^p implies sqrt(d) < 10^⌈p/2⌉
	guess := NewFromInt64(1)
	if p := d.integer.prec(); p > 0 {
		guess = FixedPoint{integer: pow10[(p+1)/2]}
	}

	two := NewFromInt64(2)
	for i := 0; i < sqrtMaxIterations; i++ {
		q, err := d.Quo(guess)
		if err != nil {
			return FixedPoint{}, fmt.Errorf("computing sqrt(%v): %w", d, err)
		}
		sum, err := guess.Add(q)
		if err != nil {
			return FixedPoint{}, fmt.Errorf("computing sqrt(%v): %w", d, err)
		}
		next, err := sum.Quo(two)
		if err != nil {
			return FixedPoint{}, fmt.Errorf("computing sqrt(%v): %w", d, err)
		}
		// Truncation makes the sequence stall one unit above or below the root
		if next.Cmp(guess) >= 0 {
			return guess, nil
		}
		if diff := guess.MustSub(next); diff.Cmp(SqrtTolerance()) <= 0 {
			return next, nil
		}
		guess = next
	}
	return guess, nil
}
