package computor

import "errors"

var (
	// ErrEmptyInput is returned when the equation or its left side is empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrInvalidPower is returned when a monomial's power is not X or X^<digits>.
	ErrInvalidPower = errors.New("invalid power")

	// ErrPowerTooLarge is returned when a power above [MaxPower] has a
	// non-zero coefficient.
	ErrPowerTooLarge = errors.New("power too large")

	// ErrInvalidCoefficient is returned when a coefficient is not a decimal literal.
	ErrInvalidCoefficient = errors.New("invalid coefficient")

	// ErrCoefficientOverflow is returned when a literal or a constructor
	// argument has more digits than a [FixedPoint] can represent.
	ErrCoefficientOverflow = errors.New("coefficient overflow")

	// ErrDivisionByZero is returned by [FixedPoint.Quo] when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrMultiplicationOverflow is returned by [FixedPoint.Mul] when a partial
	// product does not fit the representable range.
	ErrMultiplicationOverflow = errors.New("multiplication overflow")

	// ErrOverflow is returned when the integer part of a sum, difference or
	// quotient exceeds [MaxInteger].
	ErrOverflow = errors.New("integer part overflow")

	// ErrNegativeRadicand is returned by [FixedPoint.Sqrt] for negative values.
	ErrNegativeRadicand = errors.New("square root of negative number")

	// ErrUnsupportedDegree is returned by [Polynomial.Solve] for degrees above 2.
	ErrUnsupportedDegree = errors.New("unsupported degree")

	errScaleRange = errors.New("scale out of range")
)
