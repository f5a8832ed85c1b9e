package computor

const (
	// ScaleMax is the largest scale a [FixedPoint] can have.
	// A fixed-point number therefore carries at most [MaxDigits] digits after
	// the decimal point.
	ScaleMax = 1_000_000_000_000_000

	// MaxDigits is the number of decimal digits in [ScaleMax].
	MaxDigits = 15

	// MaxInteger is the largest integer part a [FixedPoint] can hold.
	MaxInteger = maxFint

	// LiteralPrecision is the number of digits after the decimal point kept by
	// [NewFromFloat64].
	LiteralPrecision = 10

	// MaxPower is the largest power of X that [ParseEquation] accepts with a
	// non-zero coefficient. It bounds the length of the coefficient vector.
	MaxPower = 1<<16 - 1

	// sqrtMaxIterations bounds the Newton–Raphson loop in [FixedPoint.Sqrt].
	sqrtMaxIterations = 100
)

// SqrtTolerance returns the largest difference between two consecutive
// guesses at which [FixedPoint.Sqrt] stops iterating.
// It equals one unit in the last representable place.
func SqrtTolerance() FixedPoint {
	return FixedPoint{fraction: 1, digits: MaxDigits}
}
