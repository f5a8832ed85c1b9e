/*
Package computor solves polynomial equations of degree 2 or lower using exact
base-10 fixed-point arithmetic.

# Representation

[FixedPoint] is a struct with four fields:

  - Sign: a boolean indicating whether the number is negative.
  - Integer: an unsigned integer holding the whole part of the absolute value.
  - Fraction: an unsigned integer holding the digits after the decimal point.
  - Scale: a power of ten strictly greater than the fraction.
    For example, a number with an integer of 3, a fraction of 25 and a scale
    of 100 represents the value 3.25.
    The range of allowed values for the scale is from 1 to 10^15.

The numerical value of a fixed-point number is calculated as:

  - -(Integer + Fraction / Scale), if Sign is true.
  - Integer + Fraction / Scale, if Sign is false.

Unlike a floating-point number, every value has exactly one representation:
trailing zeros of the fraction are always removed and zero is never negative.

# Constraints

The integer part ranges from 0 to 9,999,999,999,999,999,999 and the fraction
holds at most 15 digits, so the representable range is:

	| Minimum                                     | Maximum                                    |
	| ------------------------------------------- | ------------------------------------------ |
	| -9,999,999,999,999,999,999.999999999999999  | 9,999,999,999,999,999,999.999999999999999  |

Special values such as NaN, infinity or negative zero are not supported.
Arithmetic operations always produce either valid numbers or errors.

# Operations

Operands of an addition, a subtraction or a division are first rescaled to
the larger scale.
Every operation is carried out on the signed raw value
Sign * (Integer * Scale + Fraction) using [big.Int] arithmetic, and the
result is split back into integer and fraction and normalized.

  - [FixedPoint.Add], [FixedPoint.Sub]: exact.
  - [FixedPoint.Mul]: exact up to 15 digits after the decimal point, truncated beyond.
  - [FixedPoint.Quo]: long division truncated to 15 digits after the decimal point.
  - [FixedPoint.Sqrt]: Newton–Raphson iteration truncated to 15 digits.

# Equations

[ParseEquation] converts text such as "5 * X^0 + 4 * X^1 = 4 * X^0" into the
coefficients of its reduced form.
[NewPolynomial] wraps them into a [Polynomial], whose [Polynomial.Solve]
method dispatches on the degree:

  - degree 0: every real number is a solution, or none is;
  - degree 1: one solution, unless the equation is constant;
  - degree 2: zero, one or two real solutions depending on the discriminant;
  - degree 3 or higher: [ErrUnsupportedDegree].

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Invalid Input:
    [ParseEquation] and [NewPolynomial] return [ErrEmptyInput],
    [ErrInvalidPower] or [ErrInvalidCoefficient] for malformed text, and
    [ErrPowerTooLarge] if a power above [MaxPower] has a non-zero coefficient.

  - Coefficient Overflow:
    [Parse], [New] and [ParseEquation] return [ErrCoefficientOverflow]
    if a literal has more digits than a fixed-point number can hold.

  - Range Overflow:
    [FixedPoint.Add], [FixedPoint.Sub] and [FixedPoint.Quo] return [ErrOverflow],
    and [FixedPoint.Mul] returns [ErrMultiplicationOverflow], if the integer part
    of the result is greater than [MaxInteger].

  - Division by Zero:
    [FixedPoint.Quo] returns [ErrDivisionByZero] if the divisor is zero.

  - Negative Radicand:
    [FixedPoint.Sqrt] returns [ErrNegativeRadicand] for negative numbers.

The Must* helpers, [SolveLinear] and [SolveQuadratic] are the exception:
they panic on invalid arguments.
*/
package computor
