package computor

import (
	"fmt"
	"math"
	"strconv"
)

// FixedPoint is an exact base-10 fixed-point number.
// The zero value is the numeric value of 0.
// It is immutable and safe for concurrent use by multiple goroutines.
//
// A fixed-point number is a struct with four fields:
//
//   - Sign: a boolean indicating whether the number is negative.
//   - Integer: the whole part of the absolute value.
//   - Fraction: the digits after the decimal point, as an integer.
//   - Scale: a power of ten such that Fraction < Scale.
//
// For example, integer 12, fraction 5 and scale 100 represent 12.05.
//
// Every value is kept in canonical form: the fraction has no trailing zero
// digits relative to the scale, and zero is never negative.
// As a result, two fixed-point numbers are numerically equal if and only if
// they are equal according to the == operator.
type FixedPoint struct {
	neg      bool // indicates whether the number is negative
	digits   int8 // number of digits after the decimal point, scale = 10^digits
	integer  fint // whole part of the absolute value
	fraction fint // fractional part of the absolute value, fraction < 10^digits
}

// newFixedPoint validates the parts and returns a normalized number.
func newFixedPoint(neg bool, integer, fraction fint, digits int) (FixedPoint, error) {
	switch {
	case digits < 0 || digits > MaxDigits:
		return FixedPoint{}, errScaleRange
	case integer > maxFint:
		return FixedPoint{}, fmt.Errorf("integer part %v: %w", uint64(integer), ErrCoefficientOverflow)
	case fraction >= pow10[digits]:
		return FixedPoint{}, fmt.Errorf("fraction %v does not fit scale %v: %w", uint64(fraction), uint64(pow10[digits]), errScaleRange)
	}
	d := FixedPoint{neg: neg, integer: integer, fraction: fraction, digits: int8(digits)}
	return d.normalize(), nil
}

// newFixedPointFromRaw splits a signed raw value, that is
// sign * (integer * 10^digits + fraction), into a normalized number.
// If the integer part does not fit, overflow is returned.
func newFixedPointFromRaw(raw *bint, digits int, overflow error) (FixedPoint, error) {
	neg := raw.sign() < 0

	mag := getBint()
	defer putBint(mag)
	mag.abs(raw)

	scale := getBint()
	defer putBint(scale)
	scale.setFint(pow10[digits])

	whole := getBint()
	defer putBint(whole)
	frac := getBint()
	defer putBint(frac)
	whole.quoRem(mag, scale, frac)

	if !whole.fitsFint() {
		return FixedPoint{}, overflow
	}
	d := FixedPoint{neg: neg, integer: whole.fint(), fraction: frac.fint(), digits: int8(digits)}
	return d.normalize(), nil
}

// New returns a fixed-point number built from its integer part, the digits
// of its fractional part and its sign.
// The scale is the smallest power of ten with as many digits as fraction,
// so New(1, 5, 1) is 1.5 and New(1, 500, 1) is also 1.5.
// Any negative sign produces a negative number; any other value a positive one.
//
// New returns an error if fraction has more than [MaxDigits] digits or
// if integer is greater than [MaxInteger].
func New(integer, fraction uint64, sign int) (FixedPoint, error) {
	digits := fint(fraction).prec()
	if digits > MaxDigits {
		return FixedPoint{}, fmt.Errorf("fraction %v has more than %v digits: %w", fraction, MaxDigits, ErrCoefficientOverflow)
	}
	return newFixedPoint(sign < 0, fint(integer), fint(fraction), digits)
}

// NewWithScale is like [New], but the scale is given explicitly,
// which allows fractional parts with leading zeros:
// NewWithScale(0, 5, 100, 1) is 0.05.
//
// NewWithScale returns an error if scale is not a power of ten between 1 and
// [ScaleMax], if fraction is not less than scale, or if integer is greater
// than [MaxInteger].
func NewWithScale(integer, fraction, scale uint64, sign int) (FixedPoint, error) {
	digits := -1
	for i := 0; i <= MaxDigits; i++ {
		if pow10[i] == fint(scale) {
			digits = i
			break
		}
	}
	if digits < 0 {
		return FixedPoint{}, fmt.Errorf("scale %v: %w", scale, errScaleRange)
	}
	return newFixedPoint(sign < 0, fint(integer), fint(fraction), digits)
}

// NewFromInt64 converts an integer to a fixed-point number.
func NewFromInt64(v int64) FixedPoint {
	neg := v < 0
	mag := uint64(v)
	if neg {
		mag = -mag
	}
	return FixedPoint{neg: neg, integer: fint(mag)}
}

// NewFromFloat64 converts a float to a fixed-point number rounded to
// [LiteralPrecision] digits after the decimal point.
//
// NewFromFloat64 returns an error if f is not finite or its integer part
// is greater than [MaxInteger].
func NewFromFloat64(f float64) (FixedPoint, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return FixedPoint{}, fmt.Errorf("converting %v: %w", f, ErrInvalidCoefficient)
	}
	s := strconv.FormatFloat(f, 'f', LiteralPrecision, 64)
	d, err := Parse(s)
	if err != nil {
		return FixedPoint{}, fmt.Errorf("converting %v: %w", f, err)
	}
	return d, nil
}

// Parse converts a decimal literal to a fixed-point number.
// The input string must follow the grammar:
//
//	sign    ::= '+' | '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	literal ::= [sign] digits [ '.' digits ]
//
// Trailing zeros of the fractional part are insignificant, so the exact
// decimal written by the user is preserved: "0.10" is parsed as 0.1.
//
// Parse returns [ErrInvalidCoefficient] if s does not follow the grammar,
// and [ErrCoefficientOverflow] if the integer part is greater than [MaxInteger]
// or the fractional part has more than [MaxDigits] significant digits.
func Parse(s string) (FixedPoint, error) {
	var (
		pos      int
		width    int
		neg      bool
		integer  fint
		fraction fint
		digits   int
		ok       bool
	)

	width = len(s)

	// Sign
	switch {
	case pos == width:
		// skip
	case s[pos] == '-':
		neg = true
		pos++
	case s[pos] == '+':
		pos++
	}

	// Integer
	start := pos
	for pos < width && s[pos] >= '0' && s[pos] <= '9' {
		integer, ok = integer.fsa(1, s[pos]-'0')
		if !ok {
			return FixedPoint{}, fmt.Errorf("integer part of %q: %w", s, ErrCoefficientOverflow)
		}
		pos++
	}
	if pos == start {
		return FixedPoint{}, fmt.Errorf("no integer part in %q: %w", s, ErrInvalidCoefficient)
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start = pos
		last := pos // end of the significant fraction digits
		for pos < width && s[pos] >= '0' && s[pos] <= '9' {
			pos++
			if s[pos-1] != '0' {
				last = pos
			}
		}
		if pos == start {
			return FixedPoint{}, fmt.Errorf("no fraction digits in %q: %w", s, ErrInvalidCoefficient)
		}
		if last-start > MaxDigits {
			return FixedPoint{}, fmt.Errorf("fraction of %q has more than %v digits: %w", s, MaxDigits, ErrCoefficientOverflow)
		}
		for i := start; i < last; i++ {
			fraction, _ = fraction.fsa(1, s[i]-'0')
		}
		digits = last - start
	}

	if pos != width {
		return FixedPoint{}, fmt.Errorf("invalid character %q in %q: %w", s[pos], s, ErrInvalidCoefficient)
	}

	return newFixedPoint(neg, integer, fraction, digits)
}

// normalize strips trailing zero digits of the fraction, shrinking the scale
// accordingly, and makes zero positive.
func (d FixedPoint) normalize() FixedPoint {
	switch {
	case d.fraction == 0:
		d.digits = 0
	default:
		if z := d.fraction.ntz(); z > 0 {
			d.fraction = d.fraction.rshDown(z)
			d.digits -= int8(z)
		}
	}
	if d.integer == 0 && d.fraction == 0 {
		d.neg = false
	}
	return d
}

// rescale brings d and e to the larger of their scales by multiplying the
// fraction of the other one by the scale ratio.
// The results share the same scale and are not normalized.
func rescale(d, e FixedPoint) (FixedPoint, FixedPoint) {
	switch {
	case d.digits < e.digits:
		d.fraction, _ = d.fraction.lsh(int(e.digits - d.digits))
		d.digits = e.digits
	case e.digits < d.digits:
		e.fraction, _ = e.fraction.lsh(int(d.digits - e.digits))
		e.digits = d.digits
	}
	return d, e
}

// raw returns sign * (integer * scale + fraction) as a new *bint.
func (d FixedPoint) raw() *bint {
	z := newBint()
	z.setFint(d.integer)
	z.lsh(z, int(d.digits))
	f := getBint()
	defer putBint(f)
	f.setFint(d.fraction)
	z.add(z, f)
	if d.neg {
		z.neg(z)
	}
	return z
}

// Integer returns the integer part of the absolute value of d.
func (d FixedPoint) Integer() uint64 {
	return uint64(d.integer)
}

// Fraction returns the fractional digits of the absolute value of d.
// Also see method [FixedPoint.Scale].
func (d FixedPoint) Fraction() uint64 {
	return uint64(d.fraction)
}

// Scale returns the power of ten that divides the fraction.
func (d FixedPoint) Scale() uint64 {
	return uint64(pow10[d.digits])
}

// Digits returns the number of digits after the decimal point.
func (d FixedPoint) Digits() int {
	return int(d.digits)
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d == 0
//	+1 if d > 0
func (d FixedPoint) Sign() int {
	switch {
	case d.neg:
		return -1
	case d.IsZero():
		return 0
	}
	return 1
}

// IsZero returns true if d == 0.
func (d FixedPoint) IsZero() bool {
	return d.integer == 0 && d.fraction == 0
}

// IsNeg returns true if d < 0.
func (d FixedPoint) IsNeg() bool {
	return d.neg
}

// IsPos returns true if d > 0.
func (d FixedPoint) IsPos() bool {
	return !d.neg && !d.IsZero()
}

// IsInt returns true if the fractional part of d is zero.
func (d FixedPoint) IsInt() bool {
	return d.fraction == 0
}

// Neg returns d with opposite sign.
func (d FixedPoint) Neg() FixedPoint {
	if d.IsZero() {
		return d
	}
	d.neg = !d.neg
	return d
}

// Abs returns the absolute value of d.
func (d FixedPoint) Abs() FixedPoint {
	d.neg = false
	return d
}

// Float64 returns the nearest float64 value for d.
// It is meant for presentation only and is never used by arithmetic.
func (d FixedPoint) Float64() float64 {
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		panic(fmt.Sprintf("%q.Float64() failed: %v", d, err)) // unexpected by design
	}
	return f
}

// Add returns the exact sum of d and e.
//
// Add returns [ErrOverflow] if the integer part of the sum is greater than
// [MaxInteger].
func (d FixedPoint) Add(e FixedPoint) (FixedPoint, error) {
	d, e = rescale(d, e)
	x, y := d.raw(), e.raw()
	x.add(x, y)
	f, err := newFixedPointFromRaw(x, int(d.digits), ErrOverflow)
	if err != nil {
		return FixedPoint{}, fmt.Errorf("computing [%v + %v]: %w", d.normalize(), e.normalize(), err)
	}
	return f, nil
}

// Sub returns the exact difference of d and e.
//
// Sub returns [ErrOverflow] if the integer part of the difference is greater
// than [MaxInteger].
func (d FixedPoint) Sub(e FixedPoint) (FixedPoint, error) {
	return d.Add(e.Neg())
}

// Mul returns the product of d and e.
// The product is exact when it has at most [MaxDigits] digits after the
// decimal point, and truncated towards zero to [MaxDigits] digits otherwise.
//
// The product is assembled from four partial products: integer × integer,
// integer × fraction, fraction × integer and fraction × fraction.
// Each one is checked before the result is built, and Mul returns
// [ErrMultiplicationOverflow] if any of them, or their sum, has an integer
// part greater than [MaxInteger].
func (d FixedPoint) Mul(e FixedPoint) (FixedPoint, error) {
	digits := int(d.digits) + int(e.digits)

	// Integer × integer, in units of 1
	ii, ok := d.integer.mul(e.integer)
	if !ok {
		return FixedPoint{}, fmt.Errorf("computing [%v * %v]: integer product: %w", d, e, ErrMultiplicationOverflow)
	}

	// Cross products and fraction × fraction, in units of 10^-digits
	partials := [3]struct {
		x, y   fint
		digits int
	}{
		{d.integer, e.fraction, int(e.digits)},
		{d.fraction, e.integer, int(d.digits)},
		{d.fraction, e.fraction, digits},
	}
	sum := newBint()
	sum.setFint(ii)
	sum.lsh(sum, digits)
	scale := getBint()
	defer putBint(scale)
	for _, p := range partials {
		x := getBint()
		y := getBint()
		x.setFint(p.x)
		y.setFint(p.y)
		x.mul(x, y)
		scale.setPow10(p.digits)
		if !fitsPartial(x, scale) {
			putBint(x)
			putBint(y)
			return FixedPoint{}, fmt.Errorf("computing [%v * %v]: partial product: %w", d, e, ErrMultiplicationOverflow)
		}
		x.lsh(x, digits-p.digits)
		sum.add(sum, x)
		putBint(x)
		putBint(y)
	}

	// Truncation
	if digits > MaxDigits {
		rem := getBint()
		defer putBint(rem)
		scale.setPow10(digits - MaxDigits)
		sum.quoRem(sum, scale, rem)
		digits = MaxDigits
	}

	if d.neg != e.neg {
		sum.neg(sum)
	}
	f, err := newFixedPointFromRaw(sum, digits, ErrMultiplicationOverflow)
	if err != nil {
		return FixedPoint{}, fmt.Errorf("computing [%v * %v]: %w", d, e, err)
	}
	return f, nil
}

// fitsPartial returns true if the integer part of x / scale fits into fint.
func fitsPartial(x, scale *bint) bool {
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.quoRem(x, scale, r)
	return q.fitsFint()
}

// Quo returns the quotient of d and e, truncated towards zero to at most
// [MaxDigits] digits after the decimal point.
//
// The quotient is computed by long division: the integer part comes from
// the integer division of the raw values, and each fractional digit from
// multiplying the remainder by ten, one digit per step.
// The loop stops early when the remainder becomes zero.
//
// Quo returns [ErrDivisionByZero] if e is zero, and [ErrOverflow] if the
// integer part of the quotient is greater than [MaxInteger].
func (d FixedPoint) Quo(e FixedPoint) (FixedPoint, error) {
	if e.IsZero() {
		return FixedPoint{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrDivisionByZero)
	}

	var (
		neg      bool
		integer  fint
		fraction fint
		digits   int
	)

	a, b := rescale(d, e)
	num, den := a.raw(), b.raw()
	num.abs(num)
	den.abs(den)

	// Integer part
	q := getBint()
	defer putBint(q)
	r := getBint()
	defer putBint(r)
	q.quoRem(num, den, r)
	if !q.fitsFint() {
		return FixedPoint{}, fmt.Errorf("computing [%v / %v]: %w", d, e, ErrOverflow)
	}
	integer = q.fint()

	// Fractional part, one digit per step
	rem := getBint()
	defer putBint(rem)
	for r.sign() != 0 && digits < MaxDigits {
		r.lsh(r, 1)
		q.quoRem(r, den, rem)
		r.setBint(rem)
		fraction = fraction*10 + q.fint()
		digits++
	}

	// Sign
	neg = d.neg != e.neg

	f, err := newFixedPoint(neg, integer, fraction, digits)
	if err != nil {
		return FixedPoint{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err) // unexpected by design
	}
	return f, nil
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
//
// Signs are compared first, zero counting as positive.
// Magnitudes are compared after both numbers are rescaled to a common scale.
func (d FixedPoint) Cmp(e FixedPoint) int {
	// Special case: different signs
	switch {
	case e.neg && !d.neg:
		return 1
	case d.neg && !e.neg:
		return -1
	}

	// General case
	d, e = rescale(d, e)
	var r int
	switch {
	case d.integer > e.integer:
		r = 1
	case d.integer < e.integer:
		r = -1
	case d.fraction > e.fraction:
		r = 1
	case d.fraction < e.fraction:
		r = -1
	}
	if d.neg {
		r = -r
	}
	return r
}

// Equal returns true if d and e are numerically equal.
func (d FixedPoint) Equal(e FixedPoint) bool {
	return d.Cmp(e) == 0
}

// ApproxEqual returns true if |d - e| <= tolerance.
// If the difference cannot be computed, ApproxEqual returns false.
func (d FixedPoint) ApproxEqual(e, tolerance FixedPoint) bool {
	diff, err := d.Sub(e)
	if err != nil {
		return false
	}
	return diff.Abs().Cmp(tolerance.Abs()) <= 0
}
