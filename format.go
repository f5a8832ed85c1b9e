package computor

import (
	"math/big"
	"strconv"
)

// String implements the [fmt.Stringer] interface and returns a string
// representation of a fixed-point number.
// The returned string does not use scientific notation and is formatted
// according to the following grammar:
//
//	sign    ::= '-'
//	digits  ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	literal ::= [sign] digits [ '.' digits ]
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d FixedPoint) String() string {
	var buf [40]byte

	b := buf[:0]

	// Sign
	if d.neg {
		b = append(b, '-')
	}

	// Integer
	b = strconv.AppendUint(b, uint64(d.integer), 10)

	// Fraction, padded with leading zeros up to the scale
	if d.digits > 0 {
		b = append(b, '.')
		for i := int(d.digits) - 1; i >= 0; i-- {
			b = append(b, byte(d.fraction/pow10[i]%10)+'0')
		}
	}

	return string(b)
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *FixedPoint) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [FixedPoint.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d FixedPoint) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Ratio returns the irreducible fraction num / den equal to d.
// The denominator is always positive, and it is 1 if d is an integer.
func (d FixedPoint) Ratio() (num, den *big.Int) {
	num = (*big.Int)(d.raw())
	den = new(big.Int).SetUint64(uint64(pow10[d.digits]))
	gcd := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if gcd.Sign() != 0 {
		num.Quo(num, gcd)
		den.Quo(den, gcd)
	}
	return num, den
}
