package computor

import "fmt"

// MustNew is like [New] but panics if the number cannot be constructed.
// It simplifies safe initialization of global variables holding fixed-point numbers.
func MustNew(integer, fraction uint64, sign int) FixedPoint {
	d, err := New(integer, fraction, sign)
	if err != nil {
		panic(fmt.Sprintf("MustNew(%v, %v, %v) failed: %v", integer, fraction, sign, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
func MustParse(s string) FixedPoint {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

// MustAdd is like [FixedPoint.Add] but panics if computing error.
func (d FixedPoint) MustAdd(e FixedPoint) FixedPoint {
	f, err := d.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", d, err))
	}
	return f
}

// MustSub is like [FixedPoint.Sub] but panics if computing error.
func (d FixedPoint) MustSub(e FixedPoint) FixedPoint {
	f, err := d.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", d, err))
	}
	return f
}

// MustMul is like [FixedPoint.Mul] but panics if computing error.
func (d FixedPoint) MustMul(e FixedPoint) FixedPoint {
	f, err := d.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", d, err))
	}
	return f
}

// MustQuo is like [FixedPoint.Quo] but panics if computing error.
func (d FixedPoint) MustQuo(e FixedPoint) FixedPoint {
	f, err := d.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", d, err))
	}
	return f
}
