package computor

import (
	"fmt"
	"strings"
)

// Polynomial is a polynomial equation in reduced form, P(X) = 0.
//
// A polynomial is created once by [NewPolynomial], solved by
// [Polynomial.Solve], and read-only afterwards.
// It is not safe for concurrent use while Solve is running.
type Polynomial struct {
	degree int
	coefs  []FixedPoint // coefs[i] is the coefficient of X^i, coefs[degree] != 0 unless degree == 0
	solved bool
	err    error
	sol    Solution
}

// NewPolynomial parses an equation with [ParseEquation] and reduces it to a
// polynomial.
// Zero coefficients of the highest powers are dropped, so the degree is the
// highest power with a non-zero coefficient, or 0 if all coefficients are zero.
func NewPolynomial(text string) (*Polynomial, error) {
	coefs, err := ParseEquation(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", text, err)
	}
	return newPolynomial(coefs), nil
}

// NewPolynomialFromCoefficients returns a polynomial with the given
// coefficients, where coefs[i] is the coefficient of X^i.
// An empty slice is the zero polynomial.
func NewPolynomialFromCoefficients(coefs ...FixedPoint) *Polynomial {
	return newPolynomial(append([]FixedPoint(nil), coefs...))
}

func newPolynomial(coefs []FixedPoint) *Polynomial {
	if len(coefs) == 0 {
		coefs = []FixedPoint{{}}
	}
	for len(coefs) > 1 && coefs[len(coefs)-1].IsZero() {
		coefs = coefs[:len(coefs)-1]
	}
	return &Polynomial{degree: len(coefs) - 1, coefs: coefs}
}

// Degree returns the highest power of X with a non-zero coefficient.
func (p *Polynomial) Degree() int {
	return p.degree
}

// Coefficients returns a copy of the coefficients, where the element at
// index i is the coefficient of X^i.
func (p *Polynomial) Coefficients() []FixedPoint {
	return append([]FixedPoint(nil), p.coefs...)
}

// Solve computes the solutions of the equation.
// Calling Solve more than once has no effect and returns the error of the
// first call.
//
// Solve returns [ErrUnsupportedDegree] if the degree is greater than 2, and
// any error returned by [SolveLinear] or [SolveQuadratic].
func (p *Polynomial) Solve() error {
	if p.solved {
		return p.err
	}
	p.solved = true

	var (
		sol Solution
		err error
	)
	switch p.degree {
	case 0:
		sol = SolveConstant(p.coefs[0])
	case 1:
		sol, err = SolveLinear(p.coefs)
	case 2:
		sol, err = SolveQuadratic(p.coefs)
	default:
		err = fmt.Errorf("degree %v: %w", p.degree, ErrUnsupportedDegree)
	}
	if err != nil {
		p.err = err
		return err
	}
	p.sol = sol
	return nil
}

// Outcome returns the classification of the solution set, or [Unsolved]
// if [Polynomial.Solve] has not succeeded.
func (p *Polynomial) Outcome() Outcome {
	return p.sol.Outcome
}

// Discriminant returns the discriminant b^2 - 4ac.
// The second result is false unless a polynomial of degree 2 was solved.
func (p *Polynomial) Discriminant() (FixedPoint, bool) {
	if p.sol.Discriminant == nil {
		return FixedPoint{}, false
	}
	return *p.sol.Discriminant, true
}

// Solutions returns a copy of the real solutions in the order described by
// [SolveQuadratic].
// The second result is false if no finite solution set was computed: the
// polynomial is unsolved, every real number is a solution, or none is.
// An empty slice with true means the equation has no real solution.
func (p *Polynomial) Solutions() ([]FixedPoint, bool) {
	if p.sol.Solutions == nil {
		return nil, false
	}
	return append([]FixedPoint{}, p.sol.Solutions...), true
}

// String returns the reduced form of the equation, for example
// "4 * X^0 - 5 * X^1 + 1 * X^2 = 0".
func (p *Polynomial) String() string {
	var b strings.Builder
	for i, c := range p.coefs {
		switch {
		case i == 0 && c.IsNeg():
			b.WriteString("-")
		case i > 0 && c.IsNeg():
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%v * X^%v", c.Abs(), i)
	}
	b.WriteString(" = 0")
	return b.String()
}
