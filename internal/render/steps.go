package render

import (
	"fmt"

	"github.com/govalues/computor"
)

// Steps returns the formulas used to solve p, with the coefficients
// substituted.
// It returns nil for unsolved polynomials and for constant equations.
func Steps(p *computor.Polynomial) []string {
	coefs := p.Coefficients()
	switch {
	case p.Outcome() == computor.Unsolved:
		return nil
	case p.Degree() == 1:
		a, b := coefs[1], coefs[0]
		return []string{
			fmt.Sprintf("x = -b / a = %v / %v", paren(b.Neg()), paren(a)),
		}
	case p.Degree() == 2:
		a, b, c := coefs[2], coefs[1], coefs[0]
		delta, _ := p.Discriminant()
		steps := []string{
			fmt.Sprintf("Δ = b^2 - 4 * a * c = %v^2 - 4 * %v * %v = %v", paren(b), paren(a), paren(c), delta),
		}
		switch {
		case delta.IsZero():
			steps = append(steps,
				fmt.Sprintf("x0 = -b / (2 * a) = %v / (2 * %v)", paren(b.Neg()), paren(a)),
			)
		case delta.IsPos():
			root, err := delta.Sqrt()
			if err != nil {
				return steps
			}
			steps = append(steps,
				fmt.Sprintf("√Δ = %v", root),
				fmt.Sprintf("x1 = (-b - √Δ) / (2 * a) = (%v - %v) / (2 * %v)", paren(b.Neg()), root, paren(a)),
				fmt.Sprintf("x2 = (-b + √Δ) / (2 * a) = (%v + %v) / (2 * %v)", paren(b.Neg()), root, paren(a)),
			)
		}
		return steps
	}
	return nil
}

// paren wraps negative numbers in parentheses.
func paren(d computor.FixedPoint) string {
	if d.IsNeg() {
		return "(" + d.String() + ")"
	}
	return d.String()
}
