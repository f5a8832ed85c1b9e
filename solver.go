package computor

import "fmt"

// Outcome classifies the solution set of a polynomial equation.
type Outcome int

const (
	// Unsolved means [Polynomial.Solve] has not succeeded yet.
	Unsolved Outcome = iota
	// AllReals means every real number is a solution (e.g. 0 = 0).
	AllReals
	// NoSolution means the equation has no solution at all (e.g. 4 = 0).
	NoSolution
	// NoRealSolution means the discriminant is negative.
	NoRealSolution
	// Finite means the solutions form a finite, non-empty set of reals.
	Finite
)

func (o Outcome) String() string {
	switch o {
	case Unsolved:
		return "unsolved"
	case AllReals:
		return "all reals"
	case NoSolution:
		return "no solution"
	case NoRealSolution:
		return "no real solution"
	case Finite:
		return "finite"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Solution is the result of a degree-specific solver.
//
// Solutions is nil when no finite solution set was computed (see [AllReals]
// and [NoSolution]); it is empty but not nil when the equation has no real
// solution.
// Discriminant is only set by [SolveQuadratic].
type Solution struct {
	Outcome      Outcome
	Discriminant *FixedPoint
	Solutions    []FixedPoint
}

// SolveConstant classifies the equation c = 0, which has no unknown.
func SolveConstant(c FixedPoint) Solution {
	if c.IsZero() {
		return Solution{Outcome: AllReals}
	}
	return Solution{Outcome: NoSolution}
}

// SolveLinear solves a * X + b = 0, where coefficients is [b, a].
// If a is zero the equation is classified like a constant one.
//
// SolveLinear panics if coefficients does not have exactly two elements.
func SolveLinear(coefficients []FixedPoint) (Solution, error) {
	if len(coefficients) != 2 {
		panic(fmt.Sprintf("SolveLinear(%v) failed: wrong solver used", coefficients))
	}
	a, b := coefficients[1], coefficients[0]

	if a.IsZero() {
		return SolveConstant(b), nil
	}

	x, err := b.Neg().Quo(a)
	if err != nil {
		return Solution{}, fmt.Errorf("solving linear equation: %w", err)
	}
	return Solution{Outcome: Finite, Solutions: []FixedPoint{x}}, nil
}

// SolveQuadratic solves a * X^2 + b * X + c = 0, where coefficients is [c, b, a].
//
// The discriminant Δ = b^2 - 4ac decides the solution set:
//
//   - Δ < 0: no real solution;
//   - Δ = 0: one solution -b / 2a;
//   - Δ > 0: two solutions (-b - √Δ) / 2a and (-b + √Δ) / 2a, in this order.
//
// SolveQuadratic returns [ErrMultiplicationOverflow] if the discriminant
// cannot be computed.
// It panics if coefficients does not have exactly three elements or if a is
// zero; a polynomial with trimmed coefficients never does that.
func SolveQuadratic(coefficients []FixedPoint) (Solution, error) {
	if len(coefficients) != 3 || coefficients[2].IsZero() {
		panic(fmt.Sprintf("SolveQuadratic(%v) failed: wrong solver used", coefficients))
	}
	a, b, c := coefficients[2], coefficients[1], coefficients[0]

	delta, err := discriminant(a, b, c)
	if err != nil {
		return Solution{}, fmt.Errorf("solving quadratic equation: %w", err)
	}
	s := Solution{Discriminant: &delta}

	if delta.IsNeg() {
		s.Outcome = NoRealSolution
		s.Solutions = []FixedPoint{}
		return s, nil
	}

	twoA, err := a.Mul(NewFromInt64(2))
	if err != nil {
		return Solution{}, fmt.Errorf("solving quadratic equation: %w", err)
	}
	negB := b.Neg()

	if delta.IsZero() {
		x, err := negB.Quo(twoA)
		if err != nil {
			return Solution{}, fmt.Errorf("solving quadratic equation: %w", err)
		}
		s.Outcome = Finite
		s.Solutions = []FixedPoint{x}
		return s, nil
	}

	root, err := delta.Sqrt()
	if err != nil {
		return Solution{}, fmt.Errorf("solving quadratic equation: %w", err)
	}
	x1, err := quadraticRoot(negB, root.Neg(), twoA)
	if err != nil {
		return Solution{}, fmt.Errorf("solving quadratic equation: %w", err)
	}
	x2, err := quadraticRoot(negB, root, twoA)
	if err != nil {
		return Solution{}, fmt.Errorf("solving quadratic equation: %w", err)
	}
	s.Outcome = Finite
	s.Solutions = []FixedPoint{x1, x2}
	return s, nil
}

// discriminant computes b^2 - 4ac.
func discriminant(a, b, c FixedPoint) (FixedPoint, error) {
	bb, err := b.Mul(b)
	if err != nil {
		return FixedPoint{}, err
	}
	ac, err := a.Mul(c)
	if err != nil {
		return FixedPoint{}, err
	}
	ac4, err := ac.Mul(NewFromInt64(4))
	if err != nil {
		return FixedPoint{}, err
	}
	return bb.Sub(ac4)
}

// quadraticRoot computes (negB + root) / twoA.
func quadraticRoot(negB, root, twoA FixedPoint) (FixedPoint, error) {
	num, err := negB.Add(root)
	if err != nil {
		return FixedPoint{}, err
	}
	return num.Quo(twoA)
}
