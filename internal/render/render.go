// Package render presents solved equations as human readable text or as JSON.
package render

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/govalues/computor"
)

// Options controls the optional parts of the output.
type Options struct {
	// Fractions appends the irreducible fraction of every non-integer solution.
	Fractions bool
	// Steps prints the formulas used to compute the solutions.
	Steps bool
}

// Result is an equation together with its polynomial and the first error
// met while parsing or solving it.
type Result struct {
	Equation   string
	Polynomial *computor.Polynomial // nil if the equation could not be parsed
	Err        error
}

// Solve parses and solves an equation.
func Solve(text string) Result {
	r := Result{Equation: text}
	p, err := computor.NewPolynomial(text)
	if err != nil {
		r.Err = err
		return r
	}
	r.Polynomial = p
	r.Err = p.Solve()
	return r
}

// Text writes the reduced form, the degree and the solutions of r.
// Nothing is written for an equation that could not be parsed.
func Text(w io.Writer, r Result, opts Options) error {
	p := r.Polynomial
	if p == nil {
		return nil
	}
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Reduced form: %v\n", p)
	fmt.Fprintf(bw, "Polynomial degree: %v\n", p.Degree())
	if r.Err != nil {
		return bw.Flush()
	}
	if opts.Steps {
		for _, s := range Steps(p) {
			fmt.Fprintln(bw, s)
		}
	}

	sols, _ := p.Solutions()
	switch p.Outcome() {
	case computor.AllReals:
		fmt.Fprintln(bw, "All real numbers are solutions.")
	case computor.NoSolution:
		fmt.Fprintln(bw, "There is no solution.")
	case computor.NoRealSolution:
		fmt.Fprintln(bw, "Discriminant is strictly negative, there is no real solution.")
	case computor.Finite:
		switch delta, ok := p.Discriminant(); {
		case !ok:
			fmt.Fprintln(bw, "The solution is:")
		case delta.IsZero():
			fmt.Fprintln(bw, "Discriminant is zero, the solution is:")
		default:
			fmt.Fprintln(bw, "Discriminant is strictly positive, the two solutions are:")
		}
		for _, x := range sols {
			if f := Fraction(x); opts.Fractions && f != "" {
				fmt.Fprintf(bw, "%v (%v)\n", x, f)
			} else {
				fmt.Fprintln(bw, x)
			}
		}
	}
	return bw.Flush()
}

// Message returns the sentence shown to a user for an error met while
// solving an equation.
func Message(err error) string {
	switch {
	case errors.Is(err, computor.ErrEmptyInput):
		return "Please enter an equation."
	case errors.Is(err, computor.ErrUnsupportedDegree):
		return "The polynomial degree is strictly greater than 2, I can't solve."
	}
	return err.Error()
}

// Fraction returns the irreducible fraction num/den equal to d, or an empty
// string if d is an integer.
func Fraction(d computor.FixedPoint) string {
	if d.IsInt() {
		return ""
	}
	num, den := d.Ratio()
	return fmt.Sprintf("%v/%v", num, den)
}

type document struct {
	Equation     string                `json:"equation"`
	ReducedForm  string                `json:"reduced_form,omitempty"`
	Degree       *int                  `json:"degree,omitempty"`
	Coefficients []computor.FixedPoint `json:"coefficients,omitempty"`
	Outcome      string                `json:"outcome,omitempty"`
	Discriminant *computor.FixedPoint  `json:"discriminant,omitempty"`
	Solutions    []solution            `json:"solutions,omitempty"`
	Steps        []string              `json:"steps,omitempty"`
	Error        string                `json:"error,omitempty"`
}

type solution struct {
	Value    computor.FixedPoint `json:"value"`
	Fraction string              `json:"fraction,omitempty"`
}

// JSON writes r as a single line JSON object.
func JSON(w io.Writer, r Result, opts Options) error {
	doc := document{Equation: r.Equation}
	if r.Err != nil {
		doc.Error = r.Err.Error()
	}
	if p := r.Polynomial; p != nil {
		degree := p.Degree()
		doc.ReducedForm = p.String()
		doc.Degree = &degree
		doc.Coefficients = p.Coefficients()
		if r.Err == nil {
			doc.Outcome = p.Outcome().String()
			if delta, ok := p.Discriminant(); ok {
				doc.Discriminant = &delta
			}
			sols, _ := p.Solutions()
			for _, x := range sols {
				s := solution{Value: x}
				if opts.Fractions {
					s.Fraction = Fraction(x)
				}
				doc.Solutions = append(doc.Solutions, s)
			}
			if opts.Steps {
				doc.Steps = Steps(p)
			}
		}
	}
	return json.NewEncoder(w).Encode(doc)
}
