package computor

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// ParseEquation converts a polynomial equation in the unknown X to the
// coefficients of its reduced form, where the element at index i is the
// coefficient of X^i.
// The input string must follow the grammar:
//
//	digits   ::= '0' | '1' | ... | '9' { '0' | '1' | ... | '9' }
//	number   ::= digits [ '.' digits ]
//	power    ::= 'X' [ '^' digits ]
//	monomial ::= [ '+' | '-' ] ( number [ '*' power ] | power )
//	side     ::= monomial { ( '+' | '-' ) monomial }
//	equation ::= side [ '=' [ side ] ]
//
// Whitespace is insignificant anywhere in the input.
// Monomials with the same power are summed, and the right side is subtracted
// from the left one, so "X = X^2 + 6*X" gives [0, -5, -1].
// The result has exactly one element per power up to the highest one
// mentioned, even if the highest coefficient is zero.
// Powers above [MaxPower] are only kept when their coefficient is not zero.
//
// ParseEquation returns:
//
//   - [ErrEmptyInput] if the input or its left side is empty;
//   - [ErrInvalidPower] if a power is not X or X^digits;
//   - [ErrPowerTooLarge] if a power above [MaxPower] has a non-zero coefficient;
//   - [ErrInvalidCoefficient] if a coefficient is not a decimal literal;
//   - [ErrCoefficientOverflow] if a coefficient has too many digits;
//   - [ErrOverflow] if summing coefficients overflows.
func ParseEquation(text string) ([]FixedPoint, error) {
	left, right, err := splitEquation(text)
	if err != nil {
		return nil, err
	}

	lhs, err := parseSide(left)
	if err != nil {
		return nil, fmt.Errorf("parsing left side: %w", err)
	}
	rhs, err := parseSide(right)
	if err != nil {
		return nil, fmt.Errorf("parsing right side: %w", err)
	}

	powers := make([]int, 0, len(rhs))
	for power := range rhs {
		powers = append(powers, power)
	}
	slices.Sort(powers)
	for _, power := range powers {
		lhs[power], err = lhs[power].Sub(rhs[power])
		if err != nil {
			return nil, fmt.Errorf("reducing X^%v: %w", power, err)
		}
	}

	highest, degree := 0, 0
	for power, coef := range lhs {
		highest = max(highest, power)
		if !coef.IsZero() {
			degree = max(degree, power)
		}
	}
	if degree > MaxPower {
		return nil, fmt.Errorf("%w: X^%v is greater than X^%v", ErrPowerTooLarge, degree, MaxPower)
	}
	if highest > MaxPower {
		// Zero coefficients above the limit carry no information
		highest = degree
	}

	coefs := make([]FixedPoint, highest+1)
	for power, coef := range lhs {
		if power <= highest {
			coefs[power] = coef
		}
	}
	return coefs, nil
}

// splitEquation removes whitespace and splits text at the first '='.
func splitEquation(text string) (left, right string, err error) {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
	left, right, _ = strings.Cut(s, "=")
	if left == "" {
		return "", "", ErrEmptyInput
	}
	return left, right, nil
}

// splitTerms splits a side before every '+' and '-'.
func splitTerms(side string) []string {
	var terms []string
	start := 0
	for i := 1; i < len(side); i++ {
		if side[i] == '+' || side[i] == '-' {
			terms = append(terms, side[start:i])
			start = i
		}
	}
	if start < len(side) {
		terms = append(terms, side[start:])
	}
	return terms
}

// parseSide sums the monomials of one side by power.
// The result maps every power mentioned to its coefficient.
func parseSide(side string) (map[int]FixedPoint, error) {
	coefs := make(map[int]FixedPoint)
	for _, term := range splitTerms(side) {
		power, coef, err := parseMonomial(term)
		if err != nil {
			return nil, err
		}
		coefs[power], err = coefs[power].Add(coef)
		if err != nil {
			return nil, fmt.Errorf("summing %q: %w", term, err)
		}
	}
	return coefs, nil
}

// parseMonomial parses a signed monomial such as "-3.5*X^2", "+X" or "4".
func parseMonomial(term string) (power int, coef FixedPoint, err error) {
	neg := false
	body := term
	switch {
	case strings.HasPrefix(body, "-"):
		neg = true
		body = body[1:]
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	switch number, x, found := strings.Cut(body, "*"); {
	case found:
		coef, err = parseCoefficient(number)
		if err != nil {
			return 0, FixedPoint{}, err
		}
		power, err = parsePower(x)
		if err != nil {
			return 0, FixedPoint{}, err
		}
	case strings.HasPrefix(body, "X"):
		coef = NewFromInt64(1)
		power, err = parsePower(body)
		if err != nil {
			return 0, FixedPoint{}, err
		}
	default:
		coef, err = parseCoefficient(body)
		if err != nil {
			return 0, FixedPoint{}, err
		}
	}

	if neg {
		coef = coef.Neg()
	}
	return power, coef, nil
}

// parseCoefficient parses an unsigned decimal literal.
func parseCoefficient(s string) (FixedPoint, error) {
	if s == "" || s[0] < '0' || s[0] > '9' {
		return FixedPoint{}, fmt.Errorf("%w: %q", ErrInvalidCoefficient, s)
	}
	d, err := Parse(s)
	switch {
	case errors.Is(err, ErrCoefficientOverflow):
		return FixedPoint{}, fmt.Errorf("%w: %q", ErrCoefficientOverflow, s)
	case err != nil:
		return FixedPoint{}, fmt.Errorf("%w: %q", ErrInvalidCoefficient, s)
	}
	return d, nil
}

// parsePower parses "X" or "X^digits" and returns the exponent.
// Exponents that do not fit an int are returned as [math.MaxInt].
func parsePower(s string) (int, error) {
	if s == "X" {
		return 1, nil
	}
	digits, ok := strings.CutPrefix(s, "X^")
	if !ok || digits == "" || strings.TrimLeft(digits, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPower, s)
	}
	n, err := strconv.Atoi(digits)
	switch {
	case errors.Is(err, strconv.ErrRange):
		return math.MaxInt, nil
	case err != nil:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPower, s)
	}
	return n, nil
}
