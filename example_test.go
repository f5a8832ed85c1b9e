package computor_test

import (
	"errors"
	"fmt"

	"github.com/govalues/computor"
)

// solve prints the reduced form and the solutions of an equation.
func solve(text string) error {
	p, err := computor.NewPolynomial(text)
	if err != nil {
		return err
	}
	if err := p.Solve(); err != nil {
		return err
	}
	fmt.Println("Reduced form:", p)
	fmt.Println("Polynomial degree:", p.Degree())
	if delta, ok := p.Discriminant(); ok {
		fmt.Println("Discriminant:", delta)
	}
	switch p.Outcome() {
	case computor.AllReals:
		fmt.Println("All real numbers are solutions")
	case computor.NoSolution:
		fmt.Println("No solution")
	case computor.NoRealSolution:
		fmt.Println("No real solution")
	case computor.Finite:
		sols, _ := p.Solutions()
		for _, x := range sols {
			fmt.Println(x)
		}
	}
	return nil
}

func Example_quadraticEquation() {
	if err := solve("5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0"); err != nil {
		panic(err)
	}
	// Output:
	// Reduced form: 4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0
	// Polynomial degree: 2
	// Discriminant: 164.8
	// 0.905238990790589
	// -0.475131463908869
}

func Example_linearEquation() {
	if err := solve("5 * X^0 + 4 * X^1 = 4 * X^0"); err != nil {
		panic(err)
	}
	// Output:
	// Reduced form: 1 * X^0 + 4 * X^1 = 0
	// Polynomial degree: 1
	// -0.25
}

func Example_identity() {
	if err := solve("3*X = 3*X"); err != nil {
		panic(err)
	}
	// Output:
	// Reduced form: 0 * X^0 = 0
	// Polynomial degree: 0
	// All real numbers are solutions
}

func Example_cubicEquation() {
	err := solve("8 * X^0 - 6 * X^1 + 0 * X^2 - 5.6 * X^3 = 3 * X^0")
	fmt.Println(errors.Is(err, computor.ErrUnsupportedDegree))
	fmt.Println(err)
	// Output:
	// true
	// degree 3: unsupported degree
}

func ExampleMustNew() {
	fmt.Println(computor.MustNew(1, 5, 1))
	fmt.Println(computor.MustNew(1, 500, -1))
	// Output:
	// 1.5
	// -1.5
}

func ExampleNew() {
	fmt.Println(computor.New(12, 34, 1))
	fmt.Println(computor.New(0, 1_234_567_890_123_456, 1))
	// Output:
	// 12.34 <nil>
	// 0 fraction 1234567890123456 has more than 15 digits: coefficient overflow
}

func ExampleNewWithScale() {
	fmt.Println(computor.NewWithScale(0, 5, 100, 1))
	fmt.Println(computor.NewWithScale(3, 5, 1000, -1))
	// Output:
	// 0.05 <nil>
	// -3.005 <nil>
}

func ExampleNewFromInt64() {
	fmt.Println(computor.NewFromInt64(-42))
	// Output: -42
}

func ExampleNewFromFloat64() {
	fmt.Println(computor.NewFromFloat64(1.23456789012))
	fmt.Println(computor.NewFromFloat64(-0.1))
	// Output:
	// 1.2345678901 <nil>
	// -0.1 <nil>
}

func ExampleParse() {
	fmt.Println(computor.Parse("-007.250"))
	// Output: -7.25 <nil>
}

func ExampleMustParse() {
	fmt.Println(computor.MustParse("3.4321"))
	// Output: 3.4321
}

func ExampleParseEquation() {
	fmt.Println(computor.ParseEquation("X = X^2 + 6*X"))
	fmt.Println(computor.ParseEquation("3*X^3 = 3.333 - 7.56*X"))
	// Output:
	// [0 -5 -1] <nil>
	// [-3.333 7.56 0 3] <nil>
}

func ExampleFixedPoint_Add() {
	d := computor.MustParse("5.75")
	e := computor.MustParse("3.3")
	fmt.Println(d.Add(e))
	// Output: 9.05 <nil>
}

func ExampleFixedPoint_Sub() {
	d := computor.MustParse("-3")
	e := computor.MustParse("-5.5")
	fmt.Println(d.Sub(e))
	// Output: 2.5 <nil>
}

func ExampleFixedPoint_Mul() {
	d := computor.MustParse("123.456")
	e := computor.MustParse("7.89")
	fmt.Println(d.Mul(e))
	// Output: 974.06784 <nil>
}

func ExampleFixedPoint_Quo() {
	d := computor.MustParse("22")
	e := computor.MustParse("7")
	fmt.Println(d.Quo(e))
	fmt.Println(d.Quo(computor.FixedPoint{}))
	// Output:
	// 3.142857142857142 <nil>
	// 0 computing [22 / 0]: division by zero
}

func ExampleFixedPoint_Sqrt() {
	fmt.Println(computor.MustParse("2").Sqrt())
	fmt.Println(computor.MustParse("2.25").Sqrt())
	// Output:
	// 1.414213562373095 <nil>
	// 1.5 <nil>
}

func ExampleFixedPoint_Cmp() {
	d := computor.MustParse("-2")
	e := computor.MustParse("0.05")
	fmt.Println(d.Cmp(e))
	fmt.Println(d.Cmp(d))
	fmt.Println(e.Cmp(d))
	// Output:
	// -1
	// 0
	// 1
}

func ExampleFixedPoint_Ratio() {
	fmt.Println(computor.MustParse("3.6").Ratio())
	fmt.Println(computor.MustParse("-0.25").Ratio())
	// Output:
	// 18 5
	// -1 4
}

func ExampleFixedPoint_Scale() {
	d := computor.MustParse("12.050")
	fmt.Println(d.Integer(), d.Fraction(), d.Scale(), d.Digits())
	// Output: 12 5 100 2
}

func ExampleFixedPoint_MarshalText() {
	b, _ := computor.MustParse("-1.50").MarshalText()
	fmt.Println(string(b))
	// Output: -1.5
}

func ExamplePolynomial_String() {
	p, _ := computor.NewPolynomial("X^2 + 4 = 5*X")
	fmt.Println(p)
	// Output: 4 * X^0 - 5 * X^1 + 1 * X^2 = 0
}
