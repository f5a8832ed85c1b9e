package computor

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolynomial(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text       string
			wantDegree int
			wantCoefs  []string
		}{
			{"3", 0, []string{"3"}},
			{"3 = 3", 0, []string{"0"}},
			{"0 * X^2", 0, []string{"0"}},
			{"0*X + 4", 0, []string{"4"}},
			{"2*X + 4", 1, []string{"4", "2"}},
			{"X^2 + 1", 2, []string{"1", "0", "1"}},
			{"X^3 + 0*X^4", 3, []string{"0", "0", "0", "1"}},
			{"3*X^2 = 8*X^2 + X", 2, []string{"0", "-1", "-5"}},
			{"X^2 + X = X^2", 1, []string{"0", "1"}},
			{"0*X^300 + X = 1", 1, []string{"-1", "1"}},
		}
		for _, tt := range tests {
			p, err := NewPolynomial(tt.text)
			require.NoError(t, err, "NewPolynomial(%q)", tt.text)
			assert.Equal(t, tt.wantDegree, p.Degree(), "NewPolynomial(%q).Degree()", tt.text)
			if diff := cmp.Diff(parseAll(t, tt.wantCoefs...), p.Coefficients(), equalFixedPoint); diff != "" {
				t.Errorf("NewPolynomial(%q).Coefficients() mismatch (-want +got):\n%s", tt.text, diff)
			}
			assert.Equal(t, Unsolved, p.Outcome(), "NewPolynomial(%q).Outcome()", tt.text)
		}
	})

	t.Run("high degree", func(t *testing.T) {
		p, err := NewPolynomial("X^256 = 0")
		require.NoError(t, err)
		assert.Equal(t, 256, p.Degree())
		coefs := p.Coefficients()
		require.Len(t, coefs, 257)
		assert.Equal(t, NewFromInt64(1), coefs[256])
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			text    string
			wantErr error
		}{
			"empty":       {"", ErrEmptyInput},
			"power":       {"4*X^6.7", ErrInvalidPower},
			"large power": {"X^70000", ErrPowerTooLarge},
			"coefficient": {"3X", ErrInvalidCoefficient},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				p, err := NewPolynomial(tt.text)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, p)
			})
		}
	})
}

func TestNewPolynomialFromCoefficients(t *testing.T) {
	p := NewPolynomialFromCoefficients()
	assert.Equal(t, 0, p.Degree())
	assert.Equal(t, []FixedPoint{{}}, p.Coefficients())

	coefs := parseAll(t, "1", "2", "0")
	p = NewPolynomialFromCoefficients(coefs...)
	assert.Equal(t, 1, p.Degree())
	coefs[0] = MustParse("9")
	assert.Equal(t, MustParse("1"), p.Coefficients()[0], "coefficients are not copied")
}

func TestPolynomial_Coefficients(t *testing.T) {
	p, err := NewPolynomial("X^2 - 5*X + 4")
	require.NoError(t, err)
	coefs := p.Coefficients()
	coefs[0] = MustParse("100")
	assert.Equal(t, MustParse("4"), p.Coefficients()[0], "Coefficients() exposes internal state")
}

func TestPolynomial_Solve(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			text             string
			wantDegree       int
			wantOutcome      Outcome
			wantDiscriminant string // empty if absent
			wantSolutions    []string
			wantOK           bool
		}{
			{"2*X + 4", 1, Finite, "", []string{"-2"}, true},
			{"0*X + 4", 0, NoSolution, "", nil, false},
			{"X^2 - 2*X + 1", 2, Finite, "0", []string{"1"}, true},
			{"X^2 - 5*X + 4", 2, Finite, "9", []string{"1", "4"}, true},
			{"X^2 + 1", 2, NoRealSolution, "-4", []string{}, true},
			{"X = X", 0, AllReals, "", nil, false},
			{"42 = 0", 0, NoSolution, "", nil, false},
			{"5 * X^0 + 4 * X^1 = 4 * X^0", 1, Finite, "", []string{"-0.25"}, true},
			{"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0", 2, Finite, "164.8", []string{"0.905238990790589", "-0.475131463908869"}, true},
			{"X^2 - 1.5*X + 0.5625", 2, Finite, "0", []string{"0.75"}, true},
			{"X^2 - 0.3*X + 0.0225", 2, Finite, "0", []string{"0.15"}, true},
			{"4*X^2 - 6*X + 2.25", 2, Finite, "0", []string{"0.75"}, true},
			{"0*X^300 + X = 1", 1, Finite, "", []string{"1"}, true},
		}
		for _, tt := range tests {
			t.Run(tt.text, func(t *testing.T) {
				p, err := NewPolynomial(tt.text)
				require.NoError(t, err)
				require.NoError(t, p.Solve())
				assert.Equal(t, tt.wantDegree, p.Degree())
				assert.Equal(t, tt.wantOutcome, p.Outcome())

				delta, ok := p.Discriminant()
				if tt.wantDiscriminant == "" {
					assert.False(t, ok)
				} else {
					require.True(t, ok)
					assert.Equal(t, MustParse(tt.wantDiscriminant), delta)
				}

				got, ok := p.Solutions()
				require.Equal(t, tt.wantOK, ok)
				if !tt.wantOK {
					assert.Nil(t, got)
					return
				}
				assert.NotNil(t, got)
				if diff := cmp.Diff(parseAll(t, tt.wantSolutions...), got, equalFixedPoint); diff != "" {
					t.Errorf("Solutions() mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			text    string
			wantErr error
		}{
			"discriminant overflow": {"100000000*X^2 - 10000000000*X + 100000000", ErrMultiplicationOverflow},
			"cubic":                 {"X^3 - 1", ErrUnsupportedDegree},
			"power 256":             {"X^256 = 0", ErrUnsupportedDegree},
			"quintic":               {"  X^5 - 4.8 * X^2 + 6.6-2-1", ErrUnsupportedDegree},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				p, err := NewPolynomial(tt.text)
				require.NoError(t, err)
				err = p.Solve()
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, Unsolved, p.Outcome())
				_, ok := p.Discriminant()
				assert.False(t, ok)
				_, ok = p.Solutions()
				assert.False(t, ok)

				// Solving again reports the same error
				assert.Equal(t, err, p.Solve())
			})
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		p, err := NewPolynomial("X^2 - 5*X + 4")
		require.NoError(t, err)
		require.NoError(t, p.Solve())
		first, _ := p.Solutions()
		require.NoError(t, p.Solve())
		second, _ := p.Solutions()
		assert.Equal(t, first, second)
	})
}

func TestPolynomial_Solutions(t *testing.T) {
	p, err := NewPolynomial("X^2 - 5*X + 4")
	require.NoError(t, err)
	require.NoError(t, p.Solve())
	got, _ := p.Solutions()
	got[0] = MustParse("100")
	again, _ := p.Solutions()
	assert.Equal(t, MustParse("1"), again[0], "Solutions() exposes internal state")
}

func TestPolynomial_String(t *testing.T) {
	tests := []struct {
		text, want string
	}{
		{"X^2 - 5*X + 4", "4 * X^0 - 5 * X^1 + 1 * X^2 = 0"},
		{"5 * X^0 + 4 * X^1 - 9.3 * X^2 = 1 * X^0", "4 * X^0 + 4 * X^1 - 9.3 * X^2 = 0"},
		{"-X", "0 * X^0 - 1 * X^1 = 0"},
		{"-3", "-3 * X^0 = 0"},
		{"X = X", "0 * X^0 = 0"},
		{"0.50 * X^2 = 0.25", "-0.25 * X^0 + 0 * X^1 + 0.5 * X^2 = 0"},
	}
	for _, tt := range tests {
		p, err := NewPolynomial(tt.text)
		require.NoError(t, err, "NewPolynomial(%q)", tt.text)
		assert.Equal(t, tt.want, p.String(), "NewPolynomial(%q).String()", tt.text)
	}
}
