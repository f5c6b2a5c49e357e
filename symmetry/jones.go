// SPDX-License-Identifier: MIT

package symmetry

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvsym/mat3"
)

// ParseAffine parses a Jones-faithful triplet such as "x-y,2x,-z+1/2" into
// the real affine map x ↦ W·x + w. Coefficients may be integers, decimals or
// fractions ("2x", "1/3", "0.25"); whitespace is ignored.
func ParseAffine(s string) (mat3.Mat, mat3.Vec, error) {
	var (
		w   mat3.Mat
		off mat3.Vec
	)
	parts := strings.Split(strings.ToLower(strings.Join(strings.Fields(s), "")), ",")
	if len(parts) != 3 {
		return w, off, fmt.Errorf("symmetry.ParseAffine: %q: %w", s, ErrJonesSyntax)
	}
	for row, p := range parts {
		coeffs, c, err := parseComponent(p)
		if err != nil {
			return w, off, fmt.Errorf("symmetry.ParseAffine: %q: %w", s, err)
		}
		w[row] = coeffs
		off[row] = c
	}

	return w, off, nil
}

// ParseJones parses a Jones-faithful symbol into an Operation. The rotation
// part must be integral.
func ParseJones(s string) (Operation, error) {
	w, t, err := ParseAffine(s)
	if err != nil {
		return Operation{}, err
	}
	r, err := mat3.SnapToInt(w, 1e-12)
	if err != nil {
		return Operation{}, fmt.Errorf("symmetry.ParseJones: %q: %w", s, ErrNotInteger)
	}

	return Operation{Rotation: r, Translation: t}, nil
}

// MustParseJones is ParseJones for literals known to be valid.
func MustParseJones(s string) Operation {
	op, err := ParseJones(s)
	if err != nil {
		panic(err)
	}

	return op
}

// parseComponent splits one coordinate expression into signed terms.
func parseComponent(p string) (mat3.Vec, float64, error) {
	var (
		coeffs mat3.Vec
		c      float64
	)
	if p == "" {
		return coeffs, 0, ErrJonesSyntax
	}
	start := 0
	for i := 1; i <= len(p); i++ {
		if i < len(p) && p[i] != '+' && p[i] != '-' {
			continue
		}
		term := p[start:i]
		start = i
		axis, v, err := parseTerm(term)
		if err != nil {
			return coeffs, 0, err
		}
		if axis < 0 {
			c += v
		} else {
			coeffs[axis] += v
		}
	}

	return coeffs, c, nil
}

// parseTerm returns the variable index (or -1 for a constant) and the signed
// coefficient of one term.
func parseTerm(term string) (int, float64, error) {
	sign := 1.0
	switch {
	case strings.HasPrefix(term, "-"):
		sign, term = -1, term[1:]
	case strings.HasPrefix(term, "+"):
		term = term[1:]
	}
	if term == "" {
		return 0, 0, ErrJonesSyntax
	}

	axis := -1
	if last := term[len(term)-1]; last >= 'x' && last <= 'z' {
		axis = int(last - 'x')
		term = term[:len(term)-1]
		if term == "" {
			return axis, sign, nil
		}
		term = strings.TrimSuffix(term, "*")
	}

	v, err := parseNumber(term)
	if err != nil {
		return 0, 0, err
	}

	return axis, sign * v, nil
}

func parseNumber(s string) (float64, error) {
	num, den, isFrac := strings.Cut(s, "/")
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, ErrJonesSyntax
	}
	if !isFrac {
		return n, nil
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil || d == 0 {
		return 0, ErrJonesSyntax
	}

	return n / d, nil
}

// Jones formats op back into a Jones-faithful symbol with translations
// written as fractions of 12 where possible.
func (op Operation) Jones() string {
	var parts [3]string
	for row := 0; row < 3; row++ {
		var b strings.Builder
		for col := 0; col < 3; col++ {
			k := op.Rotation[row][col]
			if k == 0 {
				continue
			}
			switch {
			case k == -1:
				b.WriteByte('-')
			case k < 0:
				fmt.Fprintf(&b, "%d", k)
			case b.Len() > 0 && k == 1:
				b.WriteByte('+')
			case b.Len() > 0:
				fmt.Fprintf(&b, "+%d", k)
			case k != 1:
				fmt.Fprintf(&b, "%d", k)
			}
			b.WriteByte(byte('x' + col))
		}
		if t := op.Translation[row]; t != 0 {
			if b.Len() > 0 && t > 0 {
				b.WriteByte('+')
			}
			b.WriteString(formatFraction(t))
		}
		if b.Len() == 0 {
			b.WriteByte('0')
		}
		parts[row] = b.String()
	}

	return strings.Join(parts[:], ",")
}

func formatFraction(t float64) string {
	n := t * 12
	if math.Abs(n-math.Round(n)) < 1e-9 {
		num, den := int(math.Round(n)), 12
		for _, p := range []int{2, 2, 3} {
			if num%p == 0 && den%p == 0 {
				num, den = num/p, den/p
			}
		}
		if den == 1 {
			return strconv.Itoa(num)
		}

		return fmt.Sprintf("%d/%d", num, den)
	}

	return strconv.FormatFloat(t, 'g', -1, 64)
}
