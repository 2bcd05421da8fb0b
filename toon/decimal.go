package toon

import (
	"fmt"
	"math/big"
	"strings"
)

// Decimal represents an exact base-10 number: value = coef * 10^(-scale).
//
// It preserves every digit of a decimal literal, so values like 0.1 or a
// 19-significant-digit price survive a round trip without binary float
// round-off.
type Decimal struct {
	coef  *big.Int // unscaled coefficient
	scale int      // number of fractional digits (>= 0)
}

// DecimalFromInt64 creates a Decimal from an int64.
func DecimalFromInt64(v int64) Decimal {
	return Decimal{coef: big.NewInt(v), scale: 0}
}

// ParseDecimal parses a plain decimal literal such as "123.45", "-0.001"
// or an integral string of any length. Exponent notation is rejected.
func ParseDecimal(s string) (Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Decimal{}, fmt.Errorf("toon: empty decimal literal")
	}
	if strings.ContainsAny(s, "eE") {
		return Decimal{}, fmt.Errorf("toon: exponent not allowed in decimal literal: %s", s)
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
		if fracPart == "" || strings.Contains(fracPart, ".") {
			return Decimal{}, fmt.Errorf("toon: invalid decimal literal: %s", s)
		}
	}

	coef := new(big.Int)
	if _, ok := coef.SetString(intPart+fracPart, 10); !ok {
		return Decimal{}, fmt.Errorf("toon: invalid decimal literal: %s", s)
	}

	return Decimal{coef: coef, scale: len(fracPart)}, nil
}

// String returns the lossless base-10 representation.
func (d Decimal) String() string {
	if d.coef == nil {
		return "0"
	}

	coefStr := d.coef.String()
	if d.scale == 0 {
		return coefStr
	}

	negative := false
	if coefStr[0] == '-' {
		negative = true
		coefStr = coefStr[1:]
	}

	// Pad so at least one digit sits left of the point.
	for len(coefStr) < d.scale+1 {
		coefStr = "0" + coefStr
	}

	insertPos := len(coefStr) - d.scale
	result := coefStr[:insertPos] + "." + coefStr[insertPos:]

	if negative {
		result = "-" + result
	}
	return result
}

// Float64 converts the decimal to float64. Precision may be lost.
func (d Decimal) Float64() float64 {
	if d.coef == nil {
		return 0
	}
	num := new(big.Float).SetInt(d.coef)
	if d.scale > 0 {
		den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.scale)), nil)
		num.Quo(num, new(big.Float).SetInt(den))
	}
	f, _ := num.Float64()
	return f
}

// Int64 truncates the decimal to int64.
func (d Decimal) Int64() int64 {
	if d.coef == nil {
		return 0
	}
	if d.scale == 0 {
		return d.coef.Int64()
	}
	den := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(d.scale)), nil)
	q := new(big.Int).Quo(d.coef, den)
	return q.Int64()
}

// Cmp compares two decimals numerically.
// Returns -1 if d < other, 0 if equal, 1 if d > other.
func (d Decimal) Cmp(other Decimal) int {
	a := d.normalizedCoef(maxInt(d.scale, other.scale))
	b := other.normalizedCoef(maxInt(d.scale, other.scale))
	return a.Cmp(b)
}

// Equal reports numeric equality. 1.5 and 1.50 compare equal.
func (d Decimal) Equal(other Decimal) bool {
	return d.Cmp(other) == 0
}

// IsZero reports whether the value is numerically zero.
func (d Decimal) IsZero() bool {
	return d.coef == nil || d.coef.Sign() == 0
}

// Sign returns -1, 0 or 1.
func (d Decimal) Sign() int {
	if d.coef == nil {
		return 0
	}
	return d.coef.Sign()
}

// normalizedCoef rescales the coefficient to the given target scale.
func (d Decimal) normalizedCoef(targetScale int) *big.Int {
	coef := d.coef
	if coef == nil {
		coef = big.NewInt(0)
	}
	if targetScale == d.scale {
		return new(big.Int).Set(coef)
	}
	shift := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(targetScale-d.scale)), nil)
	return new(big.Int).Mul(coef, shift)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
