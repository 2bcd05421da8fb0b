package toon

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Bare token shapes. The numeric shape is canonical base-10 (no leading
// zeros, no bare leading dot), so "007" stays a string on both sides.
var (
	intRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)$`)
	decRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)\.[0-9]+$`)
	numRe = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

	// Structural token shapes that would be misread if left bare:
	// a lone [N] bracket group or {f,f} field group.
	bracketRe = regexp.MustCompile(`^\[#?[0-9]*[|\t]?\]$`)
	braceRe   = regexp.MustCompile(`^\{[^{}]*\}$`)
)

// parsePrimitive converts one trimmed, non-empty token into a scalar value.
// Numeric parsing runs in precision order: integer, exact decimal, binary
// float. Anything that matches no other rule is a bare string.
func parsePrimitive(token string, line int) (*Value, error) {
	if token[0] == '"' {
		end := closingQuote(token, 0)
		if end < 0 {
			return nil, &SyntaxError{Line: line, Msg: "unterminated quote"}
		}
		if end != len(token)-1 {
			return nil, &SyntaxError{Line: line, Msg: "unexpected characters after closing quote"}
		}
		return Str(unescapeString(token[1:end])), nil
	}

	switch token {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	}

	if intRe.MatchString(token) {
		if n, err := strconv.ParseInt(token, 10, 64); err == nil {
			return Int(n), nil
		}
		// Out of int64 range: keep every digit as an exact decimal.
		if d, err := ParseDecimal(token); err == nil {
			return Dec(d), nil
		}
	}

	if decRe.MatchString(token) {
		if d, err := ParseDecimal(token); err == nil {
			return Dec(d), nil
		}
	}

	if numRe.MatchString(token) {
		if f, err := strconv.ParseFloat(token, 64); err == nil {
			return Float(f), nil
		}
	}

	return Str(token), nil
}

// formatPrimitive renders a scalar value as one token.
func formatPrimitive(v *Value, delim Delimiter) string {
	if v.IsNull() {
		return "null"
	}
	switch v.kind {
	case KindBool:
		if v.boolVal {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.intVal, 10)
	case KindDecimal:
		return v.decVal.String()
	case KindFloat:
		return formatFloat(v.floatVal)
	case KindString:
		if needsQuoting(v.strVal, delim) {
			return "\"" + escapeString(v.strVal) + "\""
		}
		return v.strVal
	default:
		return "null"
	}
}

// formatFloat renders a float for round-trip precision. The notation has no
// non-finite token, so NaN and the infinities map to null.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// needsQuoting reports whether a string cannot be emitted as a bare token
// without changing meaning on decode.
func needsQuoting(s string, delim Delimiter) bool {
	if s == "" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s, string(delim)+`:"\`) {
		return true
	}
	for _, r := range s {
		if r < 0x20 {
			return true
		}
	}
	switch s {
	case "true", "false", "null", "-":
		return true
	}
	if numRe.MatchString(s) {
		return true
	}
	if strings.HasPrefix(s, "- ") {
		return true
	}
	if bracketRe.MatchString(s) || braceRe.MatchString(s) {
		return true
	}
	return false
}
