package toon

import (
	"fmt"
	"strings"
)

// pathSep separates segments in folded (dotted) keys.
const pathSep = "."

// escapeString escapes a string for quoted output.
func escapeString(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString("\\\"")
		case '\\':
			sb.WriteString("\\\\")
		case '\n':
			sb.WriteString("\\n")
		case '\r':
			sb.WriteString("\\r")
		case '\t':
			sb.WriteString("\\t")
		default:
			if r < 0x20 {
				sb.WriteString(fmt.Sprintf("\\u%04x", r))
			} else {
				sb.WriteRune(r)
			}
		}
	}
	return sb.String()
}

// unescapeString reverses escapeString on the content between quotes.
// An unrecognized escape passes the escaped character through literally.
func unescapeString(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'u':
			if i+4 < len(s) {
				if r, ok := parseHex4(s[i+1 : i+5]); ok {
					sb.WriteRune(r)
					i += 4
					continue
				}
			}
			sb.WriteByte('u')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

func parseHex4(s string) (rune, bool) {
	var r rune
	for i := 0; i < 4; i++ {
		r <<= 4
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}

// isBareKey reports whether a key can be emitted unquoted: a leading letter
// or underscore followed by letters, digits, underscores or path separators.
func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		case r == '.':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// isBareSegment reports whether a string is a single bare key segment
// (no path separators). Fold candidates must satisfy this.
func isBareSegment(s string) bool {
	return isBareKey(s) && !strings.Contains(s, pathSep)
}

// findUnquoted returns the index of the first occurrence of ch outside
// double quotes, or -1. Backslash escapes inside quotes are honored.
func findUnquoted(s string, ch byte) int {
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case c == ch && !inQuote:
			return i
		}
	}
	return -1
}

// splitUnquoted splits s on every occurrence of delim outside double quotes.
func splitUnquoted(s string, delim byte) []string {
	var parts []string
	start := 0
	inQuote := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inQuote && c == '\\':
			i++
		case c == '"':
			inQuote = !inQuote
		case c == delim && !inQuote:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

// closingQuote returns the index of the unescaped closing quote for a string
// opening at s[start] == '"', or -1 if the quote never terminates.
func closingQuote(s string, start int) int {
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return i
		}
	}
	return -1
}
