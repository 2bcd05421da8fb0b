package toon

import (
	"strconv"
	"strings"
)

// arrayHeader is the transient result of matching one line against the
// array-header grammar:
//
//	key? '[' '#'? length ('\t' | '|')? ']' ('{' field (',' field)* '}')? ':' inline?
//
// It is built while scanning one line, consumed immediately by array-body
// parsing, then discarded.
type arrayHeader struct {
	key          string
	declared     int
	delim        Delimiter
	fields       []string
	lengthMarker bool
	line         int
	inline       string // remainder after the colon, trimmed
	hasInline    bool
}

// parseArrayHeader matches content against the array-header grammar.
// A failed match is not an error: the line is simply not a header and is
// re-processed as an ordinary key by the caller.
func parseArrayHeader(content string, line int) (*arrayHeader, bool) {
	bracket := findUnquoted(content, '[')
	if bracket < 0 {
		return nil, false
	}
	if colon := findUnquoted(content, ':'); colon >= 0 && colon < bracket {
		// The colon ends the key before any bracket: ordinary key/value.
		return nil, false
	}

	key, ok := parseHeaderKey(content[:bracket])
	if !ok {
		return nil, false
	}

	h := &arrayHeader{key: key, delim: DelimComma, line: line}
	i := bracket + 1

	if i < len(content) && content[i] == '#' {
		h.lengthMarker = true
		i++
	}

	digitsStart := i
	for i < len(content) && content[i] >= '0' && content[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return nil, false
	}
	n, err := strconv.Atoi(content[digitsStart:i])
	if err != nil {
		return nil, false
	}
	h.declared = n

	if i < len(content) {
		switch content[i] {
		case '\t':
			h.delim = DelimTab
			i++
		case '|':
			h.delim = DelimPipe
			i++
		}
	}

	if i >= len(content) || content[i] != ']' {
		return nil, false
	}
	i++

	if i < len(content) && content[i] == '{' {
		rest := content[i+1:]
		closeIdx := findUnquoted(rest, '}')
		if closeIdx < 0 {
			return nil, false
		}
		spec := rest[:closeIdx]
		if strings.TrimSpace(spec) != "" {
			for _, f := range splitUnquoted(spec, ',') {
				f = strings.TrimSpace(f)
				if strings.HasPrefix(f, "\"") {
					end := closingQuote(f, 0)
					if end != len(f)-1 {
						return nil, false
					}
					f = unescapeString(f[1:end])
				}
				h.fields = append(h.fields, f)
			}
		}
		i += 1 + closeIdx + 1
	}

	if i >= len(content) || content[i] != ':' {
		return nil, false
	}
	i++

	if i < len(content) {
		h.inline = strings.TrimSpace(content[i:])
		h.hasInline = h.inline != ""
	}

	return h, true
}

// parseHeaderKey interprets the text before the bracket as an optional key.
func parseHeaderKey(s string) (string, bool) {
	if s == "" {
		return "", true
	}
	if s[0] == '"' {
		end := closingQuote(s, 0)
		if end != len(s)-1 {
			return "", false
		}
		return unescapeString(s[1:end]), true
	}
	if strings.ContainsAny(s, " \t") {
		return "", false
	}
	return s, true
}

// writeArrayHeader renders a header for the encoder. An empty key produces
// the bare root/list-item form.
func writeArrayHeader(sb *strings.Builder, key string, n int, fields []string, opts EncodeOptions) {
	if key != "" {
		sb.WriteString(formatKey(key))
	}
	sb.WriteByte('[')
	if opts.LengthMarker {
		sb.WriteByte('#')
	}
	sb.WriteString(strconv.Itoa(n))
	if opts.Delimiter != DelimComma {
		// Comma is the default and is never shown.
		sb.WriteString(string(opts.Delimiter))
	}
	sb.WriteByte(']')
	if fields != nil {
		sb.WriteByte('{')
		for i, f := range fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(formatKey(f))
		}
		sb.WriteByte('}')
	}
	sb.WriteByte(':')
}
