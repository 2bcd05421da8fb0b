package toon

import "strings"

// parsedLine is one depth-tagged input line. Produced once by the scanner,
// immutable, consumed by the decoder.
type parsedLine struct {
	raw     string
	content string // text past the indent, right-trimmed
	depth   int
	num     int // 1-based line number in the original text
}

// scanLines splits text into depth-tagged lines. Blank and whitespace-only
// lines are dropped and do not affect depth numbering. A run of leading
// spaces counts literally; a leading tab counts as one full indent unit, so
// tabs and spaces are interchangeable at the level granularity.
func scanLines(text string, unit int, strict bool) ([]parsedLine, error) {
	if text == "" {
		return nil, nil
	}

	raw := strings.Split(text, "\n")
	lines := make([]parsedLine, 0, len(raw))

	for i, line := range raw {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := 0
		j := 0
		for ; j < len(line); j++ {
			switch line[j] {
			case ' ':
				indent++
			case '\t':
				indent += unit
			default:
				goto measured
			}
		}
	measured:
		if strict && indent%unit != 0 {
			return nil, &IndentationError{Line: i + 1, Indent: indent, Unit: unit}
		}

		lines = append(lines, parsedLine{
			raw:     line,
			content: strings.TrimRight(line[j:], " \t"),
			depth:   indent / unit,
			num:     i + 1,
		})
	}

	return lines, nil
}

// detectIndentUnit infers the indent unit from the first space-indented
// line. Tab-only or flat documents fall back to the default of 2.
func detectIndentUnit(text string) int {
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		spaces := 0
		for spaces < len(line) && line[spaces] == ' ' {
			spaces++
		}
		if spaces > 0 {
			return spaces
		}
	}
	return 2
}
