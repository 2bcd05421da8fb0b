package toon

import (
	"strings"
)

// Decode parses TOON text into a document value with default options.
func Decode(text string) (*Value, error) {
	return DecodeWithOptions(text, DefaultDecodeOptions())
}

// DecodeWithOptions parses TOON text with full options.
func DecodeWithOptions(text string, opts DecodeOptions) (*Value, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	unit := opts.Indent
	if unit == 0 {
		unit = detectIndentUnit(text)
	}

	lines, err := scanLines(text, unit, opts.Strict)
	if err != nil {
		return nil, err
	}

	d := &decoder{lines: lines, opts: opts}
	root, err := d.parseDocument()
	if err != nil {
		return nil, err
	}

	if opts.Expansion == ExpandSafe {
		root = expandPaths(root)
	}
	return root, nil
}

// decoder is a recursive-descent parser over depth-tagged lines.
type decoder struct {
	lines []parsedLine
	pos   int
	opts  DecodeOptions
}

func (d *decoder) peek() *parsedLine {
	if d.pos >= len(d.lines) {
		return nil
	}
	return &d.lines[d.pos]
}

// parseDocument dispatches on the root form: empty input is an empty
// object, a bare array header is a root array, a single line without a
// key is a root primitive, anything else is a root object.
func (d *decoder) parseDocument() (*Value, error) {
	if len(d.lines) == 0 {
		return Object(), nil
	}

	first := d.lines[0]

	if hdr, ok := parseArrayHeader(first.content, first.num); ok && hdr.key == "" {
		d.pos++
		v, err := d.parseArray(hdr, first.depth)
		if err != nil {
			return nil, err
		}
		if d.opts.Strict {
			if ln := d.peek(); ln != nil {
				return nil, &SyntaxError{Line: ln.num, Msg: "unexpected content after root array"}
			}
		}
		return v, nil
	}

	if len(d.lines) == 1 && findUnquoted(first.content, ':') < 0 {
		return parsePrimitive(first.content, first.num)
	}

	return d.parseObject(first.depth)
}

// parseObject consumes lines at exactly the given depth into an object.
// A shallower line ends the block; depth is the only block terminator.
// Deeper lines are defensively skipped when lenient, fatal when strict.
func (d *decoder) parseObject(depth int) (*Value, error) {
	obj := Object()
	for {
		ln := d.peek()
		if ln == nil || ln.depth < depth {
			return obj, nil
		}
		if ln.depth > depth {
			if d.opts.Strict {
				return nil, &SyntaxError{Line: ln.num, Msg: "unexpected indented line"}
			}
			d.pos++
			continue
		}
		if err := d.parseMember(obj, depth); err != nil {
			return nil, err
		}
	}
}

// parseMember parses the line at the cursor as one key-value pair.
func (d *decoder) parseMember(obj *Value, depth int) error {
	ln := d.lines[d.pos]
	d.pos++
	return d.parseMemberContent(obj, ln.content, depth, ln.num)
}

// parseMemberContent parses one object member from content sitting at the
// given depth. The cursor is already past the content's own line, so any
// multi-line body starts at the current cursor. The same routine serves
// ordinary object lines and the first property on a list-item dash line.
func (d *decoder) parseMemberContent(obj *Value, content string, depth, num int) error {
	if hdr, ok := parseArrayHeader(content, num); ok {
		if hdr.key == "" {
			return &SyntaxError{Line: num, Msg: "array header without key"}
		}
		v, err := d.parseArray(hdr, depth)
		if err != nil {
			return err
		}
		return d.addField(obj, hdr.key, v, num)
	}

	idx := findUnquoted(content, ':')
	if idx < 0 {
		return &SyntaxError{Line: num, Msg: "missing colon"}
	}

	key, err := parseKeyToken(content[:idx], num)
	if err != nil {
		return err
	}

	rest := strings.TrimSpace(content[idx+1:])

	var val *Value
	if rest != "" {
		val, err = parsePrimitive(rest, num)
		if err != nil {
			return err
		}
	} else if ln := d.peek(); ln != nil && ln.depth > depth {
		val, err = d.parseObject(depth + 1)
		if err != nil {
			return err
		}
	} else {
		val = Object()
	}

	return d.addField(obj, key, val, num)
}

// parseKeyToken interprets the text before a colon as a key.
func parseKeyToken(s string, num int) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &SyntaxError{Line: num, Msg: "empty key"}
	}
	if s[0] == '"' {
		end := closingQuote(s, 0)
		if end < 0 {
			return "", &SyntaxError{Line: num, Msg: "unterminated quote"}
		}
		if end != len(s)-1 {
			return "", &SyntaxError{Line: num, Msg: "unexpected characters after quoted key"}
		}
		return unescapeString(s[1:end]), nil
	}
	return s, nil
}

func (d *decoder) addField(obj *Value, key string, val *Value, num int) error {
	if obj.Has(key) {
		return &SyntaxError{Line: num, Msg: "duplicate key " + key}
	}
	obj.objVal = append(obj.objVal, Field{Key: key, Value: val})
	return nil
}

// ============================================================
// Arrays
// ============================================================

// parseArray decodes an array body for a header whose line sat at depth.
func (d *decoder) parseArray(h *arrayHeader, depth int) (*Value, error) {
	if h.hasInline {
		if h.fields != nil {
			return nil, &SyntaxError{Line: h.line, Msg: "tabular header with inline values"}
		}
		return d.parseInline(h)
	}

	// Declared length zero: empty array, no body consumed.
	if h.declared == 0 {
		return Array(), nil
	}

	if h.fields != nil {
		return d.parseTabular(h, depth)
	}
	return d.parseList(h, depth)
}

// parseInline decodes delimiter-joined values on the header line itself.
func (d *decoder) parseInline(h *arrayHeader) (*Value, error) {
	arr := Array()
	for _, cell := range splitUnquoted(h.inline, h.delim[0]) {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			arr.Append(Null())
			continue
		}
		v, err := parsePrimitive(cell, h.line)
		if err != nil {
			return nil, err
		}
		arr.Append(v)
	}
	if err := d.lengthMismatch(WarnArrayLength, h.key, h.declared, arr.Len(), h.line); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseTabular decodes up to the declared number of consecutive rows one
// level deeper, zipping cells positionally against the header's fields.
// Short rows leave trailing fields absent; that alone is not an error.
func (d *decoder) parseTabular(h *arrayHeader, depth int) (*Value, error) {
	arr := Array()
	rowDepth := depth + 1

	for arr.Len() < h.declared {
		ln := d.peek()
		if ln == nil || ln.depth != rowDepth {
			break
		}
		d.pos++

		cells := splitUnquoted(ln.content, h.delim[0])
		if len(cells) > len(h.fields) {
			if err := d.lengthMismatch(WarnRowWidth, h.key, len(h.fields), len(cells), ln.num); err != nil {
				return nil, err
			}
			cells = cells[:len(h.fields)]
		}

		row := Object()
		for i, cell := range cells {
			cell = strings.TrimSpace(cell)
			var v *Value
			if cell == "" {
				v = Null()
			} else {
				var err error
				v, err = parsePrimitive(cell, ln.num)
				if err != nil {
					return nil, err
				}
			}
			row.objVal = append(row.objVal, Field{Key: h.fields[i], Value: v})
		}
		arr.Append(row)
	}

	if err := d.lengthMismatch(WarnArrayLength, h.key, h.declared, arr.Len(), h.line); err != nil {
		return nil, err
	}
	return arr, nil
}

// parseList decodes dash-prefixed items one level deeper. Parsing stops
// the instant it meets a line at or above the header's depth, a non-dash
// line, or a dash line once the declared count is reached: sibling keys
// and sibling objects following a list are never absorbed into the last
// item.
func (d *decoder) parseList(h *arrayHeader, depth int) (*Value, error) {
	arr := Array()
	itemDepth := depth + 1

	for arr.Len() < h.declared {
		ln := d.peek()
		if ln == nil || ln.depth != itemDepth || !isDashLine(ln.content) {
			break
		}
		item, err := d.parseListItem(itemDepth)
		if err != nil {
			return nil, err
		}
		arr.Append(item)
	}

	if err := d.lengthMismatch(WarnArrayLength, h.key, h.declared, arr.Len(), h.line); err != nil {
		return nil, err
	}
	return arr, nil
}

func isDashLine(content string) bool {
	return content == "-" || strings.HasPrefix(content, "- ")
}

// parseListItem decodes one dash item. The remainder after the dash is one
// of: a nested bare array header; nothing, with the item's properties on
// following lines; a first property sharing the dash line, with later
// properties on following lines; or a bare primitive.
//
// Content after the dash sits at a virtual depth one past the dash line
// itself (the "- " prefix stands in for an indent unit), so nested bodies
// align under the first property.
func (d *decoder) parseListItem(itemDepth int) (*Value, error) {
	ln := d.lines[d.pos]
	d.pos++

	rest := ""
	if ln.content != "-" {
		rest = strings.TrimSpace(ln.content[2:])
	}

	if hdr, ok := parseArrayHeader(rest, ln.num); ok && hdr.key == "" {
		return d.parseArray(hdr, itemDepth+1)
	}

	if rest == "" {
		return d.parseItemObject(nil, itemDepth, ln.num)
	}

	if _, ok := parseArrayHeader(rest, ln.num); ok || findUnquoted(rest, ':') >= 0 {
		obj := Object()
		if err := d.parseMemberContent(obj, rest, itemDepth+1, ln.num); err != nil {
			return nil, err
		}
		return d.parseItemObject(obj, itemDepth, ln.num)
	}

	return parsePrimitive(rest, ln.num)
}

// parseItemObject absorbs the remaining properties of a list-item object:
// lines one level deeper than the dash, plus non-dash lines back at the
// dash's own depth. The first property may already have come from the
// dash line itself.
func (d *decoder) parseItemObject(obj *Value, itemDepth, num int) (*Value, error) {
	if obj == nil {
		obj = Object()
	}
	for {
		ln := d.peek()
		if ln == nil || ln.depth < itemDepth {
			return obj, nil
		}
		switch {
		case ln.depth == itemDepth+1:
			if err := d.parseMember(obj, itemDepth+1); err != nil {
				return nil, err
			}
		case ln.depth > itemDepth+1:
			if d.opts.Strict {
				return nil, &SyntaxError{Line: ln.num, Msg: "unexpected indented line"}
			}
			d.pos++
		case !isDashLine(ln.content):
			if err := d.parseMember(obj, itemDepth); err != nil {
				return nil, err
			}
		default:
			return obj, nil
		}
	}
}

// ============================================================
// Length policy
// ============================================================

// lengthMismatch applies the configured cardinality policy. Strict mode
// and LengthError are fatal; LengthWarn records to the caller-owned sink;
// LengthSilent accepts the actual count.
func (d *decoder) lengthMismatch(kind WarningKind, key string, declared, actual, line int) error {
	if declared == actual {
		return nil
	}
	if d.opts.Strict || d.opts.LengthPolicy == LengthError {
		return &LengthMismatchError{Key: key, Declared: declared, Actual: actual, Line: line}
	}
	if d.opts.LengthPolicy == LengthWarn && d.opts.Warnings != nil {
		*d.opts.Warnings = append(*d.opts.Warnings, Warning{
			Kind:     kind,
			Key:      key,
			Declared: declared,
			Actual:   actual,
			Line:     line,
		})
	}
	return nil
}
