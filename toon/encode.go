package toon

import "strings"

// Encode converts a document value to TOON text with default options.
func Encode(v *Value) string {
	out, _ := EncodeWithOptions(v, DefaultEncodeOptions())
	return out
}

// EncodeWithOptions converts a document value with custom options.
// Encoding's only failure class is invalid options.
func EncodeWithOptions(v *Value, opts EncodeOptions) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}
	e := &encoder{opts: opts, indent: strings.Repeat(" ", opts.Indent)}
	e.emitRoot(v)
	return e.sb.String(), nil
}

type encoder struct {
	sb     strings.Builder
	opts   EncodeOptions
	indent string
	wrote  bool
}

// line appends one output line at the given depth. The prefix, if any, is
// the dash marker for list items and counts toward the content's alignment.
func (e *encoder) line(depth int, prefix, text string) {
	if e.wrote {
		e.sb.WriteString(e.opts.LineTerminator)
	}
	e.wrote = true
	for i := 0; i < depth; i++ {
		e.sb.WriteString(e.indent)
	}
	e.sb.WriteString(prefix)
	e.sb.WriteString(text)
}

// emitRoot dispatches on the root kind the same way the decoder's entry
// does, in reverse: object fields at depth zero, a bare-header array, or a
// single primitive line. An empty object encodes to empty text.
func (e *encoder) emitRoot(v *Value) {
	if v == nil {
		e.line(0, "", "null")
		return
	}
	switch v.kind {
	case KindObject:
		e.emitObjectBody(v, 0)
	case KindArray:
		e.emitArray("", v, 0, "")
	default:
		e.line(0, "", formatPrimitive(v, e.opts.Delimiter))
	}
}

// emitObjectBody emits each field of an object at the given depth.
func (e *encoder) emitObjectBody(v *Value, depth int) {
	for _, f := range v.objVal {
		e.emitKeyValue(v.objVal, f.Key, f.Value, depth, "")
	}
}

// emitKeyValue emits one key-value pair. The optional line prefix is how
// a list item's first property shares the dash line; a prefixed line's
// children sit one extra level deep to stay aligned under it.
func (e *encoder) emitKeyValue(scope []Field, key string, val *Value, depth int, prefix string) {
	if folded, terminal, ok := foldChain(scope, key, val, e.opts); ok {
		key, val = folded, terminal
	}

	childDepth := depth + 1
	if prefix != "" {
		childDepth = depth + 2
	}

	switch val.Kind() {
	case KindArray:
		e.emitArray(key, val, depth, prefix)
	case KindObject:
		e.line(depth, prefix, formatKey(key)+":")
		if val.Len() > 0 {
			e.emitObjectBody(val, childDepth)
		}
	default:
		e.line(depth, prefix, formatKey(key)+": "+formatPrimitive(val, e.opts.Delimiter))
	}
}

// formatKey emits a key bare when it is a valid identifier, quoted and
// escaped otherwise.
func formatKey(key string) string {
	if isBareKey(key) {
		return key
	}
	return "\"" + escapeString(key) + "\""
}
