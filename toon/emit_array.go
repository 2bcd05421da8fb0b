package toon

import "strings"

// Array shapes, chosen in priority order: tabular when every element is an
// object over one shared primitive field set, inline when every element is
// a primitive, and the dash-item list for everything else.

// emitArray emits an array under an optional key. The header line sits at
// depth with the given prefix; the body sits one level deeper, or two when
// the header itself rides a dash line.
func (e *encoder) emitArray(key string, v *Value, depth int, prefix string) {
	bodyDepth := depth + 1
	if prefix != "" {
		bodyDepth = depth + 2
	}

	if fields, ok := tabularFields(v.arrVal); ok {
		e.emitTabular(key, v.arrVal, fields, depth, bodyDepth, prefix)
		return
	}
	if allPrimitive(v.arrVal) {
		e.emitInline(key, v.arrVal, depth, prefix)
		return
	}
	e.emitList(key, v.arrVal, depth, bodyDepth, prefix)
}

// tabularFields reports whether the elements form a tabular array and, if
// so, returns the field order of the first element. Field name matching is
// order-insensitive; emission preserves the first element's order.
func tabularFields(items []*Value) ([]string, bool) {
	if len(items) == 0 {
		return nil, false
	}
	first := items[0]
	if first.Kind() != KindObject || first.Len() == 0 {
		return nil, false
	}

	fields := make([]string, len(first.objVal))
	set := make(map[string]bool, len(first.objVal))
	for i, f := range first.objVal {
		if !f.Value.isPrimitive() {
			return nil, false
		}
		fields[i] = f.Key
		set[f.Key] = true
	}

	for _, item := range items[1:] {
		if item.Kind() != KindObject || len(item.objVal) != len(fields) {
			return nil, false
		}
		for _, f := range item.objVal {
			if !set[f.Key] || !f.Value.isPrimitive() {
				return nil, false
			}
		}
	}
	return fields, true
}

func allPrimitive(items []*Value) bool {
	for _, item := range items {
		if !item.isPrimitive() {
			return false
		}
	}
	return true
}

// emitTabular writes the field-list header and one delimiter-joined row
// per element. Fields an element lacks are written as null.
func (e *encoder) emitTabular(key string, items []*Value, fields []string, depth, bodyDepth int, prefix string) {
	var hdr strings.Builder
	writeArrayHeader(&hdr, key, len(items), fields, e.opts)
	e.line(depth, prefix, hdr.String())

	delim := string(e.opts.Delimiter)
	for _, item := range items {
		var row strings.Builder
		for i, f := range fields {
			if i > 0 {
				row.WriteString(delim)
			}
			cell := item.Get(f)
			if cell == nil {
				row.WriteString("null")
				continue
			}
			row.WriteString(formatPrimitive(cell, e.opts.Delimiter))
		}
		e.line(bodyDepth, "", row.String())
	}
}

// emitInline writes the header and the delimiter-joined values on one line.
// A zero-length array is just the header.
func (e *encoder) emitInline(key string, items []*Value, depth int, prefix string) {
	var sb strings.Builder
	writeArrayHeader(&sb, key, len(items), nil, e.opts)
	for i, item := range items {
		if i == 0 {
			sb.WriteByte(' ')
		} else {
			sb.WriteString(string(e.opts.Delimiter))
		}
		sb.WriteString(formatPrimitive(item, e.opts.Delimiter))
	}
	e.line(depth, prefix, sb.String())
}

// emitList writes the header and one dash-prefixed element per line one
// level deeper. Object items place their first property on the dash line
// and later properties on normally indented lines; array items recurse
// with the dash prefix.
func (e *encoder) emitList(key string, items []*Value, depth, bodyDepth int, prefix string) {
	var hdr strings.Builder
	writeArrayHeader(&hdr, key, len(items), nil, e.opts)
	e.line(depth, prefix, hdr.String())

	for _, item := range items {
		switch item.Kind() {
		case KindObject:
			if item.Len() == 0 {
				e.line(bodyDepth, "", "-")
				continue
			}
			first := item.objVal[0]
			e.emitKeyValue(item.objVal, first.Key, first.Value, bodyDepth, "- ")
			for _, f := range item.objVal[1:] {
				e.emitKeyValue(item.objVal, f.Key, f.Value, bodyDepth+1, "")
			}
		case KindArray:
			e.emitArray("", item, bodyDepth, "- ")
		default:
			e.line(bodyDepth, "- ", formatPrimitive(item, e.opts.Delimiter))
		}
	}
}
