package toon

import "strings"

// expandPaths rewrites dotted object keys into nested objects, recursively
// over arrays and objects. It is the decoder-side inverse of key folding.
func expandPaths(v *Value) *Value {
	if v == nil {
		return v
	}
	switch v.kind {
	case KindArray:
		items := make([]*Value, len(v.arrVal))
		for i, it := range v.arrVal {
			items[i] = expandPaths(it)
		}
		return Array(items...)
	case KindObject:
		return expandObject(v)
	default:
		return v
	}
}

func expandObject(v *Value) *Value {
	fields := v.objVal

	if !expansionSafe(fields) {
		// All-or-nothing per scope: keep every key literal so expansion
		// can never overwrite a value. Children still expand.
		out := make([]Field, len(fields))
		for i, f := range fields {
			out[i] = Field{Key: f.Key, Value: expandPaths(f.Value)}
		}
		return Object(out...)
	}

	obj := Object()
	for _, f := range fields {
		val := expandPaths(f.Value)
		if !strings.Contains(f.Key, pathSep) {
			obj.objVal = append(obj.objVal, Field{Key: f.Key, Value: val})
			continue
		}
		segs := strings.Split(f.Key, pathSep)
		cur := obj
		for _, seg := range segs[:len(segs)-1] {
			child := cur.Get(seg)
			if child == nil || child.kind != KindObject {
				child = Object()
				cur.objVal = append(cur.objVal, Field{Key: seg, Value: child})
			}
			cur = child
		}
		cur.objVal = append(cur.objVal, Field{Key: segs[len(segs)-1], Value: val})
	}
	return obj
}

// expansionSafe checks one object scope. Expansion is skipped for the whole
// scope if any proper prefix of a dotted key already exists as a literal
// sibling, or any sibling extends a dotted key with a further segment.
func expansionSafe(fields []Field) bool {
	keys := make(map[string]bool, len(fields))
	var dotted []string
	for _, f := range fields {
		keys[f.Key] = true
		if strings.Contains(f.Key, pathSep) {
			dotted = append(dotted, f.Key)
		}
	}
	if len(dotted) == 0 {
		return true
	}

	for _, dk := range dotted {
		segs := strings.Split(dk, pathSep)
		for _, seg := range segs {
			if seg == "" {
				return false
			}
		}
		prefix := segs[0]
		for i := 1; i < len(segs); i++ {
			if keys[prefix] {
				return false
			}
			prefix += pathSep + segs[i]
		}
		for k := range keys {
			if k != dk && strings.HasPrefix(k, dk+pathSep) {
				return false
			}
		}
	}
	return true
}
