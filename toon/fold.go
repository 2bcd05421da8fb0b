package toon

import "strings"

// foldChain collapses a chain of single-field wrapper objects rooted at key
// into one dotted key. It walks the chain with an early-exit predicate
// rather than backtracking: the walk stops at the configured max depth, at
// a segment that cannot be emitted bare, or where extending the path would
// collide with a literal dotted key present in the original scope.
//
// Returns ok=false unless at least two segments were gathered.
func foldChain(scope []Field, key string, val *Value, opts EncodeOptions) (string, *Value, bool) {
	if opts.Folding != FoldSafe {
		return "", nil, false
	}
	if !isBareSegment(key) {
		return "", nil, false
	}

	var literal []string
	for _, f := range scope {
		if strings.Contains(f.Key, pathSep) {
			literal = append(literal, f.Key)
		}
	}

	joined := key
	segments := 1
	cur := val

	for cur != nil && cur.kind == KindObject && len(cur.objVal) == 1 {
		if opts.MaxFoldDepth > 0 && segments >= opts.MaxFoldDepth {
			break
		}
		next := cur.objVal[0]
		if !isBareSegment(next.Key) {
			break
		}
		candidate := joined + pathSep + next.Key
		if foldCollides(candidate, literal) {
			break
		}
		joined = candidate
		segments++
		cur = next.Value
	}

	if segments < 2 {
		return "", nil, false
	}
	return joined, cur, true
}

// foldCollides reports whether a candidate dotted path collides with any
// literal dotted key: equal paths, or one a segment-prefix of the other.
func foldCollides(candidate string, literal []string) bool {
	for _, l := range literal {
		if l == candidate ||
			strings.HasPrefix(l, candidate+pathSep) ||
			strings.HasPrefix(candidate, l+pathSep) {
			return true
		}
	}
	return false
}
