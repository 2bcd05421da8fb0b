package toon

import "testing"

func decodeExpanded(t *testing.T, text string) *Value {
	t.Helper()
	v, err := DecodeWithOptions(text, DecodeOptions{Expansion: ExpandSafe})
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestExpandDottedKeys(t *testing.T) {
	got := decodeExpanded(t, "a.b.c: 1\na.b.d: 2\nx: 3")
	want := Object(
		F("a", Object(F("b", Object(
			F("c", Int(1)),
			F("d", Int(2)),
		)))),
		F("x", Int(3)),
	)
	if !got.Equal(want) {
		t.Errorf("got:\n%s\nwant:\n%s", Encode(got), Encode(want))
	}
}

func TestExpandOffByDefault(t *testing.T) {
	got, err := Decode("a.b: 1")
	if err != nil {
		t.Fatal(err)
	}
	if !got.Has("a.b") {
		t.Errorf("dotted key expanded without opting in: %s", Encode(got))
	}
}

func TestExpandUnsafeScopeStaysLiteral(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"literal prefix sibling", "a: 1\na.b: 2"},
		{"sibling extends dotted key", "a.b: 1\n\"a.b.c\": 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decodeExpanded(t, tt.text)
			// All-or-nothing: every key in the scope stays literal.
			for _, f := range mustFields(t, got) {
				if f.Value.Kind() == KindObject && f.Value.Len() > 0 {
					t.Errorf("key %q was expanded in an unsafe scope:\n%s", f.Key, Encode(got))
				}
			}
		})
	}
}

func TestExpandUnsafeScopeChildrenStillExpand(t *testing.T) {
	// The unsafe verdict applies per scope; nested scopes decide
	// independently.
	got := decodeExpanded(t, "a: 1\na.b: 2\nc:\n  d.e: 3")
	inner := got.Get("c").Get("d")
	if inner == nil || !inner.Get("e").Equal(Int(3)) {
		t.Errorf("nested scope did not expand:\n%s", Encode(got))
	}
	if !got.Has("a.b") {
		t.Errorf("unsafe scope lost its literal key:\n%s", Encode(got))
	}
}

func TestExpandInsideArrays(t *testing.T) {
	got := decodeExpanded(t, "items[2]:\n  - meta.id: 1\n  - meta.id: 2")
	items, _ := got.Get("items").Items()
	for i, item := range items {
		id := item.Get("meta").Get("id")
		if id == nil || !id.Equal(Int(int64(i+1))) {
			t.Errorf("item %d did not expand: %s", i, Encode(item))
		}
	}
}

func TestExpandMergesSharedPrefixes(t *testing.T) {
	// Shared intermediates merge; the first key fixes the position.
	got := decodeExpanded(t, "a.x: 1\nb: 2\na.y: 3")
	fields := mustFields(t, got)
	if len(fields) != 2 || fields[0].Key != "a" || fields[1].Key != "b" {
		t.Fatalf("got:\n%s", Encode(got))
	}
	a := got.Get("a")
	if !a.Get("x").Equal(Int(1)) || !a.Get("y").Equal(Int(3)) {
		t.Errorf("merged object wrong:\n%s", Encode(a))
	}
}

func TestFoldExpandDuality(t *testing.T) {
	// FoldSafe then ExpandSafe restores the original tree.
	v := Object(
		F("server", Object(F("tls", Object(F("enabled", Bool(true)))))),
		F("db", Object(
			F("host", Str("localhost")),
			F("port", Int(5432)),
		)),
	)
	text, err := EncodeWithOptions(v, EncodeOptions{Folding: FoldSafe})
	if err != nil {
		t.Fatal(err)
	}
	got := decodeExpanded(t, text)
	if !got.Equal(v) {
		t.Errorf("duality broken:\n%s\ndecoded:\n%s", text, Encode(got))
	}
}

func mustFields(t *testing.T, v *Value) []Field {
	t.Helper()
	fields, err := v.Fields()
	if err != nil {
		t.Fatal(err)
	}
	return fields
}
