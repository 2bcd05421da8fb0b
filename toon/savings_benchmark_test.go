package toon

import (
	"fmt"
	"testing"
)

// TestSavingsVsJSON measures byte savings of the tabular form against the
// equivalent compact JSON for uniform datasets of growing size.
func TestSavingsVsJSON(t *testing.T) {
	for _, n := range []int{2, 20, 200} {
		t.Run(fmt.Sprintf("rows_%d", n), func(t *testing.T) {
			v := sampleUsersT(t, n)
			jsonBytes, err := ToJSON(v)
			if err != nil {
				t.Fatal(err)
			}
			text := Encode(v)

			savings := 100 * (1 - float64(len(text))/float64(len(jsonBytes)))
			t.Logf("JSON: %d bytes", len(jsonBytes))
			t.Logf("TOON: %d bytes", len(text))
			t.Logf("savings: %.1f%%", savings)

			if len(text) >= len(jsonBytes) {
				t.Errorf("tabular output (%d bytes) not smaller than JSON (%d bytes)", len(text), len(jsonBytes))
			}

			// The compact form must still decode to the same tree.
			back, err := Decode(text)
			if err != nil {
				t.Fatal(err)
			}
			if !back.Equal(v) {
				t.Error("compact output no longer decodes to the source tree")
			}
		})
	}
}

func sampleUsersT(t *testing.T, n int) *Value {
	t.Helper()
	arr := Array()
	for i := 0; i < n; i++ {
		arr.Append(Object(
			F("id", Int(int64(i+1))),
			F("name", Str(fmt.Sprintf("user-%03d", i+1))),
			F("active", Bool(i%2 == 0)),
			F("score", Dec(mustDecimal(t, fmt.Sprintf("%d.%02d", 10+i, i)))),
		))
	}
	return Object(F("users", arr))
}

func BenchmarkEncodeTabular(b *testing.B) {
	arr := Array()
	for i := 0; i < 100; i++ {
		arr.Append(Object(
			F("id", Int(int64(i))),
			F("name", Str(fmt.Sprintf("user-%03d", i))),
			F("active", Bool(i%2 == 0)),
		))
	}
	v := Object(F("users", arr))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Encode(v)
	}
}

func BenchmarkDecodeTabular(b *testing.B) {
	arr := Array()
	for i := 0; i < 100; i++ {
		arr.Append(Object(
			F("id", Int(int64(i))),
			F("name", Str(fmt.Sprintf("user-%03d", i))),
			F("active", Bool(i%2 == 0)),
		))
	}
	text := Encode(Object(F("users", arr)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(text); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeNested(b *testing.B) {
	text := "a:\n  b:\n    c[3]: 1,2,3\n  items[2]:\n    - id: 1\n      tags[2]: x,y\n    - id: 2\nz: done"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(text); err != nil {
			b.Fatal(err)
		}
	}
}
