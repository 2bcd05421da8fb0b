package toon

import "testing"

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "123.45", "123.45"},
		{"negative", "-0.001", "-0.001"},
		{"integral", "42", "42"},
		{"zero", "0", "0"},
		{"zero fraction", "0.00", "0.00"},
		{"leading zero fraction", "0.5", "0.5"},
		{"long", "12345678901234567890.123456789", "12345678901234567890.123456789"},
		{"negative integral", "-7", "-7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDecimal(tt.input)
			if err != nil {
				t.Fatalf("ParseDecimal(%q): %v", tt.input, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseDecimalRejects(t *testing.T) {
	for _, input := range []string{"", "1e5", "1E5", "1.", "1.2.3", "abc", "--1"} {
		if _, err := ParseDecimal(input); err == nil {
			t.Errorf("ParseDecimal(%q): expected error", input)
		}
	}
}

func TestDecimalEqual(t *testing.T) {
	a, _ := ParseDecimal("1.5")
	b, _ := ParseDecimal("1.50")
	c, _ := ParseDecimal("1.51")

	if !a.Equal(b) {
		t.Error("1.5 should equal 1.50")
	}
	if a.Equal(c) {
		t.Error("1.5 should not equal 1.51")
	}
	// Equality is numeric; the textual form still differs.
	if a.String() == b.String() {
		t.Error("1.5 and 1.50 should keep distinct representations")
	}
}

func TestDecimalCmp(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.5", "1.50", 0},
		{"1.5", "2", -1},
		{"-0.1", "0.1", -1},
		{"10", "9.99", 1},
		{"0", "0.000", 0},
	}
	for _, tt := range tests {
		a, _ := ParseDecimal(tt.a)
		b, _ := ParseDecimal(tt.b)
		if got := a.Cmp(b); got != tt.want {
			t.Errorf("Cmp(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDecimalConversions(t *testing.T) {
	d, _ := ParseDecimal("3.75")
	if got := d.Float64(); got != 3.75 {
		t.Errorf("Float64() = %v, want 3.75", got)
	}
	if got := d.Int64(); got != 3 {
		t.Errorf("Int64() = %d, want 3", got)
	}

	neg, _ := ParseDecimal("-2.9")
	if got := neg.Int64(); got != -2 {
		t.Errorf("Int64() = %d, want -2 (truncation)", got)
	}

	var zero Decimal
	if !zero.IsZero() || zero.Sign() != 0 || zero.String() != "0" {
		t.Error("zero-value Decimal should behave as 0")
	}
}

func TestDecimalFromInt64(t *testing.T) {
	d := DecimalFromInt64(-42)
	if d.String() != "-42" || d.Sign() != -1 {
		t.Errorf("DecimalFromInt64(-42) = %s", d.String())
	}
}
