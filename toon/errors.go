package toon

import "fmt"

// SyntaxError reports a structural problem in the input text. Syntax errors
// are always fatal; there is no partial-document recovery.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("toon: syntax error at line %d: %s", e.Line, e.Msg)
}

// IndentationError reports leading whitespace that is not an exact multiple
// of the indent unit. Raised only under strict decoding.
type IndentationError struct {
	Line   int
	Indent int // measured leading whitespace, in space-equivalents
	Unit   int // configured indent unit
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("toon: bad indentation at line %d: %d is not a multiple of %d",
		e.Line, e.Indent, e.Unit)
}

// LengthMismatchError reports a declared/actual cardinality disagreement
// that the active policy treats as fatal.
type LengthMismatchError struct {
	Key      string
	Declared int
	Actual   int
	Line     int
}

func (e *LengthMismatchError) Error() string {
	key := e.Key
	if key == "" {
		key = "(root)"
	}
	return fmt.Sprintf("toon: length mismatch for %q at line %d: declared %d, found %d",
		key, e.Line, e.Declared, e.Actual)
}

// OptionError reports an invalid encode or decode configuration.
type OptionError struct {
	Msg string
}

func (e *OptionError) Error() string {
	return "toon: invalid option: " + e.Msg
}

// ============================================================
// Warnings
// ============================================================

// WarningKind classifies a recorded leniency event.
type WarningKind uint8

const (
	// WarnArrayLength is a declared/actual element or row count mismatch.
	WarnArrayLength WarningKind = iota
	// WarnRowWidth is a tabular row with more cells than declared fields.
	WarnRowWidth
)

// String returns the warning kind name.
func (k WarningKind) String() string {
	switch k {
	case WarnArrayLength:
		return "array-length"
	case WarnRowWidth:
		return "row-width"
	default:
		return "unknown"
	}
}

// Warning records a cardinality mismatch accepted under the warn policy.
// Warnings are appended to the caller-owned sink in encounter order.
type Warning struct {
	Kind     WarningKind
	Key      string
	Declared int
	Actual   int
	Line     int
}

// String formats the warning for diagnostics.
func (w Warning) String() string {
	key := w.Key
	if key == "" {
		key = "(root)"
	}
	return fmt.Sprintf("%s %q at line %d: declared %d, found %d",
		w.Kind, key, w.Line, w.Declared, w.Actual)
}
