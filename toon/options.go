package toon

// Delimiter selects the cell separator for inline and tabular arrays.
type Delimiter string

const (
	// DelimComma is the default delimiter and is never written in headers.
	DelimComma Delimiter = ","
	// DelimTab writes a literal tab inside the array header brackets.
	DelimTab Delimiter = "\t"
	// DelimPipe writes a pipe inside the array header brackets.
	DelimPipe Delimiter = "|"
)

// FoldMode controls encoder key folding of single-field wrapper chains.
type FoldMode uint8

const (
	// FoldOff disables key folding.
	FoldOff FoldMode = iota
	// FoldSafe folds only when the dotted path cannot collide with a
	// literal dotted key in the same scope.
	FoldSafe
)

// ExpandMode controls decoder dotted-path expansion.
type ExpandMode uint8

const (
	// ExpandOff leaves dotted keys literal.
	ExpandOff ExpandMode = iota
	// ExpandSafe expands dotted keys unless any expansion in the scope
	// could overwrite a literal sibling.
	ExpandSafe
)

// LengthPolicy governs declared/actual cardinality mismatches when strict
// mode is off.
type LengthPolicy uint8

const (
	// LengthSilent accepts the actual count without any diagnostic.
	LengthSilent LengthPolicy = iota
	// LengthWarn accepts the actual count and records a Warning.
	LengthWarn
	// LengthError fails the decode even outside strict mode.
	LengthError
)

// EncodeOptions configures the encoder.
type EncodeOptions struct {
	// Indent is the number of spaces per nesting level. 0 means the
	// default of 2. Negative values are rejected.
	Indent int

	// Delimiter separates inline array values and tabular cells.
	// Empty means DelimComma.
	Delimiter Delimiter

	// LengthMarker emits the optional '#' before declared array lengths.
	LengthMarker bool

	// Folding enables dotted-key folding of single-field wrapper chains.
	Folding FoldMode

	// MaxFoldDepth caps the number of folded segments. 0 means unlimited.
	MaxFoldDepth int

	// LineTerminator joins output lines. Empty means "\n".
	LineTerminator string
}

// DefaultEncodeOptions returns the encoder defaults.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{
		Indent:         2,
		Delimiter:      DelimComma,
		LineTerminator: "\n",
	}
}

// validate normalizes defaults and rejects invalid settings.
func (o *EncodeOptions) validate() error {
	if o.Indent < 0 {
		return &OptionError{Msg: "negative indent width"}
	}
	if o.Indent == 0 {
		o.Indent = 2
	}
	switch o.Delimiter {
	case "":
		o.Delimiter = DelimComma
	case DelimComma, DelimTab, DelimPipe:
	default:
		return &OptionError{Msg: "unknown delimiter " + string(o.Delimiter)}
	}
	switch o.Folding {
	case FoldOff, FoldSafe:
	default:
		return &OptionError{Msg: "unknown fold mode"}
	}
	if o.MaxFoldDepth < 0 {
		return &OptionError{Msg: "negative max fold depth"}
	}
	switch o.LineTerminator {
	case "":
		o.LineTerminator = "\n"
	case "\n", "\r\n":
	default:
		return &OptionError{Msg: "unsupported line terminator"}
	}
	return nil
}

// DecodeOptions configures the decoder.
type DecodeOptions struct {
	// Indent is the expected number of spaces per nesting level.
	// 0 auto-detects from the first indented line (falling back to 2).
	// Negative values are rejected.
	Indent int

	// Strict requires exact indentation multiples and exact declared
	// cardinalities; violations are fatal.
	Strict bool

	// Expansion controls dotted-key path expansion of the decoded tree.
	Expansion ExpandMode

	// LengthPolicy governs cardinality mismatches when Strict is false.
	LengthPolicy LengthPolicy

	// Warnings, if non-nil, receives a Warning per mismatch accepted
	// under LengthWarn. The sink is appended to in encounter order and
	// is not safe for concurrent reuse across simultaneous decodes.
	Warnings *[]Warning
}

// DefaultDecodeOptions returns the decoder defaults.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{}
}

func (o *DecodeOptions) validate() error {
	if o.Indent < 0 {
		return &OptionError{Msg: "negative indent width"}
	}
	switch o.Expansion {
	case ExpandOff, ExpandSafe:
	default:
		return &OptionError{Msg: "unknown expansion mode"}
	}
	switch o.LengthPolicy {
	case LengthSilent, LengthWarn, LengthError:
	default:
		return &OptionError{Msg: "unknown length policy"}
	}
	return nil
}
