// Package toon implements TOON (Token-Oriented Object Notation), a compact,
// indentation-driven, line-oriented text codec for the JSON data model.
//
// TOON trades JSON's punctuation (braces, repeated quoting, repeated keys)
// for whitespace-based nesting, a once-declared tabular row schema for
// uniform object arrays, and optional explicit length markers. The goal is
// to cut token counts when payloads are consumed by language models while
// staying diffable and human-readable in logs.
//
// # Data Model
//
// Scalars: null, bool, int, decimal, float, string.
// Containers: array (ordered), object (ordered, key-unique).
//
// Integers, exact decimals and binary floats are distinct kinds so that a
// value's most precise representable form survives a round trip.
//
// # Syntax
//
// Object fields:     key: value
// Nested object:     key: followed by deeper-indented fields
// Inline array:      tags[3]: a,b,c
// Tabular array:     users[2]{id,name}: followed by one row per line
// List array:        items[2]: followed by "- " items one level deeper
// Length marker:     tags[#3]: a,b,c
// Delimiters:        comma (default, never shown), tab or pipe after the length
//
// # Example
//
//	users[2]{id,name,role}:
//	 1,Alice,admin
//	 2,Bob,user
//	config.retries: 3
//
// # Error Tolerance
//
// Structural syntax and indentation problems are always fatal. Array and row
// cardinality mismatches are policy-driven (silent, warn, error) because the
// notation's primary consumers, language models, routinely truncate or
// miscount output. Strict mode makes both indentation and cardinality exact.
package toon
