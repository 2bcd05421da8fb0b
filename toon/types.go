package toon

import (
	"fmt"
)

// Kind represents TOON value kinds.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindDecimal
	KindFloat
	KindString
	KindArray
	KindObject
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindDecimal:
		return "decimal"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value represents a TOON document value.
type Value struct {
	kind Kind

	// Scalar values (only one valid based on kind)
	boolVal  bool
	intVal   int64
	decVal   Decimal
	floatVal float64
	strVal   string

	// Container values
	arrVal []*Value
	objVal []Field
}

// Field represents a key-value pair in an object.
type Field struct {
	Key   string
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Null creates a null value.
func Null() *Value {
	return &Value{kind: KindNull}
}

// Bool creates a boolean value.
func Bool(v bool) *Value {
	return &Value{kind: KindBool, boolVal: v}
}

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Dec creates an exact decimal value.
func Dec(v Decimal) *Value {
	return &Value{kind: KindDecimal, decVal: v}
}

// Float creates a binary float value.
func Float(v float64) *Value {
	return &Value{kind: KindFloat, floatVal: v}
}

// Str creates a string value.
func Str(v string) *Value {
	return &Value{kind: KindString, strVal: v}
}

// Array creates an array value.
func Array(items ...*Value) *Value {
	return &Value{kind: KindArray, arrVal: items}
}

// Object creates an object value from fields.
func Object(fields ...Field) *Value {
	return &Value{kind: KindObject, objVal: fields}
}

// F creates a Field for use in Object construction.
func F(key string, value *Value) Field {
	return Field{Key: key, Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value kind.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindNull
	}
	return v.kind
}

// IsNull returns true if this is a null value.
func (v *Value) IsNull() bool {
	return v == nil || v.kind == KindNull
}

// AsBool returns the boolean value.
func (v *Value) AsBool() (bool, error) {
	if v == nil {
		return false, fmt.Errorf("toon: nil value")
	}
	if v.kind != KindBool {
		return false, fmt.Errorf("toon: expected bool, got %s", v.kind)
	}
	return v.boolVal, nil
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("toon: nil value")
	}
	if v.kind != KindInt {
		return 0, fmt.Errorf("toon: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsDecimal returns the exact decimal value.
func (v *Value) AsDecimal() (Decimal, error) {
	if v == nil {
		return Decimal{}, fmt.Errorf("toon: nil value")
	}
	if v.kind != KindDecimal {
		return Decimal{}, fmt.Errorf("toon: expected decimal, got %s", v.kind)
	}
	return v.decVal, nil
}

// AsFloat returns the float value.
func (v *Value) AsFloat() (float64, error) {
	if v == nil {
		return 0, fmt.Errorf("toon: nil value")
	}
	if v.kind != KindFloat {
		return 0, fmt.Errorf("toon: expected float, got %s", v.kind)
	}
	return v.floatVal, nil
}

// AsStr returns the string value.
func (v *Value) AsStr() (string, error) {
	if v == nil {
		return "", fmt.Errorf("toon: nil value")
	}
	if v.kind != KindString {
		return "", fmt.Errorf("toon: expected string, got %s", v.kind)
	}
	return v.strVal, nil
}

// Items returns the array elements.
func (v *Value) Items() ([]*Value, error) {
	if v == nil {
		return nil, fmt.Errorf("toon: nil value")
	}
	if v.kind != KindArray {
		return nil, fmt.Errorf("toon: expected array, got %s", v.kind)
	}
	return v.arrVal, nil
}

// Fields returns the object fields in insertion order.
func (v *Value) Fields() ([]Field, error) {
	if v == nil {
		return nil, fmt.Errorf("toon: nil value")
	}
	if v.kind != KindObject {
		return nil, fmt.Errorf("toon: expected object, got %s", v.kind)
	}
	return v.objVal, nil
}

// Len returns the length of an array or object.
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.kind {
	case KindArray:
		return len(v.arrVal)
	case KindObject:
		return len(v.objVal)
	default:
		return 0
	}
}

// Get returns a field value by key from an object, or nil.
func (v *Value) Get(key string) *Value {
	if v == nil || v.kind != KindObject {
		return nil
	}
	for _, f := range v.objVal {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Has reports whether an object has a field with the given key.
func (v *Value) Has(key string) bool {
	if v == nil || v.kind != KindObject {
		return false
	}
	for _, f := range v.objVal {
		if f.Key == key {
			return true
		}
	}
	return false
}

// Index returns the i-th element of an array.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindArray {
		return nil, fmt.Errorf("toon: not an array")
	}
	if i < 0 || i >= len(v.arrVal) {
		return nil, fmt.Errorf("toon: index %d out of bounds (len=%d)", i, len(v.arrVal))
	}
	return v.arrVal[i], nil
}

// ============================================================
// Mutators
// ============================================================

// Set sets a field value on an object, replacing an existing key in place.
func (v *Value) Set(key string, val *Value) {
	if v.kind != KindObject {
		panic("toon: cannot set on non-object")
	}
	for i := range v.objVal {
		if v.objVal[i].Key == key {
			v.objVal[i].Value = val
			return
		}
	}
	v.objVal = append(v.objVal, Field{Key: key, Value: val})
}

// Append adds a value to an array.
func (v *Value) Append(val *Value) {
	if v.kind != KindArray {
		panic("toon: cannot append to non-array")
	}
	v.arrVal = append(v.arrVal, val)
}

// ============================================================
// Comparison
// ============================================================

// Equal reports deep equality, including numeric kind.
func (v *Value) Equal(other *Value) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() && other.IsNull()
	}
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.boolVal == other.boolVal
	case KindInt:
		return v.intVal == other.intVal
	case KindDecimal:
		return v.decVal.Equal(other.decVal)
	case KindFloat:
		return v.floatVal == other.floatVal
	case KindString:
		return v.strVal == other.strVal
	case KindArray:
		if len(v.arrVal) != len(other.arrVal) {
			return false
		}
		for i := range v.arrVal {
			if !v.arrVal[i].Equal(other.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.objVal) != len(other.objVal) {
			return false
		}
		for i := range v.objVal {
			if v.objVal[i].Key != other.objVal[i].Key {
				return false
			}
			if !v.objVal[i].Value.Equal(other.objVal[i].Value) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// isPrimitive reports whether the value is a scalar (non-container).
func (v *Value) isPrimitive() bool {
	if v == nil {
		return true
	}
	switch v.kind {
	case KindArray, KindObject:
		return false
	}
	return true
}
