package toon

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"
)

// This file is the thin native binding layer: it walks arbitrary Go values
// into and out of the document tree. The codec core itself only ever sees
// the tree.

// FromAny normalizes a Go value into a document value. Maps are emitted
// with sorted keys (Go maps carry no insertion order); struct fields keep
// declaration order and honor `toon:"name"` tags, falling back to `json`
// tags.
func FromAny(v any) (*Value, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return val, nil
	case Decimal:
		return Dec(val), nil
	case json.Number:
		return numberValue(string(val)), nil
	case time.Time:
		return Str(val.Format(time.RFC3339)), nil
	case bool:
		return Bool(val), nil
	case string:
		return Str(val), nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return fromUint(uint64(val)), nil
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return fromUint(val), nil
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromUint(u uint64) *Value {
	if u <= math.MaxInt64 {
		return Int(int64(u))
	}
	d, _ := ParseDecimal(fmt.Sprintf("%d", u))
	return Dec(d)
}

func fromReflect(rv reflect.Value) (*Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())

	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		arr := Array()
		for i := 0; i < rv.Len(); i++ {
			item, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			arr.Append(item)
		}
		return arr, nil

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("toon: cannot bind map with %s keys", rv.Type().Key())
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		obj := Object()
		for _, k := range keys {
			val, err := FromAny(rv.MapIndex(reflect.ValueOf(k)).Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}
			obj.objVal = append(obj.objVal, Field{Key: k, Value: val})
		}
		return obj, nil

	case reflect.Struct:
		return fromStruct(rv)
	}

	return nil, fmt.Errorf("toon: cannot bind %s value", rv.Kind())
}

func fromStruct(rv reflect.Value) (*Value, error) {
	rt := rv.Type()
	obj := Object()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		name, skip := fieldName(sf)
		if skip {
			continue
		}
		val, err := FromAny(rv.Field(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", sf.Name, err)
		}
		obj.objVal = append(obj.objVal, Field{Key: name, Value: val})
	}
	return obj, nil
}

func fieldName(sf reflect.StructField) (string, bool) {
	for _, tagKey := range []string{"toon", "json"} {
		tag, ok := sf.Tag.Lookup(tagKey)
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", true
		}
		if name != "" {
			return name, false
		}
		break
	}
	return sf.Name, false
}

// numberValue classifies a numeric token in precision order.
func numberValue(s string) *Value {
	v, err := parsePrimitive(s, 0)
	if err != nil {
		return Str(s)
	}
	switch v.Kind() {
	case KindInt, KindDecimal, KindFloat:
		return v
	}
	if d, err := ParseDecimal(s); err == nil {
		return Dec(d)
	}
	return Str(s)
}

// ToAny converts a document value back to plain Go data: nil, bool, int64,
// float64, string, []any and map[string]any. Decimals surface as
// json.Number so their digits survive a JSON re-bind.
func ToAny(v *Value) any {
	if v.IsNull() {
		return nil
	}
	switch v.kind {
	case KindBool:
		return v.boolVal
	case KindInt:
		return v.intVal
	case KindDecimal:
		return json.Number(v.decVal.String())
	case KindFloat:
		return v.floatVal
	case KindString:
		return v.strVal
	case KindArray:
		items := make([]any, len(v.arrVal))
		for i, item := range v.arrVal {
			items[i] = ToAny(item)
		}
		return items
	case KindObject:
		obj := make(map[string]any, len(v.objVal))
		for _, f := range v.objVal {
			obj[f.Key] = ToAny(f.Value)
		}
		return obj
	default:
		return nil
	}
}

// EncodeAny normalizes a native Go value and encodes it.
func EncodeAny(v any, opts EncodeOptions) (string, error) {
	doc, err := FromAny(v)
	if err != nil {
		return "", err
	}
	return EncodeWithOptions(doc, opts)
}

// DecodeTyped decodes TOON text into a typed Go value, composing Decode
// with the native binding layer.
func DecodeTyped[T any](text string, opts DecodeOptions) (T, error) {
	var out T
	doc, err := DecodeWithOptions(text, opts)
	if err != nil {
		return out, err
	}
	data, err := json.Marshal(ToAny(doc))
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, err
	}
	return out, nil
}
