package toon

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
)

// ============================================================
// JSON Bridge
// ============================================================

// FromJSON parses JSON into a document value. Object key order is
// preserved, and numbers keep their class: integer literals become
// integers (overflow widens to decimal), plain fractional literals
// become exact decimals, exponent forms become binary floats.
func FromJSON(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := jsonValue(dec)
	if err != nil {
		return nil, fmt.Errorf("toon: invalid JSON: %w", err)
	}
	// Reject trailing content after the first value.
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("toon: invalid JSON: trailing content")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonFromToken(dec, tok)
}

func jsonFromToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return jsonNumber(t), nil
	case json.Delim:
		switch t {
		case '{':
			obj := Object()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				val, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				obj.objVal = append(obj.objVal, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return obj, nil
		case '[':
			arr := Array()
			for dec.More() {
				item, err := jsonValue(dec)
				if err != nil {
					return nil, err
				}
				arr.Append(item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return arr, nil
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

// jsonNumber classifies a JSON numeric literal in precision order.
func jsonNumber(n json.Number) *Value {
	s := string(n)
	if !strings.ContainsAny(s, ".eE") {
		if i, err := n.Int64(); err == nil {
			return Int(i)
		}
	}
	if d, err := ParseDecimal(s); err == nil {
		return Dec(d)
	}
	f, err := n.Float64()
	if err != nil {
		return Str(s)
	}
	return Float(f)
}

// ToJSON serializes a document value as compact JSON. Decimals are
// written digit-for-digit via json.Number; non-finite floats become
// null, matching JSON's representable range.
func ToJSON(v *Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v *Value) error {
	if v.IsNull() {
		buf.WriteString("null")
		return nil
	}
	switch v.kind {
	case KindBool:
		if v.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		fmt.Fprintf(buf, "%d", v.intVal)
	case KindDecimal:
		buf.WriteString(v.decVal.String())
	case KindFloat:
		data, err := json.Marshal(jsonFloat(v.floatVal))
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindString:
		data, err := json.Marshal(v.strVal)
		if err != nil {
			return err
		}
		buf.Write(data)
	case KindArray:
		buf.WriteByte('[')
		for i, item := range v.arrVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		buf.WriteByte('{')
		for i, f := range v.objVal {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(f.Key)
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("toon: cannot serialize %s value", v.kind)
	}
	return nil
}

func jsonFloat(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}
