package retail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Kind discriminates the possible shapes of a Record field.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	// KindRaw holds a nested object or array verbatim
	KindRaw
)

// Value is a single field of a Record. Numeric fields are kept as
// json.Number so that they render exactly as the API sent them.
type Value struct {
	kind Kind
	str  string
	num  json.Number
	b    bool
	raw  json.RawMessage
}

func Null() Value {
	return Value{kind: KindNull}
}

func String(s string) Value {
	return Value{kind: KindString, str: s}
}

func Number(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

func Raw(raw json.RawMessage) Value {
	return Value{kind: KindRaw, raw: raw}
}

func (v Value) Kind() Kind {
	return v.kind
}

// String renders the value for flat text output. Null renders as the
// empty string, nested values as their compact JSON form.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return v.num.String()
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindRaw:
		return string(v.raw)
	}
	return ""
}

func (v Value) Float64() (float64, error) {
	if v.kind != KindNumber {
		return 0, fmt.Errorf("value %q is not a number", v.String())
	}
	return v.num.Float64()
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return []byte(v.num.String()), nil
	case KindBool:
		return []byte(strconv.FormatBool(v.b)), nil
	case KindRaw:
		return v.raw, nil
	}
	return []byte("null"), nil
}

func valueFromRaw(raw json.RawMessage) (Value, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Value{}, fmt.Errorf("empty json value")
	}
	switch raw[0] {
	case '{', '[':
		return Raw(raw), nil
	case '"':
		var s string
		err := json.Unmarshal(raw, &s)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case 't', 'f':
		var b bool
		err := json.Unmarshal(raw, &b)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case 'n':
		return Null(), nil
	}
	return Number(json.Number(raw)), nil
}

// Record is a single price item: an ordered mapping from column name
// to Value. The upstream API enforces no schema, so records from the
// same response may expose different column sets. Column order is the
// order the columns appeared on the wire.
type Record struct {
	columns []string
	values  map[string]Value
}

// Set appends the column if it is new, or overwrites its value.
func (r *Record) Set(column string, v Value) {
	if r.values == nil {
		r.values = map[string]Value{}
	}
	_, found := r.values[column]
	if !found {
		r.columns = append(r.columns, column)
	}
	r.values[column] = v
}

func (r Record) Get(column string) (Value, bool) {
	v, found := r.values[column]
	return v, found
}

// Columns returns the column names in wire order. The slice is shared,
// callers should not modify it.
func (r Record) Columns() []string {
	return r.columns
}

func (r Record) Len() int {
	return len(r.columns)
}

// Select returns a new Record carrying exactly the given columns, in
// the given order. Columns absent on the receiver come out null.
func (r Record) Select(columns []string) Record {
	var out Record
	for _, column := range columns {
		v, found := r.Get(column)
		if !found {
			v = Null()
		}
		out.Set(column, v)
	}
	return out
}

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, column := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(column)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := r.values[column].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected a json object, got %v", tok)
	}

	r.columns = nil
	r.values = map[string]Value{}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		column, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected an object key, got %v", tok)
		}

		var raw json.RawMessage
		err = dec.Decode(&raw)
		if err != nil {
			return err
		}
		value, err := valueFromRaw(raw)
		if err != nil {
			return fmt.Errorf("column %s: %w", column, err)
		}
		r.Set(column, value)
	}

	// Consume the closing brace
	_, err = dec.Token()
	return err
}
