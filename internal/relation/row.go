package relation

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"RelAlgDb/internal/common"
)

// Value is a cell: int64 or float64 for numbers, string for text.
type Value = any

// Row is an ordered mapping from column name to Value. The zero Row is empty
// and ready to use.
type Row struct {
	keys   []string
	values map[string]Value
}

// NewRow builds a row from alternating column names and values.
func NewRow(pairs ...any) Row {
	if len(pairs)%2 != 0 {
		panic("relation.NewRow: odd number of arguments")
	}
	var r Row
	for i := 0; i < len(pairs); i += 2 {
		r.Set(pairs[i].(string), pairs[i+1])
	}
	return r
}

// Set assigns a column. An existing column keeps its position.
func (r *Row) Set(column string, v Value) {
	if r.values == nil {
		r.values = make(map[string]Value)
	}
	if _, ok := r.values[column]; !ok {
		r.keys = append(r.keys, column)
	}
	r.values[column] = v
}

// Get returns the value of column and whether the row has it.
func (r Row) Get(column string) (Value, bool) {
	v, ok := r.values[column]
	return v, ok
}

// Keys returns the column names in insertion order.
func (r Row) Keys() []string {
	return slices.Clone(r.keys)
}

func (r Row) Len() int {
	return len(r.keys)
}

func (r Row) Clone() Row {
	var c Row
	for _, k := range r.keys {
		c.Set(k, r.values[k])
	}
	return c
}

// Merge returns a new row with r's columns followed by other's new columns.
// On a collision other's value wins and the column keeps r's position.
func (r Row) Merge(other Row) Row {
	m := r.Clone()
	for _, k := range other.keys {
		m.Set(k, other.values[k])
	}
	return m
}

// Key is a canonical serialization of the row: columns sorted by name, numbers
// normalised so 5 and 5.0 agree, text quoted so 5 and "5" differ.
func (r Row) Key() string {
	keys := r.Keys()
	slices.Sort(keys)

	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteByte(':')
		writeKeyValue(&sb, r.values[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func writeKeyValue(sb *strings.Builder, v Value) {
	switch val := v.(type) {
	case string:
		sb.WriteString(strconv.Quote(val))
	case nil:
		sb.WriteString("null")
	default:
		if i, ok := common.ToInt64(val); ok {
			sb.WriteString(strconv.FormatInt(i, 10))
			return
		}
		if f, ok := common.ToNumber(val); ok {
			// An integral float keys like the int64 it equals, so 5 and 5.0 agree.
			if f == math.Trunc(f) && f >= -(1<<63) && f < 1<<63 {
				sb.WriteString(strconv.FormatInt(int64(f), 10))
				return
			}
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			return
		}
		fmt.Fprintf(sb, "%v", val)
	}
}

// Equal reports structural equality, independent of column order.
func (r Row) Equal(other Row) bool {
	return r.Key() == other.Key()
}

func (r Row) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", k, r.values[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

// MarshalJSON writes the row as an object in column order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to encode column %s: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping its key order. Integral numbers become
// int64, other numbers float64.
func (r *Row) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("row must be a JSON object, got %v", tok)
	}

	*r = Row{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		column := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return err
		}
		v, err := jsonValue(tok)
		if err != nil {
			return fmt.Errorf("column %s: %w", column, err)
		}
		r.Set(column, v)
	}

	_, err = dec.Token()
	return err
}

func jsonValue(tok json.Token) (Value, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unsupported value %v (%T), only numbers and text are allowed", v, v)
	}
}
