package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Value is an optional scalar from the card database. Numbers keep the
// literal text they were written with.
type Value struct {
	Text   string
	Valid  bool
	Number bool
}

// String returns a set string value
func String(s string) Value {
	return Value{Text: s, Valid: true}
}

// Int returns a set integer value
func Int(n int) Value {
	return Value{Text: strconv.Itoa(n), Valid: true, Number: true}
}

// Blank is true for null, absent or empty-string values.
func (v Value) Blank() bool {
	return !v.Valid || v.Text == ""
}

// Falsy extends Blank with numeric zero.
func (v Value) Falsy() bool {
	if v.Blank() {
		return true
	}
	if v.Number {
		f, err := strconv.ParseFloat(v.Text, 64)
		return err == nil && f == 0
	}
	return false
}

func (v Value) String() string {
	return v.Text
}

// UnmarshalJSON accepts strings, numbers, booleans and null. false
// decodes as an unset value.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		// false carries no data
		*v = Value{}
		if b {
			*v = String("true")
		}
	case '[', '{':
		return fmt.Errorf("unsupported value %s", preview(data))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Value{Text: n.String(), Valid: true, Number: true}
	}
	return nil
}

func preview(data []byte) string {
	s := strings.Join(strings.Fields(string(data)), " ")
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
