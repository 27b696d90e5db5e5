package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// TriState - булево поле с явным "не задано".
// В базе хранится как nullable boolean, в JSON как null/true/false.
type TriState int8

const (
	Unset TriState = iota
	True
	False
)

// TriStateOf переводит bool в TriState
func TriStateOf(b bool) TriState {
	if b {
		return True
	}
	return False
}

func (t TriState) IsSet() bool {
	return t == True || t == False
}

// Bool возвращает значение и признак того, что оно задано
func (t TriState) Bool() (value bool, ok bool) {
	switch t {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

func (t TriState) String() string {
	switch t {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unset"
	}
}

func (TriState) GormDataType() string {
	return "boolean"
}

// Value реализует driver.Valuer
func (t TriState) Value() (driver.Value, error) {
	if v, ok := t.Bool(); ok {
		return v, nil
	}
	return nil, nil
}

// Scan реализует sql.Scanner. sqlite и mysql отдают булевы значения числами.
func (t *TriState) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = Unset
	case bool:
		*t = TriStateOf(v)
	case int64:
		*t = TriStateOf(v != 0)
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("tristate: unsupported type %T", src)
	}
	return nil
}

func (t *TriState) scanString(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "null":
		*t = Unset
	case "1", "t", "true":
		*t = True
	case "0", "f", "false":
		*t = False
	default:
		return fmt.Errorf("tristate: invalid value %q", s)
	}
	return nil
}

func (t TriState) MarshalJSON() ([]byte, error) {
	if v, ok := t.Bool(); ok {
		if v {
			return []byte("true"), nil
		}
		return []byte("false"), nil
	}
	return []byte("null"), nil
}

func (t *TriState) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case "null":
		*t = Unset
	case "true":
		*t = True
	case "false":
		*t = False
	default:
		return fmt.Errorf("tristate: expected true, false or null, got %s", data)
	}
	return nil
}
