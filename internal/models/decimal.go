// Package models - nullable numeric type for financial figures
package models

import (
	"bytes"
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Decimal is a nullable numeric column. Financial figures are frequently
// "not reported": JSON null, an absent key, and an empty string all map to
// SQL NULL rather than zero.
type Decimal struct {
	Float64 float64
	Valid   bool
}

// Dec returns a valid Decimal holding v.
func Dec(v float64) Decimal {
	return Decimal{Float64: v, Valid: true}
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Valid = false
		return nil
	}

	// Forms sent by spreadsheet-backed admin forms: "" and quoted numbers
	if data[0] == '"' {
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("invalid numeric value %s", data)
		}
		if s == "" {
			d.Valid = false
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid numeric value %q", s)
		}
		d.Float64 = f
		d.Valid = true
		return nil
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid numeric value %s", data)
	}
	d.Float64 = f
	d.Valid = true
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Decimal) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(d.Float64, 'f', -1, 64)), nil
}

// Value implements the driver.Valuer interface
func (d Decimal) Value() (driver.Value, error) {
	if !d.Valid {
		return nil, nil
	}
	return d.Float64, nil
}

// Scan implements the sql.Scanner interface
func (d *Decimal) Scan(value interface{}) error {
	if value == nil {
		*d = Decimal{}
		return nil
	}

	switch v := value.(type) {
	case float64:
		*d = Decimal{Float64: v, Valid: true}
	case int64:
		*d = Decimal{Float64: float64(v), Valid: true}
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return err
		}
		*d = Decimal{Float64: f, Valid: true}
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*d = Decimal{Float64: f, Valid: true}
	default:
		return fmt.Errorf("cannot scan %T into Decimal", value)
	}
	return nil
}
