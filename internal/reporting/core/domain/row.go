package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one record of a query result, keyed by column name.
// Cells hold string, int64, float64, time.Time or nil.
type RawRow map[string]any

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Text returns the cell as a trimmed string. Missing, nil and blank cells
// report ok=false.
func (r RawRow) Text(col string) (string, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return "", false
	}

	var s string
	switch t := v.(type) {
	case string:
		s = t
	case []byte:
		s = string(t)
	case fmt.Stringer:
		s = t.String()
	default:
		s = fmt.Sprint(t)
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	return s, true
}

// Number returns the cell as float64. Numeric text (e.g. a NUMERIC column
// delivered as bytes) is parsed with decimal precision before conversion.
func (r RawRow) Number(col string) (float64, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return 0, false
	}

	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case decimal.Decimal:
		return t.InexactFloat64(), true
	case string, []byte:
		s, _ := r.Text(col)
		d, err := decimal.NewFromString(s)
		if err != nil {
			return 0, false
		}
		return d.InexactFloat64(), true
	default:
		return 0, false
	}
}

// Date returns the cell as a UTC time. Date-only text is accepted.
func (r RawRow) Date(col string) (time.Time, bool) {
	v, ok := r[col]
	if !ok || v == nil {
		return time.Time{}, false
	}

	if t, ok := v.(time.Time); ok {
		if t.IsZero() {
			return time.Time{}, false
		}
		return t.UTC(), true
	}

	s, ok := r.Text(col)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
