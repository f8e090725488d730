package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. It serializes as
// "YYYY-MM-DD" in JSON and maps to a DATE column.
type Date struct {
	time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar date.
func Today() Date {
	return DateOf(time.Now())
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time.AddDate(0, 0, n))
}

func (d Date) String() string {
	return d.Time.Format(dateLayout)
}

// MarshalJSON renders the date as a quoted "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts a quoted "YYYY-MM-DD" string.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Value implements driver.Valuer for persistence.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner, accepting DATE column representations.
func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case time.Time:
		*d = DateOf(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("unsupported date source type %T", src)
	}
}

func (d *Date) scanString(s string) error {
	// Some drivers return dates as full timestamps.
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("scan date %q: %w", s, err)
	}
	d.Time = t
	return nil
}
