package entity

import (
	"strings"
	"time"

	"alerts/internal/errors"
)

// DateLayout is the wire format for all calendar dates handled by the API.
const DateLayout = "01/02/2006"

// Date is a calendar date without a time component. It marshals to and from
// the MM/DD/YYYY format used by the data file and the API.
type Date struct {
	t time.Time
}

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time down to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a MM/DD/YYYY string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errors.Wrapf(err, "invalid date %q", s)
	}

	return Date{t: t}, nil
}

// Time returns the underlying time at midnight UTC.
func (d Date) Time() time.Time {
	return d.t
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// Equal reports whether two dates fall on the same calendar day.
func (d Date) Equal(other Date) bool {
	return d.t.Year() == other.t.Year() &&
		d.t.Month() == other.t.Month() &&
		d.t.Day() == other.t.Day()
}

// Age returns the number of whole calendar years between the date and now,
// floored. Someone born N years minus one day before now is N-1 years old.
func (d Date) Age(now time.Time) int {
	years := now.Year() - d.t.Year()
	if now.Month() < d.t.Month() ||
		(now.Month() == d.t.Month() && now.Day() < d.t.Day()) {
		years--
	}

	return years
}

func (d Date) String() string {
	return d.t.Format(DateLayout)
}

// MarshalJSON implements json.Marshaler using the MM/DD/YYYY layout.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for MM/DD/YYYY strings.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed

	return nil
}
