package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for price check dates
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component
type Date struct {
	Time time.Time
}

// NewDate keeps only the calendar day of t, as seen in t's location
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return NewDate(t), nil
	}
	return Date{}, fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidRequest, s)
}

// String returns the date in wire format
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(DateLayout)
}

// IsZero reports whether no date was given
func (d Date) IsZero() bool {
	return d.Time.IsZero()
}

// MarshalText implements encoding.TextMarshaler
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler; empty input leaves a zero Date
func (d *Date) UnmarshalText(text []byte) error {
	if len(strings.TrimSpace(string(text))) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
