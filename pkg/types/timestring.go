package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"regexp"
	"time"
)

// TimeString is a wall-clock time of day in "HH:MM" form.
// It is the canonical representation for slot start/end times both in
// the API and in the database (stored as text).
type TimeString string

var timeStringRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ErrInvalidTimeString is returned when a string is not a valid "HH:MM" time.
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// NewTimeString builds a TimeString from the clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString validates s and returns it as a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	if !timeStringRe.MatchString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(s), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsValid reports whether the value matches the HH:MM shape.
func (t TimeString) IsValid() bool {
	return timeStringRe.MatchString(string(t))
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	if !t.IsValid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	var hh, mm int
	if _, err := fmt.Sscanf(string(t), "%02d:%02d", &hh, &mm); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return hh*60 + mm, nil
}

// AddMinutes returns t shifted forward by d minutes.
// The result is clamped within the same day.
func (t TimeString) AddMinutes(d int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	total += d
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes leaves the day", ErrInvalidTimeString, string(t), d)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, err := t.Minutes()
	if err != nil {
		return false
	}
	b, err := other.Minutes()
	if err != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// Value implements driver.Valuer so TimeString can be bound directly
// in SQL queries.
func (t TimeString) Value() (driver.Value, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts TEXT and TIME column values.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		if len(v) >= 5 {
			v = v[:5]
		}
		parsed, err := NewTimeStringFromString(v)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.Scan(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}
