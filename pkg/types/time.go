package types

import (
	"fmt"
	"strconv"
	"time"
)

// UnixTime is a point in time carried as whole seconds since the Unix
// epoch. Order parameters quote the seconds as a string while other fields
// use a bare number; both decode. Re-encoding produces a bare integer.
type UnixTime time.Time

// NewUnixTime builds a UnixTime, truncated to whole seconds in UTC.
func NewUnixTime(t time.Time) UnixTime {
	return UnixTime(time.Unix(t.Unix(), 0).UTC())
}

// Time returns the underlying time.Time.
func (t UnixTime) Time() time.Time {
	return time.Time(t)
}

// Unix returns the value as epoch seconds.
func (t UnixTime) Unix() int64 {
	return time.Time(t).Unix()
}

// Equal reports whether two values name the same instant.
func (t UnixTime) Equal(o UnixTime) bool {
	return time.Time(t).Equal(time.Time(o))
}

func (t UnixTime) String() string {
	return time.Time(t).UTC().Format(time.RFC3339)
}

// MarshalJSON encodes the instant as bare epoch seconds.
func (t UnixTime) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, t.Unix(), 10), nil
}

// UnmarshalJSON decodes quoted or bare epoch seconds.
func (t *UnixTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	sec, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid unix timestamp %s", string(data))
	}
	*t = UnixTime(time.Unix(sec, 0).UTC())
	return nil
}

// Date is a civil date in YYYY-MM-DD form, as used by collection
// creation dates.
type Date time.Time

const dateLayout = "2006-01-02"

// NewDate builds a Date from a year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// Equal reports whether two dates name the same day.
func (d Date) Equal(o Date) bool {
	return time.Time(d).Equal(time.Time(o))
}

func (d Date) String() string {
	return time.Time(d).Format(dateLayout)
}

// MarshalJSON encodes the date as a quoted YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return strconv.AppendQuote(nil, d.String()), nil
}

// UnmarshalJSON decodes a quoted YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := time.Parse(`"`+dateLayout+`"`, string(data))
	if err != nil {
		return fmt.Errorf("invalid date %s: %v", string(data), err)
	}
	*d = Date(parsed)
	return nil
}
