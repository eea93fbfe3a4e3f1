// Package datetime provides the TOML date-time scalar: an RFC 3339 date-time
// with optional offset, or a local date-time, date, or time.
package datetime

import (
	"errors"
	"fmt"
	"strings"
)

var ErrDatetime = errors.New("invalid datetime")

// Date is a TOML calendar date (no time, no offset).
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) valid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= daysIn(d.Year, d.Month)
}

func daysIn(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	}
	if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
		return 29
	}
	return 28
}

// Time is a TOML wall-clock time (no date, no offset).
type Time struct {
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

func (t Time) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
	if t.Nanosecond != 0 {
		frac := fmt.Sprintf("%09d", t.Nanosecond)
		frac = strings.TrimRight(frac, "0")
		s += "." + frac
	}
	return s
}

func (t Time) valid() bool {
	return t.Hour >= 0 && t.Hour < 24 &&
		t.Minute >= 0 && t.Minute < 60 &&
		t.Second >= 0 && t.Second <= 60 && // leap second
		t.Nanosecond >= 0 && t.Nanosecond < 1e9
}

// Offset is a UTC offset: either Z or a signed number of minutes.
type Offset struct {
	Z       bool
	Minutes int
}

func (o Offset) String() string {
	if o.Z {
		return "Z"
	}
	m := o.Minutes
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%02d:%02d", sign, m/60, m%60)
}

// Datetime is the TOML date-time union. Date and Time are each optional but
// not both absent; Offset requires both.
type Datetime struct {
	Date   *Date
	Time   *Time
	Offset *Offset
}

func FromDate(d Date) Datetime {
	return Datetime{Date: &d}
}

func FromTime(t Time) Datetime {
	return Datetime{Time: &t}
}

func (dt Datetime) IsLocalDate() bool {
	return dt.Date != nil && dt.Time == nil && dt.Offset == nil
}

func (dt Datetime) IsLocalTime() bool {
	return dt.Date == nil && dt.Time != nil
}

func (dt Datetime) IsLocalDatetime() bool {
	return dt.Date != nil && dt.Time != nil && dt.Offset == nil
}

func (dt Datetime) String() string {
	var b strings.Builder
	if dt.Date != nil {
		b.WriteString(dt.Date.String())
	}
	if dt.Time != nil {
		if dt.Date != nil {
			b.WriteByte('T')
		}
		b.WriteString(dt.Time.String())
	}
	if dt.Offset != nil {
		b.WriteString(dt.Offset.String())
	}
	return b.String()
}

// Parse decodes any of the four TOML date-time forms: offset date-time,
// local date-time, local date, and local time. A space is accepted as the
// date/time separator in addition to T.
func Parse(s string) (Datetime, error) {
	var dt Datetime
	rest := s
	if len(rest) >= 10 && rest[4] == '-' {
		d, err := parseDate(rest[:10])
		if err != nil {
			return dt, err
		}
		dt.Date = &d
		rest = rest[10:]
		if rest == "" {
			return dt, nil
		}
		if rest[0] != 'T' && rest[0] != 't' && rest[0] != ' ' {
			return dt, fmt.Errorf("%w: bad separator in %q", ErrDatetime, s)
		}
		rest = rest[1:]
	}
	if rest == "" {
		return dt, fmt.Errorf("%w: %q", ErrDatetime, s)
	}
	t, n, err := parseTime(rest)
	if err != nil {
		return dt, err
	}
	dt.Time = &t
	rest = rest[n:]
	if rest == "" {
		if dt.Date == nil && dt.Time == nil {
			return dt, fmt.Errorf("%w: %q", ErrDatetime, s)
		}
		return dt, nil
	}
	if dt.Date == nil {
		return dt, fmt.Errorf("%w: offset without date in %q", ErrDatetime, s)
	}
	o, err := parseOffset(rest)
	if err != nil {
		return dt, err
	}
	dt.Offset = &o
	return dt, nil
}

func parseDate(s string) (Date, error) {
	var d Date
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return d, fmt.Errorf("%w: bad date %q", ErrDatetime, s)
	}
	var ok bool
	if d.Year, ok = digits(s[0:4]); !ok {
		return d, fmt.Errorf("%w: bad year in %q", ErrDatetime, s)
	}
	if d.Month, ok = digits(s[5:7]); !ok {
		return d, fmt.Errorf("%w: bad month in %q", ErrDatetime, s)
	}
	if d.Day, ok = digits(s[8:10]); !ok {
		return d, fmt.Errorf("%w: bad day in %q", ErrDatetime, s)
	}
	if !d.valid() {
		return d, fmt.Errorf("%w: no such date %q", ErrDatetime, s)
	}
	return d, nil
}

// parseTime reads a time from the front of s and returns how many bytes it
// consumed, leaving any offset suffix for the caller.
func parseTime(s string) (Time, int, error) {
	var t Time
	if len(s) < 8 || s[2] != ':' || s[5] != ':' {
		return t, 0, fmt.Errorf("%w: bad time %q", ErrDatetime, s)
	}
	var ok bool
	if t.Hour, ok = digits(s[0:2]); !ok {
		return t, 0, fmt.Errorf("%w: bad hour in %q", ErrDatetime, s)
	}
	if t.Minute, ok = digits(s[3:5]); !ok {
		return t, 0, fmt.Errorf("%w: bad minute in %q", ErrDatetime, s)
	}
	if t.Second, ok = digits(s[6:8]); !ok {
		return t, 0, fmt.Errorf("%w: bad second in %q", ErrDatetime, s)
	}
	n := 8
	if n < len(s) && s[n] == '.' {
		n++
		start := n
		for n < len(s) && s[n] >= '0' && s[n] <= '9' {
			n++
		}
		if n == start {
			return t, 0, fmt.Errorf("%w: empty fraction in %q", ErrDatetime, s)
		}
		frac := s[start:n]
		if len(frac) > 9 {
			frac = frac[:9]
		}
		v, _ := digits(frac)
		for i := len(frac); i < 9; i++ {
			v *= 10
		}
		t.Nanosecond = v
	}
	if !t.valid() {
		return t, 0, fmt.Errorf("%w: no such time %q", ErrDatetime, s)
	}
	return t, n, nil
}

func parseOffset(s string) (Offset, error) {
	var o Offset
	if s == "Z" || s == "z" {
		o.Z = true
		return o, nil
	}
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' {
		return o, fmt.Errorf("%w: bad offset %q", ErrDatetime, s)
	}
	h, ok1 := digits(s[1:3])
	m, ok2 := digits(s[4:6])
	if !ok1 || !ok2 || h > 23 || m > 59 {
		return o, fmt.Errorf("%w: bad offset %q", ErrDatetime, s)
	}
	o.Minutes = h*60 + m
	if s[0] == '-' {
		o.Minutes = -o.Minutes
	}
	return o, nil
}

func digits(s string) (int, bool) {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + int(c-'0')
	}
	return v, true
}
