package datetime

import (
	"errors"
	"testing"
)

func TestParseRoundTrip(t *testing.T) {
	cases := []string{
		"1979-05-27",
		"07:32:00",
		"07:32:00.999",
		"1979-05-27T07:32:00",
		"1979-05-27T00:32:00.5",
		"1979-05-27T07:32:00Z",
		"1979-05-27T00:32:00-07:00",
		"1979-05-27T00:32:00+13:45",
	}
	for _, c := range cases {
		dt, err := Parse(c)
		if err != nil {
			t.Errorf("Parse(%q): %v", c, err)
			continue
		}
		if got := dt.String(); got != c {
			t.Errorf("Parse(%q).String() = %q", c, got)
		}
	}
}

func TestParseSpaceSeparator(t *testing.T) {
	dt, err := Parse("1979-05-27 07:32:00Z")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if dt.Date == nil || dt.Time == nil || dt.Offset == nil || !dt.Offset.Z {
		t.Fatalf("wrong parts: %+v", dt)
	}
	if got := dt.String(); got != "1979-05-27T07:32:00Z" {
		t.Errorf("String() = %q", got)
	}
}

func TestParseParts(t *testing.T) {
	dt, err := Parse("1979-05-27T07:32:30.25-08:00")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if dt.Date.Year != 1979 || dt.Date.Month != 5 || dt.Date.Day != 27 {
		t.Errorf("date = %+v", dt.Date)
	}
	if dt.Time.Hour != 7 || dt.Time.Minute != 32 || dt.Time.Second != 30 {
		t.Errorf("time = %+v", dt.Time)
	}
	if dt.Time.Nanosecond != 250000000 {
		t.Errorf("nanosecond = %d", dt.Time.Nanosecond)
	}
	if dt.Offset.Minutes != -480 {
		t.Errorf("offset minutes = %d", dt.Offset.Minutes)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := []string{
		"",
		"1979-13-01",
		"1979-02-30",
		"2023-02-29",
		"24:00:00",
		"07:61:00",
		"1979-05-27X07:32:00",
		"1979-05-27T07:32:00+25:00",
		"07:32:00Z",
	}
	for _, c := range cases {
		if _, err := Parse(c); !errors.Is(err, ErrDatetime) {
			t.Errorf("Parse(%q) err = %v, want ErrDatetime", c, err)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	d, _ := Parse("1979-05-27")
	if !d.IsLocalDate() || d.IsLocalTime() || d.IsLocalDatetime() {
		t.Errorf("local date predicates wrong: %+v", d)
	}
	tm, _ := Parse("07:32:00")
	if !tm.IsLocalTime() {
		t.Errorf("local time predicate wrong: %+v", tm)
	}
	ldt, _ := Parse("1979-05-27T07:32:00")
	if !ldt.IsLocalDatetime() {
		t.Errorf("local datetime predicate wrong: %+v", ldt)
	}
}
