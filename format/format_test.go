package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"t":    TOMLFormat,
		"toml": TOMLFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", in, got, want)
		}
	}

	_, err := ParseFormat("xml")
	if !errors.Is(err, ErrBadFormat) {
		t.Errorf("err = %v", err)
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range AllFormats() {
		var back Format
		if err := back.UnmarshalText([]byte(f.String())); err != nil {
			t.Errorf("round trip %v: %v", f, err)
			continue
		}
		if back != f {
			t.Errorf("round trip %v gave %v", f, back)
		}
	}
	if got := TOMLFormat.Suffix(); got != ".toml" {
		t.Errorf("suffix = %q", got)
	}
}
