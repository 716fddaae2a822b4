package token

import (
	"errors"
	"testing"
)

func TestDecodeEscape(t *testing.T) {
	tests := []struct {
		in   string
		out  string
		n    int
		e    error
	}{
		{in: `"rest`, out: `"`, n: 1},
		{in: `\`, out: `\`, n: 1},
		{in: `/`, out: `/`, n: 1},
		{in: `b`, out: "\b", n: 1},
		{in: `f`, out: "\f", n: 1},
		{in: `n`, out: "\n", n: 1},
		{in: `r`, out: "\r", n: 1},
		{in: `t`, out: "\t", n: 1},
		{in: `u0041`, out: "A", n: 5},
		{in: `u00E9x`, out: "é", n: 5},
		{in: `u00e9x`, out: "é", n: 5},
		{in: ``, e: ErrUnexpectedEOF},
		{in: `u00`, e: ErrUnexpectedEOF},
		{in: `uzzzz`, e: ErrBadUnicode},
		{in: `q`, e: ErrBadEscape},
		{in: `x41`, e: ErrBadEscape},
	}
	for _, tc := range tests {
		out, n, err := DecodeEscape([]byte(tc.in))
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("DecodeEscape(%q): got %v, want %v", tc.in, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("DecodeEscape(%q): %v", tc.in, err)
			continue
		}
		if string(out) != tc.out || n != tc.n {
			t.Errorf("DecodeEscape(%q): got %q/%d, want %q/%d",
				tc.in, out, n, tc.out, tc.n)
		}
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{in: "", out: `""`},
		{in: "plain", out: `"plain"`},
		{in: `he"llo`, out: `"he\"llo"`},
		{in: `back\slash`, out: `"back\\slash"`},
		{in: "tab\there", out: `"tab\there"`},
		{in: "a\nb", out: `"a\nb"`},
		{in: "\x01", out: `"\u0001"`},
		{in: "é", out: `"é"`},
	}
	for _, tc := range tests {
		if got := Quote(tc.in); got != tc.out {
			t.Errorf("Quote(%q): got %s, want %s", tc.in, got, tc.out)
		}
	}
}

func TestNeedsQuote(t *testing.T) {
	if NeedsQuote("plain text") {
		t.Error("plain text should not need quoting")
	}
	for _, v := range []string{`a"b`, `a\b`, "a\tb", "\x00"} {
		if !NeedsQuote(v) {
			t.Errorf("NeedsQuote(%q): want true", v)
		}
	}
}
