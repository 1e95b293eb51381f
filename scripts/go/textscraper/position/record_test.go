package position

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Record
	}{
		{"three tokens", "1.0 2.0 3.0", Record{X: "1.0", Y: "2.0", Z: "3.0"}},
		{"extra tokens ignored", "1.0 2.0 3.0 4.0 junk", Record{X: "1.0", Y: "2.0", Z: "3.0"}},
		{"trailing space", "1.0 2.0 3.0 ", Record{X: "1.0", Y: "2.0", Z: "3.0"}},
		{"lf", "4.5 -1.2 0.0\n", Record{X: "4.5", Y: "-1.2", Z: "0.0"}},
		{"crlf", "4.5 -1.2 0.0\r\n", Record{X: "4.5", Y: "-1.2", Z: "0.0"}},
		{"text kept verbatim", "-0.0012 1e-3 +7", Record{X: "-0.0012", Y: "1e-3", Z: "+7"}},
		{"double space yields empty token", "1  2 3", Record{X: "1", Y: "", Z: "2"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.line)
			if err != nil {
				t.Fatalf("parse %q: %v", tc.line, err)
			}
			if got != tc.want {
				t.Fatalf("parse %q: got %#v want %#v", tc.line, got, tc.want)
			}
			if got.ID != "" {
				t.Fatalf("id should be unset, got %q", got.ID)
			}
		})
	}
}

func TestParseExactMatchesTrailingExtras(t *testing.T) {
	a, err := Parse("1 2 3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b, err := Parse("1 2 3 4 5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a != b {
		t.Fatalf("got %#v and %#v", a, b)
	}
}

func TestParseShortLine(t *testing.T) {
	for _, line := range []string{"", "\r\n", "5", "5 6", "5 6\n"} {
		_, err := Parse(line)
		if !errors.Is(err, ErrMalformedLine) {
			t.Fatalf("parse %q: want ErrMalformedLine, got %v", line, err)
		}
		var mle *MalformedLineError
		if !errors.As(err, &mle) {
			t.Fatalf("parse %q: not a *MalformedLineError: %T", line, err)
		}
		if mle.Tokens >= 3 {
			t.Fatalf("parse %q: tokens %d", line, mle.Tokens)
		}
	}
}

func TestRecordString(t *testing.T) {
	r := NewRecord("4.5", "-1.2", "0.0")
	if got := r.String(); got != "X:4.5 Y:-1.2 Z:0.0" {
		t.Fatalf("got %q", got)
	}
}
