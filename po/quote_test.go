package po

import (
	"testing"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"plain", "hello world", `"hello world"`},
		{"double quote", `say "hi"`, `"say \"hi\""`},
		{"backslash", `C:\path`, `"C:\\path"`},
		{"newline", "line one\nline two", `"line one\nline two"`},
		{"escaped quote in input", `\"`, `"\\\""`},
		{"backslash before n", `\n`, `"\\n"`},
		{"all together", "a\\\"b\n", `"a\\\"b\n"`},
		{"utf-8", "你好", `"你好"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quote(tt.in); got != tt.want {
				t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		`\`,
		`"`,
		"\n",
		`\\`,
		`\"`,
		"\\\n",
		"\"\n\"",
		`a\"b\\"c`,
		"trailing backslash \\",
		"multi\nline\n\"quoted\"\n\\escaped\\\n",
		`<span class="active">in string</span>`,
	}
	for _, in := range inputs {
		lit := Quote(in)
		got, err := Unquote(lit)
		if err != nil {
			t.Errorf("Unquote(%s): %v", lit, err)
			continue
		}
		if got != in {
			t.Errorf("round trip of %q gave %q (literal %s)", in, got, lit)
		}
	}
}

func TestUnquoteErrors(t *testing.T) {
	bad := []string{
		``,
		`"`,
		`abc`,
		`"abc`,
		`"a"b"`,
		`"abc\"`,
		`"\x"`,
	}
	for _, lit := range bad {
		if _, err := Unquote(lit); err == nil {
			t.Errorf("Unquote(%s) should fail", lit)
		}
	}
}

func TestUnquoteTabAndReturn(t *testing.T) {
	got, err := Unquote(`"a\tb\rc"`)
	if err != nil {
		t.Fatalf("Unquote: %v", err)
	}
	if got != "a\tb\rc" {
		t.Errorf("got %q", got)
	}
}
