package po

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTimezone(t *testing.T) {
	tests := []struct {
		offset int
		want   string
	}{
		{-60, "+0100"},
		{300, "-0500"},
		{90, "-0130"},
		{-330, "+0530"},
		{-765, "+1245"},
		{0, "-0000"},
	}
	for _, tt := range tests {
		if got := FormatTimezone(tt.offset); got != tt.want {
			t.Errorf("FormatTimezone(%d) = %s, want %s", tt.offset, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{
			name: "east of UTC",
			t:    time.Date(2021, time.January, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600)),
			want: "2021-01-02 03:04+0100",
		},
		{
			name: "west of UTC",
			t:    time.Date(2020, time.December, 31, 23, 59, 0, 0, time.FixedZone("EST", -5*3600)),
			want: "2020-12-31 23:59-0500",
		},
		{
			name: "half hour zone",
			t:    time.Date(2022, time.July, 9, 14, 30, 0, 0, time.FixedZone("IST", 5*3600+1800)),
			want: "2022-07-09 14:30+0530",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDate(tt.t); got != tt.want {
				t.Errorf("FormatDate = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestHeaderDefaults(t *testing.T) {
	now := time.Date(2021, time.January, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))
	h := NewHeader(nil, now)
	want := []string{
		"Project-Id-Version: PACKAGE VERSION\n",
		"Report-Msgid-Bugs-To: none\n",
		"POT-Creation-Date: 2021-01-02 03:04+0100\n",
		"PO-Revision-Date: 2021-01-02 03:04+0100\n",
		"Last-Translator: \n",
		"Language-Team: none\n",
		"MIME-Version: 1.0\n",
		"Content-Type: text/plain; charset=UTF-8\n",
		"Content-Transfer-Encoding: 8bit\n",
		"Plural-Forms: nplurals=INTEGER; plural=EXPRESSION;\n",
	}
	got := h.Lines()
	if len(got) != len(want) {
		t.Fatalf("got %d lines, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestHeaderOverridesKeepOrder(t *testing.T) {
	now := time.Date(2021, time.January, 2, 3, 4, 5, 0, time.UTC)
	created := time.Date(2019, time.May, 6, 7, 8, 0, 0, time.FixedZone("", -3*3600))
	overrides := map[string]any{
		PluralForms:         "nplurals=2; plural=(n != 1);",
		LastTranslator:      "Jiang Xin <worldhello.net@gmail.com>",
		POTCreationDate:     created,
		PORevisionDate:      "YEAR-MO-DA HO:MI+ZONE",
		ProjectIDVersion:    "",
		"X-Generator":       "ignored",
		"project-id-version": "ignored too",
	}
	h := NewHeader(overrides, now)
	lines := h.Lines()
	keys := HeaderKeys()
	if len(lines) != len(keys) {
		t.Fatalf("got %d lines, want %d", len(lines), len(keys))
	}
	for i, k := range keys {
		if !strings.HasPrefix(lines[i], k+": ") {
			t.Errorf("line %d is %q, want key %s", i, lines[i], k)
		}
	}
	checks := map[string]string{
		ProjectIDVersion: "",
		POTCreationDate:  "2019-05-06 07:08-0300",
		PORevisionDate:   "YEAR-MO-DA HO:MI+ZONE",
		LastTranslator:   "Jiang Xin <worldhello.net@gmail.com>",
		PluralForms:      "nplurals=2; plural=(n != 1);",
		LanguageTeam:     "none",
	}
	for k, want := range checks {
		if got := h.Value(k); got != want {
			t.Errorf("%s: got %q, want %q", k, got, want)
		}
	}
	for _, l := range lines {
		if strings.Contains(l, "ignored") {
			t.Errorf("unknown key leaked into header: %q", l)
		}
	}
}

func TestHeaderEmptyValues(t *testing.T) {
	var nilTime *time.Time
	h := NewHeader(map[string]any{
		POTCreationDate: time.Time{},
		PORevisionDate:  nilTime,
		LastTranslator:  nil,
	}, time.Now())
	for _, k := range []string{POTCreationDate, PORevisionDate, LastTranslator} {
		if got := h.Value(k); got != "" {
			t.Errorf("%s: got %q, want empty", k, got)
		}
	}
}

func TestDefaultHeaderIsFresh(t *testing.T) {
	now := time.Now()
	a := DefaultHeader(now)
	a[LanguageTeam] = "changed"
	b := DefaultHeader(now)
	if b[LanguageTeam] != "none" {
		t.Errorf("DefaultHeader shares state: got %v", b[LanguageTeam])
	}
}
