package po

import (
	"fmt"
	"time"
)

// Header field names, in the order they are written.
const (
	ProjectIDVersion        = "Project-Id-Version"
	ReportMsgidBugsTo       = "Report-Msgid-Bugs-To"
	POTCreationDate         = "POT-Creation-Date"
	PORevisionDate          = "PO-Revision-Date"
	LastTranslator          = "Last-Translator"
	LanguageTeam            = "Language-Team"
	MIMEVersion             = "MIME-Version"
	ContentType             = "Content-Type"
	ContentTransferEncoding = "Content-Transfer-Encoding"
	PluralForms             = "Plural-Forms"
)

var headerKeys = []string{
	ProjectIDVersion,
	ReportMsgidBugsTo,
	POTCreationDate,
	PORevisionDate,
	LastTranslator,
	LanguageTeam,
	MIMEVersion,
	ContentType,
	ContentTransferEncoding,
	PluralForms,
}

// HeaderKeys returns the header field names in output order.
func HeaderKeys() []string {
	keys := make([]string, len(headerKeys))
	copy(keys, headerKeys)
	return keys
}

// IsHeaderKey reports whether key is one of the fixed header fields.
func IsHeaderKey(key string) bool {
	for _, k := range headerKeys {
		if k == key {
			return true
		}
	}
	return false
}

// IsDateKey reports whether key holds a date.
func IsDateKey(key string) bool {
	return key == POTCreationDate || key == PORevisionDate
}

// DefaultHeader returns a new set of default header values. Both date
// fields are set to now.
func DefaultHeader(now time.Time) map[string]any {
	return map[string]any{
		ProjectIDVersion:        "PACKAGE VERSION",
		ReportMsgidBugsTo:       "none",
		POTCreationDate:         now,
		PORevisionDate:          now,
		LastTranslator:          "",
		LanguageTeam:            "none",
		MIMEVersion:             "1.0",
		ContentType:             "text/plain; charset=UTF-8",
		ContentTransferEncoding: "8bit",
		PluralForms:             "nplurals=INTEGER; plural=EXPRESSION;",
	}
}

// Header holds the values of the PO header entry. It is immutable once
// created.
type Header struct {
	values map[string]any
}

// NewHeader merges overrides onto DefaultHeader(now). Keys outside the
// fixed header fields are ignored. Values may be strings, time.Time or
// *time.Time; anything else is formatted with fmt.
func NewHeader(overrides map[string]any, now time.Time) *Header {
	values := DefaultHeader(now)
	for k, v := range overrides {
		if IsHeaderKey(k) {
			values[k] = v
		}
	}
	return &Header{values: values}
}

// Value returns the rendered value of key, or "" for an unknown key.
func (h *Header) Value(key string) string {
	return formatValue(h.values[key])
}

// Lines returns one "Key: value\n" string per header field in output
// order.
func (h *Header) Lines() []string {
	lines := make([]string, 0, len(headerKeys))
	for _, k := range headerKeys {
		lines = append(lines, k+": "+h.Value(k)+"\n")
	}
	return lines
}

func formatValue(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return FormatDate(v)
	case *time.Time:
		if v == nil || v.IsZero() {
			return ""
		}
		return FormatDate(*v)
	default:
		return fmt.Sprint(v)
	}
}

// FormatDate formats t as "YYYY-MM-DD HH:MM+ZZZZ" in t's own location.
func FormatDate(t time.Time) string {
	_, offset := t.Zone()
	return t.Format("2006-01-02 15:04") + FormatTimezone(-offset/60)
}

// FormatTimezone formats an offset given in minutes west of UTC, so a
// negative offset is a zone east of UTC: -60 gives "+0100" and 300 gives
// "-0500".
func FormatTimezone(minutesWest int) string {
	sign := '-'
	if minutesWest < 0 {
		sign = '+'
		minutesWest = -minutesWest
	}
	return fmt.Sprintf("%c%02d%02d", sign, minutesWest/60, minutesWest%60)
}
