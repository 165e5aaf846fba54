package po

import (
	"fmt"
)

const (
	// PluralKeyword is the keyword written before the plural key phrase
	// by default.
	PluralKeyword = "msgplural"

	// GettextPluralKeyword is the keyword GNU gettext tools expect.
	GettextPluralKeyword = "msgid_plural"

	// minPluralForms is the least number of msgstr[n] lines written for a
	// plural message.
	minPluralForms = 10
)

// Message is one translation entry.
type Message struct {
	ID  string
	Str string

	// Plural is the plural key phrase. When set, the message is written
	// with StrPlural as its msgstr[n] bodies.
	Plural    string
	StrPlural []string

	TranslatorComments string
	ExtractedComments  string
	Reference          string
	Flag               string
	Context            string
}

// pluralStrings returns the plural bodies of m. A lone Str counts as the
// first plural form.
func (m *Message) pluralStrings() []string {
	if len(m.StrPlural) > 0 {
		return m.StrPlural
	}
	if m.Str != "" {
		return []string{m.Str}
	}
	return nil
}

// Validate checks that m can be written as a PO entry.
func (m *Message) Validate() error {
	if m.ID == "" {
		return &InputError{Err: ErrMissingID}
	}
	if m.Plural != "" && len(m.pluralStrings()) == 0 {
		return &InputError{ID: m.ID, Err: ErrNoPluralStrings}
	}
	return nil
}

// FormatMessage returns the physical lines of m, without line feeds,
// ending with an empty line which separates it from the next entry.
// pluralKeyword is written before the plural key phrase; an empty
// pluralKeyword means PluralKeyword.
func FormatMessage(m *Message, pluralKeyword string) ([]string, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if pluralKeyword == "" {
		pluralKeyword = PluralKeyword
	}

	var lines []string
	if m.TranslatorComments != "" {
		lines = append(lines, wrapComment("#  ", m.TranslatorComments, CommentWidth)...)
	}
	if m.ExtractedComments != "" {
		lines = append(lines, wrapComment("#. ", m.ExtractedComments, CommentWidth)...)
	}
	if m.Reference != "" {
		lines = append(lines, "#: "+m.Reference)
	}
	if m.Flag != "" {
		lines = append(lines, "#, "+m.Flag)
	}
	if m.Context != "" {
		lines = append(lines, "msgctxt "+Quote(m.Context))
	}
	lines = appendKeyword(lines, "msgid", wrapLiteral(m.ID, StringWidth, false))

	if m.Plural != "" {
		lines = append(lines, pluralKeyword+" "+Quote(m.Plural))
		strs := m.pluralStrings()
		n := len(strs)
		if n < minPluralForms {
			n = minPluralForms
		}
		for i := 0; i < n; i++ {
			var str string
			if i < len(strs) {
				str = strs[i]
			}
			lines = append(lines, fmt.Sprintf("msgstr[%d] %s", i, Quote(str)))
		}
	} else {
		lines = appendKeyword(lines, "msgstr", wrapLiteral(m.Str, StringWidth, true))
	}

	return append(lines, ""), nil
}

// appendKeyword puts keyword in front of the first literal line.
func appendKeyword(lines []string, keyword string, literal []string) []string {
	lines = append(lines, keyword+" "+literal[0])
	return append(lines, literal[1:]...)
}
