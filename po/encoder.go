package po

import (
	"io"
)

// EncoderOption configures an Encoder.
type EncoderOption func(*Encoder)

// WithPluralKeyword sets the keyword written before the plural key phrase,
// e.g. GettextPluralKeyword for files read by GNU gettext tools.
func WithPluralKeyword(keyword string) EncoderOption {
	return func(e *Encoder) {
		e.pluralKeyword = keyword
	}
}

// WithMessageHook registers fn to be called after each message has been
// written.
func WithMessageHook(fn func(m *Message)) EncoderOption {
	return func(e *Encoder) {
		e.onMessage = fn
	}
}

// Encoder writes stores as PO files. Every physical line, including the
// empty separator lines, is passed to the underlying writer in a single
// Write call.
type Encoder struct {
	w             io.Writer
	pluralKeyword string
	onMessage     func(m *Message)
	line          int
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer, opts ...EncoderOption) *Encoder {
	e := &Encoder{
		w:             w,
		pluralKeyword: PluralKeyword,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode writes the header entry of s followed by all its messages in
// insertion order. It stops at the first failed write and returns a
// *SinkError; what was written before is left in place.
func (e *Encoder) Encode(s *Store) error {
	e.line = 0
	if err := e.writeLines(headerEntry(s.header)); err != nil {
		return err
	}
	return s.each(func(m *Message) error {
		lines, err := FormatMessage(m, e.pluralKeyword)
		if err != nil {
			return err
		}
		if err := e.writeLines(lines); err != nil {
			return err
		}
		if e.onMessage != nil {
			e.onMessage(m)
		}
		return nil
	})
}

// headerEntry renders the header as the msgstr of the entry with an empty
// msgid.
func headerEntry(h *Header) []string {
	lines := []string{`msgid ""`, `msgstr ""`}
	for _, l := range h.Lines() {
		lines = append(lines, Quote(l))
	}
	return append(lines, "")
}

func (e *Encoder) writeLines(lines []string) error {
	for _, l := range lines {
		e.line++
		if _, err := io.WriteString(e.w, l+"\n"); err != nil {
			return &SinkError{Line: e.line, Err: err}
		}
	}
	return nil
}
