package po

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingID is returned for a message without msgid.
	ErrMissingID = errors.New("message has no id")

	// ErrNoPluralStrings is returned for a plural message without any
	// translated plural string.
	ErrNoPluralStrings = errors.New("plural message has no plural strings")
)

// InputError reports a message which cannot be rendered as a valid PO entry.
type InputError struct {
	ID  string
	Err error
}

func (e *InputError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("invalid message: %v", e.Err)
	}
	return fmt.Sprintf("invalid message %q: %v", e.ID, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// SinkError reports a failed write to the destination writer. Line is the
// 1-based physical line which could not be written; lines before it have
// already been written.
type SinkError struct {
	Line int
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("fail to write line %d: %v", e.Line, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }
