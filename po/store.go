package po

import (
	"io"
	"time"
)

// timeNow is replaced in tests.
var timeNow = time.Now

// Store is an insertion-ordered collection of messages keyed by msgid,
// together with the header written in front of them.
//
// A Store is not safe for concurrent use.
type Store struct {
	header *Header
	order  []string
	msgs   map[string]*Message
}

// NewStore creates an empty store whose header is built from overrides and
// the current time.
func NewStore(overrides map[string]any) *Store {
	return NewStoreWithHeader(NewHeader(overrides, timeNow()))
}

// NewStoreWithHeader creates an empty store using header. A nil header
// means the defaults at the current time.
func NewStoreWithHeader(header *Header) *Store {
	if header == nil {
		header = NewHeader(nil, timeNow())
	}
	return &Store{
		header: header,
		msgs:   make(map[string]*Message),
	}
}

// Header returns the header of the store.
func (s *Store) Header() *Header {
	return s.header
}

// Add stores copies of msgs. A message whose id is already present replaces
// the old one but keeps its position. Nothing is added if any message is
// invalid.
func (s *Store) Add(msgs ...*Message) error {
	for _, m := range msgs {
		if m == nil {
			return &InputError{Err: ErrMissingID}
		}
		if err := m.Validate(); err != nil {
			return err
		}
	}
	for _, m := range msgs {
		cp := *m
		if len(m.StrPlural) > 0 {
			cp.StrPlural = append([]string(nil), m.StrPlural...)
		}
		if _, ok := s.msgs[m.ID]; !ok {
			s.order = append(s.order, m.ID)
		}
		s.msgs[m.ID] = &cp
	}
	return nil
}

// Remove deletes the messages with the given ids. Unknown ids are ignored.
func (s *Store) Remove(ids ...string) {
	removed := false
	for _, id := range ids {
		if _, ok := s.msgs[id]; ok {
			delete(s.msgs, id)
			removed = true
		}
	}
	if !removed {
		return
	}
	order := s.order[:0]
	for _, id := range s.order {
		if _, ok := s.msgs[id]; ok {
			order = append(order, id)
		}
	}
	s.order = order
}

// RemoveMessages deletes the stored messages having the ids of msgs.
func (s *Store) RemoveMessages(msgs ...*Message) {
	ids := make([]string, 0, len(msgs))
	for _, m := range msgs {
		if m != nil {
			ids = append(ids, m.ID)
		}
	}
	s.Remove(ids...)
}

// Get returns a copy of the message stored under id.
func (s *Store) Get(id string) (Message, bool) {
	m, ok := s.msgs[id]
	if !ok {
		return Message{}, false
	}
	return *m, true
}

// Len returns the number of stored messages.
func (s *Store) Len() int {
	return len(s.order)
}

// IDs returns the stored ids in insertion order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// Messages returns copies of the stored messages in insertion order.
func (s *Store) Messages() []Message {
	msgs := make([]Message, 0, len(s.order))
	for _, id := range s.order {
		msgs = append(msgs, *s.msgs[id])
	}
	return msgs
}

func (s *Store) each(fn func(m *Message) error) error {
	for _, id := range s.order {
		if err := fn(s.msgs[id]); err != nil {
			return err
		}
	}
	return nil
}

// WriteTo writes the store as a PO file to w using default encoder
// options.
func (s *Store) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := NewEncoder(cw).Encode(s)
	return cw.n, err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
