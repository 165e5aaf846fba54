package po

import (
	"errors"
	"reflect"
	"testing"
)

func TestStoreOverwriteKeepsPosition(t *testing.T) {
	s := NewStore(nil)
	if err := s.Add(&Message{ID: "A", Str: "a"}, &Message{ID: "B", Str: "b"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := s.Add(&Message{ID: "A", Str: "a (new)"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("IDs = %v", got)
	}
	m, ok := s.Get("A")
	if !ok || m.Str != "a (new)" {
		t.Errorf("Get(A) = %+v, %v", m, ok)
	}
	if s.Len() != 2 {
		t.Errorf("Len = %d", s.Len())
	}
	want := []Message{{ID: "A", Str: "a (new)"}, {ID: "B", Str: "b"}}
	if got := s.Messages(); !reflect.DeepEqual(got, want) {
		t.Errorf("Messages = %+v, want %+v", got, want)
	}
}

func TestStoreRemove(t *testing.T) {
	s := NewStore(nil)
	msgs := []*Message{
		{ID: "one", Str: "1"},
		{ID: "two", Str: "2"},
		{ID: "three", Str: "3"},
		{ID: "four", Str: "4"},
	}
	if err := s.Add(msgs...); err != nil {
		t.Fatalf("Add: %v", err)
	}
	s.Remove("two", "missing")
	s.RemoveMessages(&Message{ID: "four"}, nil)
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"one", "three"}) {
		t.Fatalf("IDs = %v", got)
	}
	if _, ok := s.Get("two"); ok {
		t.Error("two should be removed")
	}

	// Re-adding a removed id appends it.
	if err := s.Add(&Message{ID: "two", Str: "2"}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if got := s.IDs(); !reflect.DeepEqual(got, []string{"one", "three", "two"}) {
		t.Fatalf("IDs = %v", got)
	}
}

func TestStoreOwnsMessages(t *testing.T) {
	s := NewStore(nil)
	m := &Message{ID: "file", Plural: "files", StrPlural: []string{"Datei", "Dateien"}}
	if err := s.Add(m); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m.Str = "changed"
	m.StrPlural[0] = "changed"
	got, _ := s.Get("file")
	if got.Str != "" || got.StrPlural[0] != "Datei" {
		t.Errorf("stored message changed with caller's copy: %+v", got)
	}
}

func TestStoreAddRejectsInvalid(t *testing.T) {
	s := NewStore(nil)
	err := s.Add(&Message{ID: "ok", Str: "fine"}, &Message{Str: "no id"})
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("got %v, want ErrMissingID", err)
	}
	if s.Len() != 0 {
		t.Errorf("store should be untouched, has %d messages", s.Len())
	}

	err = s.Add(&Message{ID: "file", Plural: "files"})
	if !errors.Is(err, ErrNoPluralStrings) {
		t.Fatalf("got %v, want ErrNoPluralStrings", err)
	}

	err = s.Add(&Message{ID: "ok", Str: "fine"}, nil)
	var inputErr *InputError
	if !errors.As(err, &inputErr) || !errors.Is(err, ErrMissingID) {
		t.Fatalf("got %v, want *InputError wrapping ErrMissingID", err)
	}
	if s.Len() != 0 {
		t.Errorf("store should be untouched, has %d messages", s.Len())
	}
}
