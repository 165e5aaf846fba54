package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/git-l10n/git-po-writer/po"
	"github.com/gorilla/i18n/gettext"
	log "github.com/sirupsen/logrus"
)

const (
	moContextSeparator = "\x04"
	moPluralSeparator  = "\x00"
)

// ReadCatalogMO reads the messages of a compiled MO file. The entry with
// an empty msgid provides the header.
func ReadCatalogMO(r io.ReadSeeker) (*Catalog, error) {
	cat := &Catalog{Header: map[string]string{}}
	iter := gettext.ReadMo(r)
	size := iter.Size()
	for i := 0; i < size; i++ {
		m, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("read MO entry #%d: %w", i+1, err)
		}
		ctxt, id := string(m.Ctxt), string(m.Id)
		if ctxt == "" {
			if c, rest, ok := strings.Cut(id, moContextSeparator); ok {
				ctxt, id = c, rest
			}
		}
		if id == "" && ctxt == "" {
			cat.Header = ParseHeaderMeta(string(m.Str))
			continue
		}

		msg := &po.Message{Context: ctxt}
		if singular, plural, ok := strings.Cut(id, moPluralSeparator); ok {
			msg.ID = singular
			msg.Plural = plural
			msg.StrPlural = strings.Split(string(m.Str), moPluralSeparator)
		} else {
			msg.ID = id
			msg.Str = string(m.Str)
		}
		cat.Messages = append(cat.Messages, msg)
	}
	log.Debugf("read %d messages from MO file", len(cat.Messages))
	return cat, nil
}
