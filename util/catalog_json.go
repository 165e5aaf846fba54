package util

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/git-l10n/git-po-writer/po"
	log "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// CatalogJSON is the top-level structure of a JSON catalog. Header is
// either an object of header fields or a string of "Key: value\n" lines.
type CatalogJSON struct {
	Header  json.RawMessage `json:"header,omitempty"`
	Entries []CatalogEntry  `json:"entries"`
}

// CatalogEntry represents one message in a JSON catalog.
type CatalogEntry struct {
	MsgCtxt            string     `json:"msgctxt,omitempty"`
	MsgID              string     `json:"msgid"`
	MsgStr             StringList `json:"msgstr,omitempty"`
	MsgIDPlural        string     `json:"msgid_plural,omitempty"`
	MsgStrPlural       []string   `json:"msgstr_plural,omitempty"`
	TranslatorComments string     `json:"translator_comments,omitempty"`
	ExtractedComments  string     `json:"extracted_comments,omitempty"`
	Reference          string     `json:"reference,omitempty"`
	Flag               string     `json:"flag,omitempty"`
	Fuzzy              bool       `json:"fuzzy,omitempty"`
}

// StringList decodes from either a JSON string or an array of strings.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler.
func (v *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return err
		}
		*v = list
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*v = StringList{s}
	return nil
}

// ParseCatalogJSON decodes a JSON catalog. A top-level array is taken as
// the list of entries. Malformed JSON is retried with gjson, which
// tolerates some damage such as a missing closing bracket.
func ParseCatalogJSON(data []byte) (*Catalog, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	var doc CatalogJSON
	trimmed := bytes.TrimSpace(data)
	var err error
	if len(trimmed) > 0 && trimmed[0] == '[' {
		err = json.Unmarshal(trimmed, &doc.Entries)
	} else {
		err = json.Unmarshal(trimmed, &doc)
	}
	if err != nil {
		if _, ok := err.(*json.SyntaxError); ok {
			if cat := parseCatalogJSONWithGjson(trimmed, err); cat != nil {
				return cat, nil
			}
		}
		return nil, fmt.Errorf("decode catalog JSON: %w", err)
	}

	cat := &Catalog{}
	if cat.Header, err = decodeJSONHeader(doc.Header); err != nil {
		return nil, err
	}
	for i := range doc.Entries {
		msg, err := doc.Entries[i].Message()
		if err != nil {
			return nil, fmt.Errorf("entry #%d: %w", i+1, err)
		}
		cat.Messages = append(cat.Messages, msg)
	}
	return cat, nil
}

func decodeJSONHeader(raw json.RawMessage) (map[string]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return map[string]string{}, nil
	}
	if raw[0] == '"' {
		var meta string
		if err := json.Unmarshal(raw, &meta); err != nil {
			return nil, fmt.Errorf("decode header: %w", err)
		}
		return ParseHeaderMeta(meta), nil
	}
	var fields map[string]string
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	header := make(map[string]string, len(fields))
	for k, v := range fields {
		if po.IsHeaderKey(k) {
			header[k] = v
		} else {
			log.Debugf("ignore header field %s", k)
		}
	}
	return header, nil
}

// Message converts the entry into a po.Message.
func (e *CatalogEntry) Message() (*po.Message, error) {
	msg := &po.Message{
		ID:                 e.MsgID,
		Context:            e.MsgCtxt,
		TranslatorComments: e.TranslatorComments,
		ExtractedComments:  e.ExtractedComments,
		Reference:          e.Reference,
		Flag:               fuzzyFlag(e.Flag, e.Fuzzy),
	}
	if e.MsgIDPlural != "" {
		msg.Plural = e.MsgIDPlural
		if len(e.MsgStrPlural) > 0 {
			msg.StrPlural = e.MsgStrPlural
		} else {
			msg.StrPlural = e.MsgStr
		}
	} else {
		switch len(e.MsgStr) {
		case 0:
		case 1:
			msg.Str = e.MsgStr[0]
		default:
			return nil, fmt.Errorf("msgstr of %q is a list but msgid_plural is missing", e.MsgID)
		}
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

// fuzzyFlag adds "fuzzy" in front of flag when fuzzy is set.
func fuzzyFlag(flag string, fuzzy bool) string {
	if !fuzzy {
		return flag
	}
	for _, f := range strings.Split(flag, ",") {
		if strings.TrimSpace(f) == "fuzzy" {
			return flag
		}
	}
	if flag == "" {
		return "fuzzy"
	}
	return "fuzzy, " + flag
}

// parseCatalogJSONWithGjson extracts entries with gjson. Returns nil if
// no entries can be found.
func parseCatalogJSONWithGjson(data []byte, err error) *Catalog {
	log.Warnf("fall back to gjson to parse catalog: %v", err)
	root := gjson.ParseBytes(data)
	entries := root
	if !root.IsArray() {
		entries = root.Get("entries")
	}
	if !entries.IsArray() {
		return nil
	}

	cat := &Catalog{Header: map[string]string{}}
	header := root.Get("header")
	if header.Type == gjson.String {
		cat.Header = ParseHeaderMeta(header.String())
	} else {
		header.ForEach(func(k, v gjson.Result) bool {
			if po.IsHeaderKey(k.String()) {
				cat.Header[k.String()] = v.String()
			}
			return true
		})
	}

	for i, r := range entries.Array() {
		entry := CatalogEntry{
			MsgCtxt:            r.Get("msgctxt").String(),
			MsgID:              r.Get("msgid").String(),
			MsgIDPlural:        r.Get("msgid_plural").String(),
			TranslatorComments: r.Get("translator_comments").String(),
			ExtractedComments:  r.Get("extracted_comments").String(),
			Reference:          r.Get("reference").String(),
			Flag:               r.Get("flag").String(),
			Fuzzy:              r.Get("fuzzy").Bool(),
		}
		entry.MsgStr = gjsonStrings(r.Get("msgstr"))
		entry.MsgStrPlural = gjsonStrings(r.Get("msgstr_plural"))
		msg, err := entry.Message()
		if err != nil {
			log.Warnf("skip entry #%d: %v", i+1, err)
			continue
		}
		cat.Messages = append(cat.Messages, msg)
	}
	return cat
}

func gjsonStrings(r gjson.Result) []string {
	if !r.Exists() {
		return nil
	}
	if !r.IsArray() {
		return []string{r.String()}
	}
	var list []string
	for _, v := range r.Array() {
		list = append(list, v.String())
	}
	return list
}
