// Package util provides catalog loading and the business logic of the
// git-po-writer commands.
package util

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/git-l10n/git-po-writer/po"
	log "github.com/sirupsen/logrus"
)

// Catalog is a set of messages read from one input, with the header values
// found in it.
type Catalog struct {
	Header   map[string]string
	Messages []*po.Message
}

// CatalogFormat is the encoding of an input catalog.
type CatalogFormat int

// Supported catalog formats.
const (
	FormatUnknown CatalogFormat = iota
	FormatJSON
	FormatMO
)

func (f CatalogFormat) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMO:
		return "mo"
	}
	return "unknown"
}

const moMagic = 0x950412de

// DetectCatalogFormat detects the format by content, then by the
// extension of name.
func DetectCatalogFormat(name string, data []byte) CatalogFormat {
	if len(data) >= 4 {
		if binary.LittleEndian.Uint32(data) == moMagic || binary.BigEndian.Uint32(data) == moMagic {
			return FormatMO
		}
	}
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(data, []byte("\xef\xbb\xbf")))
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	switch {
	case hasExt(name, ".json"):
		return FormatJSON
	case hasExt(name, ".mo"), hasExt(name, ".gmo"):
		return FormatMO
	}
	return FormatUnknown
}

// ReadCatalog decodes data read from name.
func ReadCatalog(name string, data []byte) (*Catalog, error) {
	format := DetectCatalogFormat(name, data)
	log.Debugf("reading %s as %s catalog", name, format)
	switch format {
	case FormatJSON:
		return ParseCatalogJSON(data)
	case FormatMO:
		return ReadCatalogMO(bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unknown catalog format of %s\nHint: input must be a JSON catalog (.json) or a compiled MO file (.mo)", name)
}

// ReadCatalogFile reads a catalog from file, or from stdin when file is "-".
func ReadCatalogFile(file string) (*Catalog, error) {
	var (
		data []byte
		err  error
	)
	if file == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		if !IsFile(file) {
			return nil, fmt.Errorf("input file %s does not exist or is not a file", file)
		}
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}
	cat, err := ReadCatalog(file, data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", file, err)
	}
	return cat, nil
}

// ParseHeaderMeta parses "Key: value" lines of a header entry. Fields
// outside the fixed PO header are dropped.
func ParseHeaderMeta(meta string) map[string]string {
	header := make(map[string]string)
	for _, line := range strings.Split(meta, "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !po.IsHeaderKey(key) {
			if key != "" {
				log.Debugf("ignore header field %s", key)
			}
			continue
		}
		header[key] = strings.TrimSpace(value)
	}
	return header
}
