package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/git-l10n/git-po-writer/config"
	"github.com/git-l10n/git-po-writer/po"
	"github.com/git-l10n/git-po-writer/repository"
	log "github.com/sirupsen/logrus"
)

// ParseHeaderPairs parses "Key=Value" options into header fields.
func ParseHeaderPairs(pairs []string) (map[string]string, error) {
	header := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad header option '%s'\nHint: Use --header Key=Value, e.g. --header 'Language-Team=German <de@li.org>'", pair)
		}
		key = strings.TrimSpace(key)
		if !po.IsHeaderKey(key) {
			return nil, fmt.Errorf("unknown header field '%s'\nHint: Known fields are: %s",
				key, strings.Join(po.HeaderKeys(), ", "))
		}
		header[key] = value
	}
	return header, nil
}

// BuildHeaderOverrides merges header values from low to high priority:
// the catalogs in order, the configuration and the --header pairs.
// Last-Translator falls back to the git identity. A non-UTF-8 toCode
// replaces the charset of Content-Type unless Content-Type is configured.
func BuildHeaderOverrides(catalogs []*Catalog, cfg *config.Config, pairs map[string]string, toCode string, now time.Time) map[string]any {
	overrides := make(map[string]any)
	set := func(src map[string]string) {
		for k, v := range src {
			overrides[k] = config.HeaderValue(k, v, now)
		}
	}
	for _, cat := range catalogs {
		set(cat.Header)
	}
	if cfg != nil {
		for k, v := range cfg.HeaderOverrides(now) {
			overrides[k] = v
		}
	}
	set(pairs)

	if _, ok := overrides[po.LastTranslator]; !ok {
		if ident := repository.UserIdent(); ident != "" {
			log.Debugf("use git identity %s as %s", ident, po.LastTranslator)
			overrides[po.LastTranslator] = ident
		}
	}

	if !IsUTF8(toCode) {
		explicit := pairs[po.ContentType] != ""
		if cfg != nil && cfg.Header[po.ContentType] != "" {
			explicit = true
		}
		if !explicit {
			overrides[po.ContentType] = "text/plain; charset=" + toCode
		}
	}
	return overrides
}
