// Package config provides configuration structures and loading for
// git-po-writer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/git-l10n/git-po-writer/po"
	"github.com/git-l10n/git-po-writer/repository"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// FileName is the name of the configuration file in the repository
	// root.
	FileName = "git-po-writer.yaml"

	// UserFileName is the name of the configuration file in the home
	// directory.
	UserFileName = ".git-po-writer.yaml"

	// DateNow as the value of a date field stands for the current time.
	DateNow = "now"
)

// Config holds the complete configuration.
type Config struct {
	Header        map[string]string `yaml:"header,omitempty"`
	PluralKeyword string            `yaml:"plural_keyword,omitempty"`
	ToCode        string            `yaml:"to_code,omitempty"`
}

// Validate checks values which cannot be used when writing.
func (c *Config) Validate() error {
	switch c.PluralKeyword {
	case "", po.PluralKeyword, po.GettextPluralKeyword:
	default:
		return fmt.Errorf("plural_keyword must be '%s' or '%s', got '%s'",
			po.PluralKeyword, po.GettextPluralKeyword, c.PluralKeyword)
	}
	for k := range c.Header {
		if !po.IsHeaderKey(k) {
			return fmt.Errorf("unknown header field '%s'", k)
		}
	}
	return nil
}

// HeaderOverrides returns the configured header values. The value "now"
// of a date field is replaced with now.
func (c *Config) HeaderOverrides(now time.Time) map[string]any {
	overrides := make(map[string]any, len(c.Header))
	for k, v := range c.Header {
		overrides[k] = HeaderValue(k, v, now)
	}
	return overrides
}

// HeaderValue returns now for a date field set to "now", and value
// otherwise.
func HeaderValue(key, value string, now time.Time) any {
	if po.IsDateKey(key) && strings.EqualFold(strings.TrimSpace(value), DateNow) {
		return now
	}
	return value
}

// LoadConfig loads the configuration. With a non-empty configFile only that
// file is read. Otherwise ~/.git-po-writer.yaml and <repo-root>/git-po-writer.yaml
// are merged, the latter taking priority; missing files are skipped.
func LoadConfig(configFile string) (*Config, error) {
	if configFile != "" {
		cfg, err := loadConfigFromFile(configFile)
		if err != nil {
			return nil, err
		}
		return validated(cfg)
	}

	var files []string
	if home, err := os.UserHomeDir(); err == nil {
		files = append(files, filepath.Join(home, UserFileName))
	} else {
		log.Debugf("cannot find home directory: %v", err)
	}
	files = append(files, filepath.Join(repository.WorkDirOrCwd(), FileName))

	cfg := &Config{}
	for _, file := range files {
		c, err := loadConfigFromFile(file)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debugf("config file %s not found, skipped", file)
				continue
			}
			return nil, err
		}
		log.Debugf("loaded config file %s", file)
		cfg = mergeConfigs(cfg, c)
	}
	return validated(cfg)
}

func validated(cfg *Config) (*Config, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadConfigFromFile(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
	}
	return &cfg, nil
}

// mergeConfigs returns base overridden by the non-empty values of over.
func mergeConfigs(base, over *Config) *Config {
	merged := &Config{
		Header:        make(map[string]string, len(base.Header)+len(over.Header)),
		PluralKeyword: base.PluralKeyword,
		ToCode:        base.ToCode,
	}
	for k, v := range base.Header {
		merged.Header[k] = v
	}
	for k, v := range over.Header {
		merged.Header[k] = v
	}
	if over.PluralKeyword != "" {
		merged.PluralKeyword = over.PluralKeyword
	}
	if over.ToCode != "" {
		merged.ToCode = over.ToCode
	}
	return merged
}
