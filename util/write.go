// Package util provides business logic for the write and header commands.
package util

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/git-l10n/git-po-writer/config"
	"github.com/git-l10n/git-po-writer/po"
	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"
)

var (
	// timeNow is replaced in tests.
	timeNow = time.Now

	progressWriter io.Writer = os.Stderr
)

// progressThreshold is the least number of messages for which a progress
// bar is shown.
const progressThreshold = 500

// WriteOptions holds the options of the write and header commands. Empty
// PluralKeyword and ToCode fall back to the configuration.
type WriteOptions struct {
	Output        string
	Headers       []string
	ToCode        string
	PluralKeyword string
	Progress      bool
	ConfigFile    string
}

// resolve loads the configuration and fills unset options from it.
func (o *WriteOptions) resolve() (*config.Config, map[string]string, error) {
	cfg, err := config.LoadConfig(o.ConfigFile)
	if err != nil {
		return nil, nil, err
	}
	if o.PluralKeyword == "" {
		o.PluralKeyword = cfg.PluralKeyword
	}
	if o.ToCode == "" {
		o.ToCode = cfg.ToCode
	}
	switch o.PluralKeyword {
	case "", po.PluralKeyword, po.GettextPluralKeyword:
	default:
		return nil, nil, fmt.Errorf("bad plural keyword '%s'\nHint: Use '%s' or '%s'",
			o.PluralKeyword, po.PluralKeyword, po.GettextPluralKeyword)
	}
	pairs, err := ParseHeaderPairs(o.Headers)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pairs, nil
}

// BuildStore reads the catalogs in inputs into one store. A message read
// later replaces an earlier one with the same msgid in place.
func BuildStore(inputs []string, opts *WriteOptions) (*po.Store, error) {
	cfg, pairs, err := opts.resolve()
	if err != nil {
		return nil, err
	}
	catalogs := make([]*Catalog, 0, len(inputs))
	for _, input := range inputs {
		cat, err := ReadCatalogFile(input)
		if err != nil {
			return nil, err
		}
		log.Debugf("loaded %d messages from %s", len(cat.Messages), input)
		catalogs = append(catalogs, cat)
	}

	now := timeNow()
	store := po.NewStoreWithHeader(po.NewHeader(
		BuildHeaderOverrides(catalogs, cfg, pairs, opts.ToCode, now), now))
	for i, cat := range catalogs {
		if err := store.Add(cat.Messages...); err != nil {
			return nil, fmt.Errorf("failed to add messages of %s: %w", inputs[i], err)
		}
	}
	return store, nil
}

// CmdWrite implements the write command.
func CmdWrite(inputs []string, opts WriteOptions) error {
	store, err := BuildStore(inputs, &opts)
	if err != nil {
		return err
	}
	return writeStore(store, &opts)
}

// CmdHeader implements the header command: it writes a PO file holding
// only the header entry.
func CmdHeader(opts WriteOptions) error {
	store, err := BuildStore(nil, &opts)
	if err != nil {
		return err
	}
	return writeStore(store, &opts)
}

func writeStore(store *po.Store, opts *WriteOptions) (err error) {
	out, err := OpenOutput(opts.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", opts.Output, cerr)
		}
	}()

	w, err := NewCharsetWriter(out, opts.ToCode)
	if err != nil {
		return err
	}
	defer w.Close()

	encOpts := []po.EncoderOption{po.WithPluralKeyword(opts.PluralKeyword)}
	if bar := newProgressBar(store.Len(), opts); bar != nil {
		encOpts = append(encOpts, po.WithMessageHook(func(*po.Message) {
			_ = bar.Add(1)
		}))
		defer bar.Finish()
	}

	if err := po.NewEncoder(w, encOpts...).Encode(store); err != nil {
		return fmt.Errorf("failed to write PO file: %w", err)
	}
	if opts.Output != "" && opts.Output != "-" {
		log.Infof("wrote %d messages to %s", store.Len(), opts.Output)
	}
	return nil
}

func newProgressBar(total int, opts *WriteOptions) *progressbar.ProgressBar {
	if !opts.Progress || total < progressThreshold || !stderrIsTerminal() {
		return nil
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progressWriter),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan]writing[reset]"),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
