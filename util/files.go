// Package util provides input and output selection for the write command.
package util

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
)

// ResolveInputs returns the input files to read. Without arguments the
// catalog is read from stdin, unless stdin is a terminal.
func ResolveInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return nil, fmt.Errorf("no input file given\nHint: Pass JSON or MO catalogs as arguments, or pipe a JSON catalog to stdin")
	}
	log.Debugf("reading catalog from stdin")
	return []string{"-"}, nil
}

// OpenOutput opens file for writing. An empty file or "-" means stdout,
// which is not closed by the returned writer.
func OpenOutput(file string) (io.WriteCloser, error) {
	if file == "" || file == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(file)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", file, err)
	}
	return f, nil
}

// stderrIsTerminal reports whether progress output can be shown.
func stderrIsTerminal() bool {
	return isatty.IsTerminal(os.Stderr.Fd())
}
