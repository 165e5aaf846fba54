package util

import (
	"fmt"
	"io"
	"strings"

	"github.com/qiniu/iconv"
)

const defaultEncoding = "UTF-8"

func sameEncoding(enc1, enc2 string) bool {
	enc1 = strings.Replace(strings.ToLower(enc1), "-", "", -1)
	enc2 = strings.Replace(strings.ToLower(enc2), "-", "", -1)
	return enc1 == enc2
}

// IsUTF8 reports whether charset is empty or names UTF-8.
func IsUTF8(charset string) bool {
	return charset == "" || sameEncoding(defaultEncoding, charset)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// iconvWriter converts each Write from UTF-8 to another charset. Every
// Write must hold complete characters, which is the case for the line
// writes of po.Encoder.
type iconvWriter struct {
	w      io.Writer
	cd     iconv.Iconv
	toCode string
	buf    []byte
}

// NewCharsetWriter returns a writer converting UTF-8 text to toCode before
// passing it to w. For UTF-8 w is used as is. Closing the returned writer
// does not close w.
func NewCharsetWriter(w io.Writer, toCode string) (io.WriteCloser, error) {
	if IsUTF8(toCode) {
		return nopWriteCloser{w}, nil
	}
	cd, err := iconv.Open(toCode, defaultEncoding)
	if err != nil {
		return nil, fmt.Errorf("iconv.Open failed for %s: %w", toCode, err)
	}
	return &iconvWriter{
		w:      w,
		cd:     cd,
		toCode: toCode,
		buf:    make([]byte, 1024),
	}, nil
}

func (v *iconvWriter) Write(p []byte) (int, error) {
	out, inleft, err := v.cd.Conv(p, v.buf)
	if err != nil {
		return 0, fmt.Errorf("bad %s characters in: %q: %w", v.toCode, strings.TrimSuffix(string(p), "\n"), err)
	}
	if inleft > 0 {
		return 0, fmt.Errorf("incomplete character at end of: %q", string(p))
	}
	if _, err := v.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (v *iconvWriter) Close() error {
	return v.cd.Close()
}
