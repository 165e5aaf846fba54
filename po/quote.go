// Package po renders translation messages as gettext PO files.
package po

import (
	"fmt"
	"strings"
)

// escapes is applied in order. Backslash must come first, or the
// backslashes added for quotes and newlines would be doubled.
var escapes = []struct {
	from, to string
}{
	{`\`, `\\`},
	{`"`, `\"`},
	{"\n", `\n`},
}

// Quote returns text as a double-quoted PO string literal.
func Quote(text string) string {
	for _, e := range escapes {
		text = strings.ReplaceAll(text, e.from, e.to)
	}
	return `"` + text + `"`
}

// Unquote decodes a PO string literal produced by Quote. Besides the
// escapes Quote writes, \t and \r are also recognized.
func Unquote(literal string) (string, error) {
	if len(literal) < 2 || literal[0] != '"' || literal[len(literal)-1] != '"' {
		return "", fmt.Errorf("not a quoted PO string: %s", literal)
	}
	s := literal[1 : len(literal)-1]

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			if s[i] == '"' {
				return "", fmt.Errorf("unescaped quote at offset %d in %s", i+1, literal)
			}
			b.WriteByte(s[i])
			continue
		}
		if i+1 >= len(s) {
			return "", fmt.Errorf("dangling backslash in %s", literal)
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			return "", fmt.Errorf("unknown escape \\%c in %s", s[i], literal)
		}
	}
	return b.String(), nil
}
