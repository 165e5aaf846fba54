package po

import (
	"strings"
	"unicode/utf8"
)

const (
	// StringWidth is the chunk size for msgid and msgstr bodies.
	StringWidth = 68

	// CommentWidth is the chunk size for translator and extracted comments.
	CommentWidth = 72
)

// Chunk splits s into substrings of at most size runes. The chunks
// concatenate back to s, and an empty s yields one empty chunk.
func Chunk(s string, size int) []string {
	if size < 1 {
		panic("po: chunk size must be positive")
	}
	n := utf8.RuneCountInString(s)
	if n == 0 {
		return []string{""}
	}
	chunks := make([]string, 0, (n+size-1)/size)
	for len(s) > 0 {
		end, count := 0, 0
		for end < len(s) && count < size {
			_, w := utf8.DecodeRuneInString(s[end:])
			end += w
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks
}

// splitLines splits s after each newline. A trailing newline does not
// produce an extra empty segment.
func splitLines(s string) []string {
	segs := strings.SplitAfter(s, "\n")
	if len(segs) > 1 && segs[len(segs)-1] == "" {
		segs = segs[:len(segs)-1]
	}
	return segs
}

// wrapLiteral renders s as one or more quoted physical lines. A string
// which needs more than one chunk starts with an empty literal, so the
// keyword line reads `msgstr ""` and the chunks follow as continuations.
// With breakLines, s is also split after each newline; otherwise newlines
// are only escaped and never start a new line.
func wrapLiteral(s string, width int, breakLines bool) []string {
	segs := []string{s}
	if breakLines {
		segs = splitLines(s)
	}
	var chunks []string
	for _, seg := range segs {
		chunks = append(chunks, Chunk(seg, width)...)
	}
	if len(chunks) > 1 {
		chunks = append([]string{""}, chunks...)
	}
	lines := make([]string, len(chunks))
	for i, c := range chunks {
		lines[i] = Quote(c)
	}
	return lines
}

// wrapComment renders a comment as prefixed lines of at most width runes.
func wrapComment(prefix, comment string, width int) []string {
	var lines []string
	for _, seg := range splitLines(comment) {
		for _, c := range Chunk(strings.TrimSuffix(seg, "\n"), width) {
			lines = append(lines, prefix+c)
		}
	}
	return lines
}
