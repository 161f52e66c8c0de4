package document

import (
	"regexp"
	"strings"
)

var (
	controlChars   = regexp.MustCompile("[\x00-\x08\x0b\x0c\x0e-\x1f\x7f]")
	bulletGlyphs   = regexp.MustCompile("[]")
	newlinePadding = regexp.MustCompile(`[ \t]*\n[ \t]*`)
	multiSpace     = regexp.MustCompile(` +`)
)

// Clean normalizes decoded text: tabs become spaces, control characters and
// private-use bullet glyphs are stripped, whitespace around newlines is
// collapsed, and runs of spaces are condensed. Line breaks are preserved.
func Clean(text string) string {
	text = strings.ReplaceAll(text, "\t", " ")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = controlChars.ReplaceAllString(text, "")
	text = bulletGlyphs.ReplaceAllString(text, "")
	text = newlinePadding.ReplaceAllString(text, "\n")
	text = multiSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
