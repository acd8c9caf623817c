package markup

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"regexp"
	"strings"
)

var (
	breakTag  = regexp.MustCompile(`(?i)<br\s*/?>`)
	blockEnd  = regexp.MustCompile(`(?i)</(?:p|div|li|tr|h[1-6])>`)
	manyBlank = regexp.MustCompile(`\n{3,}`)
)

// emptyMarkers are the paragraph forms which editing surfaces produce for a
// visually empty line.
var emptyMarkers = []string{EmptyParagraph, "<p>&nbsp;</p>", "<p></p>"}

// ToText converts a markup fragment to plain text. Paragraphs, divisions,
// list items, table rows and headings end a line; empty paragraphs become
// empty lines; inline formatting is dropped.
//
// The transformation steps are order-sensitive: empty-paragraph markers
// collapse to a single newline and must be rewritten before break and
// closing tags are, or they would yield two newlines instead of one.
func ToText(fragment string) string {
	if fragment == "" {
		return ""
	}
	text := strings.NewReplacer("\r", "", "\t", "").Replace(fragment)
	for _, marker := range emptyMarkers {
		text = strings.ReplaceAll(text, marker, "\n")
	}
	text = breakTag.ReplaceAllString(text, "\n")
	text = blockEnd.ReplaceAllString(text, "\n")
	text = StripTags(text)
	text = Unescape(text)
	text = manyBlank.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// FromText converts plain text to a markup fragment. Every line becomes a
// paragraph; blank lines become empty-paragraph sentinels; characters with
// markup meaning are escaped. Empty input yields EmptyParagraph.
//
// For text free of newlines and of the characters escaped by Escape,
// ToText(FromText(text)) == text.
func FromText(text string) string {
	if text == "" {
		return EmptyParagraph
	}
	var fragment strings.Builder
	for _, line := range strings.Split(Escape(text), "\n") {
		if strings.TrimSpace(line) == "" {
			fragment.WriteString(EmptyParagraph)
		} else {
			fragment.WriteString("<p>")
			fragment.WriteString(line)
			fragment.WriteString("</p>")
		}
	}
	return fragment.String()
}
