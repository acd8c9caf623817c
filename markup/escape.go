package markup

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "strings"

// EmptyParagraph is the canonical interchange representation of a visually
// empty document.
const EmptyParagraph = "<p><br></p>"

// Substitution order matters on both tables. Escaping must handle the
// ampersand first, or entities produced by later substitutions would be
// escaped a second time. Unescaping resolves the ampersand last for the
// symmetric reason. Reordering changes results on doubly-escaped input,
// e.g. "&amp;lt;".
var escapeTable = []struct{ raw, entity string }{
	{"&", "&amp;"},
	{"<", "&lt;"},
	{">", "&gt;"},
	{`"`, "&quot;"},
	{"'", "&#039;"},
}

var unescapeTable = []struct{ entity, raw string }{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#039;", "'"},
	{"&nbsp;", " "},
	{"&amp;", "&"},
}

// Escape replaces the characters with special meaning in markup fragments
// by their entity representation.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	for _, sub := range escapeTable {
		text = strings.ReplaceAll(text, sub.raw, sub.entity)
	}
	return text
}

// Unescape replaces known entities by their character representation.
// Unescape(Escape(s)) == s for any s which does not use a literal
// ampersand in entity position.
func Unescape(text string) string {
	if text == "" {
		return ""
	}
	for _, sub := range unescapeTable {
		text = strings.ReplaceAll(text, sub.entity, sub.raw)
	}
	return text
}
