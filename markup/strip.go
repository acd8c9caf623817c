package markup

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags returns the textual content of a markup fragment and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").textContent
//
// in JavaScript: the fragment is parsed and the contents of all text nodes
// are concatenated in document order. Script and style bodies count as
// text nodes and are included literally. Entities inside text nodes are
// decoded by the parser ("&nbsp;" becomes U+00A0, not a space).
func StripTags(fragment string) string {
	if fragment == "" {
		return ""
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), nil)
	if err != nil {
		tracer().Errorf("markup strip: cannot parse fragment: %v", err)
		return ""
	}
	var text strings.Builder
	for _, n := range nodes {
		collectText(n, &text)
	}
	return text.String()
}

func collectText(n *html.Node, text *strings.Builder) {
	if n.Type == html.TextNode {
		text.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, text)
	}
}

// IsEmpty reports whether a markup fragment represents a visually empty
// document: no text content except whitespace and non-breaking spaces.
func IsEmpty(fragment string) bool {
	if fragment == "" {
		return true
	}
	text := StripTags(fragment)
	text = strings.ReplaceAll(text, " ", "")
	return strings.TrimSpace(text) == ""
}
