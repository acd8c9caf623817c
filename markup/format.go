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

// blockTags is the whitelist of tag names which Format isolates onto lines
// of their own.
var blockTags = []string{
	"div", "p", "ul", "ol", "li",
	"table", "tr", "td", "th", "thead", "tbody",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"header", "footer", "section", "article", "nav",
}

var blockTagPatterns = compileBlockTagPatterns()

func compileBlockTagPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(blockTags)*2)
	for _, tag := range blockTags {
		patterns = append(patterns,
			regexp.MustCompile(`(?i)(<`+tag+`(?:\s[^>]*)?>)`),
			regexp.MustCompile(`(?i)(</`+tag+`>)`))
	}
	return patterns
}

// Format pretty-prints a markup fragment for a source editing surface.
//
// Format is not a parser. Every open-tag and close-tag occurrence of a
// whitelisted block tag is isolated onto a line of its own, regardless of
// actual nesting, and lines are then re-indented with a single counter:
// a line starting with a closing tag outdents before printing, a line
// opening a tag which is neither closing nor self-closing indents after.
// Malformed or irregular markup yields visually wrong but stable
// indentation. A bare void tag such as "<br>" (no "/>") counts as opening
// a level; this quirk is part of the output contract.
func Format(fragment string) string {
	if fragment == "" {
		return ""
	}
	broken := fragment
	for _, pattern := range blockTagPatterns {
		broken = pattern.ReplaceAllString(broken, "\n$1\n")
	}
	broken = manyBlank.ReplaceAllString(broken, "\n\n")
	broken = strings.TrimSpace(broken)
	//
	lines := strings.Split(broken, "\n")
	indented := make([]string, 0, len(lines))
	depth := 0
	for _, line := range lines {
		if strings.HasPrefix(line, "</") && depth > 0 {
			depth--
		}
		indented = append(indented, strings.Repeat("  ", depth)+line)
		if strings.HasPrefix(line, "<") && !strings.HasPrefix(line, "</") &&
			!strings.HasSuffix(line, "/>") {
			depth++
		}
	}
	return strings.Join(indented, "\n")
}
