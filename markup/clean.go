package markup

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "regexp"

var (
	commentRun = regexp.MustCompile(`(?s)<!--.*?-->`)
	scriptElem = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleElem  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	spaceRun   = regexp.MustCompile(`\s+`)
)

// Clean sanitizes a markup fragment: comments as well as script and style
// elements are removed entirely (tags and bodies), and all whitespace runs
// collapse to a single space. Matching is non-greedy, so an unclosed
// script element survives Clean; callers needing a hard guarantee must
// validate separately.
func Clean(fragment string) string {
	if fragment == "" {
		return ""
	}
	cleaned := commentRun.ReplaceAllString(fragment, "")
	cleaned = scriptElem.ReplaceAllString(cleaned, "")
	cleaned = styleElem.ReplaceAllString(cleaned, "")
	return spaceRun.ReplaceAllString(cleaned, " ")
}
