package host

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bufio"
	"strings"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

// wrappedLineCount measures the display height of text when wrapped at
// width cells. Hard line breaks are honored; soft break opportunities come
// from the UAX#14 line-wrap algorithm, fragment widths from UAX#11
// east-asian-width over grapheme clusters.
func wrappedLineCount(text string, width int) int {
	if text == "" {
		return 1
	}
	lines := 0
	for _, hard := range strings.Split(text, "\n") {
		lines += wrapOneLine(hard, width)
	}
	return lines
}

func wrapOneLine(text string, width int) int {
	if text == "" {
		return 1
	}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(strings.NewReader(text)))
	lines := 1
	spaceleft := width
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, uax11.LatinContext)
		if fraglen >= spaceleft {
			lines++
			spaceleft = width - fraglen
		} else {
			spaceleft -= fraglen
		}
	}
	return lines
}
