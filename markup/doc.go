/*
Package markup converts between the HTML-fragment interchange format of
editing areas and plain text.

All conversions are pure string transformations. The package deliberately
avoids a structural HTML model for everything except text extraction:
Format and Clean operate with line-oriented, whitelist-driven substitution,
which keeps their output stable on malformed input at the price of not
being a real parser. StripTags is the one exception; it parses the
fragment and concatenates the text nodes, the same way a host document
would report textContent.

The empty document has a canonical representation, EmptyParagraph. No
function of this package ever returns a non-string content value; empty
or blank input degrades to "" (or to EmptyParagraph for FromText).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package markup

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editarea'
func tracer() tracing.Trace {
	return tracing.Select("editarea")
}
