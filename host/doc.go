/*
Package host defines the boundary to native editing surfaces.

An editing area does not render or handle input itself; it sits on a
Surface, an opaque region of the host (a browser element, a terminal
widget, or an in-memory buffer for non-interactive hosts). Surfaces are
constructed on demand through a Factory, so hosts decide when and how a
surface comes into existence.

Calls into a surface may suspend for an unbounded time; all content and
visibility operations therefore take a context. No timeout contract is
implied, cancellation is a courtesy of the implementation.

Buffer is a ready-made in-memory Surface, mainly for tests and headless
use. It stores its text as a cord.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package host

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editarea'
func tracer() tracing.Trace {
	return tracing.Select("editarea")
}
