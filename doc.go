/*
Package editarea presents one document through three interchangeable
editing surfaces: a visually rendered editor, a raw-markup source editor
and a plain-text editor.

# Editing areas

Exactly one surface is active at a time. A Manager owns the three areas,
constructs each lazily on first use, and moves content between them in an
interchange representation: a markup-fragment string whose canonical
empty-document form is the sentinel markup.EmptyParagraph. Transitions
follow a strict order: the outgoing area's content is read into the
manager's cache, the outgoing area is hidden, the incoming area receives
the cached content, is shown and focused. Content never moves from area
to area directly.

The plain-text surface is a deliberately lossy boundary: text survives,
inline formatting does not. The markup-source surface is lossless; it
displays the pretty-printed fragment and hands it back verbatim.

# Hosts

Areas do not render anything themselves. They sit on host surfaces (see
package host), which a configured factory creates on demand. For testing
and headless operation the default factory supplies in-memory buffers.

# Events

A Manager reports its lifecycle (initialized, modeChanging, modeChanged,
destroyed) to an optional EventSink, fire-and-forget. Broadcaster is a
ready-made sink fanning events out to channel subscribers.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package editarea

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'editarea'
func tracer() tracing.Trace {
	return tracing.Select("editarea")
}
