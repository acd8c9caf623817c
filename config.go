package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"github.com/npillmayer/editarea/host"
)

// SelectionKeeper saves and restores the caret of the visually rendered
// surface and answers whether a text composition (e.g. an IME sequence) is
// in progress. It is consumed by the WYSIWYG area only.
type SelectionKeeper interface {
	SaveCaret()
	RestoreCaret()
	IsComposing() bool
}

// Config parametrizes a Manager. It is treated as immutable after New.
type Config struct {
	// Container is the host region all surfaces attach to. Ownership of the
	// region belongs to whichever area is currently shown.
	Container host.Container
	// Surfaces creates native surfaces on demand. Defaults to in-memory
	// buffers (host.NewFactory) when nil.
	Surfaces host.Factory
	// InitialMode is the mode Initialize starts in. Zero value: ModeWYSIWYG.
	InitialMode Mode
	// ClassNames carries per-mode host-side style classes.
	ClassNames map[Mode]string
	// MinHeight is the minimum surface height in px.
	MinHeight int
	// AutoResize lets surfaces grow with their content.
	AutoResize bool
	// LineWidth is the wrap width used for auto-resize measurement, cells.
	LineWidth int
	// Selection is the optional caret collaborator, WYSIWYG only.
	Selection SelectionKeeper
	// Events receives lifecycle notifications; nil disables emission.
	Events EventSink
}
