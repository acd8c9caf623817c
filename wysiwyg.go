package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/npillmayer/editarea/host"
	"github.com/npillmayer/editarea/markup"
)

// wysiwygArea is the visually rendered surface. Its native representation
// is the interchange format itself; content passes through unconverted.
type wysiwygArea struct {
	baseArea
	selection SelectionKeeper
}

func newWYSIWYGArea(surface host.Surface, selection SelectionKeeper) *wysiwygArea {
	return &wysiwygArea{
		baseArea:  baseArea{mode: ModeWYSIWYG, surface: surface},
		selection: selection,
	}
}

// GetContent returns the native markup verbatim.
func (a *wysiwygArea) GetContent(ctx context.Context) (string, error) {
	return a.surface.ReadText(ctx)
}

// SetContent normalizes the recognized visually-empty forms to the
// sentinel paragraph and stores everything else verbatim. While a
// composition is in progress the write is skipped, best-effort.
func (a *wysiwygArea) SetContent(ctx context.Context, fragment string) error {
	if a.selection != nil && a.selection.IsComposing() {
		tracer().Debugf("wysiwyg area: composition in progress, content not set")
		return nil
	}
	switch fragment {
	case "", "<br>", "<p></p>":
		fragment = markup.EmptyParagraph
	}
	return a.surface.WriteText(ctx, fragment)
}

// Focus restores the saved caret when a selection collaborator is
// configured; otherwise the caret goes to the start. No-op while hidden.
func (a *wysiwygArea) Focus() {
	if !a.surface.Visible() {
		return
	}
	if a.selection != nil {
		a.selection.RestoreCaret()
		return
	}
	a.surface.Focus(0)
}
