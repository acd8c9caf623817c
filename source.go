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

// sourceEmptyMarkers are the interchange forms which the markup-source
// surface treats as an empty document.
var sourceEmptyMarkers = map[string]bool{
	"":                    true,
	"<br>":                true,
	"<p>&nbsp;</p>":       true,
	markup.EmptyParagraph: true,
	"<p></p>":             true,
}

// sourceArea is the raw-markup surface. Its native representation is the
// pretty-printed fragment; the empty document is the empty string.
type sourceArea struct {
	baseArea
}

func newSourceArea(surface host.Surface) *sourceArea {
	return &sourceArea{
		baseArea: baseArea{mode: ModeMarkup, surface: surface},
	}
}

// GetContent returns the native text verbatim. The pretty-printed form is
// already valid interchange markup, no re-parse happens.
func (a *sourceArea) GetContent(ctx context.Context) (string, error) {
	return a.surface.ReadText(ctx)
}

// SetContent normalizes recognized empty markers to the empty string and
// pretty-prints everything else for display.
func (a *sourceArea) SetContent(ctx context.Context, fragment string) error {
	if sourceEmptyMarkers[fragment] {
		return a.surface.WriteText(ctx, "")
	}
	return a.surface.WriteText(ctx, markup.Format(fragment))
}
