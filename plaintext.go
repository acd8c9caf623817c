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

// textArea is the plain-text surface. Inline formatting does not survive
// the trip through this mode; text content does. This is a documented
// lossy boundary, not a defect.
type textArea struct {
	baseArea
}

func newTextArea(surface host.Surface) *textArea {
	return &textArea{
		baseArea: baseArea{mode: ModeText, surface: surface},
	}
}

// GetContent converts the native text to interchange markup. An empty
// surface yields the sentinel paragraph.
func (a *textArea) GetContent(ctx context.Context) (string, error) {
	raw, err := a.surface.ReadText(ctx)
	if err != nil {
		return "", err
	}
	return markup.FromText(raw), nil
}

// SetContent stores the plain-text rendition of the fragment.
func (a *textArea) SetContent(ctx context.Context, fragment string) error {
	return a.surface.WriteText(ctx, markup.ToText(fragment))
}
