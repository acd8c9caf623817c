package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/npillmayer/editarea/host"
)

// Area is one editing surface, bound 1:1 to a Mode and owned exclusively
// by a Manager. Content crosses the Area boundary in the interchange
// representation, a markup-fragment string whose canonical empty form is
// markup.EmptyParagraph.
//
// GetContent, SetContent, Show and Hide may suspend at the host boundary.
// SetContent is best-effort: malformed markup is stored as-is, it never
// fails for content reasons. Show, Hide and Destroy are idempotent.
type Area interface {
	Mode() Mode
	GetContent(ctx context.Context) (string, error)
	SetContent(ctx context.Context, fragment string) error
	RawContent(ctx context.Context) (string, error)
	SetRawContent(ctx context.Context, raw string) error
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
	Focus()
	SetEditable(editable bool)
	Visible() bool
	Editable() bool
	Destroy()
}

// baseArea carries the surface plumbing common to all three variants.
type baseArea struct {
	mode    Mode
	surface host.Surface
}

func (a *baseArea) Mode() Mode {
	return a.mode
}

// RawContent returns the native representation, bypassing conversion.
func (a *baseArea) RawContent(ctx context.Context) (string, error) {
	return a.surface.ReadText(ctx)
}

// SetRawContent stores the native representation, bypassing conversion.
func (a *baseArea) SetRawContent(ctx context.Context, raw string) error {
	return a.surface.WriteText(ctx, raw)
}

func (a *baseArea) Show(ctx context.Context) error {
	return a.surface.Show(ctx)
}

func (a *baseArea) Hide(ctx context.Context) error {
	return a.surface.Hide(ctx)
}

// Focus places the caret at the start of the surface, best-effort. No-op
// while hidden.
func (a *baseArea) Focus() {
	if !a.surface.Visible() {
		return
	}
	a.surface.Focus(0)
}

func (a *baseArea) SetEditable(editable bool) {
	a.surface.SetEditable(editable)
}

func (a *baseArea) Visible() bool {
	return a.surface.Visible()
}

func (a *baseArea) Editable() bool {
	return a.surface.Editable()
}

func (a *baseArea) Destroy() {
	a.surface.Destroy()
}
