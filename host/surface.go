package host

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "context"

// Container is an opaque handle on the host region which surfaces attach
// to. The package never inspects it; it is handed through to the Factory.
type Container interface{}

// Options parametrize the construction of a single surface.
type Options struct {
	Container  Container // host region to attach to
	ClassName  string    // host-side style class for the surface
	MinHeight  int       // minimum display height, px
	AutoResize bool      // grow with content instead of scrolling
	LineWidth  int       // wrap width used for height measurement, cells
}

// Surface is a native editing surface. Content and visibility operations
// may suspend at the host boundary and take a context; state accessors are
// immediate.
//
// Show, Hide and Destroy are idempotent.
type Surface interface {
	ReadText(ctx context.Context) (string, error)
	WriteText(ctx context.Context, text string) error
	Show(ctx context.Context) error
	Hide(ctx context.Context) error
	Focus(pos int)
	SetEditable(editable bool)
	Visible() bool
	Editable() bool
	Height() int
	Destroy()
}

// Factory creates a surface on demand. Areas call it at most once and hold
// on to the result.
type Factory func(Options) (Surface, error)
