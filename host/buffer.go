package host

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"sync"

	"github.com/npillmayer/cords"
)

// Buffer is an in-memory Surface for non-interactive hosts. It holds its
// text as a cord and tracks visibility, editability and a caret position.
// A Buffer never blocks; the context is only checked for cancellation at
// entry of the suspending operations.
type Buffer struct {
	mu        sync.Mutex
	opts      Options
	text      cords.Cord
	caret     int
	visible   bool
	editable  bool
	destroyed bool
}

// NewBuffer creates an empty in-memory surface. The zero Options value is
// usable; MinHeight then defaults to 1 and LineWidth to 65.
func NewBuffer(opts Options) *Buffer {
	if opts.MinHeight <= 0 {
		opts.MinHeight = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 65
	}
	return &Buffer{
		opts:     opts,
		editable: true,
	}
}

// NewFactory returns a Factory producing Buffers.
func NewFactory() Factory {
	return func(opts Options) (Surface, error) {
		return NewBuffer(opts), nil
	}
}

// ReadText returns the buffer's text.
func (b *Buffer) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text.String(), nil
}

// WriteText replaces the buffer's text.
func (b *Buffer) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = cords.FromString(text)
	return nil
}

// Append adds text at the end of the buffer, simulating host-side input.
func (b *Buffer) Append(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = cords.Concat(b.text, cords.FromString(text))
	return nil
}

// Show makes the buffer visible. Idempotent.
func (b *Buffer) Show(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.visible {
		tracer().Debugf("buffer surface '%s': show", b.opts.ClassName)
		b.visible = true
	}
	return nil
}

// Hide makes the buffer invisible. Idempotent.
func (b *Buffer) Hide(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.visible {
		tracer().Debugf("buffer surface '%s': hide", b.opts.ClassName)
		b.visible = false
	}
	return nil
}

// Focus places the caret, clamping pos to the text boundaries. Focusing an
// invisible buffer is a no-op.
func (b *Buffer) Focus(pos int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.visible {
		return
	}
	if pos < 0 {
		pos = 0
	}
	if l := int(b.text.Len()); pos > l {
		pos = l
	}
	b.caret = pos
}

// Caret returns the current caret position in bytes.
func (b *Buffer) Caret() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.caret
}

// SetEditable toggles whether host-side input would be accepted.
func (b *Buffer) SetEditable(editable bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editable = editable
}

// Visible reports whether the buffer currently owns the container region.
func (b *Buffer) Visible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.visible
}

// Editable reports whether host-side input would be accepted.
func (b *Buffer) Editable() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editable
}

// Height returns the buffer's display height. Without auto-resize this is
// the configured minimum; with auto-resize the content is line-wrapped at
// the configured width and the larger of line count and minimum wins.
func (b *Buffer) Height() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.opts.AutoResize {
		return b.opts.MinHeight
	}
	lines := wrappedLineCount(b.text.String(), b.opts.LineWidth)
	if lines < b.opts.MinHeight {
		return b.opts.MinHeight
	}
	return lines
}

// Destroy releases the buffer's content. Idempotent.
func (b *Buffer) Destroy() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.destroyed {
		return
	}
	b.destroyed = true
	b.visible = false
	b.text = cords.Cord{}
}
