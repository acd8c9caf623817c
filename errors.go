package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "errors"

var (
	// ErrUnknownMode signals a mode tag outside wysiwyg/markup/text. This is
	// a programmer error; callers must not retry.
	ErrUnknownMode = errors.New("editarea: unknown editing mode")
	// ErrCurrentAreaUnload signals an attempt to unload the area of the
	// current mode. The manager's state is left unchanged; callers may
	// ignore the error or switch modes first.
	ErrCurrentAreaUnload = errors.New("editarea: cannot unload the current editing area")
)
