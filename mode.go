package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

// Mode identifies one of the three editing surfaces. The zero value is
// ModeWYSIWYG, the default surface.
type Mode int

const (
	// ModeWYSIWYG is the visually rendered editing surface.
	ModeWYSIWYG Mode = iota
	// ModeMarkup is the raw-markup source editing surface.
	ModeMarkup
	// ModeText is the plain-text editing surface.
	ModeText
)

var modeTags = map[Mode]string{
	ModeWYSIWYG: "wysiwyg",
	ModeMarkup:  "markup",
	ModeText:    "text",
}

func (m Mode) String() string {
	if tag, ok := modeTags[m]; ok {
		return tag
	}
	return "unknown"
}

func (m Mode) known() bool {
	_, ok := modeTags[m]
	return ok
}

// ParseMode maps a mode tag to its Mode. Unrecognized tags yield
// ErrUnknownMode.
func ParseMode(tag string) (Mode, error) {
	for m, t := range modeTags {
		if t == tag {
			return m, nil
		}
	}
	return ModeWYSIWYG, ErrUnknownMode
}
