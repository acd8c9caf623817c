package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"
	"sync"

	"github.com/npillmayer/editarea/host"
	"github.com/npillmayer/editarea/markup"
)

// Manager owns the three editing areas and orchestrates every transition
// between them. Areas are constructed lazily on first use and memoized;
// at most one area is visible at any time, and content moves between
// areas exclusively through the manager's cache in the interchange
// representation.
//
// Operations on a Manager are meant to be called sequentially; a single
// mutex spans each whole operation for hosts which cannot guarantee that.
// Issuing a second SwitchMode while a prior one suspends at the host
// boundary is undefined.
type Manager struct {
	mu      sync.Mutex
	config  Config
	areas   map[Mode]Area
	current Mode
	cache   string
}

// New creates a Manager for the given configuration. A nil surface
// factory defaults to in-memory buffers. An unrecognized initial mode
// yields ErrUnknownMode.
func New(config Config) (*Manager, error) {
	if !config.InitialMode.known() {
		return nil, ErrUnknownMode
	}
	if config.Surfaces == nil {
		config.Surfaces = host.NewFactory()
	}
	return &Manager{
		config:  config,
		areas:   make(map[Mode]Area),
		current: config.InitialMode,
		cache:   markup.EmptyParagraph,
	}, nil
}

// Initialize constructs the initial mode's area, shows it and emits
// EventInitialized.
func (m *Manager) Initialize(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	area, err := m.loadArea(m.current)
	if err != nil {
		return err
	}
	if err = area.Show(ctx); err != nil {
		return err
	}
	tracer().Infof("editing area manager initialized in mode '%s'", m.current)
	m.emit(Event{Kind: EventInitialized, From: m.current, To: m.current})
	return nil
}

// SwitchMode transitions to the target mode. A switch to the current mode
// is a no-op. Content is read from the outgoing area into the cache, the
// outgoing area is hidden strictly before the incoming one is shown, and
// the incoming area receives the cached content before becoming visible.
// Surface failures propagate to the caller unretried.
func (m *Manager) SwitchMode(ctx context.Context, target Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !target.known() {
		return ErrUnknownMode
	}
	if target == m.current {
		return nil
	}
	from := m.current
	tracer().Infof("switching editing mode '%s' -> '%s'", from, target)
	m.emit(Event{Kind: EventModeChanging, From: from, To: target})
	outgoing, err := m.loadArea(from)
	if err != nil {
		return err
	}
	content, err := outgoing.GetContent(ctx)
	if err != nil {
		return err
	}
	m.cache = content
	if err = outgoing.Hide(ctx); err != nil {
		return err
	}
	incoming, err := m.loadArea(target)
	if err != nil {
		return err
	}
	if err = incoming.SetContent(ctx, m.cache); err != nil {
		return err
	}
	if err = incoming.Show(ctx); err != nil {
		return err
	}
	incoming.Focus()
	m.current = target
	m.emit(Event{Kind: EventModeChanged, From: from, To: target})
	return nil
}

// Mode returns the current editing mode.
func (m *Manager) Mode() Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// GetContent reads the current area's content, refreshing the cache.
func (m *Manager) GetContent(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	area, err := m.loadArea(m.current)
	if err != nil {
		return "", err
	}
	content, err := area.GetContent(ctx)
	if err != nil {
		return "", err
	}
	m.cache = content
	return content, nil
}

// SetContent writes content to the current area and the cache.
func (m *Manager) SetContent(ctx context.Context, fragment string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	area, err := m.loadArea(m.current)
	if err != nil {
		return err
	}
	if err = area.SetContent(ctx, fragment); err != nil {
		return err
	}
	m.cache = fragment
	return nil
}

// Focus delegates to the current area, if loaded.
func (m *Manager) Focus() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if area, ok := m.areas[m.current]; ok {
		area.Focus()
	}
}

// SetEditable applies to every loaded area, not just the current one, so a
// later switch never lands on a stale editable state.
func (m *Manager) SetEditable(editable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, area := range m.areas {
		area.SetEditable(editable)
	}
}

// Area returns the area for a mode, loading it if absent.
func (m *Manager) Area(mode Mode) (Area, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadArea(mode)
}

// IsAreaLoaded reports whether the area for a mode has been constructed.
// It never triggers construction.
func (m *Manager) IsAreaLoaded(mode Mode) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.areas[mode]
	return ok
}

// UnloadArea destroys and evicts the area of a non-current mode, a pure
// memory-reclaim operation. Unloading the current mode's area fails with
// ErrCurrentAreaUnload and mutates nothing.
func (m *Manager) UnloadArea(mode Mode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !mode.known() {
		return ErrUnknownMode
	}
	if mode == m.current {
		return ErrCurrentAreaUnload
	}
	if area, ok := m.areas[mode]; ok {
		area.Destroy()
		delete(m.areas, mode)
		tracer().Debugf("unloaded editing area '%s'", mode)
	}
	return nil
}

// Destroy destroys every loaded area, clears the registry and emits
// EventDestroyed.
func (m *Manager) Destroy() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for mode, area := range m.areas {
		area.Destroy()
		delete(m.areas, mode)
	}
	m.emit(Event{Kind: EventDestroyed})
	tracer().Infof("editing area manager destroyed")
}

// loadArea constructs and memoizes the area for a mode. Callers hold m.mu.
func (m *Manager) loadArea(mode Mode) (Area, error) {
	if area, ok := m.areas[mode]; ok {
		return area, nil
	}
	if !mode.known() {
		return nil, ErrUnknownMode
	}
	surface, err := m.config.Surfaces(host.Options{
		Container:  m.config.Container,
		ClassName:  m.config.ClassNames[mode],
		MinHeight:  m.config.MinHeight,
		AutoResize: m.config.AutoResize,
		LineWidth:  m.config.LineWidth,
	})
	if err != nil {
		return nil, err
	}
	var area Area
	switch mode {
	case ModeWYSIWYG:
		area = newWYSIWYGArea(surface, m.config.Selection)
	case ModeMarkup:
		area = newSourceArea(surface)
	case ModeText:
		area = newTextArea(surface)
	}
	m.areas[mode] = area
	tracer().Debugf("loaded editing area '%s'", mode)
	return area, nil
}

func (m *Manager) emit(e Event) {
	if m.config.Events != nil {
		m.config.Events.Post(e)
	}
}
