package editarea

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"context"

	"github.com/guiguan/caster"
)

// EventKind enumerates the lifecycle notifications a manager emits.
type EventKind int

const (
	// EventInitialized fires once after the initial area is shown.
	EventInitialized EventKind = iota
	// EventModeChanging fires before a mode transition starts moving content.
	EventModeChanging
	// EventModeChanged fires after a mode transition completed.
	EventModeChanged
	// EventDestroyed fires after all areas have been destroyed.
	EventDestroyed
)

func (k EventKind) String() string {
	switch k {
	case EventInitialized:
		return "initialized"
	case EventModeChanging:
		return "modeChanging"
	case EventModeChanged:
		return "modeChanged"
	case EventDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Event is a lifecycle notification. From and To carry the modes involved
// in a transition; for EventInitialized both hold the initial mode, for
// EventDestroyed both are meaningless.
type Event struct {
	Kind EventKind
	From Mode
	To   Mode
}

// EventSink receives lifecycle events, fire-and-forget. Implementations
// must not block: delivery happens inside manager operations and carries
// no back-pressure or delivery guarantee.
type EventSink interface {
	Post(e Event)
}

// Broadcaster is a caster-backed EventSink which fans events out to any
// number of subscribers. Events posted while no subscriber listens, or
// while a subscriber's channel is full, are dropped.
type Broadcaster struct {
	cast *caster.Caster
}

// NewBroadcaster creates a running Broadcaster. Close it when done.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		cast: caster.New(nil),
	}
}

// Post publishes an event to all subscribers without blocking.
// (Part of interface EventSink)
func (b *Broadcaster) Post(e Event) {
	b.cast.TryPub(e)
}

// Subscribe returns a channel of events. The subscription ends when ctx is
// done or the broadcaster closes; the channel is closed either way. ok is
// false if the broadcaster has already been closed.
func (b *Broadcaster) Subscribe(ctx context.Context) (events <-chan Event, ok bool) {
	src, ok := b.cast.Sub(ctx, 8)
	if !ok {
		return nil, false
	}
	out := make(chan Event, 8)
	go func() {
		defer close(out)
		for m := range src {
			if e, isEvent := m.(Event); isEvent {
				out <- e
			}
		}
	}()
	return out, true
}

// Close shuts the broadcaster down and closes all subscriptions.
func (b *Broadcaster) Close() {
	b.cast.Close()
}
