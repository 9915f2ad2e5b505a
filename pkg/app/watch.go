package app

import (
	"context"
	"sync"
)

// EventType describes what changed in the session.
type EventType int

const (
	// EventEntriesChanged means entries were added or removed.
	EventEntriesChanged EventType = iota
	// EventEntryChanged means the title or content of EntryID changed.
	EventEntryChanged
	// EventSelectionChanged means the selected date or level moved.
	EventSelectionChanged
)

func (t EventType) String() string {
	switch t {
	case EventEntriesChanged:
		return "entries"
	case EventEntryChanged:
		return "entry"
	case EventSelectionChanged:
		return "selection"
	default:
		return "unknown"
	}
}

// Event is emitted to watchers after a mutation succeeds.
type Event struct {
	Type    EventType
	EntryID string
}

type watchers struct {
	mu   sync.Mutex
	next int
	subs map[int]chan Event
}

// Watch streams change events until ctx is cancelled. Slow consumers miss
// events rather than block the service; they should re-read a snapshot on
// every event they do receive.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ch, id := s.watchers.add()
	go func() {
		<-ctx.Done()
		s.watchers.remove(id)
	}()
	return ch, nil
}

func (w *watchers) add() (chan Event, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.subs == nil {
		w.subs = make(map[int]chan Event)
	}
	id := w.next
	w.next++
	ch := make(chan Event, 64)
	w.subs[id] = ch
	return ch, id
}

func (w *watchers) remove(id int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ch, ok := w.subs[id]; ok {
		delete(w.subs, id)
		close(ch)
	}
}

func (w *watchers) publish(ev Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ch := range w.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
