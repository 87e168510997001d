package wrap

import "sync"

// Handle identifies a live pairing in the table. Handle 0 is reserved and
// always invalid.
type Handle uint32

// EventType enumerates pairing lifecycle notifications.
type EventType uint8

const (
	EventAttached EventType = iota
	EventFinalized
)

// Event describes one pairing lifecycle change.
type Event struct {
	Native any
	Handle Handle
	Tag    uint32
	Type   EventType
}

// Observer receives pairing lifecycle events.
type Observer interface {
	OnWrapEvent(Event)
}

// Table tracks every live pairing for diagnostics: how many natives are
// attached, with which tags, and when they get finalized. Mutating the
// pairings themselves stays on the VM thread; the table is independently
// locked so observers and diagnostic readers may run elsewhere.
type Table struct {
	mu        sync.RWMutex
	entries   []*Data
	freeList  []Handle
	observers []Observer
}

// live is the process-wide table every Attach registers into.
var live = &Table{}

// Live returns the process-wide pairing table.
func Live() *Table { return live }

func (t *Table) add(d *Data) Handle {
	t.mu.Lock()
	var h Handle
	if n := len(t.freeList); n > 0 {
		h = t.freeList[n-1]
		t.freeList = t.freeList[:n-1]
		t.entries[h-1] = d
	} else {
		t.entries = append(t.entries, d)
		h = Handle(len(t.entries))
	}
	t.mu.Unlock()

	t.notify(Event{Type: EventAttached, Handle: h, Tag: d.tag, Native: d.native})
	return h
}

func (t *Table) remove(h Handle) {
	if h == 0 {
		return
	}
	t.mu.Lock()
	idx := int(h) - 1
	if idx >= len(t.entries) || t.entries[idx] == nil {
		t.mu.Unlock()
		return
	}
	d := t.entries[idx]
	t.entries[idx] = nil
	t.freeList = append(t.freeList, h)
	t.mu.Unlock()

	t.notify(Event{Type: EventFinalized, Handle: h, Tag: d.tag, Native: d.native})
}

// Get returns the pairing for a handle.
func (t *Table) Get(h Handle) (*Data, bool) {
	if h == 0 {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	idx := int(h) - 1
	if idx >= len(t.entries) || t.entries[idx] == nil {
		return nil, false
	}
	return t.entries[idx], true
}

// Len returns the number of live pairings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n := 0
	for _, d := range t.entries {
		if d != nil {
			n++
		}
	}
	return n
}

// Each iterates over live pairings until fn returns false.
func (t *Table) Each(fn func(Handle, *Data) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, d := range t.entries {
		if d != nil {
			if !fn(Handle(i+1), d) {
				return
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (t *Table) Subscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table) Unsubscribe(o Observer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

func (t *Table) notify(e Event) {
	t.mu.RLock()
	obs := t.observers
	t.mu.RUnlock()
	for _, o := range obs {
		o.OnWrapEvent(e)
	}
}
