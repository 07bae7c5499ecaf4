package slider

// Listener handles a pointer event.
type Listener func(*PointerEvent)

// ListenerID identifies a registered listener.
type ListenerID uint64

// EventTarget is something pointer listeners can be attached to, such as
// the document.
type EventTarget interface {
	AddEventListener(kind EventKind, l Listener) ListenerID
	RemoveEventListener(id ListenerID)
}

type registration struct {
	id       ListenerID
	kind     EventKind
	listener Listener
}

// Document receives every pointer event the host sees, wherever it lands.
// It is not safe for concurrent use; hosts drive it from their event loop.
type Document struct {
	nextID        ListenerID
	registrations []registration
}

func NewDocument() *Document {
	return &Document{}
}

func (d *Document) AddEventListener(kind EventKind, l Listener) ListenerID {
	d.nextID++
	d.registrations = append(d.registrations, registration{id: d.nextID, kind: kind, listener: l})
	return d.nextID
}

// RemoveEventListener is a no-op for unknown ids.
func (d *Document) RemoveEventListener(id ListenerID) {
	for i, r := range d.registrations {
		if r.id == id {
			d.registrations = append(d.registrations[:i:i], d.registrations[i+1:]...)
			return
		}
	}
}

// Dispatch calls the listeners registered for ev.Kind in registration
// order. Listeners removed by an earlier listener are skipped.
func (d *Document) Dispatch(ev *PointerEvent) {
	var ids []ListenerID
	for _, r := range d.registrations {
		if r.kind == ev.Kind {
			ids = append(ids, r.id)
		}
	}
	for _, id := range ids {
		if l := d.lookup(id); l != nil {
			l(ev)
		}
	}
}

// Len returns the number of registered listeners.
func (d *Document) Len() int {
	return len(d.registrations)
}

func (d *Document) lookup(id ListenerID) Listener {
	for _, r := range d.registrations {
		if r.id == id {
			return r.listener
		}
	}
	return nil
}
