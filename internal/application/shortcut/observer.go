package shortcut

// Observer receives structural change notifications from a Registry.
// Callbacks run synchronously on the goroutine that mutated the registry.
type Observer interface {
	// RegistryReset brackets a full content replacement: begin is true
	// before entries are dropped and false once the new content is in place.
	RegistryReset(begin bool)
	RowInserted(row int)
	RowRemoved(row int)
	DirtyChanged(dirty bool)
}

// ObserverFuncs adapts optional callbacks to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	OnReset        func(begin bool)
	OnRowInserted  func(row int)
	OnRowRemoved   func(row int)
	OnDirtyChanged func(dirty bool)
}

func (f ObserverFuncs) RegistryReset(begin bool) {
	if f.OnReset != nil {
		f.OnReset(begin)
	}
}

func (f ObserverFuncs) RowInserted(row int) {
	if f.OnRowInserted != nil {
		f.OnRowInserted(row)
	}
}

func (f ObserverFuncs) RowRemoved(row int) {
	if f.OnRowRemoved != nil {
		f.OnRowRemoved(row)
	}
}

func (f ObserverFuncs) DirtyChanged(dirty bool) {
	if f.OnDirtyChanged != nil {
		f.OnDirtyChanged(dirty)
	}
}

// Subscribe registers o and returns a function that unregisters it.
func (r *Registry) Subscribe(o Observer) func() {
	r.nextObserverID++
	id := r.nextObserverID
	r.observers = append(r.observers, observerSlot{id: id, observer: o})

	return func() {
		for i, slot := range r.observers {
			if slot.id == id {
				r.observers = append(r.observers[:i:i], r.observers[i+1:]...)
				return
			}
		}
	}
}

// snapshotObservers lets callbacks unsubscribe while being notified.
func (r *Registry) snapshotObservers() []observerSlot {
	out := make([]observerSlot, len(r.observers))
	copy(out, r.observers)
	return out
}

func (r *Registry) notifyReset(begin bool) {
	for _, slot := range r.snapshotObservers() {
		slot.observer.RegistryReset(begin)
	}
}

func (r *Registry) notifyInserted(row int) {
	for _, slot := range r.snapshotObservers() {
		slot.observer.RowInserted(row)
	}
}

func (r *Registry) notifyRemoved(row int) {
	for _, slot := range r.snapshotObservers() {
		slot.observer.RowRemoved(row)
	}
}
