package store

// Layered is a Store backed by a writable top layer and an ordered list of
// fallback readers. Get consults the top layer first and then the fallbacks
// in the order given, returning the first hit, so earlier layers shadow later
// ones; a typical stack is user values over environment over defaults.
//
// Writes go to the top layer only. Deleting a name from the top layer can
// therefore unshadow a value held by a fallback. Len and Keys enumerate the
// top layer only, since fallback readers are presence-checked, not iterable.
type Layered struct {
	top       Store
	fallbacks []Reader
}

// NewLayered constructs a layered store. Nil fallbacks are skipped; a nil top
// is replaced with an empty in-memory store.
func NewLayered(top Store, fallbacks ...Reader) *Layered {
	if top == nil {
		top = NewMemory()
	}
	kept := make([]Reader, 0, len(fallbacks))
	for _, layer := range fallbacks {
		if layer != nil {
			kept = append(kept, layer)
		}
	}
	return &Layered{top: top, fallbacks: kept}
}

func (l *Layered) Get(name string) (string, bool) {
	if value, ok := l.top.Get(name); ok {
		return value, true
	}
	for _, layer := range l.fallbacks {
		if value, ok := layer.Get(name); ok {
			return value, true
		}
	}
	return "", false
}

func (l *Layered) Set(name, value string) {
	l.top.Set(name, value)
}

func (l *Layered) Delete(name string) {
	l.top.Delete(name)
}

func (l *Layered) Len() int {
	return l.top.Len()
}

func (l *Layered) Keys() []string {
	return l.top.Keys()
}
