package category

// Map is the session-scoped merchant-name → category store. Entries are
// only ever added or overwritten, never removed; Reset replaces the whole
// map when a new file is uploaded.
type Map struct {
	byName map[string]string
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{byName: make(map[string]string)}
}

// Lookup returns the stored category for a name.
func (m *Map) Lookup(name string) (string, bool) {
	c, ok := m.byName[name]
	return c, ok
}

// Merge copies entries into the map, overwriting existing names.
func (m *Map) Merge(entries map[string]string) {
	for name, cat := range entries {
		m.byName[name] = cat
	}
}

// Set stores one entry, e.g. a user override.
func (m *Map) Set(name, cat string) {
	m.byName[name] = cat
}

// Len returns the number of stored entries.
func (m *Map) Len() int {
	return len(m.byName)
}

// Reset clears all entries.
func (m *Map) Reset() {
	m.byName = make(map[string]string)
}
