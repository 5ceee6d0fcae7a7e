package seeder

// RefMap maps human-readable names to store-generated IDs within a
// single run. Looking up a name that was never created yields an empty
// ID, which callers treat as "no reference".
type RefMap struct {
	ids map[string]string
}

func NewRefMap() *RefMap {
	return &RefMap{ids: make(map[string]string)}
}

func (m *RefMap) Put(name, id string) {
	m.ids[name] = id
}

// Get returns the ID recorded for name, or "" when absent.
func (m *RefMap) Get(name string) string {
	return m.ids[name]
}

func (m *RefMap) Len() int {
	return len(m.ids)
}
