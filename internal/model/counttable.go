package model

// CountTable is an insertion-ordered counter keyed by string. Keys() yields
// keys in the order they were first seeded or incremented, which is the
// order the report lists them in.
type CountTable struct {
	keys   []string
	counts map[string]uint64
}

// NewCountTable creates an empty count table.
func NewCountTable() *CountTable {
	return &CountTable{counts: make(map[string]uint64)}
}

// Seed inserts key with a zero count if it is not already present, so the
// key is reported even when nothing increments it.
func (t *CountTable) Seed(key string) {
	if _, ok := t.counts[key]; !ok {
		t.counts[key] = 0
		t.keys = append(t.keys, key)
	}
}

// Increment adds one to the count for key, inserting it first if absent.
func (t *CountTable) Increment(key string) {
	if _, ok := t.counts[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.counts[key]++
}

// Get returns the count for key and whether the key is present.
func (t *CountTable) Get(key string) (uint64, bool) {
	count, ok := t.counts[key]
	return count, ok
}

// Keys returns all keys in first-insertion order.
func (t *CountTable) Keys() []string {
	return t.keys
}

// Len returns the number of distinct keys.
func (t *CountTable) Len() int {
	return len(t.keys)
}
