package domain

import "sort"

// Entry is one named value of a state snapshot.
type Entry struct {
	Key   string
	Value any
}

// Snapshot is an ordered, read-only view of a state mapping.
// Iteration order is the order of the entries.
type Snapshot []Entry

// SnapshotOf builds a Snapshot from a map, ordering keys lexically
// since Go maps carry no iteration order.
func SnapshotOf(m map[string]any) Snapshot {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make(Snapshot, 0, len(keys))
	for _, k := range keys {
		s = append(s, Entry{Key: k, Value: m[k]})
	}
	return s
}
