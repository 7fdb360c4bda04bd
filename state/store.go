package state

import "sync"

// Store holds the current State snapshot. Safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	cur State
}

// NewStore creates an empty state store.
func NewStore() *Store {
	return &Store{}
}

// Dispatch applies an event and returns the resulting snapshot.
func (st *Store) Dispatch(ev Event) State {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.cur = Apply(st.cur, ev)
	return st.cur
}

// Snapshot returns the current state.
func (st *Store) Snapshot() State {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.cur
}
