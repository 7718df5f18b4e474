package server

import (
	"sync"

	"github.com/google/uuid"
)

// scanStore keeps the most recent detection results so later tool calls can
// refer to them by id. The oldest result is dropped once the store is full.
type scanStore struct {
	mu      sync.RWMutex
	max     int
	results map[string]*DetectResult
	order   []string
}

func newScanStore(max int) *scanStore {
	if max < 1 {
		max = 1
	}
	return &scanStore{
		max:     max,
		results: make(map[string]*DetectResult),
	}
}

// put assigns res a fresh scan id and stores it. It returns the paths of
// evicted results that no stored scan refers to any more.
func (st *scanStore) put(res *DetectResult) (id string, released []string) {
	id = uuid.NewString()
	res.ScanID = id

	st.mu.Lock()
	defer st.mu.Unlock()

	st.results[id] = res
	st.order = append(st.order, id)
	for len(st.order) > st.max {
		old := st.results[st.order[0]]
		delete(st.results, st.order[0])
		st.order = st.order[1:]
		if !st.holdsPath(old.Path) {
			released = append(released, old.Path)
		}
	}
	return id, released
}

// holdsPath reports whether any stored result was taken from path. The caller
// holds st.mu.
func (st *scanStore) holdsPath(path string) bool {
	for _, res := range st.results {
		if res.Path == path {
			return true
		}
	}
	return false
}

func (st *scanStore) get(id string) (*DetectResult, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	res, ok := st.results[id]
	return res, ok
}

func (st *scanStore) len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.results)
}
