package event

import "sync"

type listeners[L comparable] struct {
	mu    sync.RWMutex
	items []L
}

func (s *listeners[L]) add(listener L) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, listener)
}

func (s *listeners[L]) remove(listener L) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.items {
		if item == listener {
			s.items = append(s.items[:i:i], s.items[i+1:]...)
			return
		}
	}
}

func (s *listeners[L]) list() []L {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]L, len(s.items))
	copy(items, s.items)
	return items
}
