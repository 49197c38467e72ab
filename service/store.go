package service

import (
	"sort"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/uno/consts"
)

// Store is a session registry keyed by game id. Registry calls never take a
// session lock.
type Store struct {
	sessions *hashmap.HashMap
}

func NewStore() *Store {
	return &Store{sessions: hashmap.New()}
}

func (s *Store) Add(session *Session) {
	s.sessions.Set(session.ID, session)
}

func (s *Store) Get(gameID string) (*Session, error) {
	if v, ok := s.sessions.Get(gameID); ok {
		return v.(*Session), nil
	}
	return nil, consts.ErrorsGameNotFound.Withf("game %s not found", gameID)
}

func (s *Store) Delete(gameID string) {
	s.sessions.Del(gameID)
}

func (s *Store) Len() int {
	return int(s.sessions.Size())
}

// List returns live sessions, oldest first.
func (s *Store) List() []*Session {
	list := make([]*Session, 0)
	s.sessions.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Session))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].Created.Equal(list[j].Created) {
			return list[i].ID < list[j].ID
		}
		return list[i].Created.Before(list[j].Created)
	})
	return list
}
