package service

import (
	"sync"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/history"
	"github.com/ratel-online/uno/uno/game"
)

// Session owns one game. Every operation on the game holds the session lock.
type Session struct {
	sync.Mutex
	ID       string
	Created  time.Time
	Strategy game.Strategy

	game     *game.Game
	recorder *history.Recorder
	deleted  bool
}

// run calls fn under the session lock unless the session was deleted meanwhile.
func (s *Session) run(fn func(g *game.Game) error) error {
	s.Lock()
	defer s.Unlock()
	if s.deleted {
		return consts.ErrorsGameNotFound.Withf("game %s not found", s.ID)
	}
	return fn(s.game)
}
