package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/history"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/player"
)

type Options struct {
	// DefaultStrategy drives auto-played turns of games that do not name one.
	DefaultStrategy string
	// HouseRules apply to games that do not bring their own.
	HouseRules game.HouseRules
	// Publisher receives every game action. Nil disables history.
	Publisher      history.Publisher
	HistoryTimeout time.Duration
	// Store holds the sessions. Nil gives the manager a registry of its own.
	Store *Store
}

// Manager is the public face of the engine: every call names a game by id
// and runs under that game's lock.
type Manager struct {
	opts  Options
	store *Store
}

func NewManager(opts Options) *Manager {
	if opts.DefaultStrategy == "" {
		opts.DefaultStrategy = consts.DefaultStrategy
	}
	if opts.HistoryTimeout <= 0 {
		opts.HistoryTimeout = consts.HistoryTimeout
	}
	if opts.Store == nil {
		opts.Store = NewStore()
	}
	return &Manager{opts: opts, store: opts.Store}
}

type CreateOptions struct {
	Players    int
	Seed       *int64
	Strategy   string
	HouseRules *game.HouseRules
	Names      []string
}

type TurnResult struct {
	State  game.Snapshot
	Winner *int
	Scores map[int]int
}

type DrawResult struct {
	Cards []card.Card
	State game.Snapshot
}

func (m *Manager) CreateGame(opts CreateOptions) (string, game.Snapshot, error) {
	strategyName := opts.Strategy
	if strategyName == "" {
		strategyName = m.opts.DefaultStrategy
	}
	strategy, err := player.New(strategyName, opts.Seed)
	if err != nil {
		return "", game.Snapshot{}, err
	}
	rules := m.opts.HouseRules
	if opts.HouseRules != nil {
		rules = *opts.HouseRules
	}

	gameID := uuid.NewString()
	bus := event.NewBus()
	bus.AddListener(newNarrator(gameID))
	var recorder *history.Recorder
	if m.opts.Publisher != nil {
		recorder = history.NewRecorder(gameID, m.opts.Publisher, m.opts.HistoryTimeout)
		bus.AddListener(recorder)
	}

	g, err := game.New(game.Options{
		Players:    opts.Players,
		Seed:       opts.Seed,
		Names:      opts.Names,
		HouseRules: rules,
		Events:     bus,
	})
	if err != nil {
		if recorder != nil {
			recorder.Close()
		}
		return "", game.Snapshot{}, err
	}

	session := &Session{
		ID:       gameID,
		Created:  time.Now(),
		Strategy: strategy,
		game:     g,
		recorder: recorder,
	}
	m.store.Add(session)

	names := make([]string, 0, g.NumPlayers())
	for index := 0; index < g.NumPlayers(); index++ {
		names = append(names, g.PlayerName(index))
	}
	log.Infof("%s", msg.Message.GameCreated(gameID, names))
	return gameID, g.Snapshot(), nil
}

func (m *Manager) withGame(gameID string, fn func(session *Session, g *game.Game) error) error {
	session, err := m.store.Get(gameID)
	if err != nil {
		return err
	}
	return session.run(func(g *game.Game) error {
		return fn(session, g)
	})
}

func (m *Manager) GetState(gameID string) (game.Snapshot, error) {
	var snapshot game.Snapshot
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		snapshot = g.Snapshot()
		return nil
	})
	return snapshot, err
}

// PlayTurn plays the card at handIndex, or lets the game's strategy take the
// turn when handIndex is nil.
func (m *Manager) PlayTurn(gameID string, playerIndex int, handIndex *int) (TurnResult, error) {
	var result TurnResult
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		var err error
		if handIndex == nil {
			err = g.AutoPlay(playerIndex, session.Strategy)
		} else {
			err = g.PlayCard(playerIndex, *handIndex)
		}
		if err != nil {
			return err
		}
		result = turnResult(g)
		return nil
	})
	return result, err
}

func turnResult(g *game.Game) TurnResult {
	result := TurnResult{State: g.Snapshot()}
	if winner, ok := g.Winner(); ok {
		result.Winner = &winner
		result.Scores, _ = g.Scores()
	}
	return result
}

func (m *Manager) DrawForTurn(gameID string, playerIndex int) (DrawResult, error) {
	var result DrawResult
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		cards, err := g.DrawForTurn(playerIndex)
		if err != nil {
			return err
		}
		result = DrawResult{Cards: cards, State: g.Snapshot()}
		return nil
	})
	return result, err
}

func (m *Manager) DrawCards(gameID string, playerIndex int, count int) (DrawResult, error) {
	var result DrawResult
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		cards, err := g.DrawCards(playerIndex, count)
		if err != nil {
			return err
		}
		result = DrawResult{Cards: cards, State: g.Snapshot()}
		return nil
	})
	return result, err
}

func (m *Manager) Pass(gameID string, playerIndex int) (game.Snapshot, error) {
	var snapshot game.Snapshot
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		if err := g.Pass(playerIndex); err != nil {
			return err
		}
		snapshot = g.Snapshot()
		return nil
	})
	return snapshot, err
}

func (m *Manager) ChooseColor(gameID string, playerIndex int, chosen color.Color) (game.Snapshot, error) {
	var snapshot game.Snapshot
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		if err := g.ChooseColor(playerIndex, chosen); err != nil {
			return err
		}
		snapshot = g.Snapshot()
		return nil
	})
	return snapshot, err
}

func (m *Manager) CalculateScore(gameID string) (map[int]int, error) {
	var scores map[int]int
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		var err error
		scores, err = g.Scores()
		return err
	})
	return scores, err
}

// DeleteGame drops the game. Operations already waiting on its lock fail
// with GameNotFound.
func (m *Manager) DeleteGame(gameID string) error {
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		session.deleted = true
		m.store.Delete(gameID)
		if session.recorder != nil {
			session.recorder.Record("game_deleted", map[string]interface{}{"turn": g.Turn()})
			session.recorder.Close()
		}
		return nil
	})
	if err == nil {
		log.Infof("game %s deleted\n", gameID)
	}
	return err
}

// Subscribe attaches listener to the game's events until the returned
// function is called. Listeners run under the game lock and must not block.
func (m *Manager) Subscribe(gameID string, listener interface{}) (func(), error) {
	var bus *event.Bus
	err := m.withGame(gameID, func(session *Session, g *game.Game) error {
		bus = g.Events()
		bus.AddListener(listener)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return func() { bus.RemoveListener(listener) }, nil
}

// Games lists the ids of live games, oldest first.
func (m *Manager) Games() []string {
	ids := make([]string, 0)
	for _, session := range m.store.List() {
		ids = append(ids, session.ID)
	}
	return ids
}
