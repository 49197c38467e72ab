package service_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/history"
	"github.com/ratel-online/uno/service"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func seed(value int64) *int64 {
	return &value
}

func cardCount(snapshot game.Snapshot) int {
	total := snapshot.DrawPileCount + snapshot.DiscardCount
	for _, hand := range snapshot.Hands {
		total += len(hand)
	}
	return total
}

func playUntilWon(t *testing.T, manager *service.Manager, gameID string) service.TurnResult {
	t.Helper()
	for turns := 0; turns < 10000; turns++ {
		state, err := manager.GetState(gameID)
		require.NoError(t, err)
		result, err := manager.PlayTurn(gameID, state.CurrentPlayer, nil)
		require.NoError(t, err)
		require.Equal(t, 108, cardCount(result.State))
		if result.Winner != nil {
			return result
		}
	}
	t.Fatal("game did not finish")
	return service.TurnResult{}
}

func TestCreateGame(t *testing.T) {
	manager := service.NewManager(service.Options{})

	t.Run("rejects_bad_player_counts", func(t *testing.T) {
		_, _, err := manager.CreateGame(service.CreateOptions{Players: 1})
		require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))
		_, _, err = manager.CreateGame(service.CreateOptions{Players: 11})
		require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))
	})

	t.Run("rejects_unknown_strategies", func(t *testing.T) {
		_, _, err := manager.CreateGame(service.CreateOptions{Players: 2, Strategy: "psychic"})
		require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))
	})

	t.Run("returns_the_initial_state", func(t *testing.T) {
		gameID, state, err := manager.CreateGame(service.CreateOptions{Players: 3, Seed: seed(42), Names: []string{"Alice"}})
		require.NoError(t, err)
		require.NotEmpty(t, gameID)
		require.Equal(t, 3, state.NumPlayers)
		require.Equal(t, "Alice", state.Players[0].Name)
		require.Equal(t, 108, cardCount(state))
		require.Contains(t, manager.Games(), gameID)

		fetched, err := manager.GetState(gameID)
		require.NoError(t, err)
		require.Equal(t, state, fetched)
	})

	t.Run("applies_house_rules", func(t *testing.T) {
		manager := service.NewManager(service.Options{HouseRules: game.HouseRules{StackDrawCards: true}})
		_, state, err := manager.CreateGame(service.CreateOptions{Players: 2})
		require.NoError(t, err)
		require.True(t, state.HouseRules.StackDrawCards)

		_, state, err = manager.CreateGame(service.CreateOptions{Players: 2, HouseRules: &game.HouseRules{FirstCardEffects: true}})
		require.NoError(t, err)
		require.False(t, state.HouseRules.StackDrawCards)
		require.True(t, state.HouseRules.FirstCardEffects)
	})
}

func TestUnknownGame(t *testing.T) {
	manager := service.NewManager(service.Options{})
	_, err := manager.GetState("missing")
	require.True(t, errors.Is(err, consts.ErrorsGameNotFound))
	_, err = manager.PlayTurn("missing", 0, nil)
	require.True(t, errors.Is(err, consts.ErrorsGameNotFound))
	_, err = manager.CalculateScore("missing")
	require.True(t, errors.Is(err, consts.ErrorsGameNotFound))
	require.True(t, errors.Is(manager.DeleteGame("missing"), consts.ErrorsGameNotFound))
	_, err = manager.Subscribe("missing", event.NewDummyListener())
	require.True(t, errors.Is(err, consts.ErrorsGameNotFound))
}

func TestPlayTurn(t *testing.T) {
	t.Run("seeded_two_player_game_ends_with_a_winner", func(t *testing.T) {
		manager := service.NewManager(service.Options{})
		gameID, _, err := manager.CreateGame(service.CreateOptions{Players: 2, Seed: seed(42)})
		require.NoError(t, err)

		_, err = manager.CalculateScore(gameID)
		require.True(t, errors.Is(err, consts.ErrorsInvalidStateTransition))

		result := playUntilWon(t, manager, gameID)
		require.Equal(t, game.GameOver, result.State.Phase)
		require.Equal(t, *result.Winner, *result.State.Winner)

		scores, err := manager.CalculateScore(gameID)
		require.NoError(t, err)
		require.Equal(t, result.Scores, scores)
		require.Equal(t, 0, scores[1-*result.Winner])

		_, err = manager.PlayTurn(gameID, 0, nil)
		require.True(t, errors.Is(err, consts.ErrorsInvalidStateTransition))
	})

	t.Run("unplayable_card_leaves_the_hand_unchanged", func(t *testing.T) {
		manager := service.NewManager(service.Options{})
		for value := int64(1); value <= 50; value++ {
			gameID, state, err := manager.CreateGame(service.CreateOptions{Players: 2, Seed: seed(value)})
			require.NoError(t, err)

			current := state.CurrentPlayer
			for index, c := range state.Hands[current] {
				if game.Playable(c, state.DiscardTop, state.CurrentColor) {
					continue
				}
				_, err := manager.PlayTurn(gameID, current, &index)
				require.True(t, errors.Is(err, consts.ErrorsCardNotPlayable))
				after, err := manager.GetState(gameID)
				require.NoError(t, err)
				require.Equal(t, state, after)
				return
			}
		}
		t.Fatal("no seed dealt an unplayable card")
	})

	t.Run("out_of_turn_play_is_rejected", func(t *testing.T) {
		manager := service.NewManager(service.Options{})
		gameID, state, err := manager.CreateGame(service.CreateOptions{Players: 2, Seed: seed(42)})
		require.NoError(t, err)
		other := 1 - state.CurrentPlayer
		index := 0
		_, err = manager.PlayTurn(gameID, other, &index)
		require.True(t, errors.Is(err, consts.ErrorsInvalidStateTransition))
	})
}

func TestDrawAndPass(t *testing.T) {
	manager := service.NewManager(service.Options{})
	gameID, state, err := manager.CreateGame(service.CreateOptions{Players: 3, Seed: seed(7)})
	require.NoError(t, err)
	current := state.CurrentPlayer

	_, err = manager.Pass(gameID, current)
	require.True(t, errors.Is(err, consts.ErrorsInvalidStateTransition))
	_, err = manager.ChooseColor(gameID, current, color.Red)
	require.True(t, errors.Is(err, consts.ErrorsInvalidStateTransition))
	_, err = manager.DrawCards(gameID, current, 0)
	require.True(t, errors.Is(err, consts.ErrorsInvalidArgument))

	drawn, err := manager.DrawCards(gameID, current, 2)
	require.NoError(t, err)
	require.Len(t, drawn.Cards, 2)
	require.Len(t, drawn.State.Hands[current], 9)
	require.Equal(t, current, drawn.State.CurrentPlayer)

	_, err = manager.DrawForTurn(gameID, current)
	require.True(t, errors.Is(err, consts.ErrorsInvalidStateTransition))

	passed, err := manager.Pass(gameID, current)
	require.NoError(t, err)
	require.NotEqual(t, current, passed.CurrentPlayer)
	require.Equal(t, 108, cardCount(passed))

	next := passed.CurrentPlayer
	drawnForTurn, err := manager.DrawForTurn(gameID, next)
	require.NoError(t, err)
	require.Len(t, drawnForTurn.Cards, 1)
	require.Equal(t, 108, cardCount(drawnForTurn.State))
}

func TestDeleteGame(t *testing.T) {
	manager := service.NewManager(service.Options{})
	gameID, _, err := manager.CreateGame(service.CreateOptions{Players: 2})
	require.NoError(t, err)

	require.NoError(t, manager.DeleteGame(gameID))
	_, err = manager.GetState(gameID)
	require.True(t, errors.Is(err, consts.ErrorsGameNotFound))
	require.True(t, errors.Is(manager.DeleteGame(gameID), consts.ErrorsGameNotFound))
	require.NotContains(t, manager.Games(), gameID)
}

func TestManagersAreIsolated(t *testing.T) {
	first := service.NewManager(service.Options{})
	second := service.NewManager(service.Options{})
	gameID, _, err := first.CreateGame(service.CreateOptions{Players: 2})
	require.NoError(t, err)

	_, err = second.GetState(gameID)
	require.True(t, errors.Is(err, consts.ErrorsGameNotFound))
	require.NotContains(t, second.Games(), gameID)
	require.Contains(t, first.Games(), gameID)

	t.Run("shared_store", func(t *testing.T) {
		store := service.NewStore()
		writer := service.NewManager(service.Options{Store: store})
		reader := service.NewManager(service.Options{Store: store})
		gameID, state, err := writer.CreateGame(service.CreateOptions{Players: 2, Seed: seed(3)})
		require.NoError(t, err)

		fetched, err := reader.GetState(gameID)
		require.NoError(t, err)
		require.Equal(t, state, fetched)
		require.Equal(t, 1, store.Len())
	})
}

func TestConcurrentTurns(t *testing.T) {
	manager := service.NewManager(service.Options{})
	gameIDs := make([]string, 0, 4)
	for value := int64(1); value <= 4; value++ {
		gameID, _, err := manager.CreateGame(service.CreateOptions{Players: 2, Seed: seed(value)})
		require.NoError(t, err)
		gameIDs = append(gameIDs, gameID)
	}

	var wg sync.WaitGroup
	unexpected := make(chan error, 64)
	for _, gameID := range gameIDs {
		for playerIndex := 0; playerIndex < 2; playerIndex++ {
			wg.Add(1)
			go func(gameID string, playerIndex int) {
				defer wg.Done()
				for {
					result, err := manager.PlayTurn(gameID, playerIndex, nil)
					if err == nil {
						if result.Winner != nil {
							return
						}
						continue
					}
					if !errors.Is(err, consts.ErrorsInvalidStateTransition) {
						unexpected <- err
						return
					}
					state, err := manager.GetState(gameID)
					if err != nil {
						unexpected <- err
						return
					}
					if state.Winner != nil {
						return
					}
					runtime.Gosched()
				}
			}(gameID, playerIndex)
		}
	}
	wg.Wait()
	close(unexpected)
	for err := range unexpected {
		require.NoError(t, err)
	}

	for _, gameID := range gameIDs {
		state, err := manager.GetState(gameID)
		require.NoError(t, err)
		require.Equal(t, 108, cardCount(state))
		require.NotNil(t, state.Winner)
	}
}

func TestSubscribe(t *testing.T) {
	manager := service.NewManager(service.Options{})
	gameID, state, err := manager.CreateGame(service.CreateOptions{Players: 2, Seed: seed(42)})
	require.NoError(t, err)

	listener := event.NewDummyListener()
	unsubscribe, err := manager.Subscribe(gameID, listener)
	require.NoError(t, err)

	result, err := manager.PlayTurn(gameID, state.CurrentPlayer, nil)
	require.NoError(t, err)
	received := len(listener.ReceivedPayloads())
	require.NotZero(t, received)

	unsubscribe()
	_, err = manager.PlayTurn(gameID, result.State.CurrentPlayer, nil)
	require.NoError(t, err)
	require.Len(t, listener.ReceivedPayloads(), received)
}

type fakePublisher struct {
	mu      sync.Mutex
	actions []string
}

func (p *fakePublisher) Publish(ctx context.Context, record history.Record) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.actions = append(p.actions, record.ActionType)
	return nil
}

func (p *fakePublisher) has(action string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, a := range p.actions {
		if a == action {
			return true
		}
	}
	return false
}

func TestHistory(t *testing.T) {
	publisher := &fakePublisher{}
	manager := service.NewManager(service.Options{Publisher: publisher, HistoryTimeout: time.Second})
	gameID, state, err := manager.CreateGame(service.CreateOptions{Players: 2, Seed: seed(42)})
	require.NoError(t, err)
	_, err = manager.PlayTurn(gameID, state.CurrentPlayer, nil)
	require.NoError(t, err)
	require.NoError(t, manager.DeleteGame(gameID))

	require.Eventually(t, func() bool {
		return publisher.has("first_card_played") && publisher.has("game_deleted")
	}, time.Second, 10*time.Millisecond)
}
