package history

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/event"
)

const recordBuffer = 1024

// Recorder listens to one game and publishes every event as a Record. A
// single worker publishes records in ActionIndex order, off the game's
// goroutine. A full buffer blocks the game until the worker catches up.
type Recorder struct {
	gameID    string
	publisher Publisher
	timeout   time.Duration

	mu     sync.Mutex
	index  int64
	closed bool
	queue  chan Record
}

func NewRecorder(gameID string, publisher Publisher, timeout time.Duration) *Recorder {
	r := &Recorder{
		gameID:    gameID,
		publisher: publisher,
		timeout:   timeout,
		queue:     make(chan Record, recordBuffer),
	}
	async.Async(r.run)
	return r
}

// Record publishes an action that is not a game event, such as deletion.
func (r *Recorder) Record(actionType string, payload map[string]interface{}) {
	r.publish(NewRecord(r.gameID, actionType, payload))
}

// Close stops the worker once the queued records are published. Later
// records are dropped.
func (r *Recorder) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
}

func (r *Recorder) publish(record Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.index++
	record.ActionIndex = r.index
	r.queue <- record
}

func (r *Recorder) run() {
	for record := range r.queue {
		r.send(record)
	}
}

func (r *Recorder) send(record Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.publisher.Publish(ctx, record); err != nil {
		log.Error(fmt.Errorf("game %s: publish %s: %w", r.gameID, record.ActionType, err))
	}
}

func (r *Recorder) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	r.Record("first_card_played", map[string]interface{}{"card": payload.Card})
}

func (r *Recorder) OnCardPlayed(payload event.CardPlayedPayload) {
	r.publish(NewRecord(r.gameID, "card_played", map[string]interface{}{"card": payload.Card}).ForPlayer(payload.PlayerIndex))
}

func (r *Recorder) OnColorPicked(payload event.ColorPickedPayload) {
	r.publish(NewRecord(r.gameID, "color_picked", map[string]interface{}{"color": payload.Color}).ForPlayer(payload.PlayerIndex))
}

func (r *Recorder) OnCardsDrawn(payload event.CardsDrawnPayload) {
	cards := make([]card.Card, len(payload.Cards))
	copy(cards, payload.Cards)
	r.publish(NewRecord(r.gameID, "cards_drawn", map[string]interface{}{"cards": cards, "count": len(cards)}).ForPlayer(payload.PlayerIndex))
}

func (r *Recorder) OnPlayerPassed(payload event.PlayerPassedPayload) {
	r.publish(NewRecord(r.gameID, "player_passed", map[string]interface{}{}).ForPlayer(payload.PlayerIndex))
}

func (r *Recorder) OnTurnSkipped(payload event.TurnSkippedPayload) {
	r.publish(NewRecord(r.gameID, "turn_skipped", map[string]interface{}{}).ForPlayer(payload.PlayerIndex))
}

func (r *Recorder) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	r.Record("turn_order_reversed", map[string]interface{}{"direction": payload.Direction})
}

func (r *Recorder) OnGameWon(payload event.GameWonPayload) {
	r.publish(NewRecord(r.gameID, "game_won", map[string]interface{}{"scores": payload.Scores}).ForPlayer(payload.PlayerIndex))
}
