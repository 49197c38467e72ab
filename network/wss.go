package network

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	corejson "github.com/ratel-online/core/util/json"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
)

const (
	pushBuffer   = 64
	writeTimeout = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type push struct {
	Event   string        `json:"event"`
	Message string        `json:"message"`
	State   game.Snapshot `json:"state"`
}

// pusher queues the events of one game for a websocket client. Events are
// emitted under the game lock, so it never blocks: a full queue drops.
type pusher struct {
	gameID string
	events chan push
}

func newPusher(gameID string) *pusher {
	return &pusher{gameID: gameID, events: make(chan push, pushBuffer)}
}

func (p *pusher) send(name string, line string) {
	select {
	case p.events <- push{Event: name, Message: msg.Line(line)}:
	default:
		log.Infof("game %s: push queue full, dropped %s\n", p.gameID, name)
	}
}

func (p *pusher) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.send("first_card_played", msg.Message.FirstCardPlayed(payload.Card))
}

func (p *pusher) OnCardPlayed(payload event.CardPlayedPayload) {
	p.send("card_played", msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (p *pusher) OnColorPicked(payload event.ColorPickedPayload) {
	p.send("color_picked", msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (p *pusher) OnCardsDrawn(payload event.CardsDrawnPayload) {
	p.send("cards_drawn", msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (p *pusher) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.send("player_passed", msg.Message.PlayerPassed(payload.PlayerName))
}

func (p *pusher) OnTurnSkipped(payload event.TurnSkippedPayload) {
	p.send("turn_skipped", msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (p *pusher) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	p.send("turn_order_reversed", msg.Message.TurnOrderReversed(payload.Direction))
}

func (p *pusher) OnGameWon(payload event.GameWonPayload) {
	p.send("game_won", msg.Message.WinnerFound(payload.PlayerName, payload.Scores[payload.PlayerIndex]))
}

// serveWs pushes every event of a game to the client along with the state
// at the time the push is written.
func (a *api) serveWs(w http.ResponseWriter, r *http.Request) {
	id := gameID(r)
	p := newPusher(id)
	unsubscribe, err := a.manager.Subscribe(id, p)
	if err != nil {
		writeError(w, err)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		unsubscribe()
		log.Error(err)
		return
	}
	log.Infof("websocket connected to game %s from %s\n", id, r.RemoteAddr)
	defer func() {
		unsubscribe()
		_ = conn.Close()
		log.Infof("websocket disconnected from game %s\n", id)
	}()

	done := make(chan struct{})
	async.Async(func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})

	for {
		select {
		case <-done:
			return
		case next := <-p.events:
			state, err := a.manager.GetState(id)
			if err != nil {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, err.Error()))
				return
			}
			next.State = state
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, corejson.Marshal(next)); err != nil {
				log.Error(err)
				return
			}
		}
	}
}
