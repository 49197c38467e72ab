package service

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/msg"
)

// narrator logs a readable line for every event of one game.
type narrator struct {
	gameID string
}

func newNarrator(gameID string) *narrator {
	return &narrator{gameID: gameID}
}

func (n *narrator) say(line string) {
	log.Infof("game %s: %s\n", n.gameID, msg.Line(line))
}

func (n *narrator) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	n.say(msg.Message.FirstCardPlayed(payload.Card))
}

func (n *narrator) OnCardPlayed(payload event.CardPlayedPayload) {
	n.say(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (n *narrator) OnColorPicked(payload event.ColorPickedPayload) {
	n.say(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

func (n *narrator) OnCardsDrawn(payload event.CardsDrawnPayload) {
	n.say(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
}

func (n *narrator) OnPlayerPassed(payload event.PlayerPassedPayload) {
	n.say(msg.Message.PlayerPassed(payload.PlayerName))
}

func (n *narrator) OnTurnSkipped(payload event.TurnSkippedPayload) {
	n.say(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (n *narrator) OnTurnOrderReversed(payload event.TurnOrderReversedPayload) {
	n.say(msg.Message.TurnOrderReversed(payload.Direction))
}

func (n *narrator) OnGameWon(payload event.GameWonPayload) {
	n.say(msg.Message.WinnerFound(payload.PlayerName, payload.Scores[payload.PlayerIndex]))
}
