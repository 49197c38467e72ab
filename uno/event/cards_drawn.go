package event

import "github.com/ratel-online/uno/uno/card"

type CardsDrawnPayload struct {
	PlayerIndex int
	PlayerName  string
	Cards       []card.Card
}

type CardsDrawnListener interface {
	OnCardsDrawn(CardsDrawnPayload)
}

type cardsDrawnEmitter struct {
	listeners[CardsDrawnListener]
}

func (e *cardsDrawnEmitter) AddListener(listener CardsDrawnListener) {
	e.add(listener)
}

func (e *cardsDrawnEmitter) RemoveListener(listener CardsDrawnListener) {
	e.remove(listener)
}

func (e *cardsDrawnEmitter) Emit(payload CardsDrawnPayload) {
	for _, listener := range e.list() {
		listener.OnCardsDrawn(payload)
	}
}
