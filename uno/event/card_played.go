package event

import "github.com/ratel-online/uno/uno/card"

type CardPlayedPayload struct {
	PlayerIndex int
	PlayerName  string
	Card        card.Card
}

type CardPlayedListener interface {
	OnCardPlayed(CardPlayedPayload)
}

type cardPlayedEmitter struct {
	listeners[CardPlayedListener]
}

func (e *cardPlayedEmitter) AddListener(listener CardPlayedListener) {
	e.add(listener)
}

func (e *cardPlayedEmitter) RemoveListener(listener CardPlayedListener) {
	e.remove(listener)
}

func (e *cardPlayedEmitter) Emit(payload CardPlayedPayload) {
	for _, listener := range e.list() {
		listener.OnCardPlayed(payload)
	}
}
