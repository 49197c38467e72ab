package event

import "github.com/ratel-online/uno/uno/card"

type FirstCardPlayedPayload struct {
	Card card.Card
}

type FirstCardPlayedListener interface {
	OnFirstCardPlayed(FirstCardPlayedPayload)
}

type firstCardPlayedEmitter struct {
	listeners[FirstCardPlayedListener]
}

func (e *firstCardPlayedEmitter) AddListener(listener FirstCardPlayedListener) {
	e.add(listener)
}

func (e *firstCardPlayedEmitter) RemoveListener(listener FirstCardPlayedListener) {
	e.remove(listener)
}

func (e *firstCardPlayedEmitter) Emit(payload FirstCardPlayedPayload) {
	for _, listener := range e.list() {
		listener.OnFirstCardPlayed(payload)
	}
}
