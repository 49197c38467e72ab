package event

type TurnOrderReversedPayload struct {
	Direction int
}

type TurnOrderReversedListener interface {
	OnTurnOrderReversed(TurnOrderReversedPayload)
}

type turnOrderReversedEmitter struct {
	listeners[TurnOrderReversedListener]
}

func (e *turnOrderReversedEmitter) AddListener(listener TurnOrderReversedListener) {
	e.add(listener)
}

func (e *turnOrderReversedEmitter) RemoveListener(listener TurnOrderReversedListener) {
	e.remove(listener)
}

func (e *turnOrderReversedEmitter) Emit(payload TurnOrderReversedPayload) {
	for _, listener := range e.list() {
		listener.OnTurnOrderReversed(payload)
	}
}
