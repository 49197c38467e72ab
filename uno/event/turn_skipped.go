package event

type TurnSkippedPayload struct {
	PlayerIndex int
	PlayerName  string
}

type TurnSkippedListener interface {
	OnTurnSkipped(TurnSkippedPayload)
}

type turnSkippedEmitter struct {
	listeners[TurnSkippedListener]
}

func (e *turnSkippedEmitter) AddListener(listener TurnSkippedListener) {
	e.add(listener)
}

func (e *turnSkippedEmitter) RemoveListener(listener TurnSkippedListener) {
	e.remove(listener)
}

func (e *turnSkippedEmitter) Emit(payload TurnSkippedPayload) {
	for _, listener := range e.list() {
		listener.OnTurnSkipped(payload)
	}
}
