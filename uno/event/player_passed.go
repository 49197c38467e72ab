package event

type PlayerPassedPayload struct {
	PlayerIndex int
	PlayerName  string
}

type PlayerPassedListener interface {
	OnPlayerPassed(PlayerPassedPayload)
}

type playerPassedEmitter struct {
	listeners[PlayerPassedListener]
}

func (e *playerPassedEmitter) AddListener(listener PlayerPassedListener) {
	e.add(listener)
}

func (e *playerPassedEmitter) RemoveListener(listener PlayerPassedListener) {
	e.remove(listener)
}

func (e *playerPassedEmitter) Emit(payload PlayerPassedPayload) {
	for _, listener := range e.list() {
		listener.OnPlayerPassed(payload)
	}
}
