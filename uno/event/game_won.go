package event

type GameWonPayload struct {
	PlayerIndex int
	PlayerName  string
	Scores      map[int]int
}

type GameWonListener interface {
	OnGameWon(GameWonPayload)
}

type gameWonEmitter struct {
	listeners[GameWonListener]
}

func (e *gameWonEmitter) AddListener(listener GameWonListener) {
	e.add(listener)
}

func (e *gameWonEmitter) RemoveListener(listener GameWonListener) {
	e.remove(listener)
}

func (e *gameWonEmitter) Emit(payload GameWonPayload) {
	for _, listener := range e.list() {
		listener.OnGameWon(payload)
	}
}
