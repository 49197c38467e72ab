package event

import "github.com/ratel-online/uno/uno/card/color"

type ColorPickedPayload struct {
	PlayerIndex int
	PlayerName  string
	Color       color.Color
}

type ColorPickedListener interface {
	OnColorPicked(ColorPickedPayload)
}

type colorPickedEmitter struct {
	listeners[ColorPickedListener]
}

func (e *colorPickedEmitter) AddListener(listener ColorPickedListener) {
	e.add(listener)
}

func (e *colorPickedEmitter) RemoveListener(listener ColorPickedListener) {
	e.remove(listener)
}

func (e *colorPickedEmitter) Emit(payload ColorPickedPayload) {
	for _, listener := range e.list() {
		listener.OnColorPicked(payload)
	}
}
