package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const Naive = "naive"

type naivePlayer struct {
	basicPlayer
}

// NewNaivePlayer plays the first playable card in hand order.
func NewNaivePlayer() game.Strategy {
	return naivePlayer{basicPlayer: basicPlayer{name: Naive}}
}

func (p naivePlayer) PickColor(gameState game.State) color.Color {
	return mostFrequentColor(gameState.CurrentPlayerHand, color.Red)
}

func (p naivePlayer) Play(playableCards []card.Card, gameState game.State) card.Card {
	firstCard := playableCards[0]
	return firstCard
}
