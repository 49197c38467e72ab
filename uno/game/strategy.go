package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Strategy decides for a seat when the game plays on its behalf.
type Strategy interface {
	Name() string
	PickColor(gameState State) color.Color
	Play(playableCards []card.Card, gameState State) card.Card
}

func contains(cards []card.Card, searchedCard card.Card) bool {
	for _, c := range cards {
		if c == searchedCard {
			return true
		}
	}
	return false
}
