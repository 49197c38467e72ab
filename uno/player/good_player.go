package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

const Good = "good"

type goodPlayer struct {
	basicPlayer
}

// NewGoodPlayer plays the card that leaves the most follow-up plays in hand
// and saves wilds for last.
func NewGoodPlayer() game.Strategy {
	return goodPlayer{basicPlayer: basicPlayer{name: Good}}
}

func (p goodPlayer) PickColor(gameState game.State) color.Color {
	return mostFrequentColor(gameState.CurrentPlayerHand, color.Blue)
}

func (p goodPlayer) Play(playableCards []card.Card, gameState game.State) card.Card {
	mostDiscardableCardIndex := 0
	maxSpareCards := -1

	for cardIndex, playableCard := range playableCards {
		spareCards := 0
		followColor := playableCard.Color
		if playableCard.IsWild() {
			followColor = p.PickColor(gameState)
		}
		for _, handCard := range gameState.CurrentPlayerHand {
			if handCard != playableCard && game.Playable(handCard, playableCard, followColor) {
				spareCards++
			}
		}
		if playableCard.IsWild() {
			spareCards--
		}
		if spareCards > maxSpareCards {
			maxSpareCards = spareCards
			mostDiscardableCardIndex = cardIndex
		}
	}

	return playableCards[mostDiscardableCardIndex]
}
