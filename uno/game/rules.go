package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may be played on lastPlayedCard
// while currentColor is enforced. Wilds are always playable. When no color
// has been chosen yet (currentColor is Wild) only ranks can match.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, currentColor color.Color) bool {
	if candidateCard.IsWild() {
		return true
	}
	if currentColor != color.Wild && candidateCard.Color == currentColor {
		return true
	}
	return candidateCard.Rank == lastPlayedCard.Rank
}

// HouseRules toggles optional rules for one game.
type HouseRules struct {
	// StackDrawCards lets a player answer an owed draw penalty with another
	// draw card instead of drawing; the penalty then grows and moves on.
	StackDrawCards bool `json:"stack_draw_cards"`
	// FirstCardEffects applies the effect of an action card flipped at the
	// start instead of burying it back under the deck.
	FirstCardEffects bool `json:"first_card_effects"`
}

// stackable reports whether c may answer an owed penalty created by top.
func stackable(c card.Card, top card.Card) bool {
	switch c.Rank {
	case card.WildDrawFour:
		return true
	case card.DrawTwo:
		return top.Rank == card.DrawTwo
	default:
		return false
	}
}
