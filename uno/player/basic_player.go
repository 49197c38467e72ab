package player

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type basicPlayer struct {
	name string
}

func (p basicPlayer) Name() string {
	return p.name
}

// mostFrequentColor counts the colored cards in hand. Ties go to the
// earlier color of color.All, an empty count to fallback.
func mostFrequentColor(hand []card.Card, fallback color.Color) color.Color {
	colorCounts := make(map[color.Color]int)
	for _, c := range hand {
		if !c.IsWild() {
			colorCounts[c.Color]++
		}
	}

	var (
		mostFrequent       = fallback
		mostFrequentAmount int
	)
	for _, availableColor := range color.All {
		if amount := colorCounts[availableColor]; amount > mostFrequentAmount {
			mostFrequentAmount = amount
			mostFrequent = availableColor
		}
	}
	return mostFrequent
}
