package game

import "github.com/ratel-online/uno/uno/card"

// Score credits the winner with the points left in every other hand.
// Losers score 0.
func Score(hands [][]card.Card, winner int) map[int]int {
	scores := make(map[int]int, len(hands))
	for index := range hands {
		scores[index] = 0
	}
	if winner < 0 || winner >= len(hands) {
		return scores
	}
	for index, hand := range hands {
		if index == winner {
			continue
		}
		for _, c := range hand {
			scores[winner] += c.Points()
		}
	}
	return scores
}
