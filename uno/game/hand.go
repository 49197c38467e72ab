package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.CardsPerPlayer)}
}

func (h *Hand) AddCards(cards []card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) At(index int) (card.Card, error) {
	if index < 0 || index >= len(h.cards) {
		return card.Card{}, consts.ErrorsInvalidArgument.Withf("hand index %d out of range [0, %d)", index, len(h.cards))
	}
	return h.cards[index], nil
}

// PlayableCards lists the cards that may go on top under the current color.
func (h *Hand) PlayableCards(lastPlayedCard card.Card, currentColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, lastPlayedCard, currentColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// IndexOf returns the position of the first copy of card, or -1.
func (h *Hand) IndexOf(card card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand == card {
			return index
		}
	}
	return -1
}

func (h *Hand) RemoveAt(index int) (card.Card, error) {
	removed, err := h.At(index)
	if err != nil {
		return card.Card{}, err
	}
	h.removeAt(index)
	return removed, nil
}

func (h *Hand) removeAt(index int) {
	h.cards = append(h.cards[:index:index], h.cards[index+1:]...)
}

func (h *Hand) Points() int {
	points := 0
	for _, c := range h.cards {
		points += c.Points()
	}
	return points
}

func (h *Hand) Size() int {
	return len(h.cards)
}
