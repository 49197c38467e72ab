package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Deck is the draw pile. Cards are drawn from index 0.
type Deck struct {
	sync.Mutex
	cards []card.Card
}

func NewDeck(cards []card.Card) *Deck {
	deck := &Deck{cards: make([]card.Card, len(cards))}
	copy(deck.cards, cards)
	return deck
}

func (d *Deck) Len() int {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	return len(d.cards)
}

func (d *Deck) Cards() []card.Card {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) DrawOne() (card.Card, error) {
	cards, err := d.Draw(1)
	if err != nil {
		return card.Card{}, err
	}
	return cards[0], nil
}

// Draw takes amount cards off the top, or nothing when fewer remain.
func (d *Deck) Draw(amount int) ([]card.Card, error) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	if amount < 0 {
		amount = 0
	}
	if len(d.cards) < amount {
		return nil, consts.ErrorsNoCardsAvailable.Withf("draw pile holds %d cards, %d requested", len(d.cards), amount)
	}
	cards := make([]card.Card, amount)
	copy(cards, d.cards[:amount])
	d.cards = d.cards[amount:]
	return cards, nil
}

// PutBottom slides cards under the rest of the deck.
func (d *Deck) PutBottom(cards ...card.Card) {
	d.Mutex.Lock()
	defer d.Mutex.Unlock()
	d.cards = append(d.cards, cards...)
}

// BuildStandardDeck lists the 108 UNO cards in a fixed order.
func BuildStandardDeck() []card.Card {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createBlackCards()...)
	cards = append(cards, createColorCards(color.Red)...)
	cards = append(cards, createColorCards(color.Yellow)...)
	cards = append(cards, createColorCards(color.Green)...)
	cards = append(cards, createColorCards(color.Blue)...)

	return cards
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}

// NewRand returns a source seeded with seed, or with the clock when seed is nil.
func NewRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(*seed))
}

// Shuffle returns a shuffled copy of cards. The same seed always yields the same order.
func Shuffle(cards []card.Card, seed *int64) []card.Card {
	shuffled := make([]card.Card, len(cards))
	copy(shuffled, cards)
	shuffleCards(shuffled, NewRand(seed))
	return shuffled
}

func shuffleCards(cards []card.Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) { cards[i], cards[j] = cards[j], cards[i] })
}

// ReshuffleFromDiscard takes every pile card except the top keepTop ones and
// returns them shuffled.
func ReshuffleFromDiscard(pile *Pile, keepTop int, rng *rand.Rand) ([]card.Card, error) {
	reclaimed := pile.Reclaim(keepTop)
	if len(reclaimed) == 0 {
		return nil, consts.ErrorsNoCardsAvailable.Withf("draw pile and discard pile are both exhausted")
	}
	shuffleCards(reclaimed, rng)
	return reclaimed, nil
}
